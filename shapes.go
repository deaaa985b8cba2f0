package lobster

import "math"

// LinePoints calls visit for every pixel of the Bresenham line from
// (x0, y0) to (x1, y1), end points included.
func LinePoints(x0, y0, x1, y1 int, visit func(x, y int)) {
	dx, sx := abs(x1-x0), 1
	if x0 >= x1 {
		sx = -1
	}
	dy, sy := -abs(y1-y0), 1
	if y0 >= y1 {
		sy = -1
	}
	err := dx + dy
	for {
		visit(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e := 2 * err
		if e >= dy {
			err += dy
			x0 += sx
		}
		if e <= dx {
			err += dx
			y0 += sy
		}
	}
}

// Ellipse calls visit for every pixel whose centre row lies inside the
// axis-aligned ellipse centred at (cx, cy) with radii (rx, ry).
// nx and ny are the pixel centre's coordinates normalised by the radii
// (each roughly in [-1, 1]) so callers can shade by position.
func Ellipse(cx, cy, rx, ry float64, visit func(x, y int, nx, ny float64)) {
	y0 := int(math.Floor(cy - ry - 1))
	y1 := int(math.Ceil(cy + ry + 1))
	for y := y0; y <= y1; y++ {
		ny := (float64(y) + 0.5 - cy) / (ry + 0.5)
		if math.Abs(ny) > 1 {
			continue
		}
		mw := (rx + 0.5) * math.Sqrt(1-float64(ny*ny))
		for x := int(math.Floor(cx - mw)); x <= int(math.Floor(cx+mw)); x++ {
			visit(x, y, (float64(x)+0.5-cx)/(rx+0.5), ny)
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
