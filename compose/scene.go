package compose

import (
	"math"

	"github.com/gogpu/lobster"
	"github.com/gogpu/lobster/recording"
	"github.com/gogpu/lobster/traits"
)

const (
	w = lobster.Width
	h = lobster.Height
)

var (
	coralColor = lobster.Hex("#8A2010")
	ventColor  = lobster.Hex("#7A2408")
	plankColor = lobster.Hex("#3A2808")
	nailColor  = lobster.Hex("#181410")
	starColor  = lobster.Hex("#D04018")
)

var (
	bubblePoints = [][2]int{
		{3, 4}, {7, 8}, {15, 3}, {28, 6}, {37, 4}, {2, 18}, {36, 14},
		{5, 38}, {33, 42}, {38, 30}, {1, 46}, {9, 26}, {24, 2}, {32, 22},
	}
	kelpColumns = []int{2, 6, 10, 30, 35, 39}

	// x, y (base), rx, height
	coralMounds = [][4]int{
		{4, 48, 4, 10}, {8, 44, 3, 8}, {36, 48, 3, 9},
		{33, 44, 4, 10}, {18, 50, 5, 5}, {22, 50, 5, 5},
	}
	ventMouths = [][2]int{{20, 40}, {8, 45}, {33, 42}}

	// x1, y, x2
	planks = [][3]int{
		{5, 30, 36}, {3, 36, 32}, {10, 42, 38}, {0, 14, 22}, {18, 6, 39},
	}
	starfish  = [][2]int{{5, 47}, {34, 44}}
	glints    = [][2]int{{10, 49}, {28, 47}, {15, 3}, {35, 8}}
	rockBeds  = [][4]float64{{5, 48, 4, 2}, {16, 50, 5, 2}, {35, 47, 4, 2}, {3, 8, 3, 2}, {37, 10, 4, 2}, {22, 4, 3, 1}}
	rockLines = []int{10, 22, 34, 46}
)

// paintScene records the background: a darkening vignette, the scene's
// pattern and, for grainy scenes, a sparse additive grain.
func paintScene(rec *recording.Recorder, sc traits.Scene) {
	fl, f2 := sc.Floor, sc.Floor2

	edge := fl.Darken(0.55)
	for y := range h {
		for x := range w {
			vx := float64(x-w/2) / (w / 2)
			vy := float64(y-h/2) / (h / 2)
			d := float64(vx*vx) + float64(vy*vy)
			rec.SetPixel(x, y, fl.Mix(edge, math.Min(1, d*0.45)))
		}
	}

	switch sc.Pattern {
	case traits.PatternBubbles:
		paintBubbles(rec, f2)
	case traits.PatternKelp:
		paintKelp(rec, f2)
	case traits.PatternCoral:
		paintCoral(rec)
	case traits.PatternVent:
		paintVents(rec, fl)
	case traits.PatternPlanks:
		paintPlanks(rec)
	case traits.PatternStarfish:
		paintTidePool(rec, fl, f2)
	case traits.PatternRocks:
		paintRocks(rec, fl, f2)
	case traits.PatternNone:
	}

	if sc.Grain {
		for y := range h {
			for x := range w {
				if lobster.Noise(x, y, 17) > 0.72 {
					rec.Shade(x, y, 18, 14, 8)
				}
			}
		}
	}
}

func paintBubbles(rec *recording.Recorder, f2 lobster.RGB) {
	c := f2.Lighten(0.45)
	for _, p := range bubblePoints {
		x, y := p[0], p[1]
		rec.SetPixel(x, y, c)
		rec.SetPixel(x+1, y, c.Lighten(0.2))
		rec.SetPixel(x, y-1, c.Lighten(0.15))
	}
}

func paintKelp(rec *recording.Recorder, f2 lobster.RGB) {
	lit, dim, leaf := f2.Lighten(0.12), f2.Darken(0.1), f2.Lighten(0.07)
	for ki, kx := range kelpColumns {
		for y := range h {
			wx := lobster.Round(math.Sin(float64(float64(y)*0.4)+float64(float64(ki)*1.3)) * 1.5)
			c := dim
			if lobster.Noise(kx, y, 2) > 0.6 {
				c = lit
			}
			rec.SetPixel(clampX(kx+wx), y, c)

			if y%7 == ki%7 {
				for f := 1; f <= 3; f++ {
					off := f
					if ki%2 == 1 {
						off = -f
					}
					rec.SetPixel(clampX(kx+wx+off), y, leaf)
				}
			}
		}
	}
}

func paintCoral(rec *recording.Recorder) {
	for _, m := range coralMounds {
		x, y, rx, ht := m[0], m[1], m[2], m[3]
		for r := y - ht; r <= y; r++ {
			v := float64(r-y) / float64(ht)
			wid := lobster.Round(float64(rx) * math.Sqrt(1-float64(v*v)))
			c := coralColor.Darken(float64(r-y+ht) / float64(ht) * 0.5)
			for cx := x - wid; cx <= x+wid; cx++ {
				rec.SetPixel(cx, r, c)
			}
		}
		tip := coralColor.Lighten(0.12)
		for a := -2; a <= 2; a++ {
			rec.SetPixel(x+a, y-ht-1, tip)
		}
	}
	speckle(rec, 18, 3, coralColor.Darken(0.5))
}

// speckle scatters n noise-placed pixels using noise scale s.
func speckle(rec *recording.Recorder, n int, s float64, c lobster.RGB) {
	for i := range n {
		x := int(math.Floor(lobster.Noise(i, 0, s) * w))
		y := int(math.Floor(lobster.Noise(i, 1, s) * h))
		if x >= 0 && x < w && y >= 0 && y < h {
			rec.SetPixel(x, y, c)
		}
	}
}

func paintVents(rec *recording.Recorder, fl lobster.RGB) {
	for _, v := range ventMouths {
		vx, vy := v[0], v[1]
		for y := vy; y < h; y++ {
			s2 := lobster.Round(float64(y-vy) * 0.5)
			c := fl.Mix(ventColor, float64(y-vy)/float64(h-vy))
			for x := vx - s2; x <= vx+s2; x++ {
				rec.SetPixel(x, y, c)
			}
		}
		for y := vy - 20; y < vy; y++ {
			dist := float64(vy - y)
			wx := lobster.Round(math.Sin(float64(y) * 0.5))
			if lobster.Noise(vx, y, 5) > 0.55 {
				rec.SetPixel(vx+wx, y, fl.Mix(ventColor, math.Max(0, 0.4-float64(dist*0.015))))
			}
			if lobster.Noise(vx+1, y, 6) > 0.65 {
				rec.SetPixel(vx+wx+1, y, fl.Mix(ventColor, math.Max(0, 0.25-float64(dist*0.01))))
			}
		}
	}
}

func paintPlanks(rec *recording.Recorder) {
	grainDark := plankColor.Darken(0.3)
	edge := plankColor.Darken(0.2)
	for _, p := range planks {
		x1, y1, x2 := p[0], p[1], p[2]
		for x := x1; x <= x2; x++ {
			rec.SetPixel(x, y1, plankColor.Mix(grainDark, lobster.Noise(x, y1, 7)*0.4))
			rec.SetPixel(x, y1+1, edge)
		}
		rec.SetPixel(x1+2, y1, nailColor)
		rec.SetPixel(x2-2, y1, nailColor)
	}
	speckle(rec, 25, 9, plankColor.Darken(0.4))
}

func paintTidePool(rec *recording.Recorder, fl, f2 lobster.RGB) {
	for y := range h {
		for x := range w {
			rec.SetPixel(x, y, fl.Mix(f2, lobster.Noise(x, y, 11)*0.4))
		}
	}
	for _, s := range starfish {
		sx, sy := s[0], s[1]
		rec.SetPixel(sx, sy, starColor)
		rec.SetPixel(sx+1, sy, starColor)
		rec.SetPixel(sx-1, sy, starColor)
		rec.SetPixel(sx, sy-1, starColor)
		rec.SetPixel(sx, sy+1, starColor)
		rec.SetPixel(sx+2, sy+1, starColor.Darken(0.3))
	}
	for _, g := range glints {
		rec.SetPixel(g[0], g[1], fl.Lighten(0.3))
		rec.SetPixel(g[0]+1, g[1], fl.Lighten(0.2))
	}
}

func paintRocks(rec *recording.Recorder, fl, f2 lobster.RGB) {
	for y := range h {
		for x := range w {
			rec.SetPixel(x, y, fl.Mix(f2, lobster.Noise(x, y, 13)*0.38))
		}
	}
	dark := f2.Darken(0.4)
	for _, r := range rockBeds {
		rec.Ellipse(r[0], r[1], r[2], r[3], func(_ int, _, ny float64) lobster.RGB {
			return f2.Mix(dark, float64(math.Abs(ny)*0.6)+0.1)
		})
	}
	seam := fl.Lighten(0.04)
	for _, ry := range rockLines {
		for x := range w {
			rec.SetPixel(x, ry, seam)
		}
	}
}

func clampX(x int) int {
	return max(0, min(w-1, x))
}
