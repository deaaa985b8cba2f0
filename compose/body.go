package compose

import (
	"math"

	"github.com/gogpu/lobster"
	"github.com/gogpu/lobster/recording"
	"github.com/gogpu/lobster/traits"
)

// shadowDelta darkens the floor under the body.
const shadowDelta = -20

var (
	leftLegs  = [][4]int{{12, 24, 3, 18}, {12, 27, 1, 24}, {12, 30, 1, 30}, {12, 33, 3, 36}}
	rightLegs = [][4]int{{27, 24, 36, 18}, {27, 27, 38, 24}, {27, 30, 38, 30}, {27, 33, 36, 36}}

	rostrum = []struct {
		x, y int
		z    zone
	}{
		{20, 13, zoneBase}, {19, 14, zoneBase}, {20, 14, zoneHighlight}, {21, 14, zoneBase},
		{19, 15, zoneBase}, {20, 15, zoneHighlight}, {21, 15, zoneBase}, {20, 12, zoneHighlight},
	}
)

// paintBody records everything between the floor and the overlay pass:
// contact shadow, legs, tail fan, abdomen, carapace, head, chelipeds and
// both claws.
func paintBody(rec *recording.Recorder, t traits.Traits, sh shell) {
	paintShadow(rec)

	legC := sh.at(15, zoneShadow).Darken(0.08)
	for _, l := range leftLegs {
		rec.Line(l[0], l[1], l[2], l[3], legC)
	}
	for _, l := range rightLegs {
		rec.Line(l[0], l[1], l[2], l[3], legC)
	}

	paintTail(rec, t.TailVariant, sh)
	paintAbdomen(rec, sh)
	paintCarapace(rec, sh)
	paintHead(rec, sh)
	paintChelipeds(rec, sh)

	left, right := traits.ClawScales(t.Claws)
	paintClaw(rec, leftSide, left, sh)
	paintClaw(rec, rightSide, right, sh)
}

func paintShadow(rec *recording.Recorder) {
	for y := 17; y <= 49; y++ {
		for x := 10; x <= 29; x++ {
			dx := (float64(x) - 19.5) / 10
			dy := float64(y-33) / 17
			if float64(dx*dx)+float64(dy*dy) < 1 {
				rec.Shade(x, y, shadowDelta, shadowDelta, shadowDelta)
			}
		}
	}
}

// paintTail draws five overlapping lobes; variant 1 fans the outer two.
func paintTail(rec *recording.Recorder, variant int, sh shell) {
	spread := 0.0
	if variant == 1 {
		spread = 2
	}
	lobes := [][2]float64{{10 - spread, 51}, {15, 51}, {20, 52}, {25, 51}, {30 + spread, 51}}
	for _, c := range lobes {
		rec.Ellipse(c[0], c[1], 3, 2, func(x int, _, ny float64) lobster.RGB {
			if ny > 0 {
				return sh.at(x, zoneShadow)
			}
			return sh.at(x, zoneBase)
		})
	}
	rec.FillRect(17, 49, 22, 50, sh.at(20, zoneShadow))
}

// paintAbdomen draws five segments narrowing by one pixel per side.
func paintAbdomen(rec *recording.Recorder, sh shell) {
	for i := range 5 {
		y, x1, x2 := 33+i*4, 15+i, 24-i
		for row := y; row <= y+3; row++ {
			z := zoneBase
			switch row {
			case y:
				z = zoneHighlight
			case y + 3:
				z = zoneShadow
			}
			for x := x1; x <= x2; x++ {
				rec.SetPixel(x, row, sh.at(x, z))
			}
		}
		if i < 4 {
			for x := x1; x <= x2; x++ {
				rec.SetPixel(x, y+4, sh.at(x, zoneBase).Darken(0.22))
			}
		}
		rec.SetPixel(x1, y+1, sh.at(x1, zoneBase).Darken(0.18))
		rec.SetPixel(x2, y+1, sh.at(x2, zoneBase).Darken(0.18))
	}
}

func paintCarapace(rec *recording.Recorder, sh shell) {
	rec.Ellipse(20, 25, 10, 8, func(x int, nx, ny float64) lobster.RGB {
		switch {
		case ny < -0.5:
			return sh.at(x, zoneHighlight)
		case ny > 0.45:
			return sh.at(x, zoneShadow)
		case math.Abs(nx) > 0.8:
			return sh.at(x, zoneDark)
		}
		return sh.at(x, zoneBase)
	})
	midline := sh.at(20, zoneBase).Darken(0.12)
	for y := 18; y <= 32; y++ {
		rec.SetPixel(20, y, midline)
	}
	for x := 15; x <= 24; x++ {
		rec.SetPixel(x, 32, sh.at(x, zoneBase).Darken(0.2))
	}
}

func paintHead(rec *recording.Recorder, sh shell) {
	rec.Ellipse(20, 18, 6, 4, func(x int, _, ny float64) lobster.RGB {
		switch {
		case ny < -0.4:
			return sh.at(x, zoneHighlight)
		case ny > 0.3:
			return sh.at(x, zoneShadow)
		}
		return sh.at(x, zoneBase)
	})
	for _, p := range rostrum {
		rec.SetPixel(p.x, p.y, sh.at(p.x, p.z))
	}
}

// paintChelipeds draws the two arm blocks the claws grow from. The left
// block spans columns 12..15 and the right 24..27; each has shadowed
// outer columns and a highlight on its top row.
func paintChelipeds(rec *recording.Recorder, sh shell) {
	blocks := []struct {
		x1, x2, fill, edgeA, edgeB, lit int
	}{
		{12, 15, 13, 12, 15, 13},
		{24, 27, 26, 27, 24, 26},
	}
	for _, b := range blocks {
		rec.FillRect(b.x1, 15, b.x2, 19, sh.at(b.fill, zoneBase))
		for y := 15; y <= 19; y++ {
			rec.SetPixel(b.edgeA, y, sh.at(b.edgeA, zoneShadow))
			rec.SetPixel(b.edgeB, y, sh.at(b.edgeB, zoneShadow))
			z := zoneBase
			if y == 15 {
				z = zoneHighlight
			}
			rec.SetPixel(b.lit, y, sh.at(b.lit, z))
		}
	}
}
