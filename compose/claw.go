package compose

import (
	"github.com/gogpu/lobster"
	"github.com/gogpu/lobster/recording"
)

type side uint8

const (
	leftSide side = iota
	rightSide
)

// clawGeometry holds the derived layout of one claw.
type clawGeometry struct {
	palmCX, palmCY int
	px1, px2       int // palm columns, inclusive
	py1, py2       int // palm rows, inclusive
	armX, armY     int // arm start on the cheliped
	fingerLen      int
}

func newClawGeometry(s side, scale float64) clawGeometry {
	g := clawGeometry{palmCX: 10, palmCY: 10, armX: 14, armY: 16}
	if s == rightSide {
		g.palmCX, g.armX = 29, 25
	}
	palmW := max(5, lobster.Round(6*scale))
	palmH := max(2, lobster.Round(2*scale))
	g.px1, g.px2 = g.palmCX-palmW/2, g.palmCX+palmW/2
	g.py1, g.py2 = g.palmCY-palmH/2, g.palmCY+palmH/2
	g.fingerLen = max(4, lobster.Round(6*scale))
	return g
}

// taper returns the finger width at step for a finger baseW wide.
func (g clawGeometry) taper(baseW, step int) int {
	return max(1, lobster.Round(float64(baseW)*(1-float64(step)/(float64(g.fingerLen)+0.5))))
}

// paintClaw records one claw: arm, palm, two tapering fingers split by a
// dark gap at the palm centre, and knuckle highlights. The right claw is
// the mirror image of the left at equal scale.
func paintClaw(rec *recording.Recorder, s side, scale float64, sh shell) {
	g := newClawGeometry(s, scale)
	gapX := g.palmCX

	rec.Line(g.armX, g.armY, g.palmCX, g.py2+1, sh.at(g.palmCX, zoneShadow))
	rec.Line(g.armX, g.armY-1, g.palmCX, g.py2, sh.at(g.palmCX, zoneBase))

	for y := g.py1; y <= g.py2; y++ {
		z := zoneBase
		switch y {
		case g.py1:
			z = zoneHighlight
		case g.py2:
			z = zoneShadow
		}
		for x := g.px1; x <= g.px2; x++ {
			rec.SetPixel(x, y, sh.at(x, z))
		}
	}

	// Each finger keeps its edge away from the gap and tapers toward it.
	// The finger nearer the body is drawn first.
	if s == rightSide {
		paintFinger(rec, g, g.px1, gapX-1, true, sh)
		paintFinger(rec, g, gapX+1, g.px2, false, sh)
	} else {
		paintFinger(rec, g, gapX+1, g.px2, false, sh)
		paintFinger(rec, g, g.px1, gapX-1, true, sh)
	}

	for step := 0; step <= g.fingerLen; step++ {
		fy := g.py1 - 1 - step
		if fy < 0 {
			break
		}
		rec.SetPixel(gapX, fy, sh.at(gapX, zoneShadow).Darken(0.6))
	}

	rec.SetPixel(g.px1, g.py1, sh.at(g.px1, zoneHighlight))
	rec.SetPixel(g.px2, g.py1, sh.at(g.px2, zoneHighlight))
	rec.SetPixel(gapX, g.py1, sh.at(gapX, zoneBase).Darken(0.15))
}

// paintFinger draws a finger upward from the row above the palm. When
// anchorLeft is set the finger keeps its left edge at fx1 and tapers from
// the right, otherwise it keeps fx2 and tapers from the left.
func paintFinger(rec *recording.Recorder, g clawGeometry, fx1, fx2 int, anchorLeft bool, sh shell) {
	baseW := fx2 - fx1 + 1
	for step := 0; step <= g.fingerLen; step++ {
		fy := g.py1 - 1 - step
		if fy < 0 {
			break
		}
		t := g.taper(baseW, step)
		lx, rx := fx2-t+1, fx2
		if anchorLeft {
			lx, rx = fx1, fx1+t-1
		}
		for x := lx; x <= rx; x++ {
			z := zoneBase
			switch {
			case step >= g.fingerLen-1:
				z = zoneDark
			case step == 0:
				z = zoneHighlight
			case x == lx || x == rx:
				z = zoneDark
			}
			rec.SetPixel(x, fy, sh.at(x, z))
		}
	}
}
