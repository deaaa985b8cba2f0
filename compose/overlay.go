package compose

import (
	"math"

	"github.com/gogpu/lobster"
	"github.com/gogpu/lobster/recording"
	"github.com/gogpu/lobster/traits"
)

var (
	glowGreen = lobster.Hex("#30E060")
	glowBlue  = lobster.Hex("#2878F0")
	voidBlack = lobster.RGB{R: 4, G: 4, B: 4}
	pupil     = lobster.RGB{R: 20, G: 12, B: 8}
	cycCore   = lobster.RGB{R: 12, G: 8, B: 6}
	cycRim    = lobster.RGB{R: 28, G: 18, B: 10}
	laserCore = lobster.Hex("#FF2808")
	laserGlow = lobster.Hex("#FF8820")
	nogFrame  = lobster.Hex("#2040E0")
	nogLens   = lobster.Hex("#080818")

	gold     = lobster.Hex("#D4A820")
	black    = lobster.Hex("#141414")
	white    = lobster.Hex("#E8E4DC")
	jewelRed = lobster.Hex("#C82820")
	barnacle = lobster.Hex("#B0A888")
	blush    = lobster.Hex("#E05080")
	chainDim = lobster.Hex("#A07810")
	chainLit = lobster.Hex("#F0CC50")

	rainbow = [...]lobster.RGB{
		lobster.Hex("#FF2020"), lobster.Hex("#FF8C00"), lobster.Hex("#FFE020"), lobster.Hex("#20D020"),
		lobster.Hex("#2090FF"), lobster.Hex("#A020FF"), lobster.Hex("#FF40CC"),
	}
)

// eyeColumns are the centre columns of the left and right eye.
var eyeColumns = [2]int{16, 23}

// paintOverlay records markings, antennae, eyes and accessories, in that
// order. floor is the scene floor colour that glows fade into.
func paintOverlay(rec *recording.Recorder, t traits.Traits, sh shell, floor lobster.RGB) {
	paintMarking(rec, t.Marking, sh)

	antC := sh.at(20, zoneShadow).Darken(0.1)
	if t.BrokenAntenna {
		rec.Line(18, 14, 12, 8, antC)
	} else {
		rec.Line(18, 14, 6, 0, antC)
	}
	rec.Line(22, 14, 31, 0, antC)

	paintEyes(rec, t.Eyes, sh, floor)
	paintAccessory(rec, t.Accessory, floor)
}

// insideCarapace reports whether (x, y) lies in the marking ellipse
// centred at (20, 25) with radii 10 and 9.
func insideCarapace(x, y int) bool {
	dx := float64(x-20) / 10
	dy := float64(y-25) / 9
	return float64(dx*dx)+float64(dy*dy) < 1
}

func paintMarking(rec *recording.Recorder, marking int, sh shell) {
	irid := sh.base.Lighten(0.5)
	mk := sh.at(20, zoneShadow).Darken(0.18)

	switch marking {
	case 1: // spotted
		for _, p := range [][2]int{{17, 22}, {21, 25}, {23, 21}, {16, 28}, {24, 26}, {19, 21}, {20, 29}} {
			rec.SetPixel(p[0], p[1], mk)
		}
	case 2: // striped
		for _, sy := range []int{22, 26, 30} {
			for x := 12; x <= 28; x++ {
				if insideCarapace(x, sy) {
					rec.SetPixel(x, sy, mk)
				}
			}
		}
	case 3: // iridescent
		for i := range 16 {
			x, y := 11+i, 20+int(math.Floor(float64(i)*0.6))
			rec.SetPixel(x, y, sh.at(x, zoneBase).Mix(irid, 0.55))
		}
	case 4: // battle scarred
		scar := sh.shadow.Darken(0.5)
		for _, p := range [][2]int{{15, 22}, {16, 23}, {15, 23}, {16, 22}, {24, 27}, {25, 26}, {25, 28}, {26, 27}} {
			rec.SetPixel(p[0], p[1], scar)
		}
	case 5: // banded
		for i := range 5 {
			y := 33 + i*4
			for x := 15 + i; x <= 24-i; x++ {
				rec.SetPixel(x, y, mk)
			}
		}
	case 6: // mottled
		for _, p := range [][2]int{{16, 21}, {20, 23}, {23, 21}, {15, 27}, {22, 28}, {18, 25}, {24, 25}} {
			rec.SetPixel(p[0], p[1], mk)
			rec.SetPixel(p[0]+1, p[1], mk)
			rec.SetPixel(p[0], p[1]+1, mk)
		}
	case 7: // chitin sheen
		for y := 19; y <= 31; y++ {
			for x := 11; x <= 28; x++ {
				if (x+y)%2 == 0 && insideCarapace(x, y) {
					rec.SetPixel(x, y, sh.at(x, zoneBase).Mix(irid, 0.38))
				}
			}
		}
	}
}

func paintEyes(rec *recording.Recorder, eyes int, sh shell, floor lobster.RGB) {
	switch eyes {
	case 3: // cyclops
		rec.Ellipse(20, 17, 2, 2, func(_ int, nx, ny float64) lobster.RGB {
			if float64(nx*nx)+float64(ny*ny) < 0.22 {
				return cycCore
			}
			return cycRim
		})
		rec.SetPixel(19, 16, cycRim.Lighten(0.4))

	case 4: // void
		for _, ex := range eyeColumns {
			rec.FillRect(ex-1, 16, ex+1, 18, voidBlack)
			for _, nx := range []int{ex - 2, ex + 2} {
				rec.SetPixel(nx, 17, sh.at(nx, zoneShadow).Darken(0.4))
			}
			rec.SetPixel(ex, 15, sh.at(ex, zoneShadow).Darken(0.35))
			rec.SetPixel(ex, 19, sh.at(ex, zoneShadow).Darken(0.35))
		}

	case 5: // laser
		for ei, ex := range eyeColumns {
			rec.FillRect(ex-1, 18, ex+1, 19, sh.at(ex, zoneShadow).Darken(0.1))
			rec.FillRect(ex-1, 16, ex+1, 18, laserCore)
			rec.SetPixel(ex, 16, laserCore.Lighten(0.4))
			out := 1
			if ei == 0 {
				out = -1
			}
			for y := 0; y <= 15; y++ {
				fade := float64(y) / 15
				rec.SetPixel(ex, 15-y, laserCore.Mix(laserGlow, fade))
				rec.SetPixel(ex+out, 15-y, laserGlow.Mix(floor, 0.5+float64(fade*0.4)))
			}
		}

	case 6: // noggles
		rec.FillRect(12, 15, 17, 19, nogFrame)
		rec.FillRect(13, 16, 16, 18, nogLens)
		rec.FillRect(21, 15, 26, 19, nogFrame)
		rec.FillRect(22, 16, 25, 18, nogLens)
		rec.FillRect(18, 17, 20, 17, nogFrame)
		rec.FillRect(11, 17, 12, 17, nogFrame)
		rec.FillRect(26, 17, 27, 17, nogFrame)
		rec.SetPixel(13, 16, nogLens.Lighten(0.25))
		rec.SetPixel(22, 16, nogLens.Lighten(0.25))

	default: // standard, glow green, glow blue
		var glow lobster.RGB
		hasGlow := false
		switch eyes {
		case 1:
			glow, hasGlow = glowGreen, true
		case 2:
			glow, hasGlow = glowBlue, true
		}
		iris := pupil
		if hasGlow {
			iris = glow
		}
		for ei, ex := range eyeColumns {
			rec.FillRect(ex-1, 18, ex+1, 19, sh.at(ex, zoneShadow).Darken(0.1))
			rec.FillRect(ex-1, 16, ex+1, 18, iris)
			catch := ex - 1
			if ei == 0 {
				catch = ex
			}
			rec.SetPixel(catch, 16, iris.Lighten(0.42))
			if hasGlow {
				gd := floor.Mix(glow, 0.35)
				rec.SetPixel(ex-2, 17, gd)
				rec.SetPixel(ex+2, 17, gd)
				rec.SetPixel(ex, 15, gd)
				rec.SetPixel(ex, 19, gd)
				rec.SetPixel(ex-1, 15, gd.Mix(floor, 0.5))
				rec.SetPixel(ex+1, 15, gd.Mix(floor, 0.5))
			}
		}
	}
}

func paintAccessory(rec *recording.Recorder, accessory int, floor lobster.RGB) {
	switch accessory {
	case 1: // pirate hat
		rec.FillRect(13, 9, 26, 10, black)
		rec.FillRect(15, 6, 24, 9, black)
		rec.FillRect(17, 5, 22, 6, black)
		for _, p := range [][2]int{{19, 7}, {20, 7}, {19, 8}, {18, 8}, {21, 8}} {
			rec.SetPixel(p[0], p[1], white)
		}
		band := black.Mix(white, 0.14)
		for x := 15; x <= 24; x++ {
			rec.SetPixel(x, 9, band)
		}

	case 2: // crown
		rec.FillRect(16, 10, 23, 11, gold)
		for _, x := range []int{17, 22, 15, 24} {
			rec.SetPixel(x, 9, gold)
		}
		rec.SetPixel(19, 8, gold)
		rec.SetPixel(20, 8, gold)
		// The jewels are painted and then covered by the band row, which
		// matches the reference output.
		rec.SetPixel(19, 10, jewelRed)
		rec.SetPixel(21, 10, jewelRed)
		band := gold.Lighten(0.18)
		for x := 16; x <= 23; x++ {
			rec.SetPixel(x, 10, band)
		}

	case 3: // eye patch
		rec.FillRect(13, 16, 17, 18, black)
		rec.Line(18, 16, 22, 14, black)
		rec.SetPixel(14, 16, black.Mix(white, 0.12))

	case 4: // barnacles
		for _, p := range [][2]int{{18, 21}, {22, 20}, {16, 25}, {24, 27}, {20, 23}} {
			x, y := p[0], p[1]
			rec.FillRect(x, y, x+1, y+1, barnacle)
			rec.SetPixel(x+1, y+1, barnacle.Darken(0.3))
			rec.SetPixel(x, y, barnacle.Lighten(0.12))
		}

	case 5: // old coin
		rec.Ellipse(7, 11, 2, 2, func(_ int, _, ny float64) lobster.RGB {
			if ny < 0 {
				return gold.Lighten(0.2)
			}
			return gold.Darken(0.15)
		})
		rec.SetPixel(7, 11, gold.Mix(lobster.RGB{R: 200, G: 160, B: 0}, 0.6))
		rec.SetPixel(6, 10, gold.Lighten(0.3))

	case 6: // admiral hat
		rec.FillRect(12, 7, 27, 9, black)
		rec.FillRect(15, 5, 24, 7, black)
		rec.FillRect(17, 4, 22, 5, black)
		for x := 12; x <= 27; x++ {
			rec.SetPixel(x, 7, gold)
		}
		trim := gold.Darken(0.3)
		for x := 15; x <= 24; x++ {
			rec.SetPixel(x, 5, trim)
		}
		rec.SetPixel(13, 6, lobster.Hex("#E8E0D0"))
		rec.SetPixel(12, 5, lobster.Hex("#F0EAE0"))
		rec.SetPixel(11, 4, lobster.Hex("#F4EEE4"))
		rec.SetPixel(10, 3, lobster.Hex("#F8F4F0"))

	case 7: // pearl
		dim, bright := lobster.RGB{R: 215, G: 210, B: 205}, lobster.RGB{R: 242, G: 240, B: 238}
		rec.Ellipse(32, 11, 2, 2, func(_ int, nx, ny float64) lobster.RGB {
			r2 := float64(nx*nx) + float64(ny*ny)
			return dim.Mix(bright, float64((1-r2)*0.65)+0.35)
		})
		rec.SetPixel(31, 10, lobster.Hex("#F8F6F4"))

	case 8: // rainbow puke
		n := len(rainbow)
		for step := range 12 {
			y := 11 - step
			spread := float64(step) * 1.4

			lx, lc := lobster.Round(20-spread), rainbow[step%n]
			rec.SetPixel(lx, y, lc)
			rec.SetPixel(lx-1, y, lc.Mix(rainbow[(step+1)%n], 0.5))

			rx, rc := lobster.Round(20+spread), rainbow[(step+3)%n]
			rec.SetPixel(rx, y, rc)
			rec.SetPixel(rx+1, y, rc.Mix(rainbow[(step+4)%n], 0.5))

			if step < 6 {
				rec.SetPixel(20, y, rainbow[(step+1)%n])
			}
		}
		for _, p := range [][3]int{{18, 12, 0}, {19, 12, 1}, {20, 11, 2}, {21, 12, 3}, {22, 12, 4}} {
			rec.SetPixel(p[0], p[1], rainbow[p[2]])
		}

	case 9: // gold chain
		for x := 12; x <= 28; x++ {
			y := chainY(x)
			top, bottom := gold, chainDim
			if x%3 == 0 {
				top, bottom = chainLit, gold
			}
			rec.SetPixel(x, y, top)
			rec.SetPixel(x, y+1, bottom)
			if x == 20 {
				rec.SetPixel(20, y+2, chainLit)
				rec.SetPixel(20, y+3, gold)
				rec.Ellipse(20, float64(y+5), 2, 2, func(_ int, _, ny float64) lobster.RGB {
					if ny < 0 {
						return gold.Lighten(0.2)
					}
					return gold.Darken(0.2)
				})
				rec.SetPixel(20, y+4, gold.Mix(chainLit, 0.6))
			}
		}

	case 10: // blush
		soft, center := blush.Mix(floor, 0.35), blush.Mix(floor, 0.2)
		for _, p := range [][2]int{{13, 23}, {14, 24}, {13, 24}, {14, 23}, {12, 24}} {
			rec.SetPixel(p[0], p[1], soft)
		}
		rec.SetPixel(13, 23, center)
		for _, p := range [][2]int{{26, 23}, {27, 24}, {26, 24}, {27, 23}, {28, 24}} {
			rec.SetPixel(p[0], p[1], soft)
		}
		rec.SetPixel(27, 23, center)
	}
}

// chainY is the row of the necklace at column x: a shallow sine sag
// centred on the body axis.
func chainY(x int) int {
	return lobster.Round(28 + float64(math.Sin(float64(x-20)/8*math.Pi)*1.5))
}
