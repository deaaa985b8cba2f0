package lobster

import "math"

// Noise returns a deterministic pseudo-random value in [0, 1) for the
// integer coordinate (x, y) at scale factor s.
//
// It is the classic trigonometric hash |fract(sin(x·127.1·s + y·311.7·s)·43758.5453)|.
// The constants and evaluation order must not change: scenes use it for
// texture placement and a different value moves pixels.
func Noise(x, y int, s float64) float64 {
	arg := float64(float64(x)*127.1*s) + float64(float64(y)*311.7*s)
	return math.Abs(math.Mod(math.Sin(arg)*43758.5453, 1))
}
