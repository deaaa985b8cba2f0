// Package lobster provides the pixel primitives shared by the lobster
// creature renderer.
//
// # Overview
//
// A lobster is a 40×52 pixel-art creature rendered deterministically from a
// single 64-bit seed. The seed is decoded into a trait vector by package
// traits, the trait vector is composed into a drawing recording by package
// compose, and the recording is played back to a raster backend (a Pixmap)
// or to an SVG backend. Both outputs come from the same recording.
//
// This package holds the leaves of that pipeline:
//   - RGB colours with the exact mix/darken/lighten rounding of the
//     canonical renderer
//   - Pixmap, a bounds-checked RGBA buffer
//   - Bresenham lines and shaded ellipse traversal
//   - Noise, the integer-coordinate trigonometric hash used by scenes
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/lobster/compose"
//	    "github.com/gogpu/lobster/traits"
//	)
//
//	t := traits.Decode(0x1A2B3C4D5E6F7089)
//	pm := compose.Render(t)
//	img := pm.ToImage()
//
// # Coordinate System
//
// Origin (0,0) at top-left, X increases right, Y increases down. All
// drawing is in whole pixels; there is no anti-aliasing.
//
// # Parity
//
// Output must match the canonical on-chain renderer pixel for pixel. The
// golden vectors in compose/testdata are the regression mechanism: any
// change to colours, rounding or draw order shows up as a checksum
// mismatch there.
package lobster

// Version information
const (
	// Version is the current version of the library
	Version = "0.3.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 3

	// VersionPatch is the patch version
	VersionPatch = 0
)
