// Package recording captures lobster drawing operations as commands that
// can be played back to different output backends.
//
// # Architecture
//
// The system follows a Command Pattern with three main components:
//
//   - Recorder: captures pixel-level drawing operations as commands
//   - Recording: an immutable command list plus its colour palette
//   - Backend: renders commands to a specific output format
//
// Every primitive the compositor uses is expressed on the 40x52 pixel
// grid: single pixels, inclusive rectangles, Bresenham lines and additive
// shading. Ellipses are expanded into pixels while recording, because
// their colour is computed per pixel. Because no backend ever sees
// anything coarser than a pixel, every backend reproduces exactly the
// same grid, only its encoding differs.
//
// # Basic Usage
//
//	rec := recording.NewRecorder(lobster.Width, lobster.Height)
//	rec.FillRect(0, 0, 39, 51, lobster.Hex("#0A1828"))
//	rec.SetPixel(20, 20, lobster.Hex("#C84820"))
//	r := rec.FinishRecording()
//
// # Playback to Backends
//
//	import _ "github.com/gogpu/lobster/recording/backends/raster"
//	import _ "github.com/gogpu/lobster/recording/backends/svg"
//
//	b, _ := recording.NewBackend("svg", recording.Options{Scale: 10})
//	if err := r.Playback(b); err != nil {
//		return err
//	}
//	b.(recording.WriterBackend).WriteTo(w)
//
// # Backend Registration
//
// Backends register an output Format in init, following the database/sql
// driver pattern. The format name is also the file extension, so callers
// can go from "lobster.svg" to a backend with one Lookup.
package recording
