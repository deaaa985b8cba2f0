package recording

import (
	"io"

	"github.com/gogpu/lobster"
)

// Backend is the interface that all output backends must implement.
// Backends receive pixel-grid commands with resolved colours and translate
// them to their output format (raster pixels, SVG elements, etc.).
//
// Backends are created via the registry using NewBackend(name, opts) and
// registered via Register() in their init() functions.
//
// # Implementation Contract
//
// Each backend must:
//  1. Register in init() using recording.Register()
//  2. Drop pixels outside [0,width)x[0,height) silently
//  3. Apply commands strictly in order, later writes replacing earlier ones
//  4. Saturate Shade deltas at 0 and 255 per channel
type Backend interface {
	// Begin initializes the backend for a canvas of the given dimensions.
	// This must be called before any drawing operations.
	Begin(width, height int) error

	// End finalizes the rendering and prepares the output.
	// After End is called, output methods (WriteTo, SaveToFile) can be used.
	End() error

	// SetPixel writes one opaque pixel.
	SetPixel(x, y int, c lobster.RGB)

	// FillRect fills the inclusive rectangle (x1,y1)-(x2,y2).
	FillRect(x1, y1, x2, y2 int, c lobster.RGB)

	// Line draws a Bresenham line including both endpoints.
	Line(x0, y0, x1, y1 int, c lobster.RGB)

	// Shade adds a signed delta to each channel of the pixel at (x, y).
	Shade(x, y, dr, dg, db int)
}

// WriterBackend extends Backend with the ability to write output to an io.Writer.
type WriterBackend interface {
	Backend

	// WriteTo writes the rendered content to the given writer.
	// This should only be called after End().
	WriteTo(w io.Writer) (int64, error)
}

// FileBackend extends Backend with the ability to save output directly to a file.
type FileBackend interface {
	Backend

	// SaveToFile saves the rendered content to a file at the given path.
	// This should only be called after End().
	SaveToFile(path string) error
}

// PixmapBackend extends Backend with access to the resolved pixel grid.
type PixmapBackend interface {
	Backend

	// Pixmap returns the rendered pixmap, or nil before End.
	Pixmap() *lobster.Pixmap
}
