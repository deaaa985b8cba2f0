// Package raster provides a raster backend for the recording system.
// It plays recordings onto a lobster.Pixmap.
//
// The raster backend is the reference output: every other backend must
// produce the same pixel grid. It is also the source for PNG output, where
// the 40x52 grid is upscaled with nearest-neighbour sampling so pixel
// edges stay hard.
//
// # Example
//
//	// Import to register the backend
//	import _ "github.com/gogpu/lobster/recording/backends/raster"
//
//	// Create via registry
//	backend, _ := recording.NewBackend("png", recording.Options{Scale: 10})
//
//	// Or create directly, with a PNG scale factor
//	backend := raster.NewBackend(raster.WithScale(10))
//
//	rec.Playback(backend)
//	backend.SaveToFile("lobster.png")
//	pm := backend.Pixmap()
package raster

import (
	"bufio"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/draw"

	"github.com/gogpu/lobster"
	"github.com/gogpu/lobster/recording"
)

func init() {
	recording.Register(recording.Format{
		Name:        "png",
		ContentType: "image/png",
		New: func(o recording.Options) recording.Backend {
			return NewBackend(WithScale(o.Scale))
		},
	})
}

// MaxScale bounds the PNG upscale factor.
const MaxScale = 64

// Option configures a Backend.
type Option func(*Backend)

// WithScale sets the integer factor applied when encoding PNG output.
// Values below 1 are treated as 1 and values above MaxScale as MaxScale.
func WithScale(scale int) Option {
	return func(b *Backend) {
		b.scale = min(max(scale, 1), MaxScale)
	}
}

// Backend renders recordings to a lobster.Pixmap.
// It implements recording.Backend, recording.WriterBackend,
// recording.FileBackend, and recording.PixmapBackend interfaces.
type Backend struct {
	pm    *lobster.Pixmap
	scale int
}

// Ensure Backend implements all required interfaces.
var (
	_ recording.Backend       = (*Backend)(nil)
	_ recording.WriterBackend = (*Backend)(nil)
	_ recording.FileBackend   = (*Backend)(nil)
	_ recording.PixmapBackend = (*Backend)(nil)
)

// NewBackend creates a new raster backend.
// The backend must be initialized with Begin before use.
func NewBackend(opts ...Option) *Backend {
	b := &Backend{scale: 1}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Begin allocates a fresh transparent pixmap of the given dimensions.
func (b *Backend) Begin(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("raster: invalid size %dx%d", width, height)
	}
	b.pm = lobster.NewPixmap(width, height)
	return nil
}

// End finalizes the rendering.
func (b *Backend) End() error {
	return nil
}

// SetPixel writes one opaque pixel.
func (b *Backend) SetPixel(x, y int, c lobster.RGB) {
	b.pm.SetPixel(x, y, c)
}

// FillRect fills an inclusive rectangle.
func (b *Backend) FillRect(x1, y1, x2, y2 int, c lobster.RGB) {
	b.pm.FillRect(x1, y1, x2, y2, c)
}

// Line draws a Bresenham line.
func (b *Backend) Line(x0, y0, x1, y1 int, c lobster.RGB) {
	b.pm.Line(x0, y0, x1, y1, c)
}

// Shade adds a saturating delta to one pixel.
func (b *Backend) Shade(x, y, dr, dg, db int) {
	b.pm.Shade(x, y, dr, dg, db)
}

// Scale returns the PNG upscale factor.
func (b *Backend) Scale() int {
	return b.scale
}

// Width returns the pixmap width, 0 before Begin.
func (b *Backend) Width() int {
	if b.pm == nil {
		return 0
	}
	return b.pm.Width()
}

// Height returns the pixmap height, 0 before Begin.
func (b *Backend) Height() int {
	if b.pm == nil {
		return 0
	}
	return b.pm.Height()
}

// Pixmap returns the rendered pixmap.
func (b *Backend) Pixmap() *lobster.Pixmap {
	return b.pm
}

// Image returns the rendered grid upscaled by the backend scale.
func (b *Backend) Image() image.Image {
	if b.pm == nil {
		return nil
	}
	return Upscale(b.pm.ToImage(), b.scale)
}

// WriteTo writes the rendered content as PNG to the given writer.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	if b.pm == nil {
		return 0, fmt.Errorf("raster: WriteTo before Begin")
	}
	cw := &countingWriter{w: w}
	err := png.Encode(cw, b.Image())
	return cw.n, err
}

// SaveToFile saves the rendered content as PNG to a file.
func (b *Backend) SaveToFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(f)
	if _, err := b.WriteTo(bw); err != nil {
		_ = f.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// Upscale returns src enlarged by an integer factor using nearest-neighbour
// sampling. A scale of 1 returns src unchanged.
func Upscale(src *image.RGBA, scale int) *image.RGBA {
	if scale <= 1 {
		return src
	}
	r := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, r.Dx()*scale, r.Dy()*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, r, draw.Src, nil)
	return dst
}

// countingWriter wraps an io.Writer and counts bytes written.
type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}
