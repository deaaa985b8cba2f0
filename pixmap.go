package lobster

import (
	"hash/fnv"
	"image"
	"image/color"
)

// Canvas dimensions of every creature render.
const (
	Width  = 40
	Height = 52
)

// Pixmap represents a rectangular RGBA pixel buffer (8 bits per channel,
// row-major, not premultiplied).
type Pixmap struct {
	width  int
	height int
	data   []uint8 // RGBA format, 4 bytes per pixel
}

// NewPixmap creates a new transparent pixmap with the given dimensions.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// NewCanvas creates a pixmap with the fixed creature dimensions.
func NewCanvas() *Pixmap {
	return NewPixmap(Width, Height)
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data (RGBA format).
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// SetPixel sets the color of a single pixel and makes it opaque.
// Writes outside the pixmap are ignored.
func (p *Pixmap) SetPixel(x, y int, c RGB) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0] = c.R
	p.data[i+1] = c.G
	p.data[i+2] = c.B
	p.data[i+3] = 255
}

// Pixel returns the color of a single pixel, or Black outside the pixmap.
func (p *Pixmap) Pixel(x, y int) RGB {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return Black
	}
	i := (y*p.width + x) * 4
	return RGB{R: p.data[i+0], G: p.data[i+1], B: p.data[i+2]}
}

// Shade adds a signed delta to each color channel of a pixel, saturating
// at 0 and 255. Alpha is left untouched. Writes outside the pixmap are
// ignored.
func (p *Pixmap) Shade(x, y, dr, dg, db int) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0] = uint8(clampByte(int(p.data[i+0]) + dr))
	p.data[i+1] = uint8(clampByte(int(p.data[i+1]) + dg))
	p.data[i+2] = uint8(clampByte(int(p.data[i+2]) + db))
}

// FillRect fills the inclusive rectangle [x1,x2]×[y1,y2].
func (p *Pixmap) FillRect(x1, y1, x2, y2 int, c RGB) {
	for y := y1; y <= y2; y++ {
		for x := x1; x <= x2; x++ {
			p.SetPixel(x, y, c)
		}
	}
}

// Line draws a one-pixel Bresenham line including both end points.
func (p *Pixmap) Line(x0, y0, x1, y1 int, c RGB) {
	LinePoints(x0, y0, x1, y1, func(x, y int) {
		p.SetPixel(x, y, c)
	})
}

// Checksum returns the FNV-1a 64-bit hash of the raw pixel data.
// Golden vectors record this value per seed.
func (p *Pixmap) Checksum() uint64 {
	h := fnv.New64a()
	_, _ = h.Write(p.data)
	return h.Sum64()
}

// Clone returns a deep copy of the pixmap.
func (p *Pixmap) Clone() *Pixmap {
	c := NewPixmap(p.width, p.height)
	copy(c.data, p.data)
	return c
}

// ToImage converts the pixmap to an image.RGBA.
func (p *Pixmap) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return color.NRGBA{}
	}
	i := (y*p.width + x) * 4
	return color.NRGBA{R: p.data[i], G: p.data[i+1], B: p.data[i+2], A: p.data[i+3]}
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}
