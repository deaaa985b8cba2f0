package lobster

import (
	"image"
	"image/color"
	"testing"
)

func TestNewCanvas(t *testing.T) {
	pm := NewCanvas()
	if pm.Width() != 40 || pm.Height() != 52 {
		t.Fatalf("NewCanvas() = %dx%d, want 40x52", pm.Width(), pm.Height())
	}
	if len(pm.Data()) != 40*52*4 {
		t.Errorf("len(Data()) = %d, want %d", len(pm.Data()), 40*52*4)
	}
	for i, v := range pm.Data() {
		if v != 0 {
			t.Fatalf("Data()[%d] = %d, want 0", i, v)
		}
	}
}

func TestSetPixel(t *testing.T) {
	pm := NewPixmap(4, 3)
	c := RGB{10, 20, 30}
	pm.SetPixel(2, 1, c)

	if got := pm.Pixel(2, 1); got != c {
		t.Errorf("Pixel(2, 1) = %v, want %v", got, c)
	}
	i := (1*4 + 2) * 4
	if a := pm.Data()[i+3]; a != 255 {
		t.Errorf("alpha = %d, want 255", a)
	}
	if got := pm.Pixel(-1, 0); got != Black {
		t.Errorf("Pixel(-1, 0) = %v, want Black", got)
	}
}

func TestSetPixelOutOfBounds(t *testing.T) {
	pm := NewPixmap(4, 4)
	for _, p := range []struct{ x, y int }{{-1, 0}, {4, 0}, {0, -1}, {0, 4}, {100, 100}} {
		pm.SetPixel(p.x, p.y, White)
		pm.Shade(p.x, p.y, 10, 10, 10)
	}
	for i, v := range pm.Data() {
		if v != 0 {
			t.Fatalf("out-of-bounds write changed Data()[%d] to %d", i, v)
		}
	}
}

func TestShade(t *testing.T) {
	pm := NewPixmap(1, 1)
	pm.SetPixel(0, 0, RGB{250, 5, 100})
	pm.Shade(0, 0, 18, -14, 8)

	if got, want := pm.Pixel(0, 0), (RGB{255, 0, 108}); got != want {
		t.Errorf("Pixel after Shade = %v, want %v", got, want)
	}
	if a := pm.Data()[3]; a != 255 {
		t.Errorf("Shade changed alpha to %d", a)
	}

	empty := NewPixmap(1, 1)
	empty.Shade(0, 0, 5, 5, 5)
	if a := empty.Data()[3]; a != 0 {
		t.Errorf("Shade on an untouched pixel set alpha to %d", a)
	}
}

func TestFillRect(t *testing.T) {
	pm := NewPixmap(6, 6)
	pm.FillRect(1, 2, 3, 4, White)

	count := 0
	for y := range 6 {
		for x := range 6 {
			inside := x >= 1 && x <= 3 && y >= 2 && y <= 4
			if (pm.Pixel(x, y) == White) != inside {
				t.Errorf("Pixel(%d, %d) inside=%v but got %v", x, y, inside, pm.Pixel(x, y))
			}
			if pm.Pixel(x, y) == White {
				count++
			}
		}
	}
	if count != 9 {
		t.Errorf("filled %d pixels, want 9", count)
	}

	inverted := NewPixmap(6, 6)
	inverted.FillRect(3, 3, 1, 1, White)
	if inverted.Checksum() != NewPixmap(6, 6).Checksum() {
		t.Error("inverted FillRect drew pixels")
	}
}

func TestLine(t *testing.T) {
	pm := NewPixmap(10, 10)
	pm.Line(1, 1, 8, 4, White)
	if pm.Pixel(1, 1) != White || pm.Pixel(8, 4) != White {
		t.Error("Line did not include both end points")
	}
}

func TestChecksum(t *testing.T) {
	pm := NewPixmap(1, 1)
	if got, want := pm.Checksum(), uint64(0x4d25767f9dce13f5); got != want {
		t.Errorf("Checksum() = %#x, want %#x", got, want)
	}
	pm.SetPixel(0, 0, RGB{255, 0, 0})
	if got, want := pm.Checksum(), uint64(0x6960db6491cbfed3); got != want {
		t.Errorf("Checksum() = %#x, want %#x", got, want)
	}
}

func TestClone(t *testing.T) {
	pm := NewPixmap(2, 2)
	pm.SetPixel(0, 0, White)
	c := pm.Clone()
	c.SetPixel(1, 1, White)

	if pm.Pixel(1, 1) == White {
		t.Error("Clone shares pixel data with the original")
	}
	if c.Pixel(0, 0) != White {
		t.Error("Clone lost original pixel")
	}
}

func TestPixmapImage(t *testing.T) {
	pm := NewPixmap(3, 2)
	pm.SetPixel(2, 1, RGB{1, 2, 3})

	var img image.Image = pm
	if got := img.Bounds(); got != image.Rect(0, 0, 3, 2) {
		t.Errorf("Bounds() = %v", got)
	}
	if got, want := img.At(2, 1), (color.NRGBA{1, 2, 3, 255}); got != want {
		t.Errorf("At(2, 1) = %v, want %v", got, want)
	}
	if got := img.At(0, 0); got != (color.NRGBA{}) {
		t.Errorf("At(0, 0) = %v, want transparent", got)
	}

	rgba := pm.ToImage()
	if rgba.RGBAAt(2, 1) != (color.RGBA{1, 2, 3, 255}) {
		t.Errorf("ToImage() pixel = %v", rgba.RGBAAt(2, 1))
	}
}

func BenchmarkChecksum(b *testing.B) {
	pm := NewCanvas()
	pm.FillRect(0, 0, Width-1, Height-1, Hex("#C84820"))
	b.ReportAllocs()
	for b.Loop() {
		_ = pm.Checksum()
	}
}
