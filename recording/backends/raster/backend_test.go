package raster

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/lobster"
	"github.com/gogpu/lobster/recording"
)

var (
	red  = lobster.Hex("#C84820")
	blue = lobster.Hex("#1A4E8C")
)

func TestBackendRegistration(t *testing.T) {
	f, ok := recording.Lookup("png")
	if !ok {
		t.Fatal("png format not registered")
	}
	if f.ContentType != "image/png" {
		t.Errorf("ContentType = %q", f.ContentType)
	}

	backend, err := recording.NewBackend("png", recording.Options{Scale: 4})
	if err != nil {
		t.Fatalf("failed to create raster backend: %v", err)
	}
	b, ok := backend.(*Backend)
	if !ok {
		t.Fatal("backend is not *raster.Backend")
	}
	if b.Scale() != 4 {
		t.Errorf("Scale() = %d, want 4", b.Scale())
	}
}

func TestBackendLifecycle(t *testing.T) {
	backend := NewBackend()

	if err := backend.Begin(40, 52); err != nil {
		t.Fatalf("Begin failed: %v", err)
	}
	if backend.Width() != 40 {
		t.Errorf("Width = %d, want 40", backend.Width())
	}
	if backend.Height() != 52 {
		t.Errorf("Height = %d, want 52", backend.Height())
	}
	if err := backend.End(); err != nil {
		t.Fatalf("End failed: %v", err)
	}
	if backend.Pixmap() == nil {
		t.Fatal("Pixmap() returned nil")
	}
}

func TestBackendBeginInvalidSize(t *testing.T) {
	if err := NewBackend().Begin(0, 52); err == nil {
		t.Error("Begin(0, 52) succeeded, want error")
	}
}

func TestBackendPlayback(t *testing.T) {
	rec := recording.NewRecorder(8, 8)
	rec.FillRect(0, 0, 7, 7, blue)
	rec.SetPixel(2, 3, red)
	rec.Line(0, 7, 7, 7, red)
	rec.Shade(5, 5, -20, -20, -20)
	rec.SetPixel(-1, 100, red)

	backend := NewBackend()
	if err := rec.FinishRecording().Playback(backend); err != nil {
		t.Fatalf("Playback failed: %v", err)
	}
	pm := backend.Pixmap()

	tests := []struct {
		x, y int
		want lobster.RGB
	}{
		{0, 0, blue},
		{2, 3, red},
		{4, 7, red},
		{5, 5, lobster.RGB{R: blue.R - 20, G: blue.G - 20, B: blue.B - 20}},
	}
	for _, tt := range tests {
		if got := pm.Pixel(tt.x, tt.y); got != tt.want {
			t.Errorf("Pixel(%d,%d) = %s, want %s", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestWithScale(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{0, 1},
		{1, 1},
		{10, 10},
		{1000, MaxScale},
	}
	for _, tt := range tests {
		if got := NewBackend(WithScale(tt.in)).Scale(); got != tt.want {
			t.Errorf("WithScale(%d).Scale() = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestWriteToPNGUpscaled(t *testing.T) {
	rec := recording.NewRecorder(4, 2)
	rec.FillRect(0, 0, 3, 1, blue)
	rec.SetPixel(1, 0, red)

	backend := NewBackend(WithScale(3))
	if err := rec.FinishRecording().Playback(backend); err != nil {
		t.Fatalf("Playback failed: %v", err)
	}

	var buf bytes.Buffer
	n, err := backend.WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo failed: %v", err)
	}
	if n != int64(buf.Len()) {
		t.Errorf("WriteTo returned %d, buffer has %d bytes", n, buf.Len())
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode failed: %v", err)
	}
	if got, want := img.Bounds(), image.Rect(0, 0, 12, 6); got != want {
		t.Fatalf("bounds = %v, want %v", got, want)
	}
	for _, p := range []image.Point{{3, 0}, {5, 2}, {4, 1}} {
		r, g, b, _ := img.At(p.X, p.Y).RGBA()
		if uint8(r>>8) != red.R || uint8(g>>8) != red.G || uint8(b>>8) != red.B {
			t.Errorf("pixel %v = (%d,%d,%d), want %s", p, r>>8, g>>8, b>>8, red)
		}
	}
	r, _, _, _ := img.At(6, 0).RGBA()
	if uint8(r>>8) != blue.R {
		t.Errorf("pixel (6,0) red channel = %d, want %d", r>>8, blue.R)
	}
}

func TestWriteToBeforeBegin(t *testing.T) {
	var buf bytes.Buffer
	if _, err := NewBackend().WriteTo(&buf); err == nil {
		t.Error("WriteTo before Begin succeeded, want error")
	}
}

func TestSaveToFile(t *testing.T) {
	rec := recording.NewRecorder(4, 4)
	rec.FillRect(0, 0, 3, 3, red)
	backend := NewBackend(WithScale(2))
	if err := rec.FinishRecording().Playback(backend); err != nil {
		t.Fatalf("Playback failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "out.png")
	if err := backend.SaveToFile(path); err != nil {
		t.Fatalf("SaveToFile failed: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("DecodeConfig: %v", err)
	}
	if cfg.Width != 8 || cfg.Height != 8 {
		t.Errorf("saved size = %dx%d, want 8x8", cfg.Width, cfg.Height)
	}
}

func TestUpscaleIdentity(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	if got := Upscale(src, 1); got != src {
		t.Error("Upscale(src, 1) should return src")
	}
}
