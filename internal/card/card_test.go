package card

import (
	"bytes"
	"image"
	"image/png"
	"strings"
	"testing"

	"github.com/gogpu/lobster"
	"github.com/gogpu/lobster/compose"
	"github.com/gogpu/lobster/traits"
)

func pixel(img *image.RGBA, x, y int) lobster.RGB {
	c := img.RGBAAt(x, y)
	return lobster.RGB{R: c.R, G: c.G, B: c.B}
}

func TestRender(t *testing.T) {
	c := ForSeed(0x1A2B3C4D5E6F7089)
	img, err := Render(c)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if got := img.Bounds(); got != image.Rect(0, 0, Width, Height) {
		t.Fatalf("Bounds() = %v", got)
	}
	if got := pixel(img, 5, 5); got != background {
		t.Errorf("corner = %v, want %v", got, background)
	}

	pm := compose.Render(c.Traits)
	for _, p := range []image.Point{{0, 0}, {20, 26}, {39, 51}, {7, 40}} {
		for _, d := range []image.Point{{0, 0}, {ArtScale - 1, ArtScale - 1}} {
			x, y := artX+p.X*ArtScale+d.X, artY+p.Y*ArtScale+d.Y
			if got, want := pixel(img, x, y), pm.Pixel(p.X, p.Y); got != want {
				t.Errorf("art (%d,%d) at card (%d,%d) = %v, want %v", p.X, p.Y, x, y, got, want)
			}
		}
	}

	if !regionHasInk(img, image.Rect(panelX, 60, Width, 170)) {
		t.Error("label area is blank")
	}
	if regionHasInk(img, image.Rect(panelX, 0, Width, 40)) {
		t.Error("text drawn above the label")
	}
}

func regionHasInk(img *image.RGBA, r image.Rectangle) bool {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if pixel(img, x, y) != background {
				return true
			}
		}
	}
	return false
}

func TestRenderDeterministic(t *testing.T) {
	a, err := Render(ForToken(42, 0x9876543210ABCDEF))
	if err != nil {
		t.Fatal(err)
	}
	b, err := Render(ForToken(42, 0x9876543210ABCDEF))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a.Pix, b.Pix) {
		t.Error("two renders of the same card differ")
	}
}

func TestForToken(t *testing.T) {
	c := ForToken(42, 7)
	if c.Label != "#0042" {
		t.Errorf("Label = %q, want #0042", c.Label)
	}
	if c.Seed != 7 {
		t.Errorf("Seed = %d, want 7", c.Seed)
	}
}

func TestSeedFooter(t *testing.T) {
	p, ok := traits.PresetByLabel("Ghost")
	if !ok {
		t.Fatal("preset Ghost missing")
	}
	tests := []struct {
		name   string
		card   Card
		label  string
		footer string
	}{
		{"seed", ForSeed(0xAB), "00000000000000ab", "SEED 0x00000000000000AB"},
		{"token", ForToken(3, 0xAB), "#0003", "SEED 0x00000000000000AB"},
		{"preset", ForPreset(p), "Ghost", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := tt.card.lines()
			if got := lines[0].text; got != tt.label {
				t.Errorf("label = %q, want %q", got, tt.label)
			}
			var footer string
			for _, l := range lines {
				if strings.HasPrefix(l.text, "SEED") {
					footer = l.text
				}
			}
			if footer != tt.footer {
				t.Errorf("footer = %q, want %q", footer, tt.footer)
			}
		})
	}
}

func TestEncode(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, ForSeed(0)); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if got := img.Bounds().Size(); got != image.Pt(Width, Height) {
		t.Errorf("decoded size = %v", got)
	}
}

func BenchmarkRender(b *testing.B) {
	c := ForSeed(0x1A2B3C4D5E6F7089)
	for b.Loop() {
		if _, err := Render(c); err != nil {
			b.Fatal(err)
		}
	}
}
