// Package card draws share cards: the creature scaled up on a dark panel
// with its trait names beside it.
package card

import (
	"bufio"
	"fmt"
	"image"
	"image/png"
	"io"
	"sync"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/gogpu/lobster"
	"github.com/gogpu/lobster/compose"
	"github.com/gogpu/lobster/recording/backends/raster"
	"github.com/gogpu/lobster/traits"
)

// Card geometry.
const (
	Width    = 1200
	Height   = 630
	ArtScale = 10

	artX   = 80
	artY   = (Height - lobster.Height*ArtScale) / 2
	panelX = artX + lobster.Width*ArtScale + 80
	panelW = Width - panelX - 60
)

var (
	background = lobster.Hex("#050509")
	accent     = lobster.Hex("#C84820")
	heading    = lobster.Hex("#DDDDDD")
	body       = lobster.Hex("#888888")
	footer     = lobster.Hex("#444444")
)

var monoBold = sync.OnceValues(func() (*opentype.Font, error) {
	return opentype.Parse(gomonobold.TTF)
})

// Card describes one share card.
type Card struct {
	// Label is the large heading, e.g. "#0042". Empty uses the seed.
	Label  string
	Seed   uint64
	Traits traits.Traits
	// NoSeed leaves the seed footer off, for trait vectors that were not
	// decoded from a seed.
	NoSeed bool
}

// ForSeed returns the card for seed with the default label.
func ForSeed(seed uint64) Card {
	return Card{Seed: seed, Traits: traits.Decode(seed)}
}

// ForToken returns the card for a stored token.
func ForToken(id int64, seed uint64) Card {
	return Card{Label: fmt.Sprintf("#%04d", id), Seed: seed, Traits: traits.Decode(seed)}
}

// ForPreset returns the card for a builder preset. Presets have no seed.
func ForPreset(p traits.Preset) Card {
	return Card{Label: p.Label, Traits: p.Traits, NoSeed: true}
}

type line struct {
	text  string
	size  float64
	color lobster.RGB
	gap   int // pixels above the baseline
}

// Render draws c.
func Render(c Card) (*image.RGBA, error) {
	f, err := monoBold()
	if err != nil {
		return nil, fmt.Errorf("card: parse font: %w", err)
	}

	dst := image.NewRGBA(image.Rect(0, 0, Width, Height))
	xdraw.Draw(dst, dst.Bounds(), image.NewUniform(background.Color()), image.Point{}, xdraw.Src)

	art := raster.Upscale(compose.Render(c.Traits).ToImage(), ArtScale)
	xdraw.Draw(dst, art.Bounds().Add(image.Pt(artX, artY)), art, image.Point{}, xdraw.Src)

	lines := c.lines()
	y := 0
	for _, l := range lines {
		y += l.gap
		if err := drawText(dst, f, l.text, l.size, panelX, y, l.color); err != nil {
			return nil, err
		}
	}

	lobster.Logger().Debug("card rendered", "seed", c.Seed, "lines", len(lines))
	return dst, nil
}

// lines lays out the panel text from the top.
func (c Card) lines() []line {
	label := c.Label
	if label == "" {
		label = fmt.Sprintf("%016x", c.Seed)
	}
	n := traits.Display(c.Traits)

	rows := [][2]string{
		{"marking", n.Marking},
		{"claws", n.Claws},
		{"eyes", n.Eyes},
		{"accessory", n.Accessory},
	}
	if n.Special != "" {
		rows = append([][2]string{{"special", n.Special}}, rows...)
	}
	if n.BrokenAntenna {
		rows = append(rows, [2]string{"antenna", "broken"})
	}

	upper := cases.Upper(language.English)
	lines := []line{
		{label, 64, accent, 150},
		{"LOBSTERS", 28, heading, 56},
		{n.Title(), 18, body, 48},
	}
	for i, r := range rows {
		gap := 26
		if i == 0 {
			gap = 40
		}
		lines = append(lines, line{fmt.Sprintf("%-10s %s", upper.String(r[0]), r[1]), 16, body, gap})
	}
	if !c.NoSeed {
		lines = append(lines, line{fmt.Sprintf("SEED 0x%016X", c.Seed), 14, footer, 60})
	}
	return lines
}

// drawText draws s with its baseline at y, shrinking the face until the
// text fits the panel.
func drawText(dst *image.RGBA, f *opentype.Font, s string, size float64, x, y int, c lobster.RGB) error {
	for {
		face, err := opentype.NewFace(f, &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			return fmt.Errorf("card: face %.0fpt: %w", size, err)
		}
		if font.MeasureString(face, s).Ceil() > panelW && size > 8 {
			face.Close()
			size -= 2
			continue
		}
		d := font.Drawer{
			Dst:  dst,
			Src:  image.NewUniform(c.Color()),
			Face: face,
			Dot:  fixed.P(x, y),
		}
		d.DrawString(s)
		return face.Close()
	}
}

// Encode writes c to w as PNG.
func Encode(w io.Writer, c Card) error {
	img, err := Render(c)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	if err := png.Encode(bw, img); err != nil {
		return fmt.Errorf("card: encode: %w", err)
	}
	return bw.Flush()
}
