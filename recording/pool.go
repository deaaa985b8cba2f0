package recording

import "github.com/gogpu/lobster"

// Palette stores the distinct colours referenced by recording commands.
// Adding a colour that is already present returns its existing reference,
// so a whole lobster typically records fewer than a few hundred entries.
//
// Palette is not safe for concurrent use.
type Palette struct {
	colors []lobster.RGB
	index  map[lobster.RGB]ColorRef
}

// NewPalette creates an empty palette with pre-allocated capacity.
func NewPalette() *Palette {
	return &Palette{
		colors: make([]lobster.RGB, 0, 128),
		index:  make(map[lobster.RGB]ColorRef, 128),
	}
}

// Add returns the reference for c, appending it if it is new.
func (p *Palette) Add(c lobster.RGB) ColorRef {
	if ref, ok := p.index[c]; ok {
		return ref
	}
	p.colors = append(p.colors, c)
	// #nosec G115 -- palette size is bounded by the 2^24 colour space
	ref := ColorRef(uint32(len(p.colors) - 1))
	p.index[c] = ref
	return ref
}

// Color returns the colour for ref. Invalid references return Black.
func (p *Palette) Color(ref ColorRef) lobster.RGB {
	if int(ref) >= len(p.colors) {
		return lobster.Black
	}
	return p.colors[ref]
}

// Len returns the number of distinct colours.
func (p *Palette) Len() int {
	return len(p.colors)
}
