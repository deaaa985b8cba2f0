package compose

import (
	"github.com/gogpu/lobster"
	"github.com/gogpu/lobster/traits"
)

// zone selects a tone of the shell colour.
type zone uint8

const (
	zoneBase      zone = iota
	zoneHighlight      // lighten .28
	zoneShadow         // darken .28
	zoneDark           // darken .14
)

// splitX is the first column painted with the secondary base on
// split-colour mutations.
const splitX = 20

// shell is the per-pixel body colour function for one mutation.
type shell struct {
	base, base2 lobster.RGB
	shadow      lobster.RGB
	split       bool
}

func newShell(m traits.Mutation) shell {
	s := shell{base: m.Base, base2: m.Base, shadow: m.Shadow, split: m.Split}
	if m.Split {
		s.base2 = m.Base2
	}
	return s
}

// at returns the colour of column x in zone z.
func (s shell) at(x int, z zone) lobster.RGB {
	base := s.base
	if s.split && x >= splitX {
		base = s.base2
	}
	switch z {
	case zoneHighlight:
		return base.Lighten(0.28)
	case zoneShadow:
		return base.Darken(0.28)
	case zoneDark:
		return base.Darken(0.14)
	}
	return base
}
