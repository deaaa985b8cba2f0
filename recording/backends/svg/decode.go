package svg

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"

	"github.com/gogpu/lobster"
)

// Decode rasterizes a document produced by this backend back onto a pixel
// grid of width x height cells of the given scale. Only <rect> elements
// with a "#rrggbb" fill are understood; they are painted in document
// order.
func Decode(doc []byte, width, height, scale int) (*lobster.Pixmap, error) {
	if scale < 1 {
		return nil, fmt.Errorf("svg: invalid scale %d", scale)
	}
	pm := lobster.NewPixmap(width, height)
	dec := xml.NewDecoder(bytes.NewReader(doc))
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return pm, nil
		}
		if err != nil {
			return nil, fmt.Errorf("svg: decode: %w", err)
		}
		el, ok := tok.(xml.StartElement)
		if !ok || el.Name.Local != "rect" {
			continue
		}
		var x, y, w, h int
		var fill string
		for _, a := range el.Attr {
			switch a.Name.Local {
			case "x":
				x, err = strconv.Atoi(a.Value)
			case "y":
				y, err = strconv.Atoi(a.Value)
			case "width":
				w, err = strconv.Atoi(a.Value)
			case "height":
				h, err = strconv.Atoi(a.Value)
			case "fill":
				fill = a.Value
			}
			if err != nil {
				return nil, fmt.Errorf("svg: rect attribute %s: %w", a.Name.Local, err)
			}
		}
		if len(fill) != 7 || fill[0] != '#' {
			return nil, fmt.Errorf("svg: rect fill %q", fill)
		}
		pm.FillRect(x/scale, y/scale, (x+w)/scale-1, (y+h)/scale-1, lobster.Hex(fill))
	}
}
