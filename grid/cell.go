package grid

import (
	"strings"

	"github.com/gogpu/glyphkit/shape"
)

// Cell is the content of one grid position.
type Cell struct {
	Shape    shape.Kind
	Rotation int
	Color    string // "#rrggbb"; empty means the default ink
}

// NewCell returns a cell with its rotation folded into the shape's range
// and an invalid colour dropped.
func NewCell(k shape.Kind, rotation int, color string) Cell {
	if !k.Valid() {
		k = shape.Empty
	}
	if !ValidColor(color) {
		color = ""
	}
	if k == shape.Empty {
		return Cell{}
	}
	return Cell{Shape: k, Rotation: k.NormalizeRotation(rotation), Color: strings.ToLower(color)}
}

// IsEmpty reports whether the cell draws nothing.
func (c Cell) IsEmpty() bool {
	return c.Shape == shape.Empty || !c.Shape.Valid()
}

// Rotated returns the cell turned one step further. Shapes with a single
// orientation are returned unchanged.
func (c Cell) Rotated() Cell {
	c.Rotation = c.Shape.NormalizeRotation(c.Rotation + 1)
	return c
}

// ValidColor reports whether s is empty or a #rgb / #rrggbb hex colour.
func ValidColor(s string) bool {
	if s == "" {
		return true
	}
	if s[0] != '#' || (len(s) != 4 && len(s) != 7) {
		return false
	}
	for _, r := range s[1:] {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}
