// Package shape defines the fixed set of primitives a glyph cell can hold
// and how each one is drawn into a square cell.
//
// Every kind is described by a single geometry function in its canonical
// orientation. Rotated variants are produced by rotating the canonical
// drawing about the cell centre in steps of 2π/Rotations, never by separate
// per-rotation drawings.
package shape

import (
	"strings"
)

// Kind identifies a primitive shape.
type Kind uint8

const (
	// Empty renders nothing.
	Empty Kind = iota
	// Line is a band along one edge of the cell.
	Line
	// Quarter is a quarter arc centred on one corner.
	Quarter
	// Half is a half arc standing on one edge.
	Half
	// Circle is a full ring inscribed in the cell.
	Circle
	// Diagonal is a corner-to-corner stroke.
	Diagonal
	// Square is a filled inset square.
	Square
	// Triangle is a filled inset triangle pointing at one edge.
	Triangle
	// Diamond is a filled inset diamond.
	Diamond

	numKinds
)

// StrokePercent is the stroke width as a percentage of the cell size.
// Filled shapes use the same value as their inset.
const StrokePercent = 12

// Definition describes one shape kind.
type Definition struct {
	Kind        Kind
	Name        string // identifier used in documents and commands
	DisplayName string
	Rotations   int  // 1 or 4
	Filled      bool // painted with Fill rather than Stroke

	geometry func(size, stroke float64) []Primitive
}

// Geometry returns the primitives of the shape in its canonical orientation
// for a size×size cell anchored at the origin.
func (d Definition) Geometry(size float64) []Primitive {
	if d.geometry == nil {
		return nil
	}
	return d.geometry(size, StrokeWidth(size))
}

// AngleStep returns the rotation applied per orientation step, in radians.
func (d Definition) AngleStep() float64 {
	if d.Rotations <= 1 {
		return 0
	}
	return 2 * pi / float64(d.Rotations)
}

var registry = [numKinds]Definition{
	Empty:    {Kind: Empty, Name: "empty", DisplayName: "Empty", Rotations: 1},
	Line:     {Kind: Line, Name: "line", DisplayName: "Line", Rotations: 4, Filled: true, geometry: lineGeometry},
	Quarter:  {Kind: Quarter, Name: "quarter", DisplayName: "Quarter circle", Rotations: 4, geometry: quarterGeometry},
	Half:     {Kind: Half, Name: "half", DisplayName: "Half circle", Rotations: 4, geometry: halfGeometry},
	Circle:   {Kind: Circle, Name: "circle", DisplayName: "Circle", Rotations: 1, geometry: circleGeometry},
	Diagonal: {Kind: Diagonal, Name: "diagonal", DisplayName: "Diagonal", Rotations: 4, geometry: diagonalGeometry},
	Square:   {Kind: Square, Name: "square", DisplayName: "Square", Rotations: 1, Filled: true, geometry: squareGeometry},
	Triangle: {Kind: Triangle, Name: "triangle", DisplayName: "Triangle", Rotations: 4, Filled: true, geometry: triangleGeometry},
	Diamond:  {Kind: Diamond, Name: "diamond", DisplayName: "Diamond", Rotations: 1, Filled: true, geometry: diamondGeometry},
}

// Lookup returns the definition of k. Unknown kinds resolve to Empty.
func Lookup(k Kind) Definition {
	if k >= numKinds {
		return registry[Empty]
	}
	return registry[k]
}

// All returns every definition in declaration order, Empty first.
func All() []Definition {
	out := make([]Definition, len(registry))
	copy(out, registry[:])
	return out
}

// Parse resolves a shape name. The empty string and "null" resolve to Empty.
// Matching is case-insensitive.
func Parse(name string) (Kind, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" || name == "null" {
		return Empty, true
	}
	for _, d := range registry {
		if d.Name == name {
			return d.Kind, true
		}
	}
	return Empty, false
}

// String returns the document name of the kind.
func (k Kind) String() string {
	if k >= numKinds {
		return "unknown"
	}
	return registry[k].Name
}

// Valid reports whether k is a registered kind.
func (k Kind) Valid() bool { return k < numKinds }

// Rotations returns the number of distinct orientations of k.
func (k Kind) Rotations() int { return Lookup(k).Rotations }

// NormalizeRotation folds r into [0, k.Rotations()).
func (k Kind) NormalizeRotation(r int) int {
	n := k.Rotations()
	if n <= 1 {
		return 0
	}
	r %= n
	if r < 0 {
		r += n
	}
	return r
}

// StrokeWidth returns the stroke width for a cell of the given size.
func StrokeWidth(size float64) float64 {
	return size * StrokePercent / 100
}
