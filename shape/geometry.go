package shape

import "math"

const pi = math.Pi

// PrimitiveOp is the drawing operation of a Primitive.
type PrimitiveOp uint8

const (
	// OpFillRect fills the rectangle X, Y, W, H.
	OpFillRect PrimitiveOp = iota
	// OpStrokeArc strokes an arc centred at X, Y with radius R from A1 to A2.
	OpStrokeArc
	// OpStrokeLine strokes the segment Points[0]-Points[1].
	OpStrokeLine
	// OpFillPolygon fills the closed polygon through Points.
	OpFillPolygon
)

// Point is a cell-local coordinate.
type Point struct{ X, Y float64 }

// Primitive is one drawing step of a shape, in cell-local coordinates.
type Primitive struct {
	Op         PrimitiveOp
	X, Y, W, H float64
	R, A1, A2  float64
	Points     []Point
	Width      float64 // stroke width for stroked ops
}

func lineGeometry(s, w float64) []Primitive {
	return []Primitive{{Op: OpFillRect, X: 0, Y: 0, W: s, H: w}}
}

// Stroked arcs sit inside the cell so the outer stroke edge touches the border.
func quarterGeometry(s, w float64) []Primitive {
	return []Primitive{{Op: OpStrokeArc, X: s, Y: s, R: s - w/2, A1: pi, A2: pi * 1.5, Width: w}}
}

func halfGeometry(s, w float64) []Primitive {
	return []Primitive{{Op: OpStrokeArc, X: s / 2, Y: s, R: s/2 - w/2, A1: pi, A2: 2 * pi, Width: w}}
}

func circleGeometry(s, w float64) []Primitive {
	return []Primitive{{Op: OpStrokeArc, X: s / 2, Y: s / 2, R: s/2 - w/2, A1: 0, A2: 2 * pi, Width: w}}
}

func diagonalGeometry(s, w float64) []Primitive {
	return []Primitive{{Op: OpStrokeLine, Points: []Point{{0, 0}, {s, s}}, Width: w}}
}

func squareGeometry(s, w float64) []Primitive {
	return []Primitive{{Op: OpFillRect, X: w, Y: w, W: s - 2*w, H: s - 2*w}}
}

func triangleGeometry(s, w float64) []Primitive {
	in := s - 2*w
	return []Primitive{{Op: OpFillPolygon, Points: []Point{
		{s / 2, w},
		{w + in, w + in},
		{w, w + in},
	}}}
}

func diamondGeometry(s, w float64) []Primitive {
	in := s - 2*w
	return []Primitive{{Op: OpFillPolygon, Points: []Point{
		{s / 2, w},
		{w + in, s / 2},
		{s / 2, w + in},
		{w, s / 2},
	}}}
}
