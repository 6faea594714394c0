package recording

import "math"

// Matrix represents a 2D affine transformation matrix.
// It uses a 2x3 matrix in row-major order:
//
//	| A  B  C |
//	| D  E  F |
//
// This represents the transformation:
//
//	x' = A*x + B*y + C
//	y' = D*x + E*y + F
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the identity transformation matrix.
func Identity() Matrix {
	return Matrix{A: 1, E: 1}
}

// Translate creates a translation matrix.
func Translate(x, y float64) Matrix {
	return Matrix{A: 1, C: x, E: 1, F: y}
}

// Scale creates a scaling matrix.
func Scale(sx, sy float64) Matrix {
	return Matrix{A: sx, E: sy}
}

// Rotate creates a rotation matrix (angle in radians).
func Rotate(angle float64) Matrix {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Matrix{
		A: cos, B: -sin,
		D: sin, E: cos,
	}
}

// Multiply multiplies two matrices (m * other).
// This applies the transformation of `other` before `m`.
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

// TransformPoint applies the transformation to a point.
func (m Matrix) TransformPoint(x, y float64) (float64, float64) {
	return m.A*x + m.B*y + m.C, m.D*x + m.E*y + m.F
}

// ScaleFactor returns the maximum scale factor of the transformation.
// Stroke widths are multiplied by it, as gg.Context does.
func (m Matrix) ScaleFactor() float64 {
	sx := math.Sqrt(m.A*m.A + m.D*m.D)
	sy := math.Sqrt(m.B*m.B + m.E*m.E)
	if sx > sy {
		return sx
	}
	return sy
}

// IsAxisAligned reports whether m maps axis-aligned rectangles to
// axis-aligned rectangles (scale, translation and quarter turns).
func (m Matrix) IsAxisAligned() bool {
	const eps = 1e-12
	return (math.Abs(m.B) < eps && math.Abs(m.D) < eps) ||
		(math.Abs(m.A) < eps && math.Abs(m.E) < eps)
}

// Rect represents an axis-aligned rectangle.
type Rect struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// NewRect creates a rectangle from position and size.
func NewRect(x, y, width, height float64) Rect {
	return Rect{MinX: x, MinY: y, MaxX: x + width, MaxY: y + height}
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 { return r.MaxX - r.MinX }

// Height returns the height of the rectangle.
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// ApproxEqual reports whether r and o differ by at most eps on every edge.
func (r Rect) ApproxEqual(o Rect, eps float64) bool {
	return math.Abs(r.MinX-o.MinX) <= eps && math.Abs(r.MinY-o.MinY) <= eps &&
		math.Abs(r.MaxX-o.MaxX) <= eps && math.Abs(r.MaxY-o.MaxY) <= eps
}

// transformRect maps r through m and returns the bounding box of the result.
// Under the quarter-turn rotations used by shapes the result is exact.
func transformRect(m Matrix, r Rect) Rect {
	xs := [4]float64{}
	ys := [4]float64{}
	xs[0], ys[0] = m.TransformPoint(r.MinX, r.MinY)
	xs[1], ys[1] = m.TransformPoint(r.MaxX, r.MinY)
	xs[2], ys[2] = m.TransformPoint(r.MaxX, r.MaxY)
	xs[3], ys[3] = m.TransformPoint(r.MinX, r.MaxY)
	out := Rect{MinX: xs[0], MinY: ys[0], MaxX: xs[0], MaxY: ys[0]}
	for i := 1; i < 4; i++ {
		out.MinX = math.Min(out.MinX, xs[i])
		out.MinY = math.Min(out.MinY, ys[i])
		out.MaxX = math.Max(out.MaxX, xs[i])
		out.MaxY = math.Max(out.MaxY, ys[i])
	}
	return out
}
