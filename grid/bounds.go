package grid

// Bounds is an inclusive range of allowed values for a grid dimension or a
// typographic metric. Changes that would leave the range are rejected, not
// clamped.
type Bounds struct {
	Min, Max int
}

// DefaultBounds limits column and row counts.
var DefaultBounds = Bounds{Min: 1, Max: 20}

// DefaultCols is the width of a freshly created glyph.
const DefaultCols = 2

// Allows reports whether n lies within b.
func (b Bounds) Allows(n int) bool {
	return n >= b.Min && n <= b.Max
}

// Step returns cur+delta and true when the result is allowed, or cur and
// false otherwise.
func (b Bounds) Step(cur, delta int) (int, bool) {
	next := cur + delta
	if delta == 0 || !b.Allows(next) {
		return cur, false
	}
	return next, true
}

// Selection is the transient pointer state of the editor. It is never
// persisted.
type Selection struct {
	Selected *Pos
	Hovered  *Pos
}

// Clamp drops positions that are not inside g.
func (s Selection) Clamp(g *Grid) Selection {
	if s.Selected != nil && !g.InBounds(*s.Selected) {
		s.Selected = nil
	}
	if s.Hovered != nil && !g.InBounds(*s.Hovered) {
		s.Hovered = nil
	}
	return s
}
