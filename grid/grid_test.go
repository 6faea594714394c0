package grid

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/glyphkit/shape"
)

func randomGrid(rng *rand.Rand, cols, rows int) *Grid {
	g := New(cols, rows)
	kinds := shape.All()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			d := kinds[rng.Intn(len(kinds))]
			g.Cells[r][c] = NewCell(d.Kind, rng.Intn(4), "")
		}
	}
	return g
}

func checkRectangular(t *testing.T, g *Grid) {
	t.Helper()
	if len(g.Cells) != g.Rows {
		t.Fatalf("len(Cells) = %d, want Rows = %d", len(g.Cells), g.Rows)
	}
	for r, row := range g.Cells {
		if len(row) != g.Cols {
			t.Fatalf("len(Cells[%d]) = %d, want Cols = %d", r, len(row), g.Cols)
		}
	}
}

func TestNew(t *testing.T) {
	g := New(3, 2)
	checkRectangular(t, g)
	if g.Filled() != 0 {
		t.Errorf("Filled() = %d, want 0", g.Filled())
	}
	if g := New(0, -4); g.Cols != 1 || g.Rows != 1 {
		t.Errorf("New(0, -4) = %dx%d, want 1x1", g.Cols, g.Rows)
	}
}

func TestResizeGrowKeepsCellsAndAddsEmpty(t *testing.T) {
	g := New(2, 2)
	g.Set(Pos{0, 1}, NewCell(shape.Line, 1, ""))
	g.Set(Pos{1, 0}, NewCell(shape.Circle, 0, "#ff0000"))

	out := Resize(g, 4, 3)
	checkRectangular(t, out)
	if out == g {
		t.Fatal("Resize returned the same grid")
	}
	want := [][]Cell{
		{{}, {Shape: shape.Line, Rotation: 1}, {}, {}},
		{{Shape: shape.Circle, Color: "#ff0000"}, {}, {}, {}},
		{{}, {}, {}, {}},
	}
	if diff := cmp.Diff(want, out.Cells); diff != "" {
		t.Errorf("Resize(4,3) cells mismatch (-want +got):\n%s", diff)
	}
}

func TestResizeShrinkDiscards(t *testing.T) {
	g := New(3, 3)
	g.Set(Pos{2, 2}, NewCell(shape.Square, 0, ""))
	g.Set(Pos{0, 0}, NewCell(shape.Diagonal, 2, ""))

	out := Resize(g, 2, 2)
	checkRectangular(t, out)
	if out.Filled() != 1 {
		t.Errorf("Filled() = %d, want 1", out.Filled())
	}
	if got := out.At(Pos{0, 0}); got.Shape != shape.Diagonal || got.Rotation != 2 {
		t.Errorf("At(0,0) = %+v, want diagonal/2", got)
	}
	// Growing back does not restore discarded cells.
	if back := Resize(out, 3, 3); back.Filled() != 1 {
		t.Errorf("regrown Filled() = %d, want 1", back.Filled())
	}
}

// Resizing twice preserves every cell inside all three sizes.
func TestResizeRoundTripOverlap(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		g := randomGrid(rng, 1+rng.Intn(8), 1+rng.Intn(8))
		c1, r1 := 1+rng.Intn(8), 1+rng.Intn(8)
		c2, r2 := 1+rng.Intn(8), 1+rng.Intn(8)

		out := Resize(Resize(g, c2, r2), c1, r1)
		checkRectangular(t, out)
		for r := 0; r < min(r1, r2, g.Rows); r++ {
			for c := 0; c < min(c1, c2, g.Cols); c++ {
				if out.Cells[r][c] != g.Cells[r][c] {
					t.Fatalf("case %d: cell (%d,%d) = %+v, want %+v", i, r, c, out.Cells[r][c], g.Cells[r][c])
				}
			}
		}
	}
}

func TestResizeDoesNotAliasRows(t *testing.T) {
	g := New(2, 2)
	out := Resize(g, 2, 2)
	out.Set(Pos{0, 0}, NewCell(shape.Line, 0, ""))
	if !g.At(Pos{0, 0}).IsEmpty() {
		t.Error("mutating the resized grid changed the original")
	}
}

func TestSetAtOutOfRange(t *testing.T) {
	g := New(2, 2)
	if g.Set(Pos{2, 0}, NewCell(shape.Line, 0, "")) {
		t.Error("Set out of range returned true")
	}
	if !g.At(Pos{-1, 0}).IsEmpty() {
		t.Error("At out of range returned a non-empty cell")
	}
}

func TestClearAndClone(t *testing.T) {
	g := New(2, 2)
	g.Set(Pos{1, 1}, NewCell(shape.Half, 3, ""))
	c := g.Clone()
	g.Clear()
	if g.Filled() != 0 {
		t.Errorf("after Clear Filled() = %d", g.Filled())
	}
	if c.Filled() != 1 {
		t.Errorf("clone Filled() = %d, want 1", c.Filled())
	}
	if g.Equal(c) {
		t.Error("cleared grid equals its earlier clone")
	}
}

func TestNewCellNormalizes(t *testing.T) {
	tests := []struct {
		k     shape.Kind
		rot   int
		color string
		want  Cell
	}{
		{shape.Line, 6, "", Cell{Shape: shape.Line, Rotation: 2}},
		{shape.Circle, 3, "#ABCDEF", Cell{Shape: shape.Circle, Color: "#abcdef"}},
		{shape.Square, 0, "red", Cell{Shape: shape.Square}},
		{shape.Empty, 2, "#fff", Cell{}},
		{shape.Kind(77), 1, "", Cell{}},
	}
	for _, tt := range tests {
		if got := NewCell(tt.k, tt.rot, tt.color); got != tt.want {
			t.Errorf("NewCell(%v, %d, %q) = %+v, want %+v", tt.k, tt.rot, tt.color, got, tt.want)
		}
	}
}

func TestCellRotated(t *testing.T) {
	c := NewCell(shape.Quarter, 3, "")
	if got := c.Rotated().Rotation; got != 0 {
		t.Errorf("Rotated() rotation = %d, want 0", got)
	}
	d := NewCell(shape.Diamond, 0, "")
	if got := d.Rotated(); got != d {
		t.Errorf("single-orientation Rotated() = %+v, want unchanged", got)
	}
}

func TestBoundsStep(t *testing.T) {
	b := Bounds{Min: 1, Max: 20}
	tests := []struct {
		cur, delta, want int
		ok               bool
	}{
		{5, 1, 6, true},
		{20, 1, 20, false},
		{1, -1, 1, false},
		{2, -1, 1, true},
		{4, 0, 4, false},
	}
	for _, tt := range tests {
		got, ok := b.Step(tt.cur, tt.delta)
		if got != tt.want || ok != tt.ok {
			t.Errorf("Step(%d, %d) = (%d, %v), want (%d, %v)", tt.cur, tt.delta, got, ok, tt.want, tt.ok)
		}
	}
}

func TestSelectionClamp(t *testing.T) {
	g := New(2, 2)
	s := Selection{Selected: &Pos{1, 1}, Hovered: &Pos{2, 0}}
	got := s.Clamp(g)
	if got.Selected == nil || got.Hovered != nil {
		t.Errorf("Clamp() = %+v, want selected kept and hover dropped", got)
	}
}

func TestLetterSet(t *testing.T) {
	s := NewLetterSet(Uppercase, func(rune) *Grid { return New(2, 3) })
	for _, r := range Uppercase.Letters {
		if g, ok := s.Get(r); !ok || g == nil {
			t.Fatalf("Get(%q) missing", r)
		}
	}
	if _, ok := s.Get('a'); ok {
		t.Error("Get('a') found a non-member")
	}
	if s.Replace('a', New(1, 1)) {
		t.Error("Replace accepted a non-member")
	}
	if s.Replace('A', nil) {
		t.Error("Replace accepted a nil grid")
	}
	g := New(4, 4)
	if !s.Replace('A', g) {
		t.Fatal("Replace('A') = false")
	}
	if got, _ := s.Get('A'); got != g {
		t.Error("Get('A') did not return the replacement")
	}

	o := NewLetterSet(Uppercase, func(rune) *Grid { return New(2, 3) })
	if s.Equal(o) {
		t.Error("sets with different 'A' grids compare equal")
	}
	o.Replace('A', New(4, 4))
	if !s.Equal(o) {
		t.Error("sets with equal grids compare unequal")
	}
}

func TestLetterSetLettersAreCopies(t *testing.T) {
	s := NewLetterSet(Uppercase, func(rune) *Grid { return New(1, 1) })
	s.Letters()[0] = '!'
	s.Alphabet().Letters[1] = '?'
	if Uppercase.Letters[0] != 'A' || Uppercase.Letters[1] != 'B' {
		t.Errorf("Uppercase starts %q, want \"AB\"", string(Uppercase.Letters[:2]))
	}
	if got := s.Letters()[0]; got != 'A' {
		t.Errorf("Letters()[0] = %q, want 'A'", got)
	}
}

func TestAlphabetByName(t *testing.T) {
	if a, ok := AlphabetByName("full"); !ok || !a.Contains('g') {
		t.Error("full alphabet lookup failed")
	}
	if a, ok := AlphabetByName(""); !ok || a.Name != "uppercase" {
		t.Error("empty name should select the uppercase alphabet")
	}
	if _, ok := AlphabetByName("greek"); ok {
		t.Error("unknown alphabet resolved")
	}
}
