// Package grid holds the glyph data model: cells, rectangular glyph grids,
// and the letter set mapping every alphabet member to its grid.
package grid

import (
	"fmt"
)

// Pos is a cell position.
type Pos struct {
	Row, Col int
}

func (p Pos) String() string { return fmt.Sprintf("(%d,%d)", p.Row, p.Col) }

// Grid is the cell matrix of one glyph. Cells has Rows rows of Cols cells.
type Grid struct {
	Cols, Rows int
	Cells      [][]Cell
}

// New returns an empty cols×rows grid. Dimensions below 1 are raised to 1.
func New(cols, rows int) *Grid {
	cols = max(cols, 1)
	rows = max(rows, 1)
	cells := make([][]Cell, rows)
	for r := range cells {
		cells[r] = make([]Cell, cols)
	}
	return &Grid{Cols: cols, Rows: rows, Cells: cells}
}

// InBounds reports whether p addresses a cell of g.
func (g *Grid) InBounds(p Pos) bool {
	return p.Row >= 0 && p.Row < g.Rows && p.Col >= 0 && p.Col < g.Cols
}

// At returns the cell at p, or an empty cell when p is out of range.
func (g *Grid) At(p Pos) Cell {
	if !g.InBounds(p) {
		return Cell{}
	}
	return g.Cells[p.Row][p.Col]
}

// Set stores c at p. It reports false when p is out of range.
func (g *Grid) Set(p Pos, c Cell) bool {
	if !g.InBounds(p) {
		return false
	}
	g.Cells[p.Row][p.Col] = c
	return true
}

// Clear empties every cell.
func (g *Grid) Clear() {
	for r := range g.Cells {
		clear(g.Cells[r])
	}
}

// Filled returns the number of non-empty cells.
func (g *Grid) Filled() int {
	n := 0
	for _, row := range g.Cells {
		for _, c := range row {
			if !c.IsEmpty() {
				n++
			}
		}
	}
	return n
}

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	out := &Grid{Cols: g.Cols, Rows: g.Rows, Cells: make([][]Cell, len(g.Cells))}
	for r, row := range g.Cells {
		out.Cells[r] = append([]Cell(nil), row...)
	}
	return out
}

// Equal reports whether g and o have the same dimensions and cells.
func (g *Grid) Equal(o *Grid) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.Cols != o.Cols || g.Rows != o.Rows {
		return false
	}
	for r := range g.Cells {
		for c := range g.Cells[r] {
			if g.Cells[r][c] != o.Cells[r][c] {
				return false
			}
		}
	}
	return true
}

// Resize returns a new cols×rows grid holding the cells of g that fall
// inside the overlap of both sizes, in their original positions. New
// positions are empty; cells outside the new size are discarded.
func Resize(g *Grid, cols, rows int) *Grid {
	out := New(cols, rows)
	for r := 0; r < min(g.Rows, out.Rows); r++ {
		copy(out.Cells[r], g.Cells[r][:min(g.Cols, out.Cols)])
	}
	return out
}
