// Package layout maps between surface pixels and grid cells.
//
// Cells are always square. The grid is scaled to the largest cell size that
// fits the canvas and centred with equal margins on both axes. Drawing and
// hit-testing go through the same Mapper so what is drawn is exactly what is
// clickable.
package layout

import (
	"math"

	"github.com/gogpu/glyphkit/grid"
)

// Rect is an axis-aligned pixel rectangle.
type Rect struct {
	X, Y, W, H float64
}

// Mapper converts between pixel coordinates on a Width×Height surface and
// the cells of a Cols×Rows grid.
type Mapper struct {
	Width, Height float64
	Cols, Rows    int
	// Padding reserves round(min(Width, Height)*Padding) pixels on every
	// side before the grid is fitted. Zero fits the grid edge to edge.
	Padding float64
}

// For returns a Mapper for grid g on a width×height surface.
func For(g *grid.Grid, width, height float64) Mapper {
	return Mapper{Width: width, Height: height, Cols: g.Cols, Rows: g.Rows}
}

// WithPadding returns a copy of m with the given padding fraction.
func (m Mapper) WithPadding(p float64) Mapper {
	m.Padding = p
	return m
}

func (m Mapper) pad() float64 {
	if m.Padding <= 0 {
		return 0
	}
	return math.Round(math.Min(m.Width, m.Height) * m.Padding)
}

// CellSize returns the side length of one cell in pixels.
func (m Mapper) CellSize() float64 {
	if m.Cols < 1 || m.Rows < 1 {
		return 0
	}
	p := m.pad()
	w := math.Max(m.Width-2*p, 0)
	h := math.Max(m.Height-2*p, 0)
	return math.Min(w/float64(m.Cols), h/float64(m.Rows))
}

// Offset returns the top-left corner of the grid.
func (m Mapper) Offset() (x, y float64) {
	cs := m.CellSize()
	return (m.Width - cs*float64(m.Cols)) / 2, (m.Height - cs*float64(m.Rows)) / 2
}

// GridRect returns the pixel rectangle covered by the whole grid.
func (m Mapper) GridRect() Rect {
	cs := m.CellSize()
	x, y := m.Offset()
	return Rect{X: x, Y: y, W: cs * float64(m.Cols), H: cs * float64(m.Rows)}
}

// CellToPixel returns the top-left pixel of cell p.
func (m Mapper) CellToPixel(p grid.Pos) (x, y float64) {
	cs := m.CellSize()
	ox, oy := m.Offset()
	return ox + float64(p.Col)*cs, oy + float64(p.Row)*cs
}

// CellRect returns the pixel rectangle of cell p.
func (m Mapper) CellRect(p grid.Pos) Rect {
	x, y := m.CellToPixel(p)
	cs := m.CellSize()
	return Rect{X: x, Y: y, W: cs, H: cs}
}

// CellCenter returns the pixel centre of cell p.
func (m Mapper) CellCenter(p grid.Pos) (x, y float64) {
	x, y = m.CellToPixel(p)
	cs := m.CellSize()
	return x + cs/2, y + cs/2
}

// PixelToCell returns the cell under (px, py). It reports false for points
// in the margins or outside the grid.
func (m Mapper) PixelToCell(px, py float64) (grid.Pos, bool) {
	cs := m.CellSize()
	if cs <= 0 {
		return grid.Pos{}, false
	}
	ox, oy := m.Offset()
	col := int(math.Floor((px - ox) / cs))
	row := int(math.Floor((py - oy) / cs))
	if row < 0 || row >= m.Rows || col < 0 || col >= m.Cols {
		return grid.Pos{}, false
	}
	return grid.Pos{Row: row, Col: col}, true
}

// PixelToCellScaled resolves a point given in CSS pixels on a surface whose
// Width and Height are in device pixels at ratio dpr.
func (m Mapper) PixelToCellScaled(px, py, dpr float64) (grid.Pos, bool) {
	if dpr <= 0 {
		dpr = 1
	}
	return m.PixelToCell(px*dpr, py*dpr)
}
