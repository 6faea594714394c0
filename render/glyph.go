// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"github.com/gogpu/gg"

	"github.com/gogpu/glyphkit"
	"github.com/gogpu/glyphkit/grid"
	"github.com/gogpu/glyphkit/layout"
	"github.com/gogpu/glyphkit/metrics"
	"github.com/gogpu/glyphkit/shape"
)

// Mapper returns the coordinate mapper a render pass with opts uses for g
// on s. Hit-testing must use the same mapper to agree with the drawing.
func Mapper(s Surface, g *grid.Grid, opts ...Option) layout.Mapper {
	o := buildOptions(opts)
	return mapperFor(s, g, o)
}

// MapperForSize is Mapper for a width×height device pixel surface that does
// not exist yet, such as the target of a pointer event.
func MapperForSize(width, height int, g *grid.Grid, opts ...Option) layout.Mapper {
	return mapperForSize(width, height, g, buildOptions(opts))
}

func mapperFor(s Surface, g *grid.Grid, o options) layout.Mapper {
	return mapperForSize(s.Width(), s.Height(), g, o)
}

func mapperForSize(width, height int, g *grid.Grid, o options) layout.Mapper {
	w := float64(width) / o.scale
	h := float64(height) / o.scale
	return layout.For(g, w, h).WithPadding(o.padding)
}

// DrawGlyph draws the editor view of glyph g for letter: background, grid
// lines, guides, cells, selection border and hover tint.
func DrawGlyph(s Surface, g *grid.Grid, letter rune, typo metrics.Typography, sel grid.Selection, opts ...Option) error {
	o := buildOptions(opts)
	m := mapperFor(s, g, o)

	if o.scale != 1 {
		s.Push()
		defer s.Pop()
		s.Scale(o.scale, o.scale)
	}

	if err := drawBackground(s, m, o); err != nil {
		return err
	}
	if o.gridLines {
		if err := drawGridLines(s, m); err != nil {
			return err
		}
	}
	if o.guides {
		if err := drawGuides(s, Guides(m, letter, typo)); err != nil {
			return err
		}
	}
	if err := drawCells(s, g, m, o.ink); err != nil {
		return err
	}

	sel = sel.Clamp(g)
	cs := m.CellSize()
	switch {
	case sel.Selected != nil:
		x, y := m.CellToPixel(*sel.Selected)
		s.SetColor(selectionColor.Color())
		s.SetLineWidth(selectionWidth)
		s.DrawRectangle(x+selectionInset, y+selectionInset, cs-2*selectionInset, cs-2*selectionInset)
		if err := s.Stroke(); err != nil {
			return err
		}
	case sel.Hovered != nil:
		x, y := m.CellToPixel(*sel.Hovered)
		s.SetColor(hoverColor.Color())
		s.DrawRectangle(x+hoverInset, y+hoverInset, cs-2*hoverInset, cs-2*hoverInset)
		if err := s.Fill(); err != nil {
			return err
		}
	}

	glyphkit.Logger().Debug("render: glyph", "letter", string(letter), "cols", g.Cols, "rows", g.Rows, "cell", cs)
	return nil
}

// DrawThumbnail draws only the cells of g, centred on s.
func DrawThumbnail(s Surface, g *grid.Grid, opts ...Option) error {
	o := buildOptions(opts)
	m := mapperFor(s, g, o)
	if o.scale != 1 {
		s.Push()
		defer s.Pop()
		s.Scale(o.scale, o.scale)
	}
	if err := drawBackground(s, m, o); err != nil {
		return err
	}
	return drawCells(s, g, m, o.ink)
}

func drawBackground(s Surface, m layout.Mapper, o options) error {
	if o.background == nil {
		return nil
	}
	s.SetColor(o.background.Color())
	s.DrawRectangle(0, 0, m.Width, m.Height)
	return s.Fill()
}

func drawGridLines(s Surface, m layout.Mapper) error {
	r := m.GridRect()
	cs := m.CellSize()
	s.SetColor(gridLineColor.Color())
	s.SetLineWidth(gridLineWidth)
	for i := 0; i <= m.Cols; i++ {
		x := r.X + float64(i)*cs
		s.MoveTo(x, r.Y)
		s.LineTo(x, r.Y+r.H)
		if err := s.Stroke(); err != nil {
			return err
		}
	}
	for i := 0; i <= m.Rows; i++ {
		y := r.Y + float64(i)*cs
		s.MoveTo(r.X, y)
		s.LineTo(r.X+r.W, y)
		if err := s.Stroke(); err != nil {
			return err
		}
	}
	return nil
}

// drawCells paints every non-empty cell of g at the position m maps it to.
func drawCells(s Surface, g *grid.Grid, m layout.Mapper, ink gg.RGBA) error {
	cs := m.CellSize()
	for r, row := range g.Cells {
		for c, cell := range row {
			if cell.IsEmpty() {
				continue
			}
			x, y := m.CellToPixel(grid.Pos{Row: r, Col: c})
			if err := shape.Draw(s, cell.Shape, x, y, cs, cell.Rotation, cellInk(cell.Color, ink).Color()); err != nil {
				return err
			}
		}
	}
	return nil
}
