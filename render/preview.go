// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/gogpu/glyphkit/grid"
	"github.com/gogpu/glyphkit/layout"
)

// blankRatio is the width of an unrenderable character relative to the
// glyph height.
const blankRatio = 0.4

// Placement is the horizontal slot of one character in a text preview.
type Placement struct {
	Rune  rune
	Glyph *grid.Grid // nil for characters without a glyph
	X     float64    // left edge relative to the start of the run
	Width float64
}

// LayoutText places the characters of text left to right at the given glyph
// height, separated by gap. A glyph is height*cols/rows wide. Characters
// missing from set are retried in upper case; characters still missing take
// a blank slot and do not interrupt the run. It returns the placements and
// the total width of the run.
func LayoutText(set *grid.LetterSet, text string, height, gap float64) ([]Placement, float64) {
	upper := cases.Upper(language.Und)
	var out []Placement
	x := 0.0
	for _, r := range text {
		g := lookupGlyph(set, upper, r)
		w := height * blankRatio
		if g != nil {
			w = height * float64(g.Cols) / float64(g.Rows)
		}
		if len(out) > 0 {
			x += gap
		}
		out = append(out, Placement{Rune: r, Glyph: g, X: x, Width: w})
		x += w
	}
	return out, x
}

func lookupGlyph(set *grid.LetterSet, upper cases.Caser, r rune) *grid.Grid {
	if g, ok := set.Get(r); ok {
		return g
	}
	u := []rune(upper.String(string(r)))
	if len(u) != 1 {
		return nil
	}
	if g, ok := set.Get(u[0]); ok {
		return g
	}
	return nil
}

// DrawText draws text set in the glyphs of set, centred on s.
func DrawText(s Surface, set *grid.LetterSet, text string, opts ...Option) error {
	o := buildOptions(opts)
	w := float64(s.Width()) / o.scale
	h := float64(s.Height()) / o.scale

	if o.scale != 1 {
		s.Push()
		defer s.Pop()
		s.Scale(o.scale, o.scale)
	}
	if err := drawBackground(s, layout.Mapper{Width: w, Height: h}, o); err != nil {
		return err
	}

	places, total := LayoutText(set, text, o.glyphHeight, o.gap)
	x0 := (w - total) / 2
	y0 := (h - o.glyphHeight) / 2
	for _, p := range places {
		if p.Glyph == nil {
			if !o.blankMarker {
				continue
			}
			s.SetColor(markerColor.Color())
			s.DrawRectangle(x0+p.X, y0+o.glyphHeight*0.4, p.Width, o.glyphHeight*0.08)
			if err := s.Fill(); err != nil {
				return err
			}
			continue
		}
		m := layout.Mapper{Width: p.Width, Height: o.glyphHeight, Cols: p.Glyph.Cols, Rows: p.Glyph.Rows}
		s.Push()
		s.Translate(x0+p.X, y0)
		err := drawCells(s, p.Glyph, m, o.ink)
		s.Pop()
		if err != nil {
			return err
		}
	}
	return nil
}
