// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"github.com/gogpu/glyphkit/layout"
	"github.com/gogpu/glyphkit/metrics"
)

// GuideKind identifies a typographic guide line.
type GuideKind uint8

const (
	GuideBaseline  GuideKind = iota // Line the letters stand on
	GuideXHeight                    // Top of lower-case letters
	GuideCap                        // Top of capitals and ascenders
	GuideDescender                  // Bottom of descenders
)

func (k GuideKind) String() string {
	switch k {
	case GuideXHeight:
		return "x-height"
	case GuideCap:
		return "cap"
	case GuideDescender:
		return "descender"
	default:
		return "baseline"
	}
}

// Guide is a horizontal guide line across the grid.
type Guide struct {
	Kind   GuideKind
	Y      float64
	X0, X1 float64
}

// Guides returns the guide lines for letter on the grid mapped by m.
//
// The baseline sits on the bottom grid edge, or Descender rows above it for
// descender letters. The x-height line is XHeight rows above the baseline.
// Ascender and cap letters get a cap line XHeight+Ascender rows above the
// baseline; descender letters get a descender line Descender rows below it.
func Guides(m layout.Mapper, letter rune, typo metrics.Typography) []Guide {
	r := m.GridRect()
	cs := m.CellSize()
	class := metrics.Classify(letter)

	baseline := r.Y + r.H
	if class == metrics.Descender {
		baseline -= float64(typo.Descender) * cs
	}
	line := func(k GuideKind, y float64) Guide {
		return Guide{Kind: k, Y: y, X0: r.X, X1: r.X + r.W}
	}

	out := []Guide{
		line(GuideBaseline, baseline),
		line(GuideXHeight, baseline-float64(typo.XHeight)*cs),
	}
	switch class {
	case metrics.Ascender, metrics.Cap:
		out = append(out, line(GuideCap, baseline-float64(typo.XHeight+typo.Ascender)*cs))
	case metrics.Descender:
		out = append(out, line(GuideDescender, baseline+float64(typo.Descender)*cs))
	}
	return out
}

func drawGuides(s Surface, guides []Guide) error {
	s.Push()
	defer s.Pop()
	s.SetColor(guideColor.Color())
	s.SetLineWidth(guideLineWidth)
	s.SetDash(guideDash...)
	for _, g := range guides {
		s.MoveTo(g.X0, g.Y)
		s.LineTo(g.X1, g.Y)
		if err := s.Stroke(); err != nil {
			return err
		}
	}
	s.ClearDash()
	return nil
}
