// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/gogpu/gg"

	"github.com/gogpu/glyphkit/grid"
	"github.com/gogpu/glyphkit/metrics"
	"github.com/gogpu/glyphkit/recording"
	"github.com/gogpu/glyphkit/shape"
)

var _ Surface = (*recording.Recorder)(nil)

func pos(r, c int) *grid.Pos { return &grid.Pos{Row: r, Col: c} }

func record(t *testing.T, w, h int, fn func(s Surface) error) *recording.Recording {
	t.Helper()
	rec := recording.NewRecorder(w, h)
	if err := fn(rec); err != nil {
		t.Fatalf("draw: %v", err)
	}
	return rec.FinishRecording()
}

func TestDrawGlyphSelection(t *testing.T) {
	g := grid.New(8, 8)
	g.Set(grid.Pos{Row: 2, Col: 3}, grid.NewCell(shape.Circle, 0, ""))
	sel := grid.Selection{Selected: pos(2, 3)}

	r := record(t, 400, 400, func(s Surface) error {
		return DrawGlyph(s, g, 'A', metrics.DefaultTypography, sel)
	})

	rects := r.StrokeRects()
	if len(rects) != 1 {
		t.Fatalf("StrokeRects() = %d, want 1", len(rects))
	}
	want := recording.NewRect(3*50+2, 2*50+2, 46, 46)
	if !rects[0].Rect.ApproxEqual(want, 1e-9) {
		t.Errorf("selection = %+v, want %+v", rects[0].Rect, want)
	}
	if rects[0].LineWidth != 2 {
		t.Errorf("selection width = %v, want 2", rects[0].LineWidth)
	}

	// 50px cells: the circle sits on (175,125) with radius 25 - 6/2.
	var curves int
	for _, s := range r.Strokes() {
		for _, seg := range s.Path {
			if seg.Verb != recording.VerbCubicTo {
				continue
			}
			curves++
			if d := math.Hypot(seg.Point.X-175, seg.Point.Y-125); math.Abs(d-22) > 1e-9 {
				t.Errorf("circle point %+v is %v from (175,125), want 22", seg.Point, d)
			}
		}
	}
	if curves != 4 {
		t.Errorf("circle curves = %d, want 4", curves)
	}
}

func TestDrawGlyphHover(t *testing.T) {
	g := grid.New(8, 8)
	hoverRect := recording.NewRect(4, 4, 42, 42)

	hasHover := func(r *recording.Recording) bool {
		for _, f := range r.FillRects() {
			if f.Rect.ApproxEqual(hoverRect, 1e-9) {
				return true
			}
		}
		return false
	}

	r := record(t, 400, 400, func(s Surface) error {
		return DrawGlyph(s, g, 'A', metrics.DefaultTypography, grid.Selection{Hovered: pos(0, 0)})
	})
	if !hasHover(r) {
		t.Error("hover tint missing without selection")
	}

	r = record(t, 400, 400, func(s Surface) error {
		return DrawGlyph(s, g, 'A', metrics.DefaultTypography,
			grid.Selection{Selected: pos(1, 1), Hovered: pos(0, 0)})
	})
	if hasHover(r) {
		t.Error("hover tint drawn while a cell is selected")
	}
}

func TestDrawGlyphOutOfRangeSelection(t *testing.T) {
	g := grid.New(2, 2)
	r := record(t, 100, 100, func(s Surface) error {
		return DrawGlyph(s, g, 'A', metrics.DefaultTypography, grid.Selection{Selected: pos(5, 5)})
	})
	if n := len(r.StrokeRects()); n != 0 {
		t.Errorf("StrokeRects() = %d, want 0", n)
	}
}

func TestDrawGlyphGridLines(t *testing.T) {
	g := grid.New(8, 8)
	lineInk := color.NRGBAModel.Convert(gridLineColor.Color()).(color.NRGBA)

	count := func(r *recording.Recording) int {
		n := 0
		for _, s := range r.Strokes() {
			if s.Color == lineInk {
				n++
			}
		}
		return n
	}

	r := record(t, 400, 400, func(s Surface) error {
		return DrawGlyph(s, g, 'A', metrics.DefaultTypography, grid.Selection{})
	})
	if got := count(r); got != 18 {
		t.Errorf("grid lines = %d, want 18", got)
	}

	r = record(t, 400, 400, func(s Surface) error {
		return DrawGlyph(s, g, 'A', metrics.DefaultTypography, grid.Selection{}, WithGridLines(false))
	})
	if got := count(r); got != 0 {
		t.Errorf("grid lines with WithGridLines(false) = %d, want 0", got)
	}
}

func TestDrawGlyphDeviceScale(t *testing.T) {
	g := grid.New(8, 8)
	r := record(t, 800, 800, func(s Surface) error {
		return DrawGlyph(s, g, 'A', metrics.DefaultTypography, grid.Selection{Selected: pos(2, 3)},
			WithDeviceScale(2))
	})
	rects := r.StrokeRects()
	if len(rects) != 1 {
		t.Fatalf("StrokeRects() = %d, want 1", len(rects))
	}
	want := recording.NewRect(304, 204, 92, 92)
	if !rects[0].Rect.ApproxEqual(want, 1e-9) {
		t.Errorf("selection = %+v, want %+v", rects[0].Rect, want)
	}
	if rects[0].LineWidth != 4 {
		t.Errorf("selection width = %v, want 4", rects[0].LineWidth)
	}
}

func TestDrawGlyphCellColor(t *testing.T) {
	g := grid.New(1, 1)
	g.Set(grid.Pos{}, grid.NewCell(shape.Square, 0, "#ff0000"))
	r := record(t, 100, 100, func(s Surface) error {
		return DrawGlyph(s, g, 'A', metrics.DefaultTypography, grid.Selection{}, WithoutBackground())
	})
	fills := r.FillRects()
	if len(fills) != 1 {
		t.Fatalf("FillRects() = %d, want 1", len(fills))
	}
	if got, want := fills[0].Color, (color.NRGBA{R: 0xff, A: 0xff}); got != want {
		t.Errorf("square colour = %v, want %v", got, want)
	}
}

func TestDrawThumbnailCellsOnly(t *testing.T) {
	g := grid.New(3, 3)
	g.Set(grid.Pos{Row: 1, Col: 1}, grid.NewCell(shape.Line, 0, ""))
	r := record(t, 90, 90, func(s Surface) error {
		return DrawThumbnail(s, g, WithoutBackground())
	})
	if n := len(r.Strokes()); n != 0 {
		t.Errorf("Strokes() = %d, want 0", n)
	}
	if n := len(r.FillRects()); n != 1 {
		t.Errorf("FillRects() = %d, want 1", n)
	}
}

func TestMapperMatchesDrawing(t *testing.T) {
	g := grid.New(4, 2)
	rec := recording.NewRecorder(200, 100)
	m := Mapper(rec, g)
	p, ok := m.PixelToCell(175, 75)
	if !ok || p != (grid.Pos{Row: 1, Col: 3}) {
		t.Errorf("PixelToCell(175,75) = (%v, %v), want ((1,3), true)", p, ok)
	}
}

func TestMapperForSizeMatchesSurface(t *testing.T) {
	g := grid.New(3, 5)
	opts := []Option{WithDeviceScale(2), WithPadding(0.06)}
	rec := recording.NewRecorder(300, 400)
	want := Mapper(rec, g, opts...)
	got := MapperForSize(300, 400, g, opts...)
	if got != want {
		t.Errorf("MapperForSize() = %+v, want %+v", got, want)
	}
}

func TestDrawGlyphOnContext(t *testing.T) {
	g := grid.New(1, 1)
	g.Set(grid.Pos{}, grid.NewCell(shape.Square, 0, ""))

	dc := gg.NewContext(100, 100)
	if err := DrawGlyph(dc, g, 'A', metrics.DefaultTypography, grid.Selection{}, WithGridLines(false)); err != nil {
		t.Fatalf("DrawGlyph() error = %v", err)
	}
	img := dc.Image()

	r, _, _, _ := img.At(50, 50).RGBA()
	if r > 0x4000 {
		t.Errorf("centre red = %#x, want dark", r)
	}
	r, _, _, _ = img.At(2, 2).RGBA()
	if r < 0xc000 {
		t.Errorf("corner red = %#x, want light", r)
	}
}

func inked(img image.Image, x, y int) bool {
	r, _, _, _ := img.At(x, y).RGBA()
	return r < 0x8000
}

// rotateQuarter turns p about (c, c) by k quarter turns, clockwise on screen.
func rotateQuarter(p [2]float64, c float64, k int) [2]float64 {
	x, y := p[0]-c, p[1]-c
	for i := 0; i < k; i++ {
		x, y = -y, x
	}
	return [2]float64{x + c, y + c}
}

func TestDrawRotatedArcsOnContext(t *testing.T) {
	// One 100px cell with a 12px stroke. Sample points are the arc midpoints
	// of rotation 0: the quarter arc around corner (100,100) with radius 94,
	// and the half arc around (50,100) with radius 44.
	tests := []struct {
		kind shape.Kind
		mid  [2]float64
	}{
		{shape.Quarter, [2]float64{100 - 94/math.Sqrt2, 100 - 94/math.Sqrt2}},
		{shape.Half, [2]float64{50, 56}},
	}
	for _, tt := range tests {
		for rot := 0; rot < 4; rot++ {
			g := grid.New(1, 1)
			g.Set(grid.Pos{}, grid.NewCell(tt.kind, rot, ""))
			dc := gg.NewContext(100, 100)
			if err := DrawGlyph(dc, g, 'A', metrics.DefaultTypography, grid.Selection{}, WithGridLines(false)); err != nil {
				t.Fatalf("DrawGlyph() error = %v", err)
			}
			img := dc.Image()

			on := rotateQuarter(tt.mid, 50, rot)
			if !inked(img, int(on[0]), int(on[1])) {
				t.Errorf("%v rotation %d: no ink at %v", tt.kind, rot, on)
			}
			off := rotateQuarter(tt.mid, 50, rot+2)
			if inked(img, int(off[0]), int(off[1])) {
				t.Errorf("%v rotation %d: unexpected ink at %v", tt.kind, rot, off)
			}
		}
	}
}

func TestDrawCircleOnContextWithDeviceScale(t *testing.T) {
	g := grid.New(1, 1)
	g.Set(grid.Pos{}, grid.NewCell(shape.Circle, 0, ""))
	dc := gg.NewContext(200, 200)
	if err := DrawGlyph(dc, g, 'A', metrics.DefaultTypography, grid.Selection{},
		WithGridLines(false), WithDeviceScale(2)); err != nil {
		t.Fatalf("DrawGlyph() error = %v", err)
	}
	img := dc.Image()

	// Device radius 88 with a 24px ring: ink from 76 to 100 around (100,100).
	for _, p := range [][2]int{{6, 100}, {194, 100}, {100, 6}, {100, 194}} {
		if !inked(img, p[0], p[1]) {
			t.Errorf("no ink on the ring at %v", p)
		}
	}
	for _, p := range [][2]int{{50, 100}, {100, 100}, {100, 150}} {
		if inked(img, p[0], p[1]) {
			t.Errorf("unexpected ink inside the ring at %v", p)
		}
	}
}
