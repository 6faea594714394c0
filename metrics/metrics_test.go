package metrics

import (
	"testing"

	"github.com/gogpu/glyphkit/grid"
	"github.com/gogpu/glyphkit/shape"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		r    rune
		want Class
	}{
		{'b', Ascender}, {'d', Ascender}, {'f', Ascender}, {'h', Ascender}, {'k', Ascender}, {'l', Ascender},
		{'g', Descender}, {'j', Descender}, {'p', Descender}, {'q', Descender}, {'y', Descender},
		{'a', XHeight}, {'x', XHeight}, {'t', XHeight},
		{'A', Cap}, {'Z', Cap}, {'0', Cap}, {'9', Cap},
		{'?', XHeight}, {'é', XHeight}, {'٣', XHeight},
	}
	for _, tt := range tests {
		if got := Classify(tt.r); got != tt.want {
			t.Errorf("Classify(%q) = %v, want %v", tt.r, got, tt.want)
		}
	}
}

func TestRowsScenario(t *testing.T) {
	typo := Typography{XHeight: 2, Ascender: 1, Descender: 1}
	tests := []struct {
		r    rune
		want int
	}{
		{'b', 3},
		{'g', 3},
		{'a', 2},
		{'B', 3},
	}
	for _, tt := range tests {
		if got := typo.Rows(tt.r); got != tt.want {
			t.Errorf("Rows(%q) = %d, want %d", tt.r, got, tt.want)
		}
	}

	typo = Typography{XHeight: 3, Ascender: 2, Descender: 1}
	if got := typo.Rows('k'); got != 5 {
		t.Errorf("Rows('k') = %d, want 5", got)
	}
	if got := typo.Rows('p'); got != 4 {
		t.Errorf("Rows('p') = %d, want 4", got)
	}
}

func TestStepBounds(t *testing.T) {
	typo := DefaultTypography
	tests := []struct {
		m     Metric
		delta int
		ok    bool
	}{
		{MetricXHeight, -1, true},
		{MetricAscender, -1, true},
		{MetricDescender, 1, true},
	}
	for _, tt := range tests {
		next, ok := typo.Step(tt.m, tt.delta)
		if ok != tt.ok {
			t.Errorf("Step(%v, %d) ok = %v, want %v", tt.m, tt.delta, ok, tt.ok)
		}
		if ok && next.Get(tt.m) != typo.Get(tt.m)+tt.delta {
			t.Errorf("Step(%v, %d) = %d", tt.m, tt.delta, next.Get(tt.m))
		}
	}

	low := Typography{XHeight: 1, Ascender: 0, Descender: 4}
	for _, c := range []struct {
		m     Metric
		delta int
	}{{MetricXHeight, -1}, {MetricAscender, -1}, {MetricDescender, 1}} {
		if next, ok := low.Step(c.m, c.delta); ok || next != low {
			t.Errorf("Step(%v, %d) at bound = (%+v, %v), want unchanged", c.m, c.delta, next, ok)
		}
	}
}

func TestParseMetric(t *testing.T) {
	for in, want := range map[string]Metric{"xheight": MetricXHeight, "ASC": MetricAscender, "descender": MetricDescender} {
		if got, ok := ParseMetric(in); !ok || got != want {
			t.Errorf("ParseMetric(%q) = (%v, %v), want %v", in, got, ok, want)
		}
	}
	if _, ok := ParseMetric("baseline"); ok {
		t.Error("ParseMetric(baseline) succeeded")
	}
}

func newSet(a grid.Alphabet, typo Typography) *grid.LetterSet {
	return grid.NewLetterSet(a, func(r rune) *grid.Grid { return grid.New(2, typo.Rows(r)) })
}

func TestAdjustAllIdempotent(t *testing.T) {
	typo := DefaultTypography
	set := newSet(grid.Full, typo)

	typo.XHeight = 4
	if n := AdjustAll(set, typo); n != len(grid.Full.Letters) {
		t.Errorf("first AdjustAll resized %d grids, want %d", n, len(grid.Full.Letters))
	}

	before := map[rune]*grid.Grid{}
	for _, r := range set.Letters() {
		before[r], _ = set.Get(r)
	}
	if n := AdjustAll(set, typo); n != 0 {
		t.Errorf("second AdjustAll resized %d grids, want 0", n)
	}
	for _, r := range set.Letters() {
		if g, _ := set.Get(r); g != before[r] {
			t.Errorf("grid of %q replaced by an idempotent AdjustAll", r)
		}
	}
}

func TestAdjustAllKeepsColumnsAndCells(t *testing.T) {
	typo := DefaultTypography
	set := newSet(grid.Full, typo)
	b, _ := set.Get('b')
	b = grid.Resize(b, 4, b.Rows)
	b.Set(grid.Pos{Row: 0, Col: 3}, grid.NewCell(shape.Line, 1, ""))
	set.Replace('b', b)

	typo.Ascender = 3
	AdjustAll(set, typo)

	got, _ := set.Get('b')
	if got.Cols != 4 || got.Rows != 5 {
		t.Fatalf("b = %dx%d, want 4x5", got.Cols, got.Rows)
	}
	if c := got.At(grid.Pos{Row: 0, Col: 3}); c.Shape != shape.Line || c.Rotation != 1 {
		t.Errorf("cell (0,3) = %+v, want line/1", c)
	}
	if a, _ := set.Get('a'); a.Rows != 2 {
		t.Errorf("a rows = %d, want 2 (x-height class ignores ascender)", a.Rows)
	}
}
