// Package metrics derives glyph grid heights from shared typographic
// settings.
//
// Each character belongs to exactly one Class. A letter's row count is not
// stored independently: it is computed from the Typography and the class,
// and AdjustAll brings every grid of a letter set in line with it.
package metrics

import (
	"strings"

	"github.com/gogpu/glyphkit"
	"github.com/gogpu/glyphkit/grid"
)

// Class is the vertical classification of a character.
type Class uint8

const (
	// XHeight letters fit between baseline and x-height (a, c, e, ...).
	XHeight Class = iota
	// Ascender letters rise above the x-height (b, d, f, h, k, l).
	Ascender
	// Descender letters drop below the baseline (g, j, p, q, y).
	Descender
	// Cap covers upper-case letters and digits.
	Cap
)

func (c Class) String() string {
	switch c {
	case Ascender:
		return "ascender"
	case Descender:
		return "descender"
	case Cap:
		return "cap"
	default:
		return "x-height"
	}
}

const (
	ascenderLetters  = "bdfhkl"
	descenderLetters = "gjpqy"
)

// Classify returns the class of r. Characters outside the fixed lists
// default to XHeight.
func Classify(r rune) Class {
	switch {
	case strings.ContainsRune(ascenderLetters, r):
		return Ascender
	case strings.ContainsRune(descenderLetters, r):
		return Descender
	case r >= 'a' && r <= 'z':
		return XHeight
	case r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return Cap
	}
	return XHeight
}

// Metric names one field of Typography.
type Metric uint8

const (
	MetricXHeight   Metric = iota // Rows of the x-height band
	MetricAscender                // Rows above the x-height band
	MetricDescender               // Rows below the baseline
)

func (m Metric) String() string {
	switch m {
	case MetricAscender:
		return "ascender"
	case MetricDescender:
		return "descender"
	default:
		return "xheight"
	}
}

// ParseMetric resolves a metric name.
func ParseMetric(s string) (Metric, bool) {
	switch strings.ToLower(s) {
	case "xheight", "x-height", "x":
		return MetricXHeight, true
	case "ascender", "asc":
		return MetricAscender, true
	case "descender", "desc":
		return MetricDescender, true
	}
	return 0, false
}

// Bounds of each metric.
var (
	XHeightBounds   = grid.Bounds{Min: 1, Max: 6}
	AscenderBounds  = grid.Bounds{Min: 0, Max: 4}
	DescenderBounds = grid.Bounds{Min: 0, Max: 4}
)

// Typography holds the process-wide vertical metrics, in grid rows.
type Typography struct {
	XHeight   int `json:"xHeight" yaml:"xheight"`
	Ascender  int `json:"ascender" yaml:"ascender"`
	Descender int `json:"descender" yaml:"descender"`
}

// DefaultTypography is the initial and reset configuration.
var DefaultTypography = Typography{XHeight: 2, Ascender: 1, Descender: 1}

// Valid reports whether every metric lies within its bounds.
func (t Typography) Valid() bool {
	return XHeightBounds.Allows(t.XHeight) && AscenderBounds.Allows(t.Ascender) && DescenderBounds.Allows(t.Descender)
}

// RowsFor returns the row count of a glyph of class c.
func (t Typography) RowsFor(c Class) int {
	switch c {
	case Ascender, Cap:
		return t.XHeight + t.Ascender
	case Descender:
		return t.XHeight + t.Descender
	default:
		return t.XHeight
	}
}

// Rows returns the row count of the glyph for r.
func (t Typography) Rows(r rune) int {
	return t.RowsFor(Classify(r))
}

// Get returns the value of m.
func (t Typography) Get(m Metric) int {
	switch m {
	case MetricAscender:
		return t.Ascender
	case MetricDescender:
		return t.Descender
	default:
		return t.XHeight
	}
}

// Step returns t with m changed by delta. When the new value is outside the
// metric's bounds it returns t unchanged and false.
func (t Typography) Step(m Metric, delta int) (Typography, bool) {
	var ok bool
	switch m {
	case MetricXHeight:
		t.XHeight, ok = XHeightBounds.Step(t.XHeight, delta)
	case MetricAscender:
		t.Ascender, ok = AscenderBounds.Step(t.Ascender, delta)
	case MetricDescender:
		t.Descender, ok = DescenderBounds.Step(t.Descender, delta)
	}
	return t, ok
}

// AdjustAll resizes every grid of set whose row count differs from the
// count t requires, keeping its columns. Grids already at the right height
// are left untouched. It returns the number of grids resized, so a second
// call with the same t returns 0.
func AdjustAll(set *grid.LetterSet, t Typography) int {
	n := 0
	for _, r := range set.Letters() {
		g, ok := set.Get(r)
		if !ok {
			continue
		}
		want := t.Rows(r)
		if g.Rows == want {
			continue
		}
		set.Replace(r, grid.Resize(g, g.Cols, want))
		n++
	}
	if n > 0 {
		glyphkit.Logger().Debug("metrics: adjusted letter heights", "resized", n, "typography", t)
	}
	return n
}

// NewLetterSet returns a set of empty grids for alphabet a, each cols wide
// and as tall as t requires for its letter.
func NewLetterSet(a grid.Alphabet, cols int, t Typography) *grid.LetterSet {
	return grid.NewLetterSet(a, func(r rune) *grid.Grid {
		return grid.New(cols, t.Rows(r))
	})
}
