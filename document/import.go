package document

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/gogpu/glyphkit"
	"github.com/gogpu/glyphkit/grid"
	"github.com/gogpu/glyphkit/metrics"
	"github.com/gogpu/glyphkit/shape"
)

// Options controls how Import fills in what a document leaves out.
type Options struct {
	// Alphabet is used when the document names none. Zero means
	// grid.Uppercase.
	Alphabet grid.Alphabet
	// Cols is the width of letters missing from the document. Zero means
	// grid.DefaultCols.
	Cols int
	// Bounds limits imported glyph dimensions. Zero means grid.DefaultBounds.
	Bounds grid.Bounds
}

func (o Options) withDefaults() Options {
	if len(o.Alphabet.Letters) == 0 {
		o.Alphabet = grid.Uppercase
	}
	if o.Cols < 1 {
		o.Cols = grid.DefaultCols
	}
	if o.Bounds == (grid.Bounds{}) {
		o.Bounds = grid.DefaultBounds
	}
	return o
}

// Result is a successfully imported document.
type Result struct {
	State
	// Missing lists the letters the document did not provide, in alphabet
	// order. Each holds an empty default grid.
	Missing []rune
	// Warnings describes entries that were repaired or dropped.
	Warnings []string
}

// Import reads a document from r. The returned set is complete: every
// alphabet member has a grid.
func Import(r io.Reader, opts Options) (*Result, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("document: read: %w", err)
	}
	return Parse(data, opts)
}

// Parse is Import for an in-memory payload.
func Parse(data []byte, opts Options) (*Result, error) {
	opts = opts.withDefaults()

	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return nil, &ParseError{Reason: "not a JSON object", Err: err}
	}

	rawVersion, ok := top["version"]
	if !ok {
		if _, hasGlyphs := top["glyphs"]; hasGlyphs {
			if _, hasSize := top["gridSize"]; hasSize {
				return parseV1(data, opts)
			}
			return parseV2(data, opts)
		}
		return parseV0(top, opts)
	}
	var version int
	if err := json.Unmarshal(rawVersion, &version); err != nil {
		return nil, &ParseError{Reason: "version is not a number", Err: err}
	}
	switch version {
	case 2:
		return parseV2(data, opts)
	case 1:
		return parseV1(data, opts)
	default:
		return nil, &ParseError{Reason: fmt.Sprintf("unsupported version %d", version)}
	}
}

// builder assembles a complete letter set from the entries of a document.
type builder struct {
	opts     Options
	typo     metrics.Typography
	set      *grid.LetterSet
	seen     map[rune]bool
	warnings []string
}

func newBuilder(a grid.Alphabet, typo metrics.Typography, opts Options) *builder {
	return &builder{
		opts: opts,
		typo: typo,
		set:  metrics.NewLetterSet(a, opts.Cols, typo),
		seen: make(map[rune]bool),
	}
}

func (b *builder) warnf(format string, args ...any) {
	b.warnings = append(b.warnings, fmt.Sprintf(format, args...))
}

// letter resolves a glyph key to an alphabet member.
func (b *builder) letter(key string) (rune, bool) {
	r, size := utf8.DecodeRuneInString(key)
	if size == 0 || size != len(key) || r == utf8.RuneError {
		b.warnf("glyph %q: key is not a single character, ignored", key)
		return 0, false
	}
	if !b.set.Alphabet().Contains(r) {
		b.warnf("glyph %q: not in alphabet %s, ignored", key, b.set.Alphabet().Name)
		return 0, false
	}
	return r, true
}

func (b *builder) dims(key string, cols, rows int) bool {
	if b.opts.Bounds.Allows(cols) && b.opts.Bounds.Allows(rows) {
		return true
	}
	b.warnf("glyph %q: size %dx%d outside %d..%d, using an empty grid",
		key, cols, rows, b.opts.Bounds.Min, b.opts.Bounds.Max)
	return false
}

// cell converts a document cell, warning about anything it had to drop.
func (b *builder) cell(key string, p grid.Pos, name string, rotation int, color string) grid.Cell {
	k, ok := shape.Parse(name)
	if !ok {
		b.warnf("glyph %q cell %v: unknown shape %q, left empty", key, p, name)
		return grid.Cell{}
	}
	if !grid.ValidColor(color) {
		b.warnf("glyph %q cell %v: invalid colour %q dropped", key, p, color)
	}
	return grid.NewCell(k, rotation, color)
}

func (b *builder) place(r rune, g *grid.Grid) {
	b.set.Replace(r, g)
	b.seen[r] = true
}

// checkRows warns once about placed glyphs whose height disagrees with the
// typography. Legacy documents carry no typography, and the next metric
// change would resize those glyphs to the typographic height.
func (b *builder) checkRows() {
	var off []string
	for _, r := range b.set.Letters() {
		g, _ := b.set.Get(r)
		if b.seen[r] && g.Rows != b.typo.Rows(r) {
			off = append(off, string(r))
		}
	}
	if len(off) > 0 {
		b.warnf("glyphs %s: row counts differ from typography %+v; changing a metric resizes them",
			strings.Join(off, ","), b.typo)
	}
}

func (b *builder) result(letter string) *Result {
	res := &Result{State: State{Set: b.set, Typography: b.typo}, Warnings: b.warnings}
	if r, size := utf8.DecodeRuneInString(letter); size > 0 && size == len(letter) && b.set.Alphabet().Contains(r) {
		res.Letter = r
	}
	for _, r := range b.set.Letters() {
		if !b.seen[r] {
			res.Missing = append(res.Missing, r)
		}
	}
	glyphkit.Logger().Debug("document: imported",
		"alphabet", b.set.Alphabet().Name, "glyphs", len(b.seen), "missing", len(res.Missing), "warnings", len(res.Warnings))
	return res
}

func parseV2(data []byte, opts Options) (*Result, error) {
	var doc rawFileV2
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &ParseError{Reason: "malformed document", Err: err}
	}
	if doc.Glyphs == nil {
		return nil, &ParseError{Reason: "missing glyph collection"}
	}

	a := opts.Alphabet
	var alphabetWarning string
	if doc.Alphabet != "" {
		if named, ok := grid.AlphabetByName(doc.Alphabet); ok {
			a = named
		} else {
			alphabetWarning = fmt.Sprintf("unknown alphabet %q, using %s", doc.Alphabet, a.Name)
		}
	}
	typo := metrics.DefaultTypography
	var typoWarning string
	if doc.Typography != nil {
		if doc.Typography.Valid() {
			typo = *doc.Typography
		} else {
			typoWarning = fmt.Sprintf("typography %+v out of range, using defaults", *doc.Typography)
		}
	}

	b := newBuilder(a, typo, opts)
	for _, w := range []string{alphabetWarning, typoWarning} {
		if w != "" {
			b.warnf("%s", w)
		}
	}
	for _, key := range sortedKeys(doc.Glyphs) {
		r, ok := b.letter(key)
		if !ok {
			continue
		}
		var gv glyphV2
		if err := json.Unmarshal(doc.Glyphs[key], &gv); err != nil {
			b.warnf("glyph %q: %v, using an empty grid", key, err)
			continue
		}
		if !b.dims(key, gv.Cols, gv.Rows) {
			continue
		}
		b.place(r, b.nested(key, gv.Cols, gv.Rows, gv.Cells))
	}
	return b.result(doc.Letter), nil
}

// nested builds a cols×rows grid from a row-major cell matrix, copying the
// overlap when the matrix has the wrong shape.
func (b *builder) nested(key string, cols, rows int, cells [][]*cellV2) *grid.Grid {
	g := grid.New(cols, rows)
	ragged := len(cells) != rows
	for r, row := range cells {
		if len(row) != cols {
			ragged = true
		}
		for c, cv := range row {
			p := grid.Pos{Row: r, Col: c}
			if cv == nil || !g.InBounds(p) {
				continue
			}
			g.Set(p, b.cell(key, p, cv.Shape, cv.Rotation, cv.Color))
		}
	}
	if ragged {
		b.warnf("glyph %q: cell matrix does not match %dx%d, kept the overlap", key, cols, rows)
	}
	return g
}

func parseV1(data []byte, opts Options) (*Result, error) {
	var doc rawFileV1
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &ParseError{Reason: "malformed version 1 document", Err: err}
	}
	if doc.Glyphs == nil {
		return nil, &ParseError{Reason: "missing glyph collection"}
	}
	size := legacyGridSize
	if doc.GridSize != nil && *doc.GridSize > 0 {
		size = *doc.GridSize
	}

	b := newBuilder(opts.Alphabet, metrics.DefaultTypography, opts)
	for _, key := range sortedKeys(doc.Glyphs) {
		r, ok := b.letter(key)
		if !ok {
			continue
		}
		var gv glyphV1
		if err := json.Unmarshal(doc.Glyphs[key], &gv); err != nil {
			b.warnf("glyph %q: %v, using an empty grid", key, err)
			continue
		}
		gs := size
		if gv.GridSize != nil && *gv.GridSize > 0 {
			gs = *gv.GridSize
		}
		if !b.dims(key, gs, gs) {
			continue
		}
		g := grid.New(gs, gs)
		for i, cv := range gv.Cells {
			if i >= gs*gs {
				break
			}
			if cv == nil {
				continue
			}
			name := cv.Shape
			if name == "" {
				name = shape.Square.String()
			}
			p := grid.Pos{Row: i / gs, Col: i % gs}
			g.Set(p, b.cell(key, p, name, 0, cv.Color))
		}
		b.place(r, g)
	}
	b.checkRows()
	return b.result(doc.Letter), nil
}

func parseV0(top map[string]json.RawMessage, opts Options) (*Result, error) {
	b := newBuilder(opts.Alphabet, metrics.DefaultTypography, opts)
	glyphs := 0
	for _, key := range sortedKeys(top) {
		var gv glyphV0
		if err := json.Unmarshal(top[key], &gv); err != nil || gv.Grid == nil {
			b.warnf("entry %q: not a glyph, ignored", key)
			continue
		}
		glyphs++
		r, ok := b.letter(key)
		if !ok {
			continue
		}
		rows, cols := gv.Rows, gv.Cols
		if rows == 0 {
			rows = len(gv.Grid)
		}
		if cols == 0 && len(gv.Grid) > 0 {
			cols = len(gv.Grid[0])
		}
		if !b.dims(key, cols, rows) {
			continue
		}
		b.place(r, b.nested(key, cols, rows, gv.Grid))
	}
	if glyphs == 0 {
		return nil, &ParseError{Reason: "no glyph collection"}
	}
	b.checkRows()
	return b.result(""), nil
}

func sortedKeys[V any](m map[string]V) []string {
	return slices.Sorted(maps.Keys(m))
}
