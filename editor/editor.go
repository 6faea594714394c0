// Package editor holds the state of a glyph editing session and applies
// commands to it.
//
// An Editor owns a Document (the letter set, typography, current letter,
// brush and view toggles) and a transient Selection. Every change goes
// through Apply, which reports whether anything changed; requests outside
// the configured bounds are ignored rather than reported as errors. Callers
// redraw from the accessors after each Apply.
package editor

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"sync"

	"github.com/gogpu/glyphkit"
	"github.com/gogpu/glyphkit/document"
	"github.com/gogpu/glyphkit/grid"
	"github.com/gogpu/glyphkit/metrics"
	"github.com/gogpu/glyphkit/render"
	"github.com/gogpu/glyphkit/shape"
)

// Document is the persistent part of the editor state.
type Document struct {
	Set        *grid.LetterSet
	Typography metrics.Typography
	Letter     rune
	Brush      grid.Cell
	Guides     bool
	GridLines  bool
}

// Editor is a glyph editing session. It is safe for concurrent use, but
// edits are expected to come from one goroutine; concurrent Imports are
// serialized.
type Editor struct {
	mu       sync.Mutex
	importMu sync.Mutex

	cfg options
	doc Document
	sel grid.Selection
}

// New creates an editor. With a store it starts from the stored state,
// falling back to a fresh letter set when nothing usable is stored.
func New(opts ...Option) *Editor {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	e := &Editor{cfg: cfg, doc: cfg.freshDocument(cfg.alphabet)}
	if cfg.store != nil {
		e.load()
	}
	return e
}

func (o options) freshDocument(a grid.Alphabet) Document {
	return Document{
		Set:        metrics.NewLetterSet(a, o.cols, o.typography),
		Typography: o.typography,
		Letter:     a.Letters[0],
		Brush:      grid.NewCell(shape.Line, 0, ""),
		GridLines:  true,
	}
}

func (e *Editor) load() {
	log := glyphkit.Logger()
	res, err := e.cfg.store.Load()
	switch {
	case errors.Is(err, fs.ErrNotExist):
		log.Info("editor: no saved state, starting fresh")
		return
	case err != nil:
		log.Warn("editor: saved state unusable, starting fresh", "err", err)
		return
	}
	for _, w := range res.Warnings {
		log.Warn("editor: saved state", "warning", w)
	}
	e.doc.Set = res.Set
	e.doc.Typography = res.Typography
	e.doc.Letter = res.Set.Letters()[0]
	if res.Letter != 0 {
		e.doc.Letter = res.Letter
	}
	log.Info("editor: state loaded", "alphabet", res.Set.Alphabet().Name, "letter", string(e.doc.Letter))
}

// Apply executes cmd and reports whether the document or the selection
// changed. Document changes are saved to the store, if any.
func (e *Editor) Apply(cmd Command) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	changed := cmd.apply(e)
	glyphkit.Logger().Debug("editor: apply", "command", cmd.String(), "changed", changed)
	if changed && !isViewOnly(cmd) {
		e.saveLocked()
	}
	return changed
}

func (e *Editor) saveLocked() {
	if e.cfg.store == nil {
		return
	}
	if err := e.cfg.store.Save(e.stateLocked()); err != nil {
		glyphkit.Logger().Warn("editor: save failed", "err", err)
	}
}

func (e *Editor) stateLocked() document.State {
	return document.State{Set: e.doc.Set, Typography: e.doc.Typography, Letter: e.doc.Letter}
}

// Import replaces the letter set and typography with the document read
// from r. Reading and parsing happen outside the editor state; a second
// Import waits for the first. If ctx is done before the swap, or the
// document fails to parse, the state is left unchanged.
func (e *Editor) Import(ctx context.Context, r io.Reader) (*document.Result, error) {
	e.importMu.Lock()
	defer e.importMu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	e.mu.Lock()
	alphabet := e.doc.Set.Alphabet()
	e.mu.Unlock()

	res, err := document.Import(r, document.Options{
		Alphabet: alphabet,
		Cols:     e.cfg.cols,
		Bounds:   e.cfg.bounds,
	})
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	next := e.doc
	next.Set = res.Set
	next.Typography = res.Typography
	next.Letter = res.Set.Letters()[0]
	if res.Letter != 0 {
		next.Letter = res.Letter
	}
	e.doc = next
	e.sel = grid.Selection{}
	e.saveLocked()

	glyphkit.Logger().Info("editor: document imported",
		"alphabet", res.Set.Alphabet().Name, "missing", len(res.Missing), "warnings", len(res.Warnings))
	return res, nil
}

// Export writes the current letter set and typography to w.
func (e *Editor) Export(w io.Writer) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return document.Write(w, e.stateLocked())
}

// Save writes the current state to the store. It is a no-op without one.
func (e *Editor) Save() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.cfg.store == nil {
		return nil
	}
	return e.cfg.store.Save(e.stateLocked())
}

// Document returns a copy of the document header. The letter set is shared.
func (e *Editor) Document() Document {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.doc
}

// Set returns the letter set.
func (e *Editor) Set() *grid.LetterSet {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.doc.Set
}

// Letter returns the letter being edited.
func (e *Editor) Letter() rune {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.doc.Letter
}

// Glyph returns the grid of the current letter.
func (e *Editor) Glyph() *grid.Grid {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.glyphLocked()
}

func (e *Editor) glyphLocked() *grid.Grid {
	g, _ := e.doc.Set.Get(e.doc.Letter)
	return g
}

// Typography returns the current metrics.
func (e *Editor) Typography() metrics.Typography {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.doc.Typography
}

// Selection returns the selected and hovered cells.
func (e *Editor) Selection() grid.Selection {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.sel
}

// Bounds returns the column and row limits.
func (e *Editor) Bounds() grid.Bounds { return e.cfg.bounds }

// RenderOptions returns the render options matching the view toggles.
func (e *Editor) RenderOptions() []render.Option {
	e.mu.Lock()
	defer e.mu.Unlock()
	return []render.Option{
		render.WithGuides(e.doc.Guides),
		render.WithGridLines(e.doc.GridLines),
	}
}
