package editor

import (
	"fmt"

	"github.com/gogpu/glyphkit/grid"
	"github.com/gogpu/glyphkit/metrics"
	"github.com/gogpu/glyphkit/shape"
)

// Command is an edit applied with Editor.Apply.
type Command interface {
	fmt.Stringer
	apply(e *Editor) bool
}

// SelectLetter switches to editing Letter and clears the selection.
type SelectLetter struct{ Letter rune }

// StepLetter moves Delta letters through the alphabet, wrapping around.
type StepLetter struct{ Delta int }

// SelectCell selects the cell at Pos.
type SelectCell struct{ Pos grid.Pos }

// ClearSelection drops the selected and hovered cells.
type ClearSelection struct{}

// Hover marks the cell under the pointer. Positions outside the grid clear
// the hover.
type Hover struct{ Pos grid.Pos }

// ClearHover drops the hovered cell.
type ClearHover struct{}

// SetCell writes a cell of the current glyph.
type SetCell struct {
	Pos      grid.Pos
	Shape    shape.Kind
	Rotation int
	Color    string
}

// Paint writes the brush into the cell at Pos.
type Paint struct{ Pos grid.Pos }

// Erase empties the cell at Pos.
type Erase struct{ Pos grid.Pos }

// Rotate turns the selected cell one step.
type Rotate struct{}

// SetShape replaces the shape of the selected cell, resetting its rotation
// and keeping its colour.
type SetShape struct{ Shape shape.Kind }

// SetBrush sets the cell Paint writes.
type SetBrush struct {
	Shape    shape.Kind
	Rotation int
	Color    string
}

// ClearLetter empties every cell of the current glyph.
type ClearLetter struct{}

// ResizeCols changes the column count of the current glyph by Delta.
type ResizeCols struct{ Delta int }

// ResizeRows changes the row count of the current glyph by Delta.
type ResizeRows struct{ Delta int }

// StepMetric changes one typographic metric by Delta and adjusts every
// glyph height.
type StepMetric struct {
	Metric metrics.Metric
	Delta  int
}

// SetGridSize replaces every glyph with an empty grid Size columns wide.
type SetGridSize struct{ Size int }

// ToggleGuides switches the typographic guide lines.
type ToggleGuides struct{}

// ToggleGridLines switches the cell grid lines.
type ToggleGridLines struct{}

// Reset discards every glyph and restores the initial typography.
type Reset struct{}

func (c SelectLetter) String() string  { return fmt.Sprintf("SelectLetter(%q)", c.Letter) }
func (c StepLetter) String() string    { return fmt.Sprintf("StepLetter(%+d)", c.Delta) }
func (c SelectCell) String() string    { return "SelectCell" + c.Pos.String() }
func (ClearSelection) String() string  { return "ClearSelection" }
func (c Hover) String() string         { return "Hover" + c.Pos.String() }
func (ClearHover) String() string      { return "ClearHover" }
func (c SetCell) String() string       { return fmt.Sprintf("SetCell%v(%s,%d)", c.Pos, c.Shape, c.Rotation) }
func (c Paint) String() string         { return "Paint" + c.Pos.String() }
func (c Erase) String() string         { return "Erase" + c.Pos.String() }
func (Rotate) String() string          { return "Rotate" }
func (c SetShape) String() string      { return fmt.Sprintf("SetShape(%s)", c.Shape) }
func (c SetBrush) String() string      { return fmt.Sprintf("SetBrush(%s,%d)", c.Shape, c.Rotation) }
func (ClearLetter) String() string     { return "ClearLetter" }
func (c ResizeCols) String() string    { return fmt.Sprintf("ResizeCols(%+d)", c.Delta) }
func (c ResizeRows) String() string    { return fmt.Sprintf("ResizeRows(%+d)", c.Delta) }
func (c StepMetric) String() string    { return fmt.Sprintf("StepMetric(%s,%+d)", c.Metric, c.Delta) }
func (c SetGridSize) String() string   { return fmt.Sprintf("SetGridSize(%d)", c.Size) }
func (ToggleGuides) String() string    { return "ToggleGuides" }
func (ToggleGridLines) String() string { return "ToggleGridLines" }
func (Reset) String() string           { return "Reset" }

// isViewOnly reports whether cmd touches only the selection.
func isViewOnly(cmd Command) bool {
	switch cmd.(type) {
	case SelectCell, ClearSelection, Hover, ClearHover:
		return true
	}
	return false
}

func (c SelectLetter) apply(e *Editor) bool {
	if c.Letter == e.doc.Letter || !e.doc.Set.Alphabet().Contains(c.Letter) {
		return false
	}
	e.doc.Letter = c.Letter
	e.sel = grid.Selection{}
	return true
}

func (c StepLetter) apply(e *Editor) bool {
	letters := e.doc.Set.Letters()
	n := len(letters)
	if c.Delta%n == 0 {
		return false
	}
	i := e.doc.Set.Alphabet().Index(e.doc.Letter)
	i = ((i+c.Delta)%n + n) % n
	return SelectLetter{Letter: letters[i]}.apply(e)
}

func (c SelectCell) apply(e *Editor) bool {
	if !e.glyphLocked().InBounds(c.Pos) {
		return false
	}
	if e.sel.Selected != nil && *e.sel.Selected == c.Pos {
		return false
	}
	p := c.Pos
	e.sel.Selected = &p
	return true
}

func (ClearSelection) apply(e *Editor) bool {
	if e.sel.Selected == nil && e.sel.Hovered == nil {
		return false
	}
	e.sel = grid.Selection{}
	return true
}

func (c Hover) apply(e *Editor) bool {
	if !e.glyphLocked().InBounds(c.Pos) {
		return ClearHover{}.apply(e)
	}
	if e.sel.Hovered != nil && *e.sel.Hovered == c.Pos {
		return false
	}
	p := c.Pos
	e.sel.Hovered = &p
	return true
}

func (ClearHover) apply(e *Editor) bool {
	if e.sel.Hovered == nil {
		return false
	}
	e.sel.Hovered = nil
	return true
}

// setCell writes cell at p of the current glyph, reporting a change.
func (e *Editor) setCell(p grid.Pos, cell grid.Cell) bool {
	g := e.glyphLocked()
	if !g.InBounds(p) || g.At(p) == cell {
		return false
	}
	return g.Set(p, cell)
}

func (c SetCell) apply(e *Editor) bool {
	return e.setCell(c.Pos, grid.NewCell(c.Shape, c.Rotation, c.Color))
}

func (c Paint) apply(e *Editor) bool {
	return e.setCell(c.Pos, e.doc.Brush)
}

func (c Erase) apply(e *Editor) bool {
	return e.setCell(c.Pos, grid.Cell{})
}

func (Rotate) apply(e *Editor) bool {
	if e.sel.Selected == nil {
		return false
	}
	p := *e.sel.Selected
	return e.setCell(p, e.glyphLocked().At(p).Rotated())
}

func (c SetShape) apply(e *Editor) bool {
	if e.sel.Selected == nil {
		return false
	}
	p := *e.sel.Selected
	return e.setCell(p, grid.NewCell(c.Shape, 0, e.glyphLocked().At(p).Color))
}

func (c SetBrush) apply(e *Editor) bool {
	b := grid.NewCell(c.Shape, c.Rotation, c.Color)
	if b == e.doc.Brush {
		return false
	}
	e.doc.Brush = b
	return true
}

func (ClearLetter) apply(e *Editor) bool {
	g := e.glyphLocked()
	if g.Filled() == 0 {
		return false
	}
	g.Clear()
	return true
}

func (c ResizeCols) apply(e *Editor) bool {
	g := e.glyphLocked()
	cols, ok := e.cfg.bounds.Step(g.Cols, c.Delta)
	if !ok {
		return false
	}
	return e.replaceGlyph(grid.Resize(g, cols, g.Rows))
}

func (c ResizeRows) apply(e *Editor) bool {
	g := e.glyphLocked()
	rows, ok := e.cfg.bounds.Step(g.Rows, c.Delta)
	if !ok {
		return false
	}
	return e.replaceGlyph(grid.Resize(g, g.Cols, rows))
}

func (e *Editor) replaceGlyph(g *grid.Grid) bool {
	if !e.doc.Set.Replace(e.doc.Letter, g) {
		return false
	}
	e.sel = e.sel.Clamp(g)
	return true
}

func (c StepMetric) apply(e *Editor) bool {
	t, ok := e.doc.Typography.Step(c.Metric, c.Delta)
	if !ok {
		return false
	}
	e.doc.Typography = t
	metrics.AdjustAll(e.doc.Set, t)
	e.sel = e.sel.Clamp(e.glyphLocked())
	return true
}

func (c SetGridSize) apply(e *Editor) bool {
	if !e.cfg.bounds.Allows(c.Size) {
		return false
	}
	e.doc.Set = metrics.NewLetterSet(e.doc.Set.Alphabet(), c.Size, e.doc.Typography)
	e.sel = grid.Selection{}
	return true
}

func (ToggleGuides) apply(e *Editor) bool {
	e.doc.Guides = !e.doc.Guides
	return true
}

func (ToggleGridLines) apply(e *Editor) bool {
	e.doc.GridLines = !e.doc.GridLines
	return true
}

func (Reset) apply(e *Editor) bool {
	e.doc = e.cfg.freshDocument(e.doc.Set.Alphabet())
	e.sel = grid.Selection{}
	return true
}
