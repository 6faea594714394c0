package document

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/gogpu/glyphkit/grid"
	"github.com/gogpu/glyphkit/metrics"
)

// State is everything a document carries.
type State struct {
	Set        *grid.LetterSet
	Typography metrics.Typography
	Letter     rune // letter being edited; zero when unknown
}

// Export writes set and typo as an indented version 2 document. Glyph keys
// are sorted.
func Export(w io.Writer, set *grid.LetterSet, typo metrics.Typography) error {
	return Write(w, State{Set: set, Typography: typo})
}

// Write is Export for a full State, including the current letter.
func Write(w io.Writer, s State) error {
	if s.Set == nil {
		return ErrNilSet
	}
	doc := fileV2{
		Version:    Version,
		Alphabet:   s.Set.Alphabet().Name,
		Typography: s.Typography,
		Glyphs:     make(map[string]glyphV2, len(s.Set.Letters())),
	}
	if s.Letter != 0 {
		doc.Letter = string(s.Letter)
	}
	for _, r := range s.Set.Letters() {
		g, ok := s.Set.Get(r)
		if !ok {
			continue
		}
		doc.Glyphs[string(r)] = encodeGrid(g)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("document: encode: %w", err)
	}
	return nil
}

func encodeGrid(g *grid.Grid) glyphV2 {
	out := glyphV2{Cols: g.Cols, Rows: g.Rows, Cells: make([][]*cellV2, g.Rows)}
	for r, row := range g.Cells {
		out.Cells[r] = make([]*cellV2, len(row))
		for c, cell := range row {
			if cell.IsEmpty() {
				continue
			}
			out.Cells[r][c] = &cellV2{Shape: cell.Shape.String(), Rotation: cell.Rotation, Color: cell.Color}
		}
	}
	return out
}
