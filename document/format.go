package document

import (
	"encoding/json"

	"github.com/gogpu/glyphkit/metrics"
)

// Version is the format version written by Export.
const Version = 2

// legacyGridSize is the glyph size assumed for version 1 payloads that do
// not name one.
const legacyGridSize = 12

type fileV2 struct {
	Version    int                `json:"version"`
	Alphabet   string             `json:"alphabet"`
	Letter     string             `json:"currentLetter,omitempty"`
	Typography metrics.Typography `json:"typography"`
	Glyphs     map[string]glyphV2 `json:"glyphs"`
}

type glyphV2 struct {
	Cols  int         `json:"cols"`
	Rows  int         `json:"rows"`
	Cells [][]*cellV2 `json:"cells"`
}

type cellV2 struct {
	Shape    string `json:"shape"`
	Rotation int    `json:"rotation"`
	Color    string `json:"color,omitempty"`
}

// rawFileV2 defers glyph decoding so one bad glyph does not fail the file.
type rawFileV2 struct {
	Alphabet   string                     `json:"alphabet"`
	Letter     string                     `json:"currentLetter"`
	Typography *metrics.Typography        `json:"typography"`
	Glyphs     map[string]json.RawMessage `json:"glyphs"`
}

type rawFileV1 struct {
	GridSize *int                       `json:"gridSize"`
	Letter   string                     `json:"currentLetter"`
	Glyphs   map[string]json.RawMessage `json:"glyphs"`
}

type glyphV1 struct {
	GridSize *int      `json:"gridSize"`
	Cells    []*cellV1 `json:"cells"`
}

type cellV1 struct {
	Shape string `json:"shape"`
	Color string `json:"color"`
}

type glyphV0 struct {
	Grid [][]*cellV2 `json:"grid"`
	Cols int         `json:"cols"`
	Rows int         `json:"rows"`
}
