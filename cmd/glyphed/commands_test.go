package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/glyphkit/editor"
	"github.com/gogpu/glyphkit/grid"
	"github.com/gogpu/glyphkit/internal/config"
	"github.com/gogpu/glyphkit/metrics"
	"github.com/gogpu/glyphkit/shape"
)

func TestParseEdit(t *testing.T) {
	tests := []struct {
		line string
		want editor.Command
	}{
		{"letter b", editor.SelectLetter{Letter: 'b'}},
		{"next", editor.StepLetter{Delta: 1}},
		{"PREV", editor.StepLetter{Delta: -1}},
		{"select 2 3", editor.SelectCell{Pos: grid.Pos{Row: 2, Col: 3}}},
		{"hover 0 1", editor.Hover{Pos: grid.Pos{Row: 0, Col: 1}}},
		{"set 1 0 quarter 2 #FF0000", editor.SetCell{Pos: grid.Pos{Row: 1}, Shape: shape.Quarter, Rotation: 2, Color: "#FF0000"}},
		{"set 1 0 circle", editor.SetCell{Pos: grid.Pos{Row: 1}, Shape: shape.Circle}},
		{"brush triangle #00f 3", editor.SetBrush{Shape: shape.Triangle, Rotation: 3, Color: "#00f"}},
		{"paint 4 5", editor.Paint{Pos: grid.Pos{Row: 4, Col: 5}}},
		{"erase 0 0", editor.Erase{}},
		{"shape diamond", editor.SetShape{Shape: shape.Diamond}},
		{"cols +1", editor.ResizeCols{Delta: 1}},
		{"rows -2", editor.ResizeRows{Delta: -2}},
		{"metric asc +1", editor.StepMetric{Metric: metrics.MetricAscender, Delta: 1}},
		{"gridsize 6", editor.SetGridSize{Size: 6}},
		{"guides", editor.ToggleGuides{}},
		{"reset", editor.Reset{}},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, _, _, err := parseEdit(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseEditErrors(t *testing.T) {
	for _, line := range []string{
		"frobnicate",
		"letter",
		"letter AB",
		"select 1",
		"select a b",
		"set 0 0 hexagon",
		"set 0 0 line #zzz",
		"metric width 1",
		"cols",
	} {
		_, _, _, err := parseEdit(line)
		assert.Error(t, err, line)
	}
}

func TestParseEditBuiltin(t *testing.T) {
	cmd, v, args, err := parseEdit("render out.png")
	require.NoError(t, err)
	assert.Nil(t, cmd)
	assert.Equal(t, "render", v.name)
	assert.Equal(t, []string{"out.png"}, args)

	_, v, _, err = parseEdit("exit")
	require.NoError(t, err)
	assert.Equal(t, "quit", v.name)
}

func newIntp(t *testing.T) *Intp {
	t.Helper()
	cfg := config.Default()
	cfg.OutDir = t.TempDir()
	cfg.Canvas = config.Canvas{Width: 120, Height: 120, DPR: 1}
	return &Intp{ed: editor.New(), cfg: cfg}
}

func TestExecuteSession(t *testing.T) {
	intp := newIntp(t)
	for _, line := range []string{"", "paint 0 0", "cols +1", "select 1 1", "show", "ops", "shapes", "help"} {
		quit, err := intp.Execute(line)
		require.NoError(t, err, line)
		assert.False(t, quit, line)
	}
	g := intp.ed.Glyph()
	assert.Equal(t, 3, g.Cols)
	assert.Equal(t, shape.Line, g.At(grid.Pos{}).Shape)
	assert.Equal(t, "glyph A 3x3 > ", intp.prompt())

	quit, err := intp.Execute("quit")
	require.NoError(t, err)
	assert.True(t, quit)
}

func TestExecuteClick(t *testing.T) {
	intp := newIntp(t)
	// 2x3 glyph on 120x120: cell 40, grid offset x=20.
	_, err := intp.Execute("click 70 50")
	require.NoError(t, err)
	sel := intp.ed.Selection()
	require.NotNil(t, sel.Selected)
	assert.Equal(t, grid.Pos{Row: 1, Col: 1}, *sel.Selected)

	_, err = intp.Execute("click 5 5")
	require.NoError(t, err)
	assert.Nil(t, intp.ed.Selection().Selected)
}

func TestExecuteOutputs(t *testing.T) {
	intp := newIntp(t)
	_, err := intp.Execute("set 0 0 square")
	require.NoError(t, err)

	glyphPNG := filepath.Join(intp.cfg.OutDir, "a.png")
	docPath := filepath.Join(intp.cfg.OutDir, "doc.json")
	for _, line := range []string{
		"render " + glyphPNG,
		"preview AB c",
		"sheet",
		"export " + docPath,
		"reset",
		"import " + docPath,
	} {
		_, err := intp.Execute(line)
		require.NoError(t, err, line)
	}
	for _, name := range []string{"a.png", "preview.png", "sheet.png", "doc.json"} {
		_, err := os.Stat(filepath.Join(intp.cfg.OutDir, name))
		assert.NoError(t, err, name)
	}
	assert.Equal(t, shape.Square, intp.ed.Glyph().At(grid.Pos{}).Shape)
}

func TestExecuteUsageErrors(t *testing.T) {
	intp := newIntp(t)
	_, err := intp.Execute("export")
	assert.EqualError(t, err, "usage: export <file.json>")
	_, err = intp.Execute("preview")
	assert.EqualError(t, err, "usage: preview <text>")
	_, err = intp.Execute("import " + filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
