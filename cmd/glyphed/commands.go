package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/gogpu/gg"
	"github.com/pterm/pterm"

	"github.com/gogpu/glyphkit/editor"
	"github.com/gogpu/glyphkit/grid"
	"github.com/gogpu/glyphkit/internal/config"
	"github.com/gogpu/glyphkit/metrics"
	"github.com/gogpu/glyphkit/recording"
	"github.com/gogpu/glyphkit/render"
	"github.com/gogpu/glyphkit/shape"
)

var errUsage = errors.New("usage")

// Intp is the command interpreter.
type Intp struct {
	ed  *editor.Editor
	cfg config.Config
}

type verb struct {
	name  string
	usage string
	// edit builds an editor command; run executes a built-in. One is set.
	edit func(args []string) (editor.Command, error)
	run  func(intp *Intp, args []string) (quit bool, err error)
}

var verbs []verb

func init() {
	verbs = []verb{
		{name: "letter", usage: "letter <char>", edit: func(a []string) (editor.Command, error) {
			r, err := argRune(a, 0)
			return editor.SelectLetter{Letter: r}, err
		}},
		{name: "next", usage: "next", edit: fixed(editor.StepLetter{Delta: 1})},
		{name: "prev", usage: "prev", edit: fixed(editor.StepLetter{Delta: -1})},
		{name: "select", usage: "select <row> <col>", edit: func(a []string) (editor.Command, error) {
			p, err := argPos(a, 0)
			return editor.SelectCell{Pos: p}, err
		}},
		{name: "deselect", usage: "deselect", edit: fixed(editor.ClearSelection{})},
		{name: "hover", usage: "hover <row> <col>", edit: func(a []string) (editor.Command, error) {
			p, err := argPos(a, 0)
			return editor.Hover{Pos: p}, err
		}},
		{name: "set", usage: "set <row> <col> <shape> [rotation] [#color]", edit: func(a []string) (editor.Command, error) {
			p, err := argPos(a, 0)
			if err != nil {
				return nil, err
			}
			k, rot, color, err := argCell(a, 2)
			return editor.SetCell{Pos: p, Shape: k, Rotation: rot, Color: color}, err
		}},
		{name: "paint", usage: "paint <row> <col>", edit: func(a []string) (editor.Command, error) {
			p, err := argPos(a, 0)
			return editor.Paint{Pos: p}, err
		}},
		{name: "erase", usage: "erase <row> <col>", edit: func(a []string) (editor.Command, error) {
			p, err := argPos(a, 0)
			return editor.Erase{Pos: p}, err
		}},
		{name: "rotate", usage: "rotate", edit: fixed(editor.Rotate{})},
		{name: "shape", usage: "shape <name>", edit: func(a []string) (editor.Command, error) {
			k, err := argShape(a, 0)
			return editor.SetShape{Shape: k}, err
		}},
		{name: "brush", usage: "brush <shape> [rotation] [#color]", edit: func(a []string) (editor.Command, error) {
			k, rot, color, err := argCell(a, 0)
			return editor.SetBrush{Shape: k, Rotation: rot, Color: color}, err
		}},
		{name: "clear", usage: "clear", edit: fixed(editor.ClearLetter{})},
		{name: "cols", usage: "cols <+n|-n>", edit: func(a []string) (editor.Command, error) {
			n, err := argInt(a, 0)
			return editor.ResizeCols{Delta: n}, err
		}},
		{name: "rows", usage: "rows <+n|-n>", edit: func(a []string) (editor.Command, error) {
			n, err := argInt(a, 0)
			return editor.ResizeRows{Delta: n}, err
		}},
		{name: "metric", usage: "metric <xheight|ascender|descender> <+n|-n>", edit: func(a []string) (editor.Command, error) {
			if len(a) < 1 {
				return nil, errUsage
			}
			m, ok := metrics.ParseMetric(a[0])
			if !ok {
				return nil, fmt.Errorf("unknown metric %q", a[0])
			}
			n, err := argInt(a, 1)
			return editor.StepMetric{Metric: m, Delta: n}, err
		}},
		{name: "gridsize", usage: "gridsize <cols>", edit: func(a []string) (editor.Command, error) {
			n, err := argInt(a, 0)
			return editor.SetGridSize{Size: n}, err
		}},
		{name: "guides", usage: "guides", edit: fixed(editor.ToggleGuides{})},
		{name: "gridlines", usage: "gridlines", edit: fixed(editor.ToggleGridLines{})},
		{name: "reset", usage: "reset", edit: fixed(editor.Reset{})},

		{name: "click", usage: "click <x> <y>", run: (*Intp).click},
		{name: "show", usage: "show", run: (*Intp).show},
		{name: "shapes", usage: "shapes", run: (*Intp).shapes},
		{name: "ops", usage: "ops", run: (*Intp).ops},
		{name: "render", usage: "render [file.png]", run: (*Intp).renderGlyph},
		{name: "preview", usage: "preview <text>", run: (*Intp).preview},
		{name: "sheet", usage: "sheet [file.png]", run: (*Intp).sheet},
		{name: "export", usage: "export <file.json>", run: (*Intp).export},
		{name: "import", usage: "import <file.json>", run: (*Intp).importFile},
		{name: "help", usage: "help", run: (*Intp).help},
		{name: "quit", usage: "quit", run: func(*Intp, []string) (bool, error) { return true, nil }},
	}
}

func fixed(c editor.Command) func([]string) (editor.Command, error) {
	return func([]string) (editor.Command, error) { return c, nil }
}

func lookupVerb(name string) (verb, bool) {
	name = strings.ToLower(name)
	if name == "exit" {
		name = "quit"
	}
	for _, v := range verbs {
		if v.name == name {
			return v, true
		}
	}
	return verb{}, false
}

// parseEdit parses line into an editor command. It returns a nil command
// for built-ins.
func parseEdit(line string) (editor.Command, verb, []string, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, verb{}, nil, nil
	}
	v, ok := lookupVerb(fields[0])
	if !ok {
		return nil, verb{}, nil, fmt.Errorf("unknown command %q (try help)", fields[0])
	}
	args := fields[1:]
	if v.edit == nil {
		return nil, v, args, nil
	}
	cmd, err := v.edit(args)
	if err != nil {
		if errors.Is(err, errUsage) {
			return nil, v, args, fmt.Errorf("usage: %s", v.usage)
		}
		return nil, v, args, err
	}
	return cmd, v, args, nil
}

// Execute runs one command line.
func (intp *Intp) Execute(line string) (quit bool, err error) {
	cmd, v, args, err := parseEdit(line)
	if err != nil || v.name == "" {
		return false, err
	}
	if cmd == nil {
		quit, err = v.run(intp, args)
		if errors.Is(err, errUsage) {
			err = fmt.Errorf("usage: %s", v.usage)
		}
		return quit, err
	}
	if !intp.ed.Apply(cmd) {
		pterm.Warning.Printf("%s: nothing changed\n", cmd)
	}
	return false, nil
}

func (intp *Intp) prompt() string {
	g := intp.ed.Glyph()
	return fmt.Sprintf("glyph %c %dx%d > ", intp.ed.Letter(), g.Cols, g.Rows)
}

func argInt(a []string, i int) (int, error) {
	if i >= len(a) {
		return 0, errUsage
	}
	n, err := strconv.Atoi(strings.TrimPrefix(a[i], "+"))
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", a[i])
	}
	return n, nil
}

func argPos(a []string, i int) (grid.Pos, error) {
	r, err := argInt(a, i)
	if err != nil {
		return grid.Pos{}, err
	}
	c, err := argInt(a, i+1)
	if err != nil {
		return grid.Pos{}, err
	}
	return grid.Pos{Row: r, Col: c}, nil
}

func argRune(a []string, i int) (rune, error) {
	if i >= len(a) {
		return 0, errUsage
	}
	if utf8.RuneCountInString(a[i]) != 1 {
		return 0, fmt.Errorf("not a single character: %q", a[i])
	}
	r, _ := utf8.DecodeRuneInString(a[i])
	return r, nil
}

func argShape(a []string, i int) (shape.Kind, error) {
	if i >= len(a) {
		return shape.Empty, errUsage
	}
	k, ok := shape.Parse(a[i])
	if !ok {
		return shape.Empty, fmt.Errorf("unknown shape %q (see shapes)", a[i])
	}
	return k, nil
}

// argCell parses "<shape> [rotation] [#color]" starting at a[i].
func argCell(a []string, i int) (shape.Kind, int, string, error) {
	k, err := argShape(a, i)
	if err != nil {
		return k, 0, "", err
	}
	rot, color := 0, ""
	for _, s := range a[i+1:] {
		if strings.HasPrefix(s, "#") {
			if !grid.ValidColor(s) {
				return k, 0, "", fmt.Errorf("invalid colour %q", s)
			}
			color = s
			continue
		}
		if rot, err = argInt([]string{s}, 0); err != nil {
			return k, 0, "", err
		}
	}
	return k, rot, color, nil
}

func (intp *Intp) outPath(args []string, def string) string {
	if len(args) > 0 {
		return args[0]
	}
	return filepath.Join(intp.cfg.OutDir, def)
}

func (intp *Intp) deviceSize(w, h int) (int, int) {
	dpr := intp.cfg.Canvas.DPR
	return int(float64(w)*dpr + 0.5), int(float64(h)*dpr + 0.5)
}

func (intp *Intp) glyphOptions() []render.Option {
	return append(intp.ed.RenderOptions(),
		render.WithDeviceScale(intp.cfg.Canvas.DPR),
		render.WithPadding(intp.cfg.Padding))
}

func (intp *Intp) drawGlyph(s render.Surface) error {
	return render.DrawGlyph(s, intp.ed.Glyph(), intp.ed.Letter(), intp.ed.Typography(), intp.ed.Selection(),
		intp.glyphOptions()...)
}

func (intp *Intp) click(args []string) (bool, error) {
	x, err := argInt(args, 0)
	if err != nil {
		return false, err
	}
	y, err := argInt(args, 1)
	if err != nil {
		return false, err
	}
	w, h := intp.deviceSize(intp.cfg.Canvas.Width, intp.cfg.Canvas.Height)
	m := render.MapperForSize(w, h, intp.ed.Glyph(), intp.glyphOptions()...)
	p, ok := m.PixelToCell(float64(x), float64(y))
	if !ok {
		return false, intp.exec(editor.ClearSelection{})
	}
	return false, intp.exec(editor.SelectCell{Pos: p})
}

func (intp *Intp) exec(cmd editor.Command) error {
	if !intp.ed.Apply(cmd) {
		pterm.Warning.Printf("%s: nothing changed\n", cmd)
	}
	return nil
}

var symbols = map[shape.Kind][]string{
	shape.Line:     {"▀", "▐", "▄", "▌"},
	shape.Quarter:  {"◜", "◝", "◞", "◟"},
	shape.Half:     {"◠", "◗", "◡", "◖"},
	shape.Circle:   {"○"},
	shape.Diagonal: {"╲", "╱", "╲", "╱"},
	shape.Square:   {"■"},
	shape.Triangle: {"▲", "▶", "▼", "◀"},
	shape.Diamond:  {"◆"},
}

func cellSymbol(c grid.Cell) string {
	syms, ok := symbols[c.Shape]
	if !ok || c.IsEmpty() {
		return "·"
	}
	return syms[c.Rotation%len(syms)]
}

func (intp *Intp) show([]string) (bool, error) {
	g := intp.ed.Glyph()
	typo := intp.ed.Typography()
	pterm.Info.Printf("letter %c (%s), %dx%d, %d filled, typography x=%d asc=%d desc=%d\n",
		intp.ed.Letter(), metrics.Classify(intp.ed.Letter()), g.Cols, g.Rows, g.Filled(),
		typo.XHeight, typo.Ascender, typo.Descender)

	sel := intp.ed.Selection()
	header := []string{""}
	for c := range g.Cols {
		header = append(header, strconv.Itoa(c))
	}
	data := [][]string{header}
	for r, row := range g.Cells {
		line := []string{strconv.Itoa(r)}
		for c, cell := range row {
			s := cellSymbol(cell)
			if sel.Selected != nil && *sel.Selected == (grid.Pos{Row: r, Col: c}) {
				s = "[" + s + "]"
			}
			line = append(line, s)
		}
		data = append(data, line)
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return false, nil
}

func (intp *Intp) shapes([]string) (bool, error) {
	data := [][]string{{"Name", "Display", "Rotations", "Filled"}}
	for _, d := range shape.All() {
		if d.Kind == shape.Empty {
			continue
		}
		data = append(data, []string{d.Name, d.DisplayName, strconv.Itoa(d.Rotations), strconv.FormatBool(d.Filled)})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return false, nil
}

func (intp *Intp) ops([]string) (bool, error) {
	w, h := intp.deviceSize(intp.cfg.Canvas.Width, intp.cfg.Canvas.Height)
	rec := recording.NewRecorder(w, h)
	if err := intp.drawGlyph(rec); err != nil {
		return false, err
	}
	for i, c := range rec.FinishRecording().Commands() {
		pterm.Printf("%3d  %s\n", i, recording.Format(c))
	}
	return false, nil
}

func (intp *Intp) renderGlyph(args []string) (bool, error) {
	w, h := intp.deviceSize(intp.cfg.Canvas.Width, intp.cfg.Canvas.Height)
	dc := gg.NewContext(w, h)
	defer dc.Close()
	if err := intp.drawGlyph(dc); err != nil {
		return false, err
	}
	return false, intp.save(dc, intp.outPath(args, fmt.Sprintf("glyph-%U.png", intp.ed.Letter())))
}

func (intp *Intp) preview(args []string) (bool, error) {
	if len(args) == 0 {
		return false, errUsage
	}
	p := intp.cfg.Preview
	w, h := intp.deviceSize(p.Width, p.Height)
	dc := gg.NewContext(w, h)
	defer dc.Close()
	err := render.DrawText(dc, intp.ed.Set(), strings.Join(args, " "),
		render.WithDeviceScale(intp.cfg.Canvas.DPR),
		render.WithGlyphHeight(p.GlyphHeight),
		render.WithGap(p.Gap),
		render.WithBlankMarker(p.BlankMarker))
	if err != nil {
		return false, err
	}
	return false, intp.save(dc, filepath.Join(intp.cfg.OutDir, "preview.png"))
}

func (intp *Intp) sheet(args []string) (bool, error) {
	s := intp.cfg.Sheet
	img, err := render.Sheet(intp.ed.Set(), render.SheetLayout{
		Columns:     s.Columns,
		Thumb:       s.Thumb,
		Margin:      s.Margin,
		Supersample: render.DefaultSheetLayout.Supersample,
		Label:       s.Label,
		Current:     intp.ed.Letter(),
	}, render.WithGridLines(false), render.WithPadding(0.06))
	if err != nil {
		return false, err
	}
	dc := gg.NewContextForImage(img)
	defer dc.Close()
	return false, intp.save(dc, intp.outPath(args, "sheet.png"))
}

func (intp *Intp) save(dc *gg.Context, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	if err := dc.SavePNG(path); err != nil {
		return err
	}
	pterm.Success.Printf("wrote %s (%dx%d)\n", path, dc.Width(), dc.Height())
	return nil
}

func (intp *Intp) export(args []string) (bool, error) {
	if len(args) != 1 {
		return false, errUsage
	}
	f, err := os.Create(args[0])
	if err != nil {
		return false, err
	}
	if err := intp.ed.Export(f); err != nil {
		_ = f.Close()
		return false, err
	}
	if err := f.Close(); err != nil {
		return false, err
	}
	pterm.Success.Printf("exported %s\n", args[0])
	return false, nil
}

func (intp *Intp) importFile(args []string) (bool, error) {
	if len(args) != 1 {
		return false, errUsage
	}
	f, err := os.Open(args[0])
	if err != nil {
		return false, err
	}
	defer f.Close()
	res, err := intp.ed.Import(context.Background(), f)
	if err != nil {
		return false, err
	}
	for _, w := range res.Warnings {
		pterm.Warning.Println(w)
	}
	if len(res.Missing) > 0 {
		pterm.Info.Printf("%d letters missing, left empty: %s\n", len(res.Missing), string(res.Missing))
	}
	pterm.Success.Printf("imported %s\n", args[0])
	return false, nil
}

func (intp *Intp) help([]string) (bool, error) {
	data := [][]string{{"Command", "Kind"}}
	for _, v := range verbs {
		kind := "edit"
		if v.run != nil {
			kind = "tool"
		}
		data = append(data, []string{v.usage, kind})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return false, nil
}
