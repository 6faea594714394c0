package recording

import (
	"image/color"

	"github.com/gogpu/gg"
)

// Recorder captures drawing operations as commands.
// It mirrors the part of the gg.Context API used by glyph rendering but
// records commands instead of rasterizing pixels. Use FinishRecording to
// obtain the immutable Recording.
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	width, height int
	commands      []Command

	path Path

	color     color.NRGBA
	lineWidth float64
	lineCap   gg.LineCap
	dash      []float64
	transform Matrix

	stateStack []recorderState
}

// recorderState stores the graphics state for Push/Pop.
type recorderState struct {
	color     color.NRGBA
	lineWidth float64
	lineCap   gg.LineCap
	dash      []float64
	transform Matrix
}

// NewRecorder creates a new Recorder for the given dimensions.
// The Recorder starts with default state: black ink, 1px line width,
// butt caps, no dash, and identity transform.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{
		width:      width,
		height:     height,
		commands:   make([]Command, 0, 64),
		color:      color.NRGBA{A: 0xff},
		lineWidth:  1,
		lineCap:    gg.LineCapButt,
		transform:  Identity(),
		stateStack: make([]recorderState, 0, 8),
	}
}

// FinishRecording returns an immutable Recording containing all recorded commands.
// After calling FinishRecording, the Recorder should not be used again.
func (r *Recorder) FinishRecording() *Recording {
	return &Recording{width: r.width, height: r.height, commands: r.commands}
}

// Width returns the recording canvas width.
func (r *Recorder) Width() int { return r.width }

// Height returns the recording canvas height.
func (r *Recorder) Height() int { return r.height }

// Push saves the current graphics state.
func (r *Recorder) Push() {
	r.stateStack = append(r.stateStack, recorderState{
		color:     r.color,
		lineWidth: r.lineWidth,
		lineCap:   r.lineCap,
		dash:      cloneDash(r.dash),
		transform: r.transform,
	})
	r.commands = append(r.commands, SaveCommand{})
}

// Pop restores the state saved by the matching Push.
// Unbalanced calls are ignored.
func (r *Recorder) Pop() {
	if len(r.stateStack) == 0 {
		return
	}
	s := r.stateStack[len(r.stateStack)-1]
	r.stateStack = r.stateStack[:len(r.stateStack)-1]
	r.color = s.color
	r.lineWidth = s.lineWidth
	r.lineCap = s.lineCap
	r.dash = s.dash
	r.transform = s.transform
	r.commands = append(r.commands, RestoreCommand{})
}

// Translate applies a translation to the current transform.
func (r *Recorder) Translate(x, y float64) {
	r.transform = r.transform.Multiply(Translate(x, y))
}

// Scale applies a scale to the current transform.
func (r *Recorder) Scale(sx, sy float64) {
	r.transform = r.transform.Multiply(Scale(sx, sy))
}

// Rotate applies a rotation (radians) to the current transform.
func (r *Recorder) Rotate(angle float64) {
	r.transform = r.transform.Multiply(Rotate(angle))
}

// Transform returns the current transformation matrix.
func (r *Recorder) Transform() Matrix { return r.transform }

// SetColor sets the ink used by subsequent Fill and Stroke calls.
func (r *Recorder) SetColor(c color.Color) {
	r.color = color.NRGBAModel.Convert(c).(color.NRGBA)
}

// SetLineWidth sets the stroke width in user space.
func (r *Recorder) SetLineWidth(width float64) { r.lineWidth = width }

// SetLineCap sets the stroke cap style.
func (r *Recorder) SetLineCap(lineCap gg.LineCap) { r.lineCap = lineCap }

// SetDash sets the dash pattern. Calling it with no lengths clears the dash.
func (r *Recorder) SetDash(lengths ...float64) {
	r.dash = cloneDash(lengths)
}

// ClearDash removes the dash pattern.
func (r *Recorder) ClearDash() { r.dash = nil }

// MoveTo starts a new subpath.
func (r *Recorder) MoveTo(x, y float64) {
	px, py := r.transform.TransformPoint(x, y)
	r.path = append(r.path, Segment{Verb: VerbMoveTo, Point: Point{px, py}})
}

// LineTo adds a line to the current subpath.
func (r *Recorder) LineTo(x, y float64) {
	px, py := r.transform.TransformPoint(x, y)
	r.path = append(r.path, Segment{Verb: VerbLineTo, Point: Point{px, py}})
}

// ClosePath closes the current subpath.
func (r *Recorder) ClosePath() {
	r.path = append(r.path, Segment{Verb: VerbClose})
}

// DrawRectangle adds a rectangle to the path. Under an axis-aligned
// transform it is recorded as one rect segment; otherwise as the four
// transformed corners, like gg.Context does.
func (r *Recorder) DrawRectangle(x, y, w, h float64) {
	if r.transform.IsAxisAligned() {
		r.path = append(r.path, Segment{Verb: VerbRect, Rect: transformRect(r.transform, NewRect(x, y, w, h))})
		return
	}
	r.MoveTo(x, y)
	r.LineTo(x+w, y)
	r.LineTo(x+w, y+h)
	r.LineTo(x, y+h)
	r.ClosePath()
}

// CubicTo adds a cubic Bézier curve to the current subpath. Control and end
// points are transformed; nothing else is.
func (r *Recorder) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	ax, ay := r.transform.TransformPoint(c1x, c1y)
	bx, by := r.transform.TransformPoint(c2x, c2y)
	px, py := r.transform.TransformPoint(x, y)
	r.path = append(r.path, Segment{
		Verb:  VerbCubicTo,
		C1:    Point{ax, ay},
		C2:    Point{bx, by},
		Point: Point{px, py},
	})
}

// Fill records a fill of the current path and clears it.
func (r *Recorder) Fill() error {
	if len(r.path) == 0 {
		return nil
	}
	if len(r.path) == 1 && r.path[0].Verb == VerbRect {
		r.commands = append(r.commands, FillRectCommand{Rect: r.path[0].Rect, Color: r.color})
	} else {
		r.commands = append(r.commands, FillPathCommand{Path: r.path, Color: r.color})
	}
	r.path = nil
	return nil
}

// Stroke records a stroke of the current path and clears it.
func (r *Recorder) Stroke() error {
	if len(r.path) == 0 {
		return nil
	}
	width := r.lineWidth * r.transform.ScaleFactor()
	if len(r.path) == 1 && r.path[0].Verb == VerbRect {
		r.commands = append(r.commands, StrokeRectCommand{
			Rect:      r.path[0].Rect,
			Color:     r.color,
			LineWidth: width,
			Dash:      cloneDash(r.dash),
		})
	} else {
		r.commands = append(r.commands, StrokePathCommand{
			Path:      r.path,
			Color:     r.color,
			LineWidth: width,
			LineCap:   r.lineCap,
			Dash:      cloneDash(r.dash),
		})
	}
	r.path = nil
	return nil
}

func cloneDash(d []float64) []float64 {
	if len(d) == 0 {
		return nil
	}
	out := make([]float64, len(d))
	copy(out, d)
	return out
}

// Recording is an immutable container for recorded drawing commands.
type Recording struct {
	width, height int
	commands      []Command
}

// Width returns the width of the recording canvas.
func (r *Recording) Width() int { return r.width }

// Height returns the height of the recording canvas.
func (r *Recording) Height() int { return r.height }

// Commands returns the recorded commands in order.
func (r *Recording) Commands() []Command { return r.commands }

// Count returns the number of recorded commands of type t.
func (r *Recording) Count(t CommandType) int {
	n := 0
	for _, c := range r.commands {
		if c.Type() == t {
			n++
		}
	}
	return n
}

// StrokeRects returns the rectangles of all StrokeRect commands.
func (r *Recording) StrokeRects() []StrokeRectCommand {
	var out []StrokeRectCommand
	for _, c := range r.commands {
		if sr, ok := c.(StrokeRectCommand); ok {
			out = append(out, sr)
		}
	}
	return out
}

// FillRects returns all FillRect commands.
func (r *Recording) FillRects() []FillRectCommand {
	var out []FillRectCommand
	for _, c := range r.commands {
		if fr, ok := c.(FillRectCommand); ok {
			out = append(out, fr)
		}
	}
	return out
}

// Strokes returns all StrokePath commands.
func (r *Recording) Strokes() []StrokePathCommand {
	var out []StrokePathCommand
	for _, c := range r.commands {
		if sp, ok := c.(StrokePathCommand); ok {
			out = append(out, sp)
		}
	}
	return out
}
