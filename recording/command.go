package recording

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/gogpu/gg"
)

// CommandType identifies the type of a command.
type CommandType uint8

const (
	CmdSave       CommandType = iota // Save current state
	CmdRestore                       // Restore previous state
	CmdFillPath                      // Fill a path
	CmdStrokePath                    // Stroke a path
	CmdFillRect                      // Fill a single rectangle
	CmdStrokeRect                    // Stroke a single rectangle
)

var commandTypeNames = [...]string{
	CmdSave:       "Save",
	CmdRestore:    "Restore",
	CmdFillPath:   "FillPath",
	CmdStrokePath: "StrokePath",
	CmdFillRect:   "FillRect",
	CmdStrokeRect: "StrokeRect",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// Verb is a path construction step.
type Verb uint8

const (
	VerbMoveTo  Verb = iota // Start a subpath at Point
	VerbLineTo              // Line to Point
	VerbClose               // Close the subpath
	VerbRect                // Whole rectangle Rect
	VerbCubicTo             // Cubic Bézier through C1, C2 to Point
)

// Point is a device-space coordinate.
type Point struct{ X, Y float64 }

// Segment is one element of a recorded path, in device coordinates.
type Segment struct {
	Verb   Verb
	Point  Point // end point
	C1, C2 Point // CubicTo control points
	Rect   Rect  // Rect
}

// Path is a recorded path.
type Path []Segment

// SaveCommand records a Push.
type SaveCommand struct{}

// Type implements Command.
func (SaveCommand) Type() CommandType { return CmdSave }

// RestoreCommand records a Pop.
type RestoreCommand struct{}

// Type implements Command.
func (RestoreCommand) Type() CommandType { return CmdRestore }

// FillPathCommand fills a path.
type FillPathCommand struct {
	Path  Path
	Color color.NRGBA
}

// Type implements Command.
func (FillPathCommand) Type() CommandType { return CmdFillPath }

// StrokePathCommand strokes a path.
type StrokePathCommand struct {
	Path      Path
	Color     color.NRGBA
	LineWidth float64 // device space
	LineCap   gg.LineCap
	Dash      []float64
}

// Type implements Command.
func (StrokePathCommand) Type() CommandType { return CmdStrokePath }

// FillRectCommand fills a rectangle. Emitted instead of FillPathCommand when
// the path is a single rectangle.
type FillRectCommand struct {
	Rect  Rect
	Color color.NRGBA
}

// Type implements Command.
func (FillRectCommand) Type() CommandType { return CmdFillRect }

// StrokeRectCommand strokes a rectangle.
type StrokeRectCommand struct {
	Rect      Rect
	Color     color.NRGBA
	LineWidth float64
	Dash      []float64
}

// Type implements Command.
func (StrokeRectCommand) Type() CommandType { return CmdStrokeRect }

// Format renders a command as a single human-readable line.
func Format(c Command) string {
	switch c := c.(type) {
	case FillRectCommand:
		return fmt.Sprintf("%s %s %s", c.Type(), formatRect(c.Rect), formatColor(c.Color))
	case StrokeRectCommand:
		return fmt.Sprintf("%s %s %s w=%.2f%s", c.Type(), formatRect(c.Rect), formatColor(c.Color), c.LineWidth, formatDash(c.Dash))
	case FillPathCommand:
		return fmt.Sprintf("%s %s %s", c.Type(), formatPath(c.Path), formatColor(c.Color))
	case StrokePathCommand:
		return fmt.Sprintf("%s %s %s w=%.2f%s", c.Type(), formatPath(c.Path), formatColor(c.Color), c.LineWidth, formatDash(c.Dash))
	default:
		return c.Type().String()
	}
}

func formatRect(r Rect) string {
	return fmt.Sprintf("(%.2f,%.2f %.2fx%.2f)", r.MinX, r.MinY, r.Width(), r.Height())
}

func formatColor(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

func formatDash(d []float64) string {
	if len(d) == 0 {
		return ""
	}
	return fmt.Sprintf(" dash=%v", d)
}

func formatPath(p Path) string {
	var sb strings.Builder
	for i, s := range p {
		if i > 0 {
			sb.WriteByte(' ')
		}
		switch s.Verb {
		case VerbMoveTo:
			fmt.Fprintf(&sb, "M%.2f,%.2f", s.Point.X, s.Point.Y)
		case VerbLineTo:
			fmt.Fprintf(&sb, "L%.2f,%.2f", s.Point.X, s.Point.Y)
		case VerbClose:
			sb.WriteByte('Z')
		case VerbRect:
			sb.WriteString("R" + formatRect(s.Rect))
		case VerbCubicTo:
			fmt.Fprintf(&sb, "C%.2f,%.2f %.2f,%.2f %.2f,%.2f", s.C1.X, s.C1.Y, s.C2.X, s.C2.Y, s.Point.X, s.Point.Y)
		}
	}
	return sb.String()
}
