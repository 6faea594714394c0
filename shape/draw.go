package shape

import (
	"image/color"
	"math"

	"github.com/gogpu/gg"
)

// Canvas is the subset of a drawing context needed to draw shapes.
// *gg.Context implements it.
type Canvas interface {
	Push()
	Pop()
	Translate(x, y float64)
	Rotate(angle float64)
	SetColor(c color.Color)
	SetLineWidth(width float64)
	SetLineCap(lineCap gg.LineCap)
	MoveTo(x, y float64)
	LineTo(x, y float64)
	ClosePath()
	CubicTo(c1x, c1y, c2x, c2y, x, y float64)
	DrawRectangle(x, y, w, h float64)
	Fill() error
	Stroke() error
}

// Draw paints shape k into the size×size cell at (x, y), rotated by
// rotation steps about the cell centre. Empty and unknown kinds draw nothing.
func Draw(c Canvas, k Kind, x, y, size float64, rotation int, ink color.Color) error {
	d := Lookup(k)
	prims := d.Geometry(size)
	if len(prims) == 0 {
		return nil
	}

	c.Push()
	defer c.Pop()

	c.Translate(x+size/2, y+size/2)
	if step := d.AngleStep(); step != 0 {
		c.Rotate(float64(k.NormalizeRotation(rotation)) * step)
	}
	c.Translate(-size/2, -size/2)

	c.SetColor(ink)
	c.SetLineCap(gg.LineCapButt)
	for _, p := range prims {
		if err := drawPrimitive(c, p); err != nil {
			return err
		}
	}
	return nil
}

func drawPrimitive(c Canvas, p Primitive) error {
	switch p.Op {
	case OpFillRect:
		c.DrawRectangle(p.X, p.Y, p.W, p.H)
		return c.Fill()
	case OpStrokeArc:
		arc(c, p.X, p.Y, p.R, p.A1, p.A2)
		c.SetLineWidth(p.Width)
		return c.Stroke()
	case OpStrokeLine:
		c.MoveTo(p.Points[0].X, p.Points[0].Y)
		c.LineTo(p.Points[1].X, p.Points[1].Y)
		c.SetLineWidth(p.Width)
		return c.Stroke()
	case OpFillPolygon:
		for i, pt := range p.Points {
			if i == 0 {
				c.MoveTo(pt.X, pt.Y)
			} else {
				c.LineTo(pt.X, pt.Y)
			}
		}
		c.ClosePath()
		return c.Fill()
	}
	return nil
}

// arc adds a circular arc from a1 to a2 as cubic Bézier segments of at most
// a quarter turn. Every point goes through the canvas transform, so rotated
// and scaled arcs land where their cell-local geometry says.
func arc(c Canvas, cx, cy, r, a1, a2 float64) {
	for a2 < a1 {
		a2 += 2 * math.Pi
	}
	n := int(math.Ceil((a2 - a1) / (math.Pi / 2)))
	if n < 1 {
		n = 1
	}
	step := (a2 - a1) / float64(n)
	k := 4.0 / 3.0 * math.Tan(step/4) * r

	c.MoveTo(cx+r*math.Cos(a1), cy+r*math.Sin(a1))
	for i := 0; i < n; i++ {
		s := a1 + float64(i)*step
		e := s + step
		cs, ss := math.Cos(s), math.Sin(s)
		ce, se := math.Cos(e), math.Sin(e)
		c.CubicTo(
			cx+r*cs-k*ss, cy+r*ss+k*cs,
			cx+r*ce+k*se, cy+r*se-k*ce,
			cx+r*ce, cy+r*se,
		)
	}
	if a2-a1 >= 2*math.Pi-1e-9 {
		c.ClosePath()
	}
}
