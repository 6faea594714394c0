// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"
	"image"
	"image/color"
	"strconv"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/glyphkit"
	"github.com/gogpu/glyphkit/grid"
)

// SheetLayout describes an alphabet overview image.
type SheetLayout struct {
	Columns int // thumbnails per row
	Thumb   int // thumbnail side in pixels
	Margin  int // space around each card
	// Supersample renders each thumbnail this many times larger and scales
	// it down, smoothing edges.
	Supersample int
	// Label is the height of the caption band above each thumbnail. The
	// caption shows the letter and its filled cell count. Zero draws no
	// captions.
	Label int
	// Current is highlighted when it is part of the set.
	Current rune
}

// DefaultSheetLayout matches the alphabet overview of the editor.
var DefaultSheetLayout = SheetLayout{Columns: 9, Thumb: 80, Margin: 8, Supersample: 2, Label: 16}

var labelFont = sync.OnceValues(func() (*text.FontSource, error) {
	return text.NewFontSource(goregular.TTF)
})

// Sheet renders every glyph of set as a captioned card and composes them
// into a single image in alphabet order.
func Sheet(set *grid.LetterSet, l SheetLayout, opts ...Option) (*image.RGBA, error) {
	l.Columns = max(l.Columns, 1)
	l.Thumb = max(l.Thumb, 1)
	l.Supersample = max(l.Supersample, 1)
	l.Label = max(l.Label, 0)

	var face text.Face
	if l.Label > 0 {
		src, err := labelFont()
		if err != nil {
			return nil, fmt.Errorf("render: label font: %w", err)
		}
		face = src.Face(float64(l.Label) * 0.75)
	}

	letters := set.Letters()
	rows := (len(letters) + l.Columns - 1) / l.Columns
	cardW := l.Thumb + 2*l.Margin
	cardH := l.Thumb + l.Label + 2*l.Margin
	dst := image.NewRGBA(image.Rect(0, 0, l.Columns*cardW, max(rows, 1)*cardH))
	xdraw.Draw(dst, dst.Bounds(), image.NewUniform(color.White), image.Point{}, xdraw.Src)

	big := l.Thumb * l.Supersample
	for i, r := range letters {
		g, ok := set.Get(r)
		if !ok {
			continue
		}
		x := (i%l.Columns)*cardW + l.Margin
		y := (i/l.Columns)*cardH + l.Margin

		if face != nil {
			caption := image.Rect(x, y, x+l.Thumb, y+l.Label)
			if err := drawCaption(dst, caption, face, r, g.Filled(), r == l.Current); err != nil {
				return nil, err
			}
			y += l.Label
		} else if r == l.Current {
			fill(dst, image.Rect(x-l.Margin/2, y-l.Margin/2, x+l.Thumb+l.Margin/2, y+l.Thumb+l.Margin/2), currentColor)
		}

		dc := gg.NewContext(big, big)
		if err := DrawThumbnail(dc, g, opts...); err != nil {
			_ = dc.Close()
			return nil, err
		}
		target := image.Rect(x, y, x+l.Thumb, y+l.Thumb)
		src := dc.Image()
		xdraw.CatmullRom.Scale(dst, target, src, src.Bounds(), xdraw.Over, nil)
		_ = dc.Close()
	}
	glyphkit.Logger().Debug("render: sheet", "letters", len(letters), "size", dst.Bounds().Size())
	return dst, nil
}

// drawCaption writes the letter on the left of r and the filled count on the
// right. The current letter gets a tinted band.
func drawCaption(dst *image.RGBA, r image.Rectangle, face text.Face, letter rune, filled int, current bool) error {
	dc := gg.NewContext(r.Dx(), r.Dy())
	defer dc.Close()

	bg := gg.RGB(1, 1, 1)
	if current {
		bg = currentColor
	}
	dc.SetColor(bg.Color())
	dc.DrawRectangle(0, 0, float64(r.Dx()), float64(r.Dy()))
	if err := dc.Fill(); err != nil {
		return err
	}

	dc.SetFont(face)
	dc.SetColor(color.Black)
	baseline := float64(r.Dy()) * 0.8
	dc.DrawString(string(letter), 1, baseline)

	count := strconv.Itoa(filled)
	w, _ := dc.MeasureString(count)
	dc.SetColor(captionColor.Color())
	dc.DrawString(count, float64(r.Dx())-w-1, baseline)

	xdraw.Draw(dst, r, dc.Image(), image.Point{}, xdraw.Src)
	return nil
}

func fill(dst *image.RGBA, r image.Rectangle, c gg.RGBA) {
	xdraw.Draw(dst, r, image.NewUniform(c.Color()), image.Point{}, xdraw.Src)
}
