// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"image"
	"testing"

	"github.com/gogpu/glyphkit/grid"
	"github.com/gogpu/glyphkit/shape"
)

func TestSheet(t *testing.T) {
	set := uppercaseSet(1, 1)
	a, _ := set.Get('A')
	a.Set(grid.Pos{}, grid.NewCell(shape.Square, 0, ""))

	img, err := Sheet(set, SheetLayout{Columns: 9, Thumb: 20, Margin: 2, Supersample: 1}, WithGridLines(false))
	if err != nil {
		t.Fatalf("Sheet() error = %v", err)
	}
	if got := img.Bounds().Dx(); got != 9*24 {
		t.Errorf("width = %d, want %d", got, 9*24)
	}
	if got := img.Bounds().Dy(); got != 4*24 {
		t.Errorf("height = %d, want %d", got, 4*24)
	}

	r, _, _, _ := img.At(12, 12).RGBA()
	if r > 0x4000 {
		t.Errorf("A centre red = %#x, want dark", r)
	}
	r, _, _, _ = img.At(24+12, 12).RGBA()
	if r < 0xc000 {
		t.Errorf("B centre red = %#x, want light", r)
	}
}

func TestSheetCaptions(t *testing.T) {
	set := uppercaseSet(1, 1)
	a, _ := set.Get('A')
	a.Set(grid.Pos{}, grid.NewCell(shape.Square, 0, ""))

	l := SheetLayout{Columns: 9, Thumb: 40, Margin: 2, Supersample: 1, Label: 16, Current: 'B'}
	img, err := Sheet(set, l, WithGridLines(false))
	if err != nil {
		t.Fatalf("Sheet() error = %v", err)
	}
	if got, want := img.Bounds().Size(), image.Pt(9*44, 4*60); got != want {
		t.Errorf("size = %v, want %v", got, want)
	}

	// Caption band of A: x 2..42, y 2..18.
	var ink int
	for y := 2; y < 18; y++ {
		for x := 2; x < 42; x++ {
			if r, _, _, _ := img.At(x, y).RGBA(); r < 0x8000 {
				ink++
			}
		}
	}
	if ink == 0 {
		t.Error("caption of A has no ink")
	}

	// The thumbnail moves below the caption.
	if r, _, _, _ := img.At(22, 18+20).RGBA(); r > 0x4000 {
		t.Errorf("A thumbnail centre red = %#x, want dark", r)
	}

	// B is current: its band is tinted, A's is not.
	r, _, b, _ := img.At(44+22, 2).RGBA()
	if b-r < 0x1000 {
		t.Errorf("B caption = (r %#x, b %#x), want tinted", r, b)
	}
	r, _, b, _ = img.At(22, 2).RGBA()
	if r != b {
		t.Errorf("A caption = (r %#x, b %#x), want neutral", r, b)
	}
}
