// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "github.com/gogpu/gg"

var (
	gridLineColor  = gg.Hex("#d0d0d0")
	guideColor     = gg.RGBA2(1, 0, 0, 0.3)
	selectionColor = gg.RGB(0, 0, 0)
	hoverColor     = gg.RGBA2(0, 0, 0, 0.05)
	markerColor    = gg.RGBA2(0, 0, 0, 0.08)
	currentColor   = gg.Hex("#cfe0ff")
	captionColor   = gg.Hex("#808080")
)

const (
	gridLineWidth  = 1
	guideLineWidth = 1
	selectionWidth = 2
	selectionInset = 2
	hoverInset     = 4
)

// guideDash is the dash pattern of guide lines.
var guideDash = []float64{5, 5}

// cellInk resolves the colour of a cell, falling back to the default ink.
func cellInk(hex string, ink gg.RGBA) gg.RGBA {
	if hex == "" {
		return ink
	}
	return gg.Hex(hex)
}
