// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"github.com/gogpu/gg"

	"github.com/gogpu/glyphkit/shape"
)

// Surface is the drawing target of the renderer. It is the subset of the
// *gg.Context API the renderer uses. The renderer only reads the current
// dimensions; it never creates or resizes a surface.
type Surface interface {
	shape.Canvas

	// Width and Height return the surface size in device pixels.
	Width() int
	Height() int

	Scale(sx, sy float64)
	SetDash(lengths ...float64)
	ClearDash()
}

var _ Surface = (*gg.Context)(nil)
