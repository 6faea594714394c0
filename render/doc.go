// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render draws glyph grids onto a drawing surface.
//
// The renderer is a pure projection of editor state: given a grid, the
// letter it belongs to, the typography and the selection, it issues draw
// calls against a Surface and keeps no state of its own.
//
// # Passes
//
// DrawGlyph draws, in order: the background, grid lines at cell boundaries,
// dashed typographic guides, every non-empty cell, the selected-cell border,
// and the hover tint (only when nothing is selected).
//
// DrawText lays out a string left to right at a fixed glyph height, each
// glyph as wide as its column/row ratio requires. Sheet composes an alphabet
// overview image of captioned thumbnails.
//
// # Surfaces
//
// Any *gg.Context is a Surface. The recording package provides a Surface
// that captures draw calls for inspection.
package render
