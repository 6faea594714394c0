// Package glyphkit is a toolkit for designing modular glyphs on a grid.
//
// # Overview
//
// A glyph is a small grid of cells. Each cell holds one primitive shape
// (a line, a quarter or half arc, a ring, a diagonal, or a filled square,
// triangle or diamond) at one of its rotations. One grid exists per character
// of an alphabet, and the grid heights follow shared typographic metrics
// (x-height, ascender, descender).
//
// # Packages
//
//   - shape: the fixed set of primitives and their geometry
//   - grid: cells, glyph grids, resizing, the letter set
//   - metrics: letter classes and typography-driven grid heights
//   - layout: mapping between surface pixels and grid cells
//   - render: drawing glyphs, guides and text previews onto a surface
//   - document: JSON export and import
//   - editor: the editor state and its command loop
//   - recording: a surface that records draw calls instead of rasterizing
//
// Rendering targets any [render.Surface]; a *gg.Context from
// github.com/gogpu/gg satisfies it, so glyphs can be written to PNG:
//
//	dc := gg.NewContext(480, 480)
//	ed := editor.New()
//	ed.Apply(editor.SetCell{Pos: grid.Pos{Row: 0, Col: 0}, Shape: shape.Quarter})
//	render.DrawGlyph(dc, ed.Glyph(), ed.Letter(), ed.Typography(), ed.Selection())
//	_ = dc.SavePNG("glyph.png")
//
// # Logging
//
// glyphkit is silent by default. See [SetLogger].
package glyphkit

// Version is the current version of the module.
const Version = "0.3.0"
