// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "github.com/gogpu/gg"

// Option configures a render pass.
//
// Example:
//
//	render.DrawGlyph(dc, g, 'b', typo, sel,
//	    render.WithGuides(true),
//	    render.WithDeviceScale(2))
type Option func(*options)

type options struct {
	gridLines   bool
	guides      bool
	background  *gg.RGBA
	ink         gg.RGBA
	padding     float64
	scale       float64
	blankMarker bool
	glyphHeight float64
	gap         float64
}

func defaultOptions() options {
	bg := gg.RGB(1, 1, 1)
	return options{
		gridLines:   true,
		background:  &bg,
		ink:         gg.RGB(0, 0, 0),
		scale:       1,
		glyphHeight: 60,
		gap:         8,
	}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.scale <= 0 {
		o.scale = 1
	}
	return o
}

// WithGridLines toggles the background grid lines. Enabled by default.
func WithGridLines(on bool) Option {
	return func(o *options) { o.gridLines = on }
}

// WithGuides toggles the dashed typographic guide lines. Disabled by default.
func WithGuides(on bool) Option {
	return func(o *options) { o.guides = on }
}

// WithBackground sets the colour the surface is filled with before drawing.
// The default is white.
func WithBackground(c gg.RGBA) Option {
	return func(o *options) { o.background = &c }
}

// WithoutBackground leaves the surface contents below the glyph untouched.
func WithoutBackground() Option {
	return func(o *options) { o.background = nil }
}

// WithInk sets the colour of cells that carry no colour of their own.
func WithInk(c gg.RGBA) Option {
	return func(o *options) { o.ink = c }
}

// WithPadding reserves a fraction of the shorter surface side on every edge.
func WithPadding(p float64) Option {
	return func(o *options) { o.padding = p }
}

// WithDeviceScale sets the device pixel ratio. Layout happens in logical
// pixels (surface size divided by the ratio) and the surface transform is
// scaled for the duration of the pass.
func WithDeviceScale(dpr float64) Option {
	return func(o *options) { o.scale = dpr }
}

// WithBlankMarker draws a faint bar for characters the text preview cannot
// render.
func WithBlankMarker(on bool) Option {
	return func(o *options) { o.blankMarker = on }
}

// WithGlyphHeight sets the glyph height of the text preview in logical
// pixels. The default is 60.
func WithGlyphHeight(h float64) Option {
	return func(o *options) { o.glyphHeight = h }
}

// WithGap sets the space between preview glyphs. The default is 8.
func WithGap(g float64) Option {
	return func(o *options) { o.gap = g }
}
