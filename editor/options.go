package editor

import (
	"github.com/gogpu/glyphkit/grid"
	"github.com/gogpu/glyphkit/metrics"
)

// Option configures an Editor.
//
// Example:
//
//	ed := editor.New(
//	    editor.WithAlphabet(grid.Full),
//	    editor.WithStore(editor.NewFileStore(path)),
//	)
type Option func(*options)

type options struct {
	alphabet   grid.Alphabet
	bounds     grid.Bounds
	cols       int
	typography metrics.Typography
	store      Store
}

func defaultOptions() options {
	return options{
		alphabet:   grid.Uppercase,
		bounds:     grid.DefaultBounds,
		cols:       grid.DefaultCols,
		typography: metrics.DefaultTypography,
	}
}

// WithAlphabet sets the alphabet of a fresh letter set. Default: grid.Uppercase.
func WithAlphabet(a grid.Alphabet) Option {
	return func(o *options) {
		if len(a.Letters) > 0 {
			o.alphabet = a
		}
	}
}

// WithBounds limits column and row counts. Default: grid.DefaultBounds.
func WithBounds(b grid.Bounds) Option {
	return func(o *options) {
		if b.Min >= 1 && b.Max >= b.Min {
			o.bounds = b
		}
	}
}

// WithDefaultCols sets the width of freshly created glyphs.
func WithDefaultCols(n int) Option {
	return func(o *options) {
		if n >= 1 {
			o.cols = n
		}
	}
}

// WithTypography sets the initial and reset typography. Invalid settings
// are ignored.
func WithTypography(t metrics.Typography) Option {
	return func(o *options) {
		if t.Valid() {
			o.typography = t
		}
	}
}

// WithStore loads the initial state from s and saves every document change
// back to it.
func WithStore(s Store) Option {
	return func(o *options) { o.store = s }
}
