// Package config loads glyphed settings from a YAML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/glyphkit/grid"
	"github.com/gogpu/glyphkit/metrics"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Canvas is the editor surface in logical pixels.
type Canvas struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	DPR    float64 `yaml:"dpr"`
}

// Preview sets the text preview geometry.
type Preview struct {
	Width       int     `yaml:"width"`
	Height      int     `yaml:"height"`
	GlyphHeight float64 `yaml:"glyph_height"`
	Gap         float64 `yaml:"gap"`
	BlankMarker bool    `yaml:"blank_marker"`
}

// Sheet sets the alphabet overview geometry.
type Sheet struct {
	Columns int `yaml:"columns"`
	Thumb   int `yaml:"thumb"`
	Margin  int `yaml:"margin"`
	Label   int `yaml:"label"` // caption height, 0 for none
}

// Config is the full glyphed configuration.
type Config struct {
	Canvas      Canvas             `yaml:"canvas"`
	Preview     Preview            `yaml:"preview"`
	Sheet       Sheet              `yaml:"sheet"`
	Padding     float64            `yaml:"padding"`
	Bounds      grid.Bounds        `yaml:"bounds"`
	DefaultCols int                `yaml:"default_cols"`
	Alphabet    string             `yaml:"alphabet"`
	Typography  metrics.Typography `yaml:"typography"`
	// StatePath is the autosave file. Empty means editor.DefaultStatePath.
	StatePath string `yaml:"state_path"`
	// OutDir receives rendered PNG files.
	OutDir string `yaml:"out_dir"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Canvas:      Canvas{Width: 480, Height: 480, DPR: 1},
		Preview:     Preview{Width: 800, Height: 120, GlyphHeight: 60, Gap: 8},
		Sheet:       Sheet{Columns: 9, Thumb: 80, Margin: 8, Label: 16},
		Bounds:      grid.DefaultBounds,
		DefaultCols: grid.DefaultCols,
		Alphabet:    grid.Uppercase.Name,
		Typography:  metrics.DefaultTypography,
		OutDir:      ".",
	}
}

// Load reads the file at path over the defaults. An empty path returns the
// defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML over the defaults and validates the result. Unknown
// keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every setting.
func (c Config) Validate() error {
	switch {
	case c.Canvas.Width < 1 || c.Canvas.Height < 1:
		return fmt.Errorf("%w: canvas %dx%d", ErrInvalid, c.Canvas.Width, c.Canvas.Height)
	case c.Canvas.DPR <= 0:
		return fmt.Errorf("%w: dpr %v", ErrInvalid, c.Canvas.DPR)
	case c.Preview.Width < 1 || c.Preview.Height < 1 || c.Preview.GlyphHeight <= 0 || c.Preview.Gap < 0:
		return fmt.Errorf("%w: preview %+v", ErrInvalid, c.Preview)
	case c.Sheet.Columns < 1 || c.Sheet.Thumb < 1 || c.Sheet.Margin < 0 || c.Sheet.Label < 0:
		return fmt.Errorf("%w: sheet %+v", ErrInvalid, c.Sheet)
	case c.Padding < 0 || c.Padding >= 0.5:
		return fmt.Errorf("%w: padding %v", ErrInvalid, c.Padding)
	case c.Bounds.Min < 1 || c.Bounds.Max < c.Bounds.Min:
		return fmt.Errorf("%w: bounds %d..%d", ErrInvalid, c.Bounds.Min, c.Bounds.Max)
	case !c.Bounds.Allows(c.DefaultCols):
		return fmt.Errorf("%w: default_cols %d outside %d..%d", ErrInvalid, c.DefaultCols, c.Bounds.Min, c.Bounds.Max)
	case !c.Typography.Valid():
		return fmt.Errorf("%w: typography %+v", ErrInvalid, c.Typography)
	}
	if _, ok := grid.AlphabetByName(c.Alphabet); !ok {
		return fmt.Errorf("%w: unknown alphabet %q", ErrInvalid, c.Alphabet)
	}
	return nil
}

// AlphabetSet returns the configured alphabet.
func (c Config) AlphabetSet() grid.Alphabet {
	a, _ := grid.AlphabetByName(c.Alphabet)
	return a
}
