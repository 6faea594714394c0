// Package document converts a letter set and its typography to and from the
// JSON document format.
//
// The current format is version 2:
//
//	{
//	  "version": 2,
//	  "alphabet": "uppercase",
//	  "typography": {"xHeight": 2, "ascender": 1, "descender": 1},
//	  "glyphs": {
//	    "A": {"cols": 2, "rows": 3, "cells": [[null, {"shape": "line", "rotation": 1}], ...]}
//	  }
//	}
//
// Import also reads the two earlier layouts: version 1 (a global gridSize and
// flattened square cell arrays of {shape, color}) and the unversioned map of
// letters to {grid, cols, rows}.
//
// Import recovers per entry. A payload that is not JSON, has no glyph
// collection, carries non-numeric document-level dimensions, or names an
// unknown version fails with a *ParseError. A single malformed glyph only
// degrades that letter to an empty grid and adds a warning to the Result.
package document
