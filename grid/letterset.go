package grid

import (
	"slices"
)

// Alphabet is an ordered set of characters.
type Alphabet struct {
	Name    string
	Letters []rune
}

var (
	// Uppercase holds A-Z and 0-9.
	Uppercase = Alphabet{Name: "uppercase", Letters: []rune("ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789")}
	// Full holds A-Z, a-z and 0-9.
	Full = Alphabet{Name: "full", Letters: []rune("ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789")}
)

// AlphabetByName returns the alphabet with the given name.
func AlphabetByName(name string) (Alphabet, bool) {
	switch name {
	case Uppercase.Name, "":
		return Uppercase, true
	case Full.Name:
		return Full, true
	}
	return Alphabet{}, false
}

// Contains reports whether r is a member of a.
func (a Alphabet) Contains(r rune) bool {
	return slices.Contains(a.Letters, r)
}

// Index returns the position of r in a, or -1.
func (a Alphabet) Index(r rune) int {
	return slices.Index(a.Letters, r)
}

// LetterSet maps every member of an alphabet to its grid.
// A LetterSet built with NewLetterSet never has a missing member.
type LetterSet struct {
	alphabet Alphabet
	glyphs   map[rune]*Grid
}

// NewLetterSet creates a set with one grid per alphabet member, built by
// newGrid.
func NewLetterSet(a Alphabet, newGrid func(r rune) *Grid) *LetterSet {
	s := &LetterSet{alphabet: a, glyphs: make(map[rune]*Grid, len(a.Letters))}
	for _, r := range a.Letters {
		s.glyphs[r] = newGrid(r)
	}
	return s
}

// Alphabet returns a copy of the alphabet of the set.
func (s *LetterSet) Alphabet() Alphabet {
	a := s.alphabet
	a.Letters = slices.Clone(a.Letters)
	return a
}

// Letters returns a copy of the members in alphabet order.
func (s *LetterSet) Letters() []rune { return slices.Clone(s.alphabet.Letters) }

// Get returns the grid of r.
func (s *LetterSet) Get(r rune) (*Grid, bool) {
	g, ok := s.glyphs[r]
	return g, ok
}

// Replace swaps the grid of r. It reports false, leaving the set untouched,
// when r is not a member or g is nil.
func (s *LetterSet) Replace(r rune, g *Grid) bool {
	if g == nil {
		return false
	}
	if _, ok := s.glyphs[r]; !ok {
		return false
	}
	s.glyphs[r] = g
	return true
}

// Equal reports whether both sets have the same alphabet and equal grids.
func (s *LetterSet) Equal(o *LetterSet) bool {
	if s.alphabet.Name != o.alphabet.Name || !slices.Equal(s.alphabet.Letters, o.alphabet.Letters) {
		return false
	}
	for _, r := range s.alphabet.Letters {
		if !s.glyphs[r].Equal(o.glyphs[r]) {
			return false
		}
	}
	return true
}
