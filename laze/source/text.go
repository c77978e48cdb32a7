// Package source holds the document text shared by every analysis pass.
//
// Offsets are rune indices into the document. Columns are counted in UTF-16
// code units, which is what the editor protocol speaks.
package source

import (
	"sort"
	"unicode/utf16"
)

type Position struct {
	Line   int
	Column int
}

// Before reports whether p sorts strictly before o.
func (p Position) Before(o Position) bool {
	if p.Line != o.Line {
		return p.Line < o.Line
	}
	return p.Column < o.Column
}

// After reports whether p sorts strictly after o.
func (p Position) After(o Position) bool {
	return o.Before(p)
}

// Text is an immutable document together with its line index.
type Text struct {
	runes      []rune
	lineStarts []int
}

func New(s string) *Text {
	return FromRunes([]rune(s))
}

func FromRunes(runes []rune) *Text {
	t := &Text{runes: runes, lineStarts: []int{0}}
	for i, r := range runes {
		if r == '\n' {
			t.lineStarts = append(t.lineStarts, i+1)
		}
	}
	return t
}

func (t *Text) Runes() []rune {
	return t.runes
}

func (t *Text) Len() int {
	return len(t.runes)
}

func (t *Text) String() string {
	return string(t.runes)
}

func (t *Text) LineCount() int {
	return len(t.lineStarts)
}

// At returns the rune at offset, or 0 outside the document.
func (t *Text) At(offset int) rune {
	if offset < 0 || offset >= len(t.runes) {
		return 0
	}
	return t.runes[offset]
}

func (t *Text) Slice(start, end int) string {
	start = clamp(start, 0, len(t.runes))
	end = clamp(end, start, len(t.runes))
	return string(t.runes[start:end])
}

// Position maps a rune offset to a line and UTF-16 column.
func (t *Text) Position(offset int) Position {
	offset = clamp(offset, 0, len(t.runes))
	line := sort.Search(len(t.lineStarts), func(i int) bool {
		return t.lineStarts[i] > offset
	}) - 1
	return Position{
		Line:   line,
		Column: t.UTF16Len(t.lineStarts[line], offset),
	}
}

// Offset maps a line and UTF-16 column back to a rune offset. Positions past
// the end of a line clamp to the line end.
func (t *Text) Offset(p Position) int {
	if p.Line < 0 {
		return 0
	}
	if p.Line >= len(t.lineStarts) {
		return len(t.runes)
	}
	i := t.lineStarts[p.Line]
	units := 0
	for i < len(t.runes) && t.runes[i] != '\n' && units < p.Column {
		units += runeUnits(t.runes[i])
		i++
	}
	return i
}

// UTF16Len counts the UTF-16 code units of the runes in [start, end).
func (t *Text) UTF16Len(start, end int) int {
	start = clamp(start, 0, len(t.runes))
	end = clamp(end, start, len(t.runes))
	n := 0
	for _, r := range t.runes[start:end] {
		n += runeUnits(r)
	}
	return n
}

func runeUnits(r rune) int {
	if n := utf16.RuneLen(r); n > 0 {
		return n
	}
	return 1
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
