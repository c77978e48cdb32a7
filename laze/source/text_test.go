package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTextPosition(t *testing.T) {
	text := New("整数:a\n{ b }\n\n😀x")

	tests := []struct {
		name   string
		offset int
		want   Position
	}{
		{"start", 0, Position{0, 0}},
		{"wide rune counts once", 3, Position{0, 3}},
		{"newline belongs to its line", 4, Position{0, 4}},
		{"second line", 5, Position{1, 0}},
		{"inside second line", 7, Position{1, 2}},
		{"empty line", 11, Position{2, 0}},
		{"astral rune", 12, Position{3, 0}},
		{"after astral rune", 13, Position{3, 2}},
		{"end of text", 14, Position{3, 3}},
		{"past end clamps", 99, Position{3, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, text.Position(tt.offset))
		})
	}
}

func TestTextOffsetRoundTrip(t *testing.T) {
	text := New("関数:実行() => () {\n\t整数:x = 1;\n}")
	for offset := 0; offset <= text.Len(); offset++ {
		assert.Equal(t, offset, text.Offset(text.Position(offset)), "offset %d", offset)
	}
}

func TestTextOffsetClamps(t *testing.T) {
	text := New("ab\ncd")

	assert.Equal(t, 2, text.Offset(Position{Line: 0, Column: 10}))
	assert.Equal(t, 0, text.Offset(Position{Line: -1, Column: 0}))
	assert.Equal(t, 5, text.Offset(Position{Line: 7, Column: 0}))
}

func TestPositionOrdering(t *testing.T) {
	a := Position{Line: 1, Column: 4}
	b := Position{Line: 2, Column: 0}

	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.False(t, a.Before(a))
	assert.False(t, a.After(a))
}

func TestTextLineCount(t *testing.T) {
	assert.Equal(t, 1, New("").LineCount())
	assert.Equal(t, 3, New("a\nb\n").LineCount())
}
