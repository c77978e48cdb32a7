package mask

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaskSpans(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		spans  []Span
		masked string
	}{
		{
			name:   "line comment stops before newline",
			input:  "a // c\nb",
			spans:  []Span{{Start: 2, Length: 4, Kind: LineComment}},
			masked: "a     \nb",
		},
		{
			name:   "block comment keeps line breaks",
			input:  "x/* a\nb */y",
			spans:  []Span{{Start: 1, Length: 9, Kind: BlockComment}},
			masked: "x    \n    y",
		},
		{
			name:   "markers inside comments are swallowed",
			input:  "// \"x' /*\nz",
			spans:  []Span{{Start: 0, Length: 9, Kind: LineComment}},
			masked: "         \nz",
		},
		{
			name:  "string and char",
			input: `"a//b" 'c'`,
			spans: []Span{
				{Start: 0, Length: 6, Kind: StringLiteral},
				{Start: 7, Length: 3, Kind: CharLiteral},
			},
			masked: "          ",
		},
		{
			name:   "full-width quotes",
			input:  "”あ” ’い’",
			spans:  []Span{{Start: 0, Length: 3, Kind: StringLiteral}, {Start: 4, Length: 3, Kind: CharLiteral}},
			masked: "       ",
		},
		{
			name:   "quoted literal ignores nested opener",
			input:  "「a「b」c」",
			spans:  []Span{{Start: 0, Length: 5, Kind: QuotedLiteral}},
			masked: "     c」",
		},
		{
			name:   "unterminated char closes at newline",
			input:  "'ab\nc",
			spans:  []Span{{Start: 0, Length: 3, Kind: InvalidCharLiteral}},
			masked: "   \nc",
		},
		{
			name:   "unterminated quoted at end of text",
			input:  "x 「abc",
			spans:  []Span{{Start: 2, Length: 4, Kind: InvalidQuotedLiteral}},
			masked: "x     ",
		},
		{
			name:   "open block comment runs to end of text",
			input:  "a /* b\nc",
			spans:  []Span{{Start: 2, Length: 6, Kind: BlockComment}},
			masked: "a     \n ",
		},
		{
			name:   "comment end can overlap an ignored marker",
			input:  "/* x /*/y",
			spans:  []Span{{Start: 0, Length: 8, Kind: BlockComment}},
			masked: "        y",
		},
		{
			name:   "stray terminators are ignored",
			input:  "*/ 」 a",
			masked: "*/ 」 a",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			masked, spans := Mask([]rune(tt.input))
			assert.Equal(t, tt.spans, spans)
			assert.Equal(t, tt.masked, string(masked))
		})
	}
}

func TestMaskUnterminatedString(t *testing.T) {
	masked, spans := Mask([]rune("\"abc\ndef"))

	require.Len(t, spans, 1)
	assert.Equal(t, Span{Start: 0, Length: 4, Kind: InvalidStringLiteral}, spans[0])
	assert.True(t, spans[0].Kind.Invalid())
	assert.Equal(t, "    \ndef", string(masked))
}

func TestMaskPreservesShape(t *testing.T) {
	inputs := []string{
		"",
		"関数:実行() => () {\n\t// コメント\n\t文字列:s = \"a\nb\";\n}",
		"/* 閉じない\n\n",
		"'''\"\"\"「「」」//\n/**/*/",
		"”混ざった’\n「\n」",
	}

	for _, input := range inputs {
		in := []rune(input)
		masked, spans := Mask(in)

		require.Len(t, masked, len(in))
		for i, r := range in {
			assert.Equal(t, r == '\n', masked[i] == '\n', "newline at %d in %q", i, input)
		}

		for i := 1; i < len(spans); i++ {
			assert.LessOrEqual(t, spans[i-1].End(), spans[i].Start, "spans overlap in %q", input)
		}
		for _, sp := range spans {
			region := string(masked[sp.Start:sp.End()])
			assert.Empty(t, strings.Trim(region, " \n"), "span %v not blanked in %q", sp, input)
		}
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "invalid-string", InvalidStringLiteral.String())
	assert.Equal(t, "unknown", Kind(99).String())
}
