package lexicon

import (
	"strings"
	"unicode"
)

// fullWidth pairs each structural ASCII character with its full-width forms.
var fullWidth = map[rune][]rune{
	'=':  {'＝'},
	'(':  {'（'},
	')':  {'）'},
	'{':  {'｛'},
	'}':  {'｝'},
	'[':  {'［'},
	']':  {'］'},
	'<':  {'＜'},
	'>':  {'＞'},
	'+':  {'＋'},
	'*':  {'＊'},
	'&':  {'＆'},
	' ':  {'　'},
	'\'': {'’'},
	'"':  {'”'},
	':':  {'：'},
	',':  {'、'},
	'.':  {'。', '．'},
}

var ascii = func() map[rune]rune {
	m := make(map[rune]rune)
	for a, forms := range fullWidth {
		for _, f := range forms {
			m[f] = a
		}
	}
	return m
}()

// Normalize maps a full-width structural character to its ASCII form and
// returns every other rune unchanged.
func Normalize(r rune) rune {
	if a, ok := ascii[r]; ok {
		return a
	}
	return r
}

// WithFullWidth returns s followed by the full-width counterpart of every
// structural character it contains.
func WithFullWidth(s string) string {
	var sb strings.Builder
	sb.WriteString(s)
	for _, r := range s {
		for _, f := range fullWidth[r] {
			sb.WriteRune(f)
		}
	}
	return sb.String()
}

// Expand returns every spelling of s in which each structural character is
// written either in ASCII or in one of its full-width forms. Full-width
// spellings sort first.
func Expand(s string) []string {
	work := [][]rune{nil}
	for _, r := range s {
		choices := append(append([]rune(nil), fullWidth[r]...), r)
		next := make([][]rune, 0, len(work)*len(choices))
		for _, prefix := range work {
			for _, c := range choices {
				spelled := make([]rune, len(prefix), len(prefix)+1)
				copy(spelled, prefix)
				next = append(next, append(spelled, c))
			}
		}
		work = next
	}
	out := make([]string, len(work))
	for i, w := range work {
		out[i] = string(w)
	}
	return out
}

// IsNameStart reports whether r may begin an identifier: kanji, hiragana,
// katakana, ASCII letters, the prolonged sound mark, '#' and '_' (both widths).
func IsNameStart(r rune) bool {
	switch {
	case r >= '㐀' && r <= '龯',
		r >= 'ぁ' && r <= 'ん',
		r >= 'ァ' && r <= 'ヶ',
		r >= 'a' && r <= 'z',
		r >= 'A' && r <= 'Z':
		return true
	}
	switch r {
	case 'ー', '#', '＃', '_', '＿':
		return true
	}
	return false
}

func IsNameChar(r rune) bool {
	return IsNameStart(r) || IsDigit(r)
}

func IsDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func IsSpace(r rune) bool {
	return unicode.IsSpace(r)
}

var separators = func() map[rune]bool {
	set := make(map[rune]bool)
	for _, r := range WithFullWidth("~!@$%^&*()-=+[{]}|;:'\",.<>/?") {
		set[r] = true
	}
	return set
}()

// IsSeparator reports whether r may precede a word that stands on its own.
// The start of the document counts as a separator too; callers pass 0 there.
func IsSeparator(r rune) bool {
	return r == 0 || separators[r] || unicode.IsSpace(r)
}

func IsColon(r rune) bool {
	return Normalize(r) == ':'
}

// IsOpener reports whether r opens a call or a block.
func IsOpener(r rune) bool {
	switch Normalize(r) {
	case '(', '{':
		return true
	}
	return false
}

func IsDot(r rune) bool {
	return Normalize(r) == '.'
}

type Bracket int

const (
	NotBracket Bracket = iota
	OpenScope
	CloseScope
	OpenParen
	CloseParen
	OpenIndex
	CloseIndex
)

func BracketOf(r rune) Bracket {
	switch Normalize(r) {
	case '{':
		return OpenScope
	case '}':
		return CloseScope
	case '(':
		return OpenParen
	case ')':
		return CloseParen
	case '[':
		return OpenIndex
	case ']':
		return CloseIndex
	}
	return NotBracket
}

func (b Bracket) Opens() bool {
	return b == OpenScope || b == OpenParen || b == OpenIndex
}

func (b Bracket) Closes() bool {
	return b == CloseScope || b == CloseParen || b == CloseIndex
}
