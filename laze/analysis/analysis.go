// Package analysis classifies the tokens of a document for highlighting and
// collects the scope events that completion replays.
//
// Every pass runs over the masked text, so comments and literals are already
// blank when a pass looks for words, brackets or operators. Class names are
// discovered before any pass that needs to recognize a type position.
package analysis

import (
	"sort"

	"github.com/dhamidi/laze/laze/lexicon"
	"github.com/dhamidi/laze/laze/mask"
	"github.com/dhamidi/laze/laze/source"
)

// Token is a classified span in rune offsets.
type Token struct {
	Start     int
	Length    int
	Type      TokenType
	Modifiers Modifier
}

func (t Token) End() int {
	return t.Start + t.Length
}

// Result is everything derived from one document. It is immutable once
// returned and is the only input completion needs.
type Result struct {
	Text    *source.Text
	Masked  []rune
	Masks   []mask.Span
	Tokens  []Token
	Events  []Event
	Classes []string
}

// Analyze runs every pass over text.
func Analyze(text string) *Result {
	src := source.New(text)
	masked, masks := mask.Mask(src.Runes())

	a := newAnalyzer(src, masked)
	a.maskTokens(masks)
	a.brackets()
	a.scopes()
	classes := a.classes()

	names := newNameSet(classes)
	a.keywords()
	a.functions(names)
	a.variables(names)
	a.types(names)
	a.numbers()
	a.operators()
	a.forLoops()
	a.repeats()

	return &Result{
		Text:    src,
		Masked:  masked,
		Masks:   masks,
		Tokens:  normalizeTokens(a.tokens),
		Events:  a.sortedEvents(),
		Classes: classes,
	}
}

// word is a maximal identifier run in the masked text.
type word struct {
	start int
	end   int
	text  string
}

type analyzer struct {
	src     *source.Text
	masked  []rune
	words   []word
	byStart map[int]int
	byEnd   map[int]int
	tokens  []Token
	events  []Event
}

func newAnalyzer(src *source.Text, masked []rune) *analyzer {
	a := &analyzer{
		src:     src,
		masked:  masked,
		byStart: make(map[int]int),
		byEnd:   make(map[int]int),
	}
	for i := 0; i < len(masked); {
		if !lexicon.IsNameStart(masked[i]) {
			i++
			continue
		}
		j := i + 1
		for j < len(masked) && lexicon.IsNameChar(masked[j]) {
			j++
		}
		a.byStart[i] = len(a.words)
		a.byEnd[j] = len(a.words)
		a.words = append(a.words, word{start: i, end: j, text: string(masked[i:j])})
		i = j
	}
	return a
}

func (a *analyzer) at(i int) rune {
	if i < 0 || i >= len(a.masked) {
		return 0
	}
	return a.masked[i]
}

// skipSpace returns the first offset at or after i that is not whitespace.
func (a *analyzer) skipSpace(i int) int {
	for i < len(a.masked) && lexicon.IsSpace(a.masked[i]) {
		i++
	}
	return i
}

// skipSpaceBack returns the last offset at or before i that is not
// whitespace, or -1.
func (a *analyzer) skipSpaceBack(i int) int {
	for i >= 0 && lexicon.IsSpace(a.masked[i]) {
		i--
	}
	return i
}

func (a *analyzer) wordAt(start int) (word, bool) {
	idx, ok := a.byStart[start]
	if !ok {
		return word{}, false
	}
	return a.words[idx], true
}

func (a *analyzer) wordEndingAt(end int) (word, bool) {
	idx, ok := a.byEnd[end]
	if !ok {
		return word{}, false
	}
	return a.words[idx], true
}

// matchParen returns the offset of the parenthesis closing the one at open,
// or -1 when it is never closed.
func (a *analyzer) matchParen(open int) int {
	depth := 0
	for i := open; i < len(a.masked); i++ {
		switch lexicon.BracketOf(a.masked[i]) {
		case lexicon.OpenParen:
			depth++
		case lexicon.CloseParen:
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

func (a *analyzer) isParenOpen(i int) bool {
	return lexicon.BracketOf(a.at(i)) == lexicon.OpenParen
}

func (a *analyzer) emit(start, length int, typ TokenType, mods Modifier) {
	if length <= 0 {
		return
	}
	a.tokens = append(a.tokens, Token{Start: start, Length: length, Type: typ, Modifiers: mods})
}

// normalizeTokens sorts by offset and drops any span that starts inside the
// previously kept one. Pass order breaks ties, so earlier passes win.
func normalizeTokens(tokens []Token) []Token {
	sort.SliceStable(tokens, func(i, j int) bool {
		return tokens[i].Start < tokens[j].Start
	})
	out := tokens[:0]
	end := 0
	for _, t := range tokens {
		if t.Start < end {
			continue
		}
		out = append(out, t)
		end = t.End()
	}
	return out
}

// nameSet is the type vocabulary widened with the document's class names.
type nameSet struct {
	types   map[string]bool
	classes map[string]bool
}

func newNameSet(classes []string) nameSet {
	ns := nameSet{types: make(map[string]bool), classes: make(map[string]bool)}
	for _, t := range lexicon.TypeWords {
		ns.types[t] = true
	}
	for _, c := range classes {
		ns.types[c] = true
		ns.classes[c] = true
	}
	return ns
}

func (ns nameSet) isType(name string) bool {
	return ns.types[name]
}

// excluded reports whether name can never be a plain variable.
func (ns nameSet) excluded(name string) bool {
	return lexicon.IsReserved(name) || ns.classes[name]
}
