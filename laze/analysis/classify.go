package analysis

import (
	"github.com/dhamidi/laze/laze/lexicon"
	"github.com/dhamidi/laze/laze/mask"
)

func (a *analyzer) maskTokens(spans []mask.Span) {
	for _, sp := range spans {
		var mods Modifier
		if sp.Kind.Invalid() {
			mods = ModInvalid
		}
		switch sp.Kind {
		case mask.LineComment:
			a.emit(sp.Start, sp.Length, TypeComment, mods)
		case mask.BlockComment:
			// One token per line; the protocol has no multi-line tokens.
			start := sp.Start
			for i := sp.Start; i < sp.End(); i++ {
				if a.masked[i] == '\n' {
					a.emit(start, i-start, TypeComment, mods)
					start = i + 1
				}
			}
			a.emit(start, sp.End()-start, TypeComment, mods)
		case mask.CharLiteral, mask.InvalidCharLiteral:
			a.emit(sp.Start, sp.Length, TypeChar, mods)
		default:
			a.emit(sp.Start, sp.Length, TypeString, mods)
		}
	}
}

// brackets colors every bracket by nesting depth modulo three. Closers
// decrement before emitting and openers increment after, so a pair shares a
// bucket. Unbalanced input keeps counting; the bucket stays in range.
func (a *analyzer) brackets() {
	depth := 0
	for i, r := range a.masked {
		b := lexicon.BracketOf(r)
		if b == lexicon.NotBracket {
			continue
		}
		mods := ModStart
		if b.Closes() {
			depth--
			mods = ModEnd
		}
		a.emit(i, 1, scopeBucket(depth), mods)
		if b.Opens() {
			depth++
		}
	}
}

func scopeBucket(depth int) TokenType {
	return TypeScope0 + TokenType(((depth%3)+3)%3)
}

// classes finds "クラス:Name" declarations and returns the class names in
// document order without duplicates.
func (a *analyzer) classes() []string {
	var names []string
	seen := make(map[string]bool)
	for _, w := range a.words {
		if w.text != lexicon.Class || !lexicon.IsColon(a.at(w.end)) {
			continue
		}
		name, ok := a.wordAt(w.end + 1)
		if !ok {
			continue
		}
		a.emit(name.start, name.end-name.start, TypeClass, ModDeclaration)
		a.event(w.start, ClassDeclared, name.text, "")
		if !seen[name.text] {
			seen[name.text] = true
			names = append(names, name.text)
		}
	}
	return names
}

func (a *analyzer) keywords() {
	for _, w := range a.words {
		switch {
		case lexicon.IsControl(w.text):
			a.emit(w.start, w.end-w.start, TypeControl, 0)
			switch w.text {
			case lexicon.Private:
				a.event(w.start, AccessPrivate, w.text, "")
			case lexicon.Public:
				a.event(w.start, AccessPublic, w.text, "")
			}
		case lexicon.IsKeyword(w.text):
			a.emit(w.start, w.end-w.start, TypeKeyword, 0)
		}
	}
}

// functions classifies every word followed by an opening parenthesis. A word
// written directly after "関数:" is a declaration and opens its signature
// sub-scopes.
func (a *analyzer) functions(names nameSet) {
	for _, w := range a.words {
		open := a.skipSpace(w.end)
		if !a.isParenOpen(open) {
			continue
		}
		if lexicon.IsControl(w.text) || lexicon.IsKeyword(w.text) {
			continue
		}
		if lexicon.IsBuiltin(w.text) {
			a.emit(w.start, w.end-w.start, TypeDefault, 0)
			continue
		}

		kw, declared := a.declarationKeyword(w)
		if !declared {
			a.emit(w.start, w.end-w.start, TypeFunction, 0)
			continue
		}
		a.emit(w.start, w.end-w.start, TypeFunction, ModDeclaration)
		start := kw.start
		if typ, ok := a.declaredType(kw, names); ok {
			start = typ.start
		}
		a.event(start, FunctionDeclared, w.text, "")
		a.signature(open)
	}
}

func (a *analyzer) declarationKeyword(w word) (word, bool) {
	if !lexicon.IsColon(a.at(w.start - 1)) {
		return word{}, false
	}
	kw, ok := a.wordEndingAt(w.start - 1)
	if !ok || kw.text != lexicon.Function {
		return word{}, false
	}
	return kw, true
}

// variables classifies declarations ("Type:name") and references. Words that
// belong to a closed vocabulary or name a class are never variables, and a
// word followed by "(" was already claimed by the function pass.
func (a *analyzer) variables(names nameSet) {
	for _, w := range a.words {
		if names.excluded(w.text) {
			continue
		}
		next := a.skipSpace(w.end)
		if a.isParenOpen(next) {
			continue
		}

		if typ, ok := a.declaredType(w, names); ok {
			a.emit(w.start, w.end-w.start, TypeVariable, ModDeclaration)
			a.event(w.start, VariableDeclared, w.text, typ.text)
			continue
		}

		prev := a.at(w.start - 1)
		if !lexicon.IsSeparator(prev) || lexicon.IsColon(prev) {
			continue
		}
		if c := a.at(next); c != 0 && (lexicon.IsOpener(c) || lexicon.IsColon(c)) {
			continue
		}
		a.emit(w.start, w.end-w.start, TypeVariable, 0)
	}
}

// declaredType returns the type word written before w as "Type:" or
// "Type : ".
func (a *analyzer) declaredType(w word, names nameSet) (word, bool) {
	colon := a.skipSpaceBack(w.start - 1)
	if colon < 0 || !lexicon.IsColon(a.masked[colon]) {
		return word{}, false
	}
	typ, ok := a.wordEndingAt(a.skipSpaceBack(colon-1) + 1)
	if !ok || !names.isType(typ.text) {
		return word{}, false
	}
	if !lexicon.IsSeparator(a.at(typ.start - 1)) {
		return word{}, false
	}
	return typ, true
}

// types classifies type words and class names written before a colon.
func (a *analyzer) types(names nameSet) {
	for _, w := range a.words {
		if !names.isType(w.text) {
			continue
		}
		if lexicon.IsColon(a.at(a.skipSpace(w.end))) {
			a.emit(w.start, w.end-w.start, TypeType, 0)
		}
	}
}

// numbers classifies digit runs that stand on their own, with an optional
// 0b or 0x prefix.
func (a *analyzer) numbers() {
	for i := 0; i < len(a.masked); i++ {
		if !lexicon.IsDigit(a.masked[i]) || !lexicon.IsSeparator(a.at(i-1)) {
			continue
		}
		start := i
		mods, digit := ModDec, isDecimal
		if a.masked[i] == '0' {
			switch a.at(i + 1) {
			case 'b':
				if isBinary(a.at(i + 2)) {
					mods, digit = ModBin, isBinary
					i += 2
				}
			case 'x':
				if isHex(a.at(i + 2)) {
					mods, digit = ModHex, isHex
					i += 2
				}
			}
		}
		for i < len(a.masked) && digit(a.masked[i]) {
			i++
		}
		a.emit(start, i-start, TypeNumber, mods)
	}
}

func isDecimal(r rune) bool {
	return lexicon.IsDigit(r) || r == '.'
}

func isBinary(r rune) bool {
	return r == '0' || r == '1'
}

func isHex(r rune) bool {
	return lexicon.IsDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

var operatorLexemes = []string{
	"=>", "==", "!=", "<=", ">=", "+=", "-=", "*=", "/=", "%=",
	"&&", "||", "++", "--", "<<", ">>",
	"=", "<", ">", "+", "-", "*", "/", "%", "!",
}

// operatorSet holds every spelling of every lexeme, keyed by rune count.
var operatorSet = func() map[int]map[string]bool {
	set := map[int]map[string]bool{1: {}, 2: {}}
	for _, lexeme := range operatorLexemes {
		for _, spelled := range lexicon.Expand(lexeme) {
			set[len([]rune(spelled))][spelled] = true
		}
	}
	return set
}()

// operators takes the longest lexeme at each offset.
func (a *analyzer) operators() {
	for i := 0; i < len(a.masked); {
		n := 0
		for size := 2; size >= 1; size-- {
			if i+size <= len(a.masked) && operatorSet[size][string(a.masked[i:i+size])] {
				n = size
				break
			}
		}
		if n == 0 {
			i++
			continue
		}
		a.emit(i, n, TypeOperator, 0)
		i += n
	}
}
