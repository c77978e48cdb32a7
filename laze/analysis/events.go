package analysis

import (
	"sort"

	"github.com/dhamidi/laze/laze/lexicon"
	"github.com/dhamidi/laze/laze/source"
)

type EventKind int

const (
	StartScope EventKind = iota
	EndScope
	StartFuncSubscope
	EndFuncSubscope
	StartForDecl
	EndForDecl
	StartForCondition
	EndForCondition
	StartForLoop
	EndForLoop
	RepeatCounterInjected
	ClassDeclared
	FunctionDeclared
	VariableDeclared
	AccessPrivate
	AccessPublic
	AccessProtected
)

var eventKindNames = [...]string{
	StartScope:            "start-scope",
	EndScope:              "end-scope",
	StartFuncSubscope:     "start-func",
	EndFuncSubscope:       "end-func",
	StartForDecl:          "start-for-decl",
	EndForDecl:            "end-for-decl",
	StartForCondition:     "start-for-condition",
	EndForCondition:       "end-for-condition",
	StartForLoop:          "start-for-loop",
	EndForLoop:            "end-for-loop",
	RepeatCounterInjected: "repeat",
	ClassDeclared:         "class",
	FunctionDeclared:      "function",
	VariableDeclared:      "variable",
	AccessPrivate:         "private",
	AccessPublic:          "public",
	AccessProtected:       "protected",
}

func (k EventKind) String() string {
	if k >= 0 && int(k) < len(eventKindNames) {
		return eventKindNames[k]
	}
	return "unknown"
}

// Declares reports whether the event introduces a symbol.
func (k EventKind) Declares() bool {
	return k == ClassDeclared || k == FunctionDeclared || k == VariableDeclared
}

// Event marks a scope boundary or a declaration at a document offset.
type Event struct {
	Offset       int
	Position     source.Position
	Kind         EventKind
	Name         string
	DeclaredType string
}

func (a *analyzer) event(offset int, kind EventKind, name, declaredType string) {
	a.events = append(a.events, Event{Offset: offset, Kind: kind, Name: name, DeclaredType: declaredType})
}

// sortedEvents orders the collected events by offset and brackets them with
// the document's root scope.
func (a *analyzer) sortedEvents() []Event {
	sort.SliceStable(a.events, func(i, j int) bool {
		return a.events[i].Offset < a.events[j].Offset
	})
	events := make([]Event, 0, len(a.events)+2)
	events = append(events, Event{Kind: StartScope})
	for _, e := range a.events {
		e.Position = a.src.Position(e.Offset)
		events = append(events, e)
	}
	return append(events, Event{
		Offset:   a.src.Len(),
		Position: source.Position{Line: a.src.LineCount(), Column: 0},
		Kind:     EndScope,
	})
}

func (a *analyzer) scopes() {
	for i, r := range a.masked {
		switch lexicon.BracketOf(r) {
		case lexicon.OpenScope:
			a.event(i, StartScope, "", "")
		case lexicon.CloseScope:
			a.event(i, EndScope, "", "")
		}
	}
}

// signature emits the sub-scopes of "(params) => (returns)" starting at the
// parameter list's opening parenthesis, and a body scope for the
// single-expression form "= expr;". Block bodies are covered by scopes.
func (a *analyzer) signature(open int) {
	closeParams := a.matchParen(open)
	if closeParams < 0 {
		return
	}
	a.event(open, StartFuncSubscope, "", "")
	a.event(closeParams, EndFuncSubscope, "", "")

	arrow := a.skipSpace(closeParams + 1)
	if lexicon.Normalize(a.at(arrow)) != '=' || lexicon.Normalize(a.at(arrow+1)) != '>' {
		return
	}
	openReturns := a.skipSpace(arrow + 2)
	if !a.isParenOpen(openReturns) {
		return
	}
	closeReturns := a.matchParen(openReturns)
	if closeReturns < 0 {
		return
	}
	a.event(openReturns, StartFuncSubscope, "", "")
	a.event(closeReturns, EndFuncSubscope, "", "")

	assign := a.skipSpace(closeReturns + 1)
	if lexicon.Normalize(a.at(assign)) != '=' {
		return
	}
	for i := assign + 1; i <= len(a.masked); i++ {
		switch a.at(i) {
		case '\n':
			return
		case ';', 0:
			a.event(assign, StartScope, "", "")
			a.event(i, EndScope, "", "")
			return
		}
	}
}

// forLoops recognizes "(decl) から (cond) まで (step) {" and emits the
// paired clause events.
func (a *analyzer) forLoops() {
	for i := 0; i < len(a.masked); i++ {
		if !a.isParenOpen(i) {
			continue
		}
		clauses, ok := a.forClauses(i)
		if !ok {
			continue
		}
		kinds := [...]EventKind{StartForDecl, EndForDecl, StartForCondition, EndForCondition, StartForLoop, EndForLoop}
		for k, offset := range clauses {
			a.event(offset, kinds[k], "", "")
		}
		i = clauses[5]
	}
}

func (a *analyzer) forClauses(open int) ([6]int, bool) {
	var clauses [6]int
	joiners := [...]string{lexicon.From, lexicon.Until}

	at := open
	for k := 0; k < 3; k++ {
		if !a.isParenOpen(at) {
			return clauses, false
		}
		closing := a.matchParen(at)
		if closing < 0 {
			return clauses, false
		}
		clauses[2*k], clauses[2*k+1] = at, closing
		at = a.skipSpace(closing + 1)

		if k < 2 {
			w, ok := a.wordAt(at)
			if !ok || w.text != joiners[k] {
				return clauses, false
			}
			at = a.skipSpace(w.end)
		}
	}
	if lexicon.BracketOf(a.at(at)) != lexicon.OpenScope {
		return clauses, false
	}
	return clauses, true
}

// repeats finds the repeat marker anywhere in the text, including directly
// after the count it repeats, as in "回数回繰り返す".
func (a *analyzer) repeats() {
	marker := []rune(lexicon.Repeat)
	for i := 0; i+len(marker) <= len(a.masked); i++ {
		if string(a.masked[i:i+len(marker)]) != lexicon.Repeat {
			continue
		}
		a.event(i, RepeatCounterInjected, lexicon.Counter, lexicon.CounterType)
		i += len(marker) - 1
	}
}
