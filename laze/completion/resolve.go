// Package completion replays the scope events of an analysis to find the
// symbols visible at a cursor.
package completion

import (
	"github.com/dhamidi/laze/laze/analysis"
	"github.com/dhamidi/laze/laze/lexicon"
	"github.com/dhamidi/laze/laze/source"
)

// SymbolKind is what a declaration introduces.
type SymbolKind int

const (
	SymbolVariable SymbolKind = iota
	SymbolFunction
	SymbolClass
)

func (k SymbolKind) String() string {
	switch k {
	case SymbolFunction:
		return "function"
	case SymbolClass:
		return "class"
	default:
		return "variable"
	}
}

// Access is the visibility context a symbol was declared in.
type Access int

const (
	Public Access = iota
	Private
	Protected
)

func (a Access) String() string {
	switch a {
	case Private:
		return "private"
	case Protected:
		return "protected"
	default:
		return "public"
	}
}

// Symbol is a name visible at a cursor.
type Symbol struct {
	Kind   SymbolKind
	Name   string
	Type   string
	Access Access
}

// Resolve returns the symbols visible at cursor, innermost scope first and in
// declaration order within a scope. When the cursor follows "receiver." the
// members of the receiver's class are appended after the scope that declares
// the receiver.
func Resolve(r *analysis.Result, cursor source.Position) []Symbol {
	rs := &resolver{
		text:     r.Text,
		cursor:   cursor,
		registry: make(map[string][]Symbol),
	}
	rs.replay(r.Events)
	return rs.out
}

// Members returns the member registry built while replaying r: every class
// whose body closed, mapped to the symbols declared in it.
func Members(r *analysis.Result) map[string][]Symbol {
	rs := &resolver{
		text:     r.Text,
		cursor:   source.Position{Line: -1},
		registry: make(map[string][]Symbol),
	}
	rs.replay(r.Events)
	return rs.registry
}

// classBinding ties a declared class to the first block opened after it.
type classBinding struct {
	pending bool
	name    string
	level   int
}

// resolver keeps one symbol list per nesting level. Signature and for-loop
// declaration sub-scopes share the level of the block that follows them and
// a level is only cleared when a block closes, so parameters and loop
// variables are visible in the body.
type resolver struct {
	text   *source.Text
	cursor source.Position

	levels [][]Symbol
	starts []source.Position
	level  int

	access      Access
	accessLevel int
	class       classBinding
	forStart    source.Position

	registry map[string][]Symbol
	out      []Symbol
}

func (rs *resolver) replay(events []analysis.Event) {
	for i, e := range events {
		switch e.Kind {
		case analysis.StartScope:
			rs.push()
			rs.starts[rs.level] = e.Position
			if rs.class.pending && rs.class.level == 0 {
				rs.class.level = rs.level
			}

		case analysis.EndScope:
			rs.endScope(e.Position)

		case analysis.StartFuncSubscope, analysis.StartForDecl:
			rs.push()

		case analysis.EndFuncSubscope, analysis.EndForDecl:
			if rs.level > 0 {
				rs.level--
			}

		case analysis.StartForCondition, analysis.StartForLoop:
			rs.forStart = e.Position

		case analysis.EndForCondition, analysis.EndForLoop:
			if inRange(rs.cursor, rs.forStart, e.Position) {
				rs.enterLoopBody(events[i+1:])
			}

		case analysis.RepeatCounterInjected:
			rs.ensure(rs.level + 1)
			rs.levels[rs.level+1] = append(rs.levels[rs.level+1], Symbol{
				Kind:   SymbolVariable,
				Name:   e.Name,
				Type:   e.DeclaredType,
				Access: rs.access,
			})

		case analysis.AccessPrivate:
			rs.setAccess(Private)
		case analysis.AccessPublic:
			rs.setAccess(Public)
		case analysis.AccessProtected:
			rs.setAccess(Protected)

		case analysis.ClassDeclared:
			rs.declare(SymbolClass, e)
			rs.class = classBinding{pending: true, name: e.Name}
		case analysis.FunctionDeclared:
			rs.declare(SymbolFunction, e)
		case analysis.VariableDeclared:
			rs.declare(SymbolVariable, e)
		}
	}
}

func (rs *resolver) ensure(level int) {
	for len(rs.levels) <= level {
		rs.levels = append(rs.levels, nil)
		rs.starts = append(rs.starts, source.Position{})
	}
}

func (rs *resolver) push() {
	rs.level++
	rs.ensure(rs.level)
}

func (rs *resolver) declare(kind SymbolKind, e analysis.Event) {
	rs.ensure(rs.level)
	rs.levels[rs.level] = append(rs.levels[rs.level], Symbol{
		Kind:   kind,
		Name:   e.Name,
		Type:   e.DeclaredType,
		Access: rs.access,
	})
}

func (rs *resolver) setAccess(a Access) {
	rs.access = a
	rs.accessLevel = rs.level
}

func (rs *resolver) endScope(end source.Position) {
	// A closer without an opener has no frame to inspect.
	if rs.level == 0 {
		return
	}
	symbols := rs.levels[rs.level]

	if inRange(rs.cursor, rs.starts[rs.level], end) {
		rs.out = append(rs.out, symbols...)
		rs.out = append(rs.out, rs.memberAccess(symbols)...)
	}

	if rs.class.pending && rs.class.level == rs.level {
		rs.registry[rs.class.name] = append([]Symbol(nil), symbols...)
		rs.class = classBinding{}
	}
	if rs.accessLevel == rs.level {
		rs.access = Public
		rs.accessLevel = 0
	}

	rs.levels[rs.level] = nil
	rs.level--
}

// memberAccess returns the members of the receiver's class when the cursor
// follows "receiver." and the receiver is declared in symbols.
func (rs *resolver) memberAccess(symbols []Symbol) []Symbol {
	name, ok := receiver(rs.text, rs.text.Offset(rs.cursor))
	if !ok {
		return nil
	}
	for _, s := range symbols {
		if s.Kind != SymbolVariable || s.Name != name {
			continue
		}
		if s.Type == "" {
			return nil
		}
		return rs.registry[s.Type]
	}
	return nil
}

// enterLoopBody moves the cursor just inside the next block so that editing
// a loop condition or step offers what the loop body sees.
func (rs *resolver) enterLoopBody(rest []analysis.Event) {
	for _, e := range rest {
		if e.Kind == analysis.StartScope {
			rs.cursor = source.Position{Line: e.Position.Line, Column: e.Position.Column + 1}
			return
		}
	}
}

// inRange reports whether cursor lies after start and at or before end.
func inRange(cursor, start, end source.Position) bool {
	return cursor.After(start) && !cursor.After(end)
}

// receiver scans backward from offset over whitespace, one dot, more
// whitespace and an identifier.
func receiver(text *source.Text, offset int) (string, bool) {
	i := offset - 1
	for i >= 0 && lexicon.IsSpace(text.At(i)) {
		i--
	}
	if i < 0 || !lexicon.IsDot(text.At(i)) {
		return "", false
	}
	i--
	for i >= 0 && lexicon.IsSpace(text.At(i)) {
		i--
	}
	end := i + 1
	for i >= 0 && lexicon.IsNameChar(text.At(i)) {
		i--
	}
	start := i + 1
	if start == end || !lexicon.IsNameStart(text.At(start)) {
		return "", false
	}
	return text.Slice(start, end), true
}
