package completion

import (
	"github.com/dhamidi/laze/laze/analysis"
	"github.com/dhamidi/laze/laze/source"
)

// Complete returns the snippets followed by every symbol visible at cursor.
// Symbols are not deduplicated; a name shadowed in an inner scope appears
// once per scope that declares it.
func Complete(r *analysis.Result, cursor source.Position) []Item {
	items := Snippets()
	for _, s := range Resolve(r, cursor) {
		items = append(items, itemOf(s))
	}
	return items
}

func itemOf(s Symbol) Item {
	item := Item{Label: s.Name, InsertText: s.Name, Detail: s.Type}
	switch s.Kind {
	case SymbolFunction:
		item.Kind = ItemFunction
	case SymbolVariable:
		item.Kind = ItemVariable
	case SymbolClass:
		item.Kind = ItemClass
	default:
		item.Kind = ItemText
	}
	if s.Access != Public {
		if item.Detail != "" {
			item.Detail += " "
		}
		item.Detail += s.Access.String()
	}
	return item
}
