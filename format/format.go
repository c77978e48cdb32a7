// Package format renders analysis results for the command line and for tool
// responses.
package format

import (
	"encoding"
	"io"

	"github.com/dhamidi/laze/laze/analysis"
	"github.com/dhamidi/laze/laze/completion"
)

// View selects which part of a report an encoder renders.
type View int

const (
	ViewTokens View = iota
	ViewMask
	ViewEvents
	ViewCompletions
)

func (v View) String() string {
	switch v {
	case ViewMask:
		return "mask"
	case ViewEvents:
		return "events"
	case ViewCompletions:
		return "completions"
	default:
		return "tokens"
	}
}

// ParseView accepts the names returned by View.String.
func ParseView(s string) (View, bool) {
	for _, v := range []View{ViewTokens, ViewMask, ViewEvents, ViewCompletions} {
		if v.String() == s {
			return v, true
		}
	}
	return ViewTokens, false
}

// Report is one analyzed document and, for the completions view, the items
// offered at a cursor.
type Report struct {
	Path   string
	Result *analysis.Result
	Items  []completion.Item
}

type Encoder interface {
	encoding.TextMarshaler
	Encode(report *Report) error
}

// New returns the encoder registered for name: "json" or "line".
func New(name string, w io.Writer, view View) (Encoder, bool) {
	switch name {
	case "json":
		return NewJSONEncoder(w, view), true
	case "line":
		return NewLineEncoder(w, view), true
	}
	return nil, false
}
