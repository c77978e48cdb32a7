package format

import (
	"github.com/dhamidi/laze/laze/analysis"
	"github.com/dhamidi/laze/laze/completion"
)

type tokenRecord struct {
	Line      int      `json:"line"`
	Column    int      `json:"column"`
	Length    int      `json:"length"`
	Type      string   `json:"type"`
	Modifiers []string `json:"modifiers,omitempty"`
	Text      string   `json:"text"`
}

type maskRecord struct {
	Line   int    `json:"line"`
	Column int    `json:"column"`
	Length int    `json:"length"`
	Kind   string `json:"kind"`
}

type eventRecord struct {
	Line   int    `json:"line"`
	Column int    `json:"column"`
	Offset int    `json:"offset"`
	Kind   string `json:"kind"`
	Name   string `json:"name,omitempty"`
	Type   string `json:"type,omitempty"`
}

type itemRecord struct {
	Label      string `json:"label"`
	Kind       string `json:"kind"`
	InsertText string `json:"insertText"`
	Detail     string `json:"detail,omitempty"`
	Snippet    bool   `json:"snippet,omitempty"`
}

func tokenRecords(r *analysis.Result) []tokenRecord {
	out := make([]tokenRecord, len(r.Tokens))
	for i, t := range r.Tokens {
		pos := r.Text.Position(t.Start)
		out[i] = tokenRecord{
			Line:      pos.Line,
			Column:    pos.Column,
			Length:    r.Text.UTF16Len(t.Start, t.End()),
			Type:      t.Type.String(),
			Modifiers: t.Modifiers.Names(),
			Text:      r.TokenText(t),
		}
	}
	return out
}

func maskRecords(r *analysis.Result) []maskRecord {
	out := make([]maskRecord, len(r.Masks))
	for i, sp := range r.Masks {
		pos := r.Text.Position(sp.Start)
		out[i] = maskRecord{
			Line:   pos.Line,
			Column: pos.Column,
			Length: sp.Length,
			Kind:   sp.Kind.String(),
		}
	}
	return out
}

func eventRecords(r *analysis.Result) []eventRecord {
	out := make([]eventRecord, len(r.Events))
	for i, e := range r.Events {
		out[i] = eventRecord{
			Line:   e.Position.Line,
			Column: e.Position.Column,
			Offset: e.Offset,
			Kind:   e.Kind.String(),
			Name:   e.Name,
			Type:   e.DeclaredType,
		}
	}
	return out
}

func itemRecords(items []completion.Item) []itemRecord {
	out := make([]itemRecord, len(items))
	for i, it := range items {
		out[i] = itemRecord{
			Label:      it.Label,
			Kind:       it.Kind.String(),
			InsertText: it.InsertText,
			Detail:     it.Detail,
			Snippet:    it.Snippet,
		}
	}
	return out
}
