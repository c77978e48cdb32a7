package analysis

// Encode converts the sorted tokens to the relative five-integer form of the
// semantic tokens protocol: line delta, column (delta on the same line,
// absolute on a new one), length, type, modifier bits. Columns and lengths
// are UTF-16 code units.
func (r *Result) Encode() []uint32 {
	data := make([]uint32, 0, 5*len(r.Tokens))
	prevLine, prevCol := 0, 0
	for _, t := range r.Tokens {
		pos := r.Text.Position(t.Start)
		col := pos.Column
		if pos.Line == prevLine {
			col -= prevCol
		}
		data = append(data,
			uint32(pos.Line-prevLine),
			uint32(col),
			uint32(r.Text.UTF16Len(t.Start, t.End())),
			uint32(t.Type),
			uint32(t.Modifiers),
		)
		prevLine, prevCol = pos.Line, pos.Column
	}
	return data
}

// Declarations returns the declaration events in document order.
func (r *Result) Declarations() []Event {
	var out []Event
	for _, e := range r.Events {
		if e.Kind.Declares() {
			out = append(out, e)
		}
	}
	return out
}

// TokenText returns the source text covered by t.
func (r *Result) TokenText(t Token) string {
	return r.Text.Slice(t.Start, t.End())
}
