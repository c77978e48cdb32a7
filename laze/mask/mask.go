// Package mask blanks out comments and literals so that pattern passes over
// the remaining text cannot match inside them.
//
// The masked text has the same length and the same line breaks as the input;
// only the interior of each region is replaced with spaces.
package mask

// Kind is the category of a masked region.
type Kind int

const (
	LineComment Kind = iota
	BlockComment
	CharLiteral
	InvalidCharLiteral
	StringLiteral
	InvalidStringLiteral
	QuotedLiteral
	InvalidQuotedLiteral
)

var kindNames = [...]string{
	LineComment:          "line-comment",
	BlockComment:         "block-comment",
	CharLiteral:          "char",
	InvalidCharLiteral:   "invalid-char",
	StringLiteral:        "string",
	InvalidStringLiteral: "invalid-string",
	QuotedLiteral:        "quoted",
	InvalidQuotedLiteral: "invalid-quoted",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Invalid reports whether the region was force-closed before its terminator.
func (k Kind) Invalid() bool {
	return k == InvalidCharLiteral || k == InvalidStringLiteral || k == InvalidQuotedLiteral
}

// Span is a masked region in rune offsets.
type Span struct {
	Start  int
	Length int
	Kind   Kind
}

func (s Span) End() int {
	return s.Start + s.Length
}

// Mask returns a copy of text with every comment and literal blanked, plus
// the regions it blanked in source order.
func Mask(text []rune) ([]rune, []Span) {
	s := &scanner{
		in:  text,
		out: append([]rune(nil), text...),
	}
	s.run()
	return s.out, s.spans
}

type marker int

const (
	noMarker marker = iota
	markLineComment
	markBlockStart
	markBlockEnd
	markChar
	markString
	markQuoteOpen
	markQuoteClose
	markNewline
)

type state int

const (
	stateNone state = iota
	stateLineComment
	stateBlockComment
	stateChar
	stateString
	stateQuoted
)

type scanner struct {
	in    []rune
	out   []rune
	spans []Span
	state state
	start int
}

func (s *scanner) markerAt(i int) (marker, int) {
	r := s.in[i]
	var next rune
	if i+1 < len(s.in) {
		next = s.in[i+1]
	}
	switch {
	case r == '/' && next == '/':
		return markLineComment, 2
	case r == '/' && next == '*':
		return markBlockStart, 2
	case r == '*' && next == '/':
		return markBlockEnd, 2
	}
	switch r {
	case '\'', '’':
		return markChar, 1
	case '"', '”':
		return markString, 1
	case '「':
		return markQuoteOpen, 1
	case '」':
		return markQuoteClose, 1
	case '\n':
		return markNewline, 1
	}
	return noMarker, 1
}

func (s *scanner) run() {
	for i := 0; i < len(s.in); {
		m, width := s.markerAt(i)
		if m == noMarker {
			i++
			continue
		}
		if s.step(m, i, width) {
			i += width
		} else {
			// An ignored marker may still overlap the start of a real one.
			i++
		}
	}
	s.finish()
}

// step applies the transition for marker m at offset i and reports whether
// the marker was consumed.
func (s *scanner) step(m marker, i, width int) bool {
	switch s.state {
	case stateNone:
		switch m {
		case markLineComment:
			s.open(stateLineComment, i)
		case markBlockStart:
			s.open(stateBlockComment, i)
		case markChar:
			s.open(stateChar, i)
		case markString:
			s.open(stateString, i)
		case markQuoteOpen:
			s.open(stateQuoted, i)
		default:
			return false
		}
		return true

	case stateLineComment:
		if m == markNewline {
			s.close(i, LineComment)
			return true
		}

	case stateBlockComment:
		if m == markBlockEnd {
			s.close(i+width, BlockComment)
			return true
		}

	case stateChar:
		switch m {
		case markChar:
			s.close(i+width, CharLiteral)
			return true
		case markNewline:
			s.close(i, InvalidCharLiteral)
			return true
		}

	case stateString:
		switch m {
		case markString:
			s.close(i+width, StringLiteral)
			return true
		case markNewline:
			s.close(i, InvalidStringLiteral)
			return true
		}

	case stateQuoted:
		switch m {
		case markQuoteClose:
			s.close(i+width, QuotedLiteral)
			return true
		case markNewline:
			s.close(i, InvalidQuotedLiteral)
			return true
		}
	}
	return false
}

func (s *scanner) open(st state, i int) {
	s.state = st
	s.start = i
}

func (s *scanner) close(end int, kind Kind) {
	for i := s.start; i < end; i++ {
		if s.out[i] != '\n' {
			s.out[i] = ' '
		}
	}
	s.spans = append(s.spans, Span{Start: s.start, Length: end - s.start, Kind: kind})
	s.state = stateNone
}

// finish closes a region still open at end of text. Comments end there
// naturally; literals are reported as unterminated.
func (s *scanner) finish() {
	end := len(s.in)
	switch s.state {
	case stateLineComment:
		s.close(end, LineComment)
	case stateBlockComment:
		s.close(end, BlockComment)
	case stateChar:
		s.close(end, InvalidCharLiteral)
	case stateString:
		s.close(end, InvalidStringLiteral)
	case stateQuoted:
		s.close(end, InvalidQuotedLiteral)
	}
}
