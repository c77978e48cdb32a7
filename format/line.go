package format

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// LineEncoder writes one tab-separated record per line. Empty fields are
// written as "-".
type LineEncoder struct {
	w      io.Writer
	view   View
	report *Report
}

func NewLineEncoder(w io.Writer, view View) *LineEncoder {
	return &LineEncoder{w: w, view: view}
}

func (e *LineEncoder) Encode(report *Report) error {
	e.report = report
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *LineEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	r := e.report

	switch e.view {
	case ViewTokens:
		for _, t := range tokenRecords(r.Result) {
			fmt.Fprintf(&sb, "%d:%d\t%d\t%s\t%s\t%s\n",
				t.Line, t.Column, t.Length, t.Type, list(t.Modifiers), quote(t.Text))
		}
	case ViewMask:
		sb.WriteString(string(r.Result.Masked))
		if !strings.HasSuffix(sb.String(), "\n") {
			sb.WriteByte('\n')
		}
		for _, m := range maskRecords(r.Result) {
			fmt.Fprintf(&sb, "%d:%d\t%d\t%s\n", m.Line, m.Column, m.Length, m.Kind)
		}
	case ViewEvents:
		for _, ev := range eventRecords(r.Result) {
			fmt.Fprintf(&sb, "%d:%d\t%d\t%s\t%s\t%s\n",
				ev.Line, ev.Column, ev.Offset, ev.Kind, dash(ev.Name), dash(ev.Type))
		}
	case ViewCompletions:
		for _, it := range itemRecords(r.Items) {
			fmt.Fprintf(&sb, "%s\t%s\t%s\n", it.Kind, it.Label, dash(it.Detail))
		}
	}

	return []byte(sb.String()), nil
}

func list(s []string) string {
	if len(s) == 0 {
		return "-"
	}
	return strings.Join(s, ",")
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// quote keeps token text on one line.
func quote(s string) string {
	q := strconv.Quote(s)
	return q[1 : len(q)-1]
}
