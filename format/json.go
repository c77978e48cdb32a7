package format

import (
	"encoding/json"
	"io"
)

type JSONEncoder struct {
	w      io.Writer
	view   View
	report *Report
}

func NewJSONEncoder(w io.Writer, view View) *JSONEncoder {
	return &JSONEncoder{w: w, view: view}
}

func (e *JSONEncoder) Encode(report *Report) error {
	e.report = report
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(append(text, '\n'))
	return err
}

type jsonReport struct {
	Path        string        `json:"path,omitempty"`
	Tokens      []tokenRecord `json:"tokens,omitempty"`
	Masked      *string       `json:"masked,omitempty"`
	Masks       []maskRecord  `json:"masks,omitempty"`
	Events      []eventRecord `json:"events,omitempty"`
	Completions []itemRecord  `json:"completions,omitempty"`
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	r := e.report
	data := jsonReport{Path: r.Path}
	switch e.view {
	case ViewTokens:
		data.Tokens = tokenRecords(r.Result)
	case ViewMask:
		masked := string(r.Result.Masked)
		data.Masked = &masked
		data.Masks = maskRecords(r.Result)
	case ViewEvents:
		data.Events = eventRecords(r.Result)
	case ViewCompletions:
		data.Completions = itemRecords(r.Items)
	}
	return json.MarshalIndent(data, "", "  ")
}
