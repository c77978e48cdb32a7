package format

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhamidi/laze/laze/analysis"
	"github.com/dhamidi/laze/laze/completion"
)

func report(text string) *Report {
	return &Report{Path: "a.laze", Result: analysis.Analyze(text)}
}

func TestLineEncoder(t *testing.T) {
	tests := []struct {
		name string
		view View
		text string
		want string
	}{
		{
			name: "tokens",
			view: ViewTokens,
			text: "整数:a",
			want: "0:0\t2\ttype\t-\t整数\n0:3\t1\tvariable\tdeclaration\ta\n",
		},
		{
			name: "events",
			view: ViewEvents,
			text: "整数:a",
			want: "0:0\t0\tstart-scope\t-\t-\n0:3\t3\tvariable\ta\t整数\n1:0\t4\tend-scope\t-\t-\n",
		},
		{
			name: "mask",
			view: ViewMask,
			text: "x // c",
			want: "x     \n0:2\t4\tline-comment\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, NewLineEncoder(&buf, tt.view).Encode(report(tt.text)))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestLineEncoderCompletions(t *testing.T) {
	r := report("")
	r.Items = []completion.Item{
		{Label: "a", Kind: completion.ItemVariable, InsertText: "a", Detail: "整数"},
		{Label: "f", Kind: completion.ItemFunction, InsertText: "f"},
	}
	var buf bytes.Buffer
	require.NoError(t, NewLineEncoder(&buf, ViewCompletions).Encode(r))
	assert.Equal(t, "variable\ta\t整数\nfunction\tf\t-\n", buf.String())
}

func TestJSONEncoderTokens(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSONEncoder(&buf, ViewTokens).Encode(report("整数:a")))

	var got struct {
		Path   string        `json:"path"`
		Tokens []tokenRecord `json:"tokens"`
		Events []eventRecord `json:"events"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "a.laze", got.Path)
	assert.Empty(t, got.Events)
	assert.Equal(t, []tokenRecord{
		{Line: 0, Column: 0, Length: 2, Type: "type", Text: "整数"},
		{Line: 0, Column: 3, Length: 1, Type: "variable", Modifiers: []string{"declaration"}, Text: "a"},
	}, got.Tokens)
}

func TestJSONEncoderMaskKeepsEmptyText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSONEncoder(&buf, ViewMask).Encode(report("")))
	assert.Contains(t, buf.String(), `"masked": ""`)
}

func TestParseView(t *testing.T) {
	for _, v := range []View{ViewTokens, ViewMask, ViewEvents, ViewCompletions} {
		got, ok := ParseView(v.String())
		assert.True(t, ok)
		assert.Equal(t, v, got)
	}
	_, ok := ParseView("nope")
	assert.False(t, ok)
}

func TestNew(t *testing.T) {
	_, ok := New("json", nil, ViewTokens)
	assert.True(t, ok)
	_, ok = New("line", nil, ViewTokens)
	assert.True(t, ok)
	_, ok = New("xml", nil, ViewTokens)
	assert.False(t, ok)
}
