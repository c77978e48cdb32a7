package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, cmd *cobra.Command, args ...string) string {
	t.Helper()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
	return buf.String()
}

func sourceFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "a.laze")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestViewCommands(t *testing.T) {
	path := sourceFile(t, "整数:a")

	tests := []struct {
		name string
		cmd  *cobra.Command
		args []string
		want string
	}{
		{
			name: "tokens",
			cmd:  newTokensCmd(),
			args: []string{path},
			want: "0:0\t2\ttype\t-\t整数\n0:3\t1\tvariable\tdeclaration\ta\n",
		},
		{
			name: "events",
			cmd:  newEventsCmd(),
			args: []string{path},
			want: "0:0\t0\tstart-scope\t-\t-\n0:3\t3\tvariable\ta\t整数\n1:0\t4\tend-scope\t-\t-\n",
		},
		{
			name: "mask",
			cmd:  newMaskCmd(),
			args: []string{path},
			want: "整数:a\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, run(t, tt.cmd, tt.args...))
		})
	}
}

func TestTokensEncoded(t *testing.T) {
	out := run(t, newTokensCmd(), "--encoded", sourceFile(t, "整数:a"))
	assert.Contains(t, out, `"data":[0,0,2,7,0,0,3,1,16,1]`)
	assert.Contains(t, out, `"tokenTypes":["comment"`)
}

func TestCompleteCommand(t *testing.T) {
	path := sourceFile(t, "{\n  整数:n\n  \n}")
	out := run(t, newCompleteCmd(), "--no-snippets", path, "2", "2")
	assert.Equal(t, "variable\tn\t整数\n", out)
}

func TestCompleteCommandRejectsBadLine(t *testing.T) {
	cmd := newCompleteCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"a.laze", "x", "0"})
	assert.Error(t, cmd.Execute())
}

func TestUnknownFormat(t *testing.T) {
	cmd := newEventsCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--format", "xml", sourceFile(t, "")})
	assert.EqualError(t, cmd.Execute(), "unknown format: xml")
}

func TestScanCommand(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.laze"), []byte("整数:a"), 0o644))

	out := run(t, newScanCmd(), root)
	assert.Contains(t, out, "FILE")
	assert.Regexp(t, `a\.laze\s+2\s+1\s+0`, out)
}

func TestSessionHandle(t *testing.T) {
	s := &session{}
	var buf bytes.Buffer

	quit, err := s.handle(&buf, "整数:a")
	require.NoError(t, err)
	assert.False(t, quit)
	assert.Equal(t, "整数:a", s.doc)

	_, err = s.handle(&buf, ":tokens")
	require.NoError(t, err)
	assert.Equal(t, "0:0\t2\ttype\t-\t整数\n0:3\t1\tvariable\tdeclaration\ta\n", buf.String())

	_, err = s.handle(&buf, ":nope")
	assert.EqualError(t, err, "unknown command: :nope")

	_, err = s.handle(&buf, ":clear")
	require.NoError(t, err)
	assert.Empty(t, s.doc)

	quit, err = s.handle(&buf, ":quit")
	require.NoError(t, err)
	assert.True(t, quit)
}

func TestSessionCompleteWord(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		line string
		head string
		want []string
	}{
		{
			name: "declared on the same line",
			line: "整数:count; co",
			head: "整数:count; ",
			want: []string{"count"},
		},
		{
			name: "declared earlier in the document",
			doc:  "整数:total\n整数:tally",
			line: "t",
			head: "",
			want: []string{"tally", "total"},
		},
		{
			name: "keyword",
			line: "関",
			head: "",
			want: []string{"関数"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &session{doc: tt.doc}
			head, got, tail := s.completeWord(tt.line, len([]rune(tt.line)))
			assert.Equal(t, tt.head, head)
			assert.Equal(t, tt.want, got)
			assert.Empty(t, tail)
		})
	}
}
