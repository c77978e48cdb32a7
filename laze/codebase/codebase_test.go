package codebase

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhamidi/laze/laze/completion"
	"github.com/dhamidi/laze/laze/source"
)

func TestUpdateFileReanalyzes(t *testing.T) {
	c := New(t.TempDir())
	path := "/w/a.laze"

	doc := c.UpdateFile(path, []byte("整数:a"))
	require.NotNil(t, doc.Analysis)
	assert.Same(t, doc, c.GetFile(path))

	c.UpdateFile(path, []byte("整数:a\n整数:b"))
	decls, _, err := c.Symbols(path)
	require.NoError(t, err)
	require.Len(t, decls, 2)
	assert.Equal(t, "b", decls[1].Name)
}

func TestUnknownDocument(t *testing.T) {
	c := New(t.TempDir())

	_, err := c.SemanticTokens("/missing.laze")
	assert.ErrorIs(t, err, ErrUnknownDocument)

	_, err = c.CompletionsAtPoint("/missing.laze", source.Position{})
	assert.ErrorIs(t, err, ErrUnknownDocument)

	_, _, err = c.Symbols("/missing.laze")
	assert.ErrorIs(t, err, ErrUnknownDocument)
}

func TestCompletionsAtPoint(t *testing.T) {
	c := New(t.TempDir())
	c.UpdateFile("a.laze", []byte("{\n  整数:n\n  \n}"))

	items, err := c.CompletionsAtPoint("a.laze", source.Position{Line: 2, Column: 2})
	require.NoError(t, err)
	require.Len(t, items, len(completion.Snippets())+1)
	assert.Equal(t, "n", items[len(items)-1].Label)
}

func TestSemanticTokens(t *testing.T) {
	c := New(t.TempDir())
	c.UpdateFile("a.laze", []byte("整数:a"))

	data, err := c.SemanticTokens("a.laze")
	require.NoError(t, err)
	assert.Len(t, data, 10)
}

func TestScanAllAndRemove(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.laze"), "整数:a")
	writeFile(t, filepath.Join(root, "sub", "b.laze"), "整数:b")
	writeFile(t, filepath.Join(root, "notes.txt"), "整数:c")

	c := New(root)
	require.NoError(t, c.ScanAll())
	assert.Equal(t, []string{
		filepath.Join(root, "a.laze"),
		filepath.Join(root, "sub", "b.laze"),
	}, c.Paths())

	c.RemoveFile(filepath.Join(root, "a.laze"))
	assert.Equal(t, []string{filepath.Join(root, "sub", "b.laze")}, c.Paths())
}

func TestScanFileMissing(t *testing.T) {
	c := New(t.TempDir())
	err := c.ScanFile(filepath.Join(c.RootDir(), "nope.laze"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}
