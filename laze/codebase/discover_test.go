package codebase

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFiles(t *testing.T) {
	root := t.TempDir()
	for _, rel := range []string{
		"main.laze",
		"lib/util.laze",
		"lib/util.gen.laze",
		"ignored/skip.laze",
		".hidden/skip.laze",
		"node_modules/skip.laze",
		"build/skip.laze",
		".dot.laze",
		"readme.md",
	} {
		writeFile(t, filepath.Join(root, rel), "")
	}
	writeFile(t, filepath.Join(root, ".gitignore"), "ignored\n*.gen.laze\n")

	got, err := Files(root)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join("lib", "util.laze"),
		"main.laze",
	}, got)
}

func TestFilesWithoutGitignore(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.laze"), "")

	got, err := Files(root)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.laze"}, got)
}
