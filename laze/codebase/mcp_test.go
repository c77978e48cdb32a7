package codebase

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func callTool(t *testing.T, handler server.ToolHandlerFunc, args map[string]any) string {
	t.Helper()
	req := mcp.CallToolRequest{Params: mcp.CallToolParams{Arguments: args}}
	resp, err := handler(context.Background(), req)
	require.NoError(t, err)
	content, ok := resp.Content[0].(mcp.TextContent)
	require.True(t, ok)
	return content.Text
}

func TestSemanticTokensHandler(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "a.laze")
	writeFile(t, path, "整数:a")

	text := callTool(t, semanticTokensHandler(New(root)), map[string]any{"path": path})

	var got struct {
		Tokens []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"tokens"`
	}
	require.NoError(t, json.Unmarshal([]byte(text), &got))
	require.Len(t, got.Tokens, 2)
	assert.Equal(t, "type", got.Tokens[0].Type)
	assert.Equal(t, "a", got.Tokens[1].Text)
}

func TestCompleteHandler(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "a.laze")
	writeFile(t, path, "{\n  整数:n\n  \n}")

	text := callTool(t, completeHandler(New(root)), map[string]any{
		"path":   path,
		"line":   float64(2),
		"column": float64(2),
	})

	var got struct {
		Completions []struct {
			Label string `json:"label"`
			Kind  string `json:"kind"`
		} `json:"completions"`
	}
	require.NoError(t, json.Unmarshal([]byte(text), &got))
	require.Len(t, got.Completions, 6)
	assert.Equal(t, "snippet", got.Completions[0].Kind)
	assert.Equal(t, "n", got.Completions[5].Label)
	assert.Equal(t, "variable", got.Completions[5].Kind)
}

func TestSymbolsHandler(t *testing.T) {
	c := New(t.TempDir())
	c.UpdateFile("a.laze", []byte("クラス:人 {\n  整数:age\n}\n人:p"))

	text := callTool(t, symbolsHandler(c), map[string]any{"path": "a.laze"})

	var got symbolsResponse
	require.NoError(t, json.Unmarshal([]byte(text), &got))
	assert.Equal(t, []declaration{
		{Line: 0, Column: 0, Kind: "class", Name: "人"},
		{Line: 1, Column: 5, Kind: "variable", Name: "age", Type: "整数"},
		{Line: 3, Column: 2, Kind: "variable", Name: "p", Type: "人"},
	}, got.Declarations)
	assert.Equal(t, map[string][]memberInfo{
		"人": {{Kind: "variable", Name: "age", Type: "整数", Access: "public"}},
	}, got.Members)
}

func TestHandlersRequirePath(t *testing.T) {
	c := New(t.TempDir())
	for name, handler := range map[string]server.ToolHandlerFunc{
		"semantic_tokens": semanticTokensHandler(c),
		"complete":        completeHandler(c),
		"symbols":         symbolsHandler(c),
	} {
		t.Run(name, func(t *testing.T) {
			_, err := handler(context.Background(), mcp.CallToolRequest{})
			assert.Error(t, err)
		})
	}
}

func TestHandlerMissingFile(t *testing.T) {
	c := New(t.TempDir())
	_, err := symbolsHandler(c)(context.Background(), mcp.CallToolRequest{
		Params: mcp.CallToolParams{Arguments: map[string]any{"path": filepath.Join(c.RootDir(), "nope.laze")}},
	})
	assert.Error(t, err)
}

func TestNewMCPServer(t *testing.T) {
	assert.NotNil(t, NewMCPServer("test", New(t.TempDir())))
}
