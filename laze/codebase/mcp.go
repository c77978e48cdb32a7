package codebase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/dhamidi/laze/format"
	"github.com/dhamidi/laze/laze/source"
)

// NewMCPServer exposes the codebase as MCP tools.
func NewMCPServer(version string, c *Codebase) *server.MCPServer {
	s := server.NewMCPServer(lsName, version)
	RegisterTools(s, c)
	return s
}

func RegisterTools(s *server.MCPServer, c *Codebase) {
	s.AddTool(mcp.NewTool("semantic_tokens",
		mcp.WithDescription("Classifies every token of a source file with its line, column, type and modifiers."),
		mcp.WithString("path", mcp.Required(), mcp.Description("Path of the source file")),
	), semanticTokensHandler(c))

	s.AddTool(mcp.NewTool("complete",
		mcp.WithDescription("Lists the snippets and symbols offered for completion at a cursor."),
		mcp.WithString("path", mcp.Required(), mcp.Description("Path of the source file")),
		mcp.WithNumber("line", mcp.Required(), mcp.Description("Zero-based line of the cursor")),
		mcp.WithNumber("column", mcp.Required(), mcp.Description("Zero-based UTF-16 column of the cursor")),
	), completeHandler(c))

	s.AddTool(mcp.NewTool("symbols",
		mcp.WithDescription("Returns the declarations of a source file and the members of each class it declares."),
		mcp.WithString("path", mcp.Required(), mcp.Description("Path of the source file")),
	), symbolsHandler(c))
}

// document returns the stored document for path, reading it from disk the
// first time.
func (c *Codebase) document(path string) (*Document, error) {
	if doc := c.GetFile(path); doc != nil {
		return doc, nil
	}
	if err := c.ScanFile(path); err != nil {
		return nil, err
	}
	return c.lookup(path)
}

func semanticTokensHandler(c *Codebase) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		path, err := req.RequireString("path")
		if err != nil {
			return nil, err
		}
		doc, err := c.document(path)
		if err != nil {
			return nil, err
		}
		return encodedResult(format.ViewTokens, &format.Report{Path: path, Result: doc.Analysis})
	}
}

func completeHandler(c *Codebase) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		path, err := req.RequireString("path")
		if err != nil {
			return nil, err
		}
		doc, err := c.document(path)
		if err != nil {
			return nil, err
		}
		cursor := source.Position{
			Line:   req.GetInt("line", 0),
			Column: req.GetInt("column", 0),
		}
		items, err := c.CompletionsAtPoint(doc.Path, cursor)
		if err != nil {
			return nil, err
		}
		return encodedResult(format.ViewCompletions, &format.Report{Path: path, Result: doc.Analysis, Items: items})
	}
}

type symbolsResponse struct {
	Path         string                  `json:"path"`
	Declarations []declaration           `json:"declarations"`
	Members      map[string][]memberInfo `json:"members,omitempty"`
}

type declaration struct {
	Line   int    `json:"line"`
	Column int    `json:"column"`
	Kind   string `json:"kind"`
	Name   string `json:"name"`
	Type   string `json:"type,omitempty"`
}

type memberInfo struct {
	Kind   string `json:"kind"`
	Name   string `json:"name"`
	Type   string `json:"type,omitempty"`
	Access string `json:"access"`
}

func symbolsHandler(c *Codebase) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		path, err := req.RequireString("path")
		if err != nil {
			return nil, err
		}
		if _, err := c.document(path); err != nil {
			return nil, err
		}
		decls, members, err := c.Symbols(path)
		if err != nil {
			return nil, err
		}

		resp := symbolsResponse{Path: path, Declarations: make([]declaration, 0, len(decls))}
		for _, d := range decls {
			resp.Declarations = append(resp.Declarations, declaration{
				Line:   d.Position.Line,
				Column: d.Position.Column,
				Kind:   d.Kind.String(),
				Name:   d.Name,
				Type:   d.DeclaredType,
			})
		}
		if len(members) > 0 {
			resp.Members = make(map[string][]memberInfo, len(members))
			for class, syms := range members {
				infos := make([]memberInfo, 0, len(syms))
				for _, s := range syms {
					infos = append(infos, memberInfo{
						Kind:   s.Kind.String(),
						Name:   s.Name,
						Type:   s.Type,
						Access: s.Access.String(),
					})
				}
				resp.Members[class] = infos
			}
		}
		return jsonResult(resp)
	}
}

func encodedResult(view format.View, report *format.Report) (*mcp.CallToolResult, error) {
	var buf bytes.Buffer
	if err := format.NewJSONEncoder(&buf, view).Encode(report); err != nil {
		return nil, fmt.Errorf("encoding response: %w", err)
	}
	return mcp.NewToolResultText(buf.String()), nil
}

// jsonResult serialises v to JSON and wraps it in a text tool result.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	out, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encoding response: %w", err)
	}
	return mcp.NewToolResultText(string(out)), nil
}
