package codebase

import (
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	_ "github.com/tliron/commonlog/simple"

	"github.com/dhamidi/laze/laze/analysis"
	"github.com/dhamidi/laze/laze/completion"
	"github.com/dhamidi/laze/laze/source"
)

const lsName = "laze"

type LSPServer struct {
	codebase *Codebase
	handler  protocol.Handler
	server   *server.Server
	version  string
	watch    time.Duration
	watcher  *FileWatcher
}

// LSPOption configures an LSPServer.
type LSPOption func(*LSPServer)

// WithWatch polls the workspace root for changed files at the given interval.
func WithWatch(interval time.Duration) LSPOption {
	return func(ls *LSPServer) {
		ls.watch = interval
	}
}

func NewLSPServer(version string, opts ...LSPOption) *LSPServer {
	ls := &LSPServer{
		version: version,
	}
	for _, opt := range opts {
		opt(ls)
	}

	ls.handler = protocol.Handler{
		Initialize:                     ls.initialize,
		Initialized:                    ls.initialized,
		Shutdown:                       ls.shutdown,
		SetTrace:                       ls.setTrace,
		TextDocumentDidOpen:            ls.textDocumentDidOpen,
		TextDocumentDidChange:          ls.textDocumentDidChange,
		TextDocumentDidClose:           ls.textDocumentDidClose,
		TextDocumentDidSave:            ls.textDocumentDidSave,
		TextDocumentCompletion:         ls.textDocumentCompletion,
		TextDocumentSemanticTokensFull: ls.textDocumentSemanticTokensFull,
	}

	ls.server = server.NewServer(&ls.handler, lsName, false)

	return ls
}

func (ls *LSPServer) RunStdio() error {
	return ls.server.RunStdio()
}

func (ls *LSPServer) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	rootDir := "."
	if params.RootPath != nil && *params.RootPath != "" {
		rootDir = *params.RootPath
	} else if params.RootURI != nil && *params.RootURI != "" {
		if path, err := uriToPath(*params.RootURI); err == nil {
			rootDir = path
		}
	}

	ls.codebase = New(rootDir)

	capabilities := ls.handler.CreateServerCapabilities()

	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    syncKindPtr(protocol.TextDocumentSyncKindFull),
		Save: &protocol.SaveOptions{
			IncludeText: boolPtr(true),
		},
	}

	capabilities.CompletionProvider = &protocol.CompletionOptions{
		TriggerCharacters: []string{".", "．"},
	}

	types, modifiers := analysis.Legend()
	capabilities.SemanticTokensProvider = &protocol.SemanticTokensOptions{
		Legend: protocol.SemanticTokensLegend{
			TokenTypes:     types,
			TokenModifiers: modifiers,
		},
		Full: true,
	}

	log.Infof("initialize: root %s", rootDir)

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &ls.version,
		},
	}, nil
}

func (ls *LSPServer) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	if ls.watch > 0 {
		ls.watcher = NewFileWatcher(ls.codebase, ls.watch)
		ls.watcher.Start()
		return nil
	}
	if err := ls.codebase.ScanAll(); err != nil {
		log.Warningf("initialized: %s", err)
	}
	return nil
}

func (ls *LSPServer) shutdown(ctx *glsp.Context) error {
	if ls.watcher != nil {
		ls.watcher.Stop()
	}
	return nil
}

func (ls *LSPServer) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (ls *LSPServer) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	ls.codebase.UpdateFile(path, []byte(params.TextDocument.Text))
	return nil
}

func (ls *LSPServer) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	if len(params.ContentChanges) > 0 {
		change := params.ContentChanges[len(params.ContentChanges)-1]
		if whole, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
			ls.codebase.UpdateFile(path, []byte(whole.Text))
		}
	}
	return nil
}

func (ls *LSPServer) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	return nil
}

func (ls *LSPServer) textDocumentDidSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	if params.Text != nil {
		ls.codebase.UpdateFile(path, []byte(*params.Text))
	} else if err := ls.codebase.ScanFile(path); err != nil {
		log.Warningf("didSave: %s", err)
	}
	return nil
}

func (ls *LSPServer) textDocumentSemanticTokensFull(ctx *glsp.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil, nil
	}
	data, err := ls.codebase.SemanticTokens(path)
	if err != nil {
		log.Debugf("semanticTokens: %s", err)
		return nil, nil
	}
	return &protocol.SemanticTokens{Data: toUIntegers(data)}, nil
}

func (ls *LSPServer) textDocumentCompletion(ctx *glsp.Context, params *protocol.CompletionParams) (any, error) {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil, nil
	}

	cursor := source.Position{
		Line:   int(params.Position.Line),
		Column: int(params.Position.Character),
	}
	items, err := ls.codebase.CompletionsAtPoint(path, cursor)
	if err != nil {
		log.Debugf("completion: %s", err)
		return nil, nil
	}
	return toCompletionItems(items), nil
}

func toCompletionItems(items []completion.Item) []protocol.CompletionItem {
	out := make([]protocol.CompletionItem, 0, len(items))
	for _, c := range items {
		kind := toProtocolKind(c.Kind)
		insertText := c.InsertText
		format := protocol.InsertTextFormatPlainText
		if c.Snippet {
			format = protocol.InsertTextFormatSnippet
		}

		item := protocol.CompletionItem{
			Label:            c.Label,
			Kind:             &kind,
			InsertText:       &insertText,
			InsertTextFormat: &format,
		}
		if c.Detail != "" {
			detail := c.Detail
			item.Detail = &detail
		}
		if c.Documentation != "" {
			item.Documentation = c.Documentation
		}
		out = append(out, item)
	}
	return out
}

func toProtocolKind(kind completion.ItemKind) protocol.CompletionItemKind {
	switch kind {
	case completion.ItemFunction:
		return protocol.CompletionItemKindFunction
	case completion.ItemVariable:
		return protocol.CompletionItemKindVariable
	case completion.ItemClass:
		return protocol.CompletionItemKindClass
	case completion.ItemSnippet:
		return protocol.CompletionItemKindSnippet
	default:
		return protocol.CompletionItemKindText
	}
}

func toUIntegers(data []uint32) []protocol.UInteger {
	out := make([]protocol.UInteger, len(data))
	for i, v := range data {
		out[i] = protocol.UInteger(v)
	}
	return out
}

func uriToPath(uri string) (string, error) {
	if strings.HasPrefix(uri, "file://") {
		parsed, err := url.Parse(uri)
		if err != nil {
			return "", err
		}
		return filepath.Clean(parsed.Path), nil
	}
	return uri, nil
}

func boolPtr(b bool) *bool {
	return &b
}

func syncKindPtr(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}
