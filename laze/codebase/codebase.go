// Package codebase keeps the analyzed documents of a workspace and serves
// them to editors over LSP and to agents over MCP.
package codebase

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/tliron/commonlog"

	"github.com/dhamidi/laze/laze/analysis"
	"github.com/dhamidi/laze/laze/completion"
	"github.com/dhamidi/laze/laze/source"
)

// ErrUnknownDocument is returned for a path that was never opened or scanned.
var ErrUnknownDocument = errors.New("unknown document")

var log = commonlog.GetLogger("laze.codebase")

type Codebase struct {
	mu      sync.RWMutex
	rootDir string
	files   map[string]*Document
}

// Document is one source file and the analysis of its latest content.
type Document struct {
	Path     string
	Content  []byte
	Analysis *analysis.Result
}

func New(rootDir string) *Codebase {
	return &Codebase{
		rootDir: rootDir,
		files:   make(map[string]*Document),
	}
}

func (c *Codebase) RootDir() string {
	return c.rootDir
}

// ScanAll analyzes every source file discovered under the root.
func (c *Codebase) ScanAll() error {
	paths, err := Files(c.rootDir)
	if err != nil {
		return fmt.Errorf("discover %s: %w", c.rootDir, err)
	}
	for _, rel := range paths {
		if err := c.ScanFile(filepath.Join(c.rootDir, rel)); err != nil {
			log.Warningf("scan %s: %s", rel, err)
		}
	}
	log.Infof("scanned %d files under %s", len(paths), c.rootDir)
	return nil
}

func (c *Codebase) ScanFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	c.UpdateFile(path, content)
	return nil
}

// UpdateFile replaces the content of path and analyzes it again.
func (c *Codebase) UpdateFile(path string, content []byte) *Document {
	doc := &Document{
		Path:     path,
		Content:  content,
		Analysis: analysis.Analyze(string(content)),
	}

	c.mu.Lock()
	c.files[path] = doc
	c.mu.Unlock()

	log.Debugf("analyzed %s: %d tokens, %d events", path, len(doc.Analysis.Tokens), len(doc.Analysis.Events))
	return doc
}

func (c *Codebase) RemoveFile(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.files, path)
}

// GetFile returns the document stored for path, or nil.
func (c *Codebase) GetFile(path string) *Document {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.files[path]
}

func (c *Codebase) lookup(path string) (*Document, error) {
	doc := c.GetFile(path)
	if doc == nil {
		return nil, fmt.Errorf("%s: %w", path, ErrUnknownDocument)
	}
	return doc, nil
}

// Paths lists the stored documents in lexical order.
func (c *Codebase) Paths() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	paths := make([]string, 0, len(c.files))
	for p := range c.files {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// SemanticTokens returns the encoded tokens of path.
func (c *Codebase) SemanticTokens(path string) ([]uint32, error) {
	doc, err := c.lookup(path)
	if err != nil {
		return nil, err
	}
	return doc.Analysis.Encode(), nil
}

// CompletionsAtPoint returns the completion items for a cursor in path.
func (c *Codebase) CompletionsAtPoint(path string, cursor source.Position) ([]completion.Item, error) {
	doc, err := c.lookup(path)
	if err != nil {
		return nil, err
	}
	return completion.Complete(doc.Analysis, cursor), nil
}

// Symbols returns the declarations of path together with the members of
// every class it declares.
func (c *Codebase) Symbols(path string) ([]analysis.Event, map[string][]completion.Symbol, error) {
	doc, err := c.lookup(path)
	if err != nil {
		return nil, nil, err
	}
	return doc.Analysis.Declarations(), completion.Members(doc.Analysis), nil
}
