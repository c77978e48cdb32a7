package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/dhamidi/laze/format"
	"github.com/dhamidi/laze/laze/analysis"
	"github.com/dhamidi/laze/laze/completion"
	"github.com/dhamidi/laze/laze/lexicon"
)

const historyFile = ".laze_history"

func newReplCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl [file]",
		Short: "Edit a document line by line with resolver-driven tab completion",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var doc string
			if len(args) == 1 {
				text, err := readSource(args[0])
				if err != nil {
					return err
				}
				doc = text
			}
			return runRepl(cmd.OutOrStdout(), doc)
		},
	}
}

func runRepl(out io.Writer, doc string) error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)
	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	s := &session{doc: doc}
	ln.SetWordCompleter(s.completeWord)

	fmt.Fprintln(out, "enter source lines; :tokens :events :mask :show :clear :quit")
	for {
		line, err := ln.Prompt("laze> ")
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			fmt.Fprintln(out)
			return nil
		}
		if err != nil {
			return fmt.Errorf("prompt: %w", err)
		}
		ln.AppendHistory(line)

		quit, err := s.handle(out, line)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
		if quit {
			return nil
		}
	}
}

// session is the document being typed into the shell.
type session struct {
	doc string
}

func (s *session) handle(out io.Writer, line string) (bool, error) {
	cmd := strings.TrimSpace(line)
	view := format.ViewTokens
	switch cmd {
	case ":quit":
		return true, nil
	case ":clear":
		s.doc = ""
		return false, nil
	case ":show":
		fmt.Fprintln(out, s.doc)
		return false, nil
	case ":tokens":
	case ":events":
		view = format.ViewEvents
	case ":mask":
		view = format.ViewMask
	default:
		if strings.HasPrefix(cmd, ":") {
			return false, fmt.Errorf("unknown command: %s", cmd)
		}
		if s.doc != "" {
			s.doc += "\n"
		}
		s.doc += line
		return false, nil
	}
	report := &format.Report{Result: analysis.Analyze(s.doc)}
	return false, encodeReport(out, "line", view, report)
}

// completeWord offers the symbols visible at the end of the line being
// typed, as if it were appended to the document.
func (s *session) completeWord(line string, pos int) (head string, completions []string, tail string) {
	runes := []rune(line)
	if pos > len(runes) {
		pos = len(runes)
	}
	start := pos
	for start > 0 && lexicon.IsNameChar(runes[start-1]) {
		start--
	}
	head, prefix, tail := string(runes[:start]), string(runes[start:pos]), string(runes[pos:])

	text := string(runes[:pos])
	if s.doc != "" {
		text = s.doc + "\n" + text
	}
	result := analysis.Analyze(text + tail)
	cursor := result.Text.Position(len([]rune(text)))

	seen := make(map[string]bool)
	for _, sym := range completion.Resolve(result, cursor) {
		if seen[sym.Name] || !strings.HasPrefix(sym.Name, prefix) {
			continue
		}
		seen[sym.Name] = true
		completions = append(completions, sym.Name)
	}
	for _, word := range lexicon.Keywords {
		if !seen[word] && prefix != "" && strings.HasPrefix(word, prefix) {
			seen[word] = true
			completions = append(completions, word)
		}
	}
	sort.Strings(completions)
	return head, completions, tail
}
