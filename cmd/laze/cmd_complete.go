package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dhamidi/laze/format"
	"github.com/dhamidi/laze/laze/analysis"
	"github.com/dhamidi/laze/laze/completion"
	"github.com/dhamidi/laze/laze/source"
)

func newCompleteCmd() *cobra.Command {
	var outputFormat string
	var noSnippets bool

	cmd := &cobra.Command{
		Use:   "complete <file|-> <line> <column>",
		Short: "List the completions offered at a zero-based cursor",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			line, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("parse line: %w", err)
			}
			column, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("parse column: %w", err)
			}
			text, err := readSource(args[0])
			if err != nil {
				return err
			}

			result := analysis.Analyze(text)
			items := completion.Complete(result, source.Position{Line: line, Column: column})
			if noSnippets {
				items = items[len(completion.Snippets()):]
			}
			report := &format.Report{Path: args[0], Result: result, Items: items}
			return encodeReport(cmd.OutOrStdout(), outputFormat, format.ViewCompletions, report)
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "line", "output format (line, json)")
	cmd.Flags().BoolVar(&noSnippets, "no-snippets", false, "omit the snippet templates")

	return cmd
}
