package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dhamidi/laze/format"
	"github.com/dhamidi/laze/laze/analysis"
)

// readSource reads the named file, or standard input for "-".
func readSource(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}

// encodeReport writes report with the named encoder.
func encodeReport(w io.Writer, name string, view format.View, report *format.Report) error {
	enc, ok := format.New(name, w, view)
	if !ok {
		return fmt.Errorf("unknown format: %s", name)
	}
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// newViewCmd builds a command that analyzes one file and prints one view of
// the result.
func newViewCmd(use, short string, view format.View) *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   use + " <file|->",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readSource(args[0])
			if err != nil {
				return err
			}
			report := &format.Report{Path: args[0], Result: analysis.Analyze(text)}
			return encodeReport(cmd.OutOrStdout(), outputFormat, view, report)
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "line", "output format (line, json)")

	return cmd
}

func newMaskCmd() *cobra.Command {
	return newViewCmd("mask", "Print the text with comments and literals blanked", format.ViewMask)
}

func newEventsCmd() *cobra.Command {
	return newViewCmd("events", "Print the scope and declaration events of a file", format.ViewEvents)
}
