package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dhamidi/laze/format"
	"github.com/dhamidi/laze/laze/analysis"
)

func newTokensCmd() *cobra.Command {
	var outputFormat string
	var encoded bool

	cmd := &cobra.Command{
		Use:   "tokens <file|->",
		Short: "Print the semantic tokens of a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readSource(args[0])
			if err != nil {
				return err
			}
			result := analysis.Analyze(text)

			if encoded {
				types, modifiers := analysis.Legend()
				out, err := json.Marshal(map[string]any{
					"legend": map[string][]string{"tokenTypes": types, "tokenModifiers": modifiers},
					"data":   result.Encode(),
				})
				if err != nil {
					return fmt.Errorf("encode: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(out))
				return nil
			}

			return encodeReport(cmd.OutOrStdout(), outputFormat, format.ViewTokens, &format.Report{Path: args[0], Result: result})
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "line", "output format (line, json)")
	cmd.Flags().BoolVar(&encoded, "encoded", false, "print the legend and the relative five-integer encoding")

	return cmd
}
