package main

import (
	"fmt"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dhamidi/laze/laze/codebase"
)

func newScanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scan [dir]",
		Short: "Analyze every source file under a directory and summarize it",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) == 1 {
				root = args[0]
			}
			return runScan(cmd, root)
		},
	}
}

func runScan(cmd *cobra.Command, root string) error {
	c := codebase.New(root)
	if err := c.ScanAll(); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "FILE\tTOKENS\tDECLARATIONS\tCLASSES")
	for _, path := range c.Paths() {
		doc := c.GetFile(path)
		rel, err := filepath.Rel(root, path)
		if err != nil {
			rel = path
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\n",
			rel, len(doc.Analysis.Tokens), len(doc.Analysis.Declarations()), len(doc.Analysis.Classes))
	}
	return tw.Flush()
}
