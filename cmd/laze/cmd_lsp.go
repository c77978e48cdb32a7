package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/dhamidi/laze/laze/codebase"
)

func newLSPCmd() *cobra.Command {
	var watch time.Duration

	cmd := &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server on stdio",
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts []codebase.LSPOption
			if watch > 0 {
				opts = append(opts, codebase.WithWatch(watch))
			}
			server := codebase.NewLSPServer(version, opts...)
			return server.RunStdio()
		},
	}

	cmd.Flags().DurationVar(&watch, "watch", 0, "poll the workspace for changed files at this interval (0 disables)")

	return cmd
}
