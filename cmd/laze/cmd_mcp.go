package main

import (
	"fmt"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/dhamidi/laze/laze/codebase"
)

func newMCPCmd() *cobra.Command {
	var root string

	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Serve semantic tokens, completion and symbols as MCP tools on stdio",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := codebase.New(root)
			if err := c.ScanAll(); err != nil {
				return err
			}
			if err := server.ServeStdio(codebase.NewMCPServer(version, c)); err != nil {
				return fmt.Errorf("serve mcp: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&root, "root", ".", "workspace root to scan")

	return cmd
}
