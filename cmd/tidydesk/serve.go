package main

import (
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"tidydesk/internal/categorize"
	"tidydesk/internal/organize"
	"tidydesk/internal/scan"
)

// Services shared by the MCP tool handlers.
var (
	svcScanner     *scan.Scanner
	svcCategorizer *categorize.Categorizer
	svcEngine      *organize.Engine
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Expose desktop organization as MCP tools over stdio",
		RunE: func(cmd *cobra.Command, args []string) error {
			svcScanner = newScanner()

			categorizer, err := categorize.NewFromConfig(cfg, logger)
			if err != nil {
				return err
			}
			svcCategorizer = categorizer

			engine, err := newEngine()
			if err != nil {
				return err
			}
			svcEngine = engine

			server := mcp.NewServer(&mcp.Implementation{
				Name:    "tidydesk",
				Version: version,
			}, nil)

			registerTools(server)

			if err := server.Run(cmd.Context(), &mcp.StdioTransport{}); err != nil {
				return fmt.Errorf("error running server: %w", err)
			}
			return nil
		},
	}
}
