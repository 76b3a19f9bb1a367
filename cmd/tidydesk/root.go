package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"tidydesk/internal/config"
	"tidydesk/internal/log"
	"tidydesk/internal/organize"
	"tidydesk/internal/render"
	"tidydesk/internal/scan"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  *log.Logger
)

// NewRootCmd builds the tidydesk command tree.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tidydesk",
		Short: "Organize your desktop files into category folders",
		Long: `Tidydesk scans the files sitting on your desktop, groups them into
categories and moves each file into a folder named after its category.

Categorization is done by a chat-completion model when one is configured,
with a deterministic extension-based fallback otherwise. Run without a
subcommand for a guided interactive session.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if cfgFile != "" {
				cfg, err = config.LoadConfigFile(cfgFile)
			} else {
				cfg, err = config.LoadConfig()
			}
			if err != nil {
				return err
			}
			logger = log.New(cfg.Settings.LogLevel)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "path to config file")

	rootCmd.AddCommand(newStatusCmd())
	rootCmd.AddCommand(newOrganizeCmd())
	rootCmd.AddCommand(newWatchCmd())
	rootCmd.AddCommand(newServeCmd())

	return rootCmd
}

func newScanner() *scan.Scanner {
	return scan.New(cfg.Desktop.Path, logger)
}

func newEngine() (*organize.Engine, error) {
	engine, err := organize.NewWithConfig(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("setting up organizer: %w", err)
	}
	return engine, nil
}

// newRenderer styles output only when it goes to a terminal, so piped or
// captured output stays plain.
func newRenderer(out io.Writer) *render.Renderer {
	return render.New(isTerminal(out))
}

func isTerminal(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
