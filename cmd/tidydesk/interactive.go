package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"tidydesk/internal/errors"
)

const separator = "--------------------------------------------------"

// runInteractive is the default flow when tidydesk is invoked without a
// subcommand: show the desktop, preview a plan, and only move files after
// the user confirms twice.
func runInteractive(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()
	in := bufio.NewReader(cmd.InOrStdin())
	renderer := newRenderer(out)

	status, err := newScanner().Status(false)
	if err != nil {
		if errors.IsPathNotFound(err) {
			fmt.Fprintln(out, "Desktop path not found!")
			return nil
		}
		return err
	}

	fmt.Fprintln(out, separator)
	fmt.Fprintln(out, renderer.Status(status))
	fmt.Fprintln(out, separator)

	if !confirm(in, out, "Would you like to organize your desktop? (y/n): ") {
		fmt.Fprintln(out, "Operation cancelled.")
		return nil
	}

	engine, err := newEngine()
	if err != nil {
		return err
	}

	preview, err := engine.Organize(cmd.Context(), true)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, separator)
	fmt.Fprintln(out, renderer.Summary(preview))
	fmt.Fprintln(out, separator)

	if preview.NoFiles {
		return nil
	}

	if !confirm(in, out, "Proceed with organization? (y/n): ") {
		fmt.Fprintln(out, "Operation cancelled.")
		return nil
	}

	// Apply the previewed plan directly so the files end up exactly where
	// the preview said, without a second round of categorization.
	report := engine.Apply(preview.Plan)
	fmt.Fprintln(out, renderer.Summary(report))
	return nil
}

func confirm(in *bufio.Reader, out io.Writer, prompt string) bool {
	fmt.Fprint(out, prompt)
	line, err := in.ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
