package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"tidydesk/internal/errors"
)

func newStatusCmd() *cobra.Command {
	var includeHidden bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the folders and files currently on the desktop",
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := newScanner().Status(includeHidden)
			if err != nil {
				if errors.IsPathNotFound(err) {
					fmt.Fprintln(cmd.OutOrStdout(), "Desktop path not found!")
					return nil
				}
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), newRenderer(cmd.OutOrStdout()).Status(status))
			return nil
		},
	}

	cmd.Flags().BoolVar(&includeHidden, "hidden", false, "include hidden entries")

	return cmd
}
