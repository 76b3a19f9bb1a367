package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newOrganizeCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "organize",
		Short: "Organize desktop files into category folders",
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := newEngine()
			if err != nil {
				return err
			}
			report, err := engine.Organize(cmd.Context(), dryRun || cfg.Settings.DryRun)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), newRenderer(cmd.OutOrStdout()).Summary(report))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&dryRun, "dry-run", "d", false, "preview the plan without moving files")

	return cmd
}
