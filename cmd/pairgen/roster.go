package main

import (
	"github.com/spf13/cobra"
)

func newRosterCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "roster <file>",
		Short: "Load and show a roster",
		Long:  "Parses a roster file with the configured mode and lists the entities it yields.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(cmd, func(deps *Deps) error {
				result, err := deps.RosterHandler.Handle(cmd.Context(), args[0], deps.FileOptions)
				if err != nil {
					return err
				}
				renderRoster(cmd.OutOrStdout(), result.Entities, result.Skipped)
				return nil
			})
		},
	}
}
