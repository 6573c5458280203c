package main

import (
	"github.com/spf13/cobra"

	"github.com/boskcli/bosk/internal/output"
)

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Short:   "List worktrees",
		Aliases: []string{"ls"},
		Args:    cobra.NoArgs,
		Long:    `List all worktrees of the repository, as reported by git.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p := output.FromContext(ctx)

			ctl, err := newController(ctx)
			if err != nil {
				return err
			}

			listing, err := ctl.List(ctx)
			if err != nil {
				return err
			}
			p.Println(listing)

			return nil
		},
	}

	return cmd
}
