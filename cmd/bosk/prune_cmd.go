package main

import (
	"github.com/spf13/cobra"

	"github.com/boskcli/bosk/internal/log"
	"github.com/boskcli/bosk/internal/output"
)

func newPruneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Prune stale worktree bookkeeping",
		Args:  cobra.NoArgs,
		Long: `Prune stale worktree administrative files (worktrees whose
directories were deleted manually), then list what remains.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)
			p := output.FromContext(ctx)

			ctl, err := newController(ctx)
			if err != nil {
				return err
			}

			pruned, err := ctl.Prune(ctx)
			if err != nil {
				return err
			}
			if pruned != "" {
				l.Infof("%s", pruned)
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
