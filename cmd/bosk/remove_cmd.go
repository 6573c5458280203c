package main

import (
	"github.com/spf13/cobra"

	"github.com/boskcli/bosk/internal/log"
	"github.com/boskcli/bosk/internal/output"
	"github.com/boskcli/bosk/internal/worktree"
)

func newRemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "remove <name>",
		Short:   "Remove a worktree and delete its branch",
		Aliases: []string{"rm"},
		Args:    cobra.ExactArgs(1),
		Long: `Remove the worktree with the given directory name.

The worktree is removed forcibly - uncommitted changes inside it are
discarded. Its branch is then force-deleted unless the worktree was on
a detached head; a branch that cannot be deleted (e.g. checked out
elsewhere) is reported but does not fail the command.`,
		Example: `  bosk remove feature-auth
  bosk rm feature-auth`,
		ValidArgsFunction: completeWorktreeNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)
			p := output.FromContext(ctx)

			ctl, err := newController(ctx)
			if err != nil {
				return err
			}

			result, err := ctl.Remove(ctx, args[0])
			if err != nil {
				return err
			}

			l.Successf("Removed worktree %s", result.Path)
			switch {
			case result.Branch == worktree.DetachedHead:
				l.Infof("Worktree was on a detached head, no branch to delete")
			case result.BranchDeleted:
				l.Successf("Deleted branch %s", result.Branch)
			default:
				l.Warnf("branch %s not deleted", result.Branch)
			}
			p.Println(result.Path)

			return nil
		},
	}

	return cmd
}
