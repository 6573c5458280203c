package main

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/boskcli/bosk/internal/log"
	"github.com/boskcli/bosk/internal/output"
	"github.com/boskcli/bosk/internal/setup"
	"github.com/boskcli/bosk/internal/ui"
	"github.com/boskcli/bosk/internal/worktree"
)

func newNewCmd() *cobra.Command {
	var (
		base       string
		noSetup    bool
		setupPath  string
		copyToClip bool
	)

	cmd := &cobra.Command{
		Use:     "new <branch>",
		Short:   "Create or reuse a worktree for a branch",
		Aliases: []string{"add", "co"},
		Args:    cobra.ExactArgs(1),
		Long: `Create a worktree for a branch under the worktree root.

The branch token is resolved against the remote first: an existing
remote branch is checked out with tracking attached, an existing local
branch is checked out as-is, and anything else becomes a new branch
forked from the base branch. If the worktree directory already exists
it is reused and only the setup script re-runs.`,
		Example: `  bosk new feature/auth                # remote/local/new resolution
  bosk new origin/hotfix               # explicit remote branch
  bosk new spike --base release/2.0    # fork from a different base
  bosk new feature/auth --no-setup     # skip the setup script
  bosk new feature/auth -c             # copy the path to the clipboard`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)
			p := output.FromContext(ctx)

			ctl, err := newController(ctx)
			if err != nil {
				return err
			}

			effectiveBase := base
			if effectiveBase == "" {
				effectiveBase = cfg.BaseBranch
			}
			mode := setup.ModeFor(noSetup || cfg.Setup.Disabled, setupPath, cfg.Setup.Script)

			l.Debug("create", "token", args[0], "base", effectiveBase, "setup", string(mode))

			result, err := ctl.Create(ctx, args[0], effectiveBase, mode)

			// A setup failure still produced a usable worktree; report it
			// before the non-zero exit.
			if result != nil {
				report(l, p, result)
				if copyToClip {
					if clipErr := clipboard.WriteAll(result.Path); clipErr != nil {
						l.Warnf("failed to copy path to clipboard: %v", clipErr)
					}
				}
			}

			var setupErr *worktree.SetupError
			if errors.As(err, &setupErr) {
				l.Warnf("worktree left in place at %s", setupErr.Path)
			}
			return err
		},
	}

	cmd.ValidArgsFunction = completeBranches

	cmd.Flags().StringVar(&base, "base", "", "Base branch for new branches (default from config)")
	cmd.Flags().BoolVar(&noSetup, "no-setup", false, "Skip the setup script")
	cmd.Flags().StringVar(&setupPath, "setup", "", "Explicit setup script path")
	cmd.Flags().BoolVarP(&copyToClip, "copy", "c", false, "Copy the worktree path to the clipboard")

	cmd.MarkFlagsMutuallyExclusive("setup", "no-setup")

	return cmd
}

// report prints the final summary: branch (with tracking when present)
// and path. This prints even in quiet mode - it is the primary output.
func report(l *log.Logger, p *output.Printer, r *worktree.CreateResult) {
	branch := ui.AccentStyle.Render(r.Branch)
	if r.Tracking != "" {
		branch = fmt.Sprintf("%s %s", branch, ui.MutedStyle.Render("→ "+r.Tracking))
	}

	verb := "Created"
	if r.Reused {
		verb = "Reusing"
	}
	l.Successf("%s worktree for %s", verb, branch)
	p.Println(r.Path)
}
