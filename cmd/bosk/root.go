package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/boskcli/bosk/internal/cmdutil"
	"github.com/boskcli/bosk/internal/config"
	"github.com/boskcli/bosk/internal/git"
	"github.com/boskcli/bosk/internal/log"
	"github.com/boskcli/bosk/internal/output"
	"github.com/boskcli/bosk/internal/ui"
)

var (
	// Global flags
	verbose bool
	quiet   bool

	// Shared state injected into commands
	cfg     config.Config
	workDir string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "bosk",
	Short: "Manage git worktrees with per-project setup",
	Long: `bosk manages isolated git worktrees under a fixed root directory
inside the repository (default .worktrees/) and bootstraps each new
worktree with a per-project setup script when one exists.`,
	SilenceUsage:               true,
	SilenceErrors:              true,
	SuggestionsMinimumDistance: 2,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "completion" || cmd.Name() == "__complete" || cmd.Name() == "help" {
			return nil
		}
		return git.Check(cmd.Context())
	},
	// Run is not set - shows help when no subcommand provided
}

// Execute is the single dispatcher: every command returns its error
// here, and only here is the process exit status decided.
func Execute() {
	loadedCfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	cfg = loadedCfg
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "bosk: %v\n", err)
		os.Exit(1)
	}

	workDir, err = os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "bosk: failed to get working directory: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Diagnostics go to stderr, primary data to stdout.
	logger := log.New(os.Stderr, verbose, quiet)
	ctx = log.WithLogger(ctx, logger)
	ctx = output.WithPrinter(ctx, os.Stdout)

	rootCmd.SetContext(ctx)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", ui.ErrorMark(), err)
		os.Exit(cmdutil.ExitCode(err))
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show external commands being executed")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress progress output")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	rootCmd.Version = versionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.AddCommand(newNewCmd())
	rootCmd.AddCommand(newRemoveCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newPruneCmd())
}
