// Package config loads the bosk configuration.
//
// Configuration lives at ~/.config/bosk/config.toml. A missing file is
// not an error; every key has a default. Environment variables override
// file values, and command-line flags override both.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// SetupConfig holds setup-script related configuration.
type SetupConfig struct {
	// Script is a default explicit setup script path, relative to the
	// worktree unless absolute. Overridden by --setup.
	Script string `toml:"script"`

	// Disabled skips setup entirely, as if --no-setup were always set.
	Disabled bool `toml:"disabled"`
}

// Config holds the bosk configuration.
type Config struct {
	// WorktreeRoot is the directory name under the repository top level
	// that holds all worktrees.
	WorktreeRoot string `toml:"worktree_root"`

	// BaseBranch is the branch new branches fork from when no existing
	// branch matches the token.
	BaseBranch string `toml:"base_branch"`

	// Remote is the remote name consulted when resolving branch tokens.
	Remote string `toml:"remote"`

	Setup SetupConfig `toml:"setup"`
}

// Defaults
const (
	DefaultWorktreeRoot = ".worktrees"
	DefaultBaseBranch   = "main"
	DefaultRemote       = "origin"
)

// Default returns the default configuration.
func Default() Config {
	return Config{
		WorktreeRoot: DefaultWorktreeRoot,
		BaseBranch:   DefaultBaseBranch,
		Remote:       DefaultRemote,
	}
}

// configPath returns the path to the config file.
func configPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "bosk", "config.toml"), nil
}

// Load reads config from ~/.config/bosk/config.toml and applies
// environment overrides. Returns Default() if the file doesn't exist.
// Returns an error only if the file exists but is invalid.
func Load() (Config, error) {
	cfg := Default()

	path, err := configPath()
	if err == nil {
		data, readErr := os.ReadFile(path)
		switch {
		case readErr == nil:
			if err := toml.Unmarshal(data, &cfg); err != nil {
				return Default(), fmt.Errorf("parse %s: %w", path, err)
			}
		case !errors.Is(readErr, os.ErrNotExist):
			return Default(), fmt.Errorf("read %s: %w", path, readErr)
		}
	}

	applyEnv(&cfg)
	fillDefaults(&cfg)
	return cfg, nil
}

// applyEnv overlays BOSK_* environment variables onto cfg.
func applyEnv(cfg *Config) {
	if v := os.Getenv("BOSK_WORKTREE_ROOT"); v != "" {
		cfg.WorktreeRoot = v
	}
	if v := os.Getenv("BOSK_BASE_BRANCH"); v != "" {
		cfg.BaseBranch = v
	}
	if v := os.Getenv("BOSK_REMOTE"); v != "" {
		cfg.Remote = v
	}
	if v := os.Getenv("BOSK_SETUP_SCRIPT"); v != "" {
		cfg.Setup.Script = v
	}
}

// fillDefaults backfills any key zeroed out by an empty file value.
func fillDefaults(cfg *Config) {
	if cfg.WorktreeRoot == "" {
		cfg.WorktreeRoot = DefaultWorktreeRoot
	}
	if cfg.BaseBranch == "" {
		cfg.BaseBranch = DefaultBaseBranch
	}
	if cfg.Remote == "" {
		cfg.Remote = DefaultRemote
	}
}

// Validate rejects configuration values that would break path handling.
func (c *Config) Validate() error {
	if filepath.IsAbs(c.WorktreeRoot) || c.WorktreeRoot != filepath.Base(c.WorktreeRoot) {
		return fmt.Errorf("worktree_root must be a plain directory name, got %q", c.WorktreeRoot)
	}
	return nil
}
