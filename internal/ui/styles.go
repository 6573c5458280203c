// Package ui provides shared lipgloss styles and progress cosmetics.
//
// Styling is centralized here so log output and command summaries stay
// visually consistent. Lipgloss downgrades colors automatically when the
// terminal does not support them.
package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Colors used throughout the CLI
var (
	// Success is used for checkmarks and positive outcomes (green)
	Success lipgloss.TerminalColor = lipgloss.Color("82")

	// Error is used for error messages (red)
	Error lipgloss.TerminalColor = lipgloss.Color("196")

	// Warn is used for degraded-but-tolerated conditions (yellow)
	Warn lipgloss.TerminalColor = lipgloss.Color("214")

	// Muted is used for secondary text such as tracking info (gray)
	Muted lipgloss.TerminalColor = lipgloss.Color("240")

	// Accent highlights branch names and paths (cyan/teal)
	Accent lipgloss.TerminalColor = lipgloss.Color("62")
)

var (
	SuccessStyle = lipgloss.NewStyle().Foreground(Success)
	ErrorStyle   = lipgloss.NewStyle().Foreground(Error)
	WarnStyle    = lipgloss.NewStyle().Foreground(Warn)
	MutedStyle   = lipgloss.NewStyle().Foreground(Muted)
	AccentStyle  = lipgloss.NewStyle().Foreground(Accent).Bold(true)
)

// SuccessMark returns the styled checkmark prefix.
func SuccessMark() string { return SuccessStyle.Render("✓") }

// ErrorMark returns the styled error prefix.
func ErrorMark() string { return ErrorStyle.Render("✗") }

// WarnMark returns the styled warning prefix.
func WarnMark() string { return WarnStyle.Render("!") }

// IsInteractive reports whether stderr is a terminal. Spinners and other
// animated cosmetics are disabled when it is not.
func IsInteractive() bool {
	fd := os.Stderr.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
