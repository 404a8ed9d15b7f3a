// Package color provides centralized color profile detection.
//
// It implements the NO_COLOR specification (https://no-color.org/) and
// automatic pipe/redirect detection. When color is disabled, lipgloss is
// set to the Ascii profile so all styled renders produce plain text.
package color

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// ShouldDisableColor returns true if color output should be suppressed.
// This happens when:
//   - The NO_COLOR environment variable is set (any value, per the spec)
//   - stdout is not a terminal (pipe or redirect)
func ShouldDisableColor() bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return true
	}

	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return true
	}

	return false
}

// Setup configures the global lipgloss color profile. Call once at startup
// before any rendering. Snapshot output piped into a file or another
// program comes out as plain text.
func Setup() {
	if ShouldDisableColor() {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}
