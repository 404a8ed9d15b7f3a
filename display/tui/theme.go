package tui

import "github.com/charmbracelet/lipgloss"

// Styles used throughout the TUI. ApplyTheme rebuilds them from a preset;
// init seeds them from the default so renders before startup wiring still
// produce styled output.
var (
	styleTitle    lipgloss.Style
	styleReadout  lipgloss.Style
	styleWarning  lipgloss.Style
	styleCritical lipgloss.Style
	styleAlarm    lipgloss.Style
	styleAccent   lipgloss.Style
	styleMuted    lipgloss.Style
	styleFooter   lipgloss.Style
	styleFrame    lipgloss.Style
)

func init() {
	ApplyTheme(HackerTheme)
}
