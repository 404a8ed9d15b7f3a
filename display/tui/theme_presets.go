package tui

import "github.com/charmbracelet/lipgloss"

// ThemePreset defines a complete color scheme that can be applied at
// runtime to change the dashboard appearance.
type ThemePreset struct {
	Name        string
	Description string
	// Colors
	Primary    lipgloss.Color
	Swap       lipgloss.Color
	Warning    lipgloss.Color
	Danger     lipgloss.Color
	Accent     lipgloss.Color
	Muted      lipgloss.Color
	Background lipgloss.Color
	// Layout
	ShowBorders bool
}

// Predefined theme presets.
var (
	// HackerTheme is the default phosphor-green terminal look.
	HackerTheme = ThemePreset{
		Name:        "hacker",
		Description: "Green phosphor terminal look",
		Primary:     lipgloss.Color("#00FF00"),
		Swap:        lipgloss.Color("#FF6400"),
		Warning:     lipgloss.Color("#FFFF00"),
		Danger:      lipgloss.Color("#FF0000"),
		Accent:      lipgloss.Color("#00FFFF"),
		Muted:       lipgloss.Color("#008000"),
		Background:  lipgloss.Color("#000F00"),
		ShowBorders: true,
	}

	// AmberTheme mimics an amber monochrome CRT.
	AmberTheme = ThemePreset{
		Name:        "amber",
		Description: "Amber monochrome CRT",
		Primary:     lipgloss.Color("#FFB000"),
		Swap:        lipgloss.Color("#FF6A00"),
		Warning:     lipgloss.Color("#FFD700"),
		Danger:      lipgloss.Color("#FF3300"),
		Accent:      lipgloss.Color("#FFE8B0"),
		Muted:       lipgloss.Color("#805800"),
		Background:  lipgloss.Color("#100A00"),
		ShowBorders: true,
	}

	// IceTheme is a cold blue palette with borders off.
	IceTheme = ThemePreset{
		Name:        "ice",
		Description: "Cold blue minimal theme",
		Primary:     lipgloss.Color("#00BFFF"),
		Swap:        lipgloss.Color("#B066FF"),
		Warning:     lipgloss.Color("#FFE066"),
		Danger:      lipgloss.Color("#FF5577"),
		Accent:      lipgloss.Color("#AAF0FF"),
		Muted:       lipgloss.Color("#335577"),
		Background:  lipgloss.Color("#000A14"),
		ShowBorders: false,
	}
)

// allPresets is the canonical list of available theme presets.
var allPresets = []ThemePreset{HackerTheme, AmberTheme, IceTheme}

// GetThemePreset returns the theme preset matching the given name.
// Unknown names return HackerTheme as the default.
func GetThemePreset(name string) ThemePreset {
	for _, p := range allPresets {
		if p.Name == name {
			return p
		}
	}
	return HackerTheme
}

// AllThemePresets returns all available theme presets.
func AllThemePresets() []ThemePreset {
	out := make([]ThemePreset, len(allPresets))
	copy(out, allPresets)
	return out
}

// NextTheme returns the preset following the named one, wrapping around.
// Unknown names advance from the default.
func NextTheme(name string) ThemePreset {
	for i, p := range allPresets {
		if p.Name == name {
			return allPresets[(i+1)%len(allPresets)]
		}
	}
	return allPresets[1%len(allPresets)]
}

// ApplyTheme updates the package-level style variables to use the given
// preset's colors. This allows runtime theme switching without restarting
// the application.
func ApplyTheme(preset ThemePreset) {
	styleTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(preset.Primary)

	styleReadout = lipgloss.NewStyle().
		Foreground(preset.Primary)

	styleWarning = lipgloss.NewStyle().
		Foreground(preset.Warning)

	styleCritical = lipgloss.NewStyle().
		Foreground(preset.Danger)

	styleAlarm = lipgloss.NewStyle().
		Bold(true).
		Foreground(preset.Danger).
		Blink(true)

	styleAccent = lipgloss.NewStyle().
		Foreground(preset.Accent)

	styleMuted = lipgloss.NewStyle().
		Foreground(preset.Muted)

	styleFooter = lipgloss.NewStyle().
		Foreground(preset.Muted).
		MarginTop(1)

	if preset.ShowBorders {
		// Border (not BorderStyle) so the per-side flags are set and
		// introspection agrees with what gets rendered.
		styleFrame = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(preset.Muted).
			Padding(0, 1)
	} else {
		styleFrame = lipgloss.NewStyle().
			Padding(0, 1)
	}
}
