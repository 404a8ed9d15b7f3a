// Package widgets provides the text renderers for the dashboard: the
// bracketed usage bar, the block gauge, the sparkline, and the braille
// line chart.
package widgets

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/memglitch/status"
)

// RenderHashBar renders the classic bracketed hash bar with the filled run
// centered inside the field:
//
//	[            ########            ]
//
// The output is plain text so the caller can pass it through the glitch
// transform before styling. width is the inner field width.
func RenderHashBar(percent float64, width int) string {
	if width <= 0 {
		width = 50
	}
	percent = math.Max(0, math.Min(100, percent))

	filled := int(percent / 100.0 * float64(width))
	if filled > width {
		filled = width
	}

	left := (width - filled) / 2
	right := width - filled - left

	return "[" + strings.Repeat(" ", left) + strings.Repeat("#", filled) + strings.Repeat(" ", right) + "]"
}

// GaugeConfig controls the block gauge used in compact snapshot output.
type GaugeConfig struct {
	// Width is the bar width in cells.
	Width int
	// Percent is the value from 0 to 100.
	Percent float64
	// Label is optional text shown to the left of the bar.
	Label string
	// ShowPercent controls whether "XX%" is appended.
	ShowPercent bool
	// Plain disables color styling (for piped output).
	Plain bool
}

// gaugeColor maps a percentage to a severity color using the fixed
// warning/critical thresholds.
func gaugeColor(percent float64) lipgloss.Color {
	switch status.Evaluate(percent) {
	case status.LevelCritical:
		return lipgloss.Color("#FF0000")
	case status.LevelWarning:
		return lipgloss.Color("#FFFF00")
	default:
		return lipgloss.Color("#00FF00")
	}
}

// RenderGauge renders a block-character gauge: [Label] ████░░░░ [XX%].
func RenderGauge(cfg GaugeConfig) string {
	percent := math.Max(0, math.Min(100, cfg.Percent))

	width := cfg.Width
	if width <= 0 {
		width = 20
	}

	filled := int(math.Round(percent / 100.0 * float64(width)))
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)

	if !cfg.Plain {
		bar = lipgloss.NewStyle().Foreground(gaugeColor(percent)).Render(bar)
	}

	var sb strings.Builder
	if cfg.Label != "" {
		sb.WriteString(cfg.Label)
		sb.WriteString(" ")
	}
	sb.WriteString(bar)
	if cfg.ShowPercent {
		sb.WriteString(fmt.Sprintf(" %5.1f%%", percent))
	}
	return sb.String()
}
