// Package banner renders a one-shot snapshot of the current reading for
// non-interactive use: a single sample printed to stdout and the process
// exits. Suitable for shell prompts and cron-style checks.
package banner

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/memglitch/collectors/memory"
	"gitlab.com/tinyland/lab/memglitch/display/widgets"
	"gitlab.com/tinyland/lab/memglitch/internal/format"
	"gitlab.com/tinyland/lab/memglitch/status"
)

// Render formats a snapshot of the given reading sized to the terminal
// width. Sparklines appear only when restored history gives them something
// to show.
func Render(data *memory.Data, width int) string {
	if data == nil {
		return "no reading available\n"
	}
	if width <= 0 {
		width = 80
	}

	gaugeWidth := width - 30
	if gaugeWidth < 10 {
		gaugeWidth = 10
	}
	if gaugeWidth > 40 {
		gaugeWidth = 40
	}

	var lines []string

	lines = append(lines, widgets.RenderGauge(widgets.GaugeConfig{
		Width:       gaugeWidth,
		Percent:     data.MemoryPct,
		Label:       "RAM ",
		ShowPercent: true,
	}))
	lines = append(lines, widgets.RenderGauge(widgets.GaugeConfig{
		Width:       gaugeWidth,
		Percent:     data.SwapPct,
		Label:       "Swap",
		ShowPercent: true,
	}))

	// Sparklines once there is more than a single restored sample.
	if len(data.MemoryHistory) > 1 {
		sparkWidth := gaugeWidth + 5
		lines = append(lines, "")
		lines = append(lines, "RAM  "+widgets.RenderSparkline(data.MemoryHistory, sparkWidth, lipgloss.Color("#00FF00")))
		lines = append(lines, "Swap "+widgets.RenderSparkline(data.SwapHistory, sparkWidth, lipgloss.Color("#FF6400")))
	}

	totals := fmt.Sprintf("Memory: %s / %s  Swap: %s / %s",
		format.Bytes(data.UsedBytes),
		format.Bytes(data.TotalBytes),
		format.Bytes(data.SwapUsedBytes),
		format.Bytes(data.SwapTotalBytes),
	)
	lines = append(lines, "", format.TruncateRunes(totals, width))

	if data.Critical {
		alarm := lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF0000")).
			Render("WARNING: CRITICAL MEMORY USAGE!")
		lines = append(lines, alarm)
	} else {
		lines = append(lines, "Status: "+status.Evaluate(data.MemoryPct).String())
	}

	return strings.Join(lines, "\n") + "\n"
}
