// Package tui implements the interactive dashboard: live gauges, a
// scrolling usage chart, and the critical usage alarm, with occasional
// glitch interference on the header text.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"gitlab.com/tinyland/lab/memglitch/collectors/memory"
	"gitlab.com/tinyland/lab/memglitch/display/glitch"
	"gitlab.com/tinyland/lab/memglitch/display/widgets"
	"gitlab.com/tinyland/lab/memglitch/internal/format"
	"gitlab.com/tinyland/lab/memglitch/status"
)

const titleText = "MEMORY MONITOR"

// Mouse zone identifiers.
const (
	zoneGauge = "gauge"
	zoneChart = "chart"
)

// DataMsg delivers a fresh reading to the model. The runner bridge sends
// one per collection cycle.
type DataMsg struct {
	Data      *memory.Data
	Timestamp time.Time
}

// Model is the top-level Bubbletea model for the dashboard.
type Model struct {
	width       int
	height      int
	ready       bool
	paused      bool
	helpVisible bool

	themeName     string
	glitcher      *glitch.Transformer
	glitchEnabled bool

	data        *memory.Data
	lastUpdated time.Time
}

// ModelOption customizes a Model at construction time.
type ModelOption func(*Model)

// WithTheme selects the starting theme preset by name.
func WithTheme(name string) ModelOption {
	return func(m *Model) {
		m.themeName = GetThemePreset(name).Name
	}
}

// WithGlitch enables or disables the glitch text effect.
func WithGlitch(enabled bool) ModelOption {
	return func(m *Model) {
		m.glitchEnabled = enabled
	}
}

// WithGlitchRand injects a deterministic randomness source for the glitch
// effect. Used by tests.
func WithGlitchRand(randFloat func() float64) ModelOption {
	return func(m *Model) {
		m.glitcher = glitch.New(randFloat)
	}
}

// NewModel returns an initialized Model with the hacker theme active.
func NewModel(opts ...ModelOption) Model {
	m := Model{
		themeName:     HackerTheme.Name,
		glitcher:      glitch.New(nil),
		glitchEnabled: true,
	}
	for _, opt := range opts {
		opt(&m)
	}
	ApplyTheme(GetThemePreset(m.themeName))
	return m
}

// Init implements tea.Model. No initial commands are needed; data arrives
// from the collector bridge.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model. It handles key presses, mouse clicks on
// marked zones, window resizes, and incoming readings.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Pause):
			m.paused = !m.paused
		case key.Matches(msg, keys.Theme):
			m.cycleTheme()
		case key.Matches(msg, keys.Glitch):
			m.glitchEnabled = !m.glitchEnabled
		case key.Matches(msg, keys.Help):
			m.helpVisible = !m.helpVisible
		}

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionRelease && msg.Button == tea.MouseButtonLeft {
			switch {
			case zone.Get(zoneGauge).InBounds(msg):
				m.paused = !m.paused
			case zone.Get(zoneChart).InBounds(msg):
				m.cycleTheme()
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

	case DataMsg:
		// The glitch effect rolls once per cycle even while paused, so
		// the frozen frame still flickers.
		if m.glitchEnabled {
			m.glitcher.Roll()
		}
		if !m.paused {
			m.data = msg.Data
			m.lastUpdated = msg.Timestamp
		}
	}

	return m, nil
}

func (m *Model) cycleTheme() {
	next := NextTheme(m.themeName)
	m.themeName = next.Name
	ApplyTheme(next)
}

// ThemeName returns the active theme preset name.
func (m Model) ThemeName() string {
	return m.themeName
}

// Paused reports whether display updates are frozen.
func (m Model) Paused() bool {
	return m.paused
}

// View implements tea.Model. The whole frame passes through zone.Scan so
// marked regions become clickable.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	sections := []string{
		m.renderTitle(),
		m.renderReadout(),
		zone.Mark(zoneGauge, m.renderHashBar()),
		zone.Mark(zoneChart, m.renderChart()),
		m.renderTotals(),
		m.renderFooter(),
	}

	frame := lipgloss.JoinVertical(lipgloss.Left, sections...)
	return zone.Scan(frame)
}

// renderTitle renders the header, with glitch interference when the
// effect is active this cycle.
func (m Model) renderTitle() string {
	title := titleText
	if m.glitchEnabled {
		title = m.glitcher.Apply(title)
	}
	line := styleTitle.Render(title)
	if m.paused {
		line += styleMuted.Render("  [PAUSED]")
	}
	return line
}

// renderReadout renders the percentage lines colored by severity.
func (m Model) renderReadout() string {
	if m.data == nil {
		return styleMuted.Render("waiting for first sample...")
	}

	memLine := fmt.Sprintf("RAM:  %5.1f%%", m.data.MemoryPct)
	swapLine := fmt.Sprintf("Swap: %5.1f%%", m.data.SwapPct)

	styled := levelStyle(status.Evaluate(m.data.MemoryPct)).Render(memLine)
	return styled + "\n" + styleReadout.Render(swapLine)
}

// renderHashBar renders the bracketed hash gauge for memory usage. The
// bar text glitches before color is applied so corrupted glyphs inherit
// the severity color.
func (m Model) renderHashBar() string {
	if m.data == nil {
		return ""
	}

	barWidth := m.width - 4
	if barWidth > 50 {
		barWidth = 50
	}
	if barWidth < 10 {
		barWidth = 10
	}

	bar := widgets.RenderHashBar(m.data.MemoryPct, barWidth)
	if m.glitchEnabled {
		bar = m.glitcher.Apply(bar)
	}
	return levelStyle(status.Evaluate(m.data.MemoryPct)).Render(bar)
}

// renderChart renders the scrolling history chart with both series.
func (m Model) renderChart() string {
	if m.data == nil || len(m.data.MemoryHistory) == 0 {
		return ""
	}

	preset := GetThemePreset(m.themeName)

	chartWidth := m.width - 6
	if chartWidth < 20 {
		chartWidth = 20
	}
	if chartWidth > memory.MaxHistorySamples {
		chartWidth = memory.MaxHistorySamples
	}

	chartHeight := m.height - 14
	if chartHeight < 4 {
		chartHeight = 4
	}
	if chartHeight > 10 {
		chartHeight = 10
	}

	series := []widgets.Series{
		{Name: "Swap", Color: preset.Swap, Data: m.data.SwapHistory},
		{Name: "RAM", Color: preset.Primary, Data: m.data.MemoryHistory},
	}

	chart := widgets.RenderChart(widgets.ChartConfig{
		Width:  chartWidth,
		Height: chartHeight,
		Min:    0,
		Max:    100,
		Series: series,
	})
	legend := widgets.RenderChartLegend(series)

	return styleFrame.Render(chart + "\n" + legend)
}

// renderTotals renders absolute usage and, when tripped, the alarm line.
func (m Model) renderTotals() string {
	if m.data == nil {
		return ""
	}

	totals := fmt.Sprintf("Memory: %s / %s   Swap: %s / %s",
		format.Gibibytes(m.data.UsedBytes),
		format.Gibibytes(m.data.TotalBytes),
		format.Gibibytes(m.data.SwapUsedBytes),
		format.Gibibytes(m.data.SwapTotalBytes),
	)
	line := styleAccent.Render(totals)

	if m.data.Critical {
		alarm := "WARNING: CRITICAL MEMORY USAGE!"
		if m.glitchEnabled {
			alarm = m.glitcher.Apply(alarm)
		}
		line += "\n" + styleAlarm.Render(alarm)
	}
	return line
}

// renderFooter renders the help line and last updated timestamp.
func (m Model) renderFooter() string {
	var parts []string

	if m.helpVisible {
		var rows []string
		for _, group := range keys.FullHelp() {
			var cols []string
			for _, b := range group {
				cols = append(cols, b.Help().Key+": "+b.Help().Desc)
			}
			rows = append(rows, strings.Join(cols, " | "))
		}
		parts = append(parts, strings.Join(rows, "\n"))
	} else {
		var cols []string
		for _, b := range keys.ShortHelp() {
			cols = append(cols, b.Help().Key+": "+b.Help().Desc)
		}
		parts = append(parts, strings.Join(cols, " | "))
	}

	if !m.lastUpdated.IsZero() {
		parts = append(parts, "Updated: "+m.lastUpdated.Format("15:04:05")+" | theme: "+m.themeName)
	}

	// Clamp each line to the window so the help text never wraps on
	// narrow terminals.
	lines := strings.Split(strings.Join(parts, "\n"), "\n")
	for i, line := range lines {
		lines[i] = format.TruncateWithEllipsis(line, m.width)
	}

	return styleFooter.Render(strings.Join(lines, "\n"))
}

// levelStyle maps a severity level to its display style.
func levelStyle(level status.Level) lipgloss.Style {
	switch level {
	case status.LevelCritical:
		return styleCritical
	case status.LevelWarning:
		return styleWarning
	default:
		return styleReadout
	}
}
