package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Series is one line on the chart.
type Series struct {
	// Name is the legend label.
	Name string
	// Color styles the series' dots. Empty means unstyled.
	Color lipgloss.Color
	// Data is the value sequence, oldest first. The most recent values
	// occupy the right edge of the chart.
	Data []float64
}

// ChartConfig controls the braille line chart.
type ChartConfig struct {
	// Width and Height are the chart dimensions in terminal cells. Each
	// cell holds a 2x4 grid of braille dots.
	Width, Height int
	// Min and Max bound the value axis. Equal values default to 0-100,
	// the percentage domain.
	Min, Max float64
	// Series are drawn in order; where lines overlap in a cell, the
	// later series' color wins.
	Series []Series
}

// Braille dot bit positions for a 2x4 cell, indexed [y][x].
var brailleBits = [4][2]rune{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// RenderChart renders the configured series as a braille line chart.
// Consecutive samples are joined by filling the vertical span between
// them, so the output reads as a continuous line rather than scattered
// dots. The returned string has exactly Height lines of Width cells.
func RenderChart(cfg ChartConfig) string {
	width := cfg.Width
	height := cfg.Height
	if width <= 0 || height <= 0 {
		return ""
	}

	minVal := cfg.Min
	maxVal := cfg.Max
	if minVal == maxVal {
		minVal, maxVal = 0, 100
	}

	cols := width * 2
	rows := height * 4

	// dots[cellY][cellX] accumulates braille bits; owner tracks which
	// series most recently drew into the cell, for coloring.
	dots := make([][]rune, height)
	owner := make([][]int, height)
	for y := range dots {
		dots[y] = make([]rune, width)
		owner[y] = make([]int, width)
		for x := range owner[y] {
			owner[y][x] = -1
		}
	}

	setDot := func(dotX, dotY, series int) {
		if dotX < 0 || dotX >= cols || dotY < 0 || dotY >= rows {
			return
		}
		cellX, cellY := dotX/2, dotY/4
		dots[cellY][cellX] |= brailleBits[dotY%4][dotX%2]
		owner[cellY][cellX] = series
	}

	toDotY := func(v float64) int {
		norm := (v - minVal) / (maxVal - minVal)
		if norm < 0 {
			norm = 0
		}
		if norm > 1 {
			norm = 1
		}
		return int((1 - norm) * float64(rows-1))
	}

	for si, s := range cfg.Series {
		data := s.Data
		if len(data) == 0 {
			continue
		}
		if len(data) > cols {
			data = data[len(data)-cols:]
		}

		// Newest sample sits at the right edge.
		offset := cols - len(data)
		prevY := -1
		for i, v := range data {
			x := offset + i
			y := toDotY(v)

			if prevY < 0 {
				setDot(x, y, si)
			} else {
				// Join to the previous sample with a vertical run so the
				// line stays connected through steep changes.
				lo, hi := y, prevY
				if lo > hi {
					lo, hi = hi, lo
				}
				for fy := lo; fy <= hi; fy++ {
					setDot(x, fy, si)
				}
			}
			prevY = y
		}
	}

	// Pre-build one style per series.
	styles := make([]lipgloss.Style, len(cfg.Series))
	for i, s := range cfg.Series {
		if s.Color != "" {
			styles[i] = lipgloss.NewStyle().Foreground(s.Color)
		}
	}

	var lines []string
	for y := 0; y < height; y++ {
		var sb strings.Builder
		for x := 0; x < width; x++ {
			if dots[y][x] == 0 {
				sb.WriteRune(' ')
				continue
			}
			cell := string(0x2800 + dots[y][x])
			if si := owner[y][x]; si >= 0 && cfg.Series[si].Color != "" {
				cell = styles[si].Render(cell)
			}
			sb.WriteString(cell)
		}
		lines = append(lines, sb.String())
	}

	return strings.Join(lines, "\n")
}

// RenderChartLegend renders a one-line legend for the given series:
// "⣿ RAM  ⣿ Swap", each marker in its series color.
func RenderChartLegend(series []Series) string {
	var parts []string
	for _, s := range series {
		marker := "⣿"
		if s.Color != "" {
			marker = lipgloss.NewStyle().Foreground(s.Color).Render(marker)
		}
		parts = append(parts, marker+" "+s.Name)
	}
	return strings.Join(parts, "  ")
}
