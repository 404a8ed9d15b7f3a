package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// sparkBlocks contains the 8 block characters used for sparkline
// rendering, lowest to highest.
var sparkBlocks = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// RenderSparkline renders a percentage series as a unicode sparkline on a
// fixed 0-100 scale, so the same value always maps to the same block no
// matter what else is in view. The most recent samples occupy the right
// edge; a series shorter than width is left-padded with spaces. An empty
// color skips styling.
func RenderSparkline(data []float64, width int, color lipgloss.Color) string {
	if len(data) == 0 || width <= 0 {
		return ""
	}

	if len(data) > width {
		data = data[len(data)-width:]
	}

	var runes []rune
	for _, v := range data {
		if v < 0 {
			v = 0
		}
		if v > 100 {
			v = 100
		}
		idx := int(v / 100.0 * float64(len(sparkBlocks)-1))
		runes = append(runes, sparkBlocks[idx])
	}

	spark := string(runes)
	if len(data) < width {
		spark = strings.Repeat(" ", width-len(data)) + spark
	}

	if color != "" {
		spark = lipgloss.NewStyle().Foreground(color).Render(spark)
	}
	return spark
}
