package widgets

import (
	"strings"
	"testing"
)

func chartLines(t *testing.T, cfg ChartConfig) []string {
	t.Helper()
	out := RenderChart(cfg)
	if out == "" {
		t.Fatal("RenderChart returned empty string")
	}
	return strings.Split(out, "\n")
}

// TestRenderChartDimensions verifies the output is exactly Height lines of
// Width cells.
func TestRenderChartDimensions(t *testing.T) {
	cfg := ChartConfig{
		Width:  20,
		Height: 5,
		Series: []Series{{Name: "RAM", Data: []float64{10, 50, 90, 30}}},
	}

	lines := chartLines(t, cfg)
	if len(lines) != 5 {
		t.Fatalf("line count = %d, want 5", len(lines))
	}
	for i, line := range lines {
		if got := len([]rune(line)); got != 20 {
			t.Errorf("line %d width = %d, want 20", i, got)
		}
	}
}

// TestRenderChartFlatSeriesPlacement verifies vertical placement on the
// default 0-100 scale: a flat 100 series draws in the top row, a flat 0
// series in the bottom row.
func TestRenderChartFlatSeriesPlacement(t *testing.T) {
	data := make([]float64, 40)

	t.Run("pegged high", func(t *testing.T) {
		for i := range data {
			data[i] = 100
		}
		lines := chartLines(t, ChartConfig{Width: 20, Height: 4, Series: []Series{{Data: data}}})

		if strings.TrimSpace(lines[0]) == "" {
			t.Error("top row empty for a flat 100 series")
		}
		for i := 1; i < len(lines); i++ {
			if strings.TrimSpace(lines[i]) != "" {
				t.Errorf("row %d not empty for a flat 100 series: %q", i, lines[i])
			}
		}
	})

	t.Run("flat zero", func(t *testing.T) {
		for i := range data {
			data[i] = 0
		}
		lines := chartLines(t, ChartConfig{Width: 20, Height: 4, Series: []Series{{Data: data}}})

		last := len(lines) - 1
		if strings.TrimSpace(lines[last]) == "" {
			t.Error("bottom row empty for a flat 0 series")
		}
		for i := 0; i < last; i++ {
			if strings.TrimSpace(lines[i]) != "" {
				t.Errorf("row %d not empty for a flat 0 series: %q", i, lines[i])
			}
		}
	})
}

// TestRenderChartRecentAtRightEdge verifies a short series occupies the
// right side of the chart.
func TestRenderChartRecentAtRightEdge(t *testing.T) {
	lines := chartLines(t, ChartConfig{
		Width:  10,
		Height: 2,
		Series: []Series{{Data: []float64{50, 50}}},
	})

	for _, line := range lines {
		runes := []rune(line)
		for x := 0; x < 8; x++ {
			if runes[x] != ' ' {
				t.Errorf("cell %d occupied, want short series at right edge only: %q", x, line)
			}
		}
	}
}

// TestRenderChartTwoSeries verifies both series land on the canvas.
func TestRenderChartTwoSeries(t *testing.T) {
	high := make([]float64, 40)
	low := make([]float64, 40)
	for i := range high {
		high[i] = 95
		low[i] = 5
	}

	lines := chartLines(t, ChartConfig{
		Width:  20,
		Height: 6,
		Series: []Series{
			{Name: "RAM", Data: high},
			{Name: "Swap", Data: low},
		},
	})

	if strings.TrimSpace(lines[0]) == "" {
		t.Error("high series missing from top row")
	}
	if strings.TrimSpace(lines[len(lines)-1]) == "" {
		t.Error("low series missing from bottom row")
	}
}

func TestRenderChartDegenerate(t *testing.T) {
	if got := RenderChart(ChartConfig{Width: 0, Height: 5}); got != "" {
		t.Errorf("zero width chart = %q, want empty", got)
	}
	if got := RenderChart(ChartConfig{Width: 5, Height: 0}); got != "" {
		t.Errorf("zero height chart = %q, want empty", got)
	}

	// No series at all still renders a blank canvas of the right size.
	lines := chartLines(t, ChartConfig{Width: 5, Height: 2})
	if len(lines) != 2 {
		t.Errorf("blank chart lines = %d, want 2", len(lines))
	}
}

func TestRenderChartLegend(t *testing.T) {
	legend := RenderChartLegend([]Series{{Name: "RAM"}, {Name: "Swap"}})
	if !strings.Contains(legend, "RAM") || !strings.Contains(legend, "Swap") {
		t.Errorf("legend missing series names: %q", legend)
	}
}
