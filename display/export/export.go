// Package export renders collected usage history to a PNG image. Charts
// are drawn at 2x resolution and downscaled with a Lanczos filter so the
// plot lines come out antialiased.
package export

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"

	"gitlab.com/tinyland/lab/memglitch/collectors/memory"
)

const (
	// Output dimensions. Drawing happens at double size.
	imageWidth  = 800
	imageHeight = 400
	superSample = 2

	marginPx = 40 * superSample
)

var (
	backgroundColor = color.NRGBA{R: 0x00, G: 0x0F, B: 0x00, A: 0xFF}
	gridColor       = color.NRGBA{R: 0x00, G: 0x40, B: 0x00, A: 0xFF}
	memoryColor     = color.NRGBA{R: 0x00, G: 0xFF, B: 0x00, A: 0xFF}
	swapColor       = color.NRGBA{R: 0xFF, G: 0x64, B: 0x00, A: 0xFF}
)

// WritePNG renders the memory and swap history from the given reading to
// the file at path. It fails when there is no history to plot.
func WritePNG(data *memory.Data, path string) error {
	if data == nil || len(data.MemoryHistory) == 0 {
		return fmt.Errorf("no history to export")
	}

	w := imageWidth * superSample
	h := imageHeight * superSample

	canvas := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(backgroundColor), image.Point{}, draw.Src)

	drawGrid(canvas, w, h)
	drawSeries(canvas, data.SwapHistory, swapColor, w, h)
	drawSeries(canvas, data.MemoryHistory, memoryColor, w, h)

	resized := imaging.Resize(canvas, imageWidth, imageHeight, imaging.Lanczos)
	if err := imaging.Save(resized, path); err != nil {
		return fmt.Errorf("saving chart image: %w", err)
	}
	return nil
}

// drawGrid paints horizontal reference lines at every 25%.
func drawGrid(img *image.NRGBA, w, h int) {
	plotH := h - 2*marginPx
	for pct := 0; pct <= 100; pct += 25 {
		y := marginPx + plotH - plotH*pct/100
		for x := marginPx; x < w-marginPx; x++ {
			img.SetNRGBA(x, y, gridColor)
		}
	}
}

// drawSeries plots one history series as a connected polyline. Values are
// on a fixed 0 to 100 scale.
func drawSeries(img *image.NRGBA, series []float64, c color.NRGBA, w, h int) {
	if len(series) < 2 {
		return
	}

	plotW := w - 2*marginPx
	plotH := h - 2*marginPx
	n := len(series)

	toPoint := func(i int) (int, int) {
		x := marginPx + plotW*i/(n-1)
		pct := series[i]
		if pct < 0 {
			pct = 0
		}
		if pct > 100 {
			pct = 100
		}
		y := marginPx + plotH - int(float64(plotH)*pct/100)
		return x, y
	}

	x0, y0 := toPoint(0)
	for i := 1; i < n; i++ {
		x1, y1 := toPoint(i)
		drawLine(img, x0, y0, x1, y1, c)
		x0, y0 = x1, y1
	}
}

// drawLine draws a thick line segment using Bresenham traversal.
func drawLine(img *image.NRGBA, x0, y0, x1, y1 int, c color.NRGBA) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		setThick(img, x0, y0, c)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// setThick paints a small square around the point so lines survive the
// downscale with visible weight.
func setThick(img *image.NRGBA, x, y int, c color.NRGBA) {
	for dy := 0; dy < superSample; dy++ {
		for dx := 0; dx < superSample; dx++ {
			img.SetNRGBA(x+dx, y+dy, c)
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
