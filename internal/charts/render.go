package charts

import (
	"fmt"
	"math"
	"strings"

	"github.com/guptarohit/asciigraph"
	"github.com/pterm/pterm"

	"snowchat/cli/internal/tabular"
	"snowchat/cli/internal/terminal"
)

const (
	plotHeight = 12
	plotWidth  = 64
	maxBarLen  = 40
)

// plotWidthFor clamps the plot width to the current terminal, leaving room
// for the axis gutter. Narrow terminals still get a usable plot.
func plotWidthFor() int {
	w := terminal.Width() - 16
	if w > plotWidth {
		w = plotWidth
	}
	if w < 20 {
		w = 20
	}
	return w
}

// renderLine draws the Y series indexed by X as an ascii line plot.
func renderLine(t *tabular.Table, x, y string) {
	labels, values := Series(t, x, y)
	if len(values) == 0 {
		pterm.Println("No numeric data to chart.")
		return
	}
	plot := asciigraph.Plot(values,
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidthFor()),
		asciigraph.Caption(fmt.Sprintf("%s by %s", y, x)),
	)
	pterm.Println(plot)
	printAxisLabels(labels)
}

// renderArea draws the same series as the line chart but fills the region
// under the curve, the terminal approximation of an area chart.
func renderArea(t *tabular.Table, x, y string) {
	labels, values := Series(t, x, y)
	if len(values) == 0 {
		pterm.Println("No numeric data to chart.")
		return
	}
	pterm.Println(areaPlot(values, plotHeight))
	pterm.Println(pterm.Gray(fmt.Sprintf("%s by %s (area)", y, x)))
	printAxisLabels(labels)
}

// renderBar draws one vertical bar per X value with height proportional
// to Y.
func renderBar(t *tabular.Table, x, y string) {
	labels, values := Series(t, x, y)
	if len(values) == 0 {
		pterm.Println("No numeric data to chart.")
		return
	}
	scaled := ScaleToBars(values, maxBarLen)
	bars := make([]pterm.Bar, len(values))
	for i := range values {
		bars[i] = pterm.Bar{Label: labels[i], Value: scaled[i]}
	}
	_ = pterm.DefaultBarChart.
		WithHorizontal().
		WithBars(bars).
		Render()
	pterm.Println(pterm.Gray(fmt.Sprintf("%s by %s (bar lengths proportional to value)", y, x)))
}

// renderPie shows each X label's share of the Y total as a proportional
// horizontal bar with a percentage, the terminal stand-in for a pie chart.
func renderPie(t *tabular.Table, x, y string) {
	labels, values := Series(t, x, y)
	if len(values) == 0 {
		pterm.Println("No numeric data to chart.")
		return
	}
	var total float64
	for _, v := range values {
		total += math.Abs(v)
	}
	if total == 0 {
		pterm.Println("All values are zero; nothing to chart.")
		return
	}
	scaled := ScaleToBars(values, maxBarLen)
	bars := make([]pterm.Bar, len(values))
	for i, v := range values {
		share := math.Abs(v) / total * 100
		bars[i] = pterm.Bar{
			Label: fmt.Sprintf("%s (%.1f%%)", labels[i], share),
			Value: scaled[i],
		}
	}
	_ = pterm.DefaultBarChart.
		WithHorizontal().
		WithBars(bars).
		Render()
}

// renderScatter plots (X, Y) pairs on a dot canvas.
func renderScatter(t *tabular.Table, x, y string) {
	plot, labels, ok := scatterForTable(t, x, y)
	if !ok {
		pterm.Println("No numeric data to chart.")
		return
	}
	pterm.Println(plot)
	printAxisLabels(labels)
	pterm.Println(pterm.Gray(fmt.Sprintf("x: %s, y: %s", x, y)))
}

// scatterForTable computes the scatter canvas for the chosen columns.
// Numeric X cells plot directly. An X column with no numeric cells, such as
// a year column rewritten to labels, falls back to row-order positions so
// the points still plot, with the labels kept for the axis line.
func scatterForTable(t *tabular.Table, x, y string) (plot string, labels []string, ok bool) {
	xs, ys := Points(t, x, y)
	if len(xs) == 0 {
		labels, ys = Series(t, x, y)
		if len(ys) == 0 {
			return "", nil, false
		}
		xs = make([]float64, len(ys))
		for i := range xs {
			xs[i] = float64(i)
		}
	}
	return scatterPlot(xs, ys, plotWidthFor(), plotHeight), labels, true
}

// areaPlot renders values as columns filled from the baseline up.
func areaPlot(values []float64, height int) string {
	scaled := ScaleToBars(values, height)
	var b strings.Builder
	for row := height; row >= 1; row-- {
		for _, h := range scaled {
			if h >= row {
				b.WriteString("█")
			} else {
				b.WriteString(" ")
			}
		}
		b.WriteString("\n")
	}
	b.WriteString(strings.Repeat("─", len(values)))
	return b.String()
}

// scatterPlot maps point pairs onto a width×height dot grid.
func scatterPlot(xs, ys []float64, width, height int) string {
	minX, maxX := minMax(xs)
	minY, maxY := minMax(ys)

	grid := make([][]rune, height)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", width))
	}

	for i := range xs {
		col := scalePos(xs[i], minX, maxX, width-1)
		row := scalePos(ys[i], minY, maxY, height-1)
		grid[height-1-row][col] = '•'
	}

	var b strings.Builder
	for _, line := range grid {
		b.WriteString("│")
		b.WriteString(string(line))
		b.WriteString("\n")
	}
	b.WriteString("└")
	b.WriteString(strings.Repeat("─", width))
	return b.String()
}

// scalePos maps v from [min, max] onto [0, size]. A degenerate range maps
// everything to 0.
func scalePos(v, min, max float64, size int) int {
	if max == min {
		return 0
	}
	pos := int((v - min) / (max - min) * float64(size))
	if pos < 0 {
		pos = 0
	}
	if pos > size {
		pos = size
	}
	return pos
}

func minMax(vals []float64) (min, max float64) {
	min, max = vals[0], vals[0]
	for _, v := range vals[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}

// printAxisLabels shows the X labels under a plot when they fit on one line.
func printAxisLabels(labels []string) {
	if len(labels) == 0 {
		return
	}
	joined := strings.Join(labels, "  ")
	if len(joined) <= plotWidth+8 {
		pterm.Println(pterm.Gray(joined))
	}
}
