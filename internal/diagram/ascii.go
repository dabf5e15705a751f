package diagram

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/alexiusacademia/gocba/internal/load"
)

// PlotSeries renders one result field (shear, moment or deflection) as a
// terminal line chart.
func PlotSeries(values []float64, caption string) string {
	return asciigraph.Plot(values,
		asciigraph.Height(12),
		asciigraph.Width(72),
		asciigraph.Caption(caption),
	)
}

const sketchWidth = 64

// DrawBeamSketch creates an ASCII elevation of the beam: one row per load
// drawn over its extent, then the beam line, the supports and their
// positions.
func DrawBeamSketch(supports []float64, loads []load.Load) string {
	if len(supports) < 2 {
		return ""
	}

	first := supports[0]
	last := supports[len(supports)-1]
	length := last - first
	if length <= 0 {
		return ""
	}

	col := func(pos float64) int {
		c := int((pos - first) / length * float64(sketchWidth-1))
		if c < 0 {
			c = 0
		}
		if c > sketchWidth-1 {
			c = sketchWidth - 1
		}
		return c
	}

	var sb strings.Builder
	sb.WriteString("\n")

	for _, ld := range loads {
		start, end := ld.Range()
		from, to := col(start), col(end)
		if to <= from {
			to = from + 1
			if to > sketchWidth-1 {
				from, to = sketchWidth-2, sketchWidth-1
			}
		}

		row := []rune(strings.Repeat(" ", sketchWidth))
		for c := from; c <= to; c++ {
			row[c] = loadGlyph(ld, c, from, to)
		}
		sb.WriteString(fmt.Sprintf("  %s  %v\n", string(row), ld))
	}

	sb.WriteString(fmt.Sprintf("  %s\n", strings.Repeat("═", sketchWidth)))

	supportRow := []rune(strings.Repeat(" ", sketchWidth))
	for _, pos := range supports {
		supportRow[col(pos)] = '▲'
	}
	sb.WriteString(fmt.Sprintf("  %s\n", string(supportRow)))

	// Position labels under the supports. Later labels overwrite earlier
	// ones on very narrow spans.
	labelRow := []rune(strings.Repeat(" ", sketchWidth+12))
	for _, pos := range supports {
		for i, r := range fmt.Sprintf("%g", pos) {
			if c := col(pos) + i; c < len(labelRow) {
				labelRow[c] = r
			}
		}
	}
	sb.WriteString(fmt.Sprintf("  %s\n", strings.TrimRight(string(labelRow), " ")))

	return sb.String()
}

// loadGlyph picks the drawing character for one column of a load row.
// Uniform loads are a flat row of arrows; triangular loads are shaded
// towards the high-intensity end.
func loadGlyph(ld load.Load, c, from, to int) rune {
	tri, ok := ld.(load.Triangular)
	if !ok {
		return '▼'
	}

	shades := []rune("░▒▓")
	t := float64(c-from) / float64(to-from)
	if tri.MagnitudeStart > tri.MagnitudeEnd {
		t = 1 - t
	}
	i := int(t * float64(len(shades)))
	if i >= len(shades) {
		i = len(shades) - 1
	}
	return shades[i]
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len(title)
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-2, title))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-2, line))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}
