package diagram_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gocba/internal/diagram"
	"github.com/alexiusacademia/gocba/internal/load"
)

func TestDrawBeamSketch(t *testing.T) {
	sketch := diagram.DrawBeamSketch(
		[]float64{0, 10, 20},
		[]load.Load{
			load.Uniform{Magnitude: 500, Start: 0, End: 20},
			load.Triangular{MagnitudeStart: 0, MagnitudeEnd: 300, Start: 12, End: 18},
		},
	)

	// One marker per support, one row per load.
	assert.Equal(t, 3, strings.Count(sketch, "▲"))
	assert.Contains(t, sketch, "▼")
	assert.Contains(t, sketch, "▓")
	assert.Contains(t, sketch, "uniform 500")
	assert.Contains(t, sketch, "triangular 0")
}

func TestDrawBeamSketchDegenerate(t *testing.T) {
	assert.Empty(t, diagram.DrawBeamSketch([]float64{5}, nil))
	assert.Empty(t, diagram.DrawBeamSketch([]float64{5, 5}, nil))
}

func TestDrawSummaryBox(t *testing.T) {
	box := diagram.DrawSummaryBox("RESULTS", []string{"R = 25000 N", "M = 31250 N·m"})

	lines := strings.Split(strings.TrimRight(box, "\n"), "\n")
	require.Len(t, lines, 6)
	assert.Contains(t, lines[1], "RESULTS")
	assert.Contains(t, lines[3], "R = 25000 N")
	assert.Contains(t, lines[4], "M = 31250 N·m")
	assert.True(t, strings.HasPrefix(strings.TrimSpace(lines[0]), "╔"))
	assert.True(t, strings.HasPrefix(strings.TrimSpace(lines[5]), "╚"))
}

func TestPlotSeriesIncludesCaption(t *testing.T) {
	values := make([]float64, 50)
	for i := range values {
		values[i] = float64(i % 10)
	}
	out := diagram.PlotSeries(values, "Shear V (N)")
	assert.Contains(t, out, "Shear V (N)")
}
