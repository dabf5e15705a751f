package load_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gocba/internal/load"
)

func TestUniformResultant(t *testing.T) {
	u := load.Uniform{Magnitude: 1000, Start: 2, End: 6}

	force, centroid := u.Resultant(2, 6)
	assert.InDelta(t, 4000.0, force, 1e-9)
	assert.InDelta(t, 4.0, centroid, 1e-9)

	// Clipped to a sub-interval.
	force, centroid = u.Resultant(3, 5)
	assert.InDelta(t, 2000.0, force, 1e-9)
	assert.InDelta(t, 4.0, centroid, 1e-9)
}

func TestTriangularIntensity(t *testing.T) {
	rising := load.Triangular{MagnitudeStart: 0, MagnitudeEnd: 300, Start: 0, End: 6}
	assert.InDelta(t, 0.0, rising.Intensity(0), 1e-9)
	assert.InDelta(t, 150.0, rising.Intensity(3), 1e-9)
	assert.InDelta(t, 300.0, rising.Intensity(6), 1e-9)

	falling := load.Triangular{MagnitudeStart: 300, MagnitudeEnd: 0, Start: 0, End: 6}
	assert.InDelta(t, 300.0, falling.Intensity(0), 1e-9)
	assert.InDelta(t, 0.0, falling.Intensity(6), 1e-9)
}

func TestTriangularResultant(t *testing.T) {
	rising := load.Triangular{MagnitudeStart: 0, MagnitudeEnd: 300, Start: 0, End: 6}

	force, centroid := rising.Resultant(0, 6)
	assert.InDelta(t, 900.0, force, 1e-9)
	// Centroid of a rising triangle sits at 2/3 of the length.
	assert.InDelta(t, 4.0, centroid, 1e-9)
}

// A uniform load covering the whole span contributes wL³/4 on either side.
func TestUniformFullSpanComponent(t *testing.T) {
	u := load.Uniform{Magnitude: 1000, Start: 0, End: 10}

	left := u.ComponentLeftSpan(10, 0, 10, 0)
	right := u.ComponentRightSpan(10, 0, 10, 0)

	require.InDelta(t, 250000.0, left, 1e-6)
	require.InDelta(t, 250000.0, right, 1e-6)
}

// A rising triangle c·x over the full left span integrates to 2cL⁴/15.
func TestTriangularFullSpanComponent(t *testing.T) {
	tri := load.Triangular{MagnitudeStart: 0, MagnitudeEnd: 100, Start: 0, End: 10}

	left := tri.ComponentLeftSpan(10, 0, 10, 0)
	require.InDelta(t, 2.0/15.0*10*1e4, left, 1e-6)
}

// Intensity must be evaluated at the absolute coordinate: a load shifted
// together with its span produces the same component.
func TestComponentUsesAbsoluteCoordinate(t *testing.T) {
	atOrigin := load.Triangular{MagnitudeStart: 0, MagnitudeEnd: 100, Start: 0, End: 10}
	shifted := load.Triangular{MagnitudeStart: 0, MagnitudeEnd: 100, Start: 10, End: 20}

	ref := atOrigin.ComponentLeftSpan(10, 0, 10, 0)
	got := shifted.ComponentLeftSpan(10, 0, 10, 10)
	require.InDelta(t, ref, got, 1e-9)

	// Evaluating the shifted load as if it started at the span origin
	// would integrate the wrong part of the ramp.
	wrong := shifted.ComponentLeftSpan(10, 0, 10, 0)
	require.Greater(t, math.Abs(ref-wrong), 1.0)
}
