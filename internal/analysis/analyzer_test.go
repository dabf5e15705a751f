package analysis_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gocba/internal/analysis"
	"github.com/alexiusacademia/gocba/internal/load"
)

func TestNewValidation(t *testing.T) {
	uniform := load.Uniform{Magnitude: 1000, Start: 0, End: 5}

	_, err := analysis.New(nil, []float64{0, 5}, analysis.Options{})
	require.ErrorIs(t, err, analysis.ErrNoLoads)

	_, err = analysis.New([]load.Load{uniform}, []float64{5, 5}, analysis.Options{})
	require.ErrorIs(t, err, analysis.ErrTooFewSupports)
}

// Simply supported single span under uniform load: R = wL/2 and
// Mmax = wL²/8 at midspan.
func TestSingleSpanUniform(t *testing.T) {
	loads := []load.Load{load.Uniform{Magnitude: 10000, Start: 0, End: 5}}

	a, err := analysis.New(loads, []float64{0, 5}, analysis.Options{})
	require.NoError(t, err)
	require.Nil(t, a.Builder())

	res, err := a.Analyze()
	require.NoError(t, err)

	assert.InDelta(t, 25000.0, res.Reactions[0.0], 1.0)
	assert.InDelta(t, 25000.0, res.Reactions[5.0], 1.0)
	assert.Zero(t, res.SupportMoments[0.0])
	assert.Zero(t, res.SupportMoments[5.0])

	require.Len(t, res.MaxMomentPerSpan, 1)
	m := res.MaxMomentPerSpan[0]
	assert.InDelta(t, 31250.0, m.Value, 31250.0*0.005)
	assert.InDelta(t, 2.5, m.Position, 0.05)

	// Shear extreme sits at a support with magnitude wL/2.
	v := res.MaxShearPerSpan[0]
	assert.InDelta(t, 25000.0, math.Abs(v.Value), 25000.0*0.005)
}

// Deflection of a simply supported uniform span: δmax = 5wL⁴/(384EI).
func TestSingleSpanDeflection(t *testing.T) {
	loads := []load.Load{load.Uniform{Magnitude: 10000, Start: 0, End: 5}}

	a, err := analysis.New(loads, []float64{0, 5}, analysis.Options{
		Inertia:  138,    // cm⁴
		EModulus: 210000, // N/mm²
	})
	require.NoError(t, err)
	require.True(t, a.HasDeflection())

	res, err := a.Analyze()
	require.NoError(t, err)
	require.Len(t, res.MaxDeflectionPerSpan, 1)

	// w = 10 N/mm, L = 5000 mm, EI = 210000 · 138e4 N·mm².
	expected := 5.0 * 10 * math.Pow(5000, 4) / (384 * 210000 * 138e4)
	d := res.MaxDeflectionPerSpan[0]
	assert.InDelta(t, expected, math.Abs(d.Value), expected*0.02)
	assert.InDelta(t, 2.5, d.Position, 0.05)
}

func TestTwoSpanContinuous(t *testing.T) {
	loads := []load.Load{load.Uniform{Magnitude: 10, Start: 0, End: 20}}

	a, err := analysis.New(loads, []float64{0, 10, 20}, analysis.Options{})
	require.NoError(t, err)
	require.NotNil(t, a.Builder())

	res, err := a.Analyze()
	require.NoError(t, err)

	assert.InDelta(t, -125.0, res.SupportMoments[10.0], 1e-9)
	assert.InDelta(t, 37.5, res.Reactions[0.0], 1e-9)
	assert.InDelta(t, 125.0, res.Reactions[10.0], 1e-9)
	assert.InDelta(t, 37.5, res.Reactions[20.0], 1e-9)

	// The moment field honors the solved support moment.
	pv, err := a.ValueAt(10)
	require.NoError(t, err)
	assert.InDelta(t, -125.0, pv.Moment, 1.0)
}

func TestValueAt(t *testing.T) {
	loads := []load.Load{load.Uniform{Magnitude: 10000, Start: 0, End: 5}}

	a, err := analysis.New(loads, []float64{0, 5}, analysis.Options{})
	require.NoError(t, err)

	pv, err := a.ValueAt(2.5)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, pv.Shear, 100.0)
	assert.InDelta(t, 31250.0, pv.Moment, 31250.0*0.005)

	_, err = a.ValueAt(-1)
	require.Error(t, err)
	_, err = a.ValueAt(5.5)
	require.Error(t, err)
}

func TestSeriesAccessors(t *testing.T) {
	loads := []load.Load{load.Uniform{Magnitude: 10000, Start: 0, End: 5}}

	a, err := analysis.New(loads, []float64{0, 5}, analysis.Options{Points: 500})
	require.NoError(t, err)

	xs, shear, err := a.ShearSeries()
	require.NoError(t, err)
	require.Len(t, xs, 500)
	require.Len(t, shear, 500)
	assert.Equal(t, 0.0, xs[0])
	assert.InDelta(t, 5.0, xs[len(xs)-1], 1e-12)

	// Deflection was not enabled.
	_, _, err = a.DeflectionSeries()
	require.ErrorIs(t, err, analysis.ErrNoInertia)
	_, _, err = a.SlopeSeries()
	require.ErrorIs(t, err, analysis.ErrNoInertia)
}

func TestAnalyzeRepeatable(t *testing.T) {
	loads := []load.Load{
		load.Uniform{Magnitude: 800, Start: 0, End: 30},
		load.Triangular{MagnitudeStart: 0, MagnitudeEnd: 500, Start: 12, End: 18},
	}

	a, err := analysis.New(loads, []float64{0, 10, 20, 30}, analysis.Options{})
	require.NoError(t, err)

	first, err := a.Analyze()
	require.NoError(t, err)
	second, err := a.Analyze()
	require.NoError(t, err)

	require.Equal(t, first, second)
}
