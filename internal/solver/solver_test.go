package solver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gocba/internal/load"
	"github.com/alexiusacademia/gocba/internal/solver"
	"github.com/alexiusacademia/gocba/internal/system"
)

// Two equal spans under a full uniform load: the middle support moment is
// the textbook −wL²/8.
func TestSolveMomentsTwoEqualSpans(t *testing.T) {
	b, err := system.NewBuilder(
		[]load.Load{load.Uniform{Magnitude: 10, Start: 0, End: 20}},
		[]float64{0, 10, 20},
	)
	require.NoError(t, err)

	moments, err := solver.SolveMoments(b)
	require.NoError(t, err)

	assert.Zero(t, moments[0.0])
	assert.Zero(t, moments[20.0])
	assert.InDelta(t, -125.0, moments[10.0], 1e-9)
}

// Three equal spans loaded only on the middle one: the two internal support
// moments are equal by symmetry.
func TestSolveMomentsSymmetricMiddleLoad(t *testing.T) {
	b, err := system.NewBuilder(
		[]load.Load{load.Uniform{Magnitude: 1000, Start: 10, End: 20}},
		[]float64{0, 10, 20, 30},
	)
	require.NoError(t, err)

	moments, err := solver.SolveMoments(b)
	require.NoError(t, err)

	// 40·M₁ + 10·M₂ = −250000 and its mirror give M₁ = M₂ = −5000.
	assert.InDelta(t, -5000.0, moments[10.0], 1e-9)
	assert.InDelta(t, -5000.0, moments[20.0], 1e-9)
	assert.Zero(t, moments[0.0])
	assert.Zero(t, moments[30.0])
}

func TestSolveMomentsCoversAllSupports(t *testing.T) {
	supports := []float64{0, 7, 15, 26, 40}
	b, err := system.NewBuilder(
		[]load.Load{load.Uniform{Magnitude: 250, Start: 0, End: 40}},
		supports,
	)
	require.NoError(t, err)

	moments, err := solver.SolveMoments(b)
	require.NoError(t, err)
	require.Len(t, moments, len(supports))

	for _, pos := range supports[1 : len(supports)-1] {
		// Internal supports of a sagging uniform load carry hogging moments.
		assert.Negative(t, moments[pos], "support at %v", pos)
	}
}
