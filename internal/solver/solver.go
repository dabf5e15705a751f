// Package solver assembles and solves the three-moment equation system of a
// continuous beam.
package solver

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/alexiusacademia/gocba/internal/system"
)

// SolveMoments computes the bending moment at every support of the beam
// described by b. One equation is written per subsystem,
//
//	M₁·L₁ + 2·M₂·(L₁+L₂) + M₃·L₂ = −(left + right load components)
//
// with the end supports simply supported (zero moment), leaving exactly one
// unknown per internal support. The returned map covers all supports.
func SolveMoments(b *system.Builder) (map[float64]float64, error) {
	supports := b.Supports()
	subsystems := b.Subsystems()

	components, err := b.SubsystemComponents()
	if err != nil {
		return nil, err
	}

	internal := supports[1 : len(supports)-1]
	index := make(map[float64]int, len(internal))
	for i, pos := range internal {
		index[pos] = i
	}

	// One equation per subsystem, one unknown per internal support; the
	// counts are equal by construction (both are numberOfSpans − 1).
	n := len(subsystems)
	coeffs := mat.NewDense(n, n, nil)
	rhs := mat.NewVecDense(n, nil)

	for i, sub := range subsystems {
		l1 := sub.Left.Length()
		l2 := sub.Right.Length()

		// The shared support is always internal.
		coeffs.Set(i, index[sub.Left.End], 2*(l1+l2))
		if j, ok := index[sub.Left.Start]; ok {
			coeffs.Set(i, j, l1)
		}
		if j, ok := index[sub.Right.End]; ok {
			coeffs.Set(i, j, l2)
		}

		rhs.SetVec(i, -components[sub].Total)
	}

	var moments mat.VecDense
	if err := moments.SolveVec(coeffs, rhs); err != nil {
		return nil, fmt.Errorf("solver: three-moment system could not be solved: %w", err)
	}

	result := make(map[float64]float64, len(supports))
	result[supports[0]] = 0
	result[supports[len(supports)-1]] = 0
	for i, pos := range internal {
		result[pos] = moments.AtVec(i)
	}
	return result, nil
}
