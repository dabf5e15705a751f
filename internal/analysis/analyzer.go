// Package analysis is the high-level facade for continuous beam analysis.
// It wires the subsystem decomposition, the three-moment solver and the
// reaction solver together and evaluates shear, moment and deflection
// fields over a uniform grid.
//
// Units are SI throughout: positions in m, load intensities in N/m,
// elastic modulus in N/mm², moment of inertia in cm⁴. Deflections are
// reported in mm.
package analysis

import (
	"errors"
	"sort"

	"github.com/alexiusacademia/gocba/internal/load"
	"github.com/alexiusacademia/gocba/internal/reaction"
	"github.com/alexiusacademia/gocba/internal/solver"
	"github.com/alexiusacademia/gocba/internal/system"
)

const (
	// DefaultEModulus is the elastic modulus used when none is given
	// (structural steel, N/mm²).
	DefaultEModulus = 210000.0

	// DefaultPoints is the default evaluation grid size.
	DefaultPoints = 2000

	minPoints = 100
)

var (
	// ErrNoLoads is returned when an analyzer is constructed without loads.
	ErrNoLoads = errors.New("analysis: at least one load is required")

	// ErrTooFewSupports is returned for fewer than 2 distinct supports.
	ErrTooFewSupports = errors.New("analysis: at least 2 distinct support positions are required")

	// ErrNoInertia is returned by deflection queries when the analyzer was
	// built without a moment of inertia.
	ErrNoInertia = errors.New("analysis: deflection requires a moment of inertia")
)

// Options configures an Analyzer.
type Options struct {
	Inertia  float64 // moment of inertia (cm⁴); 0 disables deflection
	EModulus float64 // elastic modulus (N/mm²); 0 means DefaultEModulus
	Points   int     // evaluation grid size; 0 means DefaultPoints
}

// Analyzer performs the complete analysis of a continuous beam. Loads and
// supports are fixed at construction; all derived fields are computed once
// on first use and cached.
type Analyzer struct {
	loads    []load.Load
	supports []float64
	inertia  float64
	eModulus float64
	points   int

	builder *system.Builder // nil for a single-span beam

	computed   bool
	xs         []float64
	intensity  []float64
	shear      []float64
	moment     []float64
	slope      []float64 // rad
	deflection []float64 // mm
	reactions  map[float64]float64
	moments    map[float64]float64
}

// New validates the inputs and prepares an analyzer. A beam with exactly 2
// supports is treated as a simply supported single span; 3 or more supports
// go through the three-moment subsystem decomposition.
func New(loads []load.Load, supports []float64, opts Options) (*Analyzer, error) {
	if len(loads) == 0 {
		return nil, ErrNoLoads
	}

	positions := sortedUnique(supports)
	if len(positions) < 2 {
		return nil, ErrTooFewSupports
	}

	a := &Analyzer{
		loads:    append([]load.Load(nil), loads...),
		supports: positions,
		inertia:  opts.Inertia,
		eModulus: opts.EModulus,
		points:   opts.Points,
	}
	if a.eModulus == 0 {
		a.eModulus = DefaultEModulus
	}
	if a.points == 0 {
		a.points = DefaultPoints
	}
	if a.points < minPoints {
		a.points = minPoints
	}

	if len(positions) >= 3 {
		builder, err := system.NewBuilder(loads, positions)
		if err != nil {
			return nil, err
		}
		a.builder = builder
	}
	return a, nil
}

// Supports returns the sorted, deduplicated support positions.
func (a *Analyzer) Supports() []float64 {
	return append([]float64(nil), a.supports...)
}

// Spans returns the simple spans between adjacent supports.
func (a *Analyzer) Spans() []system.Span {
	spans, _ := system.BuildSpans(a.supports)
	return spans
}

// Loads returns the load list in construction order.
func (a *Analyzer) Loads() []load.Load {
	return append([]load.Load(nil), a.loads...)
}

// Builder exposes the subsystem decomposition, or nil for a single-span
// beam.
func (a *Analyzer) Builder() *system.Builder { return a.builder }

// HasDeflection reports whether deflection analysis is enabled.
func (a *Analyzer) HasDeflection() bool { return a.inertia > 0 }

// ensure solves the beam and evaluates all fields, once.
func (a *Analyzer) ensure() error {
	if a.computed {
		return nil
	}

	if a.builder == nil {
		a.moments = make(map[float64]float64, 2)
		for _, pos := range a.supports {
			a.moments[pos] = 0
		}
		a.reactions = reaction.SimpleSpan(a.loads, a.supports[0], a.supports[1])
	} else {
		moments, err := solver.SolveMoments(a.builder)
		if err != nil {
			return err
		}
		a.moments = moments
		a.reactions = reaction.Reactions(a.loads, a.supports, moments)
	}

	a.evalFields()
	if a.HasDeflection() {
		a.evalDeflection()
	}
	a.computed = true
	return nil
}

// evalFields computes the distributed load, shear and moment fields on a
// uniform grid over the whole beam.
func (a *Analyzer) evalFields() {
	first := a.supports[0]
	last := a.supports[len(a.supports)-1]

	n := a.points
	a.xs = make([]float64, n)
	a.intensity = make([]float64, n)
	a.shear = make([]float64, n)
	a.moment = make([]float64, n)

	for i := range a.xs {
		a.xs[i] = first + (last-first)*float64(i)/float64(n-1)
	}
	dx := a.xs[1] - a.xs[0]

	// Total downward intensity w(x); loads are evaluated on their closed
	// domain only.
	for i, x := range a.xs {
		var w float64
		for _, ld := range a.loads {
			start, end := ld.Range()
			if start <= x && x <= end {
				w += ld.Intensity(x)
			}
		}
		a.intensity[i] = w
	}

	// Shear V(x) = −∫w dx plus a step of +R at every support. Supports are
	// visited in sorted order so the summation order is reproducible.
	cumulative := 0.0
	for i := range a.xs {
		cumulative += a.intensity[i] * dx
		a.shear[i] = -cumulative
	}
	for _, pos := range a.supports {
		r := a.reactions[pos]
		for i, x := range a.xs {
			if x >= pos {
				a.shear[i] += r
			}
		}
	}

	// Moment M(x) = ∫V dx, integrated span by span so the solved support
	// moments act as boundary conditions; a linear ramp closes the small
	// quadrature drift against the analytical end moment.
	for s := 0; s < len(a.supports)-1; s++ {
		start, end := a.supports[s], a.supports[s+1]
		idx := a.spanIndices(start, end)
		if len(idx) == 0 {
			continue
		}

		m0 := a.moments[start]
		mEnd := a.moments[end]

		spanMoment := make([]float64, len(idx))
		spanMoment[0] = m0
		for k := 1; k < len(idx); k++ {
			dxi := a.xs[idx[k]] - a.xs[idx[k-1]]
			spanMoment[k] = spanMoment[k-1] + (a.shear[idx[k-1]]+a.shear[idx[k]])/2*dxi
		}

		if len(idx) > 1 {
			correction := mEnd - spanMoment[len(idx)-1]
			for k := range spanMoment {
				spanMoment[k] += correction * float64(k) / float64(len(idx)-1)
			}
		}

		for k, i := range idx {
			a.moment[i] = spanMoment[k]
		}
	}
}

// evalDeflection double-integrates M/(EI) span by span with zero deflection
// at the supports. Internally mm are used: positions ×1000, moments (N·m)
// ×1000 to N·mm, EI = E(N/mm²)·I(cm⁴ → mm⁴).
func (a *Analyzer) evalDeflection() {
	a.slope = make([]float64, len(a.xs))
	a.deflection = make([]float64, len(a.xs))

	ei := a.eModulus * a.inertia * 1e4 // N·mm²
	curvature := make([]float64, len(a.xs))
	for i := range a.xs {
		curvature[i] = a.moment[i] * 1e3 / ei // 1/mm
	}

	for s := 0; s < len(a.supports)-1; s++ {
		start, end := a.supports[s], a.supports[s+1]
		idx := a.spanIndices(start, end)
		if len(idx) < 2 {
			continue
		}

		slope := make([]float64, len(idx))
		defl := make([]float64, len(idx))
		for k := 1; k < len(idx); k++ {
			dxmm := (a.xs[idx[k]] - a.xs[idx[k-1]]) * 1e3
			slope[k] = slope[k-1] + (curvature[idx[k-1]]+curvature[idx[k]])/2*dxmm
			defl[k] = defl[k-1] + (slope[k-1]+slope[k])/2*dxmm
		}

		// Boundary condition: deflection is zero at both supports. The end
		// residual is removed with a linear ramp, and the slope gets the
		// matching constant correction.
		endResidual := defl[len(idx)-1]
		slopeCorrection := -endResidual / ((end - start) * 1e3)
		for k := range idx {
			t := float64(k) / float64(len(idx)-1)
			defl[k] -= endResidual * t
			slope[k] += slopeCorrection * t
		}

		for k, i := range idx {
			a.slope[i] = slope[k]
			a.deflection[i] = defl[k]
		}
	}
}

// spanIndices returns the grid indices falling inside [start, end].
func (a *Analyzer) spanIndices(start, end float64) []int {
	var idx []int
	for i, x := range a.xs {
		if x >= start && x <= end {
			idx = append(idx, i)
		}
	}
	return idx
}

func sortedUnique(positions []float64) []float64 {
	sorted := append([]float64(nil), positions...)
	sort.Float64s(sorted)

	out := sorted[:0]
	for i, p := range sorted {
		if i == 0 || p != out[len(out)-1] {
			out = append(out, p)
		}
	}
	return out
}
