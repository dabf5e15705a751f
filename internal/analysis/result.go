package analysis

import (
	"fmt"
	"math"
	"sort"

	"github.com/alexiusacademia/gocba/internal/system"
)

// SpanExtreme locates the largest absolute value of a field within one
// span. Value keeps its sign.
type SpanExtreme struct {
	SpanIndex int
	Span      system.Span
	Value     float64
	Position  float64
}

// Result holds the complete analysis output.
type Result struct {
	Reactions      map[float64]float64 // support position → reaction (N)
	SupportMoments map[float64]float64 // support position → moment (N·m)

	MaxMomentPerSpan     []SpanExtreme // N·m
	MaxShearPerSpan      []SpanExtreme // N
	MaxDeflectionPerSpan []SpanExtreme // mm; nil without inertia
}

// PointValues holds the interpolated field values at one position.
type PointValues struct {
	Position   float64
	Shear      float64 // N
	Moment     float64 // N·m
	Deflection float64 // mm; zero when deflection analysis is disabled
}

// Analyze runs the full analysis and returns the aggregated result.
// Repeated calls on the same analyzer reuse the cached fields.
func (a *Analyzer) Analyze() (*Result, error) {
	if err := a.ensure(); err != nil {
		return nil, err
	}

	res := &Result{
		Reactions:        copyMap(a.reactions),
		SupportMoments:   copyMap(a.moments),
		MaxMomentPerSpan: a.extremesPerSpan(a.moment),
		MaxShearPerSpan:  a.extremesPerSpan(a.shear),
	}
	if a.HasDeflection() {
		res.MaxDeflectionPerSpan = a.extremesPerSpan(a.deflection)
	}
	return res, nil
}

// ShearSeries returns the grid coordinates and shear values.
func (a *Analyzer) ShearSeries() ([]float64, []float64, error) {
	if err := a.ensure(); err != nil {
		return nil, nil, err
	}
	return copySlice(a.xs), copySlice(a.shear), nil
}

// MomentSeries returns the grid coordinates and bending moment values.
func (a *Analyzer) MomentSeries() ([]float64, []float64, error) {
	if err := a.ensure(); err != nil {
		return nil, nil, err
	}
	return copySlice(a.xs), copySlice(a.moment), nil
}

// DeflectionSeries returns the grid coordinates and deflections in mm.
func (a *Analyzer) DeflectionSeries() ([]float64, []float64, error) {
	if !a.HasDeflection() {
		return nil, nil, ErrNoInertia
	}
	if err := a.ensure(); err != nil {
		return nil, nil, err
	}
	return copySlice(a.xs), copySlice(a.deflection), nil
}

// SlopeSeries returns the grid coordinates and slopes in radians.
func (a *Analyzer) SlopeSeries() ([]float64, []float64, error) {
	if !a.HasDeflection() {
		return nil, nil, ErrNoInertia
	}
	if err := a.ensure(); err != nil {
		return nil, nil, err
	}
	return copySlice(a.xs), copySlice(a.slope), nil
}

// ValueAt linearly interpolates shear, moment and (when enabled) deflection
// at the given beam position.
func (a *Analyzer) ValueAt(position float64) (PointValues, error) {
	if err := a.ensure(); err != nil {
		return PointValues{}, err
	}
	if position < a.supports[0] || position > a.supports[len(a.supports)-1] {
		return PointValues{}, fmt.Errorf("analysis: position %.6g is outside the beam [%.6g, %.6g]",
			position, a.supports[0], a.supports[len(a.supports)-1])
	}

	values := PointValues{
		Position: position,
		Shear:    interp(position, a.xs, a.shear),
		Moment:   interp(position, a.xs, a.moment),
	}
	if a.HasDeflection() {
		values.Deflection = interp(position, a.xs, a.deflection)
	}
	return values, nil
}

// extremesPerSpan finds the largest absolute field value in every span.
func (a *Analyzer) extremesPerSpan(field []float64) []SpanExtreme {
	var extremes []SpanExtreme
	for i, span := range a.Spans() {
		idx := a.spanIndices(span.Start, span.End)
		if len(idx) == 0 {
			continue
		}

		best := idx[0]
		for _, j := range idx[1:] {
			if math.Abs(field[j]) > math.Abs(field[best]) {
				best = j
			}
		}
		extremes = append(extremes, SpanExtreme{
			SpanIndex: i,
			Span:      span,
			Value:     field[best],
			Position:  a.xs[best],
		})
	}
	return extremes
}

func interp(x float64, xs, ys []float64) float64 {
	if x <= xs[0] {
		return ys[0]
	}
	if x >= xs[len(xs)-1] {
		return ys[len(ys)-1]
	}
	i := sort.SearchFloat64s(xs, x)
	if xs[i] == x {
		return ys[i]
	}
	t := (x - xs[i-1]) / (xs[i] - xs[i-1])
	return ys[i-1] + t*(ys[i]-ys[i-1])
}

func copyMap(m map[float64]float64) map[float64]float64 {
	out := make(map[float64]float64, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func copySlice(s []float64) []float64 {
	return append([]float64(nil), s...)
}
