package load

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/integrate/quad"
)

// Load is a distributed load acting on a sub-interval of the beam axis.
//
// The component functions integrate the load's moment-influence kernel over
// a span-relative range [relStart, relEnd] (0 at the span start, spanLength
// at its end). The kernels differ depending on whether the span acts as the
// left or the right member of a two-span subsystem, so the caller must pick
// the function matching the span position. spanStart is the absolute
// coordinate of the span start; intensities that vary along the beam are
// evaluated at relative position + spanStart.
type Load interface {
	// Range returns the absolute start and end of the load's domain.
	Range() (start, end float64)

	// Intensity returns the load intensity w(x) at absolute coordinate x.
	// The value is only meaningful inside the load's domain.
	Intensity(x float64) float64

	// ComponentLeftSpan integrates w(x)·x/L·(L²−x²) over [relStart, relEnd].
	ComponentLeftSpan(spanLength, relStart, relEnd, spanStart float64) float64

	// ComponentRightSpan integrates w(x)·(L−x)/L·(L²−(L−x)²) over [relStart, relEnd].
	ComponentRightSpan(spanLength, relStart, relEnd, spanStart float64) float64

	// Resultant returns the total force and its centroid for the part of the
	// load acting on the absolute interval [start, end]. The caller is
	// responsible for clipping the interval to the load's domain.
	Resultant(start, end float64) (force, centroid float64)
}

// quadNodes is the Gauss-Legendre node count for the component integrals.
// The kernels are polynomials of degree ≤ 5, exact for 3+ nodes; 8 leaves
// headroom without measurable cost.
const quadNodes = 8

func componentLeft(w func(float64) float64, spanLength, relStart, relEnd, spanStart float64) float64 {
	return quad.Fixed(func(x float64) float64 {
		return w(x+spanStart) * x / spanLength * (spanLength*spanLength - x*x)
	}, relStart, relEnd, quadNodes, nil, 0)
}

func componentRight(w func(float64) float64, spanLength, relStart, relEnd, spanStart float64) float64 {
	return quad.Fixed(func(x float64) float64 {
		d := spanLength - x
		return w(x+spanStart) * d / spanLength * (spanLength*spanLength - d*d)
	}, relStart, relEnd, quadNodes, nil, 0)
}

// Uniform is a uniformly distributed load.
type Uniform struct {
	Magnitude float64 // intensity (force per unit length)
	Start     float64 // absolute start of the loaded region
	End       float64 // absolute end of the loaded region
}

func (u Uniform) Range() (float64, float64) { return u.Start, u.End }

func (u Uniform) Intensity(x float64) float64 { return u.Magnitude }

func (u Uniform) ComponentLeftSpan(spanLength, relStart, relEnd, spanStart float64) float64 {
	return componentLeft(u.Intensity, spanLength, relStart, relEnd, spanStart)
}

func (u Uniform) ComponentRightSpan(spanLength, relStart, relEnd, spanStart float64) float64 {
	return componentRight(u.Intensity, spanLength, relStart, relEnd, spanStart)
}

func (u Uniform) Resultant(start, end float64) (float64, float64) {
	return u.Magnitude * (end - start), (start + end) / 2
}

func (u Uniform) String() string {
	return fmt.Sprintf("uniform %.6g from %.6g to %.6g", u.Magnitude, u.Start, u.End)
}

// Triangular is a linearly varying distributed load. The intensity ramps
// from MagnitudeStart at Start to MagnitudeEnd at End; one of the two is
// expected to be zero (a true triangle).
type Triangular struct {
	MagnitudeStart float64 // intensity at Start
	MagnitudeEnd   float64 // intensity at End
	Start          float64 // absolute start of the loaded region
	End            float64 // absolute end of the loaded region
}

func (t Triangular) Range() (float64, float64) { return t.Start, t.End }

func (t Triangular) Intensity(x float64) float64 {
	if t.MagnitudeStart < t.MagnitudeEnd {
		return t.MagnitudeEnd * (x - t.Start) / (t.End - t.Start)
	}
	return t.MagnitudeStart * (t.End - x) / (t.End - t.Start)
}

func (t Triangular) ComponentLeftSpan(spanLength, relStart, relEnd, spanStart float64) float64 {
	return componentLeft(t.Intensity, spanLength, relStart, relEnd, spanStart)
}

func (t Triangular) ComponentRightSpan(spanLength, relStart, relEnd, spanStart float64) float64 {
	return componentRight(t.Intensity, spanLength, relStart, relEnd, spanStart)
}

func (t Triangular) Resultant(start, end float64) (float64, float64) {
	magA := t.Intensity(start)
	magB := t.Intensity(end)
	length := end - start

	force := 0.5 * (magA + magB) * length
	if math.Abs(magA-magB) < 1e-10 {
		return magA * length, (start + end) / 2
	}
	// Centroid of the trapezoid measured from start.
	centroid := start + length*(2*magB+magA)/(3*(magB+magA))
	return force, centroid
}

func (t Triangular) String() string {
	return fmt.Sprintf("triangular %.6g→%.6g from %.6g to %.6g",
		t.MagnitudeStart, t.MagnitudeEnd, t.Start, t.End)
}
