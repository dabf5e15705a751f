package system

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gocba/internal/load"
)

// Overlap is the non-empty intersection of a load's domain with a span, in
// absolute beam coordinates.
type Overlap struct {
	Start float64
	End   float64
}

func (o Overlap) String() string { return fmt.Sprintf("(%.6g, %.6g)", o.Start, o.End) }

// overlapRange intersects the intervals [a1, a2) and [b1, b2). Intervals
// that merely touch do not overlap (strict inequality), so a load ending
// exactly on a span boundary contributes nothing to that span.
func overlapRange(a1, a2, b1, b2 float64) (Overlap, bool) {
	start := math.Max(a1, b1)
	end := math.Min(a2, b2)
	if start < end {
		return Overlap{Start: start, End: end}, true
	}
	return Overlap{}, false
}

// OverlapRecord states that a load acts on the tagged span of a subsystem
// over the given absolute range. The span-position tag is the only channel
// through which downstream stages learn which member of the subsystem the
// overlap belongs to.
type OverlapRecord struct {
	Subsystem Subsystem
	Load      load.Load
	Overlap   Overlap
	Position  SpanPosition
}

// RelativeRange converts the record's overlap into coordinates relative to
// the tagged span's start.
func (r OverlapRecord) RelativeRange() (start, end float64) {
	span := r.Subsystem.Span(r.Position)
	return r.Overlap.Start - span.Start, r.Overlap.End - span.Start
}

// Component converts one overlap record into its scalar contribution to the
// subsystem's three-moment load term, by integrating the load's span-local
// contribution function for the tagged span position.
//
// A relative range outside [0, spanLength] means the overlap resolution
// upstream is broken; it is reported as a *GeometryError and never clamped.
// A non-finite integration result is reported as a *ComponentError.
func Component(rec OverlapRecord) (float64, error) {
	span := rec.Subsystem.Span(rec.Position)
	length := span.Length()
	relStart, relEnd := rec.RelativeRange()

	if relStart < 0 || relStart >= relEnd || relEnd > length {
		return 0, &GeometryError{
			Subsystem:  rec.Subsystem,
			Position:   rec.Position,
			Overlap:    rec.Overlap,
			RelStart:   relStart,
			RelEnd:     relEnd,
			SpanLength: length,
		}
	}

	var value float64
	switch rec.Position {
	case SpanLeft:
		value = rec.Load.ComponentLeftSpan(length, relStart, relEnd, span.Start)
	case SpanRight:
		value = rec.Load.ComponentRightSpan(length, relStart, relEnd, span.Start)
	}

	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, &ComponentError{
			Subsystem: rec.Subsystem,
			Position:  rec.Position,
			Load:      rec.Load,
			Value:     value,
		}
	}
	return value, nil
}
