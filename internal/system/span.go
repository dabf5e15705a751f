package system

import (
	"fmt"
	"sort"
)

// Span is one simple beam segment between two adjacent supports, in
// absolute beam coordinates.
type Span struct {
	Start float64
	End   float64
}

// Length returns the span length.
func (s Span) Length() float64 { return s.End - s.Start }

func (s Span) String() string { return fmt.Sprintf("(%.6g, %.6g)", s.Start, s.End) }

// Subsystem pairs two adjacent spans sharing a support. It is the unit over
// which one three-moment equation is written. Subsystem is a comparable
// value: two subsystems are equal iff their span boundaries match exactly,
// which makes it usable as a map key.
type Subsystem struct {
	Left  Span
	Right Span
}

func (s Subsystem) String() string { return fmt.Sprintf("[%v %v]", s.Left, s.Right) }

// SpanPosition tags which member of a subsystem an overlap belongs to.
type SpanPosition int

const (
	SpanLeft SpanPosition = iota
	SpanRight
)

func (p SpanPosition) String() string {
	if p == SpanLeft {
		return "left"
	}
	return "right"
}

// Span returns the subsystem member selected by p.
func (s Subsystem) Span(p SpanPosition) Span {
	if p == SpanLeft {
		return s.Left
	}
	return s.Right
}

// BuildSpans converts support positions into the sorted sequence of
// consecutive spans. Positions are sorted and exact duplicates are removed;
// near-equal floats are NOT merged and produce (possibly tiny) distinct
// spans, so callers must supply clean values.
func BuildSpans(supports []float64) ([]Span, error) {
	positions := dedupSorted(supports)
	if len(positions) < 2 {
		return nil, ErrTooFewPositions
	}

	spans := make([]Span, 0, len(positions)-1)
	for i := 0; i < len(positions)-1; i++ {
		spans = append(spans, Span{Start: positions[i], End: positions[i+1]})
	}
	return spans, nil
}

// BuildSubsystems pairs consecutive spans into two-span subsystems, in
// left-to-right order. N spans yield N−1 subsystems.
func BuildSubsystems(spans []Span) ([]Subsystem, error) {
	if len(spans) < 2 {
		return nil, ErrTooFewSpans
	}

	subsystems := make([]Subsystem, 0, len(spans)-1)
	for i := 0; i < len(spans)-1; i++ {
		subsystems = append(subsystems, Subsystem{Left: spans[i], Right: spans[i+1]})
	}
	return subsystems, nil
}

// dedupSorted returns a sorted copy of positions with exactly equal values
// collapsed.
func dedupSorted(positions []float64) []float64 {
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
