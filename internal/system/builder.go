// Package system decomposes a continuous beam into overlapping two-span
// subsystems and distributes distributed loads onto them.
//
// The pipeline is: support positions → span table → subsystems →
// (subsystem × load) overlap records → span-local load components →
// per-subsystem left/right/total sums. Every stage is a pure computation
// over the immutable (loads, supports) pair supplied at construction.
package system

import (
	"errors"

	"github.com/alexiusacademia/gocba/internal/load"
)

// Components holds the summed load contributions for one subsystem's
// three-moment equation. Total is always exactly Left + Right.
type Components struct {
	Left  float64
	Right float64
	Total float64
}

// Builder owns the sorted support positions and the load list of a
// continuous beam and answers subsystem decomposition queries. Inputs are
// never mutated after construction; spans and subsystems are derived once,
// overlap records are recomputed per query.
type Builder struct {
	loads      []load.Load
	supports   []float64
	spans      []Span
	subsystems []Subsystem
}

// NewBuilder validates the inputs and derives the span and subsystem
// tables. At least one load and 3 distinct support positions are required;
// a 2-support beam is a single simple span with no three-moment equation
// and is handled by the analysis facade instead.
func NewBuilder(loads []load.Load, supports []float64) (*Builder, error) {
	if len(loads) == 0 {
		return nil, ErrNoLoads
	}

	positions := dedupSorted(supports)
	if len(positions) < 3 {
		return nil, ErrTooFewSupports
	}

	spans, err := BuildSpans(positions)
	if err != nil {
		return nil, err
	}
	subsystems, err := BuildSubsystems(spans)
	if err != nil {
		return nil, err
	}

	return &Builder{
		loads:      append([]load.Load(nil), loads...),
		supports:   positions,
		spans:      spans,
		subsystems: subsystems,
	}, nil
}

// Supports returns the sorted, deduplicated support positions.
func (b *Builder) Supports() []float64 {
	return append([]float64(nil), b.supports...)
}

// Loads returns the load list in construction order.
func (b *Builder) Loads() []load.Load {
	return append([]load.Load(nil), b.loads...)
}

// Spans returns the consecutive simple spans between adjacent supports.
func (b *Builder) Spans() []Span {
	return append([]Span(nil), b.spans...)
}

// Subsystems returns the two-span subsystems in left-to-right order.
func (b *Builder) Subsystems() []Subsystem {
	return append([]Subsystem(nil), b.subsystems...)
}

// Overlaps returns the flat sequence of (subsystem, load, overlap, span
// position) records, in subsystem-then-span-then-load order. A load that
// straddles the shared support of a subsystem appears twice, once tagged
// left and once tagged right; a load spanning several subsystems appears in
// each. The order is fixed so downstream sums are reproducible.
func (b *Builder) Overlaps() []OverlapRecord {
	var records []OverlapRecord
	for _, sub := range b.subsystems {
		for _, position := range []SpanPosition{SpanLeft, SpanRight} {
			span := sub.Span(position)
			for _, ld := range b.loads {
				start, end := ld.Range()
				overlap, ok := overlapRange(span.Start, span.End, start, end)
				if !ok {
					continue
				}
				records = append(records, OverlapRecord{
					Subsystem: sub,
					Load:      ld,
					Overlap:   overlap,
					Position:  position,
				})
			}
		}
	}
	return records
}

// SubsystemOverlaps groups one subsystem's overlap records by span
// position, for diagnostic consumers.
type SubsystemOverlaps struct {
	Subsystem Subsystem
	Left      []OverlapRecord
	Right     []OverlapRecord
}

// OverlapBreakdown returns the per-subsystem grouping of the records from
// Overlaps, in subsystem order. Subsystems with no overlapping load are
// still present, with empty groups.
func (b *Builder) OverlapBreakdown() []SubsystemOverlaps {
	bysub := make(map[Subsystem]int, len(b.subsystems))
	breakdown := make([]SubsystemOverlaps, len(b.subsystems))
	for i, sub := range b.subsystems {
		bysub[sub] = i
		breakdown[i].Subsystem = sub
	}

	for _, rec := range b.Overlaps() {
		i := bysub[rec.Subsystem]
		if rec.Position == SpanLeft {
			breakdown[i].Left = append(breakdown[i].Left, rec)
		} else {
			breakdown[i].Right = append(breakdown[i].Right, rec)
		}
	}
	return breakdown
}

// SubsystemComponents computes the summed left, right and total load
// components for every subsystem, keyed by subsystem identity. Subsystems
// with no overlapping load map to zero components.
//
// A *GeometryError aborts the computation. A *ComponentError (non-finite
// integration result) only removes the affected subsystem from the result
// map; all such errors are joined and returned alongside the remaining
// results so the caller can pinpoint the offending loads.
func (b *Builder) SubsystemComponents() (map[Subsystem]Components, error) {
	sums := make(map[Subsystem]Components, len(b.subsystems))
	failed := make(map[Subsystem]bool)
	var degenerate []error

	for _, sub := range b.subsystems {
		sums[sub] = Components{}
	}

	for _, rec := range b.Overlaps() {
		value, err := Component(rec)
		if err != nil {
			var compErr *ComponentError
			if errors.As(err, &compErr) {
				degenerate = append(degenerate, err)
				failed[rec.Subsystem] = true
				continue
			}
			return nil, err
		}

		sum := sums[rec.Subsystem]
		if rec.Position == SpanLeft {
			sum.Left += value
		} else {
			sum.Right += value
		}
		sums[rec.Subsystem] = sum
	}

	for _, sub := range b.subsystems {
		if failed[sub] {
			delete(sums, sub)
			continue
		}
		sum := sums[sub]
		sum.Total = sum.Left + sum.Right
		sums[sub] = sum
	}
	return sums, errors.Join(degenerate...)
}
