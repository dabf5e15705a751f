package system

import (
	"errors"
	"fmt"

	"github.com/alexiusacademia/gocba/internal/load"
)

var (
	// ErrNoLoads is returned when a builder is constructed without loads.
	ErrNoLoads = errors.New("system: at least one load is required")

	// ErrTooFewSupports is returned when fewer than 3 distinct support
	// positions are supplied; below that there is no subsystem to decompose.
	ErrTooFewSupports = errors.New("system: at least 3 distinct support positions are required")

	// ErrTooFewPositions is returned by BuildSpans for fewer than 2 distinct
	// positions.
	ErrTooFewPositions = errors.New("system: at least 2 distinct support positions are required")

	// ErrTooFewSpans is returned by BuildSubsystems for fewer than 2 spans.
	ErrTooFewSpans = errors.New("system: at least 2 spans are required to form a subsystem")
)

// GeometryError reports an overlap that resolved to a span-relative range
// outside [0, spanLength]. It indicates a defect in overlap computation and
// is fatal: silently clamping the range would turn the defect into a wrong
// (typically negative) component.
type GeometryError struct {
	Subsystem  Subsystem
	Position   SpanPosition
	Overlap    Overlap
	RelStart   float64
	RelEnd     float64
	SpanLength float64
}

func (e *GeometryError) Error() string {
	return fmt.Sprintf("system: overlap %v on %s span of subsystem %v resolved to relative range (%.6g, %.6g) outside [0, %.6g]",
		e.Overlap, e.Position, e.Subsystem, e.RelStart, e.RelEnd, e.SpanLength)
}

// ComponentError reports a load whose contribution integral produced a
// non-finite value. It is attributed to the exact (subsystem, load, span)
// triple so the caller can pinpoint the offending load; only the affected
// subsystem is dropped from the aggregate.
type ComponentError struct {
	Subsystem Subsystem
	Position  SpanPosition
	Load      load.Load
	Value     float64
}

func (e *ComponentError) Error() string {
	return fmt.Sprintf("system: load %v produced non-finite component %v on %s span of subsystem %v",
		e.Load, e.Value, e.Position, e.Subsystem)
}
