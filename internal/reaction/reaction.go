// Package reaction computes vertical support reactions from solved support
// moments using span-by-span equilibrium.
package reaction

import (
	"math"

	"github.com/alexiusacademia/gocba/internal/load"
)

// Reactions computes the reaction at every support. supports must be sorted
// and moments must hold the solved bending moment for each support. Each
// span is treated as a free body with known end moments; reactions from
// adjacent spans are summed at shared supports.
func Reactions(loads []load.Load, supports []float64, moments map[float64]float64) map[float64]float64 {
	reactions := make(map[float64]float64, len(supports))
	for _, pos := range supports {
		reactions[pos] = 0
	}

	for i := 0; i < len(supports)-1; i++ {
		start, end := supports[i], supports[i+1]
		length := end - start

		total, aboutEnd := spanStatics(loads, start, end)

		// Moment equilibrium about the end support:
		// R_start·L + M_start − M_end + M_about_end = 0
		var rStart float64
		if length > 0 {
			rStart = (-aboutEnd - moments[start] + moments[end]) / length
		}

		reactions[start] += rStart
		reactions[end] += total - rStart
	}
	return reactions
}

// SimpleSpan computes the two reactions of a simply supported single span
// (zero end moments).
func SimpleSpan(loads []load.Load, start, end float64) map[float64]float64 {
	length := end - start
	total, aboutEnd := spanStatics(loads, start, end)

	var left float64
	if length > 0 {
		left = -aboutEnd / length
	}
	return map[float64]float64{
		start: left,
		end:   total - left,
	}
}

// spanStatics returns the total downward load on [start, end] and its
// moment about the end support. Loads are clipped to the span before their
// resultant is taken.
func spanStatics(loads []load.Load, start, end float64) (total, aboutEnd float64) {
	for _, ld := range loads {
		loadStart, loadEnd := ld.Range()
		lo := math.Max(loadStart, start)
		hi := math.Min(loadEnd, end)
		if lo >= hi {
			continue
		}

		force, centroid := ld.Resultant(lo, hi)
		total += force
		aboutEnd += force * (centroid - end)
	}
	return total, aboutEnd
}
