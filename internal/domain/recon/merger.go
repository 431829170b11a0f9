package recon

import "math"

// Merger deduplicates and merges the two pathways' filtered observation
// lists into one authoritative list. The pattern pathway's parse is treated
// as the more numerically precise one, so on agreement its value is kept and
// on disagreement its value wins while the vision value is retained as an
// alternate.
type Merger struct {
	// Tolerance is the relative difference under which two values for the
	// same analyte are considered to agree.
	Tolerance float64
}

// NewMerger creates a merger with the given relative tolerance (values <= 0
// fall back to the default of 1%).
func NewMerger(tolerance float64) *Merger {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	return &Merger{Tolerance: tolerance}
}

// Merge combines the two filtered lists. Output order is first-seen order
// over the pattern list followed by the vision list, never map iteration
// order, so identical inputs always produce identical output. Duplicate
// analytes within one pathway keep the first occurrence.
func (m *Merger) Merge(vision, pattern []Observation) []Observation {
	var order []string
	byKey := make(map[string]*Observation)

	for _, o := range pattern {
		o := o
		if _, seen := byKey[o.Analyte]; seen {
			continue
		}
		byKey[o.Analyte] = &o
		order = append(order, o.Analyte)
	}

	for _, o := range vision {
		o := o
		existing, seen := byKey[o.Analyte]
		if !seen {
			byKey[o.Analyte] = &o
			order = append(order, o.Analyte)
			continue
		}
		if hasSource(existing.Sources, SourceVision) {
			// Duplicate within the vision list itself: keep the first.
			continue
		}
		m.combine(existing, o)
	}

	merged := make([]Observation, 0, len(order))
	for _, key := range order {
		merged = append(merged, *byKey[key])
	}
	return merged
}

// combine folds a vision observation into the pattern observation already
// held for the same analyte. The pattern value stays authoritative either
// way; disagreement beyond tolerance is recorded, never silently resolved.
func (m *Merger) combine(authoritative *Observation, other Observation) {
	authoritative.Sources = unionSources(authoritative.Sources, other.Sources)

	// Prefer whichever side has reference bounds when the authoritative
	// one lacks them.
	if !authoritative.HasRange() && other.HasRange() {
		authoritative.ReferenceLow = other.ReferenceLow
		authoritative.ReferenceHigh = other.ReferenceHigh
	}

	if !m.agree(authoritative.Value, other.Value) {
		alt := other.Value
		authoritative.Conflict = true
		authoritative.AlternateValue = &alt
	}
}

func (m *Merger) agree(a, b float64) bool {
	diff := math.Abs(a - b)
	scale := math.Max(math.Abs(a), math.Abs(b))
	if scale == 0 {
		return diff == 0
	}
	return diff/scale <= m.Tolerance
}
