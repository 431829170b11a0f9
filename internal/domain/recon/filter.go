package recon

import (
	"math"
	"regexp"

	"github.com/labrecon/labrecon/internal/domain/reference"
)

// Filter drops normalized observations that are almost certainly not lab
// results: dates misread as values, administrative labels, and decimal or
// unit misreads. It is pathway-local — each pathway's list is filtered on
// its own, before merging, so one pathway's noise never contaminates the
// other's valid value for the same analyte.
type Filter struct {
	kb *reference.Registry
	// PlausibilityFactor is the generous multiple of an analyte's reference
	// high above which a value is treated as a unit/decimal misread.
	PlausibilityFactor float64
}

// NewFilter creates a filter with the given plausibility factor (values <= 0
// fall back to the default of 1000).
func NewFilter(kb *reference.Registry, plausibilityFactor float64) *Filter {
	if plausibilityFactor <= 0 {
		plausibilityFactor = DefaultPlausibilityFactor
	}
	return &Filter{kb: kb, PlausibilityFactor: plausibilityFactor}
}

// noisePattern matches administrative labels that OCR and vision models
// routinely misreport as test rows: patient/doctor demographics, page
// headers, report and requisition identifiers, contact fields.
var noisePattern = regexp.MustCompile(`(?i)\b(patient|doctor|dr|date|dob|page|report|reference|requisition|specimen no|lab no|address|phone|fax|tel|mrn|accession)\b`)

// Apply returns the observations that survive every rejection rule, in
// their original order.
func (f *Filter) Apply(observations []Observation) []Observation {
	var kept []Observation
	for _, o := range observations {
		if f.reject(o) {
			continue
		}
		kept = append(kept, o)
	}
	return kept
}

func (f *Filter) reject(o Observation) bool {
	if noisePattern.MatchString(o.Display) || noisePattern.MatchString(o.Analyte) {
		return true
	}
	if o.Unrecognized {
		return looksLikeDate(o.Value)
	}

	// All catalog analytes measure positive physical quantities.
	if o.Value <= 0 {
		return true
	}

	entry, ok := f.kb.Get(o.Analyte)
	if !ok {
		return false
	}

	// Explicit physiological window when the catalog defines one, else the
	// generic multiple of the reference high.
	if entry.PlausibleLow != nil && o.Value < *entry.PlausibleLow {
		return true
	}
	if entry.PlausibleHigh != nil {
		return o.Value > *entry.PlausibleHigh
	}
	if entry.High != nil && *entry.High > 0 && o.Value > *entry.High*f.PlausibilityFactor {
		return true
	}
	return false
}

// looksLikeDate reports whether an integer value falls in day-of-month or
// year territory — the classic OCR misread of a date field next to an
// unmatched label.
func looksLikeDate(v float64) bool {
	if v != math.Trunc(v) {
		return false
	}
	return (v >= 1 && v <= 31) || (v >= 1900 && v <= 2100)
}
