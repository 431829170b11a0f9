package recon

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/labrecon/labrecon/internal/domain/reference"
)

// Normalizer converts raw candidates into canonical observations against the
// knowledge base. It is a pure function of its inputs and holds no per-report
// state.
type Normalizer struct {
	kb *reference.Registry
}

// NewNormalizer creates a normalizer over the given knowledge base.
func NewNormalizer(kb *reference.Registry) *Normalizer {
	return &Normalizer{kb: kb}
}

// Normalize resolves, parses, and unit-normalizes a single candidate.
// It returns ok=false for candidates whose value cannot be read as a number;
// an unresolvable name is not a rejection — the observation is tagged
// unrecognized and left for the filter to judge.
func (n *Normalizer) Normalize(c RawCandidate) (Observation, bool) {
	value, ok := ParseValue(c.Value)
	if !ok {
		return Observation{}, false
	}

	name := strings.TrimSpace(c.Name)
	if name == "" {
		return Observation{}, false
	}

	obs := Observation{
		Status:  StatusUnknown,
		Sources: []Source{c.Source},
	}

	entry, resolved := n.kb.Resolve(name)
	rangeFactor := 1.0
	if resolved {
		obs.Analyte = entry.Key
		obs.Display = entry.Display
		obs.Unit = entry.Unit
		if factor, known := n.kb.ConversionFactor(entry, c.Unit); known {
			obs.Value = value * factor
			rangeFactor = factor
		} else {
			// No conversion factor for this unit: keep the reported value
			// and unit rather than guessing a factor.
			obs.Value = value
			obs.Unit = strings.TrimSpace(c.Unit)
		}
	} else {
		obs.Analyte = reference.NormalizeName(name)
		obs.Display = name
		obs.Unrecognized = true
		obs.Value = value
		obs.Unit = strings.TrimSpace(c.Unit)
	}

	low, high, parsed := ParseRange(c.Range)
	if parsed {
		// A printed range shares the candidate's printed unit, so it is
		// scaled by the same factor as the value.
		*low *= rangeFactor
		*high *= rangeFactor
		obs.ReferenceLow, obs.ReferenceHigh = low, high
	} else if resolved {
		obs.ReferenceLow, obs.ReferenceHigh = entry.Low, entry.High
	}

	return obs, true
}

// valuePattern accepts an optional sign, digit groups with optional comma
// thousands separators, and at most one decimal point.
var valuePattern = regexp.MustCompile(`^[+-]?\d{1,3}(?:,\d{3})*(?:\.\d+)?$|^[+-]?\d+(?:\.\d+)?$|^[+-]?\.\d+$`)

// ParseValue parses a candidate's value string as a number. Values with
// non-numeric tokens ("N/A", "See note", "12 H") are rejected.
func ParseValue(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" || !valuePattern.MatchString(s) {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

var rangePattern = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*-\s*(\d+(?:\.\d+)?)`)

// ParseRange parses a printed reference range ("70-99", "(13.5 - 17.5)")
// into its bounds. Inverted ranges are treated as parse failures so the
// caller can fall back to the knowledge base.
func ParseRange(s string) (low, high *float64, ok bool) {
	m := rangePattern.FindStringSubmatch(s)
	if m == nil {
		return nil, nil, false
	}
	lo, err1 := strconv.ParseFloat(m[1], 64)
	hi, err2 := strconv.ParseFloat(m[2], 64)
	if err1 != nil || err2 != nil || lo > hi {
		return nil, nil, false
	}
	return &lo, &hi, true
}
