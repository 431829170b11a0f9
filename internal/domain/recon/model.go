package recon

// Source identifies the extraction pathway that produced a candidate.
type Source string

const (
	SourceVision  Source = "VISION"
	SourcePattern Source = "PATTERN"
)

// Status is the terminal classification of an observation against its
// reference range.
type Status string

const (
	StatusUnknown Status = "UNKNOWN"
	StatusNormal  Status = "NORMAL"
	StatusLow     Status = "LOW"
	StatusHigh    Status = "HIGH"
)

// RawCandidate is one proposed lab-test observation handed in by an
// extraction pathway. Fields arrive as the pathway tokenized them from the
// report: noisy, partial, possibly duplicated or spurious. It is consumed
// during normalization and never mutated.
type RawCandidate struct {
	Source     Source   `json:"source"`
	Name       string   `json:"name"`
	Value      string   `json:"value"`
	Unit       string   `json:"unit,omitempty"`
	Range      string   `json:"range,omitempty"`
	Confidence *float64 `json:"confidence,omitempty"`
}

// Observation is the canonical form of a lab-test result. Created by the
// normalizer, possibly dropped by the filter, merged across sources by the
// merger, and finalized by the classifier. Not mutated after classification.
type Observation struct {
	// Analyte is the canonical knowledge-base key, or the collapsed raw
	// name when Unrecognized is set.
	Analyte      string `json:"analyte"`
	Display      string `json:"display,omitempty"`
	Unrecognized bool   `json:"unrecognized,omitempty"`

	Value float64 `json:"value"`
	Unit  string  `json:"unit,omitempty"`

	ReferenceLow  *float64 `json:"referenceLow,omitempty"`
	ReferenceHigh *float64 `json:"referenceHigh,omitempty"`

	Status  Status   `json:"status"`
	Sources []Source `json:"sources"`

	// Conflict marks an analyte where the two pathways disagreed beyond
	// tolerance; Value carries the pattern-pathway number and
	// AlternateValue retains the vision-pathway number for display.
	Conflict       bool     `json:"conflict,omitempty"`
	AlternateValue *float64 `json:"alternateValue,omitempty"`
}

// HasRange reports whether both reference bounds are present.
func (o *Observation) HasRange() bool {
	return o.ReferenceLow != nil && o.ReferenceHigh != nil
}

// Abnormal reports whether the observation was classified outside its
// reference range.
func (o *Observation) Abnormal() bool {
	return o.Status == StatusLow || o.Status == StatusHigh
}

// Result is the reconciled outcome for one report: at most one observation
// per analyte, in deterministic order. An empty result is a valid outcome
// meaning no lab values were confidently extracted.
type Result struct {
	Observations []Observation `json:"observations"`
}

// Abnormal returns the observations classified LOW or HIGH.
func (r Result) Abnormal() []Observation {
	var out []Observation
	for _, o := range r.Observations {
		if o.Abnormal() {
			out = append(out, o)
		}
	}
	return out
}

func hasSource(sources []Source, s Source) bool {
	for _, have := range sources {
		if have == s {
			return true
		}
	}
	return false
}

// unionSources merges provenance sets, keeping a stable PATTERN-then-VISION
// order so identical inputs always serialize identically.
func unionSources(a, b []Source) []Source {
	var out []Source
	for _, s := range []Source{SourcePattern, SourceVision} {
		if hasSource(a, s) || hasSource(b, s) {
			out = append(out, s)
		}
	}
	return out
}
