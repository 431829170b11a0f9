package recon

import (
	"fmt"

	"github.com/labrecon/labrecon/internal/domain/reference"
)

// Heuristic thresholds calibrated to typical medical-report OCR error
// patterns. Both are overridable through Options.
const (
	DefaultTolerance          = 0.01
	DefaultPlausibilityFactor = 1000
)

// Options carries the engine's tunable thresholds.
type Options struct {
	// Tolerance is the relative difference under which cross-source values
	// are considered in agreement.
	Tolerance float64
	// PlausibilityFactor is the multiple of an analyte's reference high
	// above which a value is dropped as a unit/decimal misread.
	PlausibilityFactor float64
}

// DefaultOptions returns the stated default thresholds.
func DefaultOptions() Options {
	return Options{
		Tolerance:          DefaultTolerance,
		PlausibilityFactor: DefaultPlausibilityFactor,
	}
}

// Engine is the reconciliation pipeline: normalize each pathway's
// candidates, filter each pathway locally, merge across pathways, classify.
// It performs no I/O, holds only the immutable knowledge base, and is safe
// for concurrent use across reports.
type Engine struct {
	normalizer *Normalizer
	filter     *Filter
	merger     *Merger
}

// NewEngine builds an engine over a loaded knowledge base. The knowledge
// base is a precondition: a nil registry is refused here, before any report
// is processed.
func NewEngine(kb *reference.Registry, opts Options) (*Engine, error) {
	if kb == nil {
		return nil, fmt.Errorf("knowledge base is required")
	}
	return &Engine{
		normalizer: NewNormalizer(kb),
		filter:     NewFilter(kb, opts.PlausibilityFactor),
		merger:     NewMerger(opts.Tolerance),
	}, nil
}

// Reconcile turns the two pathways' raw candidate lists into the final
// observation list. Either list may be empty (a pathway that failed or was
// abandoned contributes nothing); an empty result is a valid outcome.
// Malformed candidates are dropped individually and never fail the report.
func (e *Engine) Reconcile(vision, pattern []RawCandidate) Result {
	merged := e.merger.Merge(
		e.filter.Apply(e.normalize(vision)),
		e.filter.Apply(e.normalize(pattern)),
	)
	for i := range merged {
		Classify(&merged[i])
	}
	return Result{Observations: merged}
}

func (e *Engine) normalize(candidates []RawCandidate) []Observation {
	var out []Observation
	for _, c := range candidates {
		if obs, ok := e.normalizer.Normalize(c); ok {
			out = append(out, obs)
		}
	}
	return out
}
