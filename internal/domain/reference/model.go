package reference

// Analyte is a single Reference Knowledge Base entry: the canonical
// identity of a lab test, its canonical unit, its normal range, and the
// alternate names and unit conversions under which it may appear on a
// printed report.
type Analyte struct {
	Key     string   `json:"key"`
	Display string   `json:"display"`
	Unit    string   `json:"unit"`
	Low     *float64 `json:"low,omitempty"`
	High    *float64 `json:"high,omitempty"`
	// PlausibleLow/PlausibleHigh bound the physically possible window for
	// the analyte. Values outside it are misreads, not results. Entries
	// without explicit bounds fall back to the engine's plausibility factor.
	PlausibleLow  *float64 `json:"plausibleLow,omitempty"`
	PlausibleHigh *float64 `json:"plausibleHigh,omitempty"`
	Aliases       []string `json:"aliases,omitempty"`
	// Conversions maps an alternate unit (normalized form) to the factor
	// that converts a value expressed in that unit into the canonical unit.
	Conversions map[string]float64 `json:"conversions,omitempty"`
}

// HasRange reports whether both normal-range bounds are present.
func (a *Analyte) HasRange() bool {
	return a.Low != nil && a.High != nil
}

func f(v float64) *float64 { return &v }
