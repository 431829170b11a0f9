package recon

// Classify assigns the terminal status for a merged observation. Bounds are
// inclusive: a value sitting exactly on a bound is NORMAL. A missing bound
// is a valid outcome, not a failure — the status simply stays UNKNOWN, as it
// does for unrecognized analytes regardless of any parsed range.
func Classify(o *Observation) {
	if o.Unrecognized || !o.HasRange() {
		o.Status = StatusUnknown
		return
	}
	switch {
	case o.Value < *o.ReferenceLow:
		o.Status = StatusLow
	case o.Value > *o.ReferenceHigh:
		o.Status = StatusHigh
	default:
		o.Status = StatusNormal
	}
}
