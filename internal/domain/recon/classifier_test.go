package recon

import "testing"

func classified(value float64, low, high *float64, unrecognized bool) Status {
	o := Observation{Analyte: "X", Value: value, ReferenceLow: low, ReferenceHigh: high, Unrecognized: unrecognized, Status: StatusUnknown}
	Classify(&o)
	return o.Status
}

func TestClassifyWithinRange(t *testing.T) {
	lo, hi := 70.0, 99.0
	cases := []struct {
		value float64
		want  Status
	}{
		{85, StatusNormal},
		{70, StatusNormal}, // inclusive lower bound
		{99, StatusNormal}, // inclusive upper bound
		{69.9, StatusLow},
		{99.1, StatusHigh},
		{450, StatusHigh},
	}
	for _, tc := range cases {
		if got := classified(tc.value, &lo, &hi, false); got != tc.want {
			t.Errorf("value %v: status = %s, want %s", tc.value, got, tc.want)
		}
	}
}

func TestClassifyMissingBoundsStaysUnknown(t *testing.T) {
	lo := 70.0
	if got := classified(85, nil, nil, false); got != StatusUnknown {
		t.Errorf("no bounds: status = %s, want UNKNOWN", got)
	}
	if got := classified(85, &lo, nil, false); got != StatusUnknown {
		t.Errorf("missing high bound: status = %s, want UNKNOWN", got)
	}
}

func TestClassifyUnrecognizedForcedUnknown(t *testing.T) {
	lo, hi := 5.0, 10.0
	if got := classified(12, &lo, &hi, true); got != StatusUnknown {
		t.Errorf("unrecognized analyte: status = %s, want UNKNOWN even with a parsed range", got)
	}
}
