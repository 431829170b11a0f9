package recon

import (
	"reflect"
	"testing"

	"github.com/labrecon/labrecon/internal/domain/reference"
)

func testEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := NewEngine(reference.Default(), DefaultOptions())
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return e
}

func TestNewEngineRequiresKnowledgeBase(t *testing.T) {
	if _, err := NewEngine(nil, DefaultOptions()); err == nil {
		t.Fatal("expected error for nil knowledge base")
	}
}

func TestReconcileAgreeingPathways(t *testing.T) {
	e := testEngine(t)
	result := e.Reconcile(
		[]RawCandidate{{Source: SourceVision, Name: "Hemoglobin", Value: "13.2", Unit: "g/dL"}},
		[]RawCandidate{{Source: SourcePattern, Name: "hemoglobin", Value: "13.2", Unit: "g/dL"}},
	)
	if len(result.Observations) != 1 {
		t.Fatalf("want 1 observation, got %d", len(result.Observations))
	}
	o := result.Observations[0]
	if o.Analyte != "HGB" || o.Value != 13.2 {
		t.Errorf("got %s=%v, want HGB=13.2", o.Analyte, o.Value)
	}
	if !reflect.DeepEqual(o.Sources, []Source{SourcePattern, SourceVision}) {
		t.Errorf("sources = %v, want both pathways", o.Sources)
	}
	// 13.2 is below the catalog's 13.5-17.5 range.
	if o.Status != StatusLow {
		t.Errorf("status = %s, want LOW per knowledge-base range", o.Status)
	}
}

func TestReconcileDropsPageHeaderNoise(t *testing.T) {
	e := testEngine(t)
	result := e.Reconcile(nil, []RawCandidate{
		{Source: SourcePattern, Name: "Page 2 of 4", Value: "2"},
		{Source: SourcePattern, Name: "Glucose", Value: "95", Unit: "mg/dL"},
	})
	if len(result.Observations) != 1 || result.Observations[0].Analyte != "GLUC" {
		t.Fatalf("page header should be filtered out, got %+v", result.Observations)
	}
}

func TestReconcileElevatedGlucose(t *testing.T) {
	e := testEngine(t)
	result := e.Reconcile(
		[]RawCandidate{{Source: SourceVision, Name: "Glucose", Value: "450", Unit: "mg/dL", Range: "70-100"}},
		nil,
	)
	if len(result.Observations) != 1 {
		t.Fatalf("want 1 observation, got %d", len(result.Observations))
	}
	if result.Observations[0].Status != StatusHigh {
		t.Errorf("status = %s, want HIGH", result.Observations[0].Status)
	}
}

func TestReconcileConvertedGlucoseStaysNormal(t *testing.T) {
	e := testEngine(t)
	result := e.Reconcile(
		nil,
		[]RawCandidate{{Source: SourcePattern, Name: "Glucose", Value: "5.5", Unit: "mmol/L", Range: "3.9-5.5"}},
	)
	if len(result.Observations) != 1 {
		t.Fatalf("want 1 observation, got %d", len(result.Observations))
	}
	o := result.Observations[0]
	if o.Unit != "mg/dL" {
		t.Errorf("unit = %q, want mg/dL", o.Unit)
	}
	if o.Status != StatusNormal {
		t.Errorf("status = %s, want NORMAL (in-range value in the printed unit)", o.Status)
	}
}

func TestReconcileImplausibleDecimalMiss(t *testing.T) {
	e := testEngine(t)
	// Vision read 4.1; the pattern pathway lost the decimal point. The
	// filter drops the pattern candidate before merging, so the vision
	// value survives alone.
	result := e.Reconcile(
		[]RawCandidate{{Source: SourceVision, Name: "Potassium", Value: "4.1", Unit: "mmol/L"}},
		[]RawCandidate{{Source: SourcePattern, Name: "Potassium", Value: "41", Unit: "mmol/L"}},
	)
	if len(result.Observations) != 1 {
		t.Fatalf("want 1 observation, got %d", len(result.Observations))
	}
	o := result.Observations[0]
	if o.Value != 4.1 {
		t.Errorf("value = %v, want vision value 4.1", o.Value)
	}
	if !reflect.DeepEqual(o.Sources, []Source{SourceVision}) {
		t.Errorf("sources = %v, want vision only", o.Sources)
	}
	if o.Conflict {
		t.Error("a filtered candidate never reaches the merger, so no conflict")
	}
	if o.Status != StatusNormal {
		t.Errorf("status = %s, want NORMAL", o.Status)
	}
}

func TestReconcileEmptyInputsIsValid(t *testing.T) {
	e := testEngine(t)
	result := e.Reconcile(nil, nil)
	if len(result.Observations) != 0 {
		t.Fatalf("want empty result, got %+v", result.Observations)
	}

	// All candidates malformed: still a valid, empty outcome.
	result = e.Reconcile(
		[]RawCandidate{{Source: SourceVision, Name: "Glucose", Value: "N/A"}},
		[]RawCandidate{{Source: SourcePattern, Name: "", Value: "95"}},
	)
	if len(result.Observations) != 0 {
		t.Fatalf("want empty result, got %+v", result.Observations)
	}
}

func TestReconcileConflictSurfaced(t *testing.T) {
	e := testEngine(t)
	result := e.Reconcile(
		[]RawCandidate{{Source: SourceVision, Name: "Creatinine", Value: "1.1", Unit: "mg/dL"}},
		[]RawCandidate{{Source: SourcePattern, Name: "Creatinine", Value: "0.9", Unit: "mg/dL"}},
	)
	o := result.Observations[0]
	if !o.Conflict {
		t.Fatal("cross-source disagreement must be surfaced")
	}
	if o.Value != 0.9 || o.AlternateValue == nil || *o.AlternateValue != 1.1 {
		t.Errorf("value=%v alternate=%v, want 0.9 with alternate 1.1", o.Value, o.AlternateValue)
	}
}

func TestReconcileConcurrentReports(t *testing.T) {
	e := testEngine(t)
	done := make(chan Result, 8)
	for i := 0; i < 8; i++ {
		go func() {
			done <- e.Reconcile(
				[]RawCandidate{{Source: SourceVision, Name: "Hemoglobin", Value: "14.0", Unit: "g/dL"}},
				[]RawCandidate{{Source: SourcePattern, Name: "Glucose", Value: "95", Unit: "mg/dL"}},
			)
		}()
	}
	for i := 0; i < 8; i++ {
		result := <-done
		if len(result.Observations) != 2 {
			t.Fatalf("want 2 observations, got %d", len(result.Observations))
		}
	}
}

func TestResultAbnormal(t *testing.T) {
	e := testEngine(t)
	result := e.Reconcile(nil, []RawCandidate{
		{Source: SourcePattern, Name: "Glucose", Value: "450", Unit: "mg/dL"},
		{Source: SourcePattern, Name: "Hemoglobin", Value: "14.0", Unit: "g/dL"},
	})
	abnormal := result.Abnormal()
	if len(abnormal) != 1 || abnormal[0].Analyte != "GLUC" {
		t.Fatalf("abnormal = %+v, want only GLUC", abnormal)
	}
}
