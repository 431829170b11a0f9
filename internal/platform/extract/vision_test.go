package extract

import (
	"testing"

	"github.com/labrecon/labrecon/internal/domain/recon"
)

func TestVisionExtractStructuredOutput(t *testing.T) {
	v := NewVisionExtractor()

	text := `Here are the test results from the report:
- Hemoglobin: 14.2 g/dL (13.5-17.5)
- Glucose: 105 mg/dL (70-99)
Potassium: 4.1 mmol/L
TSH: 2.5`

	got := v.Extract(text)
	if len(got) != 4 {
		t.Fatalf("got %d candidates, want 4: %+v", len(got), got)
	}

	want := []struct {
		name, value, unit, rng string
	}{
		{"Hemoglobin", "14.2", "g/dL", "13.5-17.5"},
		{"Glucose", "105", "mg/dL", "70-99"},
		{"Potassium", "4.1", "mmol/L", ""},
		{"TSH", "2.5", "", ""},
	}
	for i, w := range want {
		c := got[i]
		if c.Source != recon.SourceVision {
			t.Errorf("[%d] source = %s, want VISION", i, c.Source)
		}
		if c.Name != w.name || c.Value != w.value || c.Unit != w.unit || c.Range != w.rng {
			t.Errorf("[%d] = %q %q %q %q, want %q %q %q %q",
				i, c.Name, c.Value, c.Unit, c.Range, w.name, w.value, w.unit, w.rng)
		}
		if c.Confidence == nil || *c.Confidence != visionDefaultConfidence {
			t.Errorf("[%d] confidence = %v", i, c.Confidence)
		}
	}
}

func TestVisionExtractSkipsProse(t *testing.T) {
	v := NewVisionExtractor()

	text := `The following values were found in the image:
Note: some values were hard to read
Sorry, I cannot read the second page
Patient Name: John Smith
Date: 01/15/2024`

	if got := v.Extract(text); len(got) != 0 {
		t.Errorf("prose extracted %+v, want nothing", got)
	}
}

func TestVisionExtractCustomConfidence(t *testing.T) {
	v := &VisionExtractor{Confidence: 0.5}
	got := v.Extract("WBC: 7.8")
	if len(got) != 1 {
		t.Fatalf("got %d candidates, want 1", len(got))
	}
	if got[0].Confidence == nil || *got[0].Confidence != 0.5 {
		t.Errorf("confidence = %v, want 0.5", got[0].Confidence)
	}
}

func TestVisionExtractEmpty(t *testing.T) {
	v := NewVisionExtractor()
	if got := v.Extract(""); len(got) != 0 {
		t.Errorf("empty output extracted %+v", got)
	}
}
