package extract

import (
	"testing"

	"github.com/labrecon/labrecon/internal/domain/recon"
	"github.com/labrecon/labrecon/internal/domain/reference"
)

func TestPatternExtractTypicalPanel(t *testing.T) {
	p := NewPatternExtractor(reference.Default())

	text := `COMPLETE BLOOD COUNT
Hemoglobin 14.2 g/dL (13.5-17.5)
WBC: 7.8 10^3/uL 4.5-11.0
Platelet Count 250 (150-400)
Glucose = 105 mg/dL [70-99]
Page 1 of 2`

	got := p.Extract(text)
	if len(got) != 4 {
		t.Fatalf("got %d candidates, want 4: %+v", len(got), got)
	}

	want := []struct {
		name, value, unit, rng string
	}{
		{"Hemoglobin", "14.2", "g/dL", "13.5-17.5"},
		{"WBC", "7.8", "10^3/uL", "4.5-11.0"},
		{"Platelet Count", "250", "", "150-400"},
		{"Glucose", "105", "mg/dL", "70-99"},
	}
	for i, w := range want {
		c := got[i]
		if c.Source != recon.SourcePattern {
			t.Errorf("[%d] source = %s, want PATTERN", i, c.Source)
		}
		if c.Name != w.name || c.Value != w.value || c.Unit != w.unit || c.Range != w.rng {
			t.Errorf("[%d] = %q %q %q %q, want %q %q %q %q",
				i, c.Name, c.Value, c.Unit, c.Range, w.name, w.value, w.unit, w.rng)
		}
		if c.Confidence == nil || *c.Confidence != patternAliasConfidence {
			t.Errorf("[%d] confidence = %v, want alias confidence", i, c.Confidence)
		}
	}
}

func TestPatternExtractLongestAliasWins(t *testing.T) {
	p := NewPatternExtractor(reference.Default())

	got := p.Extract("Hemoglobin A1c 5.9 % (4.0-5.6)")
	if len(got) != 1 {
		t.Fatalf("got %d candidates, want 1", len(got))
	}
	if reference.NormalizeName(got[0].Name) != "hemoglobin a1c" {
		t.Errorf("name = %q, want the longer alias", got[0].Name)
	}
	if got[0].Value != "5.9" {
		t.Errorf("value = %q, want 5.9", got[0].Value)
	}
}

func TestPatternExtractGenericFallback(t *testing.T) {
	p := NewPatternExtractor(reference.Default())

	// A test name the alias table does not know; the range makes the line
	// eligible for the generic pattern.
	got := p.Extract("Novel Marker Q 3.7 ng/mL (1.0-5.0)")
	if len(got) != 1 {
		t.Fatalf("got %d candidates, want 1: %+v", len(got), got)
	}
	c := got[0]
	if c.Name != "Novel Marker Q" || c.Value != "3.7" || c.Range != "1.0-5.0" {
		t.Errorf("generic candidate = %+v", c)
	}
	if c.Confidence == nil || *c.Confidence != patternGenericConfidence {
		t.Errorf("confidence = %v, want generic confidence", c.Confidence)
	}
}

func TestPatternExtractSkipsRangelessUnknownLines(t *testing.T) {
	p := NewPatternExtractor(reference.Default())

	// No alias match and no range: dates and footers look exactly like
	// this, so the generic pattern must not fire.
	for _, line := range []string{
		"Collected 15",
		"Specimen 204581",
		"Requisition 99120 ml",
	} {
		if got := p.Extract(line); len(got) != 0 {
			t.Errorf("%q extracted %+v, want nothing", line, got)
		}
	}
}

func TestPatternExtractEmptyText(t *testing.T) {
	p := NewPatternExtractor(reference.Default())
	if got := p.Extract(""); len(got) != 0 {
		t.Errorf("empty text extracted %+v", got)
	}
	if got := p.Extract("\n\n   \n"); len(got) != 0 {
		t.Errorf("blank text extracted %+v", got)
	}
}
