package reference

import (
	"encoding/json"
	"fmt"
	"os"
)

// Load reads a knowledge base catalog from a JSON file. The file is an array
// of Analyte entries; validation failures are returned to the caller so the
// process can refuse to start (a broken knowledge base is a fatal
// precondition, never a per-report error).
func Load(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read knowledge base %s: %w", path, err)
	}

	var entries []Analyte
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse knowledge base %s: %w", path, err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("knowledge base %s: no entries", path)
	}

	// Conversion unit keys are matched post-normalization, so normalize
	// them here once rather than on every lookup.
	for i := range entries {
		if len(entries[i].Conversions) == 0 {
			continue
		}
		norm := make(map[string]float64, len(entries[i].Conversions))
		for unit, factor := range entries[i].Conversions {
			norm[NormalizeUnit(unit)] = factor
		}
		entries[i].Conversions = norm
	}

	r, err := NewRegistry(entries)
	if err != nil {
		return nil, fmt.Errorf("knowledge base %s: %w", path, err)
	}
	return r, nil
}
