package reference

import (
	"fmt"
	"strings"
)

// Registry is the loaded Reference Knowledge Base. It is built once at
// startup and treated as immutable for the process lifetime, so it is safe
// to share across concurrent report reconciliations.
type Registry struct {
	entries map[string]*Analyte // canonical key -> entry
	index   map[string]string   // normalized name/alias -> canonical key
	keys    []string            // canonical keys in catalog order
}

// NewRegistry builds a registry from a slice of entries and validates the
// invariants the reconciliation engine depends on.
func NewRegistry(entries []Analyte) (*Registry, error) {
	r := &Registry{
		entries: make(map[string]*Analyte, len(entries)),
		index:   make(map[string]string, len(entries)*4),
	}
	for i := range entries {
		a := entries[i]
		if a.Key == "" {
			return nil, fmt.Errorf("analyte %d: key is required", i)
		}
		if _, dup := r.entries[a.Key]; dup {
			return nil, fmt.Errorf("analyte %s: duplicate key", a.Key)
		}
		if a.Low != nil && a.High != nil && *a.Low > *a.High {
			return nil, fmt.Errorf("analyte %s: low %v exceeds high %v", a.Key, *a.Low, *a.High)
		}
		if a.PlausibleLow != nil && a.PlausibleHigh != nil && *a.PlausibleLow > *a.PlausibleHigh {
			return nil, fmt.Errorf("analyte %s: plausible low %v exceeds plausible high %v", a.Key, *a.PlausibleLow, *a.PlausibleHigh)
		}
		for unit, factor := range a.Conversions {
			if factor <= 0 {
				return nil, fmt.Errorf("analyte %s: conversion factor for %q must be positive", a.Key, unit)
			}
		}
		r.entries[a.Key] = &a
		r.keys = append(r.keys, a.Key)

		r.addIndex(a.Key, a.Key)
		r.addIndex(a.Display, a.Key)
		for _, alias := range a.Aliases {
			r.addIndex(alias, a.Key)
		}
	}
	return r, nil
}

func (r *Registry) addIndex(name, key string) {
	n := NormalizeName(name)
	if n == "" {
		return
	}
	// First registration wins so catalog order stays authoritative for
	// ambiguous aliases.
	if _, exists := r.index[n]; !exists {
		r.index[n] = key
	}
}

// NormalizeName lowercases a test name and collapses internal whitespace,
// the form under which all alias matching happens.
func NormalizeName(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}

// NormalizeUnit produces the comparison form of a unit string. OCR output
// renders micro signs inconsistently, so µ and μ fold to "u".
func NormalizeUnit(unit string) string {
	u := strings.ToLower(strings.TrimSpace(unit))
	u = strings.ReplaceAll(u, "µ", "u")
	u = strings.ReplaceAll(u, "μ", "u")
	return u
}

// Resolve looks a raw test name up by exact key, display name, or alias.
func (r *Registry) Resolve(name string) (*Analyte, bool) {
	key, ok := r.index[NormalizeName(name)]
	if !ok {
		return nil, false
	}
	return r.entries[key], true
}

// Get returns the entry for a canonical key.
func (r *Registry) Get(key string) (*Analyte, bool) {
	a, ok := r.entries[key]
	return a, ok
}

// ConversionFactor returns the multiplier that takes a value reported in
// rawUnit into the analyte's canonical unit. The factor is 1 when the unit
// already is canonical (or empty), and ok=false when no factor is known.
func (r *Registry) ConversionFactor(a *Analyte, rawUnit string) (float64, bool) {
	u := NormalizeUnit(rawUnit)
	if u == "" || u == NormalizeUnit(a.Unit) {
		return 1, true
	}
	if factor, ok := a.Conversions[u]; ok {
		return factor, true
	}
	return 0, false
}

// ConvertValue converts a value reported in rawUnit into the analyte's
// canonical unit. It returns the value unchanged when the unit already is
// canonical (or empty), and ok=false when no conversion factor is known.
func (r *Registry) ConvertValue(a *Analyte, value float64, rawUnit string) (float64, bool) {
	factor, ok := r.ConversionFactor(a, rawUnit)
	if !ok {
		return value, false
	}
	return value * factor, true
}

// Search returns entries whose key, display name, or any alias contains the
// query (case-insensitive), in catalog order.
func (r *Registry) Search(query string, limit int) []*Analyte {
	if limit <= 0 {
		limit = 20
	}
	q := NormalizeName(query)
	var results []*Analyte
	for _, key := range r.keys {
		a := r.entries[key]
		if q == "" || r.matches(a, q) {
			results = append(results, a)
			if len(results) >= limit {
				break
			}
		}
	}
	return results
}

func (r *Registry) matches(a *Analyte, q string) bool {
	if strings.Contains(NormalizeName(a.Key), q) || strings.Contains(NormalizeName(a.Display), q) {
		return true
	}
	for _, alias := range a.Aliases {
		if strings.Contains(NormalizeName(alias), q) {
			return true
		}
	}
	return false
}

// Len returns the number of catalog entries.
func (r *Registry) Len() int { return len(r.entries) }

// Keys returns the canonical keys in catalog order.
func (r *Registry) Keys() []string {
	keys := make([]string, len(r.keys))
	copy(keys, r.keys)
	return keys
}
