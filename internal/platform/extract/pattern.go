package extract

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/labrecon/labrecon/internal/domain/recon"
	"github.com/labrecon/labrecon/internal/domain/reference"
)

// PatternExtractor is the deterministic pathway: it scans OCR'd report text
// line by line with patterns derived from the knowledge base alias table,
// plus a generic "name value unit (range)" fallback for lines no alias
// matched. Pattern hits carry high confidence because the value position is
// anchored to a known test name.
type PatternExtractor struct {
	aliases []aliasPattern
	generic *regexp.Regexp
}

type aliasPattern struct {
	name string
	re   *regexp.Regexp
}

const (
	patternAliasConfidence   = 0.9
	patternGenericConfidence = 0.6
)

// NewPatternExtractor compiles one pattern per knowledge base name and
// alias. Longer aliases are tried first so "hemoglobin a1c" wins over
// "hemoglobin" on the same line.
func NewPatternExtractor(kb *reference.Registry) *PatternExtractor {
	var names []string
	seen := make(map[string]bool)
	for _, key := range kb.Keys() {
		a, _ := kb.Get(key)
		for _, name := range append([]string{a.Key, a.Display}, a.Aliases...) {
			n := reference.NormalizeName(name)
			if n == "" || seen[n] {
				continue
			}
			seen[n] = true
			names = append(names, n)
		}
	}
	sort.SliceStable(names, func(i, j int) bool { return len(names[i]) > len(names[j]) })

	p := &PatternExtractor{
		generic: regexp.MustCompile(fmt.Sprintf(
			`^([A-Za-z][A-Za-z ()/%%-]{1,40}?)\s*[:=]?\s+(%s)\s*(%s)?\s*(%s)?$`,
			numberPattern, unitPattern, rangePattern)),
	}
	for _, name := range names {
		// Alias words may be separated by any run of whitespace in OCR
		// output.
		words := make([]string, 0, 4)
		for _, w := range strings.Fields(name) {
			words = append(words, regexp.QuoteMeta(w))
		}
		expr := fmt.Sprintf(`(?i)\b(%s)\b\s*[:=]?\s*(%s)\s*(%s)?\s*(%s)?`,
			strings.Join(words, `\s+`), numberPattern, unitPattern, rangePattern)
		p.aliases = append(p.aliases, aliasPattern{name: name, re: regexp.MustCompile(expr)})
	}
	return p
}

// Extract scans the text and returns one candidate per matched line. Each
// line yields at most one candidate; the longest matching alias wins.
func (p *PatternExtractor) Extract(text string) []recon.RawCandidate {
	var out []recon.RawCandidate
	for _, line := range Lines(text) {
		if c, ok := p.extractLine(line); ok {
			out = append(out, c)
		}
	}
	return out
}

func (p *PatternExtractor) extractLine(line string) (recon.RawCandidate, bool) {
	for _, ap := range p.aliases {
		m := ap.re.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		return candidate(m[1], m[2], m[3], m[4], patternAliasConfidence), true
	}

	// Generic fallback only fires when the line carries a reference range;
	// a bare "word number" line is too often a date or page footer.
	m := p.generic.FindStringSubmatch(line)
	if m == nil || m[4] == "" {
		return recon.RawCandidate{}, false
	}
	return candidate(m[1], m[2], m[3], m[4], patternGenericConfidence), true
}

func candidate(name, value, unit, rng string, confidence float64) recon.RawCandidate {
	return recon.RawCandidate{
		Source:     recon.SourcePattern,
		Name:       strings.TrimSpace(name),
		Value:      strings.TrimSpace(value),
		Unit:       strings.TrimSpace(unit),
		Range:      trimRange(rng),
		Confidence: &confidence,
	}
}

func trimRange(rng string) string {
	return strings.Trim(strings.TrimSpace(rng), "()[]")
}
