package extract

import (
	"regexp"
	"strings"

	"github.com/labrecon/labrecon/internal/domain/recon"
)

// Extractor turns one raw text artifact (OCR output, vision model output)
// into candidate observations for the reconciliation engine. Implementations
// never classify or filter; they only lift structure out of text.
type Extractor interface {
	Extract(text string) []recon.RawCandidate
}

var (
	// numberPattern matches a lab value: optional sign, thousands separators
	// allowed, optional decimal part.
	numberPattern = `[+-]?\d{1,3}(?:,\d{3})*(?:\.\d+)?|[+-]?\d+(?:\.\d+)?|[+-]?\.\d+`

	// rangePattern matches a "low - high" reference interval, with or
	// without surrounding parentheses or brackets.
	rangePattern = `[\(\[]?\s*\d+(?:\.\d+)?\s*-\s*\d+(?:\.\d+)?\s*[\)\]]?`

	// unitPattern matches common lab unit spellings. Units are passed to
	// the normalizer verbatim, so this only has to find the token, not
	// understand it.
	unitPattern = `(?:10\^?\d+\s*/\s*[a-zA-Zµμ]+|[a-zA-Zµμ%]+(?:/[a-zA-Zµμ]+)?)`

	splitLines = regexp.MustCompile(`\r\n|\r|\n`)
)

// Lines splits raw text into trimmed, non-empty lines.
func Lines(text string) []string {
	var out []string
	for _, line := range splitLines.Split(text, -1) {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}
