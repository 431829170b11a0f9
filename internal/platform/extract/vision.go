package extract

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/labrecon/labrecon/internal/domain/recon"
)

// VisionExtractor parses the structured text a vision model was prompted to
// emit: one observation per line in the form
//
//	NAME: VALUE UNIT (LOW-HIGH)
//
// with unit and range optional. Model output is probabilistic, so lines that
// do not fit the shape are skipped rather than treated as errors, and every
// candidate carries the model's pathway confidence.
type VisionExtractor struct {
	Confidence float64
}

const visionDefaultConfidence = 0.75

var (
	visionLine = regexp.MustCompile(fmt.Sprintf(
		`^([^:]{1,60}?)\s*:\s*(%s)\s*(%s)?\s*(%s)?\s*$`,
		numberPattern, unitPattern, rangePattern))

	// Prompt echoes and refusals the model mixes into otherwise structured
	// output.
	visionSkip = regexp.MustCompile(`(?i)^(here (is|are)|the (following|image|report)|note:|sorry|i (cannot|can't|am unable))`)
)

// NewVisionExtractor returns an extractor with the default pathway
// confidence.
func NewVisionExtractor() *VisionExtractor {
	return &VisionExtractor{Confidence: visionDefaultConfidence}
}

// Extract parses the model output. Unparseable lines are dropped silently;
// downstream filtering handles semantically implausible values.
func (v *VisionExtractor) Extract(text string) []recon.RawCandidate {
	conf := v.Confidence
	if conf <= 0 {
		conf = visionDefaultConfidence
	}

	var out []recon.RawCandidate
	for _, line := range Lines(text) {
		line = strings.TrimLeft(line, "-*• \t")
		if line == "" || visionSkip.MatchString(line) {
			continue
		}
		m := visionLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		c := conf
		out = append(out, recon.RawCandidate{
			Source:     recon.SourceVision,
			Name:       strings.TrimSpace(m[1]),
			Value:      strings.TrimSpace(m[2]),
			Unit:       strings.TrimSpace(m[3]),
			Range:      trimRange(m[4]),
			Confidence: &c,
		})
	}
	return out
}
