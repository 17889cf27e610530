// Package score parses free-form grade cells into numeric score values.
package score

import (
	"strconv"
	"strings"
)

// ParsedScore is the numeric interpretation of one grade cell.
type ParsedScore struct {
	Raw        string  `json:"raw"`
	Score      float64 `json:"score"`
	MaxScore   float64 `json:"max_score"`
	Percentage float64 `json:"percentage"`
}

// BareNumberPolicy governs how a cell containing only a number ("85") is
// interpreted. Treating it as a percentage out of 100 is inherited behavior
// kept for compatibility; it is a named policy so callers can opt out.
type BareNumberPolicy int

const (
	// BareNumberAsPercent treats "85" as 85 out of 100. Default.
	BareNumberAsPercent BareNumberPolicy = iota
	// BareNumberRejected treats bare numbers as non-scores.
	BareNumberRejected
)

// Normalizer parses grade cells under a fixed bare-number policy.
type Normalizer struct {
	policy BareNumberPolicy
}

// NewNormalizer creates a normalizer with the given policy.
func NewNormalizer(policy BareNumberPolicy) *Normalizer {
	return &Normalizer{policy: policy}
}

// NewDefaultNormalizer creates a normalizer with BareNumberAsPercent.
func NewDefaultNormalizer() *Normalizer {
	return &Normalizer{policy: BareNumberAsPercent}
}

// Extractable reports whether a cell should be considered for score parsing
// at all. Empty, "0" and "-" cells are placeholders and are excluded before
// Parse is ever attempted, keeping them out of statistics.
func Extractable(cell string) bool {
	switch strings.TrimSpace(cell) {
	case "", "0", "-":
		return false
	}
	return true
}

// Parse interprets a cell as a score. Three textual forms are accepted, in
// priority order: "a/b" (fraction), "n%" (explicit percentage), and a bare
// number (subject to the bare-number policy). A false return means the cell
// is not a score; callers skip such cells silently.
func (n *Normalizer) Parse(cell string) (ParsedScore, bool) {
	trimmed := strings.TrimSpace(cell)

	if strings.Contains(trimmed, "/") {
		parts := strings.SplitN(trimmed, "/", 2)
		left, lerr := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
		right, rerr := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if lerr != nil || rerr != nil || right == 0 {
			return ParsedScore{}, false
		}
		return ParsedScore{
			Raw:        cell,
			Score:      left,
			MaxScore:   right,
			Percentage: 100 * left / right,
		}, true
	}

	if strings.Contains(trimmed, "%") {
		num, err := strconv.ParseFloat(strings.TrimSpace(strings.ReplaceAll(trimmed, "%", "")), 64)
		if err != nil {
			return ParsedScore{}, false
		}
		return ParsedScore{Raw: cell, Score: num, MaxScore: 100, Percentage: num}, true
	}

	if n.policy == BareNumberRejected {
		return ParsedScore{}, false
	}
	num, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return ParsedScore{}, false
	}
	return ParsedScore{Raw: cell, Score: num, MaxScore: 100, Percentage: num}, true
}
