package services

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/foxxcyber/ocr-gateway/internal/models"
)

// ConfidenceScore condenses a recognized document into a single confidence
// value in [0, 1]. The base is the arithmetic mean of all reported word
// confidences (words with a zero confidence reported nothing and are
// skipped); two multiplicative penalties then adjust it:
//
//   - text shorter than 10 characters halves the score, since very short
//     extractions are disproportionately likely to be noise even when the
//     engine reports high per-word confidence;
//   - the ratio of characters outside [a-zA-Z0-9], whitespace and basic
//     punctuation (. , ! ? -) scales the score down by (1 - ratio), a cheap
//     proxy for garbled, symbol-heavy output.
//
// The result is clamped to [0, 1] and rounded to 5 decimal places. This is
// a heuristic, not a calibrated probability; both penalty formulas are part
// of the contract and consumers may threshold against them.
func ConfidenceScore(doc *models.OCRDocument) float64 {
	text := strings.TrimSpace(doc.Text)

	var sum float64
	var n int
	for _, word := range doc.Words() {
		if word.Confidence > 0 {
			sum += word.Confidence
			n++
		}
	}

	confidence := 0.0
	if n > 0 {
		confidence = sum / float64(n)
	}

	// Character counts are in runes so multi-byte input is not over-counted.
	length := utf8.RuneCountInString(text)
	if length < 10 {
		confidence *= 0.5
	}

	nonAlpha := 0
	for _, r := range text {
		if !isExpectedRune(r) {
			nonAlpha++
		}
	}
	ratio := float64(nonAlpha) / math.Max(1, float64(length))
	confidence *= 1 - ratio

	confidence = math.Max(0.0, math.Min(1.0, confidence))
	return math.Round(confidence*1e5) / 1e5
}

// isExpectedRune reports whether r is in the character set ordinary OCR
// output is expected to consist of: alphanumerics, whitespace and basic
// punctuation.
func isExpectedRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
		return true
	case r >= 'A' && r <= 'Z':
		return true
	case r >= '0' && r <= '9':
		return true
	case r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\v' || r == '\f':
		return true
	case r == '.' || r == ',' || r == '!' || r == '?' || r == '-':
		return true
	}
	return false
}
