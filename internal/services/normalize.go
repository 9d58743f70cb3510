package services

import "strings"

// NormalizeText cleans raw OCR output into a canonical single-line string.
// Every character outside the printable ASCII range (0x20-0x7E) becomes a
// space, runs of whitespace collapse to one space, and the result is
// trimmed. Empty input yields empty output.
func NormalizeText(raw string) string {
	if raw == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r < 0x20 || r > 0x7E {
			b.WriteByte(' ')
		} else {
			b.WriteRune(r)
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}
