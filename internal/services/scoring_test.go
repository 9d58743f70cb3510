package services

import (
	"strings"
	"testing"

	"github.com/foxxcyber/ocr-gateway/internal/models"
)

// doc builds a single-page document with one word per confidence value
func doc(text string, confidences ...float64) *models.OCRDocument {
	words := make([]models.OCRWord, len(confidences))
	for i, c := range confidences {
		words[i] = models.OCRWord{Text: "w", Confidence: c}
	}
	return &models.OCRDocument{
		Text: text,
		Pages: []models.OCRPage{{
			Blocks: []models.OCRBlock{{
				Paragraphs: []models.OCRParagraph{{Words: words}},
			}},
		}},
	}
}

func TestConfidenceScore(t *testing.T) {
	tests := []struct {
		name string
		doc  *models.OCRDocument
		want float64
	}{
		{
			// mean 0.9, short-text penalty halves, no symbol penalty
			name: "short text halves the mean",
			doc:  doc("Hi", 0.9, 0.9),
			want: 0.45,
		},
		{
			// 20 alphanumeric chars: no penalty applies
			name: "long clean text keeps the mean",
			doc:  doc("abcdefghij0123456789", 0.8, 0.9, 1.0),
			want: 0.9,
		},
		{
			name: "no words yields zero",
			doc:  &models.OCRDocument{Text: "some recognized text"},
			want: 0.0,
		},
		{
			// zero confidences carry no signal, so the base stays zero
			name: "all-zero confidences yield zero",
			doc:  doc("some recognized text", 0, 0, 0),
			want: 0.0,
		},
		{
			// words reported but no text: the short-text penalty still
			// applies to the word-derived mean
			name: "empty text halves word mean",
			doc:  doc("", 0.9, 0.9),
			want: 0.45,
		},
		{
			name: "empty document yields zero",
			doc:  &models.OCRDocument{},
			want: 0.0,
		},
		{
			// every character is outside the expected set: ratio 1 zeroes
			// the score despite perfect word confidence
			name: "pure symbol noise zeroes the score",
			doc:  doc("@#$%^&*()@#$%^&*()", 1.0, 1.0),
			want: 0.0,
		},
		{
			// 2 of 20 chars are symbols: 0.9 * (1 - 0.1) = 0.81
			name: "partial symbol noise scales down",
			doc:  doc("abcdefgh@#0123456789", 0.9, 0.9),
			want: 0.81,
		},
		{
			// basic punctuation is not noise
			name: "punctuation is expected",
			doc:  doc("Hello, world! Is it you?", 0.8),
			want: 0.8,
		},
		{
			// mean 2.5/3 rounds to 5 decimal places
			name: "rounds to five decimals",
			doc:  doc("abcdefghij0123456789", 0.9, 0.8, 0.8),
			want: 0.83333,
		},
		{
			// zero-confidence words are excluded from the mean, not
			// averaged in
			name: "unreported confidences excluded from mean",
			doc:  doc("abcdefghij0123456789", 0.8, 0, 0.6),
			want: 0.7,
		},
		{
			// surrounding whitespace does not dodge the short-text penalty
			name: "text is trimmed before measuring",
			doc:  doc("   Hi   ", 0.9, 0.9),
			want: 0.45,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ConfidenceScore(tt.doc); got != tt.want {
				t.Errorf("ConfidenceScore() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConfidenceScore_Idempotent(t *testing.T) {
	d := doc("abcdefghij0123456789", 0.7, 0.8, 0.9)
	first := ConfidenceScore(d)
	second := ConfidenceScore(d)
	if first != second {
		t.Errorf("ConfidenceScore not idempotent: %v then %v", first, second)
	}
}

func TestConfidenceScore_Bounds(t *testing.T) {
	docs := []*models.OCRDocument{
		doc("", 0, 0, 0),
		doc("@@@@", 1.0),
		doc(strings.Repeat("a", 100), 1.0, 1.0, 1.0),
		doc("\x01\x02\x03", 0.5),
		{},
	}

	for i, d := range docs {
		got := ConfidenceScore(d)
		if got < 0.0 || got > 1.0 {
			t.Errorf("doc %d: ConfidenceScore() = %v, want within [0, 1]", i, got)
		}
	}
}
