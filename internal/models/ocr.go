package models

// OCRWord is a single recognized word. A zero Confidence means the engine
// reported no confidence for this word; such words carry no signal and are
// excluded from score aggregation.
type OCRWord struct {
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence"`
}

// OCRParagraph groups consecutive words within a block
type OCRParagraph struct {
	Words []OCRWord `json:"words"`
}

// OCRBlock groups paragraphs within a page
type OCRBlock struct {
	Paragraphs []OCRParagraph `json:"paragraphs"`
}

// OCRPage is one page of recognized content
type OCRPage struct {
	Blocks []OCRBlock `json:"blocks"`
}

// OCRDocument is the full output of a single engine invocation: the raw
// recognized text plus the page/block/paragraph/word hierarchy with per-word
// confidences. Read-only once produced.
type OCRDocument struct {
	Text  string    `json:"text"`
	Pages []OCRPage `json:"pages"`
}

// Words returns all words in document order
func (d *OCRDocument) Words() []OCRWord {
	var words []OCRWord
	for _, page := range d.Pages {
		for _, block := range page.Blocks {
			for _, para := range block.Paragraphs {
				words = append(words, para.Words...)
			}
		}
	}
	return words
}
