//go:build !windows

package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"

	"github.com/foxxcyber/ocr-gateway/internal/models"
)

// TesseractEngine recognizes text with a local Tesseract installation via
// gosseract. Each Recognize call uses its own short-lived client, so no lock
// is held across the blocking OCR work and concurrent requests do not
// serialize on a shared client.
type TesseractEngine struct {
	language    string
	pageSegMode gosseract.PageSegMode
}

// NewTesseractEngine creates the engine and probes the installation by
// opening a throwaway client with the configured language. A probe failure
// (missing tesseract binary or language data) is returned to the caller,
// which is expected to degrade to ServiceUnavailable rather than crash.
func NewTesseractEngine(language string, pageSegMode int) (*TesseractEngine, error) {
	probe := gosseract.NewClient()
	defer probe.Close()

	if err := probe.SetLanguage(language); err != nil {
		return nil, fmt.Errorf("failed to set OCR language %q: %w", language, err)
	}

	return &TesseractEngine{
		language:    language,
		pageSegMode: gosseract.PageSegMode(pageSegMode),
	}, nil
}

// Recognize runs OCR on image and returns the recognized document. The
// blocking Tesseract call runs in its own goroutine so ctx cancellation and
// deadlines are honored; on expiry the abandoned call finishes in the
// background and its client is closed there.
func (e *TesseractEngine) Recognize(ctx context.Context, image []byte) (*models.OCRDocument, error) {
	type outcome struct {
		doc *models.OCRDocument
		err error
	}

	ch := make(chan outcome, 1)
	go func() {
		doc, err := e.recognize(image)
		ch <- outcome{doc: doc, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case out := <-ch:
		return out.doc, out.err
	}
}

func (e *TesseractEngine) recognize(image []byte) (*models.OCRDocument, error) {
	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(e.language); err != nil {
		return nil, fmt.Errorf("failed to set OCR language: %w", err)
	}
	if err := client.SetPageSegMode(e.pageSegMode); err != nil {
		return nil, fmt.Errorf("failed to set page segmentation mode: %w", err)
	}
	if err := client.SetImageFromBytes(image); err != nil {
		return nil, fmt.Errorf("failed to set image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return nil, fmt.Errorf("failed to extract text: %w", err)
	}

	doc := &models.OCRDocument{Text: text}
	if strings.TrimSpace(text) != "" {
		doc.Pages = buildPages(client)
	}
	return doc, nil
}

// buildPages reconstructs the page/block/paragraph/word hierarchy from
// Tesseract's word boxes. Tesseract works one page at a time, so the result
// is a single page; block and paragraph numbering comes from the layout
// analysis. Word confidences are scaled from Tesseract's 0-100 range down to
// [0, 1]. Box extraction failing is not fatal: the document then carries
// text but no word confidences, which scores as zero signal.
func buildPages(client *gosseract.Client) []models.OCRPage {
	boxes, err := client.GetBoundingBoxesVerbose()
	if err != nil || len(boxes) == 0 {
		return nil
	}

	page := models.OCRPage{}
	blockNum, parNum := -1, -1
	for _, box := range boxes {
		if box.BlockNum != blockNum {
			page.Blocks = append(page.Blocks, models.OCRBlock{})
			blockNum = box.BlockNum
			parNum = -1
		}
		block := &page.Blocks[len(page.Blocks)-1]
		if box.ParNum != parNum {
			block.Paragraphs = append(block.Paragraphs, models.OCRParagraph{})
			parNum = box.ParNum
		}
		para := &block.Paragraphs[len(block.Paragraphs)-1]
		para.Words = append(para.Words, models.OCRWord{
			Text:       box.Word,
			Confidence: box.Confidence / 100.0,
		})
	}

	return []models.OCRPage{page}
}
