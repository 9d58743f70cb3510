package services

import (
	"context"
	"strings"
	"time"

	"github.com/foxxcyber/ocr-gateway/internal/cache"
	"github.com/foxxcyber/ocr-gateway/internal/models"
)

// Engine is the external OCR collaborator: given raw image bytes it returns
// the recognized document or an engine-level error. Implementations must be
// safe for concurrent use.
type Engine interface {
	Recognize(ctx context.Context, image []byte) (*models.OCRDocument, error)
}

// supportedContentTypes is the upload allow-list
var supportedContentTypes = []string{
	"image/jpeg",
	"image/jpg",
	"image/png",
	"image/gif",
}

// Processor handles one image end to end: validation, cache lookup, OCR,
// scoring, metadata and cache fill. The cache is the only state shared
// between concurrent requests; the engine call itself holds no lock, so two
// concurrent misses on the same key may both run OCR and the second Put
// simply overwrites with an equivalent result.
type Processor struct {
	// engine is nil when initialization failed at startup; requests then
	// fail with ErrServiceUnavailable instead of crashing the process.
	engine     Engine
	cache      *cache.Cache
	maxBytes   int64
	ocrTimeout time.Duration
}

// NewProcessor wires the processor. engine may be nil.
func NewProcessor(engine Engine, c *cache.Cache, maxBytes int64, ocrTimeout time.Duration) *Processor {
	return &Processor{
		engine:     engine,
		cache:      c,
		maxBytes:   maxBytes,
		ocrTimeout: ocrTimeout,
	}
}

// BatchImage is one element of a batch request
type BatchImage struct {
	Data        []byte
	Filename    string
	ContentType string
}

// ProcessImage applies the single-image contract. Validation runs before any
// OCR work; a cache hit returns the stored result without touching the
// engine. Successful results and deterministic "no text found" results are
// cached; engine failures and validation failures are not.
//
// ProcessingTimeMS always reflects this request's elapsed time, so cache
// hits report near-zero rather than the original computation's duration.
func (p *Processor) ProcessImage(ctx context.Context, image []byte, filename, contentType string) (*models.OCRResult, error) {
	start := time.Now()

	if !isSupportedImageType(contentType) {
		return nil, &UnsupportedMediaTypeError{ContentType: contentType}
	}

	key := ContentHash(image)
	if result, ok := p.cache.Get(key); ok {
		result.ProcessingTimeMS = time.Since(start).Milliseconds()
		return &result, nil
	}

	if int64(len(image)) > p.maxBytes {
		return nil, &PayloadTooLargeError{SizeBytes: int64(len(image)), LimitBytes: p.maxBytes}
	}

	if p.engine == nil {
		return nil, ErrServiceUnavailable
	}

	ctx, cancel := context.WithTimeout(ctx, p.ocrTimeout)
	defer cancel()

	doc, err := p.engine.Recognize(ctx, image)
	if err != nil {
		return nil, &EngineError{Err: err}
	}

	meta := ExtractMetadata(image, filename, contentType)

	var result models.OCRResult
	if strings.TrimSpace(doc.Text) != "" {
		result = models.OCRResult{
			Success:    true,
			Text:       NormalizeText(doc.Text),
			Confidence: ConfidenceScore(doc),
			Metadata:   meta,
		}
	} else {
		// A negative result is deterministic for these bytes and is worth
		// caching: re-running OCR would find no text again.
		result = models.OCRResult{
			Success:    false,
			Text:       "",
			Confidence: 0.0,
			Metadata:   meta,
		}
	}

	p.cache.Put(key, result)

	result.ProcessingTimeMS = time.Since(start).Milliseconds()
	return &result, nil
}

// ProcessBatch applies the single-image contract independently to each
// image, in order. A failure on one image becomes a failure slot in the
// result sequence instead of aborting the batch.
func (p *Processor) ProcessBatch(ctx context.Context, images []BatchImage) []models.OCRResult {
	results := make([]models.OCRResult, 0, len(images))
	for _, img := range images {
		res, err := p.ProcessImage(ctx, img.Data, img.Filename, img.ContentType)
		if err != nil {
			results = append(results, models.OCRResult{
				Success:    false,
				Confidence: 0.0,
				Error:      err.Error(),
			})
			continue
		}
		results = append(results, *res)
	}
	return results
}

// CacheStats exposes the result cache's read-only statistics
func (p *Processor) CacheStats() models.CacheStats {
	return p.cache.Stats()
}

func isSupportedImageType(contentType string) bool {
	for _, t := range supportedContentTypes {
		if contentType == t {
			return true
		}
	}
	return false
}
