//go:build windows

package services

import (
	"context"
	"errors"

	"github.com/foxxcyber/ocr-gateway/internal/models"
)

// TesseractEngine is a stub on Windows; gosseract needs cgo and a local
// Tesseract installation. Run the service in a Linux container instead.
type TesseractEngine struct{}

// NewTesseractEngine always fails on Windows, which degrades the service to
// ServiceUnavailable responses rather than crashing.
func NewTesseractEngine(language string, pageSegMode int) (*TesseractEngine, error) {
	return nil, errors.New("OCR engine is not available on Windows - run in Docker container")
}

// Recognize is unreachable on Windows; construction always fails
func (e *TesseractEngine) Recognize(ctx context.Context, image []byte) (*models.OCRDocument, error) {
	return nil, errors.New("OCR engine is not available on Windows")
}
