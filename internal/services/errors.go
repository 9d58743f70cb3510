package services

import (
	"errors"
	"fmt"
)

// ErrServiceUnavailable is returned when the OCR engine never initialized or
// is otherwise unusable. Callers may retry; this service does not.
var ErrServiceUnavailable = errors.New("OCR engine is not available")

// UnsupportedMediaTypeError is returned when the declared content type is
// not in the image allow-list.
type UnsupportedMediaTypeError struct {
	ContentType string
}

func (e *UnsupportedMediaTypeError) Error() string {
	return fmt.Sprintf("unsupported file format. Please upload a JPG/JPEG/PNG/GIF image. Found: %s", e.ContentType)
}

// PayloadTooLargeError is returned when the upload exceeds the configured
// size limit.
type PayloadTooLargeError struct {
	SizeBytes  int64
	LimitBytes int64
}

func (e *PayloadTooLargeError) Error() string {
	return fmt.Sprintf("file size %d exceeds the limit of %d bytes", e.SizeBytes, e.LimitBytes)
}

// EngineError wraps an engine-level failure (recognition error or timeout).
// These are transient from the caller's point of view and are never cached.
type EngineError struct {
	Err error
}

func (e *EngineError) Error() string {
	return fmt.Sprintf("OCR engine error: %v", e.Err)
}

func (e *EngineError) Unwrap() error {
	return e.Err
}
