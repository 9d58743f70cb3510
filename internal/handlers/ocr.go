package handlers

import (
	"errors"
	"io"
	"log"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"

	"github.com/foxxcyber/ocr-gateway/internal/models"
	"github.com/foxxcyber/ocr-gateway/internal/services"
)

// HealthCheck is the liveness probe
func (h *Handler) HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"message": "Service is up and running.",
	})
}

// ExtractText handles a single-image OCR request. The image arrives as the
// multipart form field "image"; the response body is the OCRResult.
func (h *Handler) ExtractText(c *fiber.Ctx) error {
	file, err := c.FormFile("image")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "image file is required")
	}

	data, contentType, err := readUpload(file)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to read uploaded file")
	}

	result, err := h.processor.ProcessImage(c.Context(), data, file.Filename, contentType)
	if err != nil {
		return statusError(err)
	}

	return c.JSON(result)
}

// BatchExtractText handles multiple images under the multipart field
// "images". Each image is processed independently; one failing image
// becomes a failure slot in the results instead of failing the request.
// Results are returned in input order.
func (h *Handler) BatchExtractText(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "multipart form is required")
	}

	files := form.File["images"]
	if len(files) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "at least one image file is required")
	}

	images := make([]services.BatchImage, 0, len(files))
	for _, file := range files {
		data, contentType, err := readUpload(file)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to read uploaded file")
		}
		images = append(images, services.BatchImage{
			Data:        data,
			Filename:    file.Filename,
			ContentType: contentType,
		})
	}

	results := h.processor.ProcessBatch(c.Context(), images)
	return c.JSON(models.BatchResponse{Results: results})
}

// CacheStats reports the result cache's current size and configured bounds
func (h *Handler) CacheStats(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"cache_statistics": h.processor.CacheStats(),
	})
}

func readUpload(file *multipart.FileHeader) ([]byte, string, error) {
	src, err := file.Open()
	if err != nil {
		return nil, "", err
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, "", err
	}
	return data, file.Header.Get("Content-Type"), nil
}

// statusError maps processing errors onto HTTP status codes: 415 for a
// disallowed content type, 413 for an oversized upload, 503 when the engine
// never initialized, 500 for engine-level failures and anything unexpected.
func statusError(err error) *fiber.Error {
	var unsupported *services.UnsupportedMediaTypeError
	var tooLarge *services.PayloadTooLargeError

	switch {
	case errors.As(err, &unsupported):
		return fiber.NewError(fiber.StatusUnsupportedMediaType, unsupported.Error())
	case errors.As(err, &tooLarge):
		return fiber.NewError(fiber.StatusRequestEntityTooLarge, tooLarge.Error())
	case errors.Is(err, services.ErrServiceUnavailable):
		return fiber.NewError(fiber.StatusServiceUnavailable, "OCR engine is not available. The service cannot process images.")
	default:
		log.Printf("OCR processing failed: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "an internal server error occurred while processing the image: "+err.Error())
	}
}
