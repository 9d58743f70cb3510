package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/foxxcyber/ocr-gateway/internal/config"
	"github.com/foxxcyber/ocr-gateway/internal/services"
)

// Handler holds all handler dependencies
type Handler struct {
	processor *services.Processor
	cfg       *config.Config
}

// New creates a new Handler instance
func New(processor *services.Processor, cfg *config.Config) *Handler {
	return &Handler{
		processor: processor,
		cfg:       cfg,
	}
}

// ErrorHandler is a custom error handler for Fiber
func ErrorHandler(c *fiber.Ctx, err error) error {
	// Default to 500
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	// Check if it's a Fiber error
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	return c.Status(code).JSON(fiber.Map{
		"error": message,
	})
}
