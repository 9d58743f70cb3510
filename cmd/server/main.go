package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"github.com/foxxcyber/ocr-gateway/internal/cache"
	"github.com/foxxcyber/ocr-gateway/internal/config"
	"github.com/foxxcyber/ocr-gateway/internal/handlers"
	"github.com/foxxcyber/ocr-gateway/internal/services"
)

func main() {
	// Load .env file if it exists
	godotenv.Load()

	// Load configuration
	cfg := config.Load()

	// Initialize the OCR engine. Failure is not fatal: the server still
	// binds and OCR requests answer 503 until the installation is fixed.
	var engine services.Engine
	tesseract, err := services.NewTesseractEngine(cfg.OCRLanguage, cfg.OCRPageSegMode)
	if err != nil {
		log.Printf("Warning: Failed to initialize OCR engine: %v", err)
	} else {
		engine = tesseract
		log.Printf("OCR engine initialized (language=%s)", cfg.OCRLanguage)
	}

	// Result cache: content-addressed, bounded, TTL-expiring, in-memory only
	resultCache := cache.New(cfg.CacheMaxEntries, cfg.CacheTTL)

	processor := services.NewProcessor(engine, resultCache, cfg.MaxUploadBytes, cfg.OCRTimeout)

	// Initialize Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler,
		BodyLimit:    int(cfg.MaxUploadBytes) * 2, // batch uploads carry several images
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowedOrigins,
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST, OPTIONS",
	}))

	// Create handler with dependencies
	h := handlers.New(processor, cfg)

	// Routes
	app.Get("/", h.HealthCheck)
	app.Post("/extract-text", h.ExtractText)
	app.Post("/batch-extract-text", h.BatchExtractText)
	app.Get("/cache-stats", h.CacheStats)

	// Shut down cleanly on SIGINT/SIGTERM
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("Warning: Server shutdown failed: %v", err)
		}
	}()

	log.Printf("Server starting on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
