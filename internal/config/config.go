package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	// Server
	Port           string
	AllowedOrigins string

	// Uploads
	MaxUploadBytes int64

	// Result cache
	CacheMaxEntries int
	CacheTTL        time.Duration

	// OCR engine
	OCRLanguage    string
	OCRPageSegMode int
	OCRTimeout     time.Duration

	// Environment
	Environment string
}

func Load() *Config {
	return &Config{
		Port:            getEnv("PORT", "8080"),
		AllowedOrigins:  getEnv("ALLOWED_ORIGINS", "*"),
		MaxUploadBytes:  getInt64Env("MAX_UPLOAD_BYTES", 10*1024*1024),
		CacheMaxEntries: getIntEnv("CACHE_MAX_ENTRIES", 1000),
		CacheTTL:        getDurationEnv("CACHE_TTL_SECONDS", 3600) * time.Second,
		OCRLanguage:     getEnv("OCR_LANGUAGE", "eng"),
		OCRPageSegMode:  getIntEnv("OCR_PAGE_SEG_MODE", 3), // PSM 3 = fully automatic page segmentation
		OCRTimeout:      getDurationEnv("OCR_TIMEOUT_SECONDS", 30) * time.Second,
		Environment:     getEnv("ENVIRONMENT", "development"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getInt64Env(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue int) time.Duration {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return time.Duration(intVal)
		}
	}
	return time.Duration(defaultValue)
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
