package models

// OCRResult is the externally visible response for one processed image and
// also the value stored in the result cache. Error is only set on batch
// failure slots.
type OCRResult struct {
	Success          bool           `json:"success"`
	Text             string         `json:"text"`
	Confidence       float64        `json:"confidence"`
	ProcessingTimeMS int64          `json:"processing_time_ms"`
	Metadata         *ImageMetadata `json:"metadata,omitempty"`
	Error            string         `json:"error,omitempty"`
}

// BatchResponse wraps per-image results in input order
type BatchResponse struct {
	Results []OCRResult `json:"results"`
}

// CacheStats is a read-only view of the result cache, recomputed on demand
type CacheStats struct {
	CurrentSize int   `json:"current_size"`
	MaxSize     int   `json:"max_size"`
	TTLSeconds  int64 `json:"ttl_seconds"`
}
