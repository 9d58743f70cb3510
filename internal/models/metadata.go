package models

// ExifValueKind discriminates the decoded type of an EXIF tag value
type ExifValueKind string

const (
	ExifKindString ExifValueKind = "string"
	ExifKindNumber ExifValueKind = "number"
	// ExifKindRaw is the fallback for values that decode as neither text nor
	// a number; the tag's raw representation is kept as a string.
	ExifKindRaw ExifValueKind = "raw"
)

// ExifValue is a tagged union over the value types EXIF tags can carry
type ExifValue struct {
	Kind   ExifValueKind `json:"kind"`
	Text   string        `json:"text,omitempty"`
	Number float64       `json:"number,omitempty"`
	Raw    string        `json:"raw,omitempty"`
}

// ImageMetadata describes an uploaded image. Computed once from the raw
// bytes and never mutated afterwards. Decoded fields are zero when the image
// could not be decoded; Exif is nil when the image carries no EXIF data.
type ImageMetadata struct {
	Filename    string               `json:"filename"`
	ContentType string               `json:"content_type"`
	SizeBytes   int64                `json:"size_bytes"`
	Format      string               `json:"format,omitempty"`
	Width       int                  `json:"width,omitempty"`
	Height      int                  `json:"height,omitempty"`
	ColorMode   string               `json:"color_mode,omitempty"`
	Exif        map[string]ExifValue `json:"exif,omitempty"`
}
