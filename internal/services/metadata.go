package services

import (
	"bytes"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/rwcarlsen/goexif/exif"
	"github.com/rwcarlsen/goexif/tiff"

	"github.com/foxxcyber/ocr-gateway/internal/models"
)

// ExtractMetadata builds the metadata block for an uploaded image: declared
// filename/content type/size plus decoded format, dimensions, color mode and
// any EXIF tags. Decoding failures are not errors; undecodable images simply
// yield the declared fields only.
func ExtractMetadata(data []byte, filename, contentType string) *models.ImageMetadata {
	meta := &models.ImageMetadata{
		Filename:    filename,
		ContentType: contentType,
		SizeBytes:   int64(len(data)),
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err == nil {
		meta.Format = format
		meta.Width = cfg.Width
		meta.Height = cfg.Height
		meta.ColorMode = colorModeName(cfg.ColorModel)
	}

	meta.Exif = extractExif(data)
	return meta
}

// colorModeName maps a decoded color model to a short descriptive name
func colorModeName(model color.Model) string {
	switch model {
	case color.RGBAModel:
		return "rgba"
	case color.RGBA64Model:
		return "rgba64"
	case color.NRGBAModel:
		return "nrgba"
	case color.NRGBA64Model:
		return "nrgba64"
	case color.GrayModel:
		return "gray"
	case color.Gray16Model:
		return "gray16"
	case color.YCbCrModel:
		return "ycbcr"
	case color.CMYKModel:
		return "cmyk"
	}
	if _, ok := model.(color.Palette); ok {
		return "palette"
	}
	return ""
}

// extractExif decodes EXIF tags from data, returning nil when the image
// carries none (typical for PNG and GIF uploads).
func extractExif(data []byte) map[string]models.ExifValue {
	x, err := exif.Decode(bytes.NewReader(data))
	if err != nil {
		return nil
	}

	w := &exifWalker{tags: make(map[string]models.ExifValue)}
	if err := x.Walk(w); err != nil || len(w.tags) == 0 {
		return nil
	}
	return w.tags
}

type exifWalker struct {
	tags map[string]models.ExifValue
}

// Walk classifies each tag into the string/number/raw union. Multi-component
// values and unrecognized formats fall back to the tag's raw string form.
func (w *exifWalker) Walk(name exif.FieldName, tag *tiff.Tag) error {
	w.tags[string(name)] = exifValue(tag)
	return nil
}

func exifValue(tag *tiff.Tag) models.ExifValue {
	if tag.Count == 1 {
		switch tag.Format() {
		case tiff.IntVal:
			if v, err := tag.Int64(0); err == nil {
				return models.ExifValue{Kind: models.ExifKindNumber, Number: float64(v)}
			}
		case tiff.RatVal:
			if num, den, err := tag.Rat2(0); err == nil && den != 0 {
				return models.ExifValue{Kind: models.ExifKindNumber, Number: float64(num) / float64(den)}
			}
		case tiff.FloatVal:
			if v, err := tag.Float(0); err == nil {
				return models.ExifValue{Kind: models.ExifKindNumber, Number: v}
			}
		}
	}
	if tag.Format() == tiff.StringVal {
		if s, err := tag.StringVal(); err == nil {
			return models.ExifValue{Kind: models.ExifKindString, Text: s}
		}
	}
	return models.ExifValue{Kind: models.ExifKindRaw, Raw: tag.String()}
}
