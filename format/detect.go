// Package format provides input format detection for the scantab library.
package format

import "bytes"

// Format represents a supported input format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// PNG indicates a PNG image.
	PNG
	// JPEG indicates a JPEG image.
	JPEG
	// GIF indicates a GIF image.
	GIF
	// TIFF indicates a TIFF image.
	TIFF
	// BMP indicates a BMP image.
	BMP
	// WebP indicates a WebP image.
	WebP
	// PDF indicates a PDF document.
	PDF
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case PNG:
		return "PNG"
	case JPEG:
		return "JPEG"
	case GIF:
		return "GIF"
	case TIFF:
		return "TIFF"
	case BMP:
		return "BMP"
	case WebP:
		return "WebP"
	case PDF:
		return "PDF"
	default:
		return "Unknown"
	}
}

// MIME returns the MIME type for the format, or an empty string for
// Unknown.
func (f Format) MIME() string {
	switch f {
	case PNG:
		return "image/png"
	case JPEG:
		return "image/jpeg"
	case GIF:
		return "image/gif"
	case TIFF:
		return "image/tiff"
	case BMP:
		return "image/bmp"
	case WebP:
		return "image/webp"
	case PDF:
		return "application/pdf"
	default:
		return ""
	}
}

// IsRaster returns true for raster image formats (anything except PDF
// and Unknown).
func (f Format) IsRaster() bool {
	switch f {
	case PNG, JPEG, GIF, TIFF, BMP, WebP:
		return true
	default:
		return false
	}
}

// Detect identifies the format of the given data by its magic bytes.
// It returns Unknown if the data matches no supported format.
func Detect(data []byte) Format {
	switch {
	case bytes.HasPrefix(data, []byte("\x89PNG\r\n\x1a\n")):
		return PNG
	case bytes.HasPrefix(data, []byte{0xFF, 0xD8, 0xFF}):
		return JPEG
	case bytes.HasPrefix(data, []byte("GIF87a")) || bytes.HasPrefix(data, []byte("GIF89a")):
		return GIF
	case bytes.HasPrefix(data, []byte("II*\x00")) || bytes.HasPrefix(data, []byte("MM\x00*")):
		return TIFF
	case bytes.HasPrefix(data, []byte("BM")):
		return BMP
	case len(data) >= 12 && bytes.Equal(data[:4], []byte("RIFF")) && bytes.Equal(data[8:12], []byte("WEBP")):
		return WebP
	case bytes.HasPrefix(data, []byte("%PDF-")):
		return PDF
	default:
		return Unknown
	}
}
