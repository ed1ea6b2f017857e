package format

import "testing"

func TestDetect(t *testing.T) {
	tests := []struct {
		name   string
		data   []byte
		expect Format
	}{
		{"png", []byte("\x89PNG\r\n\x1a\nrest"), PNG},
		{"jpeg", []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00}, JPEG},
		{"gif87", []byte("GIF87a...."), GIF},
		{"gif89", []byte("GIF89a...."), GIF},
		{"tiff little-endian", []byte("II*\x00abcd"), TIFF},
		{"tiff big-endian", []byte("MM\x00*abcd"), TIFF},
		{"bmp", []byte("BMxxxx"), BMP},
		{"webp", []byte("RIFF\x00\x00\x00\x00WEBPVP8 "), WebP},
		{"pdf", []byte("%PDF-1.7\n"), PDF},
		{"riff but not webp", []byte("RIFF\x00\x00\x00\x00WAVEfmt "), Unknown},
		{"empty", nil, Unknown},
		{"plain text", []byte("hello world"), Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Detect(tt.data); got != tt.expect {
				t.Errorf("Expected %v, got %v", tt.expect, got)
			}
		})
	}
}

func TestFormat_MIME(t *testing.T) {
	tests := []struct {
		f      Format
		expect string
	}{
		{PNG, "image/png"},
		{JPEG, "image/jpeg"},
		{PDF, "application/pdf"},
		{Unknown, ""},
	}

	for _, tt := range tests {
		if got := tt.f.MIME(); got != tt.expect {
			t.Errorf("%v: Expected MIME %q, got %q", tt.f, tt.expect, got)
		}
	}
}

func TestFormat_IsRaster(t *testing.T) {
	if !PNG.IsRaster() || !JPEG.IsRaster() {
		t.Error("Expected PNG and JPEG to be raster formats")
	}
	if PDF.IsRaster() {
		t.Error("Expected PDF not to be a raster format")
	}
	if Unknown.IsRaster() {
		t.Error("Expected Unknown not to be a raster format")
	}
}
