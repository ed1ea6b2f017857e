//go:build !ocr

package ocr

import (
	"context"
	"errors"
)

// ErrOCRNotEnabled is returned when local OCR functions are called but
// OCR support was not compiled in. Rebuild with -tags ocr to enable
// local OCR support (requires Tesseract to be installed).
var ErrOCRNotEnabled = errors.New("local OCR support not enabled; rebuild with -tags ocr")

// PageSegMode represents page segmentation modes for OCR. These control
// how Tesseract analyzes the page layout.
type PageSegMode int

// Page segmentation modes (matching the OCR-enabled implementation).
const (
	PSM_OSD_ONLY               PageSegMode = 0  // Orientation and script detection only
	PSM_AUTO_OSD               PageSegMode = 1  // Automatic with OSD
	PSM_AUTO_ONLY              PageSegMode = 2  // Automatic, no OSD or OCR
	PSM_AUTO                   PageSegMode = 3  // Fully automatic (default)
	PSM_SINGLE_COLUMN          PageSegMode = 4  // Single column of variable sizes
	PSM_SINGLE_BLOCK_VERT_TEXT PageSegMode = 5  // Single uniform block of vertically aligned text
	PSM_SINGLE_BLOCK           PageSegMode = 6  // Single uniform block of text
	PSM_SINGLE_LINE            PageSegMode = 7  // Single text line
	PSM_SINGLE_WORD            PageSegMode = 8  // Single word
	PSM_CIRCLE_WORD            PageSegMode = 9  // Single word in a circle
	PSM_SINGLE_CHAR            PageSegMode = 10 // Single character
	PSM_SPARSE_TEXT            PageSegMode = 11 // Find as much text as possible
	PSM_SPARSE_TEXT_OSD        PageSegMode = 12 // Sparse text with OSD
	PSM_RAW_LINE               PageSegMode = 13 // Treat image as single text line
)

// Local is a stub recognizer that returns errors for all operations.
// This is the implementation used when the "ocr" build tag is not set.
type Local struct{}

// NewLocal returns an error indicating local OCR support is not
// enabled. To enable it, rebuild with: go build -tags ocr
func NewLocal() (*Local, error) {
	return nil, ErrOCRNotEnabled
}

// Close is a no-op for the stub recognizer. It is safe to call on a nil
// recognizer.
func (l *Local) Close() error {
	return nil
}

// Recognize returns an error indicating local OCR support is not
// enabled.
func (l *Local) Recognize(ctx context.Context, data []byte, mimeType string) (string, error) {
	return "", ErrOCRNotEnabled
}

// SetLanguage returns an error indicating local OCR support is not
// enabled.
func (l *Local) SetLanguage(lang string) error {
	return ErrOCRNotEnabled
}

// SetPageSegMode returns an error indicating local OCR support is not
// enabled.
func (l *Local) SetPageSegMode(mode PageSegMode) error {
	return ErrOCRNotEnabled
}
