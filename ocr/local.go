//go:build ocr

package ocr

import (
	"context"
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// Local is a Recognizer backed by the Tesseract OCR engine via
// gosseract. It requires Tesseract to be installed on the system and
// the module to be built with the "ocr" tag. On macOS, install via:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr
//
// Unlike the remote recognizers, Tesseract returns plain text with no
// markdown structure; table layout is not preserved. It is intended as
// an offline fallback for plain-text documents.
type Local struct {
	client *gosseract.Client
}

// NewLocal creates a new Tesseract-backed recognizer. The recognizer
// should be closed when no longer needed to release resources.
func NewLocal() (*Local, error) {
	return &Local{client: gosseract.NewClient()}, nil
}

// Close releases OCR resources.
func (l *Local) Close() error {
	if l.client != nil {
		return l.client.Close()
	}
	return nil
}

// Recognize performs OCR on image data (PNG, TIFF, JPEG, etc.). The
// mimeType is ignored; Tesseract sniffs the format itself. The context
// is not consulted mid-inference (gosseract has no cancellation hook).
func (l *Local) Recognize(ctx context.Context, data []byte, mimeType string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if err := l.client.SetImageFromBytes(data); err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}

	text, err := l.client.Text()
	if err != nil {
		return "", fmt.Errorf("OCR failed: %w", err)
	}

	return strings.TrimSpace(text), nil
}

// SetLanguage sets the language(s) for OCR recognition. Multiple
// languages can be specified as a "+" separated string (e.g.,
// "eng+fra"). Default is "eng" (English).
func (l *Local) SetLanguage(lang string) error {
	return l.client.SetLanguage(lang)
}

// SetPageSegMode sets the page segmentation mode, which affects how
// Tesseract analyzes the page layout. See gosseract.PageSegMode
// constants for available modes.
func (l *Local) SetPageSegMode(mode gosseract.PageSegMode) error {
	return l.client.SetPageSegMode(mode)
}
