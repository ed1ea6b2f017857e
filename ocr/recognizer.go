// Package ocr defines the recognition-service collaborator used to turn
// page and table-crop images into markdown text.
//
// The pipeline treats recognition as an opaque function: given image (or
// PDF) bytes, return markdown-formatted text, conceptually one block per
// page joined by a blank line. Implementations provided here:
//
//   - [Gemini] - remote vision-language model via the Gemini API,
//     prompted to preserve tables as markdown.
//   - Local - Tesseract via gosseract, available when built with the
//     "ocr" tag; produces plain text with no markdown guarantee.
//
// Retry policy is deliberately absent: callers that want retries wrap
// the Recognizer themselves.
package ocr

import (
	"context"
	"encoding/base64"
	"fmt"
)

// Recognizer converts a document or image payload into markdown text.
type Recognizer interface {
	// Recognize runs recognition on the given bytes. mimeType describes
	// the payload ("image/png", "application/pdf", ...). The returned
	// text is markdown with pages joined by blank lines.
	Recognize(ctx context.Context, data []byte, mimeType string) (string, error)
}

// DataURI encodes a payload as a data URI, the transport form expected
// by hosted recognition endpoints.
func DataURI(mimeType string, data []byte) string {
	return fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(data))
}
