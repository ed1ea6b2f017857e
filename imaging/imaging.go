package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"math"

	// Register decoders for every raster format the detection path
	// accepts.
	_ "image/gif"
	_ "image/jpeg"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	xdraw "golang.org/x/image/draw"

	"github.com/tsawler/scantab/model"
)

// DecodeError indicates that input bytes could not be decoded as an
// image. It is fatal for the operation that required the decode.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode image: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// EncodeError indicates that an image could not be serialized, for
// example a zero-area crop. Callers skip the offending region and
// continue with the rest.
type EncodeError struct {
	Err error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("failed to encode image: %v", e.Err)
}

func (e *EncodeError) Unwrap() error {
	return e.Err
}

// Decode decodes raw image bytes (PNG, JPEG, GIF, TIFF, BMP, or WebP)
// into an image. Failure is reported as a *DecodeError.
func Decode(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, &DecodeError{Err: err}
	}
	return img, nil
}

// CropWithPadding extracts the region of img covered by box expanded by
// pad pixels on every side, clamped to the image bounds. The result is
// a fresh buffer; img is never mutated.
//
// If the padded box falls outside the image it is truncated, not
// wrapped; a box fully outside the image yields a zero-area crop, which
// callers must handle (encoding it will fail with an *EncodeError).
func CropWithPadding(img image.Image, box model.BBox, pad int) image.Image {
	bounds := img.Bounds()
	clamped := box.Expand(pad).Clamp(bounds.Dx(), bounds.Dy())

	dst := image.NewRGBA(image.Rect(0, 0, clamped.Width(), clamped.Height()))
	if clamped.IsEmpty() {
		return dst
	}

	src := image.Rect(
		bounds.Min.X+clamped.X1,
		bounds.Min.Y+clamped.Y1,
		bounds.Min.X+clamped.X2,
		bounds.Min.Y+clamped.Y2,
	)
	draw.Draw(dst, dst.Bounds(), img, src.Min, draw.Src)
	return dst
}

// Upscale resizes img by the given factor using Catmull-Rom resampling,
// which keeps glyph edges smooth enough for downstream recognition.
// A factor of 1.0 or less is treated as identity and returns img
// unchanged.
func Upscale(img image.Image, factor float64) image.Image {
	if factor <= 1.0 {
		return img
	}

	bounds := img.Bounds()
	w := int(math.Round(float64(bounds.Dx()) * factor))
	h := int(math.Round(float64(bounds.Dy()) * factor))

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, xdraw.Src, nil)
	return dst
}

// PNGBytes serializes img as PNG. Degenerate images (zero-area) are
// rejected with an *EncodeError.
func PNGBytes(img image.Image) ([]byte, error) {
	bounds := img.Bounds()
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return nil, &EncodeError{Err: fmt.Errorf("zero-area image %dx%d", bounds.Dx(), bounds.Dy())}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, &EncodeError{Err: err}
	}
	return buf.Bytes(), nil
}

// EncodeBase64 serializes img as PNG and returns the base64-encoded
// result, suitable for a data-URI payload to a recognition service.
func EncodeBase64(img image.Image) (string, error) {
	data, err := PNGBytes(img)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(data), nil
}
