// Package scantab extracts text and tabular data from scanned documents
// using an external recognition service, with a table-aware
// pre-processing stage: table regions are detected with a layout-analysis
// engine, cropped and upscaled for accuracy, recognized individually, and
// the resulting markdown tables are classified and quality-checked.
//
// Basic usage:
//
//	recognizer, err := ocr.NewGemini(ctx, apiKey)
//	if err != nil {
//	    // handle error
//	}
//	engine := layout.NewHTTPEngine("http://localhost:8866/analyze")
//	defer engine.Close()
//
//	text, warnings, err := scantab.FromFile("report.png").
//	    WithEngine(engine).
//	    WithRecognizer(recognizer).
//	    Text(ctx)
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", scantab.FormatWarnings(warnings))
//	}
//
// When no table is detected, or the layout engine is unavailable, the
// whole document is sent to the recognizer unchunked; table detection
// never makes extraction worse than plain recognition. PDFs always take
// the unchunked path.
//
// For advanced use cases the lower-level packages are also available:
// tables (detection, parsing, classification), imaging (raster
// operations), layout (engine abstraction), and ocr (recognizers).
package scantab

import (
	"os"

	"github.com/tsawler/scantab/format"
)

// FromBytes creates an Extractor for in-memory document bytes. The
// format (PNG, JPEG, PDF, ...) is detected from the data.
//
// Example:
//
//	text, warnings, err := scantab.FromBytes(data).
//	    WithEngine(engine).
//	    WithRecognizer(recognizer).
//	    Text(ctx)
func FromBytes(data []byte) *Extractor {
	return &Extractor{
		data:    data,
		format:  format.Detect(data),
		options: defaultOptions(),
	}
}

// FromFile creates an Extractor for a document on disk. The file is
// read eagerly; a read failure surfaces from the first terminal
// operation.
func FromFile(filename string) *Extractor {
	data, err := os.ReadFile(filename)
	if err != nil {
		return &Extractor{err: err, options: defaultOptions()}
	}
	return FromBytes(data)
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustText is a helper that wraps a call to a terminal operation
// returning (T, []Warning, error) and panics if the error is non-nil.
// It discards warnings and returns just the value.
//
// Example:
//
//	text := scantab.MustText(scantab.FromFile("report.png").
//	    WithEngine(engine).WithRecognizer(recognizer).Text(ctx))
func MustText[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
