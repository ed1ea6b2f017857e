package scantab

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/tsawler/scantab/format"
	"github.com/tsawler/scantab/layout"
	"github.com/tsawler/scantab/model"
	"github.com/tsawler/scantab/ocr"
	"github.com/tsawler/scantab/tables"
)

// TableReport is the qualified result for one detected table region:
// where it was, what the recognizer read there, and how the parsed
// table was classified and judged.
type TableReport struct {
	// Index is the region index in raw detector output order.
	Index int

	// BBox is the detected region, clamped to the source image.
	BBox model.BBox

	// Type is the heuristic category of the best parsed table.
	Type model.TableType

	// Stable reports whether the best parsed table passed the
	// column-count stability check.
	Stable bool

	// Markdown is the raw recognition output for this region.
	Markdown string

	// Tables holds every table parsed from the recognition output,
	// in source order.
	Tables []model.Table
}

// Extractor provides a fluent interface for extracting content from
// scanned documents. Each configuration method returns a new Extractor
// instance, making it safe for concurrent use and allowing method
// chaining.
type Extractor struct {
	// Source
	data   []byte
	format format.Format

	// Collaborators
	engine     layout.Engine
	recognizer ocr.Recognizer

	// Configuration
	options ExtractOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a copy of the Extractor with deep-copied options.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		data:       e.data,
		format:     e.format,
		engine:     e.engine,
		recognizer: e.recognizer,
		options:    e.options.clone(),
		err:        e.err,
	}
}

// WithEngine sets the layout-analysis engine used for table region
// detection. Without an engine, extraction skips detection and sends
// the whole document to the recognizer.
//
// The engine is shared by every Extractor derived from this one, and
// Analyze calls on it are serialized; concurrent terminal operations
// queue rather than entering the engine simultaneously.
func (e *Extractor) WithEngine(engine layout.Engine) *Extractor {
	ne := e.clone()
	ne.engine = layout.Serialized(engine)
	return ne
}

// WithRecognizer sets the recognition service used to turn images into
// markdown text. A recognizer is required by Text and Tables.
func (e *Extractor) WithRecognizer(recognizer ocr.Recognizer) *Extractor {
	ne := e.clone()
	ne.recognizer = recognizer
	return ne
}

// DetectTables enables or disables the table detection stage. It is
// enabled by default; disabling it sends the whole document to the
// recognizer unchunked.
func (e *Extractor) DetectTables(enabled bool) *Extractor {
	ne := e.clone()
	ne.options.detectTables = enabled
	return ne
}

// Padding sets the number of pixels added around each detected table
// before cropping. Default is 30.
func (e *Extractor) Padding(pixels int) *Extractor {
	ne := e.clone()
	if pixels < 0 {
		ne.err = fmt.Errorf("padding must not be negative, got %d", pixels)
		return ne
	}
	ne.options.padding = pixels
	return ne
}

// UpscaleFactor sets the scale applied to each crop before
// recognition. Values <= 1.0 disable upscaling. Default is 1.5.
func (e *Extractor) UpscaleFactor(factor float64) *Extractor {
	ne := e.clone()
	ne.options.upscaleFactor = factor
	return ne
}

// MinTableRows sets the minimum number of non-empty rows a table needs
// before the stability check applies; smaller tables are trivially
// stable. Default is 3.
func (e *Extractor) MinTableRows(rows int) *Extractor {
	ne := e.clone()
	ne.options.minTableRows = rows
	return ne
}

// SortReadingOrder sorts detected regions top-to-bottom then
// left-to-right instead of raw detector output order. Off by default.
func (e *Extractor) SortReadingOrder() *Extractor {
	ne := e.clone()
	ne.options.sortReadingOrder = true
	return ne
}

// Categories replaces the classification rules used to label tables.
// Rules are evaluated in order, first match wins.
func (e *Extractor) Categories(categories ...tables.Category) *Extractor {
	ne := e.clone()
	ne.options.categories = categories
	return ne
}

// Regions runs table region detection and returns the prepared regions
// without recognizing them. It requires a raster image input and a
// configured engine.
//
// Warnings report regions that were detected but skipped because their
// crops could not be encoded. An empty result with no error means the
// engine found no tables.
func (e *Extractor) Regions() ([]model.Region, []Warning, error) {
	if e.err != nil {
		return nil, nil, e.err
	}
	if e.engine == nil {
		return nil, nil, fmt.Errorf("no layout engine configured")
	}
	if !e.format.IsRaster() {
		return nil, nil, fmt.Errorf("table detection requires a raster image, got %s input", e.format)
	}

	detector, err := e.detector()
	if err != nil {
		return nil, nil, err
	}

	regions, skipped, err := detector.DetectRegions(e.data)
	if err != nil {
		return nil, nil, err
	}
	return regions, skippedWarnings(skipped), nil
}

// Tables runs the full per-region pipeline: detect table regions,
// recognize each crop, parse the markdown, classify, and validate. It
// returns one report per region that produced usable recognition
// output.
//
// Non-raster input and detection unavailability are not errors here:
// they yield an empty report list with a warning, and the caller (or
// Text) falls back to whole-document recognition. Invalid raster bytes
// are a fatal *imaging.DecodeError.
func (e *Extractor) Tables(ctx context.Context) ([]TableReport, []Warning, error) {
	if e.err != nil {
		return nil, nil, e.err
	}
	if e.recognizer == nil {
		return nil, nil, fmt.Errorf("no recognizer configured")
	}
	return e.tableReports(ctx)
}

// Text extracts the document text with table-aware chunking. Each
// detected table is recognized separately and rendered as a labeled
// section:
//
//	## Table 1 (type: chemistry, quality: ok)
//
//	| C % | Mn % | ...
//
// Sections are joined by a horizontal rule. When no table regions are
// found (or detection is unavailable, disabled, or inapplicable as for
// PDFs), the whole document is recognized unchunked. Warnings indicate
// non-fatal issues such as skipped regions or the detection fallback.
func (e *Extractor) Text(ctx context.Context) (string, []Warning, error) {
	if e.err != nil {
		return "", nil, e.err
	}
	if e.recognizer == nil {
		return "", nil, fmt.Errorf("no recognizer configured")
	}

	reports, warnings, err := e.tableReports(ctx)
	if err != nil {
		return "", warnings, err
	}

	if len(reports) == 0 {
		text, err := e.wholeDocument(ctx)
		if err != nil {
			return "", warnings, err
		}
		return text, warnings, nil
	}

	sections := make([]string, len(reports))
	for i, r := range reports {
		quality := "ok"
		if !r.Stable {
			quality = "suspect"
		}
		sections[i] = fmt.Sprintf("## Table %d (type: %s, quality: %s)\n\n%s",
			i+1, r.Type, quality, r.Markdown)
	}
	return strings.Join(sections, "\n\n---\n\n"), warnings, nil
}

// tableReports detects regions and recognizes each one. An empty result
// means the caller should fall back to whole-document recognition.
func (e *Extractor) tableReports(ctx context.Context) ([]TableReport, []Warning, error) {
	var warnings []Warning

	if !e.options.detectTables || e.engine == nil {
		return nil, nil, nil
	}
	if !e.format.IsRaster() {
		if e.format == format.PDF {
			warnings = append(warnings, Warning{Op: "detect", Message: "table detection skipped for PDF input"})
		}
		return nil, warnings, nil
	}

	detector, err := e.detector()
	if err != nil {
		return nil, nil, err
	}

	regions, skipped, err := detector.DetectRegions(e.data)
	if err != nil {
		var detErr *tables.DetectionError
		if errors.As(err, &detErr) {
			// Detection unavailable: degrade to unchunked recognition.
			warnings = append(warnings, Warning{Op: "detect", Message: detErr.Error()})
			return nil, warnings, nil
		}
		return nil, nil, err
	}
	warnings = append(warnings, skippedWarnings(skipped)...)

	if len(regions) == 0 {
		warnings = append(warnings, Warning{Op: "detect", Message: "no table regions detected"})
		return nil, warnings, nil
	}

	classifier := tables.NewClassifier(e.options.categories...)

	var reports []TableReport
	for _, region := range regions {
		crop, err := base64.StdEncoding.DecodeString(region.Encoded)
		if err != nil {
			warnings = append(warnings, Warning{
				Op:      "recognize",
				Message: fmt.Sprintf("region %d: invalid crop payload: %v", region.Index, err),
			})
			continue
		}

		text, err := e.recognizer.Recognize(ctx, crop, "image/png")
		if err != nil {
			warnings = append(warnings, Warning{
				Op:      "recognize",
				Message: fmt.Sprintf("region %d: %v", region.Index, err),
			})
			continue
		}

		parsed := tables.ExtractMarkdownTables(text)
		if len(parsed) == 0 {
			parsed = tables.ExtractHTMLTables(text)
		}
		if len(parsed) == 0 {
			warnings = append(warnings, Warning{
				Op:      "parse",
				Message: fmt.Sprintf("region %d: recognition output contains no table", region.Index),
			})
		}

		best := bestTable(parsed)
		reports = append(reports, TableReport{
			Index:    region.Index,
			BBox:     region.BBox,
			Type:     classifier.ClassifyType(best),
			Stable:   tables.StableColumnCount(best, e.options.minTableRows),
			Markdown: text,
			Tables:   parsed,
		})
	}

	return reports, warnings, nil
}

// wholeDocument recognizes the entire input unchunked.
func (e *Extractor) wholeDocument(ctx context.Context) (string, error) {
	mime := e.format.MIME()
	if mime == "" {
		return "", fmt.Errorf("unsupported input format")
	}
	return e.recognizer.Recognize(ctx, e.data, mime)
}

// detector builds a configured table detector over the engine.
func (e *Extractor) detector() (*tables.Detector, error) {
	d := tables.NewDetector(e.engine)
	if err := d.Configure(e.options.detectorConfig()); err != nil {
		return nil, err
	}
	return d, nil
}

// bestTable returns the parsed table with the most rows, or an empty
// table when none were parsed. Ties keep the earliest table.
func bestTable(parsed []model.Table) model.Table {
	var best model.Table
	for _, t := range parsed {
		if len(t.Rows) > len(best.Rows) {
			best = t
		}
	}
	return best
}

func skippedWarnings(skipped []tables.Skipped) []Warning {
	if len(skipped) == 0 {
		return nil
	}
	warnings := make([]Warning, len(skipped))
	for i, s := range skipped {
		warnings[i] = Warning{
			Op:      "detect",
			Message: fmt.Sprintf("region %d skipped: %v", s.Index, s.Err),
		}
	}
	return warnings
}
