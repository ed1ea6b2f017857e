package tables

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/tsawler/scantab/imaging"
	"github.com/tsawler/scantab/layout"
	"github.com/tsawler/scantab/model"
)

// DetectionError indicates that the layout engine failed during
// inference. Callers treat it as "detection unavailable" and fall back
// to whole-document recognition.
type DetectionError struct {
	Engine string
	Err    error
}

func (e *DetectionError) Error() string {
	return fmt.Sprintf("layout analysis failed (engine %s): %v", e.Engine, e.Err)
}

func (e *DetectionError) Unwrap() error {
	return e.Err
}

// Config holds detector configuration.
type Config struct {
	// Padding is the number of pixels added on every side of a detected
	// box before cropping.
	Padding int

	// UpscaleFactor scales each crop before encoding; values <= 1.0
	// leave the crop unchanged.
	UpscaleFactor float64

	// TypeLabel is the engine label recognized as a table, compared
	// case-insensitively.
	TypeLabel string

	// SortReadingOrder sorts the detected regions top-to-bottom then
	// left-to-right. Off by default: raw engine order is preserved and
	// region indices always refer to that raw order.
	SortReadingOrder bool
}

// DefaultConfig returns the default detector configuration.
func DefaultConfig() Config {
	return Config{
		Padding:       30,
		UpscaleFactor: 1.5,
		TypeLabel:     "table",
	}
}

// Skipped records a detected region that was dropped because its crop
// could not be encoded.
type Skipped struct {
	Index int
	BBox  model.BBox
	Err   error
}

// Detector finds table regions in page images using a layout-analysis
// engine and prepares each region for recognition.
//
// The engine is a heavyweight shared resource and is not assumed to be
// re-entrant; Detector serializes Analyze calls internally, so a single
// Detector is safe for concurrent use. Image decode, crop, upscale, and
// encode run outside the lock.
type Detector struct {
	engine layout.Engine
	config Config

	mu sync.Mutex // serializes engine.Analyze
}

// NewDetector creates a Detector over the given engine with the default
// configuration.
func NewDetector(engine layout.Engine) *Detector {
	return &Detector{
		engine: engine,
		config: DefaultConfig(),
	}
}

// Configure sets detector parameters.
func (d *Detector) Configure(config Config) error {
	if config.Padding < 0 {
		return fmt.Errorf("padding must not be negative, got %d", config.Padding)
	}
	if config.TypeLabel == "" {
		return fmt.Errorf("type label must not be empty")
	}
	d.config = config
	return nil
}

// DetectRegions decodes the image bytes, runs layout analysis, and
// returns one prepared region per detected table, in raw engine output
// order (unless SortReadingOrder is set). The second return value lists
// regions skipped because their crops could not be encoded.
//
// An empty region list means no tables were detected; the caller should
// fall back to recognizing the whole document. Invalid image bytes
// surface as *imaging.DecodeError; engine failures as *DetectionError.
func (d *Detector) DetectRegions(data []byte) ([]model.Region, []Skipped, error) {
	img, err := imaging.Decode(data)
	if err != nil {
		return nil, nil, err
	}

	d.mu.Lock()
	raw, err := d.engine.Analyze(img)
	d.mu.Unlock()
	if err != nil {
		return nil, nil, &DetectionError{Engine: d.engine.Name(), Err: err}
	}

	bounds := img.Bounds()

	var regions []model.Region
	var skipped []Skipped
	for i, r := range raw {
		if !strings.EqualFold(strings.TrimSpace(r.Type), d.config.TypeLabel) {
			continue
		}

		box := r.BBox.Clamp(bounds.Dx(), bounds.Dy())
		crop := imaging.CropWithPadding(img, box, d.config.Padding)
		crop = imaging.Upscale(crop, d.config.UpscaleFactor)

		encoded, err := imaging.EncodeBase64(crop)
		if err != nil {
			skipped = append(skipped, Skipped{Index: i, BBox: box, Err: err})
			continue
		}

		regions = append(regions, model.Region{
			BBox:    box,
			Crop:    crop,
			Encoded: encoded,
			Index:   i,
		})
	}

	if d.config.SortReadingOrder {
		sort.SliceStable(regions, func(a, b int) bool {
			if regions[a].BBox.Y1 != regions[b].BBox.Y1 {
				return regions[a].BBox.Y1 < regions[b].BBox.Y1
			}
			return regions[a].BBox.X1 < regions[b].BBox.X1
		})
	}

	return regions, skipped, nil
}

// Engine returns the underlying layout engine.
func (d *Detector) Engine() layout.Engine {
	return d.engine
}

// Close closes the underlying layout engine.
func (d *Detector) Close() error {
	return d.engine.Close()
}
