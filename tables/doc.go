// Package tables provides table region detection, markdown/HTML table
// parsing, and heuristic table quality classification for scanned
// documents.
//
// # Region detection
//
// The [Detector] runs a layout-analysis engine over a decoded page image,
// keeps the regions labeled as tables, and prepares each one for
// recognition: crop with padding, upscale, and encode as base64 PNG.
//
//	detector := tables.NewDetector(engine)
//	regions, skipped, err := detector.DetectRegions(imageBytes)
//
// An empty result means no tables were found; the caller falls back to
// recognizing the whole document. Behavior is controlled by [Config]:
//
//	config := tables.DefaultConfig()
//	config.Padding = 40
//	detector.Configure(config)
//
// # Failure model
//
// Detection distinguishes three failures:
//
//   - invalid input bytes surface as *imaging.DecodeError and abort the
//     whole detection call;
//   - an engine failure surfaces as [*DetectionError]; callers treat it
//     as "detection unavailable" and fall back to whole-document
//     recognition rather than aborting the pipeline;
//   - a region that cannot be encoded (zero-area crop) is skipped and
//     reported in the skipped list while detection continues.
//
// # Parsing
//
// [ExtractMarkdownTables] scans recognition output for contiguous blocks
// of pipe-delimited lines and parses each block into a [model.Table],
// dropping separator rows and discarding all-blank tables.
// [ExtractHTMLTables] does the same for services that emit <table>
// markup instead of markdown.
//
// # Classification
//
// The [Classifier] guesses a table's semantic category from its header
// row using an ordered list of keyword rules evaluated first-match-wins,
// and [StableColumnCount] checks structural stability (consistent column
// counts) as a proxy for recognition quality. Both are best-effort
// heuristics: they never fail, they degrade to unknown/true on
// insufficient input.
package tables
