// Package layout abstracts the document-layout-analysis engine used for
// table region detection.
//
// Layout analysis is delegated to a pre-trained model treated as a black
// box: given a decoded image it returns labeled regions (text, table,
// figure, ...) with pixel-space bounding boxes. This package defines the
// [Engine] interface for that collaborator, so the heavyweight model is an
// explicit, injectable resource with a lifecycle (construct once, reuse,
// Close at shutdown) rather than hidden global state, and so tests can
// substitute a fake.
//
// # Engines
//
// The package provides:
//
//   - [StaticEngine] - returns a fixed set of regions; used in tests and
//     for offline wiring.
//   - [HTTPEngine] - client for a layout-analysis sidecar service that
//     accepts a PNG and returns detected regions as JSON.
//
// Engines are registered globally and can be retrieved by name:
//
//	layout.Register("sidecar", engine)
//	engine, ok := layout.Get("sidecar")
//
// Engines are not assumed to be safe for concurrent use; callers that
// share one across goroutines must serialize Analyze calls. The detector
// in the tables package does this internally.
package layout
