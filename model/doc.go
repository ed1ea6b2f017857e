// Package model provides the intermediate representation (IR) for scanned
// document content.
//
// This package defines the user-facing data structures produced by table
// detection and markdown parsing, making them the primary API for consuming
// extraction results.
//
// # Geometry
//
// Coordinates are integer pixels in image space, with the origin at the top
// left (y grows downward, matching image coordinates rather than PDF
// coordinates):
//
//   - [BBox] - a bounding box as corner coordinates (x1, y1, x2, y2)
//
// # Tables
//
// The [Table] type represents a parsed table as ordered rows of string
// cells. Rows are not forced to a uniform width; each row keeps the cell
// count it was parsed with, which downstream quality checks depend on.
// Export methods: ToMarkdown() and ToCSV().
//
// [TableType] is the heuristic category of a table (chemistry, mechanical,
// generic, unknown). It is derived from a table's header row on demand and
// never stored.
//
// # Regions
//
// A [Region] describes one detected table region on a page: its bounding
// box, the cropped (and possibly upscaled) sub-image, the base64-encoded
// PNG of that crop ready for transport to a recognition service, and the
// region's index in raw detector output order.
package model
