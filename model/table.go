package model

import (
	"encoding/csv"
	"image"
	"strings"
)

// Table represents a parsed table as ordered rows of string cells.
// Rows keep the cell count they were parsed with; a ragged table is
// valid and its raggedness is meaningful to quality checks.
type Table struct {
	Rows [][]string
}

// Header returns the first row of the table, or nil for an empty table.
func (t Table) Header() []string {
	if len(t.Rows) == 0 {
		return nil
	}
	return t.Rows[0]
}

// IsEmpty returns true if the table has no rows, or if every cell in
// every row is blank or whitespace.
func (t Table) IsEmpty() bool {
	for _, row := range t.Rows {
		for _, cell := range row {
			if strings.TrimSpace(cell) != "" {
				return false
			}
		}
	}
	return true
}

// NonEmptyRowCount returns the number of rows containing at least one
// non-blank cell.
func (t Table) NonEmptyRowCount() int {
	n := 0
	for _, row := range t.Rows {
		for _, cell := range row {
			if strings.TrimSpace(cell) != "" {
				n++
				break
			}
		}
	}
	return n
}

// ToMarkdown exports the table as a GitHub-flavored markdown table.
// The first row is treated as the header and followed by a separator
// row. An empty table produces an empty string.
func (t Table) ToMarkdown() string {
	if len(t.Rows) == 0 {
		return ""
	}

	var sb strings.Builder
	for i, row := range t.Rows {
		sb.WriteString("|")
		for _, cell := range row {
			sb.WriteString(" ")
			sb.WriteString(cell)
			sb.WriteString(" |")
		}
		sb.WriteString("\n")

		if i == 0 {
			sb.WriteString("|")
			for range row {
				sb.WriteString(" --- |")
			}
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// ToCSV exports the table as CSV. Ragged rows are written as-is, one
// record per row.
func (t Table) ToCSV() string {
	var sb strings.Builder
	w := csv.NewWriter(&sb)
	for _, row := range t.Rows {
		// Write on a strings.Builder cannot fail.
		_ = w.Write(row)
	}
	w.Flush()
	return sb.String()
}

// Region describes one detected table region on a page.
//
// Index is assigned by enumeration order of the layout engine's raw
// output, not by spatial position; callers must not assume reading
// order. A Region is immutable once created.
type Region struct {
	// BBox is the detected bounding box, clamped to the source image.
	BBox BBox

	// Crop is the padded (and possibly upscaled) sub-image.
	Crop image.Image

	// Encoded is the base64-encoded PNG serialization of Crop, ready
	// for transport to a recognition service.
	Encoded string

	// Index is the region's position in raw detector output order.
	Index int
}
