package scantab

import (
	"fmt"
	"strings"
)

// Warning describes a non-fatal issue encountered during extraction.
// Warnings accompany results instead of aborting them: a skipped
// region, a detection fallback, an empty recognition result.
type Warning struct {
	// Op names the pipeline stage that produced the warning
	// ("detect", "recognize", "parse").
	Op string

	// Message is a human-readable description.
	Message string
}

// String returns the warning formatted as "op: message".
func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.Op, w.Message)
}

// FormatWarnings joins warnings into a single string, one per line,
// for logging.
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.String()
	}
	return strings.Join(parts, "\n")
}
