package tables

import (
	"regexp"
	"strings"

	"github.com/tsawler/scantab/model"
)

// separatorPattern matches a markdown header-separator row: pipes
// delimiting runs of two or more dashes, optionally colon-flanked for
// alignment, e.g. "|---|:---:|" or "| --- | --- |".
var separatorPattern = regexp.MustCompile(`^\|\s*:?-{2,}:?\s*(\|\s*:?-{2,}:?\s*)+\|?$`)

// ExtractMarkdownTables scans text line by line for markdown table
// blocks and parses each block into a table.
//
// A line belongs to a table block if, after trimming, it starts with a
// pipe and contains at least two pipes in total. Consecutive qualifying
// lines form one block; any non-qualifying line (including a blank line)
// ends the current block. Separator rows carry no cell data and are
// dropped. Tables whose every cell is blank are discarded.
//
// Tables are returned in source order; rows keep their original order.
// This is a best-effort scan and never fails: text with no table blocks
// yields an empty result.
func ExtractMarkdownTables(text string) []model.Table {
	var out []model.Table

	var block []string
	flush := func() {
		if len(block) == 0 {
			return
		}
		t := parseTableBlock(block)
		if !t.IsEmpty() {
			out = append(out, t)
		}
		block = nil
	}

	for _, line := range strings.Split(text, "\n") {
		if isTableLine(line) {
			block = append(block, line)
		} else {
			flush()
		}
	}
	flush()

	return out
}

// isTableLine reports whether a line qualifies as part of a markdown
// table block.
func isTableLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	return strings.HasPrefix(trimmed, "|") && strings.Count(trimmed, "|") >= 2
}

// parseTableBlock parses a block of qualifying lines into a table.
func parseTableBlock(lines []string) model.Table {
	var rows [][]string
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if separatorPattern.MatchString(trimmed) {
			continue
		}

		parts := strings.Split(strings.Trim(trimmed, "|"), "|")
		cells := make([]string, len(parts))
		for i, p := range parts {
			cells[i] = strings.TrimSpace(p)
		}
		rows = append(rows, cells)
	}
	return model.Table{Rows: rows}
}
