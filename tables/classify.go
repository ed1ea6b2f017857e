package tables

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/scantab/model"
)

// DefaultMinRows is the minimum number of non-empty rows below which a
// table is considered too small to judge for stability.
const DefaultMinRows = 3

// Category pairs a table type with the header keywords that identify
// it. Token matching is by substring against the normalized header.
type Category struct {
	Type   model.TableType
	Tokens []string
}

// DefaultCategories returns the built-in classification rules for
// metallurgical test-report tables. Order matters: chemistry is checked
// before mechanical, so a header matching both classifies as chemistry.
func DefaultCategories() []Category {
	return []Category{
		{
			Type: model.TableTypeChemistry,
			Tokens: []string{
				"c %", "cr %", "ni %", "mo %", "mn %", "si %",
				"p %", "n %", "cu %", "co %", "ti %",
			},
		},
		{
			Type:   model.TableTypeMechanical,
			Tokens: []string{"rp", "rm", "a5", "hb", "re", "yield", "tensile"},
		},
	}
}

// Classifier guesses a table's semantic category from its header row.
//
// Rules are an ordered list of (category, tokens) pairs evaluated
// first-match-wins, so new categories can be added without touching the
// matching logic. Classification is a pure function of the header row:
// classifying the same table twice yields the same result.
type Classifier struct {
	categories []Category
}

// NewClassifier creates a classifier with the given rules, evaluated in
// order. With no arguments it uses [DefaultCategories].
func NewClassifier(categories ...Category) *Classifier {
	if len(categories) == 0 {
		categories = DefaultCategories()
	}
	return &Classifier{categories: categories}
}

// ClassifyType returns the category of the table based on its header
// row. An empty table (no rows) is unknown; a header matching no rule
// is generic. This is a confidence-less heuristic and never fails.
func (c *Classifier) ClassifyType(t model.Table) model.TableType {
	if len(t.Rows) == 0 {
		return model.TableTypeUnknown
	}

	cells := make([]string, len(t.Rows[0]))
	for i, cell := range t.Rows[0] {
		cells[i] = NormalizeToken(cell)
	}
	header := strings.Join(cells, " ")

	for _, cat := range c.categories {
		for _, tok := range cat.Tokens {
			if strings.Contains(header, tok) {
				return cat.Type
			}
		}
	}
	return model.TableTypeGeneric
}

// NormalizeToken prepares a header cell for keyword matching: NFKC
// normalization (recognition output carries fullwidth and composed
// forms), lower-casing, and whitespace collapsed to single spaces.
func NormalizeToken(s string) string {
	folded := norm.NFKC.String(s)
	return strings.Join(strings.Fields(strings.ToLower(folded)), " ")
}

// StableColumnCount checks whether the table's rows have a consistent
// number of cells, as a proxy for recognition quality.
//
// Tables with fewer than minRows non-empty rows are trivially stable:
// there is not enough data to judge. Otherwise, over every row with at
// least one non-blank cell, the most frequent cell count is taken as
// the mode (ties broken by first occurrence in row order) and the table
// is stable iff at least 80% of those rows have a cell count within ±1
// of the mode. The ±1 tolerance absorbs a single stray or missing pipe
// per row. minRows <= 0 uses [DefaultMinRows].
func StableColumnCount(t model.Table, minRows int) bool {
	if minRows <= 0 {
		minRows = DefaultMinRows
	}

	var counts []int
	for _, row := range t.Rows {
		for _, cell := range row {
			if strings.TrimSpace(cell) != "" {
				counts = append(counts, len(row))
				break
			}
		}
	}

	if len(counts) < minRows {
		return true
	}

	freq := make(map[int]int)
	for _, c := range counts {
		freq[c]++
	}
	mode, best := 0, 0
	for _, c := range counts {
		if freq[c] > best {
			best = freq[c]
			mode = c
		}
	}

	within := 0
	for _, c := range counts {
		if c >= mode-1 && c <= mode+1 {
			within++
		}
	}
	return float64(within)/float64(len(counts)) >= 0.8
}
