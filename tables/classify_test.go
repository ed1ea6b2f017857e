package tables

import (
	"testing"

	"github.com/tsawler/scantab/model"
)

func table(rows ...[]string) model.Table {
	return model.Table{Rows: rows}
}

func TestClassifyType(t *testing.T) {
	c := NewClassifier()

	tests := []struct {
		name   string
		table  model.Table
		expect model.TableType
	}{
		{
			"chemistry header",
			table([]string{"C %", "Mn %", "Si %"}, []string{"0.02", "1.5", "0.4"}, []string{"0.03", "1.4", "0.5"}),
			model.TableTypeChemistry,
		},
		{
			"mechanical header",
			table([]string{"Rp0.2", "Rm", "A5"}),
			model.TableTypeMechanical,
		},
		{
			"generic header",
			table([]string{"Name", "Date"}),
			model.TableTypeGeneric,
		},
		{
			"empty table",
			model.Table{},
			model.TableTypeUnknown,
		},
		{
			"chemistry wins over mechanical",
			table([]string{"Cr %", "Rm"}),
			model.TableTypeChemistry,
		},
		{
			"case and whitespace insensitive",
			table([]string{"  c   % ", "OTHER"}),
			model.TableTypeChemistry,
		},
		{
			"yield keyword",
			table([]string{"Yield Strength", "Elongation"}),
			model.TableTypeMechanical,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.ClassifyType(tt.table); got != tt.expect {
				t.Errorf("Expected %v, got %v", tt.expect, got)
			}
		})
	}
}

func TestClassifyType_Idempotent(t *testing.T) {
	c := NewClassifier()
	tbl := table([]string{"Rp0.2", "Rm"}, []string{"355", "510"})

	first := c.ClassifyType(tbl)
	second := c.ClassifyType(tbl)
	if first != second {
		t.Errorf("Expected identical results, got %v then %v", first, second)
	}
}

func TestClassifyType_CustomCategories(t *testing.T) {
	c := NewClassifier(
		Category{Type: model.TableTypeGeneric, Tokens: []string{"invoice"}},
		Category{Type: model.TableTypeMechanical, Tokens: []string{"rm"}},
	)

	// First rule wins even though the second would also match.
	got := c.ClassifyType(table([]string{"Invoice Rm"}))
	if got != model.TableTypeGeneric {
		t.Errorf("Expected first-match-wins ordering, got %v", got)
	}
}

func TestNormalizeToken(t *testing.T) {
	tests := []struct {
		in     string
		expect string
	}{
		{"  C   % ", "c %"},
		{"Rp0.2", "rp0.2"},
		{"Mn\t%", "mn %"},
		{"", ""},
		{"Ｃ ％", "c %"}, // fullwidth forms folded by NFKC
	}

	for _, tt := range tests {
		if got := NormalizeToken(tt.in); got != tt.expect {
			t.Errorf("NormalizeToken(%q): Expected %q, got %q", tt.in, tt.expect, got)
		}
	}
}

func TestStableColumnCount(t *testing.T) {
	tests := []struct {
		name   string
		widths []int // cell count per row, expanded to rows of "x" cells
		expect bool
	}{
		{"empty table", nil, true},
		{"one row", []int{3}, true},
		{"two rows mismatched", []int{3, 7}, true}, // below minRows threshold
		{"uniform", []int{3, 3, 3, 3}, true},
		{"4 of 5 within one of mode", []int{3, 3, 3, 2, 3}, true},
		{"3 of 5 within one of mode", []int{3, 3, 1, 1, 3}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var rows [][]string
			for _, w := range tt.widths {
				row := make([]string, w)
				for i := range row {
					row[i] = "x"
				}
				rows = append(rows, row)
			}

			if got := StableColumnCount(model.Table{Rows: rows}, DefaultMinRows); got != tt.expect {
				t.Errorf("Expected %v, got %v", tt.expect, got)
			}
		})
	}
}

func TestStableColumnCount_IgnoresBlankRows(t *testing.T) {
	tbl := table(
		[]string{"a", "b", "c"},
		[]string{"", ""}, // all blank, not counted
		[]string{"1", "2", "3"},
		[]string{"4", "5", "6"},
	)

	if !StableColumnCount(tbl, DefaultMinRows) {
		t.Error("Expected blank rows to be excluded from the count")
	}
}

func TestStableColumnCount_DefaultMinRows(t *testing.T) {
	tbl := table([]string{"a"}, []string{"b", "c", "d", "e"})

	// Two non-empty rows with wildly different widths: still stable,
	// below the threshold.
	if !StableColumnCount(tbl, 0) {
		t.Error("Expected minRows <= 0 to fall back to the default threshold")
	}
}
