package tables

import (
	"reflect"
	"testing"

	"github.com/tsawler/scantab/model"
)

func TestExtractMarkdownTables_Basic(t *testing.T) {
	input := "| a | b |\n|---|---|\n| 1 | 2 |\n\ntext\n"

	got := ExtractMarkdownTables(input)
	if len(got) != 1 {
		t.Fatalf("Expected 1 table, got %d", len(got))
	}

	want := [][]string{{"a", "b"}, {"1", "2"}}
	if !reflect.DeepEqual(got[0].Rows, want) {
		t.Errorf("Expected rows %v, got %v", want, got[0].Rows)
	}
}

func TestExtractMarkdownTables_SeparatorVariants(t *testing.T) {
	tests := []struct {
		name      string
		separator string
	}{
		{"plain", "|---|---|"},
		{"spaced", "| --- | --- |"},
		{"aligned", "|:---|---:|"},
		{"center", "| :---: | :---: |"},
		{"no trailing pipe", "|---|---"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := "| a | b |\n" + tt.separator + "\n| 1 | 2 |\n"
			got := ExtractMarkdownTables(input)
			if len(got) != 1 {
				t.Fatalf("Expected 1 table, got %d", len(got))
			}
			if len(got[0].Rows) != 2 {
				t.Errorf("Expected separator to be dropped, got %d rows: %v", len(got[0].Rows), got[0].Rows)
			}
		})
	}
}

func TestExtractMarkdownTables_MultipleBlocks(t *testing.T) {
	input := "intro\n" +
		"| a | b |\n| 1 | 2 |\n" +
		"\n" +
		"middle prose\n" +
		"| x | y | z |\n| 7 | 8 | 9 |\n"

	got := ExtractMarkdownTables(input)
	if len(got) != 2 {
		t.Fatalf("Expected 2 tables, got %d", len(got))
	}
	if len(got[0].Rows[0]) != 2 {
		t.Errorf("Expected first table width 2, got %d", len(got[0].Rows[0]))
	}
	if len(got[1].Rows[0]) != 3 {
		t.Errorf("Expected second table width 3, got %d", len(got[1].Rows[0]))
	}
}

func TestExtractMarkdownTables_BlankLineEndsBlock(t *testing.T) {
	input := "| a | b |\n\n| c | d |\n"

	got := ExtractMarkdownTables(input)
	if len(got) != 2 {
		t.Fatalf("Expected blank line to split blocks, got %d table(s)", len(got))
	}
}

func TestExtractMarkdownTables_NonQualifyingLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"no leading pipe", "a | b | c\n"},
		{"single pipe", "| lonely\n"},
		{"prose", "just some text\n"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractMarkdownTables(tt.input); len(got) != 0 {
				t.Errorf("Expected no tables, got %d", len(got))
			}
		})
	}
}

func TestExtractMarkdownTables_AllBlankTableDiscarded(t *testing.T) {
	inputs := []string{
		"|  |  |\n|  |  |\n",
		"| |\t|\n",
		"| a | b |\n|---|---|\n| 1 | 2 |\n\n|  |  |\n",
	}

	for _, input := range inputs {
		got := ExtractMarkdownTables(input)
		for _, table := range got {
			if table.IsEmpty() {
				t.Errorf("All-blank table leaked into output for input %q", input)
			}
		}
	}
}

func TestExtractMarkdownTables_RaggedRowsKeepTheirWidth(t *testing.T) {
	input := "| a | b | c |\n| 1 | 2 |\n| 7 | 8 | 9 | 10 |\n"

	got := ExtractMarkdownTables(input)
	if len(got) != 1 {
		t.Fatalf("Expected 1 table, got %d", len(got))
	}

	widths := []int{}
	for _, row := range got[0].Rows {
		widths = append(widths, len(row))
	}
	if !reflect.DeepEqual(widths, []int{3, 2, 4}) {
		t.Errorf("Expected row widths [3 2 4], got %v", widths)
	}
}

func TestExtractMarkdownTables_RoundTrip(t *testing.T) {
	tables := []model.Table{
		{Rows: [][]string{{"a", "b"}, {"1", "2"}}},
		{Rows: [][]string{{"Name", "Date", "Amount"}, {"x", "y", "z"}, {"q", "r", "s"}}},
		{Rows: [][]string{{"h1", "h2"}, {"", "v"}}},
	}

	for _, original := range tables {
		got := ExtractMarkdownTables(original.ToMarkdown())
		if len(got) != 1 {
			t.Fatalf("Expected 1 table after round trip, got %d", len(got))
		}
		if !reflect.DeepEqual(got[0].Rows, original.Rows) {
			t.Errorf("Round trip changed rows: %v -> %v", original.Rows, got[0].Rows)
		}
	}
}

func TestExtractMarkdownTables_TableAtEndOfText(t *testing.T) {
	input := "prose first\n| a | b |\n| 1 | 2 |"

	got := ExtractMarkdownTables(input)
	if len(got) != 1 {
		t.Fatalf("Expected table at end of text to be flushed, got %d", len(got))
	}
}
