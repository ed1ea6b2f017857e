package tables

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/tsawler/scantab/model"
)

// ExtractHTMLTables parses <table> elements out of recognition output.
// Some recognition services emit tables as HTML markup instead of pipe
// markdown; this covers that case with the same contract as
// [ExtractMarkdownTables]: tables in document order, all-blank tables
// discarded, never fails. Text that is not parseable HTML simply yields
// no tables.
func ExtractHTMLTables(text string) []model.Table {
	doc, err := html.Parse(strings.NewReader(text))
	if err != nil {
		return nil
	}

	var out []model.Table
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "table" {
			t := parseHTMLTable(n)
			if !t.IsEmpty() {
				out = append(out, t)
			}
			return // nested tables are not expected in OCR output
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return out
}

// parseHTMLTable extracts rows from a table element, descending through
// thead/tbody sections to the tr rows.
func parseHTMLTable(tableNode *html.Node) model.Table {
	var rows [][]string

	var collect func(n *html.Node)
	collect = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode {
				continue
			}
			switch c.Data {
			case "thead", "tbody", "tfoot":
				collect(c)
			case "tr":
				if row := parseHTMLRow(c); len(row) > 0 {
					rows = append(rows, row)
				}
			}
		}
	}
	collect(tableNode)

	return model.Table{Rows: rows}
}

// parseHTMLRow extracts the cell texts of a single tr element.
func parseHTMLRow(tr *html.Node) []string {
	var row []string
	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && (c.Data == "td" || c.Data == "th") {
			row = append(row, strings.TrimSpace(textContent(c)))
		}
	}
	return row
}

// textContent returns the concatenated text of a node's subtree.
func textContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}
