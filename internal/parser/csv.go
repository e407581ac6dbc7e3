package parser

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/dgallion1/ziransort/internal/doctree"
)

// CSVParser handles CSV files. The first row is the header; each data
// row becomes a section titled by its KeyColumn cell.
type CSVParser struct {
	KeyColumn int
}

func (p *CSVParser) Parse(r io.Reader, filename string) (*doctree.DocTree, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}

	tree := &doctree.DocTree{Title: baseTitle(filename)}
	if len(records) == 0 {
		return tree, nil
	}
	headers := records[0]
	if p.KeyColumn < 0 || p.KeyColumn >= len(headers) {
		return nil, fmt.Errorf("key column %d out of range (%d columns)", p.KeyColumn, len(headers))
	}

	for i, row := range records[1:] {
		var key string
		if p.KeyColumn < len(row) {
			key = strings.TrimSpace(row[p.KeyColumn])
		}

		var text strings.Builder
		for j, cell := range row {
			if j > 0 {
				text.WriteString(", ")
			}
			if j < len(headers) {
				text.WriteString(headers[j] + ": ")
			}
			text.WriteString(cell)
		}

		tree.Children = append(tree.Children, &doctree.DocNode{
			Title: key,
			Text:  text.String(),
			Page:  i + 2, // source line, header is line 1
		})
	}
	return tree, nil
}
