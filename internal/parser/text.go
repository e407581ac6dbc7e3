package parser

import (
	"bufio"
	"io"
	"strings"

	"github.com/dgallion1/ziransort/internal/doctree"
)

// TextParser handles plain text files. Every non-blank line is a
// section of its own, so a list of names sorts line by line.
type TextParser struct{}

func (p *TextParser) Parse(r io.Reader, filename string) (*doctree.DocTree, error) {
	lines, err := ReadLines(r)
	if err != nil {
		return nil, err
	}
	tree := &doctree.DocTree{Title: baseTitle(filename)}
	for _, line := range lines {
		tree.Children = append(tree.Children, &doctree.DocNode{Title: line})
	}
	return tree, nil
}

// ReadLines returns the non-blank lines of r with surrounding
// whitespace trimmed.
func ReadLines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var lines []string
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
