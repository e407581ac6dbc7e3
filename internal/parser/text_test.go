package parser

import (
	"strings"
	"testing"

	"github.com/dgallion1/ziransort/internal/doctree"
	"github.com/google/go-cmp/cmp"
)

func TestTextParser_OneSectionPerLine(t *testing.T) {
	input := "第十章 结局\n\n第二章 开端\n   \n  第一章 序幕  \n"
	p := &TextParser{}
	tree, err := p.Parse(strings.NewReader(input), "chapters.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if tree.Title != "chapters" {
		t.Errorf("expected title %q, got %q", "chapters", tree.Title)
	}
	want := []string{"第十章 结局", "第二章 开端", "第一章 序幕"}
	if diff := cmp.Diff(want, doctree.Titles(tree)); diff != "" {
		t.Errorf("titles mismatch (-want +got):\n%s", diff)
	}
}

func TestTextParser_EmptyInput(t *testing.T) {
	p := &TextParser{}
	tree, err := p.Parse(strings.NewReader(""), "empty.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tree.Title != "empty" {
		t.Errorf("expected title %q, got %q", "empty", tree.Title)
	}
	if len(tree.Children) != 0 {
		t.Errorf("expected 0 children for empty input, got %d", len(tree.Children))
	}
}

func TestReadLines_CRLF(t *testing.T) {
	lines, err := ReadLines(strings.NewReader("文件10\r\n文件2\r\n\r\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff([]string{"文件10", "文件2"}, lines); diff != "" {
		t.Errorf("lines mismatch (-want +got):\n%s", diff)
	}
}

func TestForFile(t *testing.T) {
	tests := []struct {
		filename string
		want     Parser
	}{
		{"a.txt", &TextParser{}},
		{"a.MD", &MarkdownParser{}},
		{"a.markdown", &MarkdownParser{}},
		{"a.csv", &CSVParser{KeyColumn: 1}},
		{"a.htm", &HTMLParser{}},
		{"a.pdf", &PDFParser{FallbackPdftotext: true}},
		{"a.docx", &DOCXParser{}},
	}
	opts := Options{PDFFallbackPdftotext: true, CSVKeyColumn: 1}
	for _, tt := range tests {
		got, err := ForFile(tt.filename, opts)
		if err != nil {
			t.Errorf("ForFile(%q): unexpected error: %v", tt.filename, err)
			continue
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("ForFile(%q) mismatch (-want +got):\n%s", tt.filename, diff)
		}
		if !IsSupportedExtension(tt.filename) {
			t.Errorf("IsSupportedExtension(%q) = false", tt.filename)
		}
	}

	if _, err := ForFile("a.exe", opts); err == nil {
		t.Error("expected error for unsupported extension")
	}
	if IsSupportedExtension("a.exe") {
		t.Error("IsSupportedExtension(a.exe) = true")
	}
}
