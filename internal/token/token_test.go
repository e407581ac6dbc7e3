package token

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// describe renders tokens as "text:raw" or "<notation>:value" for diffs.
func describe(tokens []Token) []string {
	var out []string
	for _, t := range tokens {
		if t.IsText() {
			out = append(out, "text:"+t.Raw)
			continue
		}
		out = append(out, fmt.Sprintf("%s:%s", t.Notation, t.Digits()))
	}
	return out
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"abc", []string{"text:abc"}},
		{"文件10", []string{"text:文件", "arabic:10"}},
		{"第九章", []string{"text:第", "chinese:9", "text:章"}},
		{"007", []string{"arabic:7"}},
		{"000", []string{"arabic:0"}},
		{"一千零一", []string{"chinese:1001"}},
		{"章节一点二", []string{"text:章节", "chinese:1", "text:点", "chinese:2"}},
		{"1一", []string{"arabic:1", "chinese:1"}},
		{"一abc二", []string{"chinese:1", "text:abc", "chinese:2"}},
		{"千", []string{"text:千"}},
		{"a千千b", []string{"text:a千千b"}},
		{"x一二三y9", []string{"text:x一二三y", "arabic:9"}},
		{"用户ID1234号", []string{"text:用户ID", "arabic:1234", "text:号"}},
	}
	for _, tt := range tests {
		got := describe(Tokenize(tt.in))
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("Tokenize(%q) mismatch (-want +got):\n%s", tt.in, diff)
		}
	}
}

func TestTokenize_RoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"plain",
		"文件2文件10",
		"报告第九千九百九十九号",
		"千百十一二三",
		"版本二点零点三",
		"mixed 12 三十 and 〇〇7",
		"\xff broken utf8 一",
	}
	for _, in := range inputs {
		if got := Join(Tokenize(in)); got != in {
			t.Errorf("Join(Tokenize(%q)) = %q", in, got)
		}
	}
}

func TestTokenize_NoAdjacentText(t *testing.T) {
	inputs := []string{"a千b", "百百x百", "一二三四", "x千千千1y二三"}
	for _, in := range inputs {
		tokens := Tokenize(in)
		for i := 1; i < len(tokens); i++ {
			if tokens[i-1].IsText() && tokens[i].IsText() {
				t.Errorf("Tokenize(%q): adjacent text tokens %q and %q", in, tokens[i-1].Raw, tokens[i].Raw)
			}
		}
	}
}

func TestCompareValue(t *testing.T) {
	tests := []struct {
		a, b Token
		want int
	}{
		{Arabic("2"), Arabic("10"), -1},
		{Arabic("010"), Arabic("10"), 0},
		{Chinese("十", 10), Arabic("10"), 0},
		{Arabic("123456789012345678901234567890"), Arabic("99"), 1},
		{Arabic("123456789012345678901234567890"), Arabic("123456789012345678901234567891"), -1},
		{Chinese("零", 0), Arabic("0"), 0},
	}
	for _, tt := range tests {
		if got := CompareValue(tt.a, tt.b); got != tt.want {
			t.Errorf("CompareValue(%q, %q) = %d, want %d", tt.a.Raw, tt.b.Raw, got, tt.want)
		}
	}
}
