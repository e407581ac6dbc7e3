// Package token splits strings into literal text and numeric tokens.
package token

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/dgallion1/ziransort/internal/numeral"
)

// Kind distinguishes literal text from numbers.
type Kind int

const (
	KindText Kind = iota
	KindNumber
)

func (k Kind) String() string {
	if k == KindNumber {
		return "number"
	}
	return "text"
}

// Notation records how a number was written in the source.
type Notation int

const (
	NotationNone Notation = iota
	NotationArabic
	NotationChinese
)

func (n Notation) String() string {
	switch n {
	case NotationArabic:
		return "arabic"
	case NotationChinese:
		return "chinese"
	}
	return ""
}

// Token is one span of the input. Raw is always the exact source text,
// for numbers as well as for literal text.
type Token struct {
	Kind     Kind
	Raw      string
	Notation Notation

	// digits is the decimal value without leading zeros. Arabic runs
	// may be longer than any machine integer.
	digits string
}

// Text returns a literal text token.
func Text(s string) Token {
	return Token{Kind: KindText, Raw: s}
}

// Arabic returns a number token for a run of ASCII digits.
func Arabic(raw string) Token {
	d := strings.TrimLeft(raw, "0")
	if d == "" {
		d = "0"
	}
	return Token{Kind: KindNumber, Raw: raw, Notation: NotationArabic, digits: d}
}

// Chinese returns a number token for a parsed Chinese numeral run.
func Chinese(raw string, value int) Token {
	return Token{Kind: KindNumber, Raw: raw, Notation: NotationChinese, digits: strconv.Itoa(value)}
}

// IsText reports whether t is a literal text token.
func (t Token) IsText() bool { return t.Kind == KindText }

// Digits returns the canonical decimal value of a number token, or ""
// for text.
func (t Token) Digits() string { return t.digits }

// CompareValue orders two number tokens by numeric value.
func CompareValue(a, b Token) int {
	if len(a.digits) != len(b.digits) {
		if len(a.digits) < len(b.digits) {
			return -1
		}
		return 1
	}
	return strings.Compare(a.digits, b.digits)
}

// Tokenize splits s into alternating text and number tokens. Runs of
// ASCII digits and runs of Chinese numeral characters become numbers;
// a Chinese run that numeral.Parse rejects stays part of the
// surrounding text. No two text tokens are ever adjacent.
func Tokenize(s string) []Token {
	var tokens []Token
	textStart := 0

	flush := func(end int) {
		if end > textStart {
			tokens = append(tokens, Text(s[textStart:end]))
		}
	}

	for i := 0; i < len(s); {
		if isDigit(s[i]) {
			j := i + 1
			for j < len(s) && isDigit(s[j]) {
				j++
			}
			flush(i)
			tokens = append(tokens, Arabic(s[i:j]))
			textStart = j
			i = j
			continue
		}

		r, size := utf8.DecodeRuneInString(s[i:])
		if !numeral.IsNumeral(r) {
			i += size
			continue
		}
		j := i + size
		for j < len(s) {
			r, size := utf8.DecodeRuneInString(s[j:])
			if !numeral.IsNumeral(r) {
				break
			}
			j += size
		}
		if v, ok := numeral.Parse(s[i:j]); ok {
			flush(i)
			tokens = append(tokens, Chinese(s[i:j], v))
			textStart = j
		}
		i = j
	}
	flush(len(s))
	return tokens
}

// Join concatenates the raw spans of tokens.
func Join(tokens []Token) string {
	var b strings.Builder
	for _, t := range tokens {
		b.WriteString(t.Raw)
	}
	return b.String()
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
