package natcmp

import (
	"unicode/utf8"

	"github.com/dgallion1/ziransort/internal/token"
)

// align reconciles token boundaries when one side is a single text token
// and the other starts with text followed by more tokens. "文件a" is one
// token while "文件1" is two; splitting the former into "文件" and "a"
// lets the number and the letter meet at the same position.
//
// At most one side is split, and only when the shared prefix is
// non-empty.
func align(a, b []token.Token) ([]token.Token, []token.Token) {
	if split, ok := splitSingle(a, b); ok {
		return split, b
	}
	if split, ok := splitSingle(b, a); ok {
		return a, split
	}
	return a, b
}

func splitSingle(single, multi []token.Token) ([]token.Token, bool) {
	if len(single) != 1 || !single[0].IsText() {
		return nil, false
	}
	if len(multi) < 2 || !multi[0].IsText() {
		return nil, false
	}

	s := single[0].Raw
	n := commonPrefix(s, multi[0].Raw)
	if n == 0 {
		return nil, false
	}
	out := []token.Token{token.Text(s[:n])}
	if n < len(s) {
		out = append(out, token.Text(s[n:]))
	}
	return out, true
}

// commonPrefix returns the byte length of the longest shared prefix of a
// and b that ends on a character boundary.
func commonPrefix(a, b string) int {
	i := 0
	for i < len(a) && i < len(b) {
		_, sa := utf8.DecodeRuneInString(a[i:])
		_, sb := utf8.DecodeRuneInString(b[i:])
		if sa != sb || a[i:i+sa] != b[i:i+sb] {
			break
		}
		i += sa
	}
	return i
}
