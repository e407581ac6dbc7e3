// Package natcmp compares strings in natural order, reading Arabic and
// Chinese numerals inside them as numbers.
//
//	natcmp.Compare("第九章", "第十章", natcmp.Options{}) // -1
//	natcmp.Compare("文件2", "文件10", natcmp.Options{})   // -1
package natcmp

import (
	"slices"

	"github.com/dgallion1/ziransort/internal/token"
)

// Compare returns -1, 0 or +1 as a sorts before, equal to or after b,
// using the default Chinese collator for literal text.
func Compare(a, b string, opts Options) int {
	return compare(a, b, opts, defaultCollator)
}

// Comparator bundles options and a collator. It is safe for concurrent
// use as long as its Collator is.
type Comparator struct {
	opts     Options
	collator Collator
	reverse  bool
}

// New returns a Comparator. A nil collator selects DefaultCollator.
func New(opts Options, collator Collator) *Comparator {
	if collator == nil {
		collator = defaultCollator
	}
	return &Comparator{opts: opts, collator: collator}
}

// Options returns the comparator's options.
func (c *Comparator) Options() Options { return c.opts }

// Reverse returns a comparator with the opposite order.
func (c *Comparator) Reverse() *Comparator {
	r := *c
	r.reverse = !c.reverse
	return &r
}

// Compare returns -1, 0 or +1.
func (c *Comparator) Compare(a, b string) int {
	if c.reverse {
		a, b = b, a
	}
	return compare(a, b, c.opts, c.collator)
}

// Less reports whether a sorts strictly before b.
func (c *Comparator) Less(a, b string) bool {
	return c.Compare(a, b) < 0
}

// Sort sorts items in place. Items that compare equal keep their
// relative order.
func (c *Comparator) Sort(items []string) {
	slices.SortStableFunc(items, c.Compare)
}

func compare(a, b string, opts Options, collator Collator) int {
	ta, tb := align(token.Tokenize(a), token.Tokenize(b))

	n := max(len(ta), len(tb))
	for i := range n {
		var x, y *token.Token
		if i < len(ta) {
			x = &ta[i]
		}
		if i < len(tb) {
			y = &tb[i]
		}
		if r := compareTokens(x, y, opts, collator); r != 0 {
			return r
		}
	}
	return 0
}

func compareTokens(a, b *token.Token, opts Options, collator Collator) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}

	switch {
	case a.IsText() && b.IsText():
		return sign(collator.CompareString(a.Raw, b.Raw))

	case !a.IsText() && !b.IsText():
		if opts.ChineseNumber != Mixed && a.Notation != b.Notation {
			chineseFirst := opts.ChineseNumber == ChineseFirst
			if (a.Notation == token.NotationChinese) == chineseFirst {
				return -1
			}
			return 1
		}
		return token.CompareValue(*a, *b)

	case a.IsText():
		if opts.NumberString == NumberFirst {
			return 1
		}
		return -1

	default:
		if opts.NumberString == NumberFirst {
			return -1
		}
		return 1
	}
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}
