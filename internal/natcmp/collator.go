package natcmp

import (
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Collator orders two spans of literal text.
type Collator interface {
	CompareString(a, b string) int
}

// pooledCollator hands each caller its own *collate.Collator, which
// keeps scratch buffers and must not be shared between goroutines.
type pooledCollator struct {
	pool sync.Pool
}

// NewCollator returns a locale-aware Collator for tag that is safe for
// concurrent use.
func NewCollator(tag language.Tag, opts ...collate.Option) Collator {
	c := &pooledCollator{}
	c.pool.New = func() any {
		return collate.New(tag, opts...)
	}
	return c
}

func (c *pooledCollator) CompareString(a, b string) int {
	col := c.pool.Get().(*collate.Collator)
	defer c.pool.Put(col)
	return col.CompareString(a, b)
}

var defaultCollator = NewCollator(language.Chinese)

// DefaultCollator is the Chinese collator used when none is given.
func DefaultCollator() Collator {
	return defaultCollator
}
