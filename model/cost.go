package model

import (
	"fmt"
	"math"
)

// Cost of a chain: words used, then total normalized characters.
type Cost struct {
	Words int `json:"words"`
	Chars int `json:"chars"`
}

// Infinity compares greater than any reachable cost.
var Infinity = Cost{Words: math.MaxInt, Chars: math.MaxInt}

// Less orders costs by word count, then by characters.
func (c Cost) Less(o Cost) bool {
	if c.Words != o.Words {
		return c.Words < o.Words
	}
	return c.Chars < o.Chars
}

// Add returns the cost after appending w.
func (c Cost) Add(w *Word) Cost {
	return Cost{Words: c.Words + 1, Chars: c.Chars + w.Size}
}

// IsInfinite reports whether c is the unreached sentinel.
func (c Cost) IsInfinite() bool {
	return c == Infinity
}

func (c Cost) String() string {
	return fmt.Sprintf("(%d, %d)", c.Words, c.Chars)
}
