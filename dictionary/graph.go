package dictionary

import (
	"shiritori/kana"
	"shiritori/model"
)

// Cell holds the words of one (first, last) pair, at most one per bitset.
// Insertion order is kept so that every walk over the graph is deterministic.
type Cell struct {
	index map[uint64]int
	words []*model.Word
}

// Graph indexes words by canonical first and last symbol. It is read-only once
// built and may be shared by concurrent searches.
type Graph struct {
	cells [kana.N][kana.N]Cell
	size  int
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{}
}

// Cell returns the words starting with first and ending with last.
// The slice must not be modified.
func (g *Graph) Cell(first, last int) []*model.Word {
	return g.cells[first][last].words
}

// Lookup returns the word stored for bits in the (first, last) cell.
func (g *Graph) Lookup(first, last int, bits uint64) (*model.Word, bool) {
	c := &g.cells[first][last]
	i, ok := c.index[bits]
	if !ok {
		return nil, false
	}
	return c.words[i], true
}

// Len returns the number of stored words.
func (g *Graph) Len() int {
	return g.size
}

// Each calls fn for every word, cell by cell in index order.
func (g *Graph) Each(fn func(w *model.Word)) {
	for a := range g.cells {
		for b := range g.cells[a] {
			for _, w := range g.cells[a][b].words {
				fn(w)
			}
		}
	}
}

// Insert stores w unless its cell already holds a word with the same bitset
// and a surface at most as long. It reports whether w was stored.
func (g *Graph) Insert(w *model.Word) bool {
	c := &g.cells[w.First][w.Last]
	if i, ok := c.index[w.Bits]; ok {
		if w.SurfaceLen() < c.words[i].SurfaceLen() {
			c.words[i] = w
			return true
		}
		return false
	}
	if c.index == nil {
		c.index = make(map[uint64]int)
	}
	c.index[w.Bits] = len(c.words)
	c.words = append(c.words, w)
	g.size++
	return true
}
