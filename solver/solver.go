// Package solver finds the cheapest word chain that collects the sounds of a
// target word and returns to the start word's first sound.
//
// The search is Dijkstra over (covered bits, last sound) states. Cost is
// (words, characters) compared lexicographically; the start word counts as
// the first word of the chain.
package solver

import (
	"container/heap"
	"errors"

	"go.uber.org/zap"

	"shiritori/dictionary"
	"shiritori/kana"
	"shiritori/model"
)

// ErrNotFound is for callers that want a missing chain as an error.
var ErrNotFound = errors.New("path could not be found")

// Result is a chain from the start word to the goal. An empty Path means no
// chain exists and Cost is meaningless.
type Result struct {
	Path []*model.Word `json:"path"`
	Cost model.Cost    `json:"cost"`
}

// Found reports whether a chain was found.
func (r Result) Found() bool {
	return len(r.Path) > 0
}

// Err returns ErrNotFound when r is empty.
func (r Result) Err() error {
	if !r.Found() {
		return ErrNotFound
	}
	return nil
}

// TargetBits returns the symbols of target that start does not already have.
func TargetBits(start *model.Word, target string) uint64 {
	return kana.ToBitset(kana.NormalizeReading(target)) &^ start.Bits
}

type step struct {
	from state
	word *model.Word
}

// tables holds the per-search cost and backpointer rows, allocated lazily per
// distinct bits value.
type tables struct {
	costs map[uint64]*[kana.N]model.Cost
	prev  map[uint64]*[kana.N]*step
}

func newTables() *tables {
	return &tables{
		costs: make(map[uint64]*[kana.N]model.Cost),
		prev:  make(map[uint64]*[kana.N]*step),
	}
}

func (t *tables) cost(s state) model.Cost {
	row, ok := t.costs[s.bits]
	if !ok {
		return model.Infinity
	}
	return row[s.char]
}

func (t *tables) set(s state, c model.Cost, p *step) {
	row, ok := t.costs[s.bits]
	if !ok {
		row = new([kana.N]model.Cost)
		for i := range row {
			row[i] = model.Infinity
		}
		t.costs[s.bits] = row
	}
	row[s.char] = c
	if p == nil {
		return
	}
	prow, ok := t.prev[s.bits]
	if !ok {
		prow = new([kana.N]*step)
		t.prev[s.bits] = prow
	}
	prow[s.char] = p
}

func (t *tables) back(s state) *step {
	row, ok := t.prev[s.bits]
	if !ok {
		return nil
	}
	return row[s.char]
}

// Option configures Solve.
type Option func(*config)

type config struct {
	logger *zap.Logger
}

// WithLogger sets the logger used during the search.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// Solve searches g for the cheapest chain from start that covers target.
// g is only read, so concurrent calls may share it.
func Solve(g *dictionary.Graph, start *model.Word, target string, opts ...Option) Result {
	cfg := &config{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(cfg)
	}
	log := cfg.logger

	targetBits := TargetBits(start, target)
	log.Debug("target", zap.Strings("chars", kana.BitsToKana(targetBits)))
	log.Info("START searching a shortest path")

	goal := state{bits: targetBits, char: start.First}
	origin := state{bits: 0, char: start.Last}
	t := newTables()
	t.set(origin, model.Cost{Words: 1, Chars: start.Size}, nil)

	q := &queue{{cost: t.cost(origin), state: origin}}
	pops := 0
	for q.Len() > 0 {
		cur := heap.Pop(q).(item)
		if t.cost(cur.state).Less(cur.cost) {
			continue
		}
		pops++
		if cur.state == goal {
			break
		}
		for i := 0; i < kana.N; i++ {
			for _, w := range g.Cell(cur.char, i) {
				next := state{bits: cur.bits | (targetBits & w.Bits), char: w.Last}
				c := cur.cost.Add(w)
				if c.Less(t.cost(next)) {
					t.set(next, c, &step{from: cur.state, word: w})
					heap.Push(q, item{cost: c, state: next})
				}
			}
		}
	}

	cost := t.cost(goal)
	if cost.IsInfinite() {
		log.Info("FINISH searching a shortest path", zap.Bool("found", false), zap.Int("pops", pops))
		return Result{Cost: model.Infinity}
	}
	path := reconstruct(t, goal, start)
	log.Info("FINISH searching a shortest path",
		zap.Bool("found", true),
		zap.Int("pops", pops),
		zap.Int("words", cost.Words),
		zap.Int("chars", cost.Chars))
	return Result{Path: path, Cost: cost}
}

func reconstruct(t *tables, goal state, start *model.Word) []*model.Word {
	var path []*model.Word
	for s := goal; ; {
		p := t.back(s)
		if p == nil {
			break
		}
		path = append(path, p.word)
		s = p.from
	}
	path = append(path, start)
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
