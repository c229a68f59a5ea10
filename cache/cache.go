// Package cache persists built dictionary graphs next to the dictionary file
// so later runs can skip the build.
package cache

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"shiritori/dictionary"
	"shiritori/kana"
	"shiritori/model"
)

var (
	// ErrUnknownBackend is returned by NewStore for unsupported names.
	ErrUnknownBackend = errors.New("unknown cache backend")
	// ErrCorrupt is returned when a cache file cannot be decoded into a graph.
	ErrCorrupt = errors.New("corrupt graph cache")
)

// Store reads and writes graphs in one on-disk format.
type Store interface {
	// Path derives the cache location from the dictionary path.
	Path(dictPath string) string
	Read(path string) (*dictionary.Graph, error)
	Write(path string, g *dictionary.Graph) error
}

// NewStore returns the store for backend ("gob" or "sqlite").
func NewStore(backend string) (Store, error) {
	switch backend {
	case "", "gob":
		return GobStore{}, nil
	case "sqlite":
		return SQLiteStore{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
}

// Cache loads graphs through a Store, building them on a miss.
type Cache struct {
	store  Store
	logger *zap.Logger
	build  []dictionary.Option
}

// New returns a Cache. opts are passed to the dictionary builder.
func New(store Store, logger *zap.Logger, opts ...dictionary.Option) *Cache {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Cache{store: store, logger: logger, build: opts}
}

// Load returns the cached graph for dictPath if there is one. The cache is
// not checked against the dictionary; use Rebuild after editing it.
func (c *Cache) Load(dictPath string) (*dictionary.Graph, error) {
	path := c.store.Path(dictPath)
	if _, err := os.Stat(path); err == nil {
		c.logger.Info("loading cached graph", zap.String("path", path))
		g, err := c.store.Read(path)
		if err != nil {
			return nil, fmt.Errorf("read cache %s: %w", path, err)
		}
		c.logger.Info("loaded cached graph", zap.Int("words", g.Len()))
		return g, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("stat cache: %w", err)
	}
	return c.Rebuild(dictPath)
}

// Rebuild builds the graph from dictPath and overwrites its cache.
func (c *Cache) Rebuild(dictPath string) (*dictionary.Graph, error) {
	g, err := dictionary.BuildFile(dictPath, c.build...)
	if err != nil {
		return nil, err
	}
	path := c.store.Path(dictPath)
	c.logger.Info("START dumping graph", zap.String("path", path))
	if err := c.store.Write(path, g); err != nil {
		return nil, fmt.Errorf("write cache %s: %w", path, err)
	}
	c.logger.Info("FINISH dumping graph")
	return g, nil
}

// restore rebuilds a graph from stored words, rejecting impossible entries.
func restore(words []model.Word) (*dictionary.Graph, error) {
	g := dictionary.NewGraph()
	for i := range words {
		w := words[i]
		if w.First < 0 || w.First >= kana.N || w.Last < 0 || w.Last >= kana.N {
			return nil, fmt.Errorf("%w: word %q has index out of range", ErrCorrupt, w.Surface)
		}
		if w.Bits == 0 || w.Size < 2 {
			return nil, fmt.Errorf("%w: word %q is empty", ErrCorrupt, w.Surface)
		}
		if !g.Insert(&w) {
			return nil, fmt.Errorf("%w: duplicate entry for %q", ErrCorrupt, w.Surface)
		}
	}
	return g, nil
}

func snapshot(g *dictionary.Graph) []model.Word {
	words := make([]model.Word, 0, g.Len())
	g.Each(func(w *model.Word) {
		words = append(words, *w)
	})
	return words
}
