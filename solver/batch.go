package solver

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"shiritori/dictionary"
	"shiritori/model"
)

// SolveAll solves every target against the shared graph using up to workers
// goroutines (GOMAXPROCS when workers <= 0). Results keep the order of
// targets. Cancelling ctx stops targets that have not started yet.
func SolveAll(ctx context.Context, g *dictionary.Graph, start *model.Word, targets []string, workers int, opts ...Option) ([]Result, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	results := make([]Result, len(targets))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i, target := range targets {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = Solve(g, start, target, opts...)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
