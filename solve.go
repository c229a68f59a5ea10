package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"shiritori/analyze"
	"shiritori/cache"
	"shiritori/dictionary"
	"shiritori/logger"
	"shiritori/lookup"
	"shiritori/model"
	"shiritori/solver"
)

func (a *app) buildOptions() []dictionary.Option {
	return []dictionary.Option{
		dictionary.WithLogger(a.logger),
		dictionary.SkipMalformed(a.cfg.Builder.SkipMalformed),
	}
}

func (a *app) graphCache() (*cache.Cache, error) {
	store, err := cache.NewStore(a.cfg.Cache.Backend)
	if err != nil {
		return nil, err
	}
	return cache.New(store, a.logger, a.buildOptions()...), nil
}

func (a *app) loadGraph() (*dictionary.Graph, error) {
	a.logger.Info("START loading graph", zap.String("dictionary", a.cfg.Dictionary))
	var (
		g   *dictionary.Graph
		err error
	)
	if a.cfg.Cache.Enabled {
		var c *cache.Cache
		if c, err = a.graphCache(); err == nil {
			g, err = c.Load(a.cfg.Dictionary)
		}
	} else {
		g, err = dictionary.BuildFile(a.cfg.Dictionary, a.buildOptions()...)
	}
	if err != nil {
		return nil, err
	}
	a.logger.Info("FINISH loading graph", zap.Int("words", g.Len()))
	return g, nil
}

func render(path []*model.Word) string {
	parts := make([]string, len(path))
	for i, w := range path {
		parts[i] = w.String()
	}
	return strings.Join(parts, "->")
}

func (a *app) runSolve(cmd *cobra.Command) error {
	targets := a.targets
	if len(targets) == 0 {
		targets = []string{a.cfg.Target}
	}
	a.logger.Info("solving",
		zap.String("start", a.cfg.Start),
		zap.Strings("targets", targets),
		zap.String("dictionary", a.cfg.Dictionary))

	resolver, err := lookup.NewWithTokenizer(a.cfg.Tokenizer.Dict)
	if err != nil {
		return err
	}
	start, err := resolver.Lookup(a.cfg.Start)
	if err != nil {
		return fmt.Errorf("start word: %w", err)
	}
	readings := make([]string, len(targets))
	for i, t := range targets {
		if readings[i], err = resolver.Reading(t); err != nil {
			return fmt.Errorf("target word: %w", err)
		}
	}

	g, err := a.loadGraph()
	if err != nil {
		return err
	}

	var results []solver.Result
	if len(readings) == 1 {
		results = []solver.Result{solver.Solve(g, start, readings[0], solver.WithLogger(a.logger))}
	} else {
		results, err = solver.SolveAll(cmd.Context(), g, start, readings, a.cfg.Solver.Workers, solver.WithLogger(a.logger))
		if err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	missing := 0
	for i, res := range results {
		if err := a.report(start, readings[i], res); err != nil {
			return err
		}
		if !res.Found() {
			missing++
			a.logger.Error("Path could not be found", zap.String("target", targets[i]))
			continue
		}
		line := render(res.Path)
		a.logger.Info("result", zap.String("target", targets[i]), zap.String("chain", line))
		a.logger.Info("cost", zap.Int("pop", res.Cost.Words), zap.Int("chars", res.Cost.Chars))
		fmt.Fprintln(out, line)
		fmt.Fprintf(out, "words:%d\tchars:%d\n", res.Cost.Words, res.Cost.Chars)
	}
	if missing > 0 {
		return fmt.Errorf("%d of %d targets: %w", missing, len(results), solver.ErrNotFound)
	}
	return nil
}

func (a *app) report(start *model.Word, target string, res solver.Result) error {
	if a.cfg.ReportDir == "" {
		return nil
	}
	an := analyze.Analyze(start, target, res)
	path, err := logger.LogJSON(a.cfg.ReportDir, an.ID+"_result", an)
	if err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	a.logger.Debug("wrote report", zap.String("path", path))
	return nil
}
