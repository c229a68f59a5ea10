package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newBuildCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "Build the word graph for --dict and overwrite its cache",
		Long: `build reads the dictionary, builds the graph and writes the cache file
next to it. Run it after editing the dictionary: cached graphs are never
checked against their source.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.graphCache()
			if err != nil {
				return err
			}
			g, err := c.Rebuild(a.cfg.Dictionary)
			if err != nil {
				return err
			}
			a.logger.Info("graph cached", zap.String("backend", a.cfg.Cache.Backend), zap.Int("words", g.Len()))
			fmt.Fprintf(cmd.OutOrStdout(), "%d words\n", g.Len())
			return nil
		},
	}
}
