package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"shiritori/config"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "init [path]",
		Short: "Write the default configuration",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "shiritori.yaml"
			if len(args) == 1 {
				path = args[0]
			}
			if err := config.DefaultConfig().Save(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := *a.cfg
			fmt.Fprintf(cmd.OutOrStdout(), "dictionary: %s\ncache: %t (%s)\ntokenizer: %s\nworkers: %d\n",
				c.Dictionary, c.Cache.Enabled, c.Cache.Backend, c.Tokenizer.Dict, c.Solver.Workers)
			return nil
		},
	})
	return cmd
}
