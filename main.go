package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"shiritori/config"
	"shiritori/logger"
)

// app holds state shared by the commands of one invocation.
type app struct {
	configPath string
	verbose    bool
	targets    []string

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	cmd := &cobra.Command{
		Use:   "shiritori",
		Short: "Find the shortest shiritori chain that collects a target word's sounds",
		Long: `shiritori searches a "surface,reading" dictionary for the cheapest chain of
words that starts at --start, follows the last-sound/first-sound rule,
collects every kana of --target the start word lacks, and ends on the
start word's first sound.

Words may be given as katakana, hiragana, "surface,reading", or kanji read
with the kagome tokenizer.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSolve(cmd)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "config file (YAML)")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	pf.String("dict", "", "dictionary file of surface,reading lines (default noun.csv)")
	pf.String("log-format", "", "log encoding: console or json")
	pf.String("cache-backend", "", "graph cache format: gob or sqlite")
	pf.Bool("no-cache", false, "always build the graph and do not write a cache")
	pf.Bool("skip-malformed", false, "skip dictionary lines that are not surface,reading")
	pf.String("tokenizer", "", "kagome dictionary for kanji input: ipa or uni")

	f := cmd.Flags()
	f.String("start", "", "start word (default チキュウ)")
	f.StringArrayVar(&a.targets, "target", nil, "target word, repeat to solve several (default ツキノイシ)")
	f.String("report-dir", "", "write a JSON analysis of each result to this directory")
	f.Int("workers", 0, "parallel searches when several targets are given (0 = GOMAXPROCS)")

	cmd.AddCommand(newBuildCmd(a), newConfigCmd(a))
	return cmd
}

// setup loads the config, applies flags over it and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if v, _ := flags.GetString("dict"); flags.Changed("dict") {
		cfg.Dictionary = v
	}
	if v, _ := flags.GetString("log-format"); flags.Changed("log-format") {
		cfg.Logging.Format = v
	}
	if v, _ := flags.GetString("cache-backend"); flags.Changed("cache-backend") {
		cfg.Cache.Backend = v
	}
	if v, _ := flags.GetBool("no-cache"); flags.Changed("no-cache") {
		cfg.Cache.Enabled = !v
	}
	if v, _ := flags.GetBool("skip-malformed"); flags.Changed("skip-malformed") {
		cfg.Builder.SkipMalformed = v
	}
	if v, _ := flags.GetString("tokenizer"); flags.Changed("tokenizer") {
		cfg.Tokenizer.Dict = v
	}
	if f := flags.Lookup("start"); f != nil && f.Changed {
		cfg.Start = f.Value.String()
	}
	if f := flags.Lookup("report-dir"); f != nil && f.Changed {
		cfg.ReportDir = f.Value.String()
	}
	if f := flags.Lookup("workers"); f != nil && f.Changed {
		if n, err := flags.GetInt("workers"); err == nil {
			cfg.Solver.Workers = n
		}
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	l, err := logger.New(cfg.Logging.Level, cfg.Logging.Format, a.verbose)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = l
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
