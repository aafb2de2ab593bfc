// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/katalvlaran/webrank/internal/config"
	"github.com/katalvlaran/webrank/internal/history"
	"github.com/katalvlaran/webrank/pagerank"
	"github.com/katalvlaran/webrank/webfile"
)

// globalOpts holds the persistent flags and the resolved configuration.
type globalOpts struct {
	configPath   string
	web          string
	logLevel     string
	historyDB    string
	maxIter      int
	conserveMass bool

	cfg config.Config
}

func newRootCmd() *cobra.Command {
	o := &globalOpts{}
	root := &cobra.Command{
		Use:   "webrank",
		Short: "PageRank for small webgraphs",
		Long: `webrank computes PageRank scores for a webgraph stored as a square
digit matrix (row = destination page, column = source page).

Run 'webrank' in a terminal for the interactive method loop, or use the
subcommands for non-interactive use.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error { return o.resolve(cmd) },
		Run: func(cmd *cobra.Command, _ []string) {
			runDefaultEntry(cmd, o)
		},
	}

	d := config.Default()
	pf := root.PersistentFlags()
	pf.StringVar(&o.configPath, "config", "", "YAML configuration file")
	pf.StringVar(&o.web, "web", d.WebFile, "connectivity matrix file")
	pf.StringVar(&o.logLevel, "log-level", d.LogLevel, "log level (debug|info|warn|error)")
	pf.StringVar(&o.historyDB, "history-db", d.HistoryDB, "SQLite file recording runs (empty disables)")
	pf.IntVar(&o.maxIter, "max-iterations", d.Power.MaxIterations, "power method iteration cap")
	pf.BoolVar(&o.conserveMass, "conserve-mass", d.Power.ConserveMass, "use (1-p)/n teleport for dangling pages in the power method")

	root.AddCommand(rankCmd(o))
	root.AddCommand(multiplyCmd(o))
	root.AddCommand(historyCmd(o))

	return root
}

// resolve layers defaults, the config file and explicitly set flags, then
// applies the log level.
func (o *globalOpts) resolve(cmd *cobra.Command) error {
	cfg := config.Default()
	if o.configPath != "" {
		var err error
		if cfg, err = config.Load(o.configPath); err != nil {
			return err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("web") {
		cfg.WebFile = o.web
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = o.logLevel
	}
	if flags.Changed("history-db") {
		cfg.HistoryDB = o.historyDB
	}
	if flags.Changed("max-iterations") {
		cfg.Power.MaxIterations = o.maxIter
	}
	if flags.Changed("conserve-mass") {
		cfg.Power.ConserveMass = o.conserveMass
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	lvl, err := cfg.Level()
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(lvl)
	o.cfg = cfg

	return nil
}

// engine parses the configured web file and builds a ranking engine.
func (o *globalOpts) engine() (*pagerank.Engine, error) {
	m, err := webfile.Parse(o.cfg.WebFile)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", o.cfg.WebFile, err)
	}
	log.Debug().Str("file", o.cfg.WebFile).Int("pages", m.Rows()).Msg("connectivity matrix loaded")

	opts := append(o.cfg.EngineOptions(), pagerank.WithLogger(log.Logger))

	return pagerank.NewEngine(m, opts...)
}

// openHistory opens the configured store, or returns nil when disabled.
func (o *globalOpts) openHistory() (*history.Store, error) {
	if o.cfg.HistoryDB == "" {
		return nil, nil
	}

	return history.Open(o.cfg.HistoryDB)
}

// closeHistory closes c and joins a close failure into *err.
func closeHistory(c io.Closer, err *error) {
	if cerr := c.Close(); cerr != nil {
		*err = errors.Join(*err, fmt.Errorf("close history: %w", cerr))
	}
}

// runDefaultEntry starts the interactive loop when stdin is a terminal.
func runDefaultEntry(cmd *cobra.Command, o *globalOpts) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintf(os.Stderr, "Interactive mode requires a TTY terminal.\n")
		fmt.Fprintf(os.Stderr, "Use subcommands for non-interactive runs:\n\n")
		fmt.Fprintf(os.Stderr, "   webrank rank --method power --web web.txt\n")
		fmt.Fprintf(os.Stderr, "   webrank multiply\n")
		fmt.Fprintf(os.Stderr, "   webrank --help\n")
		os.Exit(2)
	}

	if err := runInteractive(cmd, o); err != nil {
		log.Error().Err(err).Msg("interactive session failed")
		os.Exit(1)
	}
}
