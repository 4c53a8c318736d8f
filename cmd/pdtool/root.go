// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/phasehull/analyzer"
	"github.com/katalvlaran/phasehull/config"
	"github.com/katalvlaran/phasehull/entry"
	"github.com/katalvlaran/phasehull/internal/logging"
	"github.com/katalvlaran/phasehull/phasediagram"
)

// app carries the state shared by every sub-command of one invocation.
type app struct {
	configPath string
	logLevel   string

	cfg    config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "pdtool",
		Short:         "Phase diagram stability analysis",
		Long:          `pdtool builds the convex hull of formation energies of a set of entries and answers stability queries against it.`,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "TOML settings file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "debug, info, warn or error (overrides the settings file)")

	root.AddCommand(
		newStableCmd(a),
		newDecomposeCmd(a),
		newEHullCmd(a),
		newChempotsCmd(a),
		newProfileCmd(a),
		newRangeCmd(a),
		newConvertCmd(a),
	)

	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	a.cfg = cfg
	a.logger = logging.NewWriter(cmd.ErrOrStderr(), cfg.Level())

	return nil
}

// load reads entries from path, or from stdin when path is "-".
func (a *app) load(cmd *cobra.Command, path string) ([]*entry.Entry, error) {
	var (
		entries []*entry.Entry
		err     error
	)
	if path == "-" {
		_, entries, err = entry.Read(cmd.InOrStdin(), a.cfg.Format)
	} else {
		_, entries, err = entry.Load(path)
	}
	if err != nil {
		return nil, err
	}
	a.logger.Debug("entries loaded", "path", path, "count", len(entries))

	return entries, nil
}

// analyze loads path and builds its diagram and analyzer.
func (a *app) analyze(cmd *cobra.Command, path string) ([]*entry.Entry, *analyzer.Analyzer, error) {
	entries, err := a.load(cmd, path)
	if err != nil {
		return nil, nil, err
	}
	pd, err := phasediagram.New(phasediagram.FromEntries(entries), a.cfg.DiagramOptions(a.logger)...)
	if err != nil {
		return nil, nil, fmt.Errorf("building diagram: %w", err)
	}
	an, err := analyzer.New(pd, a.cfg.AnalyzerOptions(a.logger)...)
	if err != nil {
		return nil, nil, err
	}

	return entries, an, nil
}
