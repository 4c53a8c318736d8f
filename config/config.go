// SPDX-License-Identifier: MIT

// Package config loads pdtool settings from a TOML file. Every key is
// optional; missing keys keep the library defaults.
//
//	log_level            = "info"    # debug | info | warn | error
//	format               = "csv"     # record format of entries read from stdin
//	numerical_tol        = 1e-8      # analyzer weight cut-off
//	formation_energy_tol = 1e-11     # hull admission threshold
//	hull_epsilon         = 0         # absolute hull plane tolerance, 0 scales to the data
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/phasehull/analyzer"
	"github.com/katalvlaran/phasehull/entry"
	"github.com/katalvlaran/phasehull/internal/logging"
	"github.com/katalvlaran/phasehull/phasediagram"
)

var (
	// ErrUnknownKey is returned when the file holds a key Config does not know.
	ErrUnknownKey = errors.New("config: unknown key")

	// ErrInvalidValue is returned when a value fails validation.
	ErrInvalidValue = errors.New("config: invalid value")
)

// Config is the decoded settings file.
type Config struct {
	LogLevel           string       `toml:"log_level"`
	Format             entry.Format `toml:"format"`
	NumericalTol       float64      `toml:"numerical_tol"`
	FormationEnergyTol float64      `toml:"formation_energy_tol"`
	HullEpsilon        float64      `toml:"hull_epsilon"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		LogLevel:           "info",
		Format:             entry.FormatCSV,
		NumericalTol:       analyzer.DefaultNumericalTol,
		FormationEnergyTol: phasediagram.DefaultFormationEnergyTol,
	}
}

// Load reads path over Default. An empty path returns Default.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: reading %s: %w", path, err)
	}

	return Parse(string(data))
}

// Parse decodes TOML text over Default and validates the result.
func Parse(text string) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(text, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config: parsing: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("config: %s: %w", strings.Join(keys, ", "), ErrUnknownKey)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks every field.
func (c Config) Validate() error {
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: log_level: %v: %w", err, ErrInvalidValue)
	}
	switch c.Format {
	case entry.FormatCSV, entry.FormatJSON, entry.FormatYAML:
	default:
		return fmt.Errorf("config: format %q: %w", c.Format, ErrInvalidValue)
	}
	if math.IsNaN(c.NumericalTol) || math.IsInf(c.NumericalTol, 0) || c.NumericalTol <= 0 {
		return fmt.Errorf("config: numerical_tol = %g: %w", c.NumericalTol, ErrInvalidValue)
	}
	// zero is a valid formation-energy cut-off and selects the scaled hull eps
	for _, f := range []struct {
		key string
		v   float64
	}{
		{"formation_energy_tol", c.FormationEnergyTol},
		{"hull_epsilon", c.HullEpsilon},
	} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) || f.v < 0 {
			return fmt.Errorf("config: %s = %g: %w", f.key, f.v, ErrInvalidValue)
		}
	}

	return nil
}

// Level returns the parsed log level. Validate guarantees it parses.
func (c Config) Level() slog.Level {
	lvl, _ := logging.ParseLevel(c.LogLevel)

	return lvl
}

// DiagramOptions returns the phasediagram options the settings describe.
func (c Config) DiagramOptions(logger *slog.Logger) []phasediagram.Option {
	return []phasediagram.Option{
		phasediagram.WithTolerance(c.FormationEnergyTol),
		phasediagram.WithHullEpsilon(c.HullEpsilon),
		phasediagram.WithLogger(logger),
	}
}

// AnalyzerOptions returns the analyzer options the settings describe.
func (c Config) AnalyzerOptions(logger *slog.Logger) []analyzer.Option {
	return []analyzer.Option{
		analyzer.WithNumericalTol(c.NumericalTol),
		analyzer.WithLogger(logger),
	}
}
