// SPDX-License-Identifier: MIT
package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/phasehull/config"
	"github.com/katalvlaran/phasehull/entry"
	"github.com/katalvlaran/phasehull/phasediagram"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_EmptyPathIsDefault(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
	assert.Equal(t, slog.LevelInfo, cfg.Level())
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pdtool.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
log_level = "debug"
format = "yaml"
numerical_tol = 1e-6
`), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, cfg.Level())
	assert.Equal(t, entry.FormatYAML, cfg.Format)
	assert.Equal(t, 1e-6, cfg.NumericalTol)
	assert.Equal(t, phasediagram.DefaultFormationEnergyTol, cfg.FormationEnergyTol, "missing keys keep defaults")
	assert.Zero(t, cfg.HullEpsilon)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name, text string
		want       error
	}{
		{"unknown key", `colour = "red"`, config.ErrUnknownKey},
		{"bad level", `log_level = "loud"`, config.ErrInvalidValue},
		{"bad format", `format = "xml"`, config.ErrInvalidValue},
		{"zero tol", `numerical_tol = 0.0`, config.ErrInvalidValue},
		{"negative eps", `hull_epsilon = -1.0`, config.ErrInvalidValue},
		{"negative formation tol", `formation_energy_tol = -1e-9`, config.ErrInvalidValue},
		{"nan formation tol", `formation_energy_tol = nan`, config.ErrInvalidValue},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Parse(tc.text)
			assert.ErrorIs(t, err, tc.want)
		})
	}

	_, err := config.Parse(`log_level = `)
	assert.Error(t, err)
}

// TestParse_ZeroFormationTol accepts the same range phasediagram.WithTolerance
// does: a zero cut-off keeps every negative formation energy.
func TestParse_ZeroFormationTol(t *testing.T) {
	cfg, err := config.Parse(`formation_energy_tol = 0.0`)
	require.NoError(t, err)
	assert.Zero(t, cfg.FormationEnergyTol)

	var o phasediagram.Options
	assert.NotPanics(t, func() {
		for _, opt := range cfg.DiagramOptions(nil) {
			opt(&o)
		}
	})
	assert.Zero(t, o.FormationEnergyTol)
}

func TestOptions(t *testing.T) {
	cfg, err := config.Parse("formation_energy_tol = 1e-6\nhull_epsilon = 1e-9")
	require.NoError(t, err)

	var o phasediagram.Options
	for _, opt := range cfg.DiagramOptions(nil) {
		opt(&o)
	}
	assert.Equal(t, 1e-6, o.FormationEnergyTol)
	assert.Equal(t, 1e-9, o.HullEpsilon)
	assert.NotNil(t, o.Logger)
	assert.Len(t, cfg.AnalyzerOptions(nil), 2)
}
