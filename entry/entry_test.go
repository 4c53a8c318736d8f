// SPDX-License-Identifier: MIT
package entry_test

import (
	"bytes"
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/phasehull/composition"
	"github.com/katalvlaran/phasehull/entry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleEntries() []*entry.Entry {
	return []*entry.Entry{
		entry.MustNew("Li", -1.9),
		entry.MustNew("Fe", -8.3, entry.WithName("Fe_bcc")),
		entry.MustNew("O2", -9.86),
		entry.MustNew("LiFeO2", -27.123456789012345, entry.WithAttribute(map[string]any{"source": "mp-1234"})),
		entry.MustNew("Li0.5Fe2O3", -39.5),
	}
}

func assertSameEntries(t *testing.T, want, got []*entry.Entry) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		assert.True(t, entry.Equal(want[i], got[i]), "entry %d: want %v, got %v", i, want[i], got[i])
	}
}

func TestNew_Validation(t *testing.T) {
	_, err := entry.New(composition.Composition{}, -1)
	assert.ErrorIs(t, err, entry.ErrEmptyComposition)

	_, err = entry.New(composition.MustParse("Fe"), math.NaN())
	assert.ErrorIs(t, err, entry.ErrNonFiniteEnergy)
}

func TestEntry_Derived(t *testing.T) {
	e := entry.MustNew("Fe2O3", -10)
	assert.Equal(t, "Fe2O3", e.Name())
	assert.Equal(t, -2.0, e.EnergyPerAtom())
	assert.False(t, e.IsElement())
	assert.True(t, entry.MustNew("O2", -1).IsElement())
	assert.Nil(t, e.Attribute())
}

func TestElements(t *testing.T) {
	assert.Equal(t, []composition.Element{"Fe", "Li", "O"}, entry.Elements(sampleEntries()))
}

func TestRoundTrip(t *testing.T) {
	for _, name := range []string{"entries.csv", "entries.json", "entries.yaml", "entries.yml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			want := sampleEntries()
			require.NoError(t, entry.Save(path, want))

			els, got, err := entry.Load(path)
			require.NoError(t, err)
			assert.Equal(t, []composition.Element{"Fe", "Li", "O"}, els)
			assertSameEntries(t, want, got)
		})
	}
}

func TestAttributeSurvivesStructuredFormats(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, entry.WriteJSON(&buf, sampleEntries()))
	_, got, err := entry.ReadJSON(&buf)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"source": "mp-1234"}, got[3].Attribute())
}

func TestReadCSV_Layout(t *testing.T) {
	src := strings.Join([]string{
		"Name,Fe,Li,O,Energy",
		"FeO,1,0,1,-16.9",
		"Li2O,0,2,1,-14.3",
	}, "\n")
	els, entries, err := entry.ReadCSV(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, []composition.Element{"Fe", "Li", "O"}, els)
	require.Len(t, entries, 2)
	assert.Equal(t, "Li2 O1", entries[1].Composition().Formula())
	assert.Equal(t, -14.3, entries[1].Energy())
}

func TestReadCSV_Malformed(t *testing.T) {
	_, _, err := entry.ReadCSV(strings.NewReader("Name,Energy\n"))
	assert.ErrorIs(t, err, entry.ErrMalformedRecord)

	_, _, err = entry.ReadCSV(strings.NewReader("Name,Fe,Energy\nFe,abc,-1\n"))
	assert.ErrorIs(t, err, entry.ErrMalformedRecord)

	_, _, err = entry.ReadCSV(strings.NewReader("Name,fe,Energy\nFe,1,-1\n"))
	assert.ErrorIs(t, err, composition.ErrInvalidElement)

	_, _, err = entry.ReadCSV(strings.NewReader("Name,Fe,Energy\nnothing,0,-1\n"))
	assert.ErrorIs(t, err, entry.ErrEmptyComposition)
}

func TestUnknownFormat(t *testing.T) {
	err := entry.Save(filepath.Join(t.TempDir(), "x.txt"), sampleEntries())
	assert.ErrorIs(t, err, entry.ErrUnknownFormat)
	_, _, err = entry.Load("x.xml")
	assert.ErrorIs(t, err, entry.ErrUnknownFormat)
}

func TestDecodeAttribute(t *testing.T) {
	e := entry.MustNew("LiFeO2", -27, entry.WithAttribute(map[string]any{
		"source":      "mp-1234",
		"u_corrected": "true",
		"spacegroup":  166,
	}))
	var meta struct {
		Source     string `mapstructure:"source"`
		UCorrected bool   `mapstructure:"u_corrected"`
		SpaceGroup int    `mapstructure:"spacegroup"`
	}
	require.NoError(t, entry.DecodeAttribute(e, &meta))
	assert.Equal(t, "mp-1234", meta.Source)
	assert.True(t, meta.UCorrected)
	assert.Equal(t, 166, meta.SpaceGroup)
}
