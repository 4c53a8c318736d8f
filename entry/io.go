// SPDX-License-Identifier: MIT

package entry

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/phasehull/composition"
	"gopkg.in/yaml.v3"
)

// Format identifies a record format.
type Format string

// Supported formats.
const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

const (
	csvNameHeader   = "Name"
	csvEnergyHeader = "Energy"
)

// record is the JSON/YAML shape of an Entry.
type record struct {
	Name        string                  `json:"name" yaml:"name"`
	Composition composition.Composition `json:"composition" yaml:"composition"`
	Energy      float64                 `json:"energy" yaml:"energy"`
	Attribute   map[string]any          `json:"attribute,omitempty" yaml:"attribute,omitempty"`
}

// FormatFromPath maps a file extension to a Format.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV, nil
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%s: %w", path, ErrUnknownFormat)
	}
}

// Load reads entries from path, choosing the format by extension.
func Load(path string) ([]composition.Element, []*Entry, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("entry: open %s: %w", path, err)
	}
	defer f.Close()

	return Read(f, format)
}

// Save writes entries to path, choosing the format by extension.
func Save(path string, entries []*Entry) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("entry: create %s: %w", path, err)
	}
	if err = Write(f, format, entries); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// Read decodes entries in the given format.
func Read(r io.Reader, format Format) ([]composition.Element, []*Entry, error) {
	switch format {
	case FormatCSV:
		return ReadCSV(r)
	case FormatJSON:
		return ReadJSON(r)
	case FormatYAML:
		return ReadYAML(r)
	default:
		return nil, nil, fmt.Errorf("%q: %w", format, ErrUnknownFormat)
	}
}

// Write encodes entries in the given format.
func Write(w io.Writer, format Format, entries []*Entry) error {
	switch format {
	case FormatCSV:
		return WriteCSV(w, entries)
	case FormatJSON:
		return WriteJSON(w, entries)
	case FormatYAML:
		return WriteYAML(w, entries)
	default:
		return fmt.Errorf("%q: %w", format, ErrUnknownFormat)
	}
}

// WriteCSV writes a header "Name,<elements...>,Energy" followed by one row
// per entry with the amount of every element (0 when absent).
func WriteCSV(w io.Writer, entries []*Entry) error {
	els := Elements(entries)
	cw := csv.NewWriter(w)
	header := make([]string, 0, len(els)+2)
	header = append(header, csvNameHeader)
	for _, el := range els {
		header = append(header, el.Symbol())
	}
	header = append(header, csvEnergyHeader)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("entry: write csv header: %w", err)
	}
	row := make([]string, len(header))
	for _, e := range entries {
		row[0] = e.name
		for i, el := range els {
			row[i+1] = strconv.FormatFloat(e.composition.Amount(el), 'g', -1, 64)
		}
		row[len(row)-1] = strconv.FormatFloat(e.energy, 'g', -1, 64)
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("entry: write csv row %s: %w", e.name, err)
		}
	}
	cw.Flush()

	return cw.Error()
}

// ReadCSV reads the layout produced by WriteCSV. Element columns with a zero
// amount are omitted from an entry's composition.
func ReadCSV(r io.Reader) ([]composition.Element, []*Entry, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("entry: read csv: %w", err)
	}
	if len(rows) == 0 || len(rows[0]) < 3 {
		return nil, nil, fmt.Errorf("entry: csv header: %w", ErrMalformedRecord)
	}
	header := rows[0]
	els := make([]composition.Element, 0, len(header)-2)
	for _, sym := range header[1 : len(header)-1] {
		el, err := composition.NewElement(strings.TrimSpace(sym))
		if err != nil {
			return nil, nil, fmt.Errorf("entry: csv header: %w", err)
		}
		els = append(els, el)
	}

	entries := make([]*Entry, 0, len(rows)-1)
	for line, row := range rows[1:] {
		if len(row) != len(header) {
			return nil, nil, fmt.Errorf("entry: csv line %d: %w", line+2, ErrMalformedRecord)
		}
		amounts := make(map[composition.Element]float64, len(els))
		for i, el := range els {
			amt, err := strconv.ParseFloat(strings.TrimSpace(row[i+1]), 64)
			if err != nil {
				return nil, nil, fmt.Errorf("entry: csv line %d, %s: %w", line+2, el, ErrMalformedRecord)
			}
			if amt > 0 {
				amounts[el] = amt
			}
		}
		energy, err := strconv.ParseFloat(strings.TrimSpace(row[len(row)-1]), 64)
		if err != nil {
			return nil, nil, fmt.Errorf("entry: csv line %d energy: %w", line+2, ErrMalformedRecord)
		}
		comp, err := composition.New(amounts)
		if err != nil {
			return nil, nil, fmt.Errorf("entry: csv line %d: %w", line+2, err)
		}
		e, err := New(comp, energy, WithName(row[0]))
		if err != nil {
			return nil, nil, fmt.Errorf("entry: csv line %d: %w", line+2, err)
		}
		entries = append(entries, e)
	}

	return els, entries, nil
}

// WriteJSON writes entries as an indented JSON array of records.
func WriteJSON(w io.Writer, entries []*Entry) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(toRecords(entries)); err != nil {
		return fmt.Errorf("entry: write json: %w", err)
	}

	return nil
}

// ReadJSON reads a JSON array of records.
func ReadJSON(r io.Reader) ([]composition.Element, []*Entry, error) {
	var recs []record
	if err := json.NewDecoder(r).Decode(&recs); err != nil {
		return nil, nil, fmt.Errorf("entry: read json: %w", err)
	}

	return fromRecords(recs)
}

// WriteYAML writes entries as a YAML sequence of records.
func WriteYAML(w io.Writer, entries []*Entry) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(toRecords(entries)); err != nil {
		return fmt.Errorf("entry: write yaml: %w", err)
	}

	return enc.Close()
}

// ReadYAML reads a YAML sequence of records.
func ReadYAML(r io.Reader) ([]composition.Element, []*Entry, error) {
	var recs []record
	if err := yaml.NewDecoder(r).Decode(&recs); err != nil {
		if err == io.EOF {
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("entry: read yaml: %w", err)
	}

	return fromRecords(recs)
}

func toRecords(entries []*Entry) []record {
	recs := make([]record, len(entries))
	for i, e := range entries {
		recs[i] = record{
			Name:        e.name,
			Composition: e.composition,
			Energy:      e.energy,
			Attribute:   e.attribute,
		}
	}

	return recs
}

func fromRecords(recs []record) ([]composition.Element, []*Entry, error) {
	entries := make([]*Entry, 0, len(recs))
	for i, rec := range recs {
		e, err := New(rec.Composition, rec.Energy, WithName(rec.Name), WithAttribute(rec.Attribute))
		if err != nil {
			return nil, nil, fmt.Errorf("entry: record %d: %w", i, err)
		}
		entries = append(entries, e)
	}

	return Elements(entries), entries, nil
}
