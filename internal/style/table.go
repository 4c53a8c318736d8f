// SPDX-License-Identifier: MIT

package style

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Alignment specifies column text alignment.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

// Column is a table column. Widths are derived from the content.
type Column struct {
	Name  string
	Align Alignment
}

// Table renders aligned rows under a styled header.
type Table struct {
	columns []Column
	rows    [][]string
	indent  string
}

// NewTable creates a table with the given columns.
func NewTable(columns ...Column) *Table {
	return &Table{columns: columns}
}

// SetIndent sets the left indent of every line.
func (t *Table) SetIndent(indent string) *Table {
	t.indent = indent
	return t
}

// AddRow appends a row; missing cells are empty, extra cells are dropped.
// Cells may already be styled.
func (t *Table) AddRow(values ...string) *Table {
	row := make([]string, len(t.columns))
	copy(row, values)
	t.rows = append(t.rows, row)
	return t
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.rows) }

// Render returns the table, one line per row plus header and separator.
func (t *Table) Render() string {
	if len(t.columns) == 0 {
		return ""
	}
	widths := make([]int, len(t.columns))
	for i, c := range t.columns {
		widths[i] = lipgloss.Width(c.Name)
	}
	for _, row := range t.rows {
		for i, v := range row {
			if w := lipgloss.Width(v); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var sb strings.Builder
	header := make([]string, len(t.columns))
	for i, c := range t.columns {
		header[i] = Title.Render(c.Name)
	}
	t.writeLine(&sb, header, widths)

	total := len(widths) - 1
	for _, w := range widths {
		total += w
	}
	sb.WriteString(t.indent)
	sb.WriteString(Dim.Render(strings.Repeat("─", total)))
	sb.WriteString("\n")

	for _, row := range t.rows {
		t.writeLine(&sb, row, widths)
	}

	return sb.String()
}

func (t *Table) writeLine(sb *strings.Builder, cells []string, widths []int) {
	sb.WriteString(t.indent)
	for i, cell := range cells {
		pad := widths[i] - lipgloss.Width(cell)
		if t.columns[i].Align == AlignRight {
			sb.WriteString(strings.Repeat(" ", pad))
			sb.WriteString(cell)
		} else {
			sb.WriteString(cell)
			if i < len(cells)-1 {
				sb.WriteString(strings.Repeat(" ", pad))
			}
		}
		if i < len(cells)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("\n")
}
