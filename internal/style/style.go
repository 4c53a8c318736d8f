// SPDX-License-Identifier: MIT

// Package style renders pdtool's terminal output with lipgloss. Styles fall
// back to plain text when stdout is not a terminal.
package style

import "github.com/charmbracelet/lipgloss"

var (
	// Stable marks entries on the hull.
	Stable = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)

	// Unstable marks entries above the hull.
	Unstable = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))

	// Title is used for table headers and section titles.
	Title = lipgloss.NewStyle().Bold(true)

	// Dim is used for separators and secondary values.
	Dim = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)
