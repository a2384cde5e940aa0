package ui

import "github.com/charmbracelet/lipgloss"

// ComposeLayout joins the dial column, phasor column and readout column
// horizontally, with the menu bar on top and status bar on the bottom.
func ComposeLayout(menuBar, dials, center, readout, statusBar string) string {
	middle := lipgloss.JoinHorizontal(lipgloss.Top, dials, center, readout)
	return lipgloss.JoinVertical(lipgloss.Left, menuBar, middle, statusBar)
}
