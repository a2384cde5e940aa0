package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"syncon-sim.gridlab.dev/internal/config"
)

// RenderMenuBar renders the top menu bar.
func RenderMenuBar(width int, dynamic bool) string {
	title := fmt.Sprintf(" %s v%s ", config.AppName, config.AppVersion)

	keys := []struct{ key, label string }{
		{"1-3", " dial"},
		{"+/-", " adjust"},
		{"D", "ynamic"},
		{"S", "tatic"},
		{"E", "xport"},
		{"Q", "uit"},
	}

	menu := ""
	for _, k := range keys {
		menu += "  " + StyleMenuKey.Render("["+k.key+"]") + StyleMenuLabel.Render(k.label)
	}

	mode := ""
	if dynamic {
		mode = StyleStatusDynamic.Render("DYNAMIC")
	} else {
		mode = StyleStatusStatic.Render("STATIC")
	}

	left := StyleMenuKey.Render(title) + menu
	right := mode + " "

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}
	padding := ""
	for i := 0; i < gap; i++ {
		padding += " "
	}

	return StyleMenuBar.Width(width).Render(left + padding + right)
}
