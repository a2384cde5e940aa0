package ui

import "strings"

// RenderPanel wraps content in a titled, bordered panel of the given
// outer dimensions.
func RenderPanel(title, content string, width, height int, active bool) string {
	innerH := height - 2
	if innerH < 3 {
		innerH = 3
	}

	lines := []string{StylePanelTitle.Render(title)}
	lines = append(lines, strings.Split(content, "\n")...)
	if len(lines) > innerH {
		lines = lines[:innerH]
	}
	for len(lines) < innerH {
		lines = append(lines, "")
	}

	sty := StylePanelBorder
	if active {
		sty = StylePanelActive
	}
	return sty.Width(width - 2).Height(innerH).Render(strings.Join(lines, "\n"))
}
