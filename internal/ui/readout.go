package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"syncon-sim.gridlab.dev/internal/model"
)

// RenderReadout renders the electrical readout panel content: the six
// derived quantities plus the advisory line for the latest sample.
func RenderReadout(width, height int, voltage float64, sample model.Sample) string {
	innerW := width - 4
	if innerW < 20 {
		innerW = 20
	}

	title := StylePanelTitle.Render("ELECTRICAL READOUT")
	sep := StyleDialRing.Render(strings.Repeat("-", innerW))
	lines := []string{title, sep, ""}

	fields := []struct{ label, value string }{
		{"Voltage", fmt.Sprintf("%.0f V", voltage)},
		{"Current", fmt.Sprintf("%.2f A", sample.Current)},
		{"Real Power", fmt.Sprintf("%.2f W", sample.RealPower)},
		{"Apparent Power", fmt.Sprintf("%.2f VA", sample.ApparentPower)},
		{"Reactive Power", fmt.Sprintf("%.2f VAR", sample.ReactivePower)},
		{"Power Factor", fmt.Sprintf("%.3f", sample.PowerFactor)},
		{"Phase Angle", fmt.Sprintf("%+.2f °", sample.PhaseAngleDeg)},
	}

	for _, f := range fields {
		label := StyleReadoutLabel.Render(fmt.Sprintf("  %-16s", f.label))
		value := StyleReadoutValue.Render(f.value)
		lines = append(lines, label+value)
	}

	lines = append(lines, "")

	advisory := model.Classify(sample.PowerFactor, sample.ReactivePower)
	switch advisory {
	case model.AdvisoryNone:
	case model.AdvisoryStable:
		lines = append(lines, wrapStyled("  ✓ "+advisory.Message(), innerW, StyleAdvisoryOK)...)
	default:
		lines = append(lines, wrapStyled("  ⚠ "+advisory.Message(), innerW, StyleAdvisoryWarn)...)
	}

	for len(lines) < height-2 {
		lines = append(lines, "")
	}
	if len(lines) > height-2 && height > 2 {
		lines = lines[:height-2]
	}

	content := strings.Join(lines, "\n")
	return StylePanelBorder.Width(width - 2).Height(height - 2).Render(content)
}

// wrapStyled breaks a line on word boundaries to fit the panel width.
func wrapStyled(s string, width int, sty lipgloss.Style) []string {
	words := strings.Fields(s)
	var out []string
	line := " "
	for _, w := range words {
		if len(line)+len(w)+1 > width && line != " " {
			out = append(out, sty.Render(line))
			line = "   " + w
			continue
		}
		line += " " + w
	}
	if strings.TrimSpace(line) != "" {
		out = append(out, sty.Render(line))
	}
	return out
}
