package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"syncon-sim.gridlab.dev/internal/model"
)

// RenderStatusBar renders the bottom status bar: mode, headline numbers,
// the advisory for the latest sample and an optional transient notice.
func RenderStatusBar(width int, dynamic bool, voltage float64, sample model.Sample, notice string) string {
	mode := ""
	if dynamic {
		mode = StyleStatusDynamic.Render("[DYNAMIC]")
	} else {
		mode = StyleStatusStatic.Render("[STATIC]")
	}

	info := fmt.Sprintf(" V: %.0fV  I: %.2fA  PF: %.3f  θ: %+.1f°",
		voltage, sample.Current, sample.PowerFactor, sample.PhaseAngleDeg)

	advisory := model.Classify(sample.PowerFactor, sample.ReactivePower)
	advText := ""
	switch advisory {
	case model.AdvisoryStable:
		advText = "  " + StyleAdvisoryOK.Render("✓ "+advisory.Message())
	case model.AdvisoryNone:
	default:
		advText = "  " + StyleAdvisoryWarn.Render("⚠ "+advisory.Message())
	}

	content := mode + StyleStatusBar.Foreground(ColorGreen).Render(info) + advText
	if notice != "" {
		content += "  " + StyleNotice.Render(notice)
	}

	gap := width - lipgloss.Width(content)
	if gap < 0 {
		gap = 0
	}
	padding := ""
	for i := 0; i < gap; i++ {
		padding += " "
	}

	return StyleStatusBar.Width(width).Render(content + padding)
}
