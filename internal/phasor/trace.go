package phasor

import (
	"fmt"
	"strings"

	"syncon-sim.gridlab.dev/internal/config"
	"syncon-sim.gridlab.dev/internal/ui"
)

// RenderTrace draws the power-factor history as a character chart, newest
// sample at the right edge. The y axis runs from the trace floor to 1.
func RenderTrace(width, height int, values []float64) string {
	if width < 12 || height < 4 {
		return ""
	}

	axisW := 5 // "0.95 " gutter
	plotW := width - axisW
	plotH := height - 1 // bottom row for the x label

	if len(values) > plotW {
		values = values[len(values)-plotW:]
	}

	grid := make([][]byte, plotH)
	for i := range grid {
		grid[i] = make([]byte, plotW)
		for j := range grid[i] {
			grid[i][j] = ' '
		}
	}

	for i, v := range values {
		grid[traceRow(v, plotH)][i] = markerFor(v)
	}

	var sb strings.Builder
	for row := 0; row < plotH; row++ {
		sb.WriteString(ui.StyleReadoutLabel.Render(gutterLabel(row, plotH)))
		for col := 0; col < plotW; col++ {
			ch := grid[row][col]
			if ch == ' ' {
				sb.WriteByte(' ')
			} else {
				sb.WriteString(ui.StyleTraceLine.Render(string(ch)))
			}
		}
		sb.WriteByte('\n')
	}

	label := fmt.Sprintf("power factor, last %d samples", len(values))
	pad := (width - len(label)) / 2
	if pad < 0 {
		pad = 0
	}
	sb.WriteString(strings.Repeat(" ", pad) + ui.StyleHelp.Render(label))

	return sb.String()
}

// traceRow maps a power factor to a grid row, top row = 1.0, bottom row =
// the trace floor. Values below the floor clamp to the bottom row.
func traceRow(pf float64, plotH int) int {
	span := 1.0 - config.TraceFloor
	frac := (1.0 - pf) / span
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	row := int(frac * float64(plotH-1))
	if row >= plotH {
		row = plotH - 1
	}
	return row
}

func markerFor(pf float64) byte {
	if pf < config.TraceFloor {
		return '_'
	}
	return '*'
}

func gutterLabel(row, plotH int) string {
	switch row {
	case 0:
		return "1.00 "
	case plotH - 1:
		return fmt.Sprintf("%.2f ", config.TraceFloor)
	case (plotH - 1) / 2:
		return fmt.Sprintf("%.2f ", config.TraceFloor+(1.0-config.TraceFloor)/2)
	default:
		return "     "
	}
}
