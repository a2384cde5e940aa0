// Package phasor renders the voltage/current phasor diagram and the
// power-factor trace as character grids.
package phasor

import (
	"fmt"
	"math"
	"strings"

	"syncon-sim.gridlab.dev/internal/config"
	"syncon-sim.gridlab.dev/internal/model"
	"syncon-sim.gridlab.dev/internal/ui"
)

const (
	cellEmpty = iota
	cellAxis
	cellCenter
	cellVoltage
	cellCurrent
)

// RenderDiagram draws the voltage phasor along +x and the current phasor
// at the sample's phase angle, both scaled against the fixed plot extent.
// A legend with the numeric phase angle is appended underneath.
func RenderDiagram(width, height int, voltage float64, sample model.Sample) string {
	if width < 11 || height < 5 {
		return ""
	}

	grid := make([][]byte, height)
	kind := make([][]int, height)
	for i := range grid {
		grid[i] = make([]byte, width)
		kind[i] = make([]int, width)
		for j := range grid[i] {
			grid[i][j] = ' '
		}
	}

	centerX := width / 2
	centerY := height / 2
	radius := float64(min(centerX-1, int(float64(centerY-1)/config.AspectRatio)))
	if radius < 3 {
		radius = 3
	}

	// Axes
	for c := 0; c < width; c++ {
		if math.Abs(float64(c-centerX)) <= radius {
			grid[centerY][c] = '.'
			kind[centerY][c] = cellAxis
		}
	}
	for r := 0; r < height; r++ {
		if math.Abs(float64(r-centerY)/config.AspectRatio) <= radius {
			grid[r][centerX] = ':'
			kind[r][centerX] = cellAxis
		}
	}

	// The current phasor shares the voltage scale so the angle between the
	// two vectors is the phase angle. Current is drawn second and wins
	// overlapping cells at small angles.
	drawVector(grid, kind, centerX, centerY, radius, 0, voltage, cellVoltage)
	drawVector(grid, kind, centerX, centerY, radius, sample.PhaseAngleDeg, voltage, cellCurrent)

	grid[centerY][centerX] = '+'
	kind[centerY][centerX] = cellCenter

	var sb strings.Builder
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			ch := string(grid[row][col])
			switch kind[row][col] {
			case cellVoltage:
				sb.WriteString(ui.StyleVoltageVec.Render(ch))
			case cellCurrent:
				sb.WriteString(ui.StyleCurrentVec.Render(ch))
			case cellAxis:
				sb.WriteString(ui.StyleAxis.Render(ch))
			case cellCenter:
				sb.WriteString(ui.StyleDialValue.Render(ch))
			default:
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}

	legend := ui.StyleLegendVoltage.Render("— V") + "  " +
		ui.StyleLegendCurrent.Render(fmt.Sprintf("— I (θ=%+.1f°)", sample.PhaseAngleDeg))
	pad := (width - 18) / 2
	if pad < 0 {
		pad = 0
	}
	sb.WriteString(strings.Repeat(" ", pad) + legend)

	return sb.String()
}

// drawVector rasterizes one phasor from the center outward.
func drawVector(grid [][]byte, kind [][]int, centerX, centerY int, radius, angleDeg, magnitude float64, cellKind int) {
	x, y := Project(angleDeg, magnitude, config.PhasorAxisMax)
	steps := int(radius * 2)
	if steps < 2 {
		steps = 2
	}
	lastCol, lastRow := centerX, centerY
	for s := 1; s <= steps; s++ {
		t := float64(s) / float64(steps)
		dcol, drow := CellOffset(x*t, y*t, radius)
		col := centerX + dcol
		row := centerY + drow
		if row < 0 || row >= len(grid) || col < 0 || col >= len(grid[row]) {
			break
		}
		grid[row][col] = SegmentChar(angleDeg)
		kind[row][col] = cellKind
		lastCol, lastRow = col, row
	}
	grid[lastRow][lastCol] = TipChar(angleDeg)
	kind[lastRow][lastCol] = cellKind
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
