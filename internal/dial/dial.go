// Package dial renders the rotary dial controls as ASCII art.
package dial

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"syncon-sim.gridlab.dev/internal/config"
	"syncon-sim.gridlab.dev/internal/ui"
)

// PointerAngle maps a dial value to the pointer angle in radians,
// 0 = north, increasing clockwise. Min maps to 0, max to a full turn.
func PointerAngle(value, min, max float64) float64 {
	if max <= min {
		return 0
	}
	frac := (value - min) / (max - min)
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	return frac * 2 * math.Pi
}

// Quantize snaps a raw value to the dial step and clamps it to [min, max].
func Quantize(raw, min, max, step float64) float64 {
	v := math.Round(raw/step) * step
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// Render draws one dial face: a ring of tick marks, a pointer at the
// value's angle, the value in the center and the label underneath.
// Focused dials get the bright palette.
func Render(width, height int, label string, value, min, max float64, focused bool) string {
	if width < 9 || height < 5 {
		return ""
	}

	grid := make([][]byte, height)
	isPointer := make([][]bool, height)
	for i := range grid {
		grid[i] = make([]byte, width)
		isPointer[i] = make([]bool, width)
		for j := range grid[i] {
			grid[i][j] = ' '
		}
	}

	fcx := float64(width) / 2.0
	fcy := float64(height) / 2.0
	rx := fcx - 1.0
	ry := fcy - 1.0
	if rx < 3 {
		rx = 3
	}
	if ry < 2 {
		ry = 2
	}

	// Tick marks around the face
	for i := 0; i < config.DialTickCount; i++ {
		a := float64(i) * 2 * math.Pi / float64(config.DialTickCount)
		col := int(math.Round(fcx + rx*math.Sin(a)))
		row := int(math.Round(fcy - ry*math.Cos(a)))
		if col >= 0 && col < width && row >= 0 && row < height {
			grid[row][col] = tickChar(a)
		}
	}

	// Pointer shaft from center toward the value angle
	angle := PointerAngle(value, min, max)
	sinA := math.Sin(angle)
	cosA := math.Cos(angle)
	shaftSteps := int(math.Max(rx, ry))
	if shaftSteps < 2 {
		shaftSteps = 2
	}
	tipCol, tipRow := int(math.Round(fcx)), int(math.Round(fcy))
	for s := 1; s <= shaftSteps; s++ {
		t := float64(s) / float64(shaftSteps) * 0.8
		col := int(math.Round(fcx + t*rx*sinA))
		row := int(math.Round(fcy - t*ry*cosA))
		if col >= 0 && col < width && row >= 0 && row < height {
			grid[row][col] = shaftChar(angle)
			isPointer[row][col] = true
			tipCol, tipRow = col, row
		}
	}
	grid[tipRow][tipCol] = tipChar(angle)
	isPointer[tipRow][tipCol] = true

	// Value text across the center
	valText := fmt.Sprintf("%.1f", value)
	vCol := int(math.Round(fcx)) - len(valText)/2
	vRow := int(math.Round(fcy))
	for i := 0; i < len(valText); i++ {
		c := vCol + i
		if c >= 0 && c < width {
			grid[vRow][c] = valText[i]
			isPointer[vRow][c] = false
		}
	}

	ringSty := ui.StyleDialRing
	pointerSty := ui.StyleDialPointer
	valueSty := ui.StyleDialValue
	if focused {
		ringSty = ui.StyleDialRingFocus
		pointerSty = ui.StyleDialPointerFocus
	}

	var sb strings.Builder
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			ch := grid[row][col]
			inValue := row == vRow && col >= vCol && col < vCol+len(valText)
			switch {
			case ch == ' ':
				sb.WriteByte(' ')
			case inValue:
				sb.WriteString(valueSty.Render(string(ch)))
			case isPointer[row][col]:
				sb.WriteString(pointerSty.Render(string(ch)))
			default:
				sb.WriteString(ringSty.Render(string(ch)))
			}
		}
		sb.WriteByte('\n')
	}

	labelSty := ui.StyleDialLabel
	if focused {
		labelSty = ui.StyleDialLabelFocus
	}
	pad := (width - lipgloss.Width(label)) / 2
	if pad < 0 {
		pad = 0
	}
	sb.WriteString(strings.Repeat(" ", pad) + labelSty.Render(label))

	return sb.String()
}

func tickChar(a float64) byte {
	sector := int(math.Round(normalize(a)/(math.Pi/4))) % 8
	switch sector {
	case 0, 4:
		return '-'
	case 2, 6:
		return '|'
	case 1, 5:
		return '\\'
	default:
		return '/'
	}
}

func shaftChar(a float64) byte {
	sector := int(math.Round(normalize(a)/(math.Pi/4))) % 8
	switch sector {
	case 0, 4:
		return '|'
	case 2, 6:
		return '-'
	case 1, 5:
		return '\\'
	default:
		return '/'
	}
}

func tipChar(a float64) byte {
	sector := int(math.Round(normalize(a)/(math.Pi/4))) % 8
	switch sector {
	case 0:
		return '^'
	case 1:
		return '/'
	case 2:
		return '>'
	case 3:
		return '\\'
	case 4:
		return 'v'
	case 5:
		return '/'
	case 6:
		return '<'
	default:
		return '\\'
	}
}

func normalize(a float64) float64 {
	for a < 0 {
		a += 2 * math.Pi
	}
	for a >= 2*math.Pi {
		a -= 2 * math.Pi
	}
	return a
}
