package phasor

import (
	"math"

	"syncon-sim.gridlab.dev/internal/config"
)

// Project maps a phasor (angle in degrees, magnitude) onto unit plot
// coordinates, x right and y up, scaled so maxMag reaches 1. Magnitudes
// beyond maxMag are clipped to the plot edge.
func Project(angleDeg, magnitude, maxMag float64) (x, y float64) {
	if maxMag <= 0 {
		return 0, 0
	}
	r := magnitude / maxMag
	if r > 1 {
		r = 1
	}
	rad := angleDeg * math.Pi / 180
	return r * math.Cos(rad), r * math.Sin(rad)
}

// CellOffset converts unit plot coordinates to a cell offset from the
// grid center, compressing rows by the terminal aspect ratio.
func CellOffset(x, y, radius float64) (dcol, drow int) {
	dcol = int(math.Round(x * radius))
	drow = -int(math.Round(y * radius * config.AspectRatio))
	return dcol, drow
}

// SegmentChar picks the line character for a segment at the given plot
// angle (degrees, x right, y up).
func SegmentChar(angleDeg float64) byte {
	a := math.Mod(angleDeg, 180)
	if a < 0 {
		a += 180
	}
	switch {
	case a < 22.5 || a >= 157.5:
		return '-'
	case a < 67.5:
		return '/'
	case a < 112.5:
		return '|'
	default:
		return '\\'
	}
}

// TipChar picks the arrowhead character for a vector pointing at the
// given plot angle (degrees, x right, y up).
func TipChar(angleDeg float64) byte {
	a := math.Mod(angleDeg, 360)
	if a < 0 {
		a += 360
	}
	switch {
	case a < 22.5 || a >= 337.5:
		return '>'
	case a < 67.5:
		return '/'
	case a < 112.5:
		return '^'
	case a < 157.5:
		return '\\'
	case a < 202.5:
		return '<'
	case a < 247.5:
		return '/'
	case a < 292.5:
		return 'v'
	default:
		return '\\'
	}
}
