package model

import "math"

// Sample holds the electrical quantities derived from one set of circuit
// parameters. Samples are value types; a fresh one is produced on every
// recomputation.
type Sample struct {
	Current       float64 // A
	PowerFactor   float64 // clamped to [0, 1]
	PhaseAngleDeg float64 // (-180, 180], positive = lagging
	RealPower     float64 // W
	ApparentPower float64 // VA
	ReactivePower float64 // VAR, sign carries leading/lagging
}

// Compute evaluates the single-phase power-factor model for the given
// circuit parameters. The excitation current models a synchronous
// condenser: each ampere of excitation removes two ohms of reactance.
// The factor of two is an empirical simplification, kept as-is.
//
// The function is pure and total: zero impedance magnitude yields zero
// current, zero apparent power yields zero power factor.
func Compute(voltage, realZ, imagZ, excitation float64) Sample {
	compensated := imagZ - excitation*2

	magnitude := math.Sqrt(realZ*realZ + compensated*compensated)

	current := 0.0
	if magnitude > 0 {
		current = voltage / magnitude
	}

	angleRad := math.Atan2(compensated, realZ)

	apparent := voltage * current
	active := apparent * math.Cos(angleRad)
	reactive := apparent * math.Sin(angleRad)

	pf := 0.0
	if apparent > 0 {
		pf = active / apparent
	}
	if pf < 0 {
		pf = 0
	} else if pf > 1 {
		pf = 1
	}

	return Sample{
		Current:       current,
		PowerFactor:   pf,
		PhaseAngleDeg: angleRad * 180 / math.Pi,
		RealPower:     active,
		ApparentPower: apparent,
		ReactivePower: reactive,
	}
}

// CompensatedReactance returns the net reactance after excitation
// compensation. Exposed for the phasor and dial displays.
func CompensatedReactance(imagZ, excitation float64) float64 {
	return imagZ - excitation*2
}
