package model_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"syncon-sim.gridlab.dev/internal/model"
)

func TestComputeNoExcitation(t *testing.T) {
	s := model.Compute(230, 5, 5, 0)

	assert.InDelta(t, 32.527, s.Current, 0.001, "current")
	assert.InDelta(t, 45.0, s.PhaseAngleDeg, 1e-9, "phase angle")
	assert.InDelta(t, 7481.2, s.ApparentPower, 0.1, "apparent power")
	assert.InDelta(t, 5290.4, s.RealPower, 0.1, "real power")
	assert.InDelta(t, 5290.4, s.ReactivePower, 0.1, "reactive power")
	assert.InDelta(t, math.Sqrt2/2, s.PowerFactor, 1e-4, "power factor")
}

func TestComputeFullCompensation(t *testing.T) {
	// 2.5 A of excitation cancels 5 ohm of reactance exactly
	s := model.Compute(230, 5, 5, 2.5)

	assert.InDelta(t, 46.0, s.Current, 1e-9)
	assert.InDelta(t, 0.0, s.PhaseAngleDeg, 1e-9)
	assert.InDelta(t, 10580.0, s.RealPower, 1e-6)
	assert.InDelta(t, 10580.0, s.ApparentPower, 1e-6)
	assert.InDelta(t, 0.0, s.ReactivePower, 1e-6)
	assert.Equal(t, 1.0, s.PowerFactor)
	assert.Equal(t, model.AdvisoryHighPF, model.Classify(s.PowerFactor, s.ReactivePower))
}

func TestComputeOverCompensation(t *testing.T) {
	// 5 A of excitation overshoots: net reactance -5, leading load
	s := model.Compute(230, 5, 5, 5)

	assert.InDelta(t, -45.0, s.PhaseAngleDeg, 1e-9)
	assert.Negative(t, s.ReactivePower)
	assert.Less(t, s.PowerFactor, 0.95)
	assert.Equal(t, model.AdvisoryLeadingLow, model.Classify(s.PowerFactor, s.ReactivePower))
}

func TestComputeZeroImpedanceGuard(t *testing.T) {
	s := model.Compute(230, 0, 0, 0)

	assert.Zero(t, s.Current)
	assert.Zero(t, s.ApparentPower)
	assert.Zero(t, s.RealPower)
	assert.Zero(t, s.ReactivePower)
	assert.Zero(t, s.PowerFactor)
}

func TestComputeZeroVoltage(t *testing.T) {
	s := model.Compute(0, 5, 5, 0)

	assert.Zero(t, s.Current)
	assert.Zero(t, s.ApparentPower)
	assert.Zero(t, s.PowerFactor, "zero apparent power must yield zero power factor")
}

func TestComputeCurrentMatchesImpedanceMagnitude(t *testing.T) {
	for _, tc := range []struct {
		realZ, imagZ, exc float64
	}{
		{1, 1, 0},
		{5, 5, 2.5},
		{20, 20, 10},
		{1, 20, 0},
		{12.5, 3.5, 7},
	} {
		comp := tc.imagZ - 2*tc.exc
		mag := math.Sqrt(tc.realZ*tc.realZ + comp*comp)
		require.Positive(t, mag)

		s := model.Compute(230, tc.realZ, tc.imagZ, tc.exc)
		assert.InDelta(t, 230/mag, s.Current, 1e-9,
			"realZ=%v imagZ=%v exc=%v", tc.realZ, tc.imagZ, tc.exc)
	}
}

func TestComputeClampInvariants(t *testing.T) {
	for realZ := 1.0; realZ <= 20; realZ += 2.375 {
		for imagZ := 1.0; imagZ <= 20; imagZ += 2.375 {
			for exc := 0.0; exc <= 10; exc += 1.25 {
				s := model.Compute(230, realZ, imagZ, exc)

				assert.GreaterOrEqual(t, s.PowerFactor, 0.0)
				assert.LessOrEqual(t, s.PowerFactor, 1.0)
				assert.GreaterOrEqual(t, s.ApparentPower, 0.0)
				assert.GreaterOrEqual(t, s.Current, 0.0)
				assert.Greater(t, s.PhaseAngleDeg, -180.0)
				assert.LessOrEqual(t, s.PhaseAngleDeg, 180.0)
			}
		}
	}
}

func TestComputeIdempotent(t *testing.T) {
	a := model.Compute(230, 7.5, 12, 3.5)
	b := model.Compute(230, 7.5, 12, 3.5)
	assert.Equal(t, a, b)
}

func TestPhaseAngleSignCrossing(t *testing.T) {
	// With realZ and voltage fixed, rising excitation pulls the angle
	// monotonically toward zero, crossing at exc = imagZ/2.
	prev := math.Inf(1)
	for exc := 0.0; exc < 2.5; exc += 0.5 {
		s := model.Compute(230, 5, 5, exc)
		assert.Positive(t, s.PhaseAngleDeg, "exc=%v", exc)
		assert.Less(t, s.PhaseAngleDeg, prev, "exc=%v", exc)
		prev = s.PhaseAngleDeg
	}

	atCrossing := model.Compute(230, 5, 5, 2.5)
	assert.InDelta(t, 0.0, atCrossing.PhaseAngleDeg, 1e-9)

	past := model.Compute(230, 5, 5, 3)
	assert.Negative(t, past.PhaseAngleDeg)
	assert.Negative(t, past.ReactivePower)
}

func TestCompensatedReactance(t *testing.T) {
	assert.Equal(t, 5.0, model.CompensatedReactance(5, 0))
	assert.Equal(t, 0.0, model.CompensatedReactance(5, 2.5))
	assert.Equal(t, -5.0, model.CompensatedReactance(5, 5))
}
