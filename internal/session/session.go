package session

import (
	"math"
	"math/rand"

	"syncon-sim.gridlab.dev/internal/config"
	"syncon-sim.gridlab.dev/internal/model"
)

// Param identifies one of the three dial-controlled circuit parameters.
type Param int

const (
	ParamRealZ Param = iota
	ParamImagZ
	ParamExcitation
)

func (p Param) Label() string {
	switch p {
	case ParamImagZ:
		return "Imaginary Impedance"
	case ParamExcitation:
		return "Excitation Current"
	default:
		return "Real Impedance"
	}
}

func (p Param) Unit() string {
	if p == ParamExcitation {
		return "A"
	}
	return "Ω"
}

// Range returns the dial bounds for the parameter.
func (p Param) Range() (min, max float64) {
	switch p {
	case ParamImagZ:
		return config.ImagZMin, config.ImagZMax
	case ParamExcitation:
		return config.ExcitationMin, config.ExcitationMax
	default:
		return config.RealZMin, config.RealZMax
	}
}

// Parameters is a snapshot of the circuit inputs.
type Parameters struct {
	Voltage    float64
	RealZ      float64
	ImagZ      float64
	Excitation float64
}

// Session owns the mutable circuit parameters and the power-factor
// history. All access happens on the UI event loop; no locking.
type Session struct {
	params  Parameters
	history *model.History
	last    model.Sample
	dynamic bool
}

// New creates a session with the default dial positions and runs the
// first recomputation so the displays have something to show.
func New(voltage float64) *Session {
	s := &Session{
		params: Parameters{
			Voltage:    voltage,
			RealZ:      config.RealZDefault,
			ImagZ:      config.ImagZDefault,
			Excitation: config.ExcitationDefault,
		},
		history: model.NewHistory(),
	}
	s.Recompute()
	return s
}

// Params returns a snapshot of the current parameters.
func (s *Session) Params() Parameters {
	return s.params
}

// Value returns the current value of a dial parameter.
func (s *Session) Value(p Param) float64 {
	switch p {
	case ParamImagZ:
		return s.params.ImagZ
	case ParamExcitation:
		return s.params.Excitation
	default:
		return s.params.RealZ
	}
}

// Set assigns a dial parameter, quantized to the dial step and clamped to
// the parameter's range.
func (s *Session) Set(p Param, v float64) {
	v = math.Round(v/config.DialStep) * config.DialStep
	s.store(p, clamp(v, p))
}

// Step moves a dial parameter by the given number of step quanta
// (negative to decrement).
func (s *Session) Step(p Param, steps int) {
	s.Set(p, s.Value(p)+float64(steps)*config.DialStep)
}

func (s *Session) store(p Param, v float64) {
	switch p {
	case ParamImagZ:
		s.params.ImagZ = v
	case ParamExcitation:
		s.params.Excitation = v
	default:
		s.params.RealZ = v
	}
}

// Recompute evaluates the model for the current parameters, appends the
// power factor to the history and returns the fresh sample.
func (s *Session) Recompute() model.Sample {
	s.last = model.Compute(s.params.Voltage, s.params.RealZ, s.params.ImagZ, s.params.Excitation)
	s.history.Append(s.last.PowerFactor)
	return s.last
}

// Last returns the most recent sample.
func (s *Session) Last() model.Sample {
	return s.last
}

// History returns the session's power-factor history.
func (s *Session) History() *model.History {
	return s.history
}

// Dynamic reports whether dynamic load mode is enabled.
func (s *Session) Dynamic() bool {
	return s.dynamic
}

// SetDynamic toggles dynamic load mode.
func (s *Session) SetDynamic(on bool) {
	s.dynamic = on
}

// PerturbLoad multiplies both impedance parameters by independent uniform
// factors in the perturbation band, clamped back into the dial ranges.
// Perturbed values are not step-quantized; only user input snaps to the
// step quantum.
func (s *Session) PerturbLoad(rng *rand.Rand) {
	s.params.RealZ = clamp(s.params.RealZ*perturbFactor(rng), ParamRealZ)
	s.params.ImagZ = clamp(s.params.ImagZ*perturbFactor(rng), ParamImagZ)
}

func perturbFactor(rng *rand.Rand) float64 {
	return config.PerturbFactorMin + rng.Float64()*(config.PerturbFactorMax-config.PerturbFactorMin)
}

func clamp(v float64, p Param) float64 {
	min, max := p.Range()
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
