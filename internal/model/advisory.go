package model

// Advisory classifies a sample for the status display.
type Advisory int

const (
	AdvisoryNone Advisory = iota
	AdvisoryLaggingLow
	AdvisoryLeadingLow
	AdvisoryHighPF
	AdvisoryStable
)

// Thresholds for the advisory bands.
const (
	LowPFThreshold  = 0.95
	HighPFThreshold = 0.98
)

func (a Advisory) String() string {
	switch a {
	case AdvisoryLaggingLow:
		return "LaggingLow"
	case AdvisoryLeadingLow:
		return "LeadingLow"
	case AdvisoryHighPF:
		return "HighPF"
	case AdvisoryStable:
		return "Stable"
	default:
		return "None"
	}
}

// Message returns the operator-facing advisory text, or "" for AdvisoryNone.
func (a Advisory) Message() string {
	switch a {
	case AdvisoryLaggingLow:
		return "Low power factor (lagging load). Increase excitation current to improve."
	case AdvisoryLeadingLow:
		return "Low power factor (leading load). Decrease excitation current to improve."
	case AdvisoryHighPF:
		return "High power factor. Adjust excitation current for stability."
	case AdvisoryStable:
		return "Power factor is stable."
	default:
		return ""
	}
}

// Classify maps a sample's power factor and reactive power to an advisory.
// Branch order matters: the low band is checked first, then the high band,
// then the stable band. A low power factor with exactly zero reactive power
// matches no branch and yields AdvisoryNone.
func Classify(powerFactor, reactivePower float64) Advisory {
	switch {
	case powerFactor < LowPFThreshold:
		if reactivePower > 0 {
			return AdvisoryLaggingLow
		}
		if reactivePower < 0 {
			return AdvisoryLeadingLow
		}
		return AdvisoryNone
	case powerFactor > HighPFThreshold:
		return AdvisoryHighPF
	default:
		return AdvisoryStable
	}
}
