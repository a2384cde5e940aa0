package app

import "time"

// DynamicTickMsg drives one dynamic-load perturbation cycle.
type DynamicTickMsg time.Time

// ExportDoneMsg reports the outcome of a snapshot export.
type ExportDoneMsg struct {
	Files []string
	Err   error
}
