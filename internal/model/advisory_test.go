package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"syncon-sim.gridlab.dev/internal/model"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		pf       float64
		reactive float64
		want     model.Advisory
	}{
		{"lagging low", 0.7, 5000, model.AdvisoryLaggingLow},
		{"leading low", 0.7, -5000, model.AdvisoryLeadingLow},
		{"low with zero reactive falls through", 0.7, 0, model.AdvisoryNone},
		{"stable low edge", 0.95, 5000, model.AdvisoryStable},
		{"stable mid band", 0.965, 100, model.AdvisoryStable},
		{"stable high edge", 0.98, 100, model.AdvisoryStable},
		{"high just past edge", 0.981, 100, model.AdvisoryHighPF},
		{"unity", 1.0, 0, model.AdvisoryHighPF},
		{"just below low edge lagging", 0.9499, 1, model.AdvisoryLaggingLow},
		{"just below low edge leading", 0.9499, -1, model.AdvisoryLeadingLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, model.Classify(tt.pf, tt.reactive))
		})
	}
}

func TestAdvisoryMessages(t *testing.T) {
	assert.Empty(t, model.AdvisoryNone.Message())
	assert.Contains(t, model.AdvisoryLaggingLow.Message(), "Increase excitation")
	assert.Contains(t, model.AdvisoryLeadingLow.Message(), "Decrease excitation")
	assert.Contains(t, model.AdvisoryHighPF.Message(), "High power factor")
	assert.Contains(t, model.AdvisoryStable.Message(), "stable")
}

func TestAdvisoryString(t *testing.T) {
	assert.Equal(t, "None", model.AdvisoryNone.String())
	assert.Equal(t, "LaggingLow", model.AdvisoryLaggingLow.String())
	assert.Equal(t, "LeadingLow", model.AdvisoryLeadingLow.String())
	assert.Equal(t, "HighPF", model.AdvisoryHighPF.String())
	assert.Equal(t, "Stable", model.AdvisoryStable.String())
}
