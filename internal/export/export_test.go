package export_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"syncon-sim.gridlab.dev/internal/export"
	"syncon-sim.gridlab.dev/internal/model"
	"syncon-sim.gridlab.dev/internal/session"
)

func TestWritePhasorPNG(t *testing.T) {
	dir := t.TempDir()
	sample := model.Compute(230, 5, 5, 0)

	path, err := export.WritePhasorPNG(dir, 230, sample)
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestWriteTracePNG(t *testing.T) {
	dir := t.TempDir()

	path, err := export.WriteTracePNG(dir, []float64{0.7, 0.9, 0.95, 1.0})
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestWriteReportXLSX(t *testing.T) {
	dir := t.TempDir()
	params := session.Parameters{Voltage: 230, RealZ: 5, ImagZ: 5, Excitation: 2.5}
	sample := model.Compute(params.Voltage, params.RealZ, params.ImagZ, params.Excitation)

	path, err := export.WriteReportXLSX(dir, params, sample, []float64{0.7, 1.0})
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestWriteReportXLSXBadDir(t *testing.T) {
	params := session.Parameters{Voltage: 230, RealZ: 5, ImagZ: 5}
	sample := model.Compute(230, 5, 5, 0)

	_, err := export.WriteReportXLSX("/nonexistent-dir/nested", params, sample, nil)
	assert.Error(t, err)
}
