package export

import (
	"path/filepath"

	"github.com/xuri/excelize/v2"
	"syncon-sim.gridlab.dev/internal/model"
	"syncon-sim.gridlab.dev/internal/session"
)

// WriteReportXLSX saves the session report: a summary sheet with the
// current parameters and derived quantities, and a history sheet with one
// row per recomputation. Returns the written file path.
func WriteReportXLSX(dir string, params session.Parameters, sample model.Sample, history []float64) (string, error) {
	f := excelize.NewFile()

	summary := "Summary"
	f.SetSheetName("Sheet1", summary)

	rows := []struct {
		label string
		value interface{}
	}{
		{"Voltage [V]", params.Voltage},
		{"Real Impedance [ohm]", params.RealZ},
		{"Imaginary Impedance [ohm]", params.ImagZ},
		{"Excitation Current [A]", params.Excitation},
		{"Current [A]", sample.Current},
		{"Real Power [W]", sample.RealPower},
		{"Apparent Power [VA]", sample.ApparentPower},
		{"Reactive Power [VAR]", sample.ReactivePower},
		{"Power Factor", sample.PowerFactor},
		{"Phase Angle [deg]", sample.PhaseAngleDeg},
		{"Advisory", model.Classify(sample.PowerFactor, sample.ReactivePower).String()},
		{"Recomputations", len(history)},
	}

	f.SetCellValue(summary, "A1", "Quantity")
	f.SetCellValue(summary, "B1", "Value")
	for i, r := range rows {
		cellA, _ := excelize.CoordinatesToCellName(1, i+2)
		cellB, _ := excelize.CoordinatesToCellName(2, i+2)
		f.SetCellValue(summary, cellA, r.label)
		f.SetCellValue(summary, cellB, r.value)
	}

	sheet := "History"
	f.NewSheet(sheet)
	f.SetCellValue(sheet, "A1", "No")
	f.SetCellValue(sheet, "B1", "PowerFactor")
	for i, pf := range history {
		cellA, _ := excelize.CoordinatesToCellName(1, i+2)
		cellB, _ := excelize.CoordinatesToCellName(2, i+2)
		f.SetCellValue(sheet, cellA, i+1)
		f.SetCellValue(sheet, cellB, pf)
	}

	out := filepath.Join(dir, "session.xlsx")
	if err := f.SaveAs(out); err != nil {
		return "", err
	}
	return out, nil
}
