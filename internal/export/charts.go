// Package export writes the current view to files: phasor and trace
// charts as PNG, and the session report as XLSX.
package export

import (
	"image/color"
	"math"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"syncon-sim.gridlab.dev/internal/config"
	"syncon-sim.gridlab.dev/internal/model"
)

var (
	colorVoltage = color.RGBA{R: 0x33, G: 0xAA, B: 0xFF, A: 0xFF}
	colorCurrent = color.RGBA{R: 0xFF, G: 0x55, B: 0x44, A: 0xFF}
	colorTrace   = color.RGBA{R: 0xFF, G: 0xB0, B: 0x00, A: 0xFF}
)

// WritePhasorPNG saves the voltage/current vector diagram. Returns the
// written file path.
func WritePhasorPNG(dir string, voltage float64, sample model.Sample) (string, error) {
	p := plot.New()
	p.Title.Text = "Voltage-Current Vector Diagram"
	p.X.Min, p.X.Max = -config.PhasorAxisMax, config.PhasorAxisMax
	p.Y.Min, p.Y.Max = -config.PhasorAxisMax, config.PhasorAxisMax

	vLine, err := plotter.NewLine(plotter.XYs{{X: 0, Y: 0}, {X: voltage, Y: 0}})
	if err != nil {
		return "", err
	}
	vLine.Color = colorVoltage
	vLine.Width = vg.Points(2)

	rad := sample.PhaseAngleDeg * math.Pi / 180
	iLine, err := plotter.NewLine(plotter.XYs{
		{X: 0, Y: 0},
		{X: voltage * math.Cos(rad), Y: voltage * math.Sin(rad)},
	})
	if err != nil {
		return "", err
	}
	iLine.Color = colorCurrent
	iLine.Width = vg.Points(2)

	p.Add(vLine, iLine)
	p.Legend.Add("Voltage", vLine)
	p.Legend.Add("Current", iLine)

	out := filepath.Join(dir, "phasor.png")
	if err := p.Save(6*vg.Inch, 6*vg.Inch, out); err != nil {
		return "", err
	}
	return out, nil
}

// WriteTracePNG saves the power-factor-over-time line chart. Returns the
// written file path.
func WriteTracePNG(dir string, history []float64) (string, error) {
	p := plot.New()
	p.Title.Text = "Power Factor Over Time"
	p.X.Label.Text = "sample"
	p.Y.Label.Text = "power factor"
	p.Y.Min, p.Y.Max = config.TraceFloor, 1

	pts := make(plotter.XYs, len(history))
	for i, v := range history {
		pts[i] = plotter.XY{X: float64(i), Y: v}
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return "", err
	}
	line.Color = colorTrace

	p.Add(line)
	p.Legend.Add("Power Factor", line)

	out := filepath.Join(dir, "pf_history.png")
	if err := p.Save(8*vg.Inch, 4*vg.Inch, out); err != nil {
		return "", err
	}
	return out, nil
}
