package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"syncon-sim.gridlab.dev/internal/app"
	"syncon-sim.gridlab.dev/internal/config"
	"syncon-sim.gridlab.dev/internal/logger"
	"syncon-sim.gridlab.dev/internal/session"
	"syncon-sim.gridlab.dev/internal/ui"
)

var (
	flagVoltage   float64
	flagDynamic   bool
	flagArtwork   string
	flagExportDir string
	flagConfig    string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "syncon-sim",
		Short: "Terminal power-system simulator with synchronous condenser control",
		Long: `syncon-sim models a single-phase load behind a synchronous condenser.
Three rotary dials set the real impedance, the imaginary impedance and the
condenser excitation current; the app recomputes the power factor on every
change and draws the voltage/current phasor diagram, the power-factor trend
and an electrical readout with operating advisories.

Dynamic mode perturbs the load impedance every two seconds to simulate a
fluctuating load.`,
		RunE: run,
	}

	rootCmd.Flags().Float64Var(&flagVoltage, "voltage", 0, "Supply voltage in volts (default from config, 230)")
	rootCmd.Flags().BoolVar(&flagDynamic, "dynamic", false, "Start in dynamic load mode")
	rootCmd.Flags().StringVar(&flagArtwork, "artwork", "", "Path to decorative ASCII artwork file")
	rootCmd.Flags().StringVar(&flagExportDir, "export-dir", "", "Directory for exported charts and reports")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to config file (TOML)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}

	// Flags override file values
	voltage := cfg.Voltage
	if cmd.Flags().Changed("voltage") {
		voltage = flagVoltage
	}
	artwork := cfg.Artwork
	if flagArtwork != "" {
		artwork = flagArtwork
	}
	exportDir := cfg.ExportDir
	if flagExportDir != "" {
		exportDir = flagExportDir
	}

	logger.Init(cfg.LogFile, cfg.LogLevel)
	logger.Info().
		Float64("voltage", voltage).
		Bool("dynamic", flagDynamic).
		Msg("starting syncon-sim")

	s := session.New(voltage)
	s.SetDynamic(flagDynamic)

	model := app.New(s, cfg.TickInterval(), ui.LoadArtwork(artwork), exportDir)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err = p.Run()
	return err
}
