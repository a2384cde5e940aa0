package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

const (
	// Circuit defaults and dial ranges
	DefaultVoltage    = 230.0 // V, constant per session unless overridden
	RealZMin          = 1.0   // ohm
	RealZMax          = 20.0
	RealZDefault      = 5.0
	ImagZMin          = 1.0 // ohm
	ImagZMax          = 20.0
	ImagZDefault      = 5.0
	ExcitationMin     = 0.0 // A
	ExcitationMax     = 10.0
	ExcitationDefault = 0.0
	DialStep          = 0.5 // step quantum shared by all three dials

	// Dynamic mode
	DynamicTickInterval = 2 * time.Second
	PerturbFactorMin    = 0.95 // uniform multiplicative perturbation band
	PerturbFactorMax    = 1.05

	// Display
	AspectRatio   = 0.5   // terminal char aspect correction (chars are ~2:1 tall)
	DialTickCount = 12    // tick marks around the dial face
	PhasorAxisMax = 250.0 // phasor plot half-extent in volts
	TraceWindow   = 120   // power-factor samples shown in the trace panel
	TraceFloor    = 0.8   // trace panel y-axis lower bound

	// App
	AppName    = "SYNCON-SIM"
	AppVersion = "1.0"
)

// File holds the settings that may come from an optional TOML config file.
type File struct {
	Voltage   float64 `mapstructure:"voltage"`
	TickMs    int     `mapstructure:"tick_ms"`
	Artwork   string  `mapstructure:"artwork"`
	ExportDir string  `mapstructure:"export_dir"`
	LogFile   string  `mapstructure:"log_file"`
	LogLevel  string  `mapstructure:"log_level"`
}

// TickInterval returns the configured dynamic-mode interval, or the default.
func (f *File) TickInterval() time.Duration {
	if f.TickMs <= 0 {
		return DynamicTickInterval
	}
	return time.Duration(f.TickMs) * time.Millisecond
}

// Load reads the optional config file. If path is empty the usual locations
// are searched and a missing file is not an error; an explicit path that
// cannot be read is.
func Load(path string) (*File, error) {
	v := viper.New()
	v.SetConfigType("toml")

	v.SetDefault("voltage", DefaultVoltage)
	v.SetDefault("tick_ms", int(DynamicTickInterval/time.Millisecond))
	v.SetDefault("export_dir", ".")
	v.SetDefault("log_file", "syncon-sim.log")
	v.SetDefault("log_level", "warn")

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("syncon-sim")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/syncon-sim")
		v.AddConfigPath("/etc")
	}

	if err := v.ReadInConfig(); err != nil {
		if path != "" {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &File{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return cfg, nil
}
