package ui

import "github.com/charmbracelet/lipgloss"

// Console color palette
var (
	ColorBright   = lipgloss.Color("#00FF41")
	ColorGreen    = lipgloss.Color("#00CC33")
	ColorMid      = lipgloss.Color("#008F11")
	ColorDim      = lipgloss.Color("#004A0A")
	ColorVoltage  = lipgloss.Color("#33AAFF")
	ColorCurrent  = lipgloss.Color("#FF5544")
	ColorTrace    = lipgloss.Color("#FFB000")
	ColorWarning  = lipgloss.Color("#FFAA00")
	ColorError    = lipgloss.Color("#FF3300")
	ColorBorderOn = lipgloss.Color("#00FF41")
	ColorBorder   = lipgloss.Color("#00AA22")
)

// Pre-built styles
var (
	StyleMenuBar = lipgloss.NewStyle().
			Background(lipgloss.Color("#002200")).
			Foreground(ColorBright).
			Bold(true).
			Padding(0, 1)

	StyleMenuKey = lipgloss.NewStyle().
			Foreground(ColorBright).
			Bold(true)

	StyleMenuLabel = lipgloss.NewStyle().
			Foreground(ColorGreen)

	StyleStatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("#002200")).
			Foreground(ColorGreen).
			Padding(0, 1)

	StyleStatusDynamic = lipgloss.NewStyle().
				Foreground(ColorWarning).
				Bold(true)

	StyleStatusStatic = lipgloss.NewStyle().
				Foreground(ColorBright).
				Bold(true)

	StylePanelBorder = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorBorder)

	StylePanelActive = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorBorderOn)

	StylePanelTitle = lipgloss.NewStyle().
			Foreground(ColorBright).
			Bold(true).
			Padding(0, 1)

	StyleHelp = lipgloss.NewStyle().
			Foreground(ColorDim)

	StyleDialRing = lipgloss.NewStyle().
			Foreground(ColorMid)

	StyleDialRingFocus = lipgloss.NewStyle().
				Foreground(ColorGreen)

	StyleDialPointer = lipgloss.NewStyle().
				Foreground(ColorGreen).
				Bold(true)

	StyleDialPointerFocus = lipgloss.NewStyle().
				Foreground(ColorBright).
				Bold(true)

	StyleDialValue = lipgloss.NewStyle().
			Foreground(ColorBright).
			Bold(true)

	StyleDialLabel = lipgloss.NewStyle().
			Foreground(ColorMid)

	StyleDialLabelFocus = lipgloss.NewStyle().
				Foreground(ColorBright).
				Bold(true)

	StyleReadoutLabel = lipgloss.NewStyle().
				Foreground(ColorMid)

	StyleReadoutValue = lipgloss.NewStyle().
				Foreground(ColorBright).
				Bold(true)

	StyleAdvisoryWarn = lipgloss.NewStyle().
				Foreground(ColorWarning).
				Bold(true)

	StyleAdvisoryOK = lipgloss.NewStyle().
			Foreground(ColorBright).
			Bold(true)

	StyleAxis = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#003300"))

	StyleVoltageVec = lipgloss.NewStyle().
			Foreground(ColorVoltage).
			Bold(true)

	StyleCurrentVec = lipgloss.NewStyle().
			Foreground(ColorCurrent).
			Bold(true)

	StyleTraceLine = lipgloss.NewStyle().
			Foreground(ColorTrace)

	StyleLegendVoltage = lipgloss.NewStyle().
				Foreground(ColorVoltage)

	StyleLegendCurrent = lipgloss.NewStyle().
				Foreground(ColorCurrent)

	StyleArtwork = lipgloss.NewStyle().
			Foreground(ColorDim)

	StyleNotice = lipgloss.NewStyle().
			Foreground(ColorWarning)
)
