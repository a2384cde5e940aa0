package app

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"syncon-sim.gridlab.dev/internal/dial"
	"syncon-sim.gridlab.dev/internal/export"
	"syncon-sim.gridlab.dev/internal/logger"
	"syncon-sim.gridlab.dev/internal/phasor"
	"syncon-sim.gridlab.dev/internal/session"
	"syncon-sim.gridlab.dev/internal/ui"
)

// shared holds state shared between the Bubble Tea model copies.
// Because Bubble Tea uses value receivers, pointer fields ensure all
// copies see the same underlying data.
type shared struct {
	session *session.Session
	rng     *rand.Rand
}

// AppModel is the root Bubble Tea model for the simulator.
type AppModel struct {
	width  int
	height int

	focused   session.Param
	notice    string
	artwork   string
	exportDir string
	tick      time.Duration

	shared *shared
}

var dialOrder = []session.Param{session.ParamRealZ, session.ParamImagZ, session.ParamExcitation}

// New creates the root model around an already-initialized session.
func New(s *session.Session, tick time.Duration, artwork, exportDir string) AppModel {
	return AppModel{
		focused:   session.ParamRealZ,
		artwork:   artwork,
		exportDir: exportDir,
		tick:      tick,
		shared: &shared{
			session: s,
			rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
		},
	}
}

func (m AppModel) Init() tea.Cmd {
	if m.shared.session.Dynamic() {
		return m.dynamicTickCmd()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case DynamicTickMsg:
		// Mode flag is checked first: a tick that was already queued when
		// the mode went off is consumed without effect and the chain ends.
		if !m.shared.session.Dynamic() {
			return m, nil
		}
		m.shared.session.PerturbLoad(m.shared.rng)
		m.shared.session.Recompute()
		return m, m.dynamicTickCmd()

	case ExportDoneMsg:
		if msg.Err != nil {
			logger.Error().Err(msg.Err).Msg("export failed")
			m.notice = "export failed: " + msg.Err.Error()
		} else {
			logger.Info().Strs("files", msg.Files).Msg("export written")
			m.notice = "exported " + strings.Join(msg.Files, ", ")
		}
		return m, nil
	}

	return m, nil
}

func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.notice = ""

	switch msg.String() {
	case "q", "Q", "ctrl+c":
		return m, tea.Quit

	case "1":
		m.focused = session.ParamRealZ
	case "2":
		m.focused = session.ParamImagZ
	case "3":
		m.focused = session.ParamExcitation

	case "tab":
		m.focused = dialOrder[(int(m.focused)+1)%len(dialOrder)]
	case "shift+tab":
		m.focused = dialOrder[(int(m.focused)+len(dialOrder)-1)%len(dialOrder)]

	case "up", "right", "+", "=", "k", "l":
		m.shared.session.Step(m.focused, 1)
		m.shared.session.Recompute()

	case "down", "left", "-", "j", "h":
		m.shared.session.Step(m.focused, -1)
		m.shared.session.Recompute()

	case "d", "D":
		// No-op while already dynamic: only one tick chain at a time.
		if !m.shared.session.Dynamic() {
			m.shared.session.SetDynamic(true)
			return m, m.dynamicTickCmd()
		}

	case "s", "S":
		m.shared.session.SetDynamic(false)

	case "e", "E":
		return m, m.exportCmd()
	}

	return m, nil
}

func (m AppModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing syncon-sim..."
	}

	s := m.shared.session
	params := s.Params()
	sample := s.Last()

	menuH := 1
	statusH := 1
	bodyH := m.height - menuH - statusH
	if bodyH < 12 {
		bodyH = 12
	}

	dialW := m.width / 4
	if dialW < 23 {
		dialW = 23
	}
	readoutW := m.width / 4
	if readoutW < 30 {
		readoutW = 30
	}
	centerW := m.width - dialW - readoutW
	if centerW < 24 {
		centerW = 24
	}

	menuBar := ui.RenderMenuBar(m.width, s.Dynamic())

	// Dial column
	dialInnerW := dialW - 4
	dialInnerH := (bodyH-4)/3 - 1
	if dialInnerH < 5 {
		dialInnerH = 5
	}
	var dials []string
	for _, p := range dialOrder {
		min, max := p.Range()
		face := dial.Render(dialInnerW, dialInnerH, p.Label(), s.Value(p), min, max, p == m.focused)
		dials = append(dials, face)
	}
	dialPanel := ui.RenderPanel("CONTROLS", strings.Join(dials, "\n\n"), dialW, bodyH, true)

	// Center column: phasor on top, trace below
	phasorH := bodyH * 3 / 5
	if phasorH < 9 {
		phasorH = 9
	}
	traceH := bodyH - phasorH
	if traceH < 6 {
		traceH = 6
	}
	diagram := phasor.RenderDiagram(centerW-4, phasorH-4, params.Voltage, sample)
	phasorPanel := ui.RenderPanel("PHASOR DIAGRAM", diagram, centerW, phasorH, false)
	trace := phasor.RenderTrace(centerW-4, traceH-4, s.History().Tail(centerW-4))
	tracePanel := ui.RenderPanel("POWER FACTOR TREND", trace, centerW, traceH, false)
	center := lipgloss.JoinVertical(lipgloss.Left, phasorPanel, tracePanel)

	// Readout column with the decorative artwork underneath
	readoutH := bodyH * 3 / 5
	artH := bodyH - readoutH
	readout := ui.RenderReadout(readoutW, readoutH, params.Voltage, sample)
	artPanel := ui.RenderPanel("SYNCHRONOUS CONDENSER", m.artwork, readoutW, artH, false)
	right := lipgloss.JoinVertical(lipgloss.Left, readout, artPanel)

	statusBar := ui.RenderStatusBar(m.width, s.Dynamic(), params.Voltage, sample, m.notice)

	return ui.ComposeLayout(menuBar, dialPanel, center, right, statusBar)
}

func (m AppModel) dynamicTickCmd() tea.Cmd {
	return tea.Tick(m.tick, func(t time.Time) tea.Msg {
		return DynamicTickMsg(t)
	})
}

func (m AppModel) exportCmd() tea.Cmd {
	s := m.shared.session
	params := s.Params()
	sample := s.Last()
	history := s.History().Values()
	dir := m.exportDir

	return func() tea.Msg {
		var files []string

		f, err := export.WritePhasorPNG(dir, params.Voltage, sample)
		if err != nil {
			return ExportDoneMsg{Err: fmt.Errorf("phasor chart: %w", err)}
		}
		files = append(files, f)

		f, err = export.WriteTracePNG(dir, history)
		if err != nil {
			return ExportDoneMsg{Err: fmt.Errorf("trace chart: %w", err)}
		}
		files = append(files, f)

		f, err = export.WriteReportXLSX(dir, params, sample, history)
		if err != nil {
			return ExportDoneMsg{Err: fmt.Errorf("report: %w", err)}
		}
		files = append(files, f)

		return ExportDoneMsg{Files: files}
	}
}
