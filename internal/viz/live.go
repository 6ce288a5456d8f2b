package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/gunsim/internal/ballistics"
	"github.com/san-kum/gunsim/internal/dynamo"
)

const historyCapacity = 600

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	exitStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	barStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// Model steps one firing in slow motion and renders barrel progress,
// instantaneous readings, and the pressure history.
type Model struct {
	gun          *ballistics.Gun
	integ        dynamo.Integrator
	state        dynamo.State
	t            float64
	dt           float64
	running      bool
	exited       bool
	pressureHist []float64
}

// NewModel initializes the live view. dt is the per-frame simulation
// step in seconds; a tenth of the grid step gives a readable slow-mo.
func NewModel(gun *ballistics.Gun, integ dynamo.Integrator, dt float64) Model {
	return Model{
		gun:          gun,
		integ:        integ,
		state:        dynamo.State{0, 0},
		dt:           dt,
		running:      true,
		pressureHist: make([]float64, 0, historyCapacity),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.state = dynamo.State{0, 0}
			m.t = 0
			m.exited = false
			m.running = true
			m.pressureHist = m.pressureHist[:0]
		}
	case TickMsg:
		if m.running && !m.exited {
			m.step()
		}
		return m, tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

func (m *Model) step() {
	m.state = m.integ.Step(m.gun, m.state, m.t, m.dt)
	m.t += m.dt

	if !m.state.IsValid() {
		m.exited = true
		return
	}

	psi := m.gun.GaugePressure(m.state[1], m.t) / ballistics.PascalsPerPSI
	m.pressureHist = append(m.pressureHist, psi)
	if len(m.pressureHist) > historyCapacity {
		m.pressureHist = m.pressureHist[1:]
	}

	if m.state[1] > m.gun.Params().BarrelLength {
		m.exited = true
	}
}

func (m Model) View() string {
	p := m.gun.Params()

	var s strings.Builder
	s.WriteString(headerStyle.Render("GAS GUN") + "\n")

	status := "RUNNING"
	if m.exited {
		status = exitStyle.Render("MUZZLE EXIT")
	} else if !m.running {
		status = "PAUSED"
	}
	s.WriteString(status + "\n\n")

	rows := []struct {
		label, value string
	}{
		{"time", fmt.Sprintf("%.2f ms", m.t*1000.0)},
		{"velocity", fmt.Sprintf("%.2f m/s", m.state[0])},
		{"position", fmt.Sprintf("%.4f / %.4f m", m.state[1], p.BarrelLength)},
		{"pressure", fmt.Sprintf("%.2f psig", m.gun.GaugePressure(m.state[1], m.t)/ballistics.PascalsPerPSI)},
		{"gas rate", fmt.Sprintf("%.4f mol/s", m.gun.InjectionRateAt(m.t))},
	}
	for _, r := range rows {
		s.WriteString(labelStyle.Render(r.label) + valueStyle.Render(r.value) + "\n")
	}

	s.WriteString("\n" + barStyle.Render(barrelBar(m.state[1], p.BarrelLength, 60)) + "\n")

	if len(m.pressureHist) > 1 {
		graph := asciigraph.Plot(m.pressureHist,
			asciigraph.Height(8),
			asciigraph.Width(70),
			asciigraph.Caption("gauge pressure (psig)"),
		)
		s.WriteString(graphStyle.Render(graph) + "\n")
	}

	s.WriteString(helpStyle.Render("space pause · r reset · q quit") + "\n")
	return s.String()
}

func barrelBar(pos, barrel float64, width int) string {
	frac := pos / barrel
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	filled := int(frac * float64(width-1))
	var b strings.Builder
	b.WriteString("[")
	for i := 0; i < width; i++ {
		switch {
		case i == filled:
			b.WriteString("●")
		case i < filled:
			b.WriteString("=")
		default:
			b.WriteString(" ")
		}
	}
	b.WriteString("]")
	return b.String()
}

// RunLive starts the live view and blocks until it quits.
func RunLive(gun *ballistics.Gun, integ dynamo.Integrator, dt float64) error {
	p := tea.NewProgram(NewModel(gun, integ, dt))
	_, err := p.Run()
	return err
}
