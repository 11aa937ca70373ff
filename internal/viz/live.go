package viz

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jwseo/fdtdlab/internal/experiment"
	"github.com/jwseo/fdtdlab/internal/fdtd"
	"github.com/jwseo/fdtdlab/internal/grid"
)

const (
	framesPerSecond = 30
	stepsPerFrame   = 2
	historyCapacity = 400

	planeRows = 30
	planeCols = 70
)

type TickMsg time.Time

// Model is the live terminal view of a running engine. It owns the
// stepping cadence; the engine itself is only touched from Update and
// View, so no extra synchronization is needed beyond the engine's own.
type Model struct {
	exp      *experiment.Experiment
	eng      *fdtd.Engine
	comps    []fdtd.Component
	selected int

	axis grid.Axis
	cut  int
	oneD bool

	running  bool
	showHelp bool
	err      error

	history []float64
	canvas  *Canvas
	planes  *sync.Pool
}

// NewModel wraps an already set up experiment.
func NewModel(exp *experiment.Experiment) Model {
	eng := exp.Engine()
	s := eng.Space()

	m := Model{
		exp:     exp,
		eng:     eng,
		comps:   eng.Mode().Active(),
		running: true,
		oneD:    s.Ny == 1 && s.Nz == 1,
		axis:    grid.Z,
		cut:     s.Nz / 2,
		history: make([]float64, 0, historyCapacity),
		canvas:  NewCanvas(planeCols, planeRows/2),
		planes:  &sync.Pool{New: func() any { return [][]float64(nil) }},
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(time.Second/framesPerSecond, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "c":
			m.selected = (m.selected + 1) % len(m.comps)
			m.history = m.history[:0]
		case "r":
			m.reset()
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		if m.running && m.err == nil {
			m.step()
		}
		return m, tick()
	}
	return m, nil
}

func (m *Model) step() {
	for i := 0; i < stepsPerFrame; i++ {
		if err := m.eng.Step(context.Background()); err != nil {
			m.err = err
			m.running = false
			return
		}
	}
	m.history = append(m.history, m.eng.MaxAbs(m.component()))
	if len(m.history) > historyCapacity {
		m.history = m.history[len(m.history)-historyCapacity:]
	}
}

func (m *Model) reset() {
	if err := m.exp.Setup(); err != nil {
		m.err = err
		m.running = false
		return
	}
	m.eng = m.exp.Engine()
	m.history = m.history[:0]
	m.err = nil
	m.running = true
}

func (m *Model) component() fdtd.Component {
	return m.comps[m.selected]
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(fmt.Sprintf("fdtdlab live  [%s]", m.eng.Mode().Name)))
	b.WriteString("\n")

	main := lipgloss.JoinHorizontal(lipgloss.Top, m.fieldView(), m.statsView())
	b.WriteString(main)

	if graph := ProbePlot(m.history, planeCols, 8, "peak |"+m.component().String()+"|"); graph != "" {
		b.WriteString("\n")
		b.WriteString(graphStyle.Render(graph))
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(statusPaused.Render("error: " + m.err.Error()))
	}

	b.WriteString("\n")
	if m.showHelp {
		b.WriteString(helpStyle.Render("space pause/resume   c cycle component   r restart   q quit"))
	} else {
		b.WriteString(helpStyle.Render("? help   q quit"))
	}
	return b.String()
}

func (m Model) fieldView() string {
	c := m.component()

	if m.oneD {
		line, err := m.eng.Line(c, grid.X, 0, 0)
		if err != nil {
			return err.Error()
		}
		m.canvas.Clear()
		m.canvas.PlotSeries(line)
		return m.canvas.String()
	}

	buf := m.planes.Get().([][]float64)
	plane, err := m.eng.PlaneInto(c, m.axis, m.cut, buf)
	if err != nil {
		return err.Error()
	}
	out := Heatmap(plane, planeRows, planeCols)
	m.planes.Put(plane)
	return out
}

func (m Model) statsView() string {
	clock := m.eng.Clock()

	status := statusRunning.Render("running")
	if !m.running {
		status = statusPaused.Render("paused")
	}

	rows := []string{
		labelStyle.Render("status") + status,
		labelStyle.Render("step") + valueStyle.Render(fmt.Sprintf("%.1f", clock.N)),
		labelStyle.Render("time") + valueStyle.Render(fmt.Sprintf("%.4f", clock.T)),
		labelStyle.Render("dt") + valueStyle.Render(fmt.Sprintf("%.4g", m.eng.Space().Dt)),
		labelStyle.Render("field") + valueStyle.Render(m.component().String()),
		labelStyle.Render("peak") + valueStyle.Render(fmt.Sprintf("%.4g", m.eng.MaxAbs(m.component()))),
	}
	return statsStyle.Render(strings.Join(rows, "\n"))
}

// Run drives the live view until the user quits.
func Run(exp *experiment.Experiment) error {
	p := tea.NewProgram(NewModel(exp))
	_, err := p.Run()
	return err
}
