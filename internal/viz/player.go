package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/linsim/internal/linalg"
)

const (
	canvasWidth  = 60
	canvasHeight = 20
	maxSpeed     = 64
	frameRate    = time.Second / 30
)

// Trajectory is a recorded run. Outputs is optional and defaults to the
// first state component.
type Trajectory struct {
	Name    string
	Times   []float64
	States  []linalg.Vector
	Outputs []float64
}

type TickMsg time.Time

// Player replays a Trajectory one or more samples per frame.
type Player struct {
	traj    Trajectory
	xs, ys  []float64
	bounds  Bounds
	canvas  *Canvas
	head    int
	speed   int
	running bool
}

func NewPlayer(traj Trajectory) Player {
	if len(traj.Outputs) != len(traj.States) {
		traj.Outputs = component(traj.States, 0)
	}

	// Phase portrait for two or more states, time response otherwise.
	xs, ys := traj.Times, component(traj.States, 0)
	if len(traj.States) > 0 && len(traj.States[0]) >= 2 {
		xs, ys = component(traj.States, 0), component(traj.States, 1)
	}

	return Player{
		traj:    traj,
		xs:      xs,
		ys:      ys,
		bounds:  BoundsOf(xs, ys),
		canvas:  NewCanvas(canvasWidth, canvasHeight),
		speed:   1,
		running: true,
	}
}

func component(states []linalg.Vector, i int) []float64 {
	out := make([]float64, len(states))
	for k, x := range states {
		if i < len(x) {
			out[k] = x[i]
		}
	}
	return out
}

func tick() tea.Cmd {
	return tea.Tick(frameRate, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Player) Init() tea.Cmd {
	return tick()
}

func (m Player) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.head = 0
		case "[":
			m.seek(-1)
		case "]":
			m.seek(1)
		case "+", "=":
			m.speed = min(m.speed*2, maxSpeed)
		case "-", "_":
			m.speed = max(m.speed/2, 1)
		}
	case TickMsg:
		if m.running {
			m.seek(m.speed)
			if m.Done() {
				m.running = false
			}
		}
		return m, tick()
	}
	return m, nil
}

func (m *Player) seek(delta int) {
	last := len(m.traj.Times) - 1
	m.head = max(0, min(m.head+delta, last))
}

// Head is the index of the sample currently displayed.
func (m Player) Head() int { return m.head }

func (m Player) Running() bool { return m.running }

// Done reports whether playback reached the final sample.
func (m Player) Done() bool { return m.head >= len(m.traj.Times)-1 }

func (m Player) View() string {
	if len(m.traj.Times) == 0 {
		return ErrorStyle.Render("no samples to play") + "\n"
	}

	m.canvas.Clear()
	m.canvas.Polyline(m.bounds, m.xs[:m.head+1], m.ys[:m.head+1])
	canvasView := canvasStyle.Render(m.canvas.String())

	status := StatusRunning.Render("PLAYING")
	if !m.running {
		status = StatusPaused.Render("PAUSED")
	}

	var s strings.Builder
	s.WriteString(Header(m.traj.Name) + "\n")
	s.WriteString(fmt.Sprintf("%s  x%d\n\n", status, m.speed))

	if chart := Chart(m.traj.Outputs[:m.head+1], 36, 6, "y(t)"); chart != "" {
		s.WriteString(graphStyle.Render(chart) + "\n")
	}

	s.WriteString(Field("Time", fmt.Sprintf("%.3fs", m.traj.Times[m.head])) + "\n")
	s.WriteString(Field("Sample", fmt.Sprintf("%d/%d", m.head+1, len(m.traj.Times))) + "\n")
	s.WriteString(Field("Output", fmt.Sprintf("%.4g", m.traj.Outputs[m.head])) + "\n")
	for i, v := range m.traj.States[m.head] {
		s.WriteString(Field(fmt.Sprintf("x%d", i), fmt.Sprintf("%.4g", v)) + "\n")
	}
	progress := float64(m.head) / float64(max(len(m.traj.Times)-1, 1))
	s.WriteString("\n" + ProgressBar(progress, 30) + "\n")
	s.WriteString(helpStyle.Render("SP:Pause R:Rewind Q:Quit\n[ ]:Step +/-:Speed"))

	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsStyle.Render(s.String()))
}

// Play runs the player full screen until the user quits.
func Play(traj Trajectory) error {
	_, err := tea.NewProgram(NewPlayer(traj), tea.WithAltScreen()).Run()
	return err
}
