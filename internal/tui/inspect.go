package tui

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/InstituteforDiseaseModeling/vis-tools/internal/spatial"
)

var (
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	green  = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
)

// InspectModel is a timestep scrubber over one decoded channel: a
// per-timestep mean graph plus node-level stats for the current frame.
type InspectModel struct {
	sb       *spatial.SpatialBinary
	timestep int
	playing  bool
	speed    int

	// mean value per timestep, computed once up front
	series []float64

	width  int
	height int
}

func NewInspect(sb *spatial.SpatialBinary) InspectModel {
	series := make([]float64, len(sb.Timesteps))
	for t, nodes := range sb.Timesteps {
		var sum float64
		for _, v := range nodes {
			sum += v
		}
		if len(nodes) > 0 {
			series[t] = sum / float64(len(nodes))
		}
	}
	return InspectModel{
		sb:     sb,
		speed:  1,
		series: series,
		width:  80,
		height: 24,
	}
}

func (m InspectModel) Init() tea.Cmd { return nil }

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m InspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		if !m.playing {
			return m, nil
		}
		m.timestep += m.speed
		if m.timestep >= len(m.sb.Timesteps)-1 {
			m.timestep = len(m.sb.Timesteps) - 1
			m.playing = false
			return m, nil
		}
		return m, tick()
	}
	return m, nil
}

func (m InspectModel) handleKey(msg tea.KeyMsg) (InspectModel, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "escape":
		return m, tea.Quit
	case "left", "h":
		m.playing = false
		if m.timestep > 0 {
			m.timestep--
		}
	case "right", "l":
		m.playing = false
		if m.timestep < len(m.sb.Timesteps)-1 {
			m.timestep++
		}
	case "home", "g":
		m.playing = false
		m.timestep = 0
	case "end", "G":
		m.playing = false
		m.timestep = len(m.sb.Timesteps) - 1
	case " ", "p":
		m.playing = !m.playing
		if m.playing {
			if m.timestep >= len(m.sb.Timesteps)-1 {
				m.timestep = 0
			}
			return m, tick()
		}
	case "+", "=":
		if m.speed < 16 {
			m.speed *= 2
		}
	case "-", "_":
		if m.speed > 1 {
			m.speed /= 2
		}
	}
	return m, nil
}

func (m InspectModel) View() string {
	var b strings.Builder

	b.WriteString(cyan.Render(m.sb.ChannelName))
	b.WriteString(dim.Render(fmt.Sprintf("  %d nodes, %d timesteps, range [%.4g, %.4g]",
		m.sb.NodeCount, len(m.sb.Timesteps), m.sb.ValueMin, m.sb.ValueMax)))
	b.WriteString("\n\n")

	if len(m.series) > 1 {
		graphWidth := m.width - 12
		if graphWidth < 20 {
			graphWidth = 20
		}
		b.WriteString(asciigraph.Plot(m.series,
			asciigraph.Height(10),
			asciigraph.Width(graphWidth),
			asciigraph.Caption("mean per timestep"),
		))
		b.WriteString("\n\n")
	}

	min, mean, max := m.frameStats()
	b.WriteString(white.Render(fmt.Sprintf("timestep %d/%d", m.timestep, len(m.sb.Timesteps)-1)))
	if m.playing {
		b.WriteString(yellow.Render(fmt.Sprintf("  playing x%d", m.speed)))
	}
	b.WriteString("\n")
	b.WriteString(green.Render(fmt.Sprintf("  min %.4g  mean %.4g  max %.4g", min, mean, max)))
	b.WriteString("\n")
	b.WriteString(m.frameRows())
	b.WriteString("\n")
	b.WriteString(dim.Render("←/→ step  g/G first/last  space play  +/- speed  q quit"))
	b.WriteString("\n")
	return b.String()
}

func (m InspectModel) frameStats() (min, mean, max float64) {
	nodes := m.sb.Timesteps[m.timestep]
	if len(nodes) == 0 {
		return 0, 0, 0
	}
	min, max = math.Inf(1), math.Inf(-1)
	var sum float64
	for _, v := range nodes {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
		sum += v
	}
	return min, sum / float64(len(nodes)), max
}

// frameRows lists the first few nodes of the current frame in id order.
func (m InspectModel) frameRows() string {
	nodes := m.sb.Timesteps[m.timestep]
	ids := make([]uint32, 0, len(nodes))
	for id := range nodes {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	const maxRows = 8
	var b strings.Builder
	for i, id := range ids {
		if i >= maxRows {
			b.WriteString(dim.Render(fmt.Sprintf("  ... %d more", len(ids)-maxRows)))
			b.WriteString("\n")
			break
		}
		b.WriteString(fmt.Sprintf("  node %-10d %.6g\n", id, nodes[id]))
	}
	return b.String()
}

// Run starts the inspector over a decoded channel and blocks until quit.
func Run(sb *spatial.SpatialBinary) error {
	if len(sb.Timesteps) == 0 {
		return fmt.Errorf("tui: channel %q has no timesteps", sb.ChannelName)
	}
	_, err := tea.NewProgram(NewInspect(sb), tea.WithAltScreen()).Run()
	return err
}
