// Package playback is a read-only step-through viewer for a solver trace.
//
// It consumes a completed little.Result and renders one StepRecord at a
// time: the working matrix, the node bound, and the decision description.
// The trace is the sole data channel — the viewer never re-invokes the
// engine and never mutates the records it was handed.
package playback

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/littletsp/littletsp/internal/instance"
	"github.com/littletsp/littletsp/little"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	kindStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	boundStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	descStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("245"))
	sentinelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	zeroStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	finalStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
)

// Model is the bubbletea model for trace playback.
type Model struct {
	trace  []little.StepRecord
	labels []string
	tour   []int
	cost   float64

	idx int // current step index in [0, len(trace)-1]

	keys     KeyMap
	help     help.Model
	showHelp bool
	width    int
	height   int
}

// New builds a playback model over a completed result.
func New(res little.Result) Model {
	return Model{
		trace:  res.Trace,
		labels: res.Labels,
		tour:   res.Tour,
		cost:   res.Cost,
		keys:   DefaultKeyMap(),
		help:   help.New(),
	}
}

// Step returns the index of the step currently shown.
func (m Model) Step() int { return m.idx }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			if m.idx < len(m.trace)-1 {
				m.idx++
			}
		case key.Matches(msg, m.keys.Prev):
			if m.idx > 0 {
				m.idx--
			}
		case key.Matches(msg, m.keys.First):
			m.idx = 0
		case key.Matches(msg, m.keys.Last):
			m.idx = len(m.trace) - 1
		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp
		}
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if len(m.trace) == 0 {
		return "empty trace\n"
	}

	rec := m.trace[m.idx]

	var b strings.Builder
	b.WriteString(titleStyle.Render("littletsp playback"))
	fmt.Fprintf(&b, "  step %d/%d  ", m.idx+1, len(m.trace))
	b.WriteString(kindStyle.Render(rec.Kind.String()))
	b.WriteString("\n")
	b.WriteString(boundStyle.Render(fmt.Sprintf("bound %g", rec.Bound)))
	b.WriteString("\n\n")
	b.WriteString(descStyle.Render(rec.Description))
	b.WriteString("\n")

	if rec.Matrix != nil {
		b.WriteString("\n")
		b.WriteString(m.renderMatrix(rec.Matrix))
	}

	if rec.Kind == little.StepFinal {
		b.WriteString("\n")
		b.WriteString(finalStyle.Render(fmt.Sprintf("tour %s  cost %g", m.renderTour(), m.cost)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.showHelp {
		b.WriteString(m.help.FullHelpView(m.keys.FullHelp()))
	} else {
		b.WriteString(m.help.ShortHelpView(m.keys.ShortHelp()))
	}
	b.WriteString("\n")

	return b.String()
}

// label returns the display label for city i, falling back to its index.
func (m Model) label(i int) string {
	if i >= 0 && i < len(m.labels) {
		return m.labels[i]
	}

	return fmt.Sprintf("%d", i)
}

// renderTour joins the closed tour with arrows, using display labels.
func (m Model) renderTour() string {
	parts := make([]string, 0, len(m.tour))
	for _, v := range m.tour {
		parts = append(parts, m.label(v))
	}

	return strings.Join(parts, "→")
}

// renderMatrix lays out a snapshot as an aligned grid with label headers.
func (m Model) renderMatrix(snap [][]float64) string {
	n := len(snap)

	// Compute a uniform cell width over headers and rendered values.
	width := 1
	for i := 0; i < n; i++ {
		if w := len(m.label(i)); w > width {
			width = w
		}
		for _, x := range snap[i] {
			if w := len(instance.RenderCell(x)); w > width {
				width = w
			}
		}
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(pad("", width)))
	for j := 0; j < n; j++ {
		b.WriteString(" ")
		b.WriteString(headerStyle.Render(pad(m.label(j), width)))
	}
	b.WriteString("\n")

	for i := 0; i < n; i++ {
		b.WriteString(headerStyle.Render(pad(m.label(i), width)))
		for j := 0; j < len(snap[i]); j++ {
			b.WriteString(" ")
			cell := instance.RenderCell(snap[i][j])
			switch {
			case cell == "M" || cell == "X":
				b.WriteString(sentinelStyle.Render(pad(cell, width)))
			case snap[i][j] == 0:
				b.WriteString(zeroStyle.Render(pad(cell, width)))
			default:
				b.WriteString(pad(cell, width))
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}

// pad right-aligns s in a fixed-width cell.
func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}

	return strings.Repeat(" ", width-len(s)) + s
}
