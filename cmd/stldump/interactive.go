package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/meshio/stl"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	indexStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	vectorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	detailStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

const pageSize = 15

type modelState int

const (
	stateBrowse modelState = iota
	stateJump
)

type interactiveModel struct {
	err      error
	model    *stl.Model
	filename string
	jump     textinput.Model
	selected int
	top      int
	state    modelState
}

func newInteractiveModel(filename string, m *stl.Model) *interactiveModel {
	ti := textinput.New()
	ti.Placeholder = "index"
	ti.Prompt = "Go to triangle: "
	ti.Width = 12
	ti.CharLimit = 10

	return &interactiveModel{
		filename: filename,
		model:    m,
		jump:     ti,
		state:    stateBrowse,
	}
}

func (m *interactiveModel) Init() tea.Cmd {
	return nil
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.state == stateJump {
		switch key.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			m.state = stateBrowse
			m.jump.Blur()
			return m, nil
		case "enter":
			m.applyJump()
			return m, nil
		}
		var cmd tea.Cmd
		m.jump, cmd = m.jump.Update(msg)
		return m, cmd
	}

	switch key.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "up", "k":
		m.moveTo(m.selected - 1)
	case "down", "j":
		m.moveTo(m.selected + 1)
	case "pgup":
		m.moveTo(m.selected - pageSize)
	case "pgdown", " ":
		m.moveTo(m.selected + pageSize)
	case "home":
		m.moveTo(0)
	case "end":
		m.moveTo(len(m.model.Triangles) - 1)
	case "g":
		m.state = stateJump
		m.err = nil
		m.jump.SetValue("")
		return m, m.jump.Focus()
	}
	return m, nil
}

func (m *interactiveModel) applyJump() {
	m.state = stateBrowse
	m.jump.Blur()

	n, err := strconv.Atoi(strings.TrimSpace(m.jump.Value()))
	if err != nil || n < 0 || n >= len(m.model.Triangles) {
		m.err = fmt.Errorf("no triangle %q (0-%d)", m.jump.Value(), len(m.model.Triangles)-1)
		return
	}
	m.err = nil
	m.moveTo(n)
}

// moveTo selects index i, clamped, and scrolls it into view.
func (m *interactiveModel) moveTo(i int) {
	n := len(m.model.Triangles)
	if n == 0 {
		return
	}
	m.selected = max(0, min(i, n-1))
	if m.selected < m.top {
		m.top = m.selected
	}
	if m.selected >= m.top+pageSize {
		m.top = m.selected - pageSize + 1
	}
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("STL Browser"))
	b.WriteString(" ")
	b.WriteString(m.filename)
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Header: %q\n", m.model.HeaderText())
	fmt.Fprintf(&b, "Triangles: %d (declared %d)\n\n", len(m.model.Triangles), m.model.DeclaredCount)

	if len(m.model.Triangles) == 0 {
		b.WriteString("No triangles.\n\n")
		b.WriteString(helpStyle.Render("q quit"))
		return b.String()
	}

	end := min(m.top+pageSize, len(m.model.Triangles))
	for i := m.top; i < end; i++ {
		t := m.model.Triangles[i]
		line := fmt.Sprintf("%6d  %v %v %v", i, t.P, t.Q, t.R)
		if i == m.selected {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.detail())
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteString("\n")
	}

	switch m.state {
	case stateJump:
		b.WriteString(m.jump.View())
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter go • esc cancel"))
	default:
		b.WriteString(helpStyle.Render("↑/↓ move • pgup/pgdown page • g go to • q quit"))
	}

	return b.String()
}

func (m *interactiveModel) detail() string {
	t := m.model.Triangles[m.selected]
	lines := []string{
		indexStyle.Render(fmt.Sprintf("Triangle %d", m.selected)),
		"P:      " + vectorStyle.Render(t.P.String()),
		"Q:      " + vectorStyle.Render(t.Q.String()),
		"R:      " + vectorStyle.Render(t.R.String()),
		"Normal: " + vectorStyle.Render(t.Normal().String()),
		fmt.Sprintf("Area:   %g", t.Area()),
	}
	return detailStyle.Render(strings.Join(lines, "\n"))
}

func runInteractive(filename string, m *stl.Model) error {
	p := tea.NewProgram(newInteractiveModel(filename, m), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
