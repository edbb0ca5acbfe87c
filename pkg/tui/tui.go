// Package tui provides a terminal user interface for blheli2rtttl
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/james-see/blheli2rtttl/pkg/converter"
)

// BlueJay-inspired color scheme
var (
	jayBlue    = lipgloss.Color("#3B8EEA")
	skyCyan    = lipgloss.Color("#7FDBFF")
	silverGray = lipgloss.Color("#C0C0C0")
	darkGray   = lipgloss.Color("#333333")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(jayBlue).
			Background(darkGray).
			Padding(0, 2).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(silverGray).
			Width(8)

	focusedLabelStyle = lipgloss.NewStyle().
				Foreground(jayBlue).
				Bold(true).
				Width(8)

	trackStyle = lipgloss.NewStyle().
			Foreground(skyCyan)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666")).
			MarginTop(1)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(jayBlue).
			Padding(1, 2)
)

// State represents the current TUI state
type State int

const (
	StateForm State = iota
	StateResult
)

const (
	fieldName = iota
	fieldTempo
	firstVoiceField
)

// Model represents the TUI model
type Model struct {
	state   State
	conv    *converter.Converter
	inputs  []textinput.Model
	focus   int
	header  converter.Header
	results []converter.Result
	err     error
	width   int
}

// New creates a new TUI model for the converter's device
func New(conv *converter.Converter) Model {
	defaults := conv.GetDevice().Defaults()
	voices := conv.GetDevice().Voices()

	inputs := make([]textinput.Model, firstVoiceField+voices)
	for i := range inputs {
		ti := textinput.New()
		ti.Cursor.Style = lipgloss.NewStyle().Foreground(jayBlue)
		ti.CharLimit = 1024
		switch i {
		case fieldName:
			ti.Placeholder = defaults.Name
			ti.CharLimit = 32
		case fieldTempo:
			ti.Placeholder = strconv.Itoa(defaults.Tempo)
			ti.CharLimit = 4
		default:
			ti.Placeholder = "A#5 8 P8 G5 1/16"
		}
		inputs[i] = ti
	}
	inputs[fieldName].Focus()

	return Model{
		state:  StateForm,
		conv:   conv,
		inputs: inputs,
	}
}

// Init initializes the TUI model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles TUI updates
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		for i := range m.inputs {
			m.inputs[i].Width = max(msg.Width-20, 20)
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.state {
		case StateForm:
			return m.updateForm(msg)
		case StateResult:
			return m.updateResult(msg)
		}
	}

	return m, nil
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "down":
		return m.setFocus((m.focus + 1) % len(m.inputs))
	case "shift+tab", "up":
		return m.setFocus((m.focus - 1 + len(m.inputs)) % len(m.inputs))
	case "enter":
		m.convert()
		m.state = StateResult
		return m, nil
	case "esc":
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m Model) updateResult(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc":
		m.state = StateForm
		m.err = nil
		return m, nil
	case "q":
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) setFocus(i int) (tea.Model, tea.Cmd) {
	m.inputs[m.focus].Blur()
	m.focus = i
	return m, m.inputs[m.focus].Focus()
}

// convert builds the header and converts every non-empty voice field
func (m *Model) convert() {
	defaults := m.conv.GetDevice().Defaults()
	tempo := converter.ParseTempo(m.inputs[fieldTempo].Value(), defaults.Tempo)
	m.header = m.conv.Header(strings.TrimSpace(m.inputs[fieldName].Value()), tempo, -1, 0)

	// Voices are numbered by position, so stop at the first blank field
	var melodies []string
	for _, in := range m.inputs[firstVoiceField:] {
		if strings.TrimSpace(in.Value()) == "" {
			break
		}
		melodies = append(melodies, in.Value())
	}

	m.results, m.err = m.conv.ConvertVoices(m.header, melodies)
}

// View renders the TUI
func (m Model) View() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render(fmt.Sprintf(" BLHELI_32 → RTTTL · %s ", m.conv.GetDevice().Name())))
	s.WriteString("\n")

	switch m.state {
	case StateForm:
		s.WriteString(m.viewForm())
		s.WriteString(helpStyle.Render("tab/shift+tab: move • enter: convert • esc/ctrl+c: quit"))
	case StateResult:
		s.WriteString(m.viewResult())
		s.WriteString(helpStyle.Render("enter: edit again • q: quit"))
	}

	return s.String()
}

func (m Model) viewForm() string {
	var s strings.Builder

	for i, in := range m.inputs {
		label := m.fieldLabel(i)
		if i == m.focus {
			s.WriteString(focusedLabelStyle.Render(label))
		} else {
			s.WriteString(labelStyle.Render(label))
		}
		s.WriteString(in.View())
		s.WriteString("\n")
	}

	return boxStyle.Render(s.String())
}

func (m Model) fieldLabel(i int) string {
	switch i {
	case fieldName:
		return "Name"
	case fieldTempo:
		return "Tempo"
	default:
		return fmt.Sprintf("ESC%d", i-firstVoiceField+1)
	}
}

func (m Model) viewResult() string {
	var s strings.Builder

	if m.err != nil {
		s.WriteString(errorStyle.Render(fmt.Sprintf("✗ %s", m.err.Error())))
		return boxStyle.Render(s.String())
	}

	s.WriteString(fmt.Sprintf("Header: %s\n", m.header.String()))
	if len(m.results) == 0 {
		s.WriteString("\nNo melodies entered.")
	}
	for i, res := range m.results {
		s.WriteString(fmt.Sprintf("\nESC%d:\n", i+1))
		s.WriteString(trackStyle.Render(res.RTTTL))
		s.WriteString("\n")
		if invalid := res.InvalidSymbols(); len(invalid) > 0 {
			s.WriteString(errorStyle.Render("Invalid symbols: " + strings.Join(invalid, ", ")))
			s.WriteString("\n")
		}
	}

	return boxStyle.Render(s.String())
}

// Results returns the tracks from the last conversion
func (m Model) Results() []converter.Result {
	return m.results
}

// Run starts the TUI application
func Run(conv *converter.Converter) error {
	p := tea.NewProgram(New(conv), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
