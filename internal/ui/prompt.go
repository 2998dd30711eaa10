package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// promptModel is a one-line input panel. status is shared with the Terminal
// so notices raised while the prompt is open render inside it.
type promptModel struct {
	label    string
	input    textinput.Model
	onChange func(string)
	status   *string

	done     bool
	canceled bool
}

func newPromptModel(label, initial string, onChange func(string), status *string) promptModel {
	ti := textinput.New()
	ti.Prompt = ""
	ti.SetValue(initial)
	ti.CursorEnd()
	ti.Focus()
	return promptModel{label: label, input: ti, onChange: onChange, status: status}
}

func (m promptModel) Init() tea.Cmd { return textinput.Blink }

func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "enter":
			m.done = true
			return m, tea.Quit
		case "esc", "ctrl+c":
			m.canceled = true
			return m, tea.Quit
		}
	}
	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if v := m.input.Value(); v != before && m.onChange != nil {
		m.onChange(v)
	}
	return m, cmd
}

func (m promptModel) View() string {
	if m.done || m.canceled {
		return ""
	}
	s := labelStyle.Render(m.label) + m.input.View() + "\n"
	if m.status != nil && *m.status != "" {
		s += statusStyle.Render(*m.status) + "\n"
	}
	return s + hintStyle.Render("enter send • esc cancel") + "\n"
}

// confirmed is the value to use, or false when the prompt was dismissed.
func (m promptModel) confirmed() (string, bool) {
	return m.input.Value(), m.done && !m.canceled
}
