package prompt

import (
	"errors"
	"fmt"

	ti "github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrCancelled = errors.New("cancelled by user")

type textinput struct {
	textInput ti.Model
	err       error
	done      bool
	prompt    string
}

func newTextinput(prompt, placeholder, value string) textinput {
	ti := ti.New()
	ti.SetValue(value)
	ti.Placeholder = placeholder
	ti.Focus()
	ti.CharLimit = 3
	ti.Width = 5

	return textinput{
		textInput: ti,
		err:       nil,
		prompt:    prompt,
	}
}

func (m textinput) Init() tea.Cmd {
	return ti.Blink
}

func (m textinput) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			m.err = ErrCancelled
			fallthrough
		case tea.KeyEnter, tea.KeyEsc:
			m.done = true
			return m, tea.Quit
		}

	case error:
		m.err = msg
		return m, nil
	}

	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m textinput) View() string {
	if m.done {
		return ""
	}

	return fmt.Sprintf("%s %s\n", m.prompt, m.textInput.View())
}

// TextInput reads one short answer on the terminal
func TextInput(prompt, placeholder, value string) (string, error) {
	p := tea.NewProgram(newTextinput(prompt, placeholder, value))
	m, err := p.Run()
	if err != nil {
		return "", err
	}

	model, ok := m.(textinput)
	if !ok {
		return "", fmt.Errorf("unexpected prompt model %T", m)
	}

	return model.textInput.Value(), model.err
}
