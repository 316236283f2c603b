package ui

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

type errMsg error

// doneMsg signals the action returned without error.
type doneMsg struct{}

type spinnerModel struct {
	spinner  spinner.Model
	quitting bool
	done     bool
	err      error
	message  string
	action   func() error
}

func initialSpinnerModel(msg string, action func() error) spinnerModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = SuccessStyle
	return spinnerModel{
		spinner: s,
		message: msg,
		action:  action,
	}
}

func (m spinnerModel) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		func() tea.Msg {
			if err := m.action(); err != nil {
				return errMsg(err)
			}
			return doneMsg{}
		},
	)
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "q" || msg.String() == "esc" || msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
	case errMsg:
		m.err = msg
		return m, tea.Quit
	case doneMsg:
		m.done = true
		return m, tea.Quit
	default:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m spinnerModel) View() string {
	if m.err != nil {
		return ErrorStyle.Render("✖") + " " + m.message + ": " + m.err.Error() + "\n"
	}
	if m.quitting || m.done {
		return ""
	}
	return fmt.Sprintf("%s %s...", m.spinner.View(), m.message)
}

// ErrInterrupted is returned when the user quits a spinner before the action finishes.
var ErrInterrupted = errors.New("interrupted")

// RunSpinner runs action while drawing a spinner on out.
// When out is not a terminal the action runs without animation.
func RunSpinner(out io.Writer, msg string, action func() error) error {
	if !StdoutIsTerminal() {
		return action()
	}

	p := tea.NewProgram(initialSpinnerModel(msg, action), tea.WithOutput(out))
	m, err := p.Run()
	if err != nil {
		return err
	}
	model, ok := m.(spinnerModel)
	if !ok {
		return nil
	}
	if model.err != nil {
		return model.err
	}
	if model.quitting && !model.done {
		return ErrInterrupted
	}
	return nil
}
