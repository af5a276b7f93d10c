package ui

import (
	"github.com/Cyclone1070/edmv/internal/ui/models"
	"github.com/Cyclone1070/edmv/internal/ui/views"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// SpinnerFactory creates a new spinner
type SpinnerFactory func() spinner.Model

// gateModel implements tea.Model for the confirmation prompt.
type gateModel struct {
	state models.GateState
}

func newGateModel(prompt string, spinnerFactory SpinnerFactory) gateModel {
	return gateModel{
		state: models.GateState{
			Prompt:  prompt,
			Phase:   models.GateWaiting,
			Spinner: spinnerFactory(),
		},
	}
}

// Init starts the spinner
func (m gateModel) Init() tea.Cmd {
	return m.state.Spinner.Tick
}

// Update handles messages
func (m gateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.state.Width = msg.Width

	case spinner.TickMsg:
		if m.state.Phase != models.GateWaiting {
			return m, nil
		}
		var cmd tea.Cmd
		m.state.Spinner, cmd = m.state.Spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m gateModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.state.Phase != models.GateWaiting {
		return m, nil
	}
	switch msg.String() {
	case "enter":
		m.state.Phase = models.GateConfirmed
		return m, tea.Quit
	case "ctrl+c":
		m.state.Phase = models.GateAborted
		return m, tea.Quit
	}
	return m, nil
}

// View renders the prompt
func (m gateModel) View() string {
	return views.RenderPrompt(m.state)
}
