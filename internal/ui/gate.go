// Package ui holds the terminal front end: the confirmation prompt shown
// while the user edits and the rename report printed afterwards.
package ui

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/Cyclone1070/edmv/internal/session"
	"github.com/Cyclone1070/edmv/internal/ui/models"
	tea "github.com/charmbracelet/bubbletea"
)

// ConfirmGate waits for Enter with a Bubble Tea prompt. It needs a terminal
// on in; use session.LineGate otherwise.
type ConfirmGate struct {
	in             io.Reader
	out            io.Writer
	spinnerFactory SpinnerFactory
}

// NewConfirmGate creates a ConfirmGate reading keys from in and drawing to out.
func NewConfirmGate(in io.Reader, out io.Writer, spinnerFactory SpinnerFactory) *ConfirmGate {
	return &ConfirmGate{in: in, out: out, spinnerFactory: spinnerFactory}
}

// Wait implements session.Gate. Ctrl+C returns session.ErrAborted.
func (g *ConfirmGate) Wait(ctx context.Context) error {
	program := tea.NewProgram(
		newGateModel(session.Prompt, g.spinnerFactory),
		tea.WithInput(g.in),
		tea.WithOutput(g.out),
		tea.WithContext(ctx),
	)

	final, err := program.Run()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("confirmation prompt failed: %w", err)
	}

	m, ok := final.(gateModel)
	if !ok || m.state.Phase != models.GateConfirmed {
		return session.ErrAborted
	}
	return nil
}
