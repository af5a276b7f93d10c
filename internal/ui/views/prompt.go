package views

import (
	"fmt"

	"github.com/Cyclone1070/edmv/internal/ui/models"
)

// RenderPrompt renders the confirmation prompt for the current phase.
func RenderPrompt(s models.GateState) string {
	switch s.Phase {
	case models.GateConfirmed:
		return PromptDoneStyle.Render("✔ "+s.Prompt) + "\n"
	case models.GateAborted:
		return PromptAbortStyle.Render("✘ Aborted, nothing was renamed.") + "\n"
	default:
		prompt := PromptWaitingStyle.Width(promptWidth(s.Width)).Render(s.Prompt)
		return fmt.Sprintf("%s %s\n%s\n", s.Spinner.View(), prompt, HintStyle.Render("ctrl+c: abort"))
	}
}

// promptWidth leaves room for the spinner; 0 means no wrapping.
func promptWidth(termWidth int) int {
	if termWidth <= 4 {
		return 0
	}
	return termWidth - 3
}
