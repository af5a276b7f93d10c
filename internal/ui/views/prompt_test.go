package views

import (
	"testing"

	"github.com/Cyclone1070/edmv/internal/ui/models"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/stretchr/testify/assert"
)

func createTestSpinner() spinner.Model {
	return spinner.New(spinner.WithSpinner(spinner.Dot))
}

func TestRenderPrompt_Waiting(t *testing.T) {
	state := models.GateState{
		Prompt:  "Press [ENTER] when done.",
		Phase:   models.GateWaiting,
		Spinner: createTestSpinner(),
	}

	result := RenderPrompt(state)

	assert.Contains(t, result, "Press [ENTER] when done.")
	assert.Contains(t, result, "ctrl+c")
}

func TestRenderPrompt_Confirmed(t *testing.T) {
	result := RenderPrompt(models.GateState{Prompt: "Press [ENTER]", Phase: models.GateConfirmed})

	assert.Contains(t, result, "✔")
	assert.Contains(t, result, "Press [ENTER]")
}

func TestRenderPrompt_Aborted(t *testing.T) {
	result := RenderPrompt(models.GateState{Prompt: "Press [ENTER]", Phase: models.GateAborted})

	assert.Contains(t, result, "Aborted")
	assert.NotContains(t, result, "Press [ENTER]")
}

func TestPromptWidth(t *testing.T) {
	assert.Equal(t, 0, promptWidth(0))
	assert.Equal(t, 77, promptWidth(80))
}
