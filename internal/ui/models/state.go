package models

import "github.com/charmbracelet/bubbles/spinner"

// GatePhase is the lifecycle of the confirmation prompt.
type GatePhase string

const (
	GateWaiting   GatePhase = "waiting"
	GateConfirmed GatePhase = "confirmed"
	GateAborted   GatePhase = "aborted"
)

// GateState holds everything the confirmation prompt renders.
type GateState struct {
	Prompt  string
	Phase   GatePhase
	Spinner spinner.Model
	Width   int
}
