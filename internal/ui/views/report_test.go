package views

import (
	"errors"
	"testing"

	"github.com/Cyclone1070/edmv/internal/apply"
	"github.com/stretchr/testify/assert"
)

func TestRenderReport(t *testing.T) {
	report := &apply.Report{
		Renamed:   []apply.Operation{{Index: 0, From: "a.txt", To: "b.txt"}},
		Unchanged: 3,
		Blank:     1,
		Errors:    []error{errors.New("boom")},
	}

	result := RenderReport(report)

	assert.Contains(t, result, "a.txt")
	assert.Contains(t, result, "b.txt")
	assert.Contains(t, result, "Renamed 1")
	assert.Contains(t, result, "unchanged 3")
	assert.Contains(t, result, "1 failed")
}

func TestRenderReport_NoErrors(t *testing.T) {
	result := RenderReport(&apply.Report{})

	assert.Contains(t, result, "Renamed 0")
	assert.NotContains(t, result, "failed")
}
