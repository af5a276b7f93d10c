package views

import (
	"fmt"
	"strings"

	"github.com/Cyclone1070/edmv/internal/apply"
)

// RenderReport renders the rename summary with lipgloss styling.
func RenderReport(r *apply.Report) string {
	var lines []string
	for _, op := range r.Renamed {
		lines = append(lines, fmt.Sprintf("  %s → %s", ReportFromStyle.Render(op.From), ReportToStyle.Render(op.To)))
	}

	header := ReportHeaderStyle.Render(fmt.Sprintf("Renamed %d", len(r.Renamed)))
	counts := HintStyle.Render(fmt.Sprintf("unchanged %d · blank %d · untouched %d", r.Unchanged, r.Blank, r.Untouched))
	summary := header + "  " + counts
	if n := len(r.Errors); n > 0 {
		summary += "  " + ReportErrorStyle.Render(fmt.Sprintf("%d failed", n))
	}

	lines = append(lines, summary)
	return strings.Join(lines, "\n") + "\n"
}
