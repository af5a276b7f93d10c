package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/Cyclone1070/edmv/internal/apply"
	"github.com/Cyclone1070/edmv/internal/ui/services"
	"github.com/Cyclone1070/edmv/internal/ui/views"
)

// ReportFormat selects how a rename report is printed.
type ReportFormat int

const (
	// FormatPlain is for pipes and logs.
	FormatPlain ReportFormat = iota
	FormatStyled
	FormatMarkdown
)

// Reporter prints rename reports.
type Reporter struct {
	out      io.Writer
	format   ReportFormat
	renderer services.MarkdownRenderer
	width    int
}

// NewReporter creates a Reporter. renderer is only used by FormatMarkdown.
func NewReporter(out io.Writer, format ReportFormat, renderer services.MarkdownRenderer, width int) *Reporter {
	if format == FormatMarkdown && renderer == nil {
		format = FormatStyled
	}
	return &Reporter{out: out, format: format, renderer: renderer, width: width}
}

// Format returns the output format in use.
func (r *Reporter) Format() ReportFormat {
	return r.format
}

// Print writes the report. A markdown rendering failure falls back to the
// styled output.
func (r *Reporter) Print(report *apply.Report) error {
	var text string
	switch r.format {
	case FormatMarkdown:
		rendered, err := r.renderer.Render(services.ReportMarkdown(report), r.width)
		if err != nil {
			text = views.RenderReport(report)
			break
		}
		text = rendered
	case FormatStyled:
		text = views.RenderReport(report)
	default:
		text = plainReport(report)
	}
	_, err := io.WriteString(r.out, text)
	return err
}

func plainReport(r *apply.Report) string {
	var b strings.Builder
	for _, op := range r.Renamed {
		fmt.Fprintf(&b, "%s -> %s\n", op.From, op.To)
	}
	fmt.Fprintf(&b, "renamed %d, unchanged %d, blank %d, untouched %d, failed %d\n",
		len(r.Renamed), r.Unchanged, r.Blank, r.Untouched, len(r.Errors))
	return b.String()
}
