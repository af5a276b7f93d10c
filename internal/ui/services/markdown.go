package services

import (
	"fmt"
	"strings"

	"github.com/Cyclone1070/edmv/internal/apply"
	"github.com/charmbracelet/glamour"
)

// MarkdownRenderer renders markdown for terminal display.
type MarkdownRenderer interface {
	Render(content string, width int) (string, error)
}

// GlamourRenderer renders markdown with glamour.
type GlamourRenderer struct {
	// Style is a glamour standard style name; empty picks one from the terminal background.
	Style string
}

// Render implements MarkdownRenderer.
func (g *GlamourRenderer) Render(content string, width int) (string, error) {
	style := glamour.WithAutoStyle()
	if g.Style != "" {
		style = glamour.WithStandardStyle(g.Style)
	}
	r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(width))
	if err != nil {
		return "", fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	return r.Render(content)
}

// ReportMarkdown formats a rename report as a markdown document.
func ReportMarkdown(r *apply.Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## Renamed %d\n\n", len(r.Renamed))

	if len(r.Renamed) > 0 {
		b.WriteString("| Line | From | To |\n|---:|---|---|\n")
		for _, op := range r.Renamed {
			fmt.Fprintf(&b, "| %d | %s | %s |\n", op.Index+1, codeSpan(op.From), codeSpan(op.To))
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "**Unchanged:** %d · **Blank:** %d · **Untouched:** %d", r.Unchanged, r.Blank, r.Untouched)
	if n := len(r.Errors); n > 0 {
		fmt.Fprintf(&b, " · **Failed:** %d", n)
	}
	b.WriteString("\n")
	return b.String()
}

// codeSpan wraps a path so markdown syntax in file names stays literal.
// Pipes are escaped because the span sits in a table cell.
func codeSpan(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	if strings.Contains(s, "`") {
		return "`` " + s + " ``"
	}
	return "`" + s + "`"
}
