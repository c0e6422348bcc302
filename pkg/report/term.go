package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/dotaudit/pkg/style"
	"github.com/charmbracelet/glamour"
)

// TerminalReporter styles the header with lipgloss and renders help text
// as markdown with glamour. Fenced blocks are kept so glamour can
// highlight them. On non-terminals the header is left plain.
type TerminalReporter struct {
	w        io.Writer
	renderer *glamour.TermRenderer
}

// NewTerminal creates a terminal reporter. If glamour cannot be set up the
// help text is printed stripped, as in the text format.
func NewTerminal(w io.Writer) *TerminalReporter {
	r := &TerminalReporter{w: w}

	options := []glamour.TermRendererOption{glamour.WithWordWrap(100)}
	if style.ColorEnabled(w) {
		options = append(options, glamour.WithAutoStyle())
	} else {
		options = append(options, glamour.WithStandardStyle("notty"))
	}
	if renderer, err := glamour.NewTermRenderer(options...); err == nil {
		r.renderer = renderer
	}
	return r
}

// Emit writes a styled header followed by rendered help
func (r *TerminalReporter) Emit(e Entry) {
	name := style.Render(r.w, style.RuleStyle(e.Rule), "["+e.Line.Name+"]")
	path := style.Render(r.w, style.PathStyle, e.Line.Path)
	_, _ = fmt.Fprintf(r.w, "%s %s\n", name, path)
	_, _ = fmt.Fprintf(r.w, "%s\n", r.help(e.Line.Help))
}

func (r *TerminalReporter) help(text string) string {
	if r.renderer != nil {
		if rendered, err := r.renderer.Render(text); err == nil {
			return strings.TrimRight(rendered, "\n") + "\n"
		}
	}
	return "\n" + StripFences(text) + "\n"
}

// Close is a no-op
func (r *TerminalReporter) Close() error {
	return nil
}
