package report

import (
	"fmt"
	"io"
)

// TextReporter writes the canonical text format.
type TextReporter struct {
	w io.Writer
}

// NewText creates a text reporter
func NewText(w io.Writer) *TextReporter {
	return &TextReporter{w: w}
}

// Emit writes "[name] path\n\nhelp\n\n".
func (r *TextReporter) Emit(e Entry) {
	_, _ = fmt.Fprintf(r.w, "[%s] %s\n\n%s\n\n", e.Line.Name, e.Line.Path, StripFences(e.Line.Help))
}

// Close is a no-op
func (r *TextReporter) Close() error {
	return nil
}
