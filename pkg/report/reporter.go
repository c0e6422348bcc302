package report

import (
	"io"

	"github.com/arthur-debert/dotaudit/pkg/types"
)

// Entry is one accepted descriptor ready to print.
type Entry struct {
	Program string
	Line    types.Line
	Movable bool
	Probe   types.ExistenceProbeOutcome
	Rule    types.Rule
}

// Reporter prints accepted entries. Emit never fails: write errors are
// dropped. Close flushes formats that buffer.
type Reporter interface {
	Emit(e Entry)
	Close() error
}

// New creates a reporter for format writing to w.
func New(format Format, w io.Writer) Reporter {
	switch format {
	case FormatTerminal:
		return NewTerminal(w)
	case FormatJSON:
		return NewJSON(w)
	case FormatYAML:
		return NewYAML(w)
	default:
		return NewText(w)
	}
}

// record is the machine-readable shape of an entry.
type record struct {
	Program string `json:"program" yaml:"program"`
	Name    string `json:"name" yaml:"name"`
	Path    string `json:"path" yaml:"path"`
	Help    string `json:"help" yaml:"help"`
	Movable bool   `json:"movable" yaml:"movable"`
	Exists  bool   `json:"exists" yaml:"exists"`
	Rule    string `json:"rule" yaml:"rule"`
}

func toRecord(e Entry) record {
	return record{
		Program: e.Program,
		Name:    e.Line.Name,
		Path:    e.Line.Path,
		Help:    StripFences(e.Line.Help),
		Movable: e.Movable,
		Exists:  e.Probe.Present(),
		Rule:    string(e.Rule),
	}
}
