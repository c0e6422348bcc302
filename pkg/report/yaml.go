package report

import (
	"io"

	"gopkg.in/yaml.v3"
)

// YAMLReporter collects entries and writes them as one YAML sequence on Close.
type YAMLReporter struct {
	w       io.Writer
	records []record
}

// NewYAML creates a YAML reporter
func NewYAML(w io.Writer) *YAMLReporter {
	return &YAMLReporter{w: w, records: []record{}}
}

// Emit buffers e
func (r *YAMLReporter) Emit(e Entry) {
	r.records = append(r.records, toRecord(e))
}

// Close writes the buffered entries
func (r *YAMLReporter) Close() error {
	encoder := yaml.NewEncoder(r.w)
	encoder.SetIndent(2)
	if err := encoder.Encode(r.records); err != nil {
		return err
	}
	return encoder.Close()
}
