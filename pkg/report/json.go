package report

import (
	"encoding/json"
	"io"
)

// JSONReporter collects entries and writes them as one JSON array on Close.
type JSONReporter struct {
	encoder *json.Encoder
	records []record
}

// NewJSON creates a JSON reporter
func NewJSON(w io.Writer) *JSONReporter {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return &JSONReporter{encoder: encoder, records: []record{}}
}

// Emit buffers e
func (r *JSONReporter) Emit(e Entry) {
	r.records = append(r.records, toRecord(e))
}

// Close writes the buffered entries
func (r *JSONReporter) Close() error {
	return r.encoder.Encode(r.records)
}
