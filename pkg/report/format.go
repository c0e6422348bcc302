package report

import (
	"fmt"
	"strings"
)

// Format represents the output format type
type Format int

const (
	// FormatText renders the canonical plain text report
	FormatText Format = iota
	// FormatTerminal renders styled headers and markdown help
	FormatTerminal
	// FormatJSON renders machine-readable JSON output
	FormatJSON
	// FormatYAML renders machine-readable YAML output
	FormatYAML
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatTerminal:
		return "term"
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// ParseFormat parses a string into a Format value
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "text", "plain", "":
		return FormatText, nil
	case "term", "terminal":
		return FormatTerminal, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return FormatText, fmt.Errorf("unknown format: %s", s)
	}
}

// Formats lists the canonical format names
func Formats() []string {
	return []string{"text", "term", "json", "yaml"}
}
