// Package report writes accepted entries to the output stream.
//
// The text format is the canonical one:
//
//	[<name>] <expanded path>
//
//	<help>
//
// followed by a blank line. Fenced code block markers are stripped from
// the help text before printing. The term, json and yaml formats carry the
// same entries for terminals and machines.
package report
