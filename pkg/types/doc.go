// Package types defines the core data model shared by the auditor:
// descriptors and the program documents they come from, resolved paths,
// the filter switches, classification decisions, and the per-run report.
package types
