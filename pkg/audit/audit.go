// Package audit runs the program documents against the local environment.
//
// A run discovers documents, loads all of them, then walks every entry in
// document and declaration order: resolve the path, classify it, and emit
// it when shown. Discovery and document loading are fail-fast; entry
// problems only affect that entry.
package audit

import (
	stderrors "errors"
	"fmt"
	"io"

	"github.com/arthur-debert/dotaudit/pkg/classify"
	"github.com/arthur-debert/dotaudit/pkg/documents"
	"github.com/arthur-debert/dotaudit/pkg/logging"
	"github.com/arthur-debert/dotaudit/pkg/paths"
	"github.com/arthur-debert/dotaudit/pkg/report"
	"github.com/arthur-debert/dotaudit/pkg/style"
	"github.com/arthur-debert/dotaudit/pkg/types"
)

// Options selects the documents and the filter for a run
type Options struct {
	ProgramsDir string
	Pattern     string
	Filter      types.FilterConfig
}

// Auditor wires the collaborators of a run
type Auditor struct {
	fs       types.FS
	resolver *paths.Resolver
	reporter report.Reporter
	diag     io.Writer
}

// New creates an auditor. Shown entries go to reporter; warnings and
// expansion failures go to diag.
func New(fsys types.FS, resolver *paths.Resolver, reporter report.Reporter, diag io.Writer) *Auditor {
	return &Auditor{
		fs:       fsys,
		resolver: resolver,
		reporter: reporter,
		diag:     diag,
	}
}

// Run audits every document and closes the reporter. The returned error
// is always a discovery, read or parse failure; in that case nothing has
// been emitted.
func (a *Auditor) Run(opts Options) (*types.Report, error) {
	logger := logging.GetLogger("audit")
	done := logging.LogOperationStart(logger, "audit")
	defer done()

	files, err := documents.Discover(a.fs, opts.ProgramsDir, opts.Pattern, a.diag)
	if err != nil {
		return nil, err
	}

	docs, err := documents.LoadAll(a.fs, files)
	if err != nil {
		return nil, err
	}

	result := &types.Report{Documents: len(docs)}
	for _, doc := range docs {
		for i, d := range doc.Entries {
			result.Add(a.process(doc.Program, i, d, opts.Filter))
		}
	}

	if err := a.reporter.Close(); err != nil {
		logger.Warn().Err(err).Msg("Failed to flush report")
	}

	logger.Info().
		Int("documents", result.Documents).
		Int("shown", result.Count(types.EntryShown)).
		Int("hidden", result.Count(types.EntryHidden)).
		Int("skipped", result.Count(types.EntrySkipped)).
		Int("failed", result.Count(types.EntryFailed)).
		Msg("Audit completed")

	return result, nil
}

func (a *Auditor) process(program string, index int, d *types.Descriptor, filter types.FilterConfig) types.EntryOutcome {
	outcome := types.EntryOutcome{Program: program, Index: index, Descriptor: d}

	if d == nil {
		outcome.Status = types.EntrySkipped
		return outcome
	}

	resolved, err := a.resolver.Resolve(d.RawPath)
	if err != nil {
		cause := err
		var expandErr *paths.ExpandError
		if stderrors.As(err, &expandErr) {
			cause = expandErr.Cause
		}
		_, _ = fmt.Fprintln(a.diag, style.Render(a.diag, style.ErrorStyle, fmt.Sprintf("Error expanding path %s: %v", d.RawPath, cause)))
		outcome.Status = types.EntryFailed
		outcome.Err = err
		return outcome
	}
	outcome.Resolved = &resolved

	decision := classify.Decide(*d, resolved, filter)
	logger := logging.GetLogger("audit")
	logger.Trace().
		Str("program", program).
		Str("name", d.Name).
		Str("path", resolved.ExpandedPath).
		Stringer("probe", resolved.Probe).
		Bool("movable", d.Movable).
		Str("rule", string(decision.Rule())).
		Msg("Classified entry")

	if !decision.Show() {
		outcome.Status = types.EntryHidden
		return outcome
	}

	for _, rule := range decision.Rules {
		a.reporter.Emit(report.Entry{
			Program: program,
			Line:    decision.Line,
			Movable: d.Movable,
			Probe:   resolved.Probe,
			Rule:    rule,
		})
	}
	outcome.Status = types.EntryShown
	outcome.Rule = decision.Rule()
	return outcome
}
