// Package classify decides whether a resolved descriptor is reported.
//
// The decision table has three independent rows. An entry is shown when
// any row matches:
//
//	missing      SkipOK && !exists
//	unsupported  !SkipUnsupported && !movable && exists
//	supported    exists && movable
//
// The flag names are the command-line names. SkipOK enables the missing
// row; it does not hide anything.
package classify

import (
	"github.com/arthur-debert/dotaudit/pkg/types"
)

type row struct {
	rule  types.Rule
	match func(d types.Descriptor, exists bool, cfg types.FilterConfig) bool
}

var table = []row{
	{
		rule: types.RuleMissing,
		match: func(_ types.Descriptor, exists bool, cfg types.FilterConfig) bool {
			return cfg.SkipOK && !exists
		},
	},
	{
		rule: types.RuleUnsupported,
		match: func(d types.Descriptor, exists bool, cfg types.FilterConfig) bool {
			return !cfg.SkipUnsupported && !d.Movable && exists
		},
	},
	{
		rule: types.RuleSupported,
		match: func(d types.Descriptor, exists bool, _ types.FilterConfig) bool {
			return exists && d.Movable
		},
	},
}

// Decide evaluates every row of the table and returns Show with the
// matching rules, or Hide when none match.
func Decide(d types.Descriptor, resolved types.ResolvedPath, cfg types.FilterConfig) types.Decision {
	exists := resolved.Exists()

	var decision types.Decision
	for _, r := range table {
		if r.match(d, exists, cfg) {
			decision.Rules = append(decision.Rules, r.rule)
		}
	}
	if decision.Show() {
		decision.Line = types.Line{
			Name: d.Name,
			Path: resolved.ExpandedPath,
			Help: d.Help,
		}
	}
	return decision
}
