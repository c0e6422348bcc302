package types

// Rule identifies which row of the classification table accepted an entry.
type Rule string

const (
	// RuleNone means no row matched.
	RuleNone Rule = ""
	// RuleMissing: SkipOK is set and the path is absent.
	RuleMissing Rule = "missing"
	// RuleUnsupported: SkipUnsupported is unset, the entry is not movable
	// and the path exists.
	RuleUnsupported Rule = "unsupported"
	// RuleSupported: the path exists and the entry is movable.
	RuleSupported Rule = "supported"
)

// Line is the content of one report entry.
type Line struct {
	Name string
	Path string
	Help string
}

// Decision is either Show(Line) or Hide.
type Decision struct {
	// Rules lists every row that matched, in table order.
	Rules []Rule
	Line  Line
}

// Show reports whether the entry should be emitted.
func (d Decision) Show() bool {
	return len(d.Rules) > 0
}

// Rule returns the first matching row, or RuleNone for Hide.
func (d Decision) Rule() Rule {
	if len(d.Rules) == 0 {
		return RuleNone
	}
	return d.Rules[0]
}
