package style

import (
	"github.com/arthur-debert/dotaudit/pkg/types"
	"github.com/charmbracelet/lipgloss"
)

var (
	TitleStyle = lipgloss.NewStyle().Foreground(HeadingColor).Bold(true)
	PathStyle  = lipgloss.NewStyle().Foreground(PathColor).Italic(true)

	// MutedStyle is for secondary detail such as the xdg fallback in use
	MutedStyle = lipgloss.NewStyle().Foreground(MissingColor)

	ErrorStyle   = lipgloss.NewStyle().Foreground(ErrorColor).Bold(true)
	WarningStyle = lipgloss.NewStyle().Foreground(WarningColor).Bold(true)
)

var ruleStyles = map[types.Rule]lipgloss.Style{
	types.RuleSupported:   lipgloss.NewStyle().Foreground(SupportedColor).Bold(true),
	types.RuleUnsupported: lipgloss.NewStyle().Foreground(UnsupportedColor).Bold(true),
	types.RuleMissing:     lipgloss.NewStyle().Foreground(MissingColor).Bold(true),
}

// RuleStyle returns the style for a program name shown by rule.
// Unknown rules fall back to TitleStyle.
func RuleStyle(rule types.Rule) lipgloss.Style {
	if s, ok := ruleStyles[rule]; ok {
		return s
	}
	return TitleStyle
}
