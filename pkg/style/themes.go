package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette. Each color adapts to light and dark terminal backgrounds.
var (
	// Rule colors: the row of the decision table that showed an entry
	SupportedColor   = lipgloss.AdaptiveColor{Light: "#28A745", Dark: "#4CDD76"}
	UnsupportedColor = lipgloss.AdaptiveColor{Light: "#B8860B", Dark: "#FFD54F"}
	MissingColor     = lipgloss.AdaptiveColor{Light: "#6C757D", Dark: "#ADB5BD"}

	PathColor    = lipgloss.AdaptiveColor{Light: "#495057", Dark: "#A0A8B0"}
	HeadingColor = lipgloss.AdaptiveColor{Light: "#212529", Dark: "#F8F9FA"}

	// Diagnostics on stderr
	ErrorColor   = lipgloss.AdaptiveColor{Light: "#DC3545", Dark: "#FF6B7D"}
	WarningColor = lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#FFC107"}
)
