// Package environment checks the XDG base directory variables the
// program documents rely on.
package environment

import (
	"fmt"
	"io"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/dotaudit/pkg/style"
)

// Variable is an environment variable the user is expected to set.
type Variable struct {
	Name        string
	Recommended string
	// Fallback is the directory used while the variable is unset.
	Fallback func() string
}

// Advisory is emitted for each unset Variable.
type Advisory struct {
	Variable Variable
}

// Message returns the advisory text.
func (a Advisory) Message() string {
	return fmt.Sprintf("The $%s environment variable is not set!\n"+
		"make sure to add it to your shell's configuration before setting any of the other environment variables!\n"+
		"Recommended value: %s\n",
		a.Variable.Name, a.Variable.Recommended)
}

// XDGVariables lists the base directory variables in advisory order.
func XDGVariables() []Variable {
	return []Variable{
		{Name: "XDG_DATA_HOME", Recommended: "$HOME/.local/share", Fallback: func() string { return xdg.DataHome }},
		{Name: "XDG_CONFIG_HOME", Recommended: "$HOME/.config", Fallback: func() string { return xdg.ConfigHome }},
		{Name: "XDG_STATE_HOME", Recommended: "$HOME/.local/state", Fallback: func() string { return xdg.StateHome }},
		{Name: "XDG_CACHE_HOME", Recommended: "$HOME/.cache", Fallback: func() string { return xdg.CacheHome }},
		{Name: "XDG_RUNTIME_DIR", Recommended: "/run/user/$UID", Fallback: func() string { return xdg.RuntimeDir }},
	}
}

// Check returns an advisory for every variable lookup reports as unset.
// It has no side effects.
func Check(vars []Variable, lookup func(string) (string, bool)) []Advisory {
	var out []Advisory
	for _, v := range vars {
		if _, ok := lookup(v.Name); !ok {
			out = append(out, Advisory{Variable: v})
		}
	}
	return out
}

// Write prints advisories to w, one block per advisory separated by a
// blank line. When showFallback is set each block also names the
// directory currently used in its place.
func Write(w io.Writer, advisories []Advisory, showFallback bool) {
	for _, a := range advisories {
		_, _ = io.WriteString(w, a.Message())
		if showFallback && a.Variable.Fallback != nil {
			_, _ = fmt.Fprintln(w, style.Render(w, style.MutedStyle, "Currently using: "+a.Variable.Fallback()))
		}
		_, _ = io.WriteString(w, "\n")
	}
}
