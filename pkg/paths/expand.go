package paths

import (
	"fmt"
	"os"
	"strings"

	"github.com/arthur-debert/dotaudit/pkg/errors"
)

// ExpandError reports a declared path that could not be expanded.
type ExpandError struct {
	Raw   string
	Cause error
}

func (e *ExpandError) Error() string {
	return fmt.Sprintf("%s: %v", e.Raw, e.Cause)
}

func (e *ExpandError) Unwrap() error {
	return e.Cause
}

// ErrorCode lets errors.IsErrorCode recognise expansion failures.
func (e *ExpandError) ErrorCode() errors.ErrorCode {
	return errors.ErrPathExpand
}

// UnsetVariableError is the cause of an ExpandError for a variable
// that is not set and has no default.
type UnsetVariableError struct {
	Name string
}

func (e *UnsetVariableError) Error() string {
	return fmt.Sprintf("error looking up environment variable %s: environment variable not found", e.Name)
}

// Expander substitutes environment variables and the home directory
// shorthand in declared paths.
type Expander struct {
	// LookupEnv defaults to os.LookupEnv.
	LookupEnv func(string) (string, bool)
	// HomeDir defaults to $HOME, then os.UserHomeDir.
	HomeDir func() (string, error)
}

// NewExpander returns an Expander bound to the process environment.
func NewExpander() *Expander {
	return &Expander{}
}

// Expand performs variable substitution first and then expands a leading
// ~ on the result.
func (x *Expander) Expand(raw string) (string, error) {
	expanded, err := x.expandVars(raw)
	if err != nil {
		return "", &ExpandError{Raw: raw, Cause: err}
	}
	return x.expandTilde(expanded), nil
}

func (x *Expander) lookup(name string) (string, bool) {
	if x.LookupEnv != nil {
		return x.LookupEnv(name)
	}
	return os.LookupEnv(name)
}

func (x *Expander) home() (string, error) {
	if x.HomeDir != nil {
		return x.HomeDir()
	}
	if home, ok := x.lookup("HOME"); ok && home != "" {
		return home, nil
	}
	return os.UserHomeDir()
}

func (x *Expander) expandVars(s string) (string, error) {
	if !strings.Contains(s, "$") {
		return s, nil
	}

	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		if s[i] != '$' || i+1 >= len(s) {
			b.WriteByte(s[i])
			continue
		}

		if s[i+1] == '{' {
			end := strings.IndexByte(s[i+2:], '}')
			if end < 0 {
				// unterminated brace, keep the rest verbatim
				b.WriteString(s[i:])
				return b.String(), nil
			}
			body := s[i+2 : i+2+end]
			value, err := x.expandBraced(body)
			if err != nil {
				return "", err
			}
			b.WriteString(value)
			i += 2 + end
			continue
		}

		n := nameLen(s[i+1:])
		if n == 0 {
			b.WriteByte('$')
			continue
		}
		name := s[i+1 : i+1+n]
		value, ok := x.lookup(name)
		if !ok {
			return "", &UnsetVariableError{Name: name}
		}
		b.WriteString(value)
		i += n
	}

	return b.String(), nil
}

// expandBraced handles the inside of ${...}.
func (x *Expander) expandBraced(body string) (string, error) {
	name, def, hasDefault := strings.Cut(body, ":-")
	if name == "" || nameLen(name) != len(name) {
		return "${" + body + "}", nil
	}

	value, ok := x.lookup(name)
	if ok && (value != "" || !hasDefault) {
		return value, nil
	}
	if hasDefault {
		return x.expandVars(def)
	}
	return "", &UnsetVariableError{Name: name}
}

func (x *Expander) expandTilde(s string) string {
	if s != "~" && !strings.HasPrefix(s, "~/") {
		return s
	}
	home, err := x.home()
	if err != nil || home == "" {
		return s
	}
	return home + s[1:]
}

func nameLen(s string) int {
	n := 0
	for n < len(s) {
		c := s[n]
		if c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') {
			n++
			continue
		}
		break
	}
	return n
}
