// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and code lookup

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/dotaudit/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "discovery_error",
			code:    errors.ErrDiscovery,
			message: "bad pattern",
			wantStr: "[DISCOVERY] bad pattern",
		},
		{
			name:    "invalid_input_error",
			code:    errors.ErrInvalidInput,
			message: "invalid configuration",
			wantStr: "[INVALID_INPUT] invalid configuration",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}
			if err.Details == nil {
				t.Error("New() details should be initialized")
			}
			if got := err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrConfigValid, "unknown format %q", "xml")
	if err.Message != `unknown format "xml"` {
		t.Errorf("Newf() message = %q", err.Message)
	}
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("unexpected end of JSON input")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrDocumentParse, "cannot parse programs/vim.json")

		if err.Code != errors.ErrDocumentParse {
			t.Errorf("Wrap() code = %v, want %v", err.Code, errors.ErrDocumentParse)
		}
		if err.Wrapped != baseErr {
			t.Error("Wrap() should preserve wrapped error")
		}

		wantStr := "[DOCUMENT_PARSE] cannot parse programs/vim.json: unexpected end of JSON input"
		if got := err.Error(); got != wantStr {
			t.Errorf("Error() = %q, want %q", got, wantStr)
		}
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		if err := errors.Wrap(nil, errors.ErrInternal, "internal error"); err != nil {
			t.Error("Wrap(nil) should return nil")
		}
		if err := errors.Wrapf(nil, errors.ErrInternal, "internal %s", "error"); err != nil {
			t.Error("Wrapf(nil) should return nil")
		}
	})
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrDocumentRead, "cannot read").
		WithDetail("path", "programs/git.json")

	if err.Details["path"] != "programs/git.json" {
		t.Errorf("WithDetail() path = %v", err.Details["path"])
	}
	if got := errors.GetErrorDetails(err)["path"]; got != "programs/git.json" {
		t.Errorf("GetErrorDetails() path = %v", got)
	}
	if errors.GetErrorDetails(stderrors.New("plain")) != nil {
		t.Error("GetErrorDetails() should be nil for plain errors")
	}
}

func TestIs(t *testing.T) {
	err1 := errors.New(errors.ErrDocumentParse, "error 1")
	err2 := errors.New(errors.ErrDocumentParse, "error 2")
	err3 := errors.New(errors.ErrDiscovery, "error 3")

	if !stderrors.Is(err1, err2) {
		t.Error("errors.Is() should match on code")
	}
	if err1.Is(err3) {
		t.Error("Is() should return false for different codes")
	}
}

type codedError struct{}

func (codedError) Error() string               { return "coded" }
func (codedError) ErrorCode() errors.ErrorCode { return errors.ErrPathExpand }

func TestIsErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     errors.ErrorCode
		expected bool
	}{
		{
			name:     "matching_code",
			err:      errors.New(errors.ErrDiscovery, "bad pattern"),
			code:     errors.ErrDiscovery,
			expected: true,
		},
		{
			name:     "different_code",
			err:      errors.New(errors.ErrDiscovery, "bad pattern"),
			code:     errors.ErrInternal,
			expected: false,
		},
		{
			name:     "wrapped_error",
			err:      errors.Wrap(stderrors.New("base"), errors.ErrDocumentRead, "denied"),
			code:     errors.ErrDocumentRead,
			expected: true,
		},
		{
			name:     "error_exposing_code",
			err:      codedError{},
			code:     errors.ErrPathExpand,
			expected: true,
		},
		{
			name:     "standard_error",
			err:      stderrors.New("standard error"),
			code:     errors.ErrDiscovery,
			expected: false,
		},
		{
			name:     "nil_error",
			err:      nil,
			code:     errors.ErrDiscovery,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.IsErrorCode(tt.err, tt.code); got != tt.expected {
				t.Errorf("IsErrorCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected errors.ErrorCode
	}{
		{"dotaudit_error", errors.New(errors.ErrConfigLoad, "x"), errors.ErrConfigLoad},
		{"coded_error", codedError{}, errors.ErrPathExpand},
		{"standard_error", stderrors.New("standard error"), errors.ErrUnknown},
		{"nil_error", nil, errors.ErrUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.GetErrorCode(tt.err); got != tt.expected {
				t.Errorf("GetErrorCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestErrorChaining(t *testing.T) {
	rootCause := stderrors.New("root cause")
	readErr := errors.Wrap(rootCause, errors.ErrDocumentRead, "cannot read file")
	runErr := errors.Wrap(readErr, errors.ErrInternal, "audit failed")

	if !errors.IsErrorCode(runErr, errors.ErrInternal) {
		t.Error("top level should have ErrInternal code")
	}
	var auditErr *errors.DotauditError
	if stderrors.As(runErr.Unwrap(), &auditErr) && auditErr.Code != errors.ErrDocumentRead {
		t.Error("middle error should have ErrDocumentRead code")
	}
	if !stderrors.Is(runErr, rootCause) {
		t.Error("should find root cause with errors.Is")
	}
}
