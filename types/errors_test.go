package types

import (
	"errors"
	"testing"
)

func TestCLIError(t *testing.T) {
	cause := errors.New("open answers.yaml: no such file")

	tests := []struct {
		name string
		err  *CLIError
		want string
	}{
		{"without cause", NewCLIError(CodeUsage, "missing --answers", nil), "usage: missing --answers"},
		{"with cause", NewCLIError(CodeNotFound, "answers file not found", cause), "not_found: answers file not found: open answers.yaml: no such file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCLIError_Unwrap(t *testing.T) {
	cause := errors.New("denied")
	var err error = NewCLIError(CodePolicyDenied, "policy denied", cause)

	if !errors.Is(err, cause) {
		t.Error("errors.Is should reach the wrapped cause")
	}

	var cliErr *CLIError
	if !errors.As(err, &cliErr) || cliErr.Code != CodePolicyDenied {
		t.Errorf("errors.As failed or wrong code: %+v", cliErr)
	}
}
