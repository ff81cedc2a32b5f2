package cmd

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/viper"

	"github.com/LMKidston/meta-agent1/types"
)

type testError struct {
	msg string
}

func (e *testError) Error() string {
	return e.msg
}

func TestPrintError(t *testing.T) {
	tests := []struct {
		name         string
		userMsg      string
		technicalErr error
		verbose      bool
		expectedOut  string
	}{
		{
			name:         "normal mode without error",
			userMsg:      "User friendly message",
			technicalErr: nil,
			verbose:      false,
			expectedOut:  "User friendly message",
		},
		{
			name:         "verbose mode with error",
			userMsg:      "User friendly message",
			technicalErr: &testError{msg: "technical details"},
			verbose:      true,
			expectedOut:  "Error: technical details",
		},
		{
			name:         "normal mode with technical error",
			userMsg:      "User friendly message",
			technicalErr: &testError{msg: "technical details"},
			verbose:      false,
			expectedOut:  "User friendly message",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Set("verbose", tt.verbose)
			defer viper.Set("verbose", false)

			var buf bytes.Buffer
			PrintError(&buf, tt.userMsg, tt.technicalErr)

			if !strings.Contains(buf.String(), tt.expectedOut) {
				t.Errorf("Expected output to contain %q, got %q", tt.expectedOut, buf.String())
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	cliErr := types.NewCLIError(types.CodePolicyDenied, "policy denied: no", errors.New("inner"))
	if got := userMessage(cliErr); got != "Error: policy denied: no" {
		t.Errorf("userMessage(CLIError) = %q", got)
	}
	if got := userMessage(errors.New("boom")); got != "Error: boom" {
		t.Errorf("userMessage(plain) = %q", got)
	}
}
