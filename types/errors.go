/*
Copyright © 2025 LMKidston
*/
package types

import "fmt"

// Codes carried by CLIError.
const (
	CodeUsage        = "usage"
	CodeInvalidInput = "invalid_input"
	CodePolicyDenied = "policy_denied"
	CodeNotFound     = "not_found"
	CodeInternal     = "internal"
	CodeNotAvailable = "not_available"
)

// CLIError provides structured error information for command output
type CLIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new structured CLI error
func NewCLIError(code, message string, err error) *CLIError {
	return &CLIError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
