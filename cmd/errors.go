/*
Copyright © 2025 LMKidston
*/
package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/viper"

	"github.com/LMKidston/meta-agent1/types"
)

// PrintError prints an error message without exiting, allowing for recovery.
// If the --verbose flag is set, it prints the full technical error.
func PrintError(w io.Writer, userMsg string, technicalErr error) {
	if viper.GetBool("verbose") && technicalErr != nil {
		// In verbose mode, print the detailed, underlying technical error.
		fmt.Fprintf(w, "Error: %v\n", technicalErr)
	} else {
		// By default, print the clean, user-friendly message.
		fmt.Fprintln(w, userMsg)
	}
}

// LogError logs an error at debug level.
func LogError(msg string, err error) {
	if err != nil {
		slog.Debug(msg, "error", err)
		return
	}
	slog.Debug(msg)
}

// userMessage returns the message a CLIError carries, or the error text.
func userMessage(err error) string {
	var cliErr *types.CLIError
	if errors.As(err, &cliErr) {
		return "Error: " + cliErr.Message
	}
	return "Error: " + err.Error()
}
