package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCrashesCmd(t *testing.T) {
	fs := useMemFs(t)

	out, _, err := executeCommand(t, "crashes")
	require.NoError(t, err)
	assert.Contains(t, out, "No crash logs")

	writeFile(t, fs, ".metaagent/crash_logs/crash_20260101_120000.000.json",
		`{"timestamp":"2026-01-01T12:00:00Z","version":"0.1.0","command":"metaagent generate","selection":"developer/finance","panic_value":"boom","stack_trace":"goroutine 1"}`)

	out, _, err = executeCommand(t, "crashes")
	require.NoError(t, err)
	assert.Contains(t, out, "crash_20260101_120000.000.json")

	out, _, err = executeCommand(t, "crashes", "latest")
	require.NoError(t, err)
	assert.Contains(t, out, "boom")
	assert.Contains(t, out, "metaagent generate")
}

func TestCreateCmd_NonInteractive(t *testing.T) {
	useMemFs(t)

	// go test never attaches a terminal to stdin and stdout.
	_, _, err := executeCommand(t, "create")
	assertCLICode(t, err, "not_available")
}
