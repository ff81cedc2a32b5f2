// Package logger provides structured logging setup plus crash logging and
// recovery for metaagent.
package logger

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/spf13/afero"
)

const (
	// CrashLogDir is the directory for crash logs relative to the base path.
	CrashLogDir = "crash_logs"

	// MaxCrashLogs is the maximum number of crash logs to keep.
	MaxCrashLogs = 10

	defaultBasePath = ".metaagent"
)

// CrashContext stores context for crash logging.
type CrashContext struct {
	mu        sync.RWMutex
	fs        afero.Fs
	command   string
	version   string
	basePath  string
	selection string
	lastInput string
}

var globalContext = newCrashContext()

func newCrashContext() *CrashContext {
	return &CrashContext{fs: afero.NewOsFs()}
}

// SetFs replaces the filesystem crash logs are written to.
func SetFs(fs afero.Fs) {
	globalContext.mu.Lock()
	defer globalContext.mu.Unlock()
	globalContext.fs = fs
}

// SetBasePath sets the base path for crash logs (typically the .metaagent directory).
func SetBasePath(path string) {
	globalContext.mu.Lock()
	defer globalContext.mu.Unlock()
	globalContext.basePath = path
}

// SetVersion sets the application version for crash logs.
func SetVersion(version string) {
	globalContext.mu.Lock()
	defer globalContext.mu.Unlock()
	globalContext.version = version
}

// SetCommand sets the current command being executed.
func SetCommand(cmd string) {
	globalContext.mu.Lock()
	defer globalContext.mu.Unlock()
	globalContext.command = cmd
}

// SetSelection records the archetype/industry being worked on.
func SetSelection(agentType, industry string) {
	globalContext.mu.Lock()
	defer globalContext.mu.Unlock()
	globalContext.selection = agentType + "/" + industry
}

// SetLastInput sets the last user input for crash context.
func SetLastInput(input string) {
	globalContext.mu.Lock()
	defer globalContext.mu.Unlock()
	globalContext.lastInput = truncateForLog(strings.TrimSpace(input), 500)
}

func truncateForLog(value string, maxLen int) string {
	if len(value) <= maxLen {
		return value
	}
	return value[:maxLen] + "... [truncated]"
}

// CrashLog represents a crash log entry.
type CrashLog struct {
	Timestamp  time.Time `json:"timestamp"`
	Version    string    `json:"version"`
	Command    string    `json:"command"`
	Selection  string    `json:"selection,omitempty"`
	PanicValue string    `json:"panic_value"`
	StackTrace string    `json:"stack_trace"`
	LastInput  string    `json:"last_input,omitempty"`
	GoVersion  string    `json:"go_version"`
	OS         string    `json:"os"`
	Arch       string    `json:"arch"`
}

// HandlePanic is a deferred function that recovers from panics and logs them.
// Usage: defer logger.HandlePanic()
func HandlePanic() {
	if r := recover(); r != nil {
		crash := createCrashLog(r)
		path, err := writeCrashLog(crash)
		if err != nil {
			fmt.Fprintf(os.Stderr, "\n[CRASH] Failed to write crash log: %v\n", err)
			fmt.Fprintf(os.Stderr, "[CRASH] Panic: %v\n%s\n", r, crash.StackTrace)
			os.Exit(1)
		}

		fmt.Fprintf(os.Stderr, "\nmetaagent encountered an unexpected error.\n")
		fmt.Fprintf(os.Stderr, "A crash log has been saved to:\n  %s\n\n", path)
		os.Exit(1)
	}
}

// createCrashLog creates a CrashLog from a panic value.
func createCrashLog(panicValue any) CrashLog {
	globalContext.mu.RLock()
	defer globalContext.mu.RUnlock()

	return CrashLog{
		Timestamp:  time.Now(),
		Version:    globalContext.version,
		Command:    globalContext.command,
		Selection:  globalContext.selection,
		PanicValue: fmt.Sprintf("%v", panicValue),
		StackTrace: string(debug.Stack()),
		LastInput:  globalContext.lastInput,
		GoVersion:  runtime.Version(),
		OS:         runtime.GOOS,
		Arch:       runtime.GOARCH,
	}
}

// writeCrashLog writes a crash log as JSON and returns its path.
func writeCrashLog(crash CrashLog) (string, error) {
	fs := crashFs()
	dir := getCrashLogDir()

	if err := fs.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create crash log dir: %w", err)
	}

	if err := cleanOldCrashLogs(fs, dir, MaxCrashLogs-1); err != nil {
		fmt.Fprintf(os.Stderr, "[WARN] Failed to clean old crash logs: %v\n", err)
	}

	content, err := json.MarshalIndent(crash, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode crash log: %w", err)
	}

	path := getCrashLogPath(crash.Timestamp)
	if err := afero.WriteFile(fs, path, content, 0644); err != nil {
		return "", fmt.Errorf("write crash log: %w", err)
	}
	return path, nil
}

func crashFs() afero.Fs {
	globalContext.mu.RLock()
	defer globalContext.mu.RUnlock()
	return globalContext.fs
}

// getCrashLogDir returns the directory for crash logs.
func getCrashLogDir() string {
	globalContext.mu.RLock()
	basePath := globalContext.basePath
	globalContext.mu.RUnlock()

	if basePath == "" {
		basePath = defaultBasePath
	}
	return filepath.Join(basePath, CrashLogDir)
}

// getCrashLogPath returns the path for a crash log file.
func getCrashLogPath(t time.Time) string {
	filename := fmt.Sprintf("crash_%s.json", t.Format("20060102_150405.000"))
	return filepath.Join(getCrashLogDir(), filename)
}

// cleanOldCrashLogs removes the oldest crash logs so that at most keep remain.
func cleanOldCrashLogs(fs afero.Fs, dir string, keep int) error {
	logs, err := listCrashLogs(fs, dir)
	if err != nil || len(logs) <= keep {
		return err
	}
	for _, path := range logs[:len(logs)-keep] {
		if err := fs.Remove(path); err != nil {
			return fmt.Errorf("remove old crash log %s: %w", filepath.Base(path), err)
		}
	}
	return nil
}

func listCrashLogs(fs afero.Fs, dir string) ([]string, error) {
	entries, err := afero.ReadDir(fs, dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var logs []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasPrefix(e.Name(), "crash_") && strings.HasSuffix(e.Name(), ".json") {
			logs = append(logs, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(logs)
	return logs, nil
}

// ListCrashLogs returns the crash logs in the crash log directory, oldest first.
func ListCrashLogs() ([]string, error) {
	return listCrashLogs(crashFs(), getCrashLogDir())
}

// ReadCrashLog reads and decodes a crash log file.
func ReadCrashLog(path string) (CrashLog, error) {
	var crash CrashLog
	content, err := afero.ReadFile(crashFs(), path)
	if err != nil {
		return crash, err
	}
	if err := json.Unmarshal(content, &crash); err != nil {
		return crash, fmt.Errorf("decode crash log %s: %w", path, err)
	}
	return crash, nil
}
