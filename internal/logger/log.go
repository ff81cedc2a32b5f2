package logger

import (
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/log"
)

// Options configures the process-wide logger.
type Options struct {
	Verbose bool
	// JSON switches to machine-readable output.
	JSON bool
	// Output defaults to stderr.
	Output io.Writer
}

// Setup installs a charmbracelet/log handler as the slog default and returns
// the resulting logger.
func Setup(opts Options) *slog.Logger {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	level := log.WarnLevel
	if opts.Verbose {
		level = log.DebugLevel
	}

	handler := log.NewWithOptions(out, log.Options{
		Level:           level,
		Prefix:          "metaagent",
		ReportTimestamp: opts.Verbose,
	})
	if opts.JSON {
		handler.SetFormatter(log.JSONFormatter)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}
