package knowledge

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/afero"
)

// watchDebounce collapses the burst of events editors emit on save.
const watchDebounce = 200 * time.Millisecond

// Watch reloads the overlay at path whenever it changes and passes the new
// base to onChange. The directory is watched rather than the file so that
// atomic rename-on-save is picked up. A reload that fails is logged and the
// previous base stays in effect. Watch blocks until ctx is cancelled.
func Watch(ctx context.Context, fs afero.Fs, path string, onChange func(*Base)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create fsnotify watcher: %w", err)
	}
	defer watcher.Close()

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", path, err)
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	timer := time.NewTimer(watchDebounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			timer.Reset(watchDebounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("knowledge watch error", "path", path, "error", err)

		case <-timer.C:
			base, err := Load(fs, path)
			if err != nil {
				slog.Warn("knowledge overlay reload failed", "path", path, "error", err)
				continue
			}
			slog.Debug("knowledge overlay reloaded", "path", path)
			onChange(base)

		case <-ctx.Done():
			return nil
		}
	}
}
