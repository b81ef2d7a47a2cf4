package config

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce coalesces bursts of writes from editors
const DefaultDebounce = 500 * time.Millisecond

// Watcher monitors the configuration file and calls onReload with each
// successfully parsed new version. Invalid files are logged and ignored.
type Watcher struct {
	path     string
	watcher  *fsnotify.Watcher
	onReload func(*Config)
	debounce time.Duration

	stopOnce sync.Once
	stopChan chan struct{}
	done     chan struct{}
}

// NewWatcher creates a watcher for the config file at path
func NewWatcher(path string, debounce time.Duration, onReload func(*Config)) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("failed to resolve config path: %w", err)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	return &Watcher{
		path:     absPath,
		watcher:  fw,
		onReload: onReload,
		debounce: debounce,
		stopChan: make(chan struct{}),
		done:     make(chan struct{}),
	}, nil
}

// Start begins monitoring. The directory is watched rather than the file so
// editors that replace the file on save are still seen.
func (w *Watcher) Start(ctx context.Context) error {
	dir := filepath.Dir(w.path)
	if err := w.watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch config directory %s: %w", dir, err)
	}

	slog.Info("Starting configuration watcher", "config_path", w.path)
	go w.loop(ctx)
	return nil
}

// Stop ends monitoring and waits for the loop to exit
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.stopChan)
		if err := w.watcher.Close(); err != nil {
			slog.Error("Error closing file watcher", "error", err)
		}
	})
}

// Done is closed once the watch loop has exited
func (w *Watcher) Done() <-chan struct{} {
	return w.done
}

func (w *Watcher) loop(ctx context.Context) {
	defer close(w.done)

	configFile := filepath.Base(w.path)
	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			w.Stop()
			return
		case <-w.stopChan:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != configFile {
				continue
			}
			switch {
			case event.Op.Has(fsnotify.Write), event.Op.Has(fsnotify.Create), event.Op.Has(fsnotify.Rename):
				slog.Debug("Config file change detected", "file", event.Name, "op", event.Op.String())
				timer.Reset(w.debounce)
			case event.Op.Has(fsnotify.Remove):
				slog.Warn("Config file removed", "file", event.Name)
			}

		case <-timer.C:
			w.reload()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			slog.Error("Config watcher error", "error", err)
		}
	}
}

func (w *Watcher) reload() {
	slog.Info("Reloading configuration", "config_path", w.path)

	cfg, err := LoadFrom(w.path)
	if err != nil {
		slog.Error("Failed to reload configuration", "error", err)
		return
	}
	if w.onReload != nil {
		w.onReload(cfg)
	}
}
