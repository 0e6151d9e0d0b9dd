// Package watch rebuilds the service worker when its inputs change.
package watch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// DefaultDebounce coalesces bursts of editor writes into one rebuild.
const DefaultDebounce = 300 * time.Millisecond

// Config configures a Watcher.
type Config struct {
	// Paths lists manifest files, registry files or source directories.
	// Directories match any JSON or YAML file directly inside them.
	Paths []string

	Debounce time.Duration
	Logger   zerolog.Logger
}

// RebuildFunc regenerates outputs after a change. Errors are logged and
// watching continues.
type RebuildFunc func(ctx context.Context) error

// Watcher observes manifest inputs with fsnotify.
type Watcher struct {
	notify   *fsnotify.Watcher
	files    map[string]struct{}
	dirs     map[string]struct{}
	debounce time.Duration
	logger   zerolog.Logger
}

// New registers cfg.Paths with a new fsnotify watcher. Files are watched via
// their parent directory so atomic editor saves (rename over) are seen.
func New(cfg Config) (*Watcher, error) {
	if len(cfg.Paths) == 0 {
		return nil, errors.New("watch: at least one path is required")
	}

	notify, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch: create watcher: %w", err)
	}

	w := &Watcher{
		notify:   notify,
		files:    make(map[string]struct{}),
		dirs:     make(map[string]struct{}),
		debounce: cfg.Debounce,
		logger:   cfg.Logger,
	}
	if w.debounce <= 0 {
		w.debounce = DefaultDebounce
	}

	watched := make(map[string]struct{})
	for _, raw := range cfg.Paths {
		abs, err := filepath.Abs(raw)
		if err != nil {
			_ = notify.Close()
			return nil, fmt.Errorf("watch: resolve %s: %w", raw, err)
		}
		info, err := os.Stat(abs)
		if err != nil {
			_ = notify.Close()
			return nil, fmt.Errorf("watch: stat %s: %w", raw, err)
		}

		dir := abs
		if info.IsDir() {
			w.dirs[abs] = struct{}{}
		} else {
			w.files[abs] = struct{}{}
			dir = filepath.Dir(abs)
		}
		if _, ok := watched[dir]; ok {
			continue
		}
		if err := notify.Add(dir); err != nil {
			_ = notify.Close()
			return nil, fmt.Errorf("watch: add %s: %w", dir, err)
		}
		watched[dir] = struct{}{}
	}

	return w, nil
}

// Close releases the underlying watcher.
func (w *Watcher) Close() error {
	return w.notify.Close()
}

// Matches reports whether a change to path should trigger a rebuild.
func (w *Watcher) Matches(path string) bool {
	abs, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	if _, ok := w.files[abs]; ok {
		return true
	}
	if _, ok := w.dirs[filepath.Dir(abs)]; ok {
		return isManifestFile(abs)
	}
	return false
}

// Run blocks until ctx is cancelled, calling rebuild once per debounced burst
// of relevant changes. It closes the watcher on return.
func (w *Watcher) Run(ctx context.Context, rebuild RebuildFunc) error {
	if rebuild == nil {
		return errors.New("watch: rebuild function is required")
	}
	defer func() {
		_ = w.notify.Close()
	}()

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	stopTimer := func() {
		if timer != nil {
			timer.Stop()
		}
	}
	defer stopTimer()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.notify.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			if !w.Matches(event.Name) {
				continue
			}
			w.logger.Debug().Str("file", event.Name).Str("op", event.Op.String()).Msg("input changed")
			stopTimer()
			timer = time.NewTimer(w.debounce)
			fire = timer.C

		case err, ok := <-w.notify.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn().Err(err).Msg("watcher error")

		case <-fire:
			fire = nil
			if err := rebuild(ctx); err != nil {
				w.logger.Error().Err(err).Msg("rebuild failed")
			}
		}
	}
}

func isManifestFile(path string) bool {
	if strings.HasPrefix(filepath.Base(path), ".") {
		return false
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
