// Package watcher reloads the adpf config file when it changes on disk, so a
// running viewer picks up edits without a restart.
package watcher

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/vanderheijden86/adpf/pkg/config"
	"github.com/vanderheijden86/adpf/pkg/debug"
)

// DefaultPollInterval is how often the file is stat'ed in polling mode.
const DefaultPollInterval = 2 * time.Second

// EnvForcePoll forces stat polling instead of fsnotify when truthy, for
// filesystems that do not deliver inotify events.
const EnvForcePoll = "ADPF_FORCE_POLL"

var (
	// ErrFileRemoved accompanies the defaults when the config file is gone.
	ErrFileRemoved = errors.New("config file was removed")
	// ErrAlreadyStarted is returned by a second Start.
	ErrAlreadyStarted = errors.New("config watcher already started")
)

// ReloadFunc receives the freshly loaded config. err is non-nil when the
// file could not be read or failed validation; cfg then holds what could be
// salvaged, or the defaults.
type ReloadFunc func(cfg config.Config, err error)

// Option configures a ConfigWatcher.
type Option func(*ConfigWatcher)

// WithDebounce sets how long a burst of file events must settle before the
// config is reloaded.
func WithDebounce(d time.Duration) Option {
	return func(w *ConfigWatcher) { w.debounce = d }
}

// WithPollInterval sets the stat interval used in polling mode.
func WithPollInterval(d time.Duration) Option {
	return func(w *ConfigWatcher) {
		if d > 0 {
			w.pollEvery = d
		}
	}
}

// WithForcePoll skips fsnotify and polls.
func WithForcePoll(force bool) Option {
	return func(w *ConfigWatcher) { w.forcePoll = force }
}

// fileState is what polling compares between ticks.
type fileState struct {
	present bool
	mtime   time.Time
	size    int64
}

func (s fileState) differs(o fileState) bool {
	return s.present != o.present || s.size != o.size || !s.mtime.Equal(o.mtime)
}

func statFile(path string) fileState {
	info, err := os.Stat(path)
	if err != nil {
		return fileState{}
	}
	return fileState{present: true, mtime: info.ModTime(), size: info.Size()}
}

// ConfigWatcher watches one config file with fsnotify, falling back to
// polling, and calls a ReloadFunc once per settled change.
type ConfigWatcher struct {
	path      string
	onReload  ReloadFunc
	debounce  time.Duration
	pollEvery time.Duration
	forcePoll bool

	debouncer *Debouncer

	mu      sync.Mutex
	running bool
	polling bool
	last    fileState
	fsw     *fsnotify.Watcher
	cancel  context.CancelFunc
	loops   sync.WaitGroup
}

// New creates a watcher for the config file at path. It does nothing until
// Start.
func New(path string, onReload ReloadFunc, opts ...Option) (*ConfigWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	if onReload == nil {
		onReload = func(config.Config, error) {}
	}
	w := &ConfigWatcher{
		path:      abs,
		onReload:  onReload,
		debounce:  DefaultDebounceDuration,
		pollEvery: DefaultPollInterval,
	}
	for _, opt := range opts {
		opt(w)
	}
	w.debouncer = NewDebouncer(w.debounce)
	return w, nil
}

// Start begins watching. The file need not exist yet.
func (w *ConfigWatcher) Start() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running {
		return ErrAlreadyStarted
	}

	ctx, cancel := context.WithCancel(context.Background())
	w.cancel = cancel
	w.last = statFile(w.path)
	w.polling = w.forcePoll || envBool(EnvForcePoll)

	if !w.polling {
		fsw, err := w.newNotifier()
		if err != nil {
			debug.Log("fsnotify unavailable for %s: %v", w.path, err)
			w.polling = true
		} else {
			w.fsw = fsw
			w.loops.Add(1)
			go w.notifyLoop(ctx, fsw)
		}
	}
	if w.polling {
		w.loops.Add(1)
		go w.pollLoop(ctx)
	}

	debug.Log("watching %s (polling=%v)", w.path, w.polling)
	w.running = true
	return nil
}

// newNotifier watches the file's directory, since editors save by writing a
// new file and renaming it over the old one.
func (w *ConfigWatcher) newNotifier() (*fsnotify.Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(w.path)); err != nil {
		fsw.Close()
		return nil, err
	}
	return fsw, nil
}

// Stop ends watching and drops any pending reload. It is safe to call more
// than once.
func (w *ConfigWatcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	cancel, fsw := w.cancel, w.fsw
	w.cancel, w.fsw = nil, nil
	w.mu.Unlock()

	cancel()
	w.loops.Wait()
	if fsw != nil {
		fsw.Close()
	}
	w.debouncer.Cancel()
}

// Polling reports whether the watcher fell back to stat polling.
func (w *ConfigWatcher) Polling() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.polling
}

// Path returns the absolute path of the watched file.
func (w *ConfigWatcher) Path() string {
	return w.path
}

func (w *ConfigWatcher) notifyLoop(ctx context.Context, fsw *fsnotify.Watcher) {
	defer w.loops.Done()
	name := filepath.Base(w.path)

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-fsw.Events:
			if !ok {
				return
			}
			if filepath.Base(ev.Name) != name {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) != 0 {
				w.debouncer.Trigger(w.reload)
			}
		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			debug.Log("config watcher: %v", err)
		}
	}
}

func (w *ConfigWatcher) pollLoop(ctx context.Context) {
	defer w.loops.Done()
	ticker := time.NewTicker(w.pollEvery)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := statFile(w.path)
			w.mu.Lock()
			changed := cur.differs(w.last)
			w.last = cur
			w.mu.Unlock()
			debug.LogIf(changed, "config %s changed (present=%v)", w.path, cur.present)
			if changed {
				w.debouncer.Trigger(w.reload)
			}
		}
	}
}

// reload reads the file once a burst of events has settled. A missing file
// reports ErrFileRemoved together with the defaults.
func (w *ConfigWatcher) reload() {
	w.mu.Lock()
	running := w.running
	w.mu.Unlock()
	if !running {
		return
	}

	if _, err := os.Stat(w.path); errors.Is(err, fs.ErrNotExist) {
		cfg, _ := config.LoadFrom(w.path)
		debug.Log("config %s removed, using defaults", w.path)
		w.onReload(cfg, ErrFileRemoved)
		return
	}

	cfg, err := config.LoadFrom(w.path)
	if err != nil {
		debug.Log("config reload failed: %v", err)
	} else {
		debug.Log("config reloaded from %s", w.path)
	}
	w.onReload(cfg, err)
}

func envBool(name string) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(name))) {
	case "1", "true", "yes", "y", "on":
		return true
	}
	return false
}
