package watcher

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounceDelay is used when New is given a zero delay.
const DefaultDebounceDelay = 300 * time.Millisecond

// FileWatcher monitors files and directories and calls onChange with the
// paths that changed once no new change arrived for the debounce delay.
type FileWatcher struct {
	fs *fsnotify.Watcher

	// Configuration
	debounceDelay time.Duration
	ignorePaths   []string
	logger        *slog.Logger

	// What is watched. files holds single files, dirs whole directories.
	watchMu sync.RWMutex
	files   map[string]struct{}
	dirs    map[string]struct{}

	// Debouncing state
	timerMu      sync.Mutex
	timer        *time.Timer
	pendingPaths map[string]struct{}

	// Callback when changes are ready
	onChange func([]string)

	// Lifecycle
	done     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// Option configures a FileWatcher.
type Option func(*FileWatcher)

// WithIgnorePaths replaces the default ignore list. A path is ignored when
// one of its segments below the watched root equals an entry.
func WithIgnorePaths(paths ...string) Option {
	return func(w *FileWatcher) {
		w.ignorePaths = paths
	}
}

// WithLogger sets the logger for watch errors.
func WithLogger(l *slog.Logger) Option {
	return func(w *FileWatcher) {
		if l != nil {
			w.logger = l
		}
	}
}

// New creates a running watcher. Nothing is watched until Watch is called.
func New(debounceDelay time.Duration, onChange func([]string), opts ...Option) (*FileWatcher, error) {
	if debounceDelay <= 0 {
		debounceDelay = DefaultDebounceDelay
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	w := &FileWatcher{
		fs:            fsw,
		debounceDelay: debounceDelay,
		ignorePaths:   defaultIgnorePaths(),
		logger:        slog.New(slog.DiscardHandler),
		files:         make(map[string]struct{}),
		dirs:          make(map[string]struct{}),
		pendingPaths:  make(map[string]struct{}),
		onChange:      onChange,
		done:          make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}

	w.wg.Add(1)
	go w.loop()
	return w, nil
}

// Watch starts watching path. For a file the parent directory is watched,
// which survives editors that replace the file on save.
func (w *FileWatcher) Watch(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("failed to watch %s: %w", path, err)
	}

	dir := abs
	if !info.IsDir() {
		dir = filepath.Dir(abs)
	}
	if err := w.fs.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", path, err)
	}

	w.watchMu.Lock()
	if info.IsDir() {
		w.dirs[abs] = struct{}{}
	} else {
		w.files[abs] = struct{}{}
	}
	w.watchMu.Unlock()
	return nil
}

// Watched returns the watched files and directories, sorted.
func (w *FileWatcher) Watched() []string {
	w.watchMu.RLock()
	defer w.watchMu.RUnlock()

	out := make([]string, 0, len(w.files)+len(w.dirs))
	for p := range w.files {
		out = append(out, p)
	}
	for p := range w.dirs {
		out = append(out, p)
	}
	slices.Sort(out)
	return out
}

// FileChanged notifies the watcher of a file change.
// Multiple rapid calls are debounced into a single onChange callback.
func (w *FileWatcher) FileChanged(path string) {
	if w.shouldIgnore(path) {
		return
	}

	w.timerMu.Lock()
	defer w.timerMu.Unlock()

	select {
	case <-w.done:
		return
	default:
	}

	w.pendingPaths[path] = struct{}{}

	// Reset timer
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounceDelay, w.processPending)
}

// Stop shuts down the watcher. Pending changes are dropped.
func (w *FileWatcher) Stop() error {
	var err error
	w.stopOnce.Do(func() {
		w.timerMu.Lock()
		close(w.done)
		if w.timer != nil {
			w.timer.Stop()
		}
		w.pendingPaths = make(map[string]struct{})
		w.timerMu.Unlock()

		err = w.fs.Close()
		w.wg.Wait()
	})
	return err
}

func (w *FileWatcher) loop() {
	defer w.wg.Done()

	for {
		select {
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if w.relevant(event.Name) {
				w.FileChanged(event.Name)
			}

		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.logger.Warn("file watcher error", "error", err)

		case <-w.done:
			return
		}
	}
}

// relevant reports whether an event for path belongs to something Watch
// was asked for, as opposed to a sibling in a watched file's directory.
func (w *FileWatcher) relevant(path string) bool {
	abs, err := filepath.Abs(path)
	if err != nil {
		return false
	}

	w.watchMu.RLock()
	defer w.watchMu.RUnlock()
	if _, ok := w.files[abs]; ok {
		return true
	}
	_, ok := w.dirs[filepath.Dir(abs)]
	return ok
}

// processPending is called after debounce delay.
// It triggers the onChange callback with accumulated paths.
func (w *FileWatcher) processPending() {
	w.timerMu.Lock()

	paths := make([]string, 0, len(w.pendingPaths))
	for path := range w.pendingPaths {
		paths = append(paths, path)
	}
	slices.Sort(paths)

	w.pendingPaths = make(map[string]struct{})
	w.timer = nil

	w.timerMu.Unlock()

	// Trigger callback (outside lock)
	if len(paths) > 0 && w.onChange != nil {
		w.onChange(paths)
	}
}

// shouldIgnore checks if a path should be ignored.
// Filters out editor swap files and other noise.
func (w *FileWatcher) shouldIgnore(path string) bool {
	for _, seg := range w.segments(path) {
		if slices.Contains(w.ignorePaths, seg) {
			return true
		}
	}

	base := filepath.Base(path)

	// Ignore hidden files
	if strings.HasPrefix(base, ".") {
		return true
	}
	// Emacs lock and backup files
	if strings.HasPrefix(base, "#") || strings.HasSuffix(base, "~") {
		return true
	}

	switch filepath.Ext(base) {
	case ".log", ".tmp", ".swp", ".swo", ".swx", ".bak":
		return true
	}
	return false
}

// segments splits path into its directory segments below the deepest
// watched root containing it. Paths outside every root are split whole.
func (w *FileWatcher) segments(path string) []string {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = filepath.Clean(path)
	}

	rel := abs
	w.watchMu.RLock()
	root := ""
	for f := range w.files {
		root = deeper(root, filepath.Dir(f), abs)
	}
	for d := range w.dirs {
		root = deeper(root, d, abs)
	}
	w.watchMu.RUnlock()

	if root != "" {
		if r, err := filepath.Rel(root, abs); err == nil {
			rel = r
		}
	}
	return strings.FieldsFunc(filepath.ToSlash(rel), func(r rune) bool { return r == '/' })
}

// deeper returns candidate when it contains path and is longer than root.
func deeper(root, candidate, path string) string {
	if len(candidate) <= len(root) {
		return root
	}
	if path == candidate || strings.HasPrefix(path, candidate+string(filepath.Separator)) {
		return candidate
	}
	return root
}

// defaultIgnorePaths returns standard paths to ignore.
func defaultIgnorePaths() []string {
	return []string{
		".git",
		"node_modules",
		"vendor",
	}
}
