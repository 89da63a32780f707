package bundle

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/shaharia-lab/reskin/internal/logger"
)

// Invalidator drops cached bundles read from a path
type Invalidator interface {
	InvalidatePath(path string) []string
}

// Watcher invalidates cached bundles when their files change on disk.
// Archives are watched through their parent directory so that replacing
// the file is noticed; directory bundles are watched with all their
// subdirectories, including ones created later.
type Watcher struct {
	cache  Invalidator
	logger logger.Logger
	fsw    *fsnotify.Watcher

	// OnInvalidate, when set, receives the theme names dropped from the cache
	OnInvalidate func(names []string)

	mu      sync.Mutex
	bundles map[string]bool
	dirs    map[string]bool
}

// NewWatcher creates a watcher invalidating entries of cache
func NewWatcher(cache Invalidator, l logger.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	if l == nil {
		l = logger.Discard
	}
	return &Watcher{
		cache:   cache,
		logger:  l,
		fsw:     fsw,
		bundles: make(map[string]bool),
		dirs:    make(map[string]bool),
	}, nil
}

// Watch starts watching the bundle at path
func (w *Watcher) Watch(path string) error {
	path, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to watch bundle %s: %w", path, err)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if !info.IsDir() {
		if err := w.addDir(filepath.Dir(path)); err != nil {
			return err
		}
		w.bundles[path] = true
		return nil
	}

	if err := w.addTree(path); err != nil {
		return err
	}
	w.bundles[path] = true
	return nil
}

// addTree watches root and every directory below it. w.mu must be held.
func (w *Watcher) addTree(root string) error {
	return filepath.WalkDir(root, func(p string, entry fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("failed to watch %s: %w", p, err)
		}
		if !entry.IsDir() {
			return nil
		}
		return w.addDir(p)
	})
}

// addDir watches dir once. w.mu must be held.
func (w *Watcher) addDir(dir string) error {
	if w.dirs[dir] {
		return nil
	}
	if err := w.fsw.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	w.dirs[dir] = true
	return nil
}

// watchCreatedDir starts watching a directory created inside a directory bundle
func (w *Watcher) watchCreatedDir(bundle, name string) {
	if name == bundle {
		return
	}
	info, err := os.Stat(name)
	if err != nil || !info.IsDir() {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.addTree(name); err != nil {
		w.logger.Warn("Failed to watch new bundle directory", map[string]interface{}{
			"path":          name,
			logger.ErrorKey: err,
		})
	}
}

// bundleFor maps a changed file to the watched bundle it belongs to
func (w *Watcher) bundleFor(name string) (string, bool) {
	name = filepath.Clean(name)

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.bundles[name] {
		return name, true
	}
	for b := range w.bundles {
		if strings.HasPrefix(name, b+string(filepath.Separator)) {
			return b, true
		}
	}
	return "", false
}

// Run handles file events until ctx is done or the watcher is closed
func (w *Watcher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}
			bundle, ok := w.bundleFor(event.Name)
			if !ok {
				continue
			}
			if event.Has(fsnotify.Create) {
				w.watchCreatedDir(bundle, filepath.Clean(event.Name))
			}
			names := w.cache.InvalidatePath(bundle)
			if len(names) == 0 {
				continue
			}
			w.logger.Info("Bundle changed on disk", map[string]interface{}{
				"path":   bundle,
				"op":     event.Op.String(),
				"themes": names,
			})
			if w.OnInvalidate != nil {
				w.OnInvalidate(names)
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("File watcher error", map[string]interface{}{logger.ErrorKey: err})
		}
	}
}

// Close stops watching
func (w *Watcher) Close() error {
	return w.fsw.Close()
}
