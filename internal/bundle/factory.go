package bundle

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/shaharia-lab/reskin/internal/logger"
	"github.com/shaharia-lab/reskin/internal/resource"
	"github.com/shaharia-lab/reskin/internal/theme"
	"golang.org/x/sync/singleflight"
)

// ArchiveExtension is appended to the package name when a theme has no source path
const ArchiveExtension = ".pak"

var (
	// ErrNoSource is returned for a theme with neither a source path nor a package name
	ErrNoSource = errors.New("theme has no bundle source")

	// ErrPackageMismatch is returned when a bundle declares another package than its theme
	ErrPackageMismatch = errors.New("bundle package does not match theme")
)

// FactoryOption configures a Factory
type FactoryOption func(*Factory)

// WithDirectory sets where bundles named after their package are looked up
func WithDirectory(dir string) FactoryOption {
	return func(f *Factory) {
		f.dir = dir
	}
}

// WithLogger sets the factory logger
func WithLogger(l logger.Logger) FactoryOption {
	return func(f *Factory) {
		if l != nil {
			f.logger = l
		}
	}
}

type cacheEntry struct {
	path     string
	table    *Table
	loadedAt time.Time
}

// pendingLoad is a bundle read in progress. An invalidation while it runs
// marks it stale so its result is handed to the waiting callers but never cached.
type pendingLoad struct {
	theme string
	path  string
	stale bool
}

// Info describes a cached bundle
type Info struct {
	Theme    string
	Path     string
	Package  string
	Entries  int
	LoadedAt time.Time
}

// Factory opens bundle themes and keeps them cached by theme name until
// invalidated. Concurrent requests for the same theme share one load.
type Factory struct {
	dir    string
	logger logger.Logger
	load   func(path string) (*Table, error)

	group singleflight.Group

	mu      sync.RWMutex
	cache   map[string]cacheEntry
	pending map[string]*pendingLoad
}

var _ theme.ProviderFactory = (*Factory)(nil)

// NewFactory creates a Factory
func NewFactory(opts ...FactoryOption) *Factory {
	f := &Factory{
		logger: logger.Discard,
		load:   Load,
		cache:   make(map[string]cacheEntry),
		pending: make(map[string]*pendingLoad),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Path returns where the bundle of d is read from
func (f *Factory) Path(d *theme.Descriptor) (string, error) {
	if d.SourcePath() != "" {
		return d.SourcePath(), nil
	}
	if d.PackageName() == "" || f.dir == "" {
		return "", fmt.Errorf("%w: %s", ErrNoSource, d.Name())
	}
	return filepath.Join(f.dir, d.PackageName()+ArchiveExtension), nil
}

// CreateProvider returns the resources of d, loading its bundle on first use.
// An empty package name on d is filled in from the bundle manifest.
func (f *Factory) CreateProvider(ctx context.Context, host theme.Host, d *theme.Descriptor) (resource.Provider, error) {
	path, err := f.Path(d)
	if err != nil {
		return nil, err
	}
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}

	if t, ok := f.cached(d.Name(), path); ok {
		return f.bind(host, d, t)
	}

	key := d.Name() + "\x00" + path
	ch := f.group.DoChan(key, func() (interface{}, error) {
		load := &pendingLoad{theme: d.Name(), path: path}
		f.mu.Lock()
		f.pending[key] = load
		f.mu.Unlock()

		start := time.Now()
		t, err := f.load(path)

		f.mu.Lock()
		if f.pending[key] == load {
			delete(f.pending, key)
		}
		stale := load.stale
		if err == nil && !stale {
			f.cache[d.Name()] = cacheEntry{path: path, table: t, loadedAt: time.Now()}
		}
		f.mu.Unlock()

		if err != nil {
			f.logger.Warn("Failed to load bundle", map[string]interface{}{
				"theme":         d.Name(),
				"path":          path,
				logger.ErrorKey: err,
			})
			return nil, err
		}

		f.logger.Info("Bundle loaded", map[string]interface{}{
			"theme":    d.Name(),
			"path":     path,
			"package":  t.Package(),
			"entries":  t.Len(),
			"stale":    stale,
			"duration": time.Since(start),
		})
		return t, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return f.bind(host, d, res.Val.(*Table))
	}
}

func (f *Factory) bind(host theme.Host, d *theme.Descriptor, t *Table) (resource.Provider, error) {
	pkg := d.PackageName()
	switch {
	case pkg == "":
		d.SetPackageName(t.Package())
	case pkg != t.Package():
		return nil, fmt.Errorf("%w: theme %q expects %q, bundle declares %q", ErrPackageMismatch, d.Name(), pkg, t.Package())
	}

	if host != nil && host.PackageName() == t.Package() {
		f.logger.Warn("Bundle declares the host package name", map[string]interface{}{
			"theme":   d.Name(),
			"package": t.Package(),
		})
	}
	return t, nil
}

func (f *Factory) cached(name, path string) (*Table, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	e, ok := f.cache[name]
	if !ok || e.path != path {
		return nil, false
	}
	return e.table, true
}

// Cached reports whether the bundle of the theme called name is cached
func (f *Factory) Cached(name string) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	_, ok := f.cache[name]
	return ok
}

// Invalidate drops the cached bundle of the theme called name. A load of
// that theme still in progress is not cached when it completes.
func (f *Factory) Invalidate(name string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	_, ok := f.cache[name]
	delete(f.cache, name)
	for key, load := range f.pending {
		if load.theme == name {
			f.abandon(key, load)
			ok = true
		}
	}
	if ok {
		f.logger.Debug("Bundle cache entry invalidated", map[string]interface{}{"theme": name})
	}
	return ok
}

// InvalidatePath drops every cached or loading bundle read from path and
// returns the affected theme names
func (f *Factory) InvalidatePath(path string) []string {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	affected := map[string]bool{}
	for name, e := range f.cache {
		if e.path == path {
			delete(f.cache, name)
			affected[name] = true
		}
	}
	for key, load := range f.pending {
		if load.path == path {
			f.abandon(key, load)
			affected[load.theme] = true
		}
	}

	names := make([]string, 0, len(affected))
	for name := range affected {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Purge empties the cache and abandons loads in progress
func (f *Factory) Purge() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cache = make(map[string]cacheEntry)
	for key, load := range f.pending {
		f.abandon(key, load)
	}
}

// abandon marks a pending load stale and detaches it from its key so later
// requests start a fresh read. f.mu must be held.
func (f *Factory) abandon(key string, load *pendingLoad) {
	load.stale = true
	delete(f.pending, key)
	f.group.Forget(key)
}

// Snapshot describes the cached bundles sorted by theme name
func (f *Factory) Snapshot() []Info {
	f.mu.RLock()
	defer f.mu.RUnlock()

	out := make([]Info, 0, len(f.cache))
	for name, e := range f.cache {
		out = append(out, Info{
			Theme:    name,
			Path:     e.path,
			Package:  e.table.Package(),
			Entries:  e.table.Len(),
			LoadedAt: e.loadedAt,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Theme < out[j].Theme })
	return out
}
