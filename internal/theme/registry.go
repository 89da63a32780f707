package theme

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/shaharia-lab/reskin/internal/logger"
	"github.com/shaharia-lab/reskin/internal/resource"
)

// Option configures a Registry during Init
type Option func(*options)

type options struct {
	mode    Mode
	factory ProviderFactory
	logger  logger.Logger
}

// WithMode sets the switching mode
func WithMode(mode Mode) Option {
	return func(o *options) {
		o.mode = mode
	}
}

// WithFactory sets the factory used to open bundle themes in MultiNamespace mode
func WithFactory(f ProviderFactory) Option {
	return func(o *options) {
		o.factory = f
	}
}

// WithLogger sets the registry logger
func WithLogger(l logger.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// Registry tracks the known themes, the active theme and the resolver bound to it.
//
// Activations are serialized. Listeners run on the activating goroutine after
// the new theme is visible through CurrentTheme and CurrentResolver; they may
// call any read accessor but must not call Activate (use ActivateAsync).
type Registry struct {
	activateMu sync.Mutex

	mu              sync.RWMutex
	initialized     bool
	host            Host
	mode            Mode
	factory         ProviderFactory
	logger          logger.Logger
	themes          map[string]*Descriptor
	listeners       map[Handle]Listener
	defaultTheme    *Descriptor
	currentTheme    *Descriptor
	defaultResolver Reader
	currentResolver Resolver
	baseProvider    resource.Provider
}

// NewRegistry creates an uninitialized registry
func NewRegistry() *Registry {
	return &Registry{
		logger:    logger.Discard,
		themes:    make(map[string]*Descriptor),
		listeners: make(map[Handle]Listener),
	}
}

// Init binds the registry to host. It synthesizes and activates the default
// theme from the host's package and builds the resolvers for the mode.
func (r *Registry) Init(host Host, opts ...Option) error {
	if host == nil || host.Provider() == nil {
		return fmt.Errorf("host with a resource provider is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.initialized {
		return ErrAlreadyInitialized
	}

	o := options{mode: r.mode, factory: r.factory, logger: r.logger}
	for _, opt := range opts {
		opt(&o)
	}
	if o.mode != SingleNamespace && o.mode != MultiNamespace {
		return fmt.Errorf("unsupported theme mode: %d", o.mode)
	}
	r.mode, r.factory, r.logger = o.mode, o.factory, o.logger

	defaultTheme := NewVariantDescriptor(DefaultName, "", host.PackageName())
	if existing, ok := r.themes[DefaultName]; ok {
		r.logger.Warn("Replacing theme registered under the default name", map[string]interface{}{
			"theme": existing.String(),
		})
	}
	r.themes[DefaultName] = defaultTheme

	r.host = host
	r.defaultTheme = defaultTheme
	r.currentTheme = defaultTheme
	r.baseProvider = host.Provider()
	r.defaultResolver = readOnly{NewDirectResolver(r.baseProvider, defaultTheme)}
	if r.mode == MultiNamespace {
		r.currentResolver = NewMultiResolver(r.baseProvider, defaultTheme)
	} else {
		r.currentResolver = NewDirectResolver(r.baseProvider, defaultTheme)
	}
	r.initialized = true

	r.logger.Info("Theme registry initialized", map[string]interface{}{
		"package": host.PackageName(),
		"mode":    r.mode.String(),
	})
	return nil
}

// Initialized reports whether Init succeeded
func (r *Registry) Initialized() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.initialized
}

// Mode returns the switching mode
func (r *Registry) Mode() Mode {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.mode
}

// CurrentTheme returns the active theme
func (r *Registry) CurrentTheme() *Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.currentTheme
}

// DefaultTheme returns the theme synthesized by Init
func (r *Registry) DefaultTheme() *Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.defaultTheme
}

// CurrentResolver returns the resolver bound to the active theme
func (r *Registry) CurrentResolver() Resolver {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.currentResolver
}

// DefaultResolver returns the resolver bound to the default theme. It cannot be rebound.
func (r *Registry) DefaultResolver() Reader {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.defaultResolver
}

// BaseProvider returns the host's original provider
func (r *Registry) BaseProvider() resource.Provider {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.baseProvider
}

// IsDefault reports whether the active theme is the default theme
func (r *Registry) IsDefault() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.currentTheme != nil && r.currentTheme.Equal(r.defaultTheme)
}

// IsDefaultTheme reports whether d is the default theme
func (r *Registry) IsDefaultTheme(d *Descriptor) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.defaultTheme != nil && r.defaultTheme.Equal(d)
}

// IsCurrentTheme reports whether d is the active theme
func (r *Registry) IsCurrentTheme(d *Descriptor) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.currentTheme != nil && r.currentTheme.Equal(d)
}

// Register adds d unless a theme with the same name is known already.
// It reports whether d was added.
func (r *Registry) Register(d *Descriptor) bool {
	if d == nil {
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.themes[d.Name()]; exists {
		r.logger.Debug("Theme already registered, keeping the first registration", map[string]interface{}{
			"theme": d.Name(),
		})
		return false
	}

	r.themes[d.Name()] = d
	r.logger.Debug("Theme registered", map[string]interface{}{
		"theme":  d.Name(),
		"source": d.SourcePath(),
		"suffix": d.Suffix(),
	})
	return true
}

// Lookup returns the registered theme called name
func (r *Registry) Lookup(name string) (*Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.themes[name]
	return d, ok
}

// Themes returns the registered themes sorted by name
func (r *Registry) Themes() []*Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Descriptor, 0, len(r.themes))
	for _, d := range r.themes {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name() < out[j].Name()
	})
	return out
}

// Activate makes the theme called name active and notifies the listeners.
// Activating the active theme is a no-op. Unknown names return ErrUnknownTheme
// and failed bundle loads return *ProviderLoadError; in both cases nothing changes.
func (r *Registry) Activate(ctx context.Context, name string) error {
	r.activateMu.Lock()
	defer r.activateMu.Unlock()

	r.mu.RLock()
	initialized := r.initialized
	target, known := r.themes[name]
	current := r.currentTheme
	r.mu.RUnlock()

	if !initialized {
		return ErrNotInitialized
	}
	if !known {
		r.logger.Warn("Ignoring activation of unknown theme", map[string]interface{}{"theme": name})
		return fmt.Errorf("%w: %q", ErrUnknownTheme, name)
	}
	if target.Equal(current) {
		return nil
	}

	provider, err := r.providerFor(ctx, target)
	if err != nil {
		r.logger.Error("Theme activation aborted", map[string]interface{}{
			"theme": name,
			"error": err.Error(),
		})
		return err
	}

	r.mu.Lock()
	r.currentResolver.Rebind(provider, target)
	previous := r.currentTheme
	r.currentTheme = target
	listeners := make([]Listener, 0, len(r.listeners))
	for _, l := range r.listeners {
		listeners = append(listeners, l)
	}
	r.mu.Unlock()

	r.logger.Info("Theme activated", map[string]interface{}{
		"from":      previous.Name(),
		"to":        target.Name(),
		"listeners": len(listeners),
	})

	for _, l := range listeners {
		l.OnThemeChanged(previous, target)
	}
	return nil
}

// providerFor returns the provider the current resolver must bind to for target
func (r *Registry) providerFor(ctx context.Context, target *Descriptor) (resource.Provider, error) {
	r.mu.RLock()
	mode := r.mode
	base := r.baseProvider
	isDefault := r.defaultTheme.Equal(target)
	factory := r.factory
	host := r.host
	r.mu.RUnlock()

	if mode == SingleNamespace || isDefault {
		return base, nil
	}

	if factory == nil {
		return nil, &ProviderLoadError{Theme: target.Name(), Err: ErrNoFactory}
	}

	p, err := factory.CreateProvider(ctx, host, target)
	if err != nil {
		return nil, &ProviderLoadError{Theme: target.Name(), Err: err}
	}
	if p == nil {
		return nil, &ProviderLoadError{Theme: target.Name(), Err: ErrNilProvider}
	}
	return p, nil
}

// ActivateAsync runs Activate on a new goroutine. The returned channel receives
// the result once the theme is active and listeners were notified, then closes.
func (r *Registry) ActivateAsync(ctx context.Context, name string) <-chan error {
	done := make(chan error, 1)
	go func() {
		defer close(done)
		done <- r.Activate(ctx, name)
	}()
	return done
}

// AddListener registers l and returns the handle to remove it with.
// Registering the same listener twice yields two registrations.
func (r *Registry) AddListener(l Listener) Handle {
	if l == nil {
		return NilHandle
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	h := newHandle()
	r.listeners[h] = l
	return h
}

// RemoveListener drops the registration behind h. It reports whether one existed.
func (r *Registry) RemoveListener(h Handle) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.listeners[h]; !ok {
		return false
	}
	delete(r.listeners, h)
	return true
}

// ListenerCount returns the number of registered listeners
func (r *Registry) ListenerCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.listeners)
}

// IsLoadError reports whether err came from a failed bundle load
func IsLoadError(err error) bool {
	var loadErr *ProviderLoadError
	return errors.As(err, &loadErr)
}
