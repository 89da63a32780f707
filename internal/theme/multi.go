package theme

import (
	"sync"

	"github.com/shaharia-lab/reskin/internal/resource"
)

// MultiResolver resolves across namespaces. An identifier of the host is
// mapped by name and kind into the bound bundle's namespace; anything the
// bundle does not define falls back to the host's original value.
type MultiResolver struct {
	base resource.Provider

	mu    sync.RWMutex
	bound binding
}

var _ Resolver = (*MultiResolver)(nil)

// NewMultiResolver creates a resolver over the host provider base, initially bound to it and d
func NewMultiResolver(base resource.Provider, d *Descriptor) *MultiResolver {
	return &MultiResolver{
		base:  base,
		bound: binding{provider: base, theme: d},
	}
}

func (r *MultiResolver) snapshot() binding {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.bound
}

// Rebind switches the bundle provider and theme
func (r *MultiResolver) Rebind(p resource.Provider, d *Descriptor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bound = binding{provider: p, theme: d}
}

// Theme returns the bound theme
func (r *MultiResolver) Theme() *Descriptor {
	return r.snapshot().theme
}

// Provider returns the bound provider
func (r *MultiResolver) Provider() resource.Provider {
	return r.snapshot().provider
}

// translate returns the provider and identifier to query for id. When the
// bundle lacks the entry the host provider and the original id are returned.
func (r *MultiResolver) translate(b binding, id resource.ID) (resource.Provider, resource.ID, error) {
	if b.provider == r.base {
		return r.base, id, nil
	}

	entry, err := r.base.Entry(id)
	if err != nil {
		return nil, 0, err
	}

	pkg := b.theme.PackageName()
	if pkg == "" {
		pkg = b.provider.Package()
	}

	target := b.provider.Identifier(entry.Name, entry.Kind, pkg)
	if target == 0 {
		return r.base, id, nil
	}
	return b.provider, target, nil
}

// Identifier returns the bundle identifier for id, or id itself when the bundle does not define it
func (r *MultiResolver) Identifier(id resource.ID) (resource.ID, error) {
	_, target, err := r.translate(r.snapshot(), id)
	return target, err
}

// String resolves a string resource
func (r *MultiResolver) String(id resource.ID) (string, error) {
	p, target, err := r.translate(r.snapshot(), id)
	if err != nil {
		return "", err
	}
	if v, err := p.String(target); err == nil || p == r.base {
		return v, err
	}
	return r.base.String(id)
}

// Color resolves a color resource
func (r *MultiResolver) Color(id resource.ID) (resource.Color, error) {
	p, target, err := r.translate(r.snapshot(), id)
	if err != nil {
		return 0, err
	}
	if v, err := p.Color(target); err == nil || p == r.base {
		return v, err
	}
	return r.base.Color(id)
}

// Drawable resolves a drawable resource
func (r *MultiResolver) Drawable(id resource.ID) (resource.Drawable, error) {
	p, target, err := r.translate(r.snapshot(), id)
	if err != nil {
		return resource.Drawable{}, err
	}
	if v, err := p.Drawable(target); err == nil || p == r.base {
		return v, err
	}
	return r.base.Drawable(id)
}
