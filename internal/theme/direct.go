package theme

import (
	"fmt"
	"sync"

	"github.com/shaharia-lab/reskin/internal/resource"
)

// DirectResolver resolves inside a single namespace. A theme with a suffix is
// served by the entries whose names carry that suffix, e.g. "primary_dark"
// for "primary". Missing entries surface resource.ErrNotFound.
type DirectResolver struct {
	mu    sync.RWMutex
	bound binding
}

var _ Resolver = (*DirectResolver)(nil)

// NewDirectResolver creates a resolver bound to p and d
func NewDirectResolver(p resource.Provider, d *Descriptor) *DirectResolver {
	return &DirectResolver{bound: binding{provider: p, theme: d}}
}

func (r *DirectResolver) snapshot() binding {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.bound
}

// Rebind switches the provider and theme
func (r *DirectResolver) Rebind(p resource.Provider, d *Descriptor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bound = binding{provider: p, theme: d}
}

// Theme returns the bound theme
func (r *DirectResolver) Theme() *Descriptor {
	return r.snapshot().theme
}

// Provider returns the bound provider
func (r *DirectResolver) Provider() resource.Provider {
	return r.snapshot().provider
}

func (r *DirectResolver) translate(b binding, id resource.ID) (resource.ID, error) {
	entry, err := b.provider.Entry(id)
	if err != nil {
		return 0, err
	}

	suffix := b.theme.Suffix()
	if suffix == "" {
		return id, nil
	}

	name := entry.Name + suffix
	target := b.provider.Identifier(name, entry.Kind, b.theme.PackageName())
	if target == 0 {
		return 0, fmt.Errorf("%w: %s/%s for theme %q", resource.ErrNotFound, entry.Kind, name, b.theme.Name())
	}
	return target, nil
}

// Identifier returns the suffixed identifier for id
func (r *DirectResolver) Identifier(id resource.ID) (resource.ID, error) {
	return r.translate(r.snapshot(), id)
}

// String resolves a string resource
func (r *DirectResolver) String(id resource.ID) (string, error) {
	b := r.snapshot()
	target, err := r.translate(b, id)
	if err != nil {
		return "", err
	}
	return b.provider.String(target)
}

// Color resolves a color resource
func (r *DirectResolver) Color(id resource.ID) (resource.Color, error) {
	b := r.snapshot()
	target, err := r.translate(b, id)
	if err != nil {
		return 0, err
	}
	return b.provider.Color(target)
}

// Drawable resolves a drawable resource
func (r *DirectResolver) Drawable(id resource.ID) (resource.Drawable, error) {
	b := r.snapshot()
	target, err := r.translate(b, id)
	if err != nil {
		return resource.Drawable{}, err
	}
	return b.provider.Drawable(target)
}
