package theme

import (
	"context"

	"github.com/shaharia-lab/reskin/internal/resource"
)

// Host is the application the registry serves. It supplies the package
// identity of the default theme and the original resource provider.
type Host interface {
	PackageName() string
	Provider() resource.Provider
}

// StaticHost is a Host backed by fixed values
type StaticHost struct {
	Package   string
	Resources resource.Provider
}

// NewHost creates a Host serving provider under its own package name
func NewHost(provider resource.Provider) *StaticHost {
	return &StaticHost{
		Package:   provider.Package(),
		Resources: provider,
	}
}

// PackageName returns the host package
func (h *StaticHost) PackageName() string {
	return h.Package
}

// Provider returns the original resources of the host
func (h *StaticHost) Provider() resource.Provider {
	return h.Resources
}

// ProviderFactory opens the resources backing a theme. Implementations return an
// error when the resources cannot be opened (missing, corrupt, incompatible).
type ProviderFactory interface {
	CreateProvider(ctx context.Context, host Host, d *Descriptor) (resource.Provider, error)
}

// ProviderFactoryFunc adapts a function to ProviderFactory
type ProviderFactoryFunc func(ctx context.Context, host Host, d *Descriptor) (resource.Provider, error)

// CreateProvider calls f
func (f ProviderFactoryFunc) CreateProvider(ctx context.Context, host Host, d *Descriptor) (resource.Provider, error) {
	return f(ctx, host, d)
}
