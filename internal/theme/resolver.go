package theme

import (
	"github.com/shaharia-lab/reskin/internal/resource"
)

// Reader answers resource queries as seen through the theme it is bound to.
// Identifiers passed in are those of the host's original provider.
type Reader interface {
	// String resolves a string resource
	String(id resource.ID) (string, error)

	// Color resolves a color resource
	Color(id resource.ID) (resource.Color, error)

	// Drawable resolves a drawable resource
	Drawable(id resource.ID) (resource.Drawable, error)

	// Identifier translates id into the identifier the bound theme uses for it
	Identifier(id resource.ID) (resource.ID, error)

	// Theme returns the bound theme
	Theme() *Descriptor

	// Provider returns the bound provider
	Provider() resource.Provider
}

// Resolver is a Reader the registry can rebind to another theme
type Resolver interface {
	Reader

	// Rebind switches the provider and theme lookups run against.
	// Both change together with respect to concurrent lookups.
	Rebind(p resource.Provider, d *Descriptor)
}

// readOnly hides Rebind from callers of a resolver that must stay bound
type readOnly struct {
	Reader
}

// binding is the provider/theme pair a resolver looks up against
type binding struct {
	provider resource.Provider
	theme    *Descriptor
}
