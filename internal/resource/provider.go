// Package resource defines the resource provider abstraction themes resolve against
// and an in-memory implementation of it.
package resource

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a provider does not define the requested resource
	ErrNotFound = errors.New("resource not found")

	// ErrKindMismatch is returned when an identifier refers to a resource of another kind
	ErrKindMismatch = errors.New("resource kind mismatch")
)

// ID identifies a resource inside one provider. It is laid out as 0xPPTTEEEE:
// package id, kind id and entry index. The zero ID never names a resource.
type ID uint32

// NewID composes an identifier from its parts
func NewID(pkgID uint8, kind Kind, index uint16) ID {
	return ID(uint32(pkgID)<<24 | uint32(kind.id())<<16 | uint32(index))
}

// PackageID returns the package byte of the identifier
func (id ID) PackageID() uint8 {
	return uint8(id >> 24)
}

// Kind returns the kind encoded in the identifier
func (id ID) Kind() Kind {
	return kindFromID(uint8(id >> 16))
}

// String formats the identifier the way resource tables print them
func (id ID) String() string {
	return fmt.Sprintf("0x%08x", uint32(id))
}

// Entry is the symbolic identity of a resource
type Entry struct {
	Package string `json:"package"`
	Kind    Kind   `json:"kind"`
	Name    string `json:"name"`
}

// String renders the entry as package:kind/name
func (e Entry) String() string {
	return fmt.Sprintf("%s:%s/%s", e.Package, e.Kind, e.Name)
}

// Drawable is an opaque binary asset
type Drawable struct {
	Name      string `json:"name"`
	MediaType string `json:"media_type"`
	Data      []byte `json:"data"`
}

// Provider resolves symbolic resource references to concrete values
type Provider interface {
	// Package returns the namespace the provider serves
	Package() string

	// Identifier returns the id of name/kind inside pkg, or zero when absent.
	// An empty pkg means the provider's own package.
	Identifier(name string, kind Kind, pkg string) ID

	// Entry reverse-maps an identifier to its symbolic identity
	Entry(id ID) (Entry, error)

	// String returns a string resource
	String(id ID) (string, error)

	// Color returns a color resource
	Color(id ID) (Color, error)

	// Drawable returns a drawable resource
	Drawable(id ID) (Drawable, error)
}

// Lister is implemented by providers that can enumerate their entries
type Lister interface {
	Entries() []Entry
}

// Describe returns the entries of p when it can enumerate them
func Describe(p Provider) []Entry {
	if l, ok := p.(Lister); ok {
		return l.Entries()
	}
	return nil
}

// NotFound builds an ErrNotFound error for the given identifier
func NotFound(id ID) error {
	return fmt.Errorf("%w: %s", ErrNotFound, id)
}
