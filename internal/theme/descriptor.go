package theme

import (
	"fmt"
	"sync"
)

// DefaultName is the name of the theme synthesized from the host's own resources
const DefaultName = "default"

// Descriptor describes one theme. The name is the identity; every other
// field is payload. Only the package name may change after construction.
type Descriptor struct {
	name       string
	suffix     string
	sourcePath string

	mu          sync.RWMutex
	packageName string
}

// NewBundleDescriptor describes a theme backed by an external bundle at sourcePath.
// The package name is filled in once the bundle is opened.
func NewBundleDescriptor(name, sourcePath string) *Descriptor {
	return &Descriptor{
		name:       name,
		sourcePath: sourcePath,
	}
}

// NewVariantDescriptor describes a theme hosted in packageName whose resources
// carry suffix appended to their base names.
func NewVariantDescriptor(name, suffix, packageName string) *Descriptor {
	return &Descriptor{
		name:        name,
		suffix:      suffix,
		packageName: packageName,
	}
}

// Name returns the identity of the theme
func (d *Descriptor) Name() string {
	return d.name
}

// Suffix returns the resource name suffix, empty for bundles and the default theme
func (d *Descriptor) Suffix() string {
	return d.suffix
}

// SourcePath returns the bundle location, empty for variants
func (d *Descriptor) SourcePath() string {
	return d.sourcePath
}

// PackageName returns the namespace the theme's resources live in
func (d *Descriptor) PackageName() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.packageName
}

// SetPackageName records the namespace once it is known
func (d *Descriptor) SetPackageName(packageName string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.packageName = packageName
}

// IsBundle reports whether the theme is sourced from an external bundle
func (d *Descriptor) IsBundle() bool {
	return d.sourcePath != ""
}

// Key returns the identity key; equal descriptors share the same key
func (d *Descriptor) Key() string {
	if d == nil {
		return ""
	}
	return d.name
}

// Equal reports whether both descriptors name the same theme.
// Two nil descriptors are equal.
func (d *Descriptor) Equal(other *Descriptor) bool {
	if d == nil || other == nil {
		return d == nil && other == nil
	}
	return d.name == other.name
}

// String implements fmt.Stringer
func (d *Descriptor) String() string {
	if d == nil {
		return "<nil>"
	}
	if d.sourcePath != "" {
		return fmt.Sprintf("%s (%s)", d.name, d.sourcePath)
	}
	return d.name
}
