package theme

import (
	"io"

	"github.com/fatih/color"
	"github.com/shaharia-lab/reskin/internal/resource"
)

// Palette exposes terminal styles for the semantic color roles
type Palette interface {
	// Primary returns the primary style
	Primary() Writer

	// Secondary returns the secondary style
	Secondary() Writer

	// Success returns the success style
	Success() Writer

	// Error returns the error style
	Error() Writer

	// Warning returns the warning style
	Warning() Writer

	// Info returns the info style
	Info() Writer

	// Subtle returns the subtle style
	Subtle() Writer

	// Disabled returns the disabled style
	Disabled() Writer

	// Custom returns the style for any color resource by name
	Custom(name string) Writer
}

// ResolvedPalette builds styles from the colors a resolver currently returns.
// Styles are resolved on every call so they follow theme changes.
type ResolvedPalette struct {
	resolver Reader
	base     resource.Provider
	out      io.Writer
}

var _ Palette = (*ResolvedPalette)(nil)

// NewPalette creates a palette over resolver. Color names are looked up in base.
func NewPalette(resolver Reader, base resource.Provider) *ResolvedPalette {
	return &ResolvedPalette{resolver: resolver, base: base}
}

// RegistryPalette creates a palette following the active theme of r
func RegistryPalette(r *Registry) *ResolvedPalette {
	return NewPalette(r.CurrentResolver(), r.BaseProvider())
}

// WithWriter redirects every style of the palette to w
func (p *ResolvedPalette) WithWriter(w io.Writer) *ResolvedPalette {
	p.out = w
	return p
}

func (p *ResolvedPalette) style(name string, attrs ...color.Attribute) *Style {
	var s *Style
	if c, err := ResolveColor(p.resolver, p.base, name); err == nil {
		s = NewColorStyle(c, attrs...)
	} else {
		s = NewStyle(color.FgWhite, 0, attrs...)
	}
	if p.out != nil {
		s.WithWriter(p.out)
	}
	return s
}

// Primary returns the primary style
func (p *ResolvedPalette) Primary() Writer { return p.style("primary", color.Bold) }

// Secondary returns the secondary style
func (p *ResolvedPalette) Secondary() Writer { return p.style("secondary") }

// Success returns the success style
func (p *ResolvedPalette) Success() Writer { return p.style("success", color.Bold) }

// Error returns the error style
func (p *ResolvedPalette) Error() Writer { return p.style("error", color.Bold) }

// Warning returns the warning style
func (p *ResolvedPalette) Warning() Writer { return p.style("warning") }

// Info returns the info style
func (p *ResolvedPalette) Info() Writer { return p.style("info") }

// Subtle returns the subtle style
func (p *ResolvedPalette) Subtle() Writer { return p.style("subtle") }

// Disabled returns the disabled style
func (p *ResolvedPalette) Disabled() Writer { return p.style("disabled") }

// Custom returns the style of the color resource called name, falling back to a plain style
func (p *ResolvedPalette) Custom(name string) Writer { return p.style(name) }
