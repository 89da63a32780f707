package theme

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shaharia-lab/reskin/internal/resource"
)

// Ref returns the identifier of name/kind in the host provider base
func Ref(base resource.Provider, kind resource.Kind, name string) (resource.ID, error) {
	id := base.Identifier(name, kind, "")
	if id == 0 {
		return 0, fmt.Errorf("%w: %s/%s", resource.ErrNotFound, kind, name)
	}
	return id, nil
}

// ResolveString resolves the host string called name through r
func ResolveString(r Reader, base resource.Provider, name string) (string, error) {
	id, err := Ref(base, resource.KindString, name)
	if err != nil {
		return "", err
	}
	return r.String(id)
}

// ResolveColor resolves the host color called name through r
func ResolveColor(r Reader, base resource.Provider, name string) (resource.Color, error) {
	id, err := Ref(base, resource.KindColor, name)
	if err != nil {
		return 0, err
	}
	return r.Color(id)
}

// ResolveDrawable resolves the host drawable called name through r
func ResolveDrawable(r Reader, base resource.Provider, name string) (resource.Drawable, error) {
	id, err := Ref(base, resource.KindDrawable, name)
	if err != nil {
		return resource.Drawable{}, err
	}
	return r.Drawable(id)
}

// DisplayBanner prints a boxed title with optional subtitles using the palette
func DisplayBanner(p Palette, title string, width int, subtitle ...string) {
	primary := p.Primary()
	secondary := p.Secondary()

	if width < len(title)+4 {
		width = len(title) + 4
	}

	// Check if subtitles need more width
	for _, sub := range subtitle {
		if len(sub)+4 > width {
			width = len(sub) + 4
		}
	}

	top := "╔" + strings.Repeat("═", width-2) + "╗"
	bottom := "╚" + strings.Repeat("═", width-2) + "╝"

	primary.Println(top)
	primary.Println(centerLine(title, width))

	if len(subtitle) > 0 {
		primary.Println("║" + strings.Repeat("─", width-2) + "║")
		for _, sub := range subtitle {
			secondary.Println(centerLine(sub, width))
		}
	}

	primary.Println(bottom)
}

// centerLine pads text inside a ║ frame of the given width; odd padding goes right
func centerLine(text string, width int) string {
	padding := width - len(text) - 2
	left := padding / 2
	right := padding - left
	return fmt.Sprintf("║%s%s%s║", strings.Repeat(" ", left), text, strings.Repeat(" ", right))
}

// RenderSwatches renders one colored block per role with its resolved hex value
func RenderSwatches(r Reader, base resource.Provider, roles []string) string {
	lines := make([]string, 0, len(roles))
	for _, role := range roles {
		c, err := ResolveColor(r, base, role)
		if err != nil {
			lines = append(lines, fmt.Sprintf("%-6s %-10s %s", "??", role, "missing"))
			continue
		}
		block := lipgloss.NewStyle().Background(lipgloss.Color(c.Hex())).Render("      ")
		lines = append(lines, fmt.Sprintf("%s %-10s %s", block, role, c.Hex()))
	}
	return strings.Join(lines, "\n")
}
