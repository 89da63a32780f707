package theme

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/shaharia-lab/reskin/internal/resource"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withoutColor(t *testing.T) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })
}

func TestDisplayBanner(t *testing.T) {
	withoutColor(t)
	table := BuiltinTable("com.example.app", "reskin")
	var buf bytes.Buffer
	p := NewPalette(NewDirectResolver(table, NewVariantDescriptor(DefaultName, "", "com.example.app")), table).WithWriter(&buf)

	DisplayBanner(p, "My App", 20)

	assert.Equal(t, strings.Join([]string{
		"╔" + strings.Repeat("═", 18) + "╗",
		"║      My App      ║",
		"╚" + strings.Repeat("═", 18) + "╝",
		"",
	}, "\n"), buf.String())
}

func TestDisplayBanner_WidensForSubtitles(t *testing.T) {
	withoutColor(t)
	table := BuiltinTable("com.example.app", "reskin")
	var buf bytes.Buffer
	p := NewPalette(NewDirectResolver(table, NewVariantDescriptor(DefaultName, "", "com.example.app")), table).WithWriter(&buf)

	DisplayBanner(p, "App", 4, "a much longer subtitle")

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "║ a much longer subtitle ║", lines[3])
	for _, line := range lines {
		assert.Equal(t, len([]rune(lines[0])), len([]rune(line)))
	}
}

func TestResolveHelpers(t *testing.T) {
	table := BuiltinTable("com.example.app", "reskin")
	corporate := NewDirectResolver(table, NewVariantDescriptor("corporate", "_corporate", "com.example.app"))

	c, err := ResolveColor(corporate, table, "primary")
	require.NoError(t, err)
	assert.Equal(t, "#1f3a93", c.Hex())

	s, err := ResolveString(corporate, table, "tagline")
	require.NoError(t, err)
	assert.Equal(t, "Business as usual", s)

	d, err := ResolveDrawable(corporate, table, "banner")
	require.NoError(t, err)
	assert.Equal(t, "text/plain", d.MediaType)
	assert.Contains(t, string(d.Data), "|_|")

	_, err = ResolveColor(corporate, table, "nope")
	assert.ErrorIs(t, err, resource.ErrNotFound)
}

func TestBuiltinVariants(t *testing.T) {
	variants := BuiltinVariants("com.example.app")

	names := make([]string, 0, len(variants))
	for _, v := range variants {
		names = append(names, v.Name())
		assert.False(t, v.IsBundle())
		assert.Equal(t, "com.example.app", v.PackageName())
	}
	assert.Equal(t, []string{"professional", "modern-dark", "corporate"}, names)
}

func TestBuiltinTable_EveryVariantDefinesEveryRole(t *testing.T) {
	table := BuiltinTable("com.example.app", "reskin")

	for _, p := range builtinPalettes {
		for _, role := range Roles {
			assert.NotZero(t, table.Identifier(role+p.suffix, resource.KindColor, ""), "%s%s", role, p.suffix)
		}
		assert.NotZero(t, table.Identifier("banner"+p.suffix, resource.KindDrawable, ""))
	}
}

func TestRenderSwatches(t *testing.T) {
	table := BuiltinTable("com.example.app", "reskin")
	r := NewDirectResolver(table, NewVariantDescriptor("modern-dark", "_modern_dark", "com.example.app"))

	out := RenderSwatches(r, table, []string{"primary", "missing"})

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "primary")
	assert.Contains(t, lines[0], "#5b8def")
	assert.Contains(t, lines[1], "missing")
}

func TestPalette_FollowsRebind(t *testing.T) {
	withoutColor(t)
	table := BuiltinTable("com.example.app", "reskin")
	r := NewDirectResolver(table, NewVariantDescriptor(DefaultName, "", "com.example.app"))
	var buf bytes.Buffer
	p := NewPalette(r, table).WithWriter(&buf)

	p.Custom("tagline").Print("x")
	r.Rebind(table, NewVariantDescriptor("corporate", "_corporate", "com.example.app"))
	p.Primary().Println("hello")

	assert.Equal(t, "xhello\n", buf.String())
}
