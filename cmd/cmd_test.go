package cmd

import (
	"bytes"
	"errors"
	"testing"

	"github.com/fatih/color"
	"github.com/shaharia-lab/reskin/internal/cli"
	"github.com/shaharia-lab/reskin/internal/theme"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContainer(t *testing.T) *cli.Container {
	t.Helper()
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })

	c, err := cli.NewContainer(cli.InitOptions{
		Version:  "1.0.0",
		Commit:   "abc",
		Date:     "2025-01-01",
		Root:     t.TempDir(),
		Registry: theme.NewRegistry(),
	})
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })
	return c
}

func run(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCmd_PrintsBanner(t *testing.T) {
	c := newTestContainer(t)

	out, err := run(t, NewRootCmd(c))
	require.NoError(t, err)
	assert.Contains(t, out, "Welcome to Reskin")
	assert.Contains(t, out, "Runtime themes for your CLI")
}

func TestThemesList(t *testing.T) {
	c := newTestContainer(t)

	out, err := run(t, NewRootCmd(c), "themes", "list")
	require.NoError(t, err)
	for _, name := range []string{"default", "professional", "modern-dark", "corporate", "_corporate"} {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "Mode: single")
}

func TestThemesPreview(t *testing.T) {
	c := newTestContainer(t)

	out, err := run(t, NewRootCmd(c), "themes", "preview", "corporate")
	require.NoError(t, err)
	assert.Contains(t, out, "Business as usual")
	assert.Contains(t, out, "#1f3a93")
	assert.Contains(t, out, `Theme "corporate" is active`)
	assert.Equal(t, "corporate", c.Registry.CurrentTheme().Name())
}

func TestThemesPreview_UnknownTheme(t *testing.T) {
	c := newTestContainer(t)

	out, err := run(t, NewRootCmd(c), "themes", "preview", "nonexistent")
	assert.ErrorIs(t, err, theme.ErrUnknownTheme)
	assert.Contains(t, out, "Cannot preview")
	assert.True(t, c.Registry.IsDefault())
}

func TestThemesPick(t *testing.T) {
	c := newTestContainer(t)

	var offered []string
	pick := func(message string, options []string, current string) (string, error) {
		offered = options
		assert.Equal(t, theme.DefaultName, current)
		return "modern-dark", nil
	}

	out, err := run(t, NewThemesPickCmd(c, pick))
	require.NoError(t, err)
	assert.Equal(t, []string{"corporate", "default", "modern-dark", "professional"}, offered)
	assert.Contains(t, out, `Theme "modern-dark" is active`)

	failing := func(string, []string, string) (string, error) { return "", errors.New("interrupted") }
	_, err = run(t, NewThemesPickCmd(c, failing))
	assert.EqualError(t, err, "interrupted")
}

func TestResourceGet(t *testing.T) {
	c := newTestContainer(t)

	out, err := run(t, NewRootCmd(c), "resource", "get", "color", "primary", "--theme", "professional")
	require.NoError(t, err)
	assert.Contains(t, out, "#3b78ff")

	out, err = run(t, NewRootCmd(c), "resource", "get", "string", "tagline")
	require.NoError(t, err)
	assert.Equal(t, "Calm colors for long sessions\n", out)

	out, err = run(t, NewRootCmd(c), "resource", "get", "drawable", "banner")
	require.NoError(t, err)
	assert.Contains(t, out, "text/plain")

	_, err = run(t, NewRootCmd(c), "resource", "get", "font", "primary")
	assert.Error(t, err)

	_, err = run(t, NewRootCmd(c), "resource", "get", "color", "primary", "--theme", "missing")
	assert.ErrorIs(t, err, theme.ErrUnknownTheme)
	assert.Equal(t, "professional", c.Registry.CurrentTheme().Name())
}

func TestResourceList(t *testing.T) {
	c := newTestContainer(t)

	out, err := run(t, NewRootCmd(c), "resource", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "primary_professional")
	assert.Contains(t, out, "tagline")
	assert.Contains(t, out, "drawable")
}

func TestConfigPreview(t *testing.T) {
	c := newTestContainer(t)

	out, err := run(t, NewRootCmd(c), "config", "preview")
	require.NoError(t, err)
	assert.Contains(t, out, c.ConfigManager.Path())
	assert.Contains(t, out, "mode: single")
}
