package theme

import (
	"testing"

	"github.com/shaharia-lab/reskin/internal/resource"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHostTable() *resource.Table {
	table := resource.NewTable("com.example.app", resource.DefaultPackageID)
	table.PutString("title", "Hello")
	table.PutColor("primary", resource.MustParseColor("#111111"))
	table.PutDrawable("icon", resource.Drawable{MediaType: "text/plain", Data: []byte("*")})
	table.PutString("title_dark", "Hello, night")
	table.PutColor("primary_dark", resource.MustParseColor("#222222"))
	return table
}

func newBundleTable() *resource.Table {
	table := resource.NewTable("com.example.bundle", resource.DefaultPackageID)
	table.PutColor("accent", resource.MustParseColor("#abcdef"))
	table.PutColor("primary", resource.MustParseColor("#333333"))
	table.PutDrawable("icon", resource.Drawable{MediaType: "text/plain", Data: []byte("#")})
	return table
}

func TestDirectResolver_DefaultTheme(t *testing.T) {
	host := newHostTable()
	r := NewDirectResolver(host, NewVariantDescriptor(DefaultName, "", host.Package()))

	s, err := ResolveString(r, host, "title")
	require.NoError(t, err)
	assert.Equal(t, "Hello", s)

	c, err := ResolveColor(r, host, "primary")
	require.NoError(t, err)
	assert.Equal(t, "#111111", c.Hex())
}

func TestDirectResolver_SuffixedVariant(t *testing.T) {
	host := newHostTable()
	r := NewDirectResolver(host, NewVariantDescriptor(DefaultName, "", host.Package()))
	r.Rebind(host, NewVariantDescriptor("dark", "_dark", host.Package()))

	s, err := ResolveString(r, host, "title")
	require.NoError(t, err)
	assert.Equal(t, "Hello, night", s)

	c, err := ResolveColor(r, host, "primary")
	require.NoError(t, err)
	assert.Equal(t, "#222222", c.Hex())

	id, err := Ref(host, resource.KindColor, "primary")
	require.NoError(t, err)
	translated, err := r.Identifier(id)
	require.NoError(t, err)
	assert.Equal(t, host.Identifier("primary_dark", resource.KindColor, ""), translated)

	_, err = ResolveDrawable(r, host, "icon")
	assert.ErrorIs(t, err, resource.ErrNotFound)
	assert.Equal(t, "dark", r.Theme().Name())
}

func TestDirectResolver_UnknownID(t *testing.T) {
	host := newHostTable()
	r := NewDirectResolver(host, NewVariantDescriptor(DefaultName, "", host.Package()))

	_, err := r.String(resource.NewID(resource.DefaultPackageID, resource.KindString, 500))
	assert.ErrorIs(t, err, resource.ErrNotFound)
}

func TestMultiResolver_TranslatesIntoBundle(t *testing.T) {
	host := newHostTable()
	bundle := newBundleTable()
	r := NewMultiResolver(host, NewVariantDescriptor(DefaultName, "", host.Package()))

	c, err := ResolveColor(r, host, "primary")
	require.NoError(t, err)
	assert.Equal(t, "#111111", c.Hex())

	r.Rebind(bundle, NewBundleDescriptor("bundle", "/themes/bundle.pak"))
	assert.Same(t, bundle, r.Provider())

	c, err = ResolveColor(r, host, "primary")
	require.NoError(t, err)
	assert.Equal(t, "#333333", c.Hex())

	hostID, err := Ref(host, resource.KindColor, "primary")
	require.NoError(t, err)
	translated, err := r.Identifier(hostID)
	require.NoError(t, err)
	assert.Equal(t, bundle.Identifier("primary", resource.KindColor, ""), translated)
	assert.NotEqual(t, hostID, translated)

	d, err := ResolveDrawable(r, host, "icon")
	require.NoError(t, err)
	assert.Equal(t, []byte("#"), d.Data)
}

func TestMultiResolver_FallsBackToHost(t *testing.T) {
	host := newHostTable()
	bundle := newBundleTable()
	r := NewMultiResolver(host, NewVariantDescriptor(DefaultName, "", host.Package()))
	r.Rebind(bundle, NewBundleDescriptor("bundle", "/themes/bundle.pak"))

	s, err := ResolveString(r, host, "title")
	require.NoError(t, err)
	assert.Equal(t, "Hello", s)

	hostID, err := Ref(host, resource.KindString, "title")
	require.NoError(t, err)
	translated, err := r.Identifier(hostID)
	require.NoError(t, err)
	assert.Equal(t, hostID, translated)
}

func TestMultiResolver_UsesDescriptorPackage(t *testing.T) {
	host := newHostTable()
	bundle := newBundleTable()
	r := NewMultiResolver(host, NewVariantDescriptor(DefaultName, "", host.Package()))

	d := NewBundleDescriptor("bundle", "/themes/bundle.pak")
	d.SetPackageName("com.somewhere.else")
	r.Rebind(bundle, d)

	c, err := ResolveColor(r, host, "primary")
	require.NoError(t, err)
	assert.Equal(t, "#111111", c.Hex(), "a package mismatch resolves nothing from the bundle")
}

func TestMultiResolver_UnknownHostID(t *testing.T) {
	host := newHostTable()
	r := NewMultiResolver(host, NewVariantDescriptor(DefaultName, "", host.Package()))
	r.Rebind(newBundleTable(), NewBundleDescriptor("bundle", "/b.pak"))

	_, err := r.Color(resource.NewID(resource.DefaultPackageID, resource.KindColor, 500))
	assert.ErrorIs(t, err, resource.ErrNotFound)
}
