package resource

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_PutAndLookup(t *testing.T) {
	table := NewTable("com.example.app", DefaultPackageID)

	strID, err := table.PutString("app_name", "Reskin")
	require.NoError(t, err)
	colorID, err := table.PutColor("primary", MustParseColor("#112233"))
	require.NoError(t, err)
	drawID, err := table.PutDrawable("logo", Drawable{MediaType: "text/plain", Data: []byte("<>")})
	require.NoError(t, err)

	assert.Equal(t, KindString, strID.Kind())
	assert.Equal(t, KindColor, colorID.Kind())
	assert.Equal(t, KindDrawable, drawID.Kind())
	assert.Equal(t, DefaultPackageID, strID.PackageID())

	s, err := table.String(strID)
	require.NoError(t, err)
	assert.Equal(t, "Reskin", s)

	c, err := table.Color(colorID)
	require.NoError(t, err)
	assert.Equal(t, "#112233", c.Hex())

	d, err := table.Drawable(drawID)
	require.NoError(t, err)
	assert.Equal(t, "logo", d.Name)
	assert.Equal(t, []byte("<>"), d.Data)

	assert.Equal(t, strID, table.Identifier("app_name", KindString, ""))
	assert.Equal(t, strID, table.Identifier("app_name", KindString, "com.example.app"))
	assert.Zero(t, table.Identifier("app_name", KindString, "com.other"))
	assert.Zero(t, table.Identifier("app_name", KindColor, ""))
	assert.Zero(t, table.Identifier("missing", KindString, ""))
}

func TestTable_PutReplacesValueKeepsID(t *testing.T) {
	table := NewTable("pkg", DefaultPackageID)

	first, err := table.PutString("title", "one")
	require.NoError(t, err)
	second, err := table.PutString("title", "two")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	s, err := table.String(first)
	require.NoError(t, err)
	assert.Equal(t, "two", s)
	assert.Equal(t, 1, table.Len())
}

func TestTable_Errors(t *testing.T) {
	table := NewTable("pkg", DefaultPackageID)
	strID, err := table.PutString("title", "hello")
	require.NoError(t, err)

	_, err = table.String(NewID(DefaultPackageID, KindString, 99))
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = table.Color(strID)
	assert.ErrorIs(t, err, ErrKindMismatch)

	_, err = table.Entry(0)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTable_FullKindRejectsNewNames(t *testing.T) {
	table := NewTable("pkg", DefaultPackageID)

	first, err := table.PutString("s0", "zero")
	require.NoError(t, err)
	for i := 1; i < MaxEntriesPerKind; i++ {
		_, err := table.PutString(fmt.Sprintf("s%d", i), fmt.Sprint(i))
		require.NoError(t, err)
	}
	assert.Equal(t, MaxEntriesPerKind, table.Len())

	_, err = table.PutString("one-too-many", "overflow")
	assert.ErrorIs(t, err, ErrTableFull)
	assert.Zero(t, table.Identifier("one-too-many", KindString, ""))
	assert.Equal(t, MaxEntriesPerKind, table.Len())

	s, err := table.String(first)
	require.NoError(t, err)
	assert.Equal(t, "zero", s)

	_, err = table.PutString("s0", "replaced")
	require.NoError(t, err, "existing names can still be updated")

	_, err = table.PutColor("primary", MustParseColor("#000000"))
	assert.NoError(t, err, "other kinds have their own identifiers")
}

func TestTable_Entries(t *testing.T) {
	table := NewTable("pkg", DefaultPackageID)
	table.PutColor("secondary", MustParseColor("#000"))
	table.PutString("b", "b")
	table.PutString("a", "a")
	table.PutColor("primary", MustParseColor("#fff"))

	entries := Describe(table)
	require.Len(t, entries, 4)
	assert.Equal(t, "pkg:string/a", entries[0].String())
	assert.Equal(t, "pkg:string/b", entries[1].String())
	assert.Equal(t, "pkg:color/primary", entries[2].String())
	assert.Equal(t, "pkg:color/secondary", entries[3].String())
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind(" Color ")
	require.NoError(t, err)
	assert.Equal(t, KindColor, k)

	_, err = ParseKind("layout")
	assert.Error(t, err)
}
