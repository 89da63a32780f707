package bundle

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shaharia-lab/reskin/internal/logger"
	"github.com/shaharia-lab/reskin/internal/resource"
	"github.com/shaharia-lab/reskin/internal/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testHost() theme.Host {
	return theme.NewHost(resource.NewTable("com.example.app", resource.DefaultPackageID))
}

func TestFactory_Path(t *testing.T) {
	f := NewFactory(WithDirectory("/bundles"))

	p, err := f.Path(theme.NewBundleDescriptor("dark", "/themes/dark"))
	require.NoError(t, err)
	assert.Equal(t, "/themes/dark", p)

	derived := theme.NewBundleDescriptor("ocean", "")
	derived.SetPackageName("com.example.ocean")
	p, err = f.Path(derived)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/bundles", "com.example.ocean.pak"), p)

	_, err = f.Path(theme.NewBundleDescriptor("nothing", ""))
	assert.ErrorIs(t, err, ErrNoSource)

	_, err = NewFactory().Path(derived)
	assert.ErrorIs(t, err, ErrNoSource)
}

func TestFactory_CreateProviderFillsPackageAndCaches(t *testing.T) {
	log, logs := logger.NewObserved(logger.InfoLevel)
	f := NewFactory(WithLogger(log))
	d := theme.NewBundleDescriptor("dark", writeDirBundle(t, t.TempDir()))

	p, err := f.CreateProvider(context.Background(), testHost(), d)
	require.NoError(t, err)
	assert.Equal(t, "com.example.dark", p.Package())
	assert.Equal(t, "com.example.dark", d.PackageName())
	assert.True(t, f.Cached("dark"))
	assert.Equal(t, 1, logs.FilterMessage("Bundle loaded").Len())

	again, err := f.CreateProvider(context.Background(), testHost(), d)
	require.NoError(t, err)
	assert.Same(t, p, again)
	assert.Equal(t, 1, logs.FilterMessage("Bundle loaded").Len())

	snap := f.Snapshot()
	require.Len(t, snap, 1)
	assert.Equal(t, "dark", snap[0].Theme)
	assert.Equal(t, "com.example.dark", snap[0].Package)
	assert.Equal(t, 4, snap[0].Entries)
}

func TestFactory_DerivedPath(t *testing.T) {
	dir := t.TempDir()
	writeOceanArchive(t, dir)
	f := NewFactory(WithDirectory(dir))

	d := theme.NewBundleDescriptor("ocean", "")
	d.SetPackageName("com.example.ocean")

	p, err := f.CreateProvider(context.Background(), testHost(), d)
	require.NoError(t, err)
	assert.Equal(t, "com.example.ocean", p.Package())
}

func TestFactory_PackageMismatch(t *testing.T) {
	f := NewFactory()
	d := theme.NewBundleDescriptor("dark", writeDirBundle(t, t.TempDir()))
	d.SetPackageName("com.example.other")

	_, err := f.CreateProvider(context.Background(), testHost(), d)
	assert.ErrorIs(t, err, ErrPackageMismatch)
}

func TestFactory_LoadError(t *testing.T) {
	log, logs := logger.NewObserved(logger.WarnLevel)
	f := NewFactory(WithLogger(log))

	_, err := f.CreateProvider(context.Background(), testHost(), theme.NewBundleDescriptor("gone", filepath.Join(t.TempDir(), "gone.pak")))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.False(t, f.Cached("gone"))
	assert.Equal(t, 1, logs.FilterMessage("Failed to load bundle").Len())
}

func TestFactory_CollapsesConcurrentLoads(t *testing.T) {
	release := make(chan struct{})
	var loads int32
	f := NewFactory()
	f.load = func(path string) (*Table, error) {
		atomic.AddInt32(&loads, 1)
		<-release
		return &Table{Table: resource.NewTable("com.example.dark", PackageID), Manifest: &Manifest{Package: "com.example.dark"}}, nil
	}

	d := theme.NewBundleDescriptor("dark", "/themes/dark.pak")
	var wg sync.WaitGroup
	results := make([]resource.Provider, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			p, err := f.CreateProvider(context.Background(), testHost(), d)
			assert.NoError(t, err)
			results[i] = p
		}(i)
	}

	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&loads))
	for _, p := range results {
		assert.Same(t, results[0], p)
	}
}

func TestFactory_ContextCancelled(t *testing.T) {
	release := make(chan struct{})
	defer close(release)
	f := NewFactory()
	f.load = func(path string) (*Table, error) {
		<-release
		return nil, errors.New("too late")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.CreateProvider(ctx, testHost(), theme.NewBundleDescriptor("dark", "/themes/dark.pak"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFactory_Invalidation(t *testing.T) {
	dir := t.TempDir()
	bundlePath := writeDirBundle(t, dir)
	f := NewFactory()

	dark := theme.NewBundleDescriptor("dark", bundlePath)
	alias := theme.NewBundleDescriptor("dark-alias", bundlePath)
	ctx := context.Background()
	_, err := f.CreateProvider(ctx, testHost(), dark)
	require.NoError(t, err)
	_, err = f.CreateProvider(ctx, testHost(), alias)
	require.NoError(t, err)

	assert.True(t, f.Invalidate("dark"))
	assert.False(t, f.Invalidate("dark"))
	assert.True(t, f.Cached("dark-alias"))

	_, err = f.CreateProvider(ctx, testHost(), dark)
	require.NoError(t, err)
	assert.Equal(t, []string{"dark", "dark-alias"}, f.InvalidatePath(bundlePath))
	assert.Empty(t, f.Snapshot())

	_, err = f.CreateProvider(ctx, testHost(), dark)
	require.NoError(t, err)
	f.Purge()
	assert.False(t, f.Cached("dark"))
}

func TestFactory_WithRegistry(t *testing.T) {
	host := theme.NewHost(theme.BuiltinTable("com.example.app", "reskin"))
	f := NewFactory()
	r := theme.NewRegistry()
	require.NoError(t, r.Init(host, theme.WithMode(theme.MultiNamespace), theme.WithFactory(f)))
	r.Register(theme.NewBundleDescriptor("dark", writeDirBundle(t, t.TempDir())))
	r.Register(theme.NewBundleDescriptor("broken", filepath.Join(t.TempDir(), "broken.pak")))

	require.NoError(t, r.Activate(context.Background(), "dark"))

	c, err := theme.ResolveColor(r.CurrentResolver(), r.BaseProvider(), "primary")
	require.NoError(t, err)
	assert.Equal(t, "#101010", c.Hex())

	s, err := theme.ResolveString(r.CurrentResolver(), r.BaseProvider(), "tagline")
	require.NoError(t, err)
	assert.Equal(t, "Lights out", s)

	s, err = theme.ResolveString(r.CurrentResolver(), r.BaseProvider(), "app_name")
	require.NoError(t, err)
	assert.Equal(t, "reskin", s)

	err = r.Activate(context.Background(), "broken")
	assert.True(t, theme.IsLoadError(err))
	assert.Equal(t, "dark", r.CurrentTheme().Name())
}

func TestFactory_InvalidationDuringLoad(t *testing.T) {
	started := make(chan struct{}, 2)
	release := make(chan struct{})
	var loads int32
	f := NewFactory()
	f.load = func(path string) (*Table, error) {
		n := atomic.AddInt32(&loads, 1)
		started <- struct{}{}
		if n == 1 {
			<-release
		}
		return &Table{Table: resource.NewTable("com.example.dark", PackageID), Manifest: &Manifest{Package: "com.example.dark"}}, nil
	}

	path, err := filepath.Abs(filepath.Join(t.TempDir(), "dark.pak"))
	require.NoError(t, err)
	d := theme.NewBundleDescriptor("dark", path)
	ctx := context.Background()

	first := make(chan resource.Provider, 1)
	go func() {
		p, err := f.CreateProvider(ctx, testHost(), d)
		assert.NoError(t, err)
		first <- p
	}()
	<-started

	assert.Equal(t, []string{"dark"}, f.InvalidatePath(path))

	fresh, err := f.CreateProvider(ctx, testHost(), d)
	require.NoError(t, err)
	assert.True(t, f.Cached("dark"))

	close(release)
	stale := <-first
	assert.NotSame(t, stale, fresh, "requests after the invalidation read the bundle again")
	assert.Equal(t, int32(2), atomic.LoadInt32(&loads))

	cached, err := f.CreateProvider(ctx, testHost(), d)
	require.NoError(t, err)
	assert.Same(t, fresh, cached, "the load that outlived the invalidation is not cached")
}

func TestFactory_InvalidateAbandonsPendingLoad(t *testing.T) {
	started := make(chan struct{}, 1)
	release := make(chan struct{})
	f := NewFactory()
	f.load = func(path string) (*Table, error) {
		started <- struct{}{}
		<-release
		return &Table{Table: resource.NewTable("com.example.dark", PackageID), Manifest: &Manifest{Package: "com.example.dark"}}, nil
	}

	d := theme.NewBundleDescriptor("dark", "/themes/dark.pak")
	done := make(chan error, 1)
	go func() {
		_, err := f.CreateProvider(context.Background(), testHost(), d)
		done <- err
	}()
	<-started

	assert.True(t, f.Invalidate("dark"))
	close(release)
	require.NoError(t, <-done)
	assert.False(t, f.Cached("dark"))
}

func TestFactory_PurgeAbandonsPendingLoad(t *testing.T) {
	started := make(chan struct{}, 1)
	release := make(chan struct{})
	f := NewFactory()
	f.load = func(path string) (*Table, error) {
		started <- struct{}{}
		<-release
		return &Table{Table: resource.NewTable("com.example.dark", PackageID), Manifest: &Manifest{Package: "com.example.dark"}}, nil
	}

	done := make(chan error, 1)
	go func() {
		_, err := f.CreateProvider(context.Background(), testHost(), theme.NewBundleDescriptor("dark", "/themes/dark.pak"))
		done <- err
	}()
	<-started

	f.Purge()
	close(release)
	require.NoError(t, <-done)
	assert.False(t, f.Cached("dark"))
	assert.Empty(t, f.Snapshot())
}

func TestFactory_BundleInHostPackage(t *testing.T) {
	base := resource.NewTable("com.example.app", resource.DefaultPackageID)
	primary, err := base.PutColor("primary", resource.MustParseColor("#111111"))
	require.NoError(t, err)
	host := theme.NewHost(base)

	log, logs := logger.NewObserved(logger.DebugLevel)
	f := NewFactory(WithLogger(log))
	f.load = func(path string) (*Table, error) {
		table := resource.NewTable("com.example.app", PackageID)
		_, err := table.PutColor("primary", resource.MustParseColor("#222222"))
		return &Table{Table: table, Manifest: &Manifest{Package: "com.example.app"}}, err
	}

	d := theme.NewBundleDescriptor("same", "/themes/same.pak")
	p, err := f.CreateProvider(context.Background(), host, d)
	require.NoError(t, err)
	assert.Equal(t, 1, logs.FilterMessage("Bundle declares the host package name").Len())

	r := theme.NewMultiResolver(base, theme.NewVariantDescriptor(theme.DefaultName, "", "com.example.app"))
	r.Rebind(p, d)
	c, err := r.Color(primary)
	require.NoError(t, err)
	assert.Equal(t, "#222222", c.Hex())
}
