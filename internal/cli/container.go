package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/shaharia-lab/reskin/internal/bundle"
	"github.com/shaharia-lab/reskin/internal/config"
	"github.com/shaharia-lab/reskin/internal/filesystem"
	"github.com/shaharia-lab/reskin/internal/history"
	"github.com/shaharia-lab/reskin/internal/logger"
	"github.com/shaharia-lab/reskin/internal/theme"
)

// Container holds all application dependencies
type Container struct {
	Config        *config.AppConfig
	UserConfig    config.Config
	ConfigManager *config.Manager
	Filesystem    *filesystem.Filesystem
	Paths         map[filesystem.PathType]string
	Logger        logger.Logger
	Registry      *theme.Registry
	Bundles       *bundle.Factory
	Watcher       *bundle.Watcher
	History       *history.Store
}

// InitOptions contains options for initialization
type InitOptions struct {
	Version string
	Commit  string
	Date    string

	// LogLevel overrides the configured level when set
	LogLevel logger.LogLevel

	// Root replaces the home directory as parent of the application directory
	Root string

	// Registry is initialized instead of the process-wide theme.Default()
	Registry *theme.Registry

	// Console receives log output when console logging is enabled
	Console io.Writer
}

// NewContainer creates and initializes all application dependencies
func NewContainer(opts InitOptions) (*Container, error) {
	if opts.Version == "" {
		return nil, fmt.Errorf("version is required")
	}

	container := &Container{
		Config: config.NewDefaultConfig(config.WithVersion(config.Version{
			Version: opts.Version,
			Commit:  opts.Commit,
			Date:    opts.Date,
		})),
	}

	if opts.Root != "" {
		container.Filesystem = filesystem.NewFilesystemAt(container.Config, opts.Root)
	} else {
		container.Filesystem = filesystem.NewAppFilesystem(container.Config)
	}

	var err error
	container.Paths, err = container.Filesystem.EnsureAllPaths()
	if err != nil {
		return nil, fmt.Errorf("failed to ensure all application paths: %w", err)
	}

	if container.Paths[filesystem.ConfigFilePath] == "" {
		return nil, fmt.Errorf("config file path is required")
	}

	container.ConfigManager = config.NewManager(container.Paths[filesystem.ConfigFilePath])
	container.UserConfig, err = container.ConfigManager.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := container.initLogger(opts); err != nil {
		return nil, err
	}

	if err := container.initThemes(opts); err != nil {
		return nil, err
	}

	container.History, err = history.Open(container.Paths[filesystem.HistoryDB])
	if err != nil {
		return nil, fmt.Errorf("failed to open theme history: %w", err)
	}
	container.Registry.AddListener(history.NewRecorder(container.History, container.Registry.Mode(), container.Logger))

	container.Logger.Info("Container initialized", map[string]interface{}{
		"version": container.Config.Version.VersionText(),
		"mode":    container.Registry.Mode().String(),
		"themes":  len(container.Registry.Themes()),
	})
	return container, nil
}

func (c *Container) initLogger(opts InitOptions) error {
	level := opts.LogLevel
	if level == "" {
		var err error
		level, err = logger.ParseLevel(c.UserConfig.Log.Level)
		if err != nil {
			return err
		}
	}

	loggerConfig := logger.Config{
		Level:    level,
		FilePath: c.Paths[filesystem.LogsFilePath],
	}
	if c.UserConfig.Log.Console {
		loggerConfig.Console = opts.Console
		if loggerConfig.Console == nil {
			loggerConfig.Console = os.Stderr
		}
	}

	var err error
	c.Logger, err = logger.NewZapLogger(loggerConfig)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	return nil
}

func (c *Container) initThemes(opts InitOptions) error {
	mode, err := c.UserConfig.ThemeMode()
	if err != nil {
		return err
	}

	bundleDir := c.UserConfig.Bundles.Directory
	if bundleDir == "" {
		bundleDir = c.Paths[filesystem.BundlesDirectory]
	}
	c.Bundles = bundle.NewFactory(
		bundle.WithDirectory(bundleDir),
		bundle.WithLogger(c.Logger.WithField("component", "bundle")),
	)

	c.Registry = opts.Registry
	if c.Registry == nil {
		c.Registry = theme.Default()
	}

	host := theme.NewHost(theme.BuiltinTable(c.Config.Package, c.Config.Name))
	err = c.Registry.Init(host,
		theme.WithMode(mode),
		theme.WithFactory(c.Bundles),
		theme.WithLogger(c.Logger.WithField("component", "theme")),
	)
	if err != nil {
		return fmt.Errorf("failed to initialize theme registry: %w", err)
	}

	if mode == theme.SingleNamespace {
		for _, d := range theme.BuiltinVariants(host.PackageName()) {
			c.Registry.Register(d)
		}
	}

	for _, tc := range c.UserConfig.Themes {
		d := tc.Descriptor(host.PackageName())
		isVariant := d.Suffix() != ""
		if isVariant != (mode == theme.SingleNamespace) {
			c.Logger.Warn("Skipping theme that does not fit the configured mode", map[string]interface{}{
				"theme": d.Name(),
				"mode":  mode.String(),
			})
			continue
		}
		c.Registry.Register(d)
	}

	return nil
}

// StartWatching invalidates cached bundles when their files change until ctx is done.
// It does nothing unless bundles are used and watching is enabled.
func (c *Container) StartWatching(ctx context.Context) error {
	if c.Registry.Mode() != theme.MultiNamespace || !c.UserConfig.Bundles.Watch || c.Watcher != nil {
		return nil
	}

	w, err := bundle.NewWatcher(c.Bundles, c.Logger.WithField("component", "watcher"))
	if err != nil {
		return err
	}

	for _, d := range c.Registry.Themes() {
		if c.Registry.IsDefaultTheme(d) {
			continue
		}
		path, err := c.Bundles.Path(d)
		if err != nil {
			continue
		}
		if err := w.Watch(path); err != nil {
			c.Logger.Warn("Bundle is not watched", map[string]interface{}{
				"theme":         d.Name(),
				logger.ErrorKey: err,
			})
		}
	}

	c.Watcher = w
	go func() {
		if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			c.Logger.Warn("Bundle watcher stopped", map[string]interface{}{logger.ErrorKey: err})
		}
	}()
	return nil
}

// Palette returns terminal styles following the active theme, writing to out
func (c *Container) Palette(out io.Writer) *theme.ResolvedPalette {
	return theme.RegistryPalette(c.Registry).WithWriter(out)
}

// Close releases the resources held by the container
func (c *Container) Close() error {
	var errs []error
	if c.Watcher != nil {
		errs = append(errs, c.Watcher.Close())
	}
	if c.History != nil {
		errs = append(errs, c.History.Close())
	}
	if c.Logger != nil {
		_ = c.Logger.Sync()
	}
	return errors.Join(errs...)
}
