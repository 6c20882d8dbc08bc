// Package cli wires the theme manager and its adapters for the command line.
package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/teampw/themestore/internal/application/port"
	"github.com/teampw/themestore/internal/application/usecase"
	"github.com/teampw/themestore/internal/cli/styles"
	"github.com/teampw/themestore/internal/domain/build"
	"github.com/teampw/themestore/internal/domain/entity"
	"github.com/teampw/themestore/internal/infrastructure/colorscheme"
	"github.com/teampw/themestore/internal/infrastructure/config"
	"github.com/teampw/themestore/internal/infrastructure/display"
	"github.com/teampw/themestore/internal/infrastructure/persistence"
	"github.com/teampw/themestore/internal/logging"
	"github.com/teampw/themestore/internal/ui/mainloop"
	"github.com/teampw/themestore/internal/ui/theme"
)

// Options select how the app is assembled.
type Options struct {
	// ConfigFile overrides the XDG config file location.
	ConfigFile string
	// Interactive adds the terminal display surface.
	Interactive bool
	// Verbose logs to stderr even when file logging is off.
	Verbose bool
}

// App holds CLI dependencies.
type App struct {
	Config        *config.Config
	ConfigManager *config.Manager
	Styles        *styles.Theme
	BuildInfo     build.Info

	Store    *persistence.Store
	Slot     *persistence.ThemeSlot
	System   *colorscheme.System
	Surfaces *display.Surfaces
	Loop     *mainloop.Loop
	Theme    *theme.Manager

	// Use cases
	DescribeThemeUC *usecase.DescribeThemeUseCase

	// Context with logger
	ctx        context.Context
	logCleanup func()
}

// NewApp loads configuration and builds every collaborator of the theme manager.
// The initial theme is resolved and applied before NewApp returns.
func NewApp(opts Options) (*App, error) {
	mgr, cfg, err := loadConfig(opts.ConfigFile)
	if err != nil {
		return nil, err
	}

	logger, logCleanup, logErr := logging.NewWithFile(
		logging.Config{
			Level:      logging.ParseLevel(cfg.Logging.Level),
			Format:     cfg.Logging.Format,
			TimeFormat: "15:04:05",
		},
		logging.FileConfig{
			Enabled:       cfg.Logging.EnableFileLog,
			LogDir:        cfg.Logging.LogDir,
			MaxSizeMB:     cfg.Logging.MaxSizeMB,
			MaxBackups:    cfg.Logging.MaxBackups,
			MaxAgeDays:    cfg.Logging.MaxAgeDays,
			Compress:      true,
			WriteToStderr: opts.Verbose,
		},
	)
	ctx := logging.WithContext(context.Background(), logger)
	if logErr != nil {
		logger.Warn().Err(logErr).Msg("file logging disabled")
	}

	store, err := persistence.Open(cfg.Storage)
	if err != nil {
		logCleanup()
		return nil, fmt.Errorf("open preference store: %w", err)
	}

	surfaces, err := display.NewFromConfig(cfg.Display, opts.Interactive)
	if err != nil {
		_ = store.Close()
		logCleanup()
		return nil, fmt.Errorf("create display surfaces: %w", err)
	}

	system := colorscheme.NewFromConfig(cfg.System)
	slot := persistence.NewThemeSlot(store.Repo)
	loop := mainloop.NewLoop(0)

	deps := theme.Dependencies{
		Slot:            slot,
		Surface:         surfaces.All,
		Post:            loop.Post,
		Palettes:        theme.PalettesFromConfig(&cfg.Appearance),
		TransitionDelay: time.Duration(cfg.Appearance.TransitionDelayMs) * time.Millisecond,
	}
	if parsed, ok := entity.ParseTheme(cfg.Appearance.DefaultTheme); ok {
		deps.DefaultTheme = parsed
	}
	if cfg.System.FollowSystem {
		deps.Resolver = system.Resolver
	}
	if surfaces.File != nil {
		deps.Applied = surfaces.File
	}

	manager := theme.NewManager(ctx, deps)

	logger.Debug().
		Str("backend", store.Backend).
		Str("theme", manager.Theme().String()).
		Msg("app initialized")

	return &App{
		Config:        cfg,
		ConfigManager: mgr,
		Styles:        styles.NewTheme(manager.CurrentPalette(), manager.PrefersDark()),
		Store:         store,
		Slot:          slot,
		System:        system,
		Surfaces:      surfaces,
		Loop:          loop,
		Theme:         manager,
		DescribeThemeUC: usecase.NewDescribeThemeUseCase(
			manager, slot, detectorsOf(system),
		),
		ctx:        ctx,
		logCleanup: logCleanup,
	}, nil
}

func detectorsOf(system *colorscheme.System) []port.ColorSchemeDetector {
	if system == nil || system.Resolver == nil {
		return nil
	}
	return system.Resolver.Detectors()
}

// RefreshStyles rebuilds the lipgloss styles from the active palette.
func (a *App) RefreshStyles() {
	a.Styles = styles.NewTheme(a.Theme.CurrentPalette(), a.Theme.PrefersDark())
}

// Close releases all resources.
func (a *App) Close() error {
	var errs []error
	if a.Theme != nil {
		a.Theme.Close()
	}
	if a.Loop != nil {
		a.Loop.Stop()
	}
	if a.System != nil {
		errs = append(errs, a.System.Close())
	}
	if a.Store != nil {
		errs = append(errs, a.Store.Close())
	}
	if a.logCleanup != nil {
		a.logCleanup()
	}
	return errors.Join(errs...)
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// loadConfig loads configuration from the given file or the XDG location.
func loadConfig(configFile string) (*config.Manager, *config.Config, error) {
	var (
		mgr *config.Manager
		err error
	)
	if configFile != "" {
		mgr, err = config.NewManagerForFile(configFile)
	} else {
		mgr, err = config.NewManager()
	}
	if err != nil {
		return nil, nil, err
	}

	if err := mgr.Load(); err != nil {
		return nil, nil, err
	}
	return mgr, mgr.Get(), nil
}
