// Package cli wires configuration, logging and theming for the dockarea commands.
package cli

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/bnema/dockarea/internal/cli/styles"
	"github.com/bnema/dockarea/internal/domain/build"
	"github.com/bnema/dockarea/internal/infrastructure/config"
	"github.com/bnema/dockarea/internal/logging"
	"github.com/bnema/dockarea/internal/ui/dock"
)

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Manager   *config.Manager
	Theme     *styles.Theme
	BuildInfo build.Info

	// Context with logger
	ctx context.Context
	// Rotating log file, nil unless logging.file is set
	logFile *logging.Rotator
}

// NewApp loads the configuration and builds the logger. With an empty
// configPath the XDG location is searched and a broken file falls back to
// defaults; an explicit path must load cleanly.
func NewApp(configPath string) (*App, error) {
	mgr, cfg, loadErr := loadConfig(configPath)
	if loadErr != nil && configPath != "" {
		return nil, loadErr
	}

	logCfg := logging.Config{
		Level:      logging.ParseLevel(cfg.Logging.Level),
		Format:     cfg.Logging.Format,
		TimeFormat: "15:04:05",
	}

	var logFile *logging.Rotator
	if cfg.Logging.File != "" {
		r, err := logging.NewRotator(logging.RotatorConfig{
			Path:       cfg.Logging.File,
			MaxSizeMB:  cfg.Logging.MaxSizeMB,
			MaxBackups: cfg.Logging.MaxBackups,
			MaxAgeDays: cfg.Logging.MaxAgeDays,
			Compress:   cfg.Logging.Compress,
		})
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		logFile = r
		logCfg.File = r
	}

	logger := logging.New(logCfg)
	if loadErr != nil {
		logger.Warn().Err(loadErr).Msg("using default configuration")
	}
	ctx := logging.WithContext(context.Background(), logger)

	return &App{
		Config:  cfg,
		Manager: mgr,
		Theme:   styles.NewTheme(),
		ctx:     ctx,
		logFile: logFile,
	}, nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return logging.FromContext(a.ctx)
}

// DockOptions returns float area options from the loaded configuration.
func (a *App) DockOptions() dock.Options {
	return a.Config.Dock.Options()
}

// Close releases all resources.
func (a *App) Close() error {
	if a.logFile == nil {
		return nil
	}
	return a.logFile.Close()
}

// loadConfig loads configuration from configPath or the standard locations.
func loadConfig(configPath string) (*config.Manager, *config.Config, error) {
	var (
		mgr *config.Manager
		err error
	)
	if configPath != "" {
		mgr, err = config.NewManagerForFile(configPath)
	} else {
		mgr, err = config.NewManager()
	}
	if err != nil {
		return nil, config.DefaultConfig(), err
	}

	if err := mgr.Load(); err != nil {
		return mgr, config.DefaultConfig(), err
	}
	return mgr, mgr.Get(), nil
}
