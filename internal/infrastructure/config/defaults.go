package config

import "github.com/bnema/dockarea/internal/ui/dock"

// Default configuration constants
const (
	defaultEdgePadding = 0 // pixels

	defaultLogLevel      = "info"
	defaultLogFormat     = "console"
	defaultLogMaxSizeMB  = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAgeDays = 7
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Dock: DockConfig{
			EdgeSize:    dock.EdgeSize,
			GoldenRatio: dock.GoldenRatio,
			MaxFraction: dock.MaxFraction,
			EdgePadding: defaultEdgePadding,
		},
		Logging: LoggingConfig{
			Level:      defaultLogLevel,
			Format:     defaultLogFormat,
			MaxSizeMB:  defaultLogMaxSizeMB,
			MaxBackups: defaultLogMaxBackups,
			MaxAgeDays: defaultLogMaxAgeDays,
			Compress:   true,
		},
	}
}

// Options converts the dock settings into float area options.
func (c DockConfig) Options() dock.Options {
	opts := dock.DefaultOptions()
	opts.EdgeSize = c.EdgeSize
	opts.EdgePadding = c.EdgePadding
	opts.Sizer = dock.Sizer{Ratio: c.GoldenRatio, MaxFraction: c.MaxFraction}
	return opts
}
