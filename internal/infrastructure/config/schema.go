package config

// Config represents the complete configuration for dockarea.
type Config struct {
	// Dock tunes the drag-and-drop engine of every float area.
	Dock DockConfig `mapstructure:"dock" yaml:"dock" toml:"dock"`
	// Logging controls log level and output format.
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging" toml:"logging"`
}

// DockConfig holds the float area geometry settings.
type DockConfig struct {
	// EdgeSize is the width in pixels of the border band that is left to an
	// enclosing container.
	EdgeSize int `mapstructure:"edge_size" yaml:"edge_size" toml:"edge_size"`
	// GoldenRatio is the height/width proportion given to panels leaving a docked
	// arrangement.
	GoldenRatio float64 `mapstructure:"golden_ratio" yaml:"golden_ratio" toml:"golden_ratio"`
	// MaxFraction caps each dimension of a new floating panel to this share of
	// the area (0 < x <= 1).
	MaxFraction float64 `mapstructure:"max_fraction" yaml:"max_fraction" toml:"max_fraction"`
	// EdgePadding keeps the drop preview this many pixels inside the area.
	EdgePadding int `mapstructure:"edge_padding" yaml:"edge_padding" toml:"edge_padding"`
}

// LoggingConfig controls the zerolog output.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level" toml:"level"`
	Format string `mapstructure:"format" yaml:"format" toml:"format"`
	// File also writes JSON entries to this path when set.
	File       string `mapstructure:"file" yaml:"file" toml:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb" yaml:"max_size_mb" toml:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups" yaml:"max_backups" toml:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days" yaml:"max_age_days" toml:"max_age_days"`
	Compress   bool   `mapstructure:"compress" yaml:"compress" toml:"compress"`
}
