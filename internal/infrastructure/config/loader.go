// Package config loads dockarea settings from TOML files and DOCKAREA_* environment
// variables through viper.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
	explicit  bool
}

// NewManager creates a configuration manager that looks for config.toml in the
// XDG config directory, then in the current directory.
func NewManager() (*Manager, error) {
	v := viper.New()

	// Configure Viper for TOML as default format
	v.SetConfigName("config")
	v.SetConfigType("toml")

	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	v.AddConfigPath(configDir)
	v.AddConfigPath(".") // Current directory for development

	if err := bindEnv(v); err != nil {
		return nil, err
	}

	return &Manager{
		viper:     v,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// NewManagerForFile creates a configuration manager bound to an explicit file.
// Unlike NewManager, a missing file is an error.
func NewManagerForFile(path string) (*Manager, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")

	if err := bindEnv(v); err != nil {
		return nil, err
	}

	return &Manager{
		viper:     v,
		callbacks: make([]func(*Config), 0),
		explicit:  true,
	}, nil
}

func bindEnv(v *viper.Viper) error {
	// DOCKAREA_DOCK_EDGE_SIZE, DOCKAREA_LOGGING_LEVEL, ...
	v.SetEnvPrefix("DOCKAREA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Same names the logger reads before any config is loaded.
	if err := v.BindEnv("logging.level", "DOCKAREA_LOG_LEVEL"); err != nil {
		return fmt.Errorf("failed to bind DOCKAREA_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "DOCKAREA_LOG_FORMAT"); err != nil {
		return fmt.Errorf("failed to bind DOCKAREA_LOG_FORMAT: %w", err)
	}
	return nil
}

// Load loads the configuration from file and environment variables.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

// readConfigFile reads the config file. When searching the default locations
// finds nothing, defaults and environment are used as-is.
func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var configFileNotFoundError viper.ConfigFileNotFoundError
	if !m.explicit && errors.As(err, &configFileNotFoundError) {
		return nil
	}

	configFile := m.viper.ConfigFileUsed()
	if configFile == "" {
		configDir, _ := GetConfigDir()
		configFile = filepath.Join(configDir, configFileName)
	}
	return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		configFile := m.viper.ConfigFileUsed()
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			configFile,
			err,
		)
	}
	return config, nil
}

func normalizeConfig(config *Config) {
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	if config.Logging.Level == "" {
		config.Logging.Level = defaultLogLevel
	}

	config.Logging.File = strings.TrimSpace(config.Logging.File)

	switch strings.ToLower(strings.TrimSpace(config.Logging.Format)) {
	case "json":
		config.Logging.Format = "json"
	default:
		config.Logging.Format = defaultLogFormat
	}
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	// Return a copy to prevent external modification
	configCopy := *m.config
	return &configCopy
}

// GetConfigFile returns the path to the configuration file being used.
// It is empty when no file was found.
func (m *Manager) GetConfigFile() string {
	return m.viper.ConfigFileUsed()
}

// WriteDefault writes the default configuration to path. An existing file is
// never overwritten.
func (m *Manager) WriteDefault(path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	m.setDefaults()
	m.viper.SetConfigType("toml")
	if err := m.viper.SafeWriteConfigAs(path); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.setDockDefaults(defaults)
	m.setLoggingDefaults(defaults)
}

func (m *Manager) setDockDefaults(defaults *Config) {
	m.viper.SetDefault("dock.edge_size", defaults.Dock.EdgeSize)
	m.viper.SetDefault("dock.golden_ratio", defaults.Dock.GoldenRatio)
	m.viper.SetDefault("dock.max_fraction", defaults.Dock.MaxFraction)
	m.viper.SetDefault("dock.edge_padding", defaults.Dock.EdgePadding)
}

func (m *Manager) setLoggingDefaults(defaults *Config) {
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.file", defaults.Logging.File)
	m.viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	m.viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
	m.viper.SetDefault("logging.max_age_days", defaults.Logging.MaxAgeDays)
	m.viper.SetDefault("logging.compress", defaults.Logging.Compress)
}
