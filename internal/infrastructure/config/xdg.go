package config

import (
	"os"
	"path/filepath"
)

const (
	appName        = "dockarea"
	configFileName = "config.toml"
	dirPerm        = 0o755
)

// GetConfigDir returns the XDG config directory for dockarea:
// $XDG_CONFIG_HOME/dockarea (default: ~/.config/dockarea).
func GetConfigDir() (string, error) {
	// Development mode: use .dev directory in current working directory
	if os.Getenv("ENV") == "dev" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", err
		}
		return filepath.Join(cwd, ".dev", appName), nil
	}

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configHome = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configHome, appName), nil
}

// GetConfigFile returns the path to the main configuration file.
func GetConfigFile() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, configFileName), nil
}
