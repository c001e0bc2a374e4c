package config

import (
	"fmt"
	"strings"
)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateDock(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateDock(config *Config) []string {
	var validationErrors []string
	d := config.Dock

	if d.EdgeSize <= 0 {
		validationErrors = append(validationErrors, "dock.edge_size must be > 0")
	}
	if d.GoldenRatio <= 0 || d.GoldenRatio > 1 {
		validationErrors = append(validationErrors, "dock.golden_ratio must be in (0, 1]")
	}
	if d.MaxFraction <= 0 || d.MaxFraction > 1 {
		validationErrors = append(validationErrors, "dock.max_fraction must be in (0, 1]")
	}
	if d.EdgePadding < 0 {
		validationErrors = append(validationErrors, "dock.edge_padding must be non-negative")
	}
	if d.EdgePadding > 0 && d.EdgePadding >= d.EdgeSize {
		validationErrors = append(validationErrors,
			fmt.Sprintf("dock.edge_padding (%d) must be smaller than dock.edge_size (%d)", d.EdgePadding, d.EdgeSize))
	}
	return validationErrors
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	l := config.Logging

	switch l.Level {
	case "trace", "debug", "info", "warn", "warning", "error", "disabled", "off":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.level must be one of trace, debug, info, warn, error, disabled (got %q)", l.Level))
	}

	if l.File == "" {
		return validationErrors
	}
	if l.MaxSizeMB <= 0 {
		validationErrors = append(validationErrors, "logging.max_size_mb must be > 0 when logging.file is set")
	}
	if l.MaxBackups < 0 {
		validationErrors = append(validationErrors, "logging.max_backups must be non-negative")
	}
	if l.MaxAgeDays < 0 {
		validationErrors = append(validationErrors, "logging.max_age_days must be non-negative")
	}
	return validationErrors
}
