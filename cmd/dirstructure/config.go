// cmd/dirstructure/config.go
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config mirrors config.toml. Pointer fields distinguish "unset" from zero.
type Config struct {
	ExcludePatterns []string `toml:"exclude_patterns"`
	FileNames       []string `toml:"file_names"`
	ExcludeStrings  []string `toml:"exclude_strings"`
	Display         *string  `toml:"display"`
	LogLevel        *string  `toml:"log_level"`
	UseGitignore    *bool    `toml:"use_gitignore"`
	ReportTitle     *string  `toml:"report_title"`
}

var defaultConfig = Config{
	ExcludePatterns: []string{},
	FileNames:       []string{},
	ExcludeStrings:  []string{},
	Display:         func(s string) *string { return &s }(string(DisplayAll)),
	LogLevel:        func(s string) *string { return &s }("INFO"),
	UseGitignore:    func(b bool) *bool { return &b }(false),
	ReportTitle:     func(s string) *string { return &s }(defaultReportTitle),
}

// defaultConfigPath returns ~/.config/dirstructure/config.toml.
func defaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "dirstructure", "config.toml"), nil
}

// loadConfig reads customConfigPath, or the default location when it is
// empty. A missing default file is not an error; a missing custom file is.
func loadConfig(customConfigPath string, logger *slog.Logger) (Config, error) {
	isCustomPath := customConfigPath != ""

	var configFile string
	if isCustomPath {
		abs, err := filepath.Abs(customConfigPath)
		if err != nil {
			return defaultConfig, fmt.Errorf("invalid custom config path '%s': %w", customConfigPath, err)
		}
		configFile = abs
		logger.Debug("Attempting to load configuration from custom path.", "path", configFile)
	} else {
		p, err := defaultConfigPath()
		if err != nil {
			logger.Warn("Using default settings only.", "error", err)
			return defaultConfig, nil
		}
		configFile = p
		logger.Debug("Attempting to load configuration from default path.", "path", configFile)
	}

	content, err := os.ReadFile(configFile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if isCustomPath {
				return defaultConfig, fmt.Errorf("specified configuration file '%s' not found", configFile)
			}
			logger.Debug("No default config file found, using default settings.", "path", configFile)
			return defaultConfig, nil
		}
		return defaultConfig, fmt.Errorf("error reading config file '%s': %w", configFile, err)
	}

	if len(content) == 0 {
		logger.Info("Configuration file is empty, using default settings.", "path", configFile)
		return defaultConfig, nil
	}

	logger.Info("Loading configuration.", "path", configFile)
	cfg, err := decodeConfig(string(content), logger)
	if err != nil {
		return defaultConfig, fmt.Errorf("error decoding TOML from '%s': %w", configFile, err)
	}
	return cfg, nil
}

// decodeConfig decodes TOML over defaultConfig and fills unset keys.
func decodeConfig(content string, logger *slog.Logger) (Config, error) {
	cfg := defaultConfig
	meta, err := toml.Decode(content, &cfg)
	if err != nil {
		return defaultConfig, err
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		logger.Warn("Unrecognized keys found in config file.", "keys", undecoded)
	}

	if cfg.Display == nil {
		cfg.Display = defaultConfig.Display
	}
	if cfg.LogLevel == nil {
		cfg.LogLevel = defaultConfig.LogLevel
	}
	if cfg.UseGitignore == nil {
		cfg.UseGitignore = defaultConfig.UseGitignore
	}
	if cfg.ReportTitle == nil {
		cfg.ReportTitle = defaultConfig.ReportTitle
	}
	if cfg.ExcludePatterns == nil {
		cfg.ExcludePatterns = []string{}
	}
	if cfg.FileNames == nil {
		cfg.FileNames = []string{}
	}
	if cfg.ExcludeStrings == nil {
		cfg.ExcludeStrings = []string{}
	}

	logger.Debug("Configuration loaded.",
		"exclude_patterns", cfg.ExcludePatterns,
		"file_names", cfg.FileNames,
		"exclude_strings", cfg.ExcludeStrings,
		"display", *cfg.Display,
		"log_level", *cfg.LogLevel,
		"use_gitignore", *cfg.UseGitignore,
	)
	return cfg, nil
}
