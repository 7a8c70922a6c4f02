// Package config loads the tool's YAML configuration and resolves the
// configuration file path from flags, environment, and defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// EnvConfigPath is the environment variable overriding the config
// file location.
const EnvConfigPath = "XLSXCMP_CONFIG_PATH"

// defaultConfigFile is the config filename probed in the working and
// executable directories.
const defaultConfigFile = "config.yaml"

// Config is the full tool configuration.
type Config struct {
	// BasePath is the directory containing the new, prev, and template
	// folders. Defaults to the current working directory.
	BasePath string `yaml:"base_path"`
	// OutputSuffix is inserted before the extension of every annotated
	// output workbook.
	OutputSuffix string `yaml:"output_suffix"`
	// TextOnParseFailure records a text difference instead of silently
	// skipping when a numeric-looking new value fails strict parsing.
	TextOnParseFailure bool `yaml:"text_on_parse_failure"`

	Auth AuthConfig `yaml:"auth"`
	Log  LogConfig  `yaml:"log"`
}

// AuthConfig configures the password gate.
type AuthConfig struct {
	// PasswordHash is the SHA-256 hex digest of the 4-digit password.
	PasswordHash string `yaml:"password_hash"`
	// MaxAttempts bounds password entry attempts.
	MaxAttempts int `yaml:"max_attempts"`
	// Disabled skips the password gate entirely.
	Disabled bool `yaml:"disabled"`
}

// LogConfig configures logging output.
type LogConfig struct {
	// Level is a zerolog level name: trace, debug, info, warn, error.
	Level string `yaml:"level"`
	// File enables rotated file logging when set.
	File string `yaml:"file"`
	// MaxSizeMB is the rotation threshold for the log file.
	MaxSizeMB int `yaml:"max_size_mb"`
	// MaxBackups is the number of rotated files kept.
	MaxBackups int `yaml:"max_backups"`
}

// Default returns the built-in configuration. The default password is
// "1234"; replace the hash before any real deployment.
func Default() Config {
	return Config{
		BasePath:     ".",
		OutputSuffix: "_COMPARISON",
		Auth: AuthConfig{
			PasswordHash: "9af15b336e6a9619928537df30b2e6a2376569fcf9d7e773eccede65606529a0",
			MaxAttempts:  3,
		},
		Log: LogConfig{
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
	}
}

// Load reads the YAML file at path over the defaults. An empty path
// returns the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the configuration back to path as YAML.
func Save(cfg Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// FindPath resolves the config file location. Priority:
//
//  1. the explicit flag value,
//  2. the XLSXCMP_CONFIG_PATH environment variable,
//  3. config.yaml in the working directory,
//  4. config.yaml next to the executable.
//
// Returns "" when no config file exists, which means defaults apply.
func FindPath(flagPath string) string {
	if flagPath != "" {
		if _, err := os.Stat(flagPath); err == nil {
			return flagPath
		}
	}

	if envPath := os.Getenv(EnvConfigPath); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	if cwd, err := os.Getwd(); err == nil {
		path := filepath.Join(cwd, defaultConfigFile)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	if exePath, err := os.Executable(); err == nil {
		path := filepath.Join(filepath.Dir(exePath), defaultConfigFile)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}
