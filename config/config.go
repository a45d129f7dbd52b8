package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// DefaultOutput is the report written when no override is given.
const DefaultOutput = "musicburst-counts.csv"

// DefaultDelimiter is the CSV field separator name.
const DefaultDelimiter = "comma"

type Config struct {
	Output    string // report file path
	Delimiter string // comma, tab or ascii
	Profile   string // optional tier profile (YAML); empty means built-in
	LogLevel  string // debug, info, warn or error; empty means warn
}

type fileConfig struct {
	Output    string `toml:"output"`
	Delimiter string `toml:"delimiter"`
	Profile   string `toml:"profile"`
	LogLevel  string `toml:"log_level"`
}

func Load() (*Config, error) {
	cfg := &Config{
		Output:    DefaultOutput,
		Delimiter: DefaultDelimiter,
	}

	if configPath := configFilePath(); configPath != "" {
		var fc fileConfig
		if _, err := toml.DecodeFile(configPath, &fc); err != nil {
			return nil, fmt.Errorf("reading %s: %w", configPath, err)
		}
		if fc.Output != "" {
			cfg.Output = expandTilde(fc.Output)
		}
		if fc.Delimiter != "" {
			cfg.Delimiter = fc.Delimiter
		}
		if fc.Profile != "" {
			cfg.Profile = expandTilde(fc.Profile)
		}
		if fc.LogLevel != "" {
			cfg.LogLevel = fc.LogLevel
		}
	}

	applyEnvOverrides(cfg)
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("MUSICBURST_OUTPUT"); v != "" {
		cfg.Output = expandTilde(v)
	}
	if v := os.Getenv("MUSICBURST_DELIMITER"); v != "" {
		cfg.Delimiter = v
	}
	if v := os.Getenv("MUSICBURST_PROFILE"); v != "" {
		cfg.Profile = expandTilde(v)
	}
	if v := os.Getenv("MUSICBURST_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}

func configFilePath() string {
	var configDir string
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		configDir = filepath.Join(xdg, "musicburst")
	} else if home, err := os.UserHomeDir(); err == nil {
		configDir = filepath.Join(home, ".config", "musicburst")
	} else {
		return ""
	}

	path := filepath.Join(configDir, "config.toml")
	if _, err := os.Stat(path); err == nil {
		return path
	}
	return ""
}

func expandTilde(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
