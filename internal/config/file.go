package config

// This file implements the optional YAML config file. Flag values always win
// over file values, which win over built-in defaults.

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadFile overlays cfg with values from a YAML config file. If path is
// empty, standard locations are searched; a missing file is not an error.
func LoadFile(cfg *Config, path string) error {
	if path == "" {
		path = FindConfigFile()
		if path == "" {
			return nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	cfg.OutputFile = ExpandHome(cfg.OutputFile)
	cfg.LogFile = ExpandHome(cfg.LogFile)
	return nil
}

// FindConfigFile returns the first existing config file from the standard
// locations, or "" when none exists.
func FindConfigFile() string {
	home := homeDir()
	locations := []string{
		"./audioprobe.yaml",
		"./audioprobe.yml",
		filepath.Join(home, ".config", "audioprobe", "config.yaml"),
		filepath.Join(home, ".config", "audioprobe", "config.yml"),
		filepath.Join(home, ".audioprobe.yaml"),
	}

	for _, path := range locations {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(homeDir(), path[2:])
	}
	return path
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
