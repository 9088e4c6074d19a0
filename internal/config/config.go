// Package config loads the settings of the lox host shell.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// EnvVar names the environment variable pointing to a config file
const EnvVar = "LOX_CONFIG"

// DefaultFile is looked up in the home directory when nothing else is set
const DefaultFile = ".loxrc.yaml"

// Config models the config file contents
type Config struct {
	LogLevel    string `yaml:"log_level"`
	Color       bool   `yaml:"color"`
	HistoryFile string `yaml:"history_file"`
	Prompt      string `yaml:"prompt"`
}

// Default returns the settings used when no file is found
func Default() *Config {
	return &Config{
		LogLevel:    "warn",
		Color:       true,
		HistoryFile: "~/.lox_history",
		Prompt:      "> ",
	}
}

// Load reads the config file at path. An empty path falls back to $LOX_CONFIG
// and then to ~/.loxrc.yaml; only the latter may be missing.
func Load(path string) (*Config, error) {
	path, required := resolve(path)
	cfg := Default()
	if path == "" {
		cfg.HistoryFile = expandHome(cfg.HistoryFile)
		return cfg, nil
	}

	file, err := os.Open(path)
	if err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			cfg.HistoryFile = expandHome(cfg.HistoryFile)
			return cfg, nil
		}
		return nil, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	if _, err := cfg.Level(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	cfg.HistoryFile = expandHome(cfg.HistoryFile)
	return cfg, nil
}

// Level parses LogLevel
func (c *Config) Level() (logrus.Level, error) {
	return logrus.ParseLevel(c.LogLevel)
}

func resolve(path string) (string, bool) {
	if path != "" {
		return path, true
	}
	if env := strings.TrimSpace(os.Getenv(EnvVar)); env != "" {
		return env, true
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", false
	}
	return filepath.Join(home, DefaultFile), false
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
