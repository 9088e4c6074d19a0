package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lox.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaults(t *testing.T) {
	t.Setenv(EnvVar, "")
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.LogLevel != "warn" || !cfg.Color || cfg.Prompt != "> " {
		t.Errorf("unexpected defaults %+v", cfg)
	}
	home, _ := os.UserHomeDir()
	if cfg.HistoryFile != filepath.Join(home, ".lox_history") {
		t.Errorf("history file should be expanded, got %s", cfg.HistoryFile)
	}
	if level, _ := cfg.Level(); level != logrus.WarnLevel {
		t.Errorf("expected warn level, got %v", level)
	}
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, "log_level: debug\ncolor: false\nprompt: \"lox> \"\nhistory_file: /tmp/h\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.LogLevel != "debug" || cfg.Color || cfg.Prompt != "lox> " || cfg.HistoryFile != "/tmp/h" {
		t.Errorf("unexpected config %+v", cfg)
	}
	if level, _ := cfg.Level(); level != logrus.DebugLevel {
		t.Errorf("expected debug level, got %v", level)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "prompt: \">> \"\n"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Prompt != ">> " || cfg.LogLevel != "warn" || !cfg.Color {
		t.Errorf("unexpected config %+v", cfg)
	}

	// an empty file is fine too
	if _, err := Load(writeConfig(t, "")); err != nil {
		t.Errorf("empty file: %v", err)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv(EnvVar, writeConfig(t, "log_level: error\n"))
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.LogLevel != "error" {
		t.Errorf("config from %s not used, got %+v", EnvVar, cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	t.Setenv(EnvVar, "")

	if _, err := Load(writeConfig(t, "colour: true\n")); err == nil {
		t.Error("unknown fields should be rejected")
	}
	if _, err := Load(writeConfig(t, "log_level: loud\n")); err == nil {
		t.Error("bad log level should be rejected")
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("an explicit missing file should be an error")
	}

	t.Setenv(EnvVar, filepath.Join(t.TempDir(), "missing.yaml"))
	if _, err := Load(""); err == nil {
		t.Errorf("a missing file named by %s should be an error", EnvVar)
	}
}
