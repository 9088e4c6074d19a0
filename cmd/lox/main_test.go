package main

import (
	"os"
	"path/filepath"
	"testing"

	"golox/internal/config"
)

func script(t *testing.T, source string) string {
	return writeFile(t, "script.lox", source)
}

func writeFile(t *testing.T, name, source string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(source), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestExitCodes(t *testing.T) {
	t.Setenv(config.EnvVar, "")
	t.Setenv("HOME", t.TempDir())

	cases := []struct {
		name string
		args []string
		code int
	}{
		{"too many args", []string{"a.lox", "b.lox"}, exitUsage},
		{"unknown flag", []string{"-nope"}, exitUsage},
		{"missing script", []string{filepath.Join(t.TempDir(), "none.lox")}, exitIOErr},
		{"ok", []string{"-no-color", script(t, `print 1 + 2;`)}, 0},
		{"syntax error", []string{"-no-color", script(t, `print 1`)}, exitDataErr},
		{"runtime error", []string{"-no-color", script(t, `print -"a";`)}, exitDataErr},
		{"tokens", []string{"-no-color", "-tokens", script(t, `var a = 1;`)}, 0},
		{"ast", []string{"-no-color", "-ast", script(t, `var a = 1;`)}, 0},
		{"ast with errors", []string{"-no-color", "-ast", script(t, `var = 1;`)}, exitDataErr},
		{"bad log level", []string{"-config", writeFile(t, "lox.yaml", "log_level: loud\n"), script(t, `print 1;`)}, exitUsage},
		{"config level", []string{"-config", writeFile(t, "lox.yaml", "log_level: error\n"), script(t, `print 1;`)}, 0},
		{"runaway recursion", []string{"-no-color", script(t, `fun f() { f(); } f();`)}, exitDataErr},
	}
	for _, c := range cases {
		if code := run(c.args); code != c.code {
			t.Errorf("%s: expected exit code %d, got %d", c.name, c.code, code)
		}
	}
}
