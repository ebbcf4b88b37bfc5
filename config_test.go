package main

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()

	cfg, err := loadConfig(writeFile(t, dir, "full.yaml", `
prompt: "uvl> "
continuation_prompt: "  | "
history: false
history_file: /tmp/uvl_history
source_name: console
max_echo_width: 40
`), true)
	if err != nil {
		t.Fatalf("loadConfig error: %v", err)
	}
	want := Config{
		Prompt:             "uvl> ",
		ContinuationPrompt: "  | ",
		History:            false,
		HistoryFile:        "/tmp/uvl_history",
		SourceName:         "console",
		MaxEchoWidth:       40,
	}
	if cfg != want {
		t.Fatalf("config = %+v, want %+v", cfg, want)
	}
	if cfg.historyPath() != "" {
		t.Fatalf("history disabled, expected empty path, got %q", cfg.historyPath())
	}

	partial, err := loadConfig(writeFile(t, dir, "partial.yaml", "prompt: \"> \"\n"), true)
	if err != nil {
		t.Fatalf("loadConfig error: %v", err)
	}
	if partial.Prompt != "> " || partial.SourceName != "stdin" || !partial.History {
		t.Fatalf("partial config should keep defaults, got %+v", partial)
	}

	empty, err := loadConfig(writeFile(t, dir, "empty.yaml", ""), true)
	if err != nil {
		t.Fatalf("empty file should be accepted: %v", err)
	}
	if empty != defaultConfig() {
		t.Fatalf("empty file should yield defaults, got %+v", empty)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "absent.yaml")
	cfg, err := loadConfig(missing, false)
	if err != nil {
		t.Fatalf("optional missing file should not fail: %v", err)
	}
	if cfg != defaultConfig() {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
	if _, err := loadConfig(missing, true); err == nil {
		t.Fatalf("expected error for missing required config")
	}
	if cfg, err := loadConfig("", false); err != nil || cfg != defaultConfig() {
		t.Fatalf("empty path should yield defaults, got %+v err=%v", cfg, err)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name     string
		content  string
		contains string
	}{
		{"unknown-key", "colour: red\n", "colour"},
		{"bad-type", "history: sometimes\n", "parse"},
		{"negative-width", "max_echo_width: -1\n", "max_echo_width must not be negative"},
		{"empty-source", "source_name: \"\"\n", "source_name must not be empty"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			path := writeFile(t, dir, tc.name+".yaml", tc.content)
			cfg, err := loadConfig(path, true)
			if err == nil {
				t.Fatalf("expected error for %q", tc.content)
			}
			if !strings.Contains(err.Error(), tc.contains) {
				t.Fatalf("error %q does not mention %q", err, tc.contains)
			}
			if cfg != defaultConfig() {
				t.Fatalf("failed load should return defaults, got %+v", cfg)
			}
		})
	}
}

func TestConfigPath(t *testing.T) {
	t.Setenv("UVL_CONFIG", "/etc/uvl.yaml")
	if path, required := configPath(); path != "/etc/uvl.yaml" || !required {
		t.Fatalf("configPath = %q, %v", path, required)
	}

	home := t.TempDir()
	t.Setenv("UVL_CONFIG", "")
	t.Setenv("HOME", home)
	if path, required := configPath(); path != filepath.Join(home, ".uvl.yaml") || required {
		t.Fatalf("configPath = %q, %v", path, required)
	}
}

func TestHistoryPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	cfg := defaultConfig()
	if got := cfg.historyPath(); got != filepath.Join(home, ".uvl_history") {
		t.Fatalf("historyPath = %q", got)
	}
	cfg.HistoryFile = "/var/tmp/h"
	if got := cfg.historyPath(); got != "/var/tmp/h" {
		t.Fatalf("absolute history path = %q", got)
	}
	cfg.HistoryFile = ""
	if got := cfg.historyPath(); got != "" {
		t.Fatalf("empty history file should disable history, got %q", got)
	}
}
