package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the user-tunable settings of the uvl command.
type Config struct {
	Prompt             string `yaml:"prompt"`
	ContinuationPrompt string `yaml:"continuation_prompt"`
	History            bool   `yaml:"history"`
	HistoryFile        string `yaml:"history_file"`
	SourceName         string `yaml:"source_name"`
	MaxEchoWidth       int    `yaml:"max_echo_width"` // 0 disables truncation
}

func defaultConfig() Config {
	return Config{
		Prompt:             "::> ",
		ContinuationPrompt: "... ",
		History:            true,
		HistoryFile:        ".uvl_history",
		SourceName:         "stdin",
	}
}

// configPath returns the configuration file to load and whether the user
// asked for it explicitly through UVL_CONFIG.
func configPath() (string, bool) {
	if path := os.Getenv("UVL_CONFIG"); path != "" {
		return path, true
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "", false
	}
	return filepath.Join(home, ".uvl.yaml"), false
}

// loadConfig reads path over the defaults. A missing file is only an error
// when required is set.
func loadConfig(path string, required bool) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return cfg, nil
		}
		return defaultConfig(), fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return defaultConfig(), fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.SourceName == "" {
		return errors.New("source_name must not be empty")
	}
	if c.MaxEchoWidth < 0 {
		return fmt.Errorf("max_echo_width must not be negative, got %d", c.MaxEchoWidth)
	}
	return nil
}

// historyPath resolves the history file relative to the home directory.
// An empty result disables history.
func (c Config) historyPath() string {
	if !c.History || c.HistoryFile == "" {
		return ""
	}
	if filepath.IsAbs(c.HistoryFile) {
		return c.HistoryFile
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ""
	}
	return filepath.Join(home, c.HistoryFile)
}
