// Package config loads memkit's TOML configuration. Command line flags
// override anything set here.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	configDir  = ".memkit"
	configFile = "config.toml"

	SourceVM   = "vm"
	SourceFile = "file"
)

type Config struct {
	// Log enables debug output for the components listed in LogOutput.
	Log       bool   `toml:"log"`
	LogOutput string `toml:"log_output"`
	// LogDest is a file path; empty logs to stderr.
	LogDest string `toml:"log_dest"`

	// Source selects how target memory is accessed: "vm" uses
	// process_vm_readv/writev, "file" uses /proc/<pid>/mem.
	Source string `toml:"source"`

	History string `toml:"history"`
	Prompt  string `toml:"prompt"`
}

func Default() Config {
	c := Config{}
	c.applyDefaults()
	return c
}

func (c *Config) applyDefaults() {
	if c.LogOutput == "" {
		c.LogOutput = "memory"
	}
	if c.Source == "" {
		c.Source = SourceVM
	}
	if c.History == "" {
		c.History = filepath.Join(homeDir(), configDir, "history")
	}
	if c.Prompt == "" {
		c.Prompt = "(memkit) "
	}
}

func (c Config) Validate() error {
	switch c.Source {
	case SourceVM, SourceFile:
	default:
		return fmt.Errorf("source must be %q or %q, got %q", SourceVM, SourceFile, c.Source)
	}
	return nil
}

// DefaultPath is ~/.memkit/config.toml.
func DefaultPath() string {
	return filepath.Join(homeDir(), configDir, configFile)
}

// Load reads path. A missing file is not an error when optional is set;
// defaults are returned instead. Unknown keys are rejected.
func Load(path string, optional bool) (Config, error) {
	var cfg Config

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("config load failed (%s): %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("config parse failed (%s): unknown keys %s", path, strings.Join(keys, ", "))
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config invalid (%s): %w", path, err)
	}
	return cfg, nil
}

func homeDir() string {
	if dir, err := os.UserHomeDir(); err == nil {
		return dir
	}
	return "."
}
