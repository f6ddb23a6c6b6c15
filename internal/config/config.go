package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"slipbox/internal/address"
	"slipbox/internal/format"
	"slipbox/internal/logger"

	"gopkg.in/yaml.v3"
)

const fileName = "config.yaml"

type Config struct {
	Outline OutlineConfig `yaml:"outline" json:"outline"`
	Display DisplayConfig `yaml:"display" json:"display"`
	Log     LogConfig     `yaml:"log" json:"log"`
}

type OutlineConfig struct {
	// Count is the number of demo items generated when no labels file is given.
	Count int `yaml:"count,omitempty" json:"count,omitempty"`
	// StepWeighting selects the random walk preset (deep|wide|balanced).
	StepWeighting string `yaml:"stepWeighting,omitempty" json:"stepWeighting,omitempty"`
	// Seed makes generated outlines reproducible. 0 means a fresh seed per run.
	Seed int64 `yaml:"seed,omitempty" json:"seed,omitempty"`
	// Labels is an optional file with one label per line.
	Labels string `yaml:"labels,omitempty" json:"labels,omitempty"`
}

type DisplayConfig struct {
	Mode   format.Display `yaml:"mode,omitempty" json:"mode,omitempty"`
	Indent *bool          `yaml:"indent,omitempty" json:"indent,omitempty"`
}

type LogConfig struct {
	Level  string `yaml:"level,omitempty" json:"level,omitempty"`
	Format string `yaml:"format,omitempty" json:"format,omitempty"`
	// File receives TUI logs; the TUI never logs to the terminal it draws on.
	File string `yaml:"file,omitempty" json:"file,omitempty"`
}

func Default() *Config {
	indent := true
	return &Config{
		Outline: OutlineConfig{Count: 100, StepWeighting: address.DefaultWeighting.Name},
		Display: DisplayConfig{Mode: format.DisplayPrefix, Indent: &indent},
		Log:     LogConfig{Level: "info", Format: string(logger.FormatText)},
	}
}

// Indent reports the indentation preference (default on).
func (c *Config) Indent() bool {
	return c.Display.Indent == nil || *c.Display.Indent
}

func (c *Config) Validate() error {
	if c.Outline.Count < 0 {
		return fmt.Errorf("outline.count must be >= 0 (got %d)", c.Outline.Count)
	}
	if _, err := address.ParseStepWeighting(c.Outline.StepWeighting); err != nil {
		return fmt.Errorf("outline.stepWeighting: %w", err)
	}
	if _, err := format.ParseDisplay(string(c.Display.Mode)); err != nil {
		return fmt.Errorf("display.mode: %w", err)
	}
	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	if _, err := logger.ParseFormat(c.Log.Format); err != nil {
		return fmt.Errorf("log.format: %w", err)
	}
	return nil
}

func Dir() (string, error) {
	// Test/advanced override (keeps unit tests from touching ~/.slipbox).
	if v := strings.TrimSpace(os.Getenv("SLIPBOX_CONFIG_DIR")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".slipbox"), nil
}

func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, fileName), nil
}

// Load reads the config file over the defaults. A missing file is not an error.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	return LoadFile(path)
}

func LoadFile(path string) (*Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to the default location.
func Save(cfg *Config) error {
	path, err := Path()
	if err != nil {
		return err
	}
	return SaveFile(path, cfg)
}

func SaveFile(path string, cfg *Config) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	b, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	// Unique temp name + rename so a concurrent CLI and TUI never see a torn file.
	return atomicWriteFile(dir, fileName+".*.tmp", path, b, 0o600)
}

func atomicWriteFile(dir, tmpPattern, path string, b []byte, perm os.FileMode) error {
	f, err := os.CreateTemp(dir, tmpPattern)
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() { _ = os.Remove(tmp) }()
	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	_ = os.Chmod(tmp, perm)
	return os.Rename(tmp, path)
}
