// Package config handles loading and saving user configuration for balloons.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/f3rmion/balloons/internal/a11y"
	"github.com/f3rmion/balloons/internal/describe"
	"gopkg.in/yaml.v3"
)

// FileName is the name of the configuration file inside the config directory.
const FileName = "config.yaml"

// Config holds all user configuration.
type Config struct {
	ShowCharges         string `yaml:"show_charges"` // all, diff or none
	WallVisible         bool   `yaml:"wall_visible"`
	GreenBalloonVisible bool   `yaml:"green_balloon_visible"`

	Strings    StringsConfig    `yaml:"strings"`
	Transcript TranscriptConfig `yaml:"transcript"`
	Playground PlaygroundConfig `yaml:"playground"`
}

// StringsConfig selects the description string table.
type StringsConfig struct {
	Mode string `yaml:"mode"` // normal or xss
	File string `yaml:"file"` // YAML overrides, optional
}

// TranscriptConfig controls the log of announced descriptions.
type TranscriptConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"` // defaults to transcript.db in the config directory
}

// PlaygroundConfig holds settings for the terminal playground.
type PlaygroundConfig struct {
	FPS      int     `yaml:"fps"`
	Step     float64 `yaml:"step"`      // balloon move per key press
	FineStep float64 `yaml:"fine_step"` // move with shift held
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		ShowCharges: string(describe.ShowAll),
		WallVisible: true,
		Strings: StringsConfig{
			Mode: string(a11y.ModeNormal),
		},
		Transcript: TranscriptConfig{
			Enabled: true,
		},
		Playground: PlaygroundConfig{
			FPS:      30,
			Step:     20,
			FineStep: 5,
		},
	}
}

// Validate checks enumerated and numeric fields.
func (c *Config) Validate() error {
	var errs []error
	if _, err := describe.ParseShowCharges(c.ShowCharges); err != nil {
		errs = append(errs, fmt.Errorf("show_charges: %w", err))
	}
	if _, err := a11y.ParseMode(c.Strings.Mode); err != nil {
		errs = append(errs, fmt.Errorf("strings.mode: %w", err))
	}
	if c.Playground.FPS <= 0 {
		errs = append(errs, fmt.Errorf("playground.fps must be positive, got %d", c.Playground.FPS))
	}
	if c.Playground.Step <= 0 || c.Playground.FineStep <= 0 {
		errs = append(errs, errors.New("playground steps must be positive"))
	}
	return errors.Join(errs...)
}

// Load reads configuration from a YAML file. Keys missing from the file keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return cfg, nil
}

// LoadOrDefault loads path, falling back to the defaults when the file does not exist.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Save writes configuration to a YAML file.
func Save(path string, cfg *Config) error {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// TranscriptPath returns the transcript database path, defaulting into dir.
func (c *Config) TranscriptPath(dir string) string {
	if c.Transcript.Path != "" {
		return c.Transcript.Path
	}
	return filepath.Join(dir, "transcript.db")
}

// GetConfigDir returns the default configuration directory.
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "balloons"), nil
}

// EnsureConfigDir creates the config directory if it doesn't exist.
func EnsureConfigDir() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}
