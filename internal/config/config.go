// Package config loads benchkit settings from ~/.benchkit/config.yaml and
// BENCHKIT_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/idilsaglam/benchkit/internal/model"
)

// Storage backends.
const (
	StoreJSON   = "json"
	StoreSQLite = "sqlite"
	// StoreMemory keeps state for one process only.
	StoreMemory = "memory"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config is the merged configuration.
type Config struct {
	DataDir  string `yaml:"data-dir,omitempty" json:"data-dir,omitempty"`
	Store    string `yaml:"store,omitempty" json:"store,omitempty"`         // json (default), sqlite or memory
	LogLevel string `yaml:"log-level,omitempty" json:"log-level,omitempty"` // debug, info, warn, error
	LogFile  string `yaml:"log-file,omitempty" json:"log-file,omitempty"`   // empty disables logging in the TUI
	Addr     string `yaml:"addr,omitempty" json:"addr,omitempty"`           // listen address for serve
	Color    string `yaml:"color,omitempty" json:"color,omitempty"`         // auto, always, never

	// Checklist replaces the built-in checklist when non-empty.
	Checklist []model.Item `yaml:"checklist,omitempty" json:"checklist,omitempty"`
}

// Dir returns ~/.benchkit.
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".benchkit"
	}
	return filepath.Join(home, ".benchkit")
}

// Path returns ~/.benchkit/config.yaml.
func Path() string {
	return filepath.Join(Dir(), "config.yaml")
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		DataDir:  Dir(),
		Store:    StoreJSON,
		LogLevel: "info",
		Addr:     ":8080",
		Color:    ColorAuto,
	}
}

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

// Load reads path over the defaults, applies the environment and then each
// override in order, and validates the result. Overrides are how command
// line flags beat the environment. A missing file is not an error;
// validation failures wrap ErrInvalid.
func Load(path string, overrides ...func(*Config)) (Config, error) {
	cfg, err := read(path)
	if err != nil {
		return cfg, err
	}
	for _, o := range overrides {
		o(&cfg)
	}
	return cfg, cfg.Validate()
}

func read(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = Path()
	}
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return cfg, fmt.Errorf("read config: %w", err)
	default:
		var file Config
		if err := yaml.Unmarshal(data, &file); err != nil {
			return cfg, fmt.Errorf("parse config: %w", err)
		}
		cfg.merge(file)
	}
	cfg.applyEnv()
	return cfg, nil
}

// Save writes cfg as YAML to path, creating the directory.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0o600)
}

func (c *Config) merge(o Config) {
	if o.DataDir != "" {
		c.DataDir = expandHome(o.DataDir)
	}
	if o.Store != "" {
		c.Store = o.Store
	}
	if o.LogLevel != "" {
		c.LogLevel = o.LogLevel
	}
	if o.LogFile != "" {
		c.LogFile = expandHome(o.LogFile)
	}
	if o.Addr != "" {
		c.Addr = o.Addr
	}
	if o.Color != "" {
		c.Color = o.Color
	}
	if len(o.Checklist) > 0 {
		c.Checklist = o.Checklist
	}
}

func (c *Config) applyEnv() {
	c.merge(Config{
		DataDir:  os.Getenv("BENCHKIT_DATA_DIR"),
		Store:    os.Getenv("BENCHKIT_STORE"),
		LogLevel: os.Getenv("BENCHKIT_LOG_LEVEL"),
		LogFile:  os.Getenv("BENCHKIT_LOG_FILE"),
		Addr:     os.Getenv("BENCHKIT_ADDR"),
		Color:    os.Getenv("BENCHKIT_COLOR"),
	})
}

// Validate checks enumerated fields and checklist ids.
func (c *Config) Validate() error {
	switch c.Store {
	case StoreJSON, StoreSQLite, StoreMemory:
	default:
		return fmt.Errorf("%w: store must be %q, %q or %q, got %q", ErrInvalid, StoreJSON, StoreSQLite, StoreMemory, c.Store)
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("%w: color must be auto, always or never, got %q", ErrInvalid, c.Color)
	}
	seen := make(map[string]bool, len(c.Checklist))
	for _, it := range c.Checklist {
		id := strings.TrimSpace(it.ID)
		if id == "" {
			return fmt.Errorf("%w: checklist item %q has no id", ErrInvalid, it.Label)
		}
		if id == "theme" {
			return fmt.Errorf("%w: checklist id %q collides with the theme key", ErrInvalid, id)
		}
		if seen[id] {
			return fmt.Errorf("%w: duplicate checklist id %q", ErrInvalid, id)
		}
		seen[id] = true
	}
	return nil
}

func expandHome(p string) string {
	if p == "~" || strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(p, "~"))
		}
	}
	return p
}
