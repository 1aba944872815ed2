package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/alien-dash/internal/assets"
)

// EmbeddedSource is the Source of a config that came from the built-in defaults.
const EmbeddedSource = "embedded"

// Load loads the application configuration.
// Search order: customPath -> ~/.alien-dash/config.yaml -> ./configs/alien-dash.yaml -> embedded default.
// Only a failing customPath is an error; the implicit locations are skipped
// when missing or unparsable.
func Load(customPath string) (Config, string, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, "", fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Config{}, "", fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, userCfgPath, nil
			}
		}
	}

	// Try local configs directory
	localPath := filepath.Join("configs", "alien-dash.yaml")
	if data, err := os.ReadFile(localPath); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, localPath, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultYAML)
	if err != nil {
		return Default(), EmbeddedSource, nil // Fallback to hardcoded if embed fails
	}
	return cfg, EmbeddedSource, nil
}

// Parse decodes YAML over the built-in defaults, fills gaps and validates.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// normalize clamps numeric ranges and fills missing values from Default.
func (c *Config) normalize() {
	def := Default()

	c.Backend = strings.ToLower(strings.TrimSpace(c.Backend))
	if c.Backend == "" {
		c.Backend = def.Backend
	}
	if c.Window.Title == "" {
		c.Window.Title = def.Window.Title
	}
	if c.Window.Scale < 1 {
		c.Window.Scale = 1
	}
	c.Audio.MusicVolume = clampVolume(c.Audio.MusicVolume)
	c.Audio.SFXVolume = clampVolume(c.Audio.SFXVolume)
	c.Assets.Manifest = c.Assets.Manifest.Merge(assets.DefaultManifest())
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	if c.Log.Level == "" {
		c.Log.Level = def.Log.Level
	}
}

// Validate reports values that cannot be normalized away.
func (c Config) Validate() error {
	switch c.Backend {
	case BackendWindow, BackendTUI:
	default:
		return fmt.Errorf("config: unknown backend %q (want %q or %q)", c.Backend, BackendWindow, BackendTUI)
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	if unknown := c.Assets.Manifest.Unknown(); len(unknown) > 0 {
		return fmt.Errorf("config: unknown asset keys: %s", strings.Join(unknown, ", "))
	}
	return nil
}

func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".alien-dash", filename)
}

// DefaultLogPath returns ~/.alien-dash/alien-dash.log, or a file in the
// working directory when home is unavailable.
func DefaultLogPath() string {
	if p := userConfigPath("alien-dash.log"); p != "" {
		return p
	}
	return "alien-dash.log"
}
