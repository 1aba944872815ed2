package config

import (
	_ "embed"

	"github.com/vovakirdan/alien-dash/internal/assets"
)

//go:embed defaults/alien-dash.yaml
var defaultYAML []byte

// Backend identifiers.
const (
	BackendWindow = "window"
	BackendTUI    = "tui"
)

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Backend: BackendWindow,
		Window: WindowConfig{
			Title: "Alien Dash Game",
			Scale: 1,
		},
		Audio: AudioConfig{
			MusicVolume: 0.5,
			SFXVolume:   1.0,
		},
		Assets: AssetsConfig{
			Manifest: assets.DefaultManifest(),
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
