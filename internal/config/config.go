// Package config provides YAML-based configuration loading for the game
// binary: backend choice, window, audio, asset manifest and logging.
package config

import "github.com/vovakirdan/alien-dash/internal/assets"

// Config is the full application configuration.
type Config struct {
	Backend string       `yaml:"backend"` // "window" or "tui"
	Window  WindowConfig `yaml:"window"`
	Audio   AudioConfig  `yaml:"audio"`
	Assets  AssetsConfig `yaml:"assets"`
	Log     LogConfig    `yaml:"log"`
}

// WindowConfig defines the desktop window.
type WindowConfig struct {
	Title string `yaml:"title"`
	Scale int    `yaml:"scale"` // Integer window scale over the 800x400 viewport
}

// AudioConfig defines playback levels.
type AudioConfig struct {
	MusicVolume float64 `yaml:"music_volume"` // 0.0 - 1.0
	SFXVolume   float64 `yaml:"sfx_volume"`   // 0.0 - 1.0
	Muted       bool    `yaml:"muted"`
}

// AssetsConfig locates the asset tree. An empty Dir selects the embedded
// assets; Manifest entries override the default paths one by one.
type AssetsConfig struct {
	Dir      string          `yaml:"dir"`
	Manifest assets.Manifest `yaml:",inline"`
}

// LogConfig defines logger output.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // Used by the terminal backend; empty = ~/.alien-dash/alien-dash.log
}
