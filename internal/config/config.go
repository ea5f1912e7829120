// Package config loads the engine configuration. The loaded struct is
// the single source the scripting facade snapshots for scripts.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all engine configuration.
type Config struct {
	LogLevel string `yaml:"log_level"`

	// Data
	Data     string `yaml:"data"`
	Language string `yaml:"language"`

	// Gameplay
	Difficulty string `yaml:"difficulty"`

	// Video
	Fsaa        int     `yaml:"fsaa"`
	Vsync       bool    `yaml:"vsync"`
	Width       int     `yaml:"width"`
	Height      int     `yaml:"height"`
	ScaleFactor float64 `yaml:"scale_factor"`
	Fullscreen  bool    `yaml:"fullscreen"`
	ShowFPS     bool    `yaml:"show_fps"`
	MaxFPS      int     `yaml:"max_fps"`
	ShowPause   bool    `yaml:"show_pause"`

	// Audio
	NoSound bool    `yaml:"no_sound"`
	Sound   float64 `yaml:"sound"`
	Music   float64 `yaml:"music"`

	// Camera
	ZoomFar   float64 `yaml:"zoom_far"`
	ZoomNear  float64 `yaml:"zoom_near"`
	ZoomSpeed float64 `yaml:"zoom_speed"`

	// Input
	RepeatDelay int `yaml:"repeat_delay"`
	RepeatFreq  int `yaml:"repeat_freq"`

	// Development
	Devmode     bool   `yaml:"devmode"`
	DevAutosave bool   `yaml:"dev_autosave"`
	NoSave      bool   `yaml:"no_save"`
	LastVersion string `yaml:"last_version"`

	Console ConsoleConfig `yaml:"console"`

	// Universe holds the static universe lists the excerpted engine
	// needs (system names back the claim registry).
	Universe UniverseConfig `yaml:"universe"`

	// Plugins mounted into the data tree.
	Plugins []PluginEntry `yaml:"plugins"`
}

// ConsoleConfig configures the developer console.
type ConsoleConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
}

// UniverseConfig lists static universe data.
type UniverseConfig struct {
	Systems []string `yaml:"systems"`
}

// PluginEntry describes a mounted plugin in the config file.
type PluginEntry struct {
	Name            string `yaml:"name"`
	Author          string `yaml:"author"`
	Version         string `yaml:"version"`
	Description     string `yaml:"description"`
	Compatibility   string `yaml:"compatibility"`
	Mountpoint      string `yaml:"mountpoint"`
	Priority        int    `yaml:"priority"`
	Compatible      bool   `yaml:"compatible"`
	TotalConversion bool   `yaml:"total_conversion"`
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		LogLevel:    "info",
		Data:        "dat",
		Language:    "en",
		Difficulty:  "normal",
		Vsync:       true,
		Width:       1280,
		Height:      720,
		ScaleFactor: 1.0,
		MaxFPS:      60,
		Sound:       0.8,
		Music:       0.8,
		ZoomFar:     0.5,
		ZoomNear:    1.0,
		ZoomSpeed:   0.25,
		RepeatDelay: 500,
		RepeatFreq:  30,
		Console: ConsoleConfig{
			Addr: "127.0.0.1:4777",
		},
		Universe: UniverseConfig{
			Systems: []string{"Alteris", "Apez", "Delta Pavonis", "Gamma Polaris", "SaraSys"},
		},
	}
}

// Load reads the config from a YAML file. A missing file yields the
// defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}
