package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Load reads configuration from standard locations with environment overrides.
// Search order: ~/.playbarrc, $XDG_CONFIG_HOME/playbar/config.toml, ~/.config/playbar/config.toml
func Load() (*Config, error) {
	cfg := &Config{}

	path := FindConfigFile()
	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, err
		}
	}

	cfg.ApplyDefaults()
	applyEnvOverrides(cfg)

	return cfg, nil
}

// LoadFrom reads configuration from a specific file path.
func LoadFrom(path string) (*Config, error) {
	cfg := &Config{}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}
	cfg.ApplyDefaults()
	applyEnvOverrides(cfg)
	return cfg, nil
}

// FindConfigFile returns the first existing config file path.
func FindConfigFile() string {
	for _, p := range searchPaths() {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// DefaultPath returns where a new config file is written.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".playbarrc"
	}
	return filepath.Join(home, ".playbarrc")
}

func searchPaths() []string {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}

	paths := []string{
		filepath.Join(home, ".playbarrc"),
	}

	xdgConfig := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfig == "" {
		xdgConfig = filepath.Join(home, ".config")
	}
	return append(paths, filepath.Join(xdgConfig, "playbar", "config.toml"))
}

// applyEnvOverrides applies environment variable overrides to the config.
func applyEnvOverrides(cfg *Config) {
	// Audio
	if v := os.Getenv("PLAYBAR_AUDIO_TIME_UPDATE_INTERVAL"); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			cfg.Audio.TimeUpdateInterval = i
		}
	}

	// Controls
	if v := os.Getenv("PLAYBAR_CONTROLS_SEEK_GUARD"); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			cfg.Controls.SeekGuard = i
		}
	}

	// Library
	if v := os.Getenv("PLAYBAR_LIBRARY_DIR"); v != "" {
		cfg.Library.Dir = v
	}

	// TUI
	if v := os.Getenv("PLAYBAR_TUI_THEME"); v != "" {
		cfg.TUI.Theme = v
	}
	if v := os.Getenv("PLAYBAR_TUI_DISABLE_MOUSE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.TUI.DisableMouse = b
		}
	}

	// Log
	if v := os.Getenv("PLAYBAR_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("PLAYBAR_LOG_FILE"); v != "" {
		cfg.Log.File = v
	}
}

// TimeUpdateIntervalDuration returns the audio notification period.
func (c *AudioConfig) TimeUpdateIntervalDuration() time.Duration {
	return time.Duration(c.TimeUpdateInterval) * time.Millisecond
}

// BufferDuration returns the speaker buffer length.
func (c *AudioConfig) BufferDuration() time.Duration {
	return time.Duration(c.Buffer) * time.Millisecond
}

// SeekGuardDuration returns the stale time-update suppression window.
func (c *ControlsConfig) SeekGuardDuration() time.Duration {
	return time.Duration(c.SeekGuard) * time.Millisecond
}

// LibraryDir returns the library directory with a leading ~ expanded.
func (c *LibraryConfig) LibraryDir() string {
	if c.Dir == "~" || strings.HasPrefix(c.Dir, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(c.Dir, "~"))
		}
	}
	return c.Dir
}
