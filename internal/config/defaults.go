package config

// Default returns a Config populated with sensible defaults.
func Default() *Config {
	return &Config{
		Audio: AudioConfig{
			TimeUpdateInterval: 250,
			Buffer:             100,
		},
		Controls: ControlsConfig{
			SeekGuard:  0,
			SeekStep:   5,
			VolumeStep: 10,
		},
		Library: LibraryConfig{
			Dir:        "~/Music",
			Extensions: []string{"mp3", "wav", "flac", "ogg"},
		},
		TUI: TUIConfig{
			Theme: "auto",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// ApplyDefaults fills in zero values with sensible defaults.
func (c *Config) ApplyDefaults() {
	d := Default()

	// Audio
	if c.Audio.TimeUpdateInterval == 0 {
		c.Audio.TimeUpdateInterval = d.Audio.TimeUpdateInterval
	}
	if c.Audio.Buffer == 0 {
		c.Audio.Buffer = d.Audio.Buffer
	}

	// Controls
	if c.Controls.SeekStep == 0 {
		c.Controls.SeekStep = d.Controls.SeekStep
	}
	if c.Controls.VolumeStep == 0 {
		c.Controls.VolumeStep = d.Controls.VolumeStep
	}

	// Library
	if c.Library.Dir == "" {
		c.Library.Dir = d.Library.Dir
	}
	if len(c.Library.Extensions) == 0 {
		c.Library.Extensions = d.Library.Extensions
	}

	// TUI
	if c.TUI.Theme == "" {
		c.TUI.Theme = d.TUI.Theme
	}

	// Log
	if c.Log.Level == "" {
		c.Log.Level = d.Log.Level
	}
}
