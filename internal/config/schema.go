package config

// Config is the root configuration structure.
type Config struct {
	Audio    AudioConfig    `toml:"audio"`
	Controls ControlsConfig `toml:"controls"`
	Library  LibraryConfig  `toml:"library"`
	TUI      TUIConfig      `toml:"tui"`
	Log      LogConfig      `toml:"log"`
}

// AudioConfig holds audio resource settings.
type AudioConfig struct {
	TimeUpdateInterval int `toml:"time_update_interval"` // milliseconds
	Buffer             int `toml:"buffer"`               // milliseconds
}

// ControlsConfig holds control surface behavior.
type ControlsConfig struct {
	SeekGuard  int     `toml:"seek_guard"` // milliseconds, 0 disables
	SeekStep   float64 `toml:"seek_step"`  // seconds
	VolumeStep float64 `toml:"volume_step"`
}

// LibraryConfig holds track discovery settings.
type LibraryConfig struct {
	Dir        string   `toml:"dir"`
	Extensions []string `toml:"extensions"`
}

// TUIConfig holds terminal UI settings.
type TUIConfig struct {
	Theme        string `toml:"theme"`
	DisableMouse bool   `toml:"disable_mouse"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}
