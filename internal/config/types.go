package config

import "github.com/ashleyclx/yapper/internal/datadir"

// ConfigSource represents where a configuration value came from.
type ConfigSource string

const (
	SourceDefault  ConfigSource = "default"
	SourceUserFile ConfigSource = "user file"
	SourceProjFile ConfigSource = "project file"
	SourceEnv      ConfigSource = "environment"
	SourceFlag     ConfigSource = "flag"
)

// ConfigWithSources holds configuration along with source information for each field.
type ConfigWithSources struct {
	Config  *Config
	Sources map[string]ConfigSource
	// Files lists the config files that were merged, user file first.
	Files []string
}

// Default values.
const (
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"
	DefaultUI        = UIConsole
	DefaultOnCorrupt = OnCorruptSkip

	DefaultTUIAltScreen = true
	DefaultTUIHistory   = 50
)

// Interface modes.
const (
	UIConsole = "console"
	UITUI     = "tui"
)

// Corrupt line policies.
const (
	OnCorruptSkip  = "skip"
	OnCorruptAbort = "abort"
)

// DefaultDataFile is the data file path relative to the working directory.
var DefaultDataFile = datadir.DefaultDataPath()

// Config holds the resolved configuration.
type Config struct {
	// DataFile is the task data file. Relative paths resolve against WorkDir.
	DataFile string `toml:"data_file" json:"data_file"`

	LogLevel      string `toml:"log_level" json:"log_level"`
	LogFormat     string `toml:"log_format" json:"log_format"`
	LogTimestamps bool   `toml:"log_timestamps" json:"log_timestamps"`
	LogCaller     bool   `toml:"log_caller" json:"log_caller"`

	// UI selects the interactive front end: console or tui.
	UI string `toml:"ui" json:"ui"`

	// TUIAltScreen runs the tui on the terminal's alternate screen.
	TUIAltScreen bool `toml:"tui_alt_screen" json:"tui_alt_screen"`

	// TUIHistory is how many exchanges the tui transcript keeps.
	TUIHistory int `toml:"tui_history" json:"tui_history"`

	// OnCorrupt selects what loading does with a corrupt data line: skip or abort.
	OnCorrupt string `toml:"on_corrupt" json:"on_corrupt"`

	// WorkDir is the directory relative paths were resolved against.
	WorkDir string `toml:"-" json:"-"`
}

// configFields returns the list of configurable field names for source tracking.
func configFields() []string {
	return []string{
		"data_file",
		"log_level",
		"log_format",
		"log_timestamps",
		"log_caller",
		"ui",
		"tui_alt_screen",
		"tui_history",
		"on_corrupt",
	}
}

// setDefaults applies default values to the config.
func setDefaults(cfg *Config) {
	cfg.DataFile = DefaultDataFile
	cfg.LogLevel = DefaultLogLevel
	cfg.LogFormat = DefaultLogFormat
	cfg.LogTimestamps = false
	cfg.LogCaller = false
	cfg.UI = DefaultUI
	cfg.TUIAltScreen = DefaultTUIAltScreen
	cfg.TUIHistory = DefaultTUIHistory
	cfg.OnCorrupt = DefaultOnCorrupt
}
