package config

import (
	"os"
	"strconv"
	"strings"
)

// Environment variable names.
const (
	EnvDataFile      = "YAPPER_DATA_FILE"
	EnvLogLevel      = "YAPPER_LOG_LEVEL"
	EnvLogFormat     = "YAPPER_LOG_FORMAT"
	EnvLogTimestamps = "YAPPER_LOG_TIMESTAMPS"
	EnvLogCaller     = "YAPPER_LOG_CALLER"
	EnvUI            = "YAPPER_UI"
	EnvTUIAltScreen  = "YAPPER_TUI_ALT_SCREEN"
	EnvTUIHistory    = "YAPPER_TUI_HISTORY"
	EnvOnCorrupt     = "YAPPER_ON_CORRUPT"
)

// loadFromEnv overrides config from environment variables.
// If sources is non-nil, it records SourceEnv for each value taken.
func loadFromEnv(cfg *Config, sources map[string]ConfigSource) {
	set := func(field string) {
		if sources != nil {
			sources[field] = SourceEnv
		}
	}

	if v := os.Getenv(EnvDataFile); v != "" {
		cfg.DataFile = v
		set("data_file")
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = strings.ToLower(strings.TrimSpace(v))
		set("log_level")
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		cfg.LogFormat = strings.ToLower(strings.TrimSpace(v))
		set("log_format")
	}
	if v := os.Getenv(EnvLogTimestamps); v != "" {
		cfg.LogTimestamps = boolFromString(v)
		set("log_timestamps")
	}
	if v := os.Getenv(EnvLogCaller); v != "" {
		cfg.LogCaller = boolFromString(v)
		set("log_caller")
	}
	if v := os.Getenv(EnvUI); v != "" {
		cfg.UI = strings.ToLower(strings.TrimSpace(v))
		set("ui")
	}
	if v := os.Getenv(EnvTUIAltScreen); v != "" {
		cfg.TUIAltScreen = boolFromString(v)
		set("tui_alt_screen")
	}
	if v := os.Getenv(EnvTUIHistory); v != "" {
		// A value that is not a number becomes 0 and fails validation.
		n, _ := strconv.Atoi(strings.TrimSpace(v))
		cfg.TUIHistory = n
		set("tui_history")
	}
	if v := os.Getenv(EnvOnCorrupt); v != "" {
		cfg.OnCorrupt = strings.ToLower(strings.TrimSpace(v))
		set("on_corrupt")
	}
}

func boolFromString(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "1" || s == "true" || s == "yes" || s == "on"
}
