package config

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/ashleyclx/yapper/internal/datadir"
)

// findProjectConfigFile looks for a config file in dir.
func findProjectConfigFile(dir string) string {
	for _, name := range []string{datadir.ConfigFile, datadir.HiddenConfigFile} {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// findUserConfigFile looks for a user-level config file.
// Checks ~/.yapper/yapper.toml first, then the OS-specific config directory.
func findUserConfigFile() string {
	if home, err := os.UserHomeDir(); err == nil {
		p := datadir.UserConfigPath(home)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	if cfgDir := osUserConfigDir(); cfgDir != "" {
		p := filepath.Join(cfgDir, "yapper", datadir.ConfigFile)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	return ""
}

// osUserConfigDir returns the OS-specific user config directory, or "".
func osUserConfigDir() string {
	switch runtime.GOOS {
	case "windows":
		return os.Getenv("APPDATA")
	case "darwin":
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, "Library", "Application Support")
		}
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return xdg
		}
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, ".config")
		}
	}
	return ""
}
