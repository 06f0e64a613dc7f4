// Package datadir provides constants and utilities for yapper's on-disk layout.
package datadir

import "path/filepath"

const (
	// Dir is the name of the directory that holds the task data file.
	Dir = "data"

	// DataFile is the task data file name (inside Dir).
	DataFile = "taskData.txt"

	// ConfigFile is the project and user config file name.
	ConfigFile = "yapper.toml"

	// HiddenConfigFile is the alternative project config file name.
	HiddenConfigFile = ".yapper.toml"

	// UserDir is the per-user directory under the home directory.
	UserDir = ".yapper"
)

// DefaultDataPath returns the relative data file path, data/taskData.txt.
func DefaultDataPath() string {
	return filepath.Join(Dir, DataFile)
}

// DataPath returns the data file path within a work directory.
func DataPath(workDir string) string {
	if workDir == "" || workDir == "." {
		return DefaultDataPath()
	}
	return filepath.Join(workDir, Dir, DataFile)
}

// UserConfigPath returns ~/.yapper/yapper.toml for the given home directory.
func UserConfigPath(home string) string {
	return filepath.Join(home, UserDir, ConfigFile)
}
