package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/ashleyclx/yapper/internal/datadir"
)

// resolveDataFile turns a configured data file value into an absolute path.
// A blank value selects data/taskData.txt under workDir. $VARS and a
// leading ~ expand; any other relative path is joined to workDir.
func resolveDataFile(workDir, p string) string {
	p = strings.TrimSpace(p)
	if p == "" {
		return datadir.DataPath(workDir)
	}
	p = expandHome(os.ExpandEnv(p))
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(workDir, p)
}

// expandHome replaces a leading ~ with the user's home directory. Paths
// are left alone when the home directory is unknown.
func expandHome(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") && !strings.HasPrefix(p, "~"+string(filepath.Separator)) {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, p[1:])
}
