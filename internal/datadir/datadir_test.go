package datadir

import (
	"path/filepath"
	"testing"
)

func TestDataPath(t *testing.T) {
	tests := []struct {
		workDir string
		want    string
	}{
		{"", filepath.Join("data", "taskData.txt")},
		{".", filepath.Join("data", "taskData.txt")},
		{"/home/user/proj", filepath.Join("/home/user/proj", "data", "taskData.txt")},
	}
	for _, tt := range tests {
		if got := DataPath(tt.workDir); got != tt.want {
			t.Errorf("DataPath(%q) = %q, want %q", tt.workDir, got, tt.want)
		}
	}
}

func TestUserConfigPath(t *testing.T) {
	want := filepath.Join("/home/u", ".yapper", "yapper.toml")
	if got := UserConfigPath("/home/u"); got != want {
		t.Errorf("UserConfigPath = %q, want %q", got, want)
	}
}
