package storage

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/ashleyclx/yapper/internal/task"
	"github.com/ashleyclx/yapper/internal/tasklist"
)

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

type failingGateway struct {
	err error
}

func (g failingGateway) ReadAllLines(string) ([]string, error) { return nil, g.err }
func (g failingGateway) WriteAll(string, string) error         { return g.err }

func TestLoadCreatesMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "taskData.txt")
	store := NewStore(path)

	l := tasklist.New()
	report, err := store.Load(l)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if report.Loaded != 0 || l.Len() != 0 {
		t.Errorf("Load of missing file loaded %d tasks", l.Len())
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("data file was not created: %v", err)
	}
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taskData.txt")
	store := NewStore(path)
	original := sampleList(t)

	if err := store.Save(original); err != nil {
		t.Fatalf("Save: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if strings.HasSuffix(string(data), "\n") {
		t.Error("saved file should not end with a newline")
	}

	loaded := tasklist.New()
	if _, err := store.Load(loaded); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.List() != original.List() {
		t.Errorf("loaded list differs:\n%s\nwant\n%s", loaded.List(), original.List())
	}

	// Saving the loaded list again must reproduce the same file.
	if err := store.Save(loaded); err != nil {
		t.Fatalf("second Save: %v", err)
	}
	again, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !bytes.Equal(data, again) {
		t.Errorf("save/load/save changed the file:\n%s\nvs\n%s", data, again)
	}
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(filepath.Join(dir, "taskData.txt"))
	if err := store.Save(sampleList(t)); err != nil {
		t.Fatalf("Save: %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 {
		var names []string
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("directory holds %v, want only taskData.txt", names)
	}
}

func TestLoadSkipsCorruptLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taskData.txt")
	content := strings.Join([]string{
		"T / 0 / read book",
		"T / 7 / broken flag",
		"",
		"Q / 0 / unknown",
		"D / 1 / submit report / 2024-12-31\r",
	}, "\n")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	var logs bytes.Buffer
	logger := log.NewWithOptions(&logs, log.Options{Level: log.WarnLevel})
	store := NewStore(path, WithLogger(logger))

	l := tasklist.New()
	report, err := store.Load(l)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if report.Loaded != 2 || l.Len() != 2 {
		t.Fatalf("loaded %d tasks (report %d), want 2", l.Len(), report.Loaded)
	}
	if len(report.Skipped) != 2 {
		t.Fatalf("skipped %d lines, want 2", len(report.Skipped))
	}
	if report.Skipped[0].Line != 2 || !errors.Is(report.Skipped[0], ErrBadFlag) {
		t.Errorf("first skipped = %v, want line 2 bad flag", report.Skipped[0])
	}
	if report.Skipped[1].Line != 4 || !errors.Is(report.Skipped[1], ErrTagMismatch) {
		t.Errorf("second skipped = %v, want line 4 tag mismatch", report.Skipped[1])
	}
	if _, ok := l.Get(1).(*task.Deadline); !ok {
		t.Errorf("CRLF deadline line was not decoded, got %T", l.Get(1))
	}
	if strings.Count(logs.String(), "skipping corrupt line") != 2 {
		t.Errorf("expected two warnings, got:\n%s", logs.String())
	}
}

func TestLoadAbortPolicy(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taskData.txt")
	content := "T / 0 / first\nT / 0\nT / 0 / third"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	store := NewStore(path, WithPolicy(PolicyAbort))
	l := tasklist.New()
	report, err := store.Load(l)
	if !errors.Is(err, ErrFieldCount) {
		t.Fatalf("Load error = %v, want ErrFieldCount", err)
	}
	var ce *CorruptionError
	if !errors.As(err, &ce) || ce.Line != 2 {
		t.Errorf("error = %v, want line 2", err)
	}
	if report.Loaded != 1 || l.Len() != 1 {
		t.Errorf("loaded %d tasks, want the 1 before the bad line", l.Len())
	}
}

func TestLoadIOFailure(t *testing.T) {
	cause := errors.New("disk on fire")
	store := NewStore("x", WithGateway(failingGateway{err: cause}))

	l := tasklist.New()
	_, err := store.Load(l)
	if !errors.Is(err, ErrIO) || !errors.Is(err, cause) {
		t.Errorf("Load error = %v, want ErrIO wrapping cause", err)
	}
	if l.Len() != 0 {
		t.Errorf("failed load added %d tasks", l.Len())
	}
}

func TestSaveIOFailure(t *testing.T) {
	cause := errors.New("read-only")
	store := NewStore("x", WithGateway(failingGateway{err: cause}))
	if err := store.Save(sampleList(t)); !errors.Is(err, ErrIO) {
		t.Errorf("Save error = %v, want ErrIO", err)
	}
}

func TestParseCorruptPolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    CorruptPolicy
		wantErr bool
	}{
		{"", PolicySkip, false},
		{"skip", PolicySkip, false},
		{" Abort ", PolicyAbort, false},
		{"ignore", "", true},
	}
	for _, tt := range tests {
		got, err := ParseCorruptPolicy(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseCorruptPolicy(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseCorruptPolicy(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
