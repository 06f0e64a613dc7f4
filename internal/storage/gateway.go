package storage

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Gateway moves raw text between the codec and wherever the data lives.
type Gateway interface {
	// ReadAllLines returns every line of path, creating an empty file
	// (and its directory) if it does not exist.
	ReadAllLines(path string) ([]string, error)
	// WriteAll replaces the contents of path with text.
	WriteAll(path, text string) error
}

// FileGateway is the Gateway backed by the local filesystem.
type FileGateway struct{}

// ReadAllLines implements Gateway. A trailing carriage return is stripped
// from each line.
func (FileGateway) ReadAllLines(path string) ([]string, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	file, err := os.OpenFile(path, os.O_RDONLY|os.O_CREATE, 0644)
	if err != nil {
		return nil, fmt.Errorf("open data file: %w", err)
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read data file: %w", err)
	}
	return lines, nil
}

// WriteAll implements Gateway. The text is written to a temporary file in the
// same directory and renamed over path, so readers never see a partial file.
func (FileGateway) WriteAll(path, text string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	cleanup := func() { os.Remove(tmpPath) }

	if _, err := tmp.WriteString(text); err != nil {
		tmp.Close()
		cleanup()
		return fmt.Errorf("write data file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return fmt.Errorf("close data file: %w", err)
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		cleanup()
		return fmt.Errorf("chmod data file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		cleanup()
		return fmt.Errorf("replace data file: %w", err)
	}
	return nil
}
