package storage

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/ashleyclx/yapper/internal/logging"
	"github.com/ashleyclx/yapper/internal/tasklist"
)

// CorruptPolicy decides what Load does with a line it cannot decode.
type CorruptPolicy string

const (
	// PolicySkip logs the bad line and keeps loading.
	PolicySkip CorruptPolicy = "skip"
	// PolicyAbort stops at the first bad line, keeping the tasks decoded so far.
	PolicyAbort CorruptPolicy = "abort"
)

// ParseCorruptPolicy maps a config string to a CorruptPolicy.
func ParseCorruptPolicy(s string) (CorruptPolicy, error) {
	switch CorruptPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case "", PolicySkip:
		return PolicySkip, nil
	case PolicyAbort:
		return PolicyAbort, nil
	}
	return "", fmt.Errorf("invalid corrupt-line policy %q (must be skip or abort)", s)
}

// LoadReport summarizes a Load.
type LoadReport struct {
	Loaded  int
	Skipped []*CorruptionError
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithGateway replaces the default FileGateway.
func WithGateway(g Gateway) StoreOption {
	return func(s *Store) {
		s.gateway = g
	}
}

// WithPolicy sets the corrupt-line policy. The default is PolicySkip.
func WithPolicy(p CorruptPolicy) StoreOption {
	return func(s *Store) {
		s.policy = p
	}
}

// WithLogger sets the logger used for load and save warnings.
func WithLogger(logger *log.Logger) StoreOption {
	return func(s *Store) {
		s.logger = logger
	}
}

// Store loads and saves a task list at a fixed path.
type Store struct {
	path    string
	gateway Gateway
	policy  CorruptPolicy
	logger  *log.Logger
}

// NewStore returns a Store for the data file at path.
func NewStore(path string, opts ...StoreOption) *Store {
	s := &Store{
		path:    path,
		gateway: FileGateway{},
		policy:  PolicySkip,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logging.Discard()
	}
	return s
}

// Path returns the data file path.
func (s *Store) Path() string {
	return s.path
}

// Load appends the tasks in the data file to l. Read failures wrap ErrIO and
// leave l untouched. With PolicyAbort the first corrupt line is returned as
// the error.
func (s *Store) Load(l *tasklist.TaskList) (LoadReport, error) {
	lines, err := s.gateway.ReadAllLines(s.path)
	if err != nil {
		s.logger.Warn("could not read data file, starting with an empty list", "path", s.path, "err", err)
		return LoadReport{}, fmt.Errorf("%w: %w", ErrIO, err)
	}
	return s.decode(lines, l)
}

func (s *Store) decode(lines []string, l *tasklist.TaskList) (LoadReport, error) {
	var report LoadReport
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		t, err := DecodeLine(line)
		if err != nil {
			var ce *CorruptionError
			if !errors.As(err, &ce) {
				return report, err
			}
			ce.Line = i + 1
			if s.policy == PolicyAbort {
				s.logger.Error("corrupt line in data file, stopping load", "path", s.path, "line", ce.Line, "err", ce)
				return report, ce
			}
			s.logger.Warn("skipping corrupt line in data file", "path", s.path, "line", ce.Line, "err", ce)
			report.Skipped = append(report.Skipped, ce)
			continue
		}
		l.AddSilently(t)
		report.Loaded++
	}
	s.logger.Debug("loaded tasks", "path", s.path, "loaded", report.Loaded, "skipped", len(report.Skipped))
	return report, nil
}

// Save writes every task in l to the data file. Failures wrap ErrIO.
func (s *Store) Save(l *tasklist.TaskList) error {
	if err := s.gateway.WriteAll(s.path, Encode(l)); err != nil {
		s.logger.Warn("could not save data file", "path", s.path, "err", err)
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	s.logger.Debug("saved tasks", "path", s.path, "count", l.Len())
	return nil
}
