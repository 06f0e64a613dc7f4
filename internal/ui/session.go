// Package ui provides the interactive front ends: a line-oriented console
// session and a bubbletea terminal UI. Both feed input lines to a
// parser.Parser and end with bye, which saves the list.
package ui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/ashleyclx/yapper/internal/logging"
	"github.com/ashleyclx/yapper/internal/parser"
)

// Greeting is printed when a session starts.
const Greeting = "Hello! I'm Yapper.\nWhat can I do for you?"

// Separator follows every response in the console session.
var Separator = strings.Repeat("_", 60)

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithSessionLogger sets the logger for session events.
func WithSessionLogger(logger *log.Logger) SessionOption {
	return func(s *Session) {
		s.logger = logger
	}
}

// Session is the console read-eval-print loop.
type Session struct {
	parser *parser.Parser
	in     io.Reader
	out    io.Writer
	logger *log.Logger
}

// NewSession returns a console session reading from in and writing to out.
func NewSession(p *parser.Parser, in io.Reader, out io.Writer, opts ...SessionOption) *Session {
	s := &Session{parser: p, in: in, out: out}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logging.Discard()
	}
	return s
}

type lineResult struct {
	line string
	err  error
	eof  bool
}

// Run prints the greeting and applies input lines until bye, end of input,
// or ctx is cancelled. The list is saved in every case. Blank lines are
// ignored. The returned error reports a failure to read input.
//
// Input is read on a separate goroutine. If the input is an io.Closer it is
// closed when Run returns, which releases that goroutine for readers whose
// Close interrupts a pending Read (pipes, sockets). Otherwise the goroutine
// stays blocked until the pending Read returns.
func (s *Session) Run(ctx context.Context) error {
	s.print(Greeting)

	lines := make(chan lineResult)
	done := make(chan struct{})
	defer close(done)
	if c, ok := s.in.(io.Closer); ok {
		defer c.Close()
	}
	go s.readLines(lines, done)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("session interrupted, saving", "reason", ctx.Err())
			s.finish()
			return nil
		case r := <-lines:
			if r.err != nil {
				s.logger.Error("reading input", "err", r.err)
				s.finish()
				return fmt.Errorf("reading input: %w", r.err)
			}
			if r.eof {
				s.logger.Debug("end of input, saving")
				s.finish()
				return nil
			}
			if strings.TrimSpace(r.line) == "" {
				continue
			}
			if s.apply(r.line) {
				return nil
			}
		}
	}
}

// apply runs one line and reports whether the session should end.
func (s *Session) apply(line string) bool {
	resp, err := s.parser.Parse(line)
	if err != nil {
		s.print(err.Error())
		return false
	}
	s.print(resp.Text)
	return resp.Exit
}

func (s *Session) finish() {
	s.apply(string(parser.CmdBye))
}

func (s *Session) print(text string) {
	fmt.Fprintln(s.out, text)
	fmt.Fprintln(s.out, Separator)
}

func (s *Session) readLines(lines chan<- lineResult, done <-chan struct{}) {
	scanner := bufio.NewScanner(s.in)
	for scanner.Scan() {
		select {
		case lines <- lineResult{line: scanner.Text()}:
		case <-done:
			return
		}
	}
	r := lineResult{eof: true}
	if err := scanner.Err(); err != nil {
		r = lineResult{err: err}
	}
	select {
	case lines <- r:
	case <-done:
	}
}

// IsTTY returns true if w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
