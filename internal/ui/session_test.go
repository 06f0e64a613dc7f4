package ui

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/ashleyclx/yapper/internal/parser"
	"github.com/ashleyclx/yapper/internal/tasklist"
)

type countingSaver struct {
	saves int
	last  string
}

func (s *countingSaver) Save(l *tasklist.TaskList) error {
	s.saves++
	s.last = l.List()
	return nil
}

func newTestSession(input io.Reader) (*Session, *countingSaver, *bytes.Buffer) {
	saver := &countingSaver{}
	out := &bytes.Buffer{}
	p := parser.New(tasklist.New(), saver)
	return NewSession(p, input, out), saver, out
}

func TestSessionRunsUntilBye(t *testing.T) {
	s, saver, out := newTestSession(strings.NewReader("todo read book\nlist\nbye\ntodo ignored\n"))

	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	got := out.String()
	for _, want := range []string{Greeting, "Got it. I've added this task:", "1. [T][ ] read book", parser.Farewell} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "ignored") {
		t.Errorf("lines after bye were applied:\n%s", got)
	}
	if saver.saves != 1 {
		t.Errorf("saves = %d, want 1", saver.saves)
	}
	if !strings.Contains(saver.last, "read book") {
		t.Errorf("saved list = %q", saver.last)
	}
}

func TestSessionSavesAtEndOfInput(t *testing.T) {
	s, saver, out := newTestSession(strings.NewReader("todo read book"))

	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if saver.saves != 1 {
		t.Errorf("saves = %d, want 1", saver.saves)
	}
	if !strings.HasSuffix(out.String(), parser.Farewell+"\n"+Separator+"\n") {
		t.Errorf("output should end with the farewell:\n%s", out.String())
	}
}

func TestSessionSavesOnCancel(t *testing.T) {
	r, w := io.Pipe()
	t.Cleanup(func() { w.Close() })
	s, saver, out := newTestSession(r)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := s.Run(ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if saver.saves != 1 {
		t.Errorf("saves = %d, want 1", saver.saves)
	}
	if !strings.Contains(out.String(), parser.Farewell) {
		t.Errorf("output missing farewell:\n%s", out.String())
	}
	// The reader was closed, so the pending read returned.
	if _, err := w.Write([]byte("todo late\n")); !errors.Is(err, io.ErrClosedPipe) {
		t.Errorf("write after cancel: got %v, want io.ErrClosedPipe", err)
	}
}

func TestSessionPrintsErrorsAndSkipsBlankLines(t *testing.T) {
	s, _, out := newTestSession(strings.NewReader("blah\n\n   \nmark 3\nbye\n"))

	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "blah") {
		t.Errorf("unknown command not reported:\n%s", got)
	}
	if !strings.Contains(got, "Your list is empty.") {
		t.Errorf("index error not reported:\n%s", got)
	}
	// greeting, two errors, farewell
	if n := strings.Count(got, Separator); n != 4 {
		t.Errorf("separators = %d, want 4:\n%s", n, got)
	}
}

func TestSessionReadError(t *testing.T) {
	boom := errors.New("boom")
	s, saver, _ := newTestSession(iotest.ErrReader(boom))

	err := s.Run(context.Background())
	if !errors.Is(err, boom) {
		t.Fatalf("Run error = %v, want %v", err, boom)
	}
	if saver.saves != 1 {
		t.Errorf("saves = %d, want 1", saver.saves)
	}
}

func TestIsTTY(t *testing.T) {
	if IsTTY(&bytes.Buffer{}) {
		t.Error("a buffer is not a terminal")
	}
}
