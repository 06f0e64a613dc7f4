package task

import (
	"errors"
	"testing"
	"time"
)

func mustDate(t *testing.T, s string) Date {
	t.Helper()
	d, err := ParseDate(s)
	if err != nil {
		t.Fatalf("ParseDate(%q): %v", s, err)
	}
	return d
}

func TestRender(t *testing.T) {
	todo, err := NewTodo("read book")
	if err != nil {
		t.Fatalf("NewTodo: %v", err)
	}
	deadline, err := NewDeadline("submit report", mustDate(t, "2024-12-31"))
	if err != nil {
		t.Fatalf("NewDeadline: %v", err)
	}
	event, err := NewEvent("party", mustDate(t, "2024-01-01"), mustDate(t, "2024-01-02"))
	if err != nil {
		t.Fatalf("NewEvent: %v", err)
	}

	tests := []struct {
		name string
		task Task
		want string
	}{
		{"todo", todo, "[T][ ] read book"},
		{"deadline", deadline, "[D][ ] submit report (by: 2024-12-31)"},
		{"event", event, "[E][ ] party (from: 2024-01-01 to: 2024-01-02)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.task.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDoneState(t *testing.T) {
	todo, err := NewTodo("read book")
	if err != nil {
		t.Fatalf("NewTodo: %v", err)
	}
	if todo.IsDone() || todo.StatusIcon() != " " || todo.DoneFlag() != 0 {
		t.Fatalf("new task should be pending, got icon %q flag %d", todo.StatusIcon(), todo.DoneFlag())
	}

	todo.SetDone(true)
	if !todo.IsDone() || todo.StatusIcon() != "X" || todo.DoneFlag() != 1 {
		t.Errorf("after SetDone(true): icon %q flag %d", todo.StatusIcon(), todo.DoneFlag())
	}
	if got := todo.String(); got != "[T][X] read book" {
		t.Errorf("String() = %q", got)
	}

	todo.SetDone(false)
	if todo.IsDone() {
		t.Error("SetDone(false) left the task done")
	}
}

func TestDescriptionValidation(t *testing.T) {
	tests := []struct {
		name    string
		desc    string
		want    string
		wantErr error
	}{
		{"trimmed", "  read book  ", "read book", nil},
		{"empty", "", "", ErrEmptyDescription},
		{"blank", "   ", "", ErrEmptyDescription},
		{"delimiter", "a / b", "", ErrDelimiterInDescription},
		{"trailing slash", "a /", "", ErrDelimiterInDescription},
		{"newline", "first\nsecond", "", ErrLineBreakInDescription},
		{"carriage return", "first\rsecond", "", ErrLineBreakInDescription},
		{"trailing newline trimmed", "first\n", "first", nil},
		{"slash without spaces", "a/b", "a/b", nil},
		{"leading slash", "/ a", "/ a", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			todo, err := NewTodo(tt.desc)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("NewTodo(%q) error = %v, want %v", tt.desc, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewTodo(%q): %v", tt.desc, err)
			}
			if todo.Description() != tt.want {
				t.Errorf("Description() = %q, want %q", todo.Description(), tt.want)
			}
		})
	}
}

func TestEarliestDateAccepted(t *testing.T) {
	first := mustDate(t, "0001-01-01")
	d, err := NewDeadline("x", first)
	if err != nil {
		t.Fatalf("NewDeadline: %v", err)
	}
	if got, want := d.String(), "[D][ ] x (by: 0001-01-01)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if _, err := NewEvent("x", first, NewDate(2024, time.January, 1)); err != nil {
		t.Errorf("NewEvent: %v", err)
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{"2024-12-31", false},
		{"0001-01-01", false},
		{"2024-02-29", false},
		{"2023-02-29", true},
		{"2024-02-30", true},
		{"2024-1-01", true},
		{"24-01-01", true},
		{"31/12/2024", true},
		{"", true},
		{"2024-12-31T10:00", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			d, err := ParseDate(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrBadDate) {
					t.Errorf("ParseDate(%q) error = %v, want ErrBadDate", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDate(%q): %v", tt.in, err)
			}
			if d.String() != tt.in {
				t.Errorf("String() = %q, want %q", d.String(), tt.in)
			}
		})
	}
}

func TestDateHelpers(t *testing.T) {
	d := NewDate(2024, time.December, 31)
	if got := d.AddDays(1).String(); got != "2025-01-01" {
		t.Errorf("AddDays(1) = %s", got)
	}
	if !d.Equal(mustDate(t, "2024-12-31")) {
		t.Error("Equal should match the parsed date")
	}
	if !(Date{}).Equal(mustDate(t, "0001-01-01")) {
		t.Error("zero Date should be 0001-01-01")
	}
}

type kindRecorder struct {
	kinds []Kind
}

func (r *kindRecorder) VisitTodo(*Todo)         { r.kinds = append(r.kinds, KindTodo) }
func (r *kindRecorder) VisitDeadline(*Deadline) { r.kinds = append(r.kinds, KindDeadline) }
func (r *kindRecorder) VisitEvent(*Event)       { r.kinds = append(r.kinds, KindEvent) }

func TestAccept(t *testing.T) {
	day := NewDate(2024, time.March, 1)
	todo, _ := NewTodo("a")
	deadline, _ := NewDeadline("b", day)
	event, _ := NewEvent("c", day, day)

	rec := &kindRecorder{}
	for _, task := range []Task{todo, deadline, event} {
		task.Accept(rec)
	}

	want := []Kind{KindTodo, KindDeadline, KindEvent}
	if len(rec.kinds) != len(want) {
		t.Fatalf("visited %v, want %v", rec.kinds, want)
	}
	for i := range want {
		if rec.kinds[i] != want[i] {
			t.Errorf("visit %d = %s, want %s", i, rec.kinds[i], want[i])
		}
	}
}

func TestEqual(t *testing.T) {
	day := NewDate(2024, time.March, 1)
	a, _ := NewEvent("c", day, day.AddDays(1))
	b, _ := NewEvent("c", day, day.AddDays(1))
	c, _ := NewEvent("c", day, day)
	todo, _ := NewTodo("c")

	if !Equal(a, b) {
		t.Error("identical events should be equal")
	}
	if Equal(a, c) {
		t.Error("events with different to dates should differ")
	}
	if Equal(a, todo) {
		t.Error("different kinds should differ")
	}
	b.SetDone(true)
	if Equal(a, b) {
		t.Error("different done flags should differ")
	}
}
