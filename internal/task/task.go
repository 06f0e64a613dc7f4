package task

import (
	"errors"
	"fmt"
	"strings"
)

// Kind identifies the variant of a task. Its value is the tag used both in
// rendering and in the data file.
type Kind string

const (
	KindTodo     Kind = "T"
	KindDeadline Kind = "D"
	KindEvent    Kind = "E"
)

// Delimiter separates fields in the data file. Descriptions may not contain it.
const Delimiter = " / "

var (
	// ErrEmptyDescription is returned when a description is blank after trimming.
	ErrEmptyDescription = errors.New("task description is empty")
	// ErrDelimiterInDescription is returned when a description contains
	// Delimiter or ends with " /".
	ErrDelimiterInDescription = fmt.Errorf("task description contains %q", Delimiter)
	// ErrLineBreakInDescription is returned when a description spans more
	// than one line. The data file holds one task per line.
	ErrLineBreakInDescription = errors.New("task description contains a line break")
)

// Task is implemented by *Todo, *Deadline and *Event. The interface is sealed.
type Task interface {
	Kind() Kind
	Description() string
	IsDone() bool
	SetDone(done bool)
	StatusIcon() string
	DoneFlag() int
	String() string
	Accept(v Visitor)
	sealed()
}

// Visitor receives the concrete kind of a task from Accept.
type Visitor interface {
	VisitTodo(t *Todo)
	VisitDeadline(d *Deadline)
	VisitEvent(e *Event)
}

// base holds the fields shared by every kind.
type base struct {
	description string
	done        bool
}

func newBase(description string) (base, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return base{}, ErrEmptyDescription
	}
	if strings.ContainsAny(description, "\r\n") {
		return base{}, ErrLineBreakInDescription
	}
	// A trailing " /" would merge with the next field delimiter.
	if strings.Contains(description+" ", Delimiter) {
		return base{}, ErrDelimiterInDescription
	}
	return base{description: description}, nil
}

// Description returns the trimmed task description.
func (b *base) Description() string { return b.description }

// IsDone reports whether the task is marked as done.
func (b *base) IsDone() bool { return b.done }

// SetDone sets or clears the done flag.
func (b *base) SetDone(done bool) { b.done = done }

// StatusIcon returns "X" for a done task and " " otherwise.
func (b *base) StatusIcon() string {
	if b.done {
		return "X"
	}
	return " "
}

// DoneFlag returns 1 for a done task and 0 otherwise.
func (b *base) DoneFlag() int {
	if b.done {
		return 1
	}
	return 0
}

func (b *base) sealed() {}

func (b *base) render(kind Kind) string {
	return fmt.Sprintf("[%s][%s] %s", kind, b.StatusIcon(), b.description)
}

// Todo is a task with no date.
type Todo struct {
	base
}

// NewTodo returns a pending Todo.
func NewTodo(description string) (*Todo, error) {
	b, err := newBase(description)
	if err != nil {
		return nil, err
	}
	return &Todo{base: b}, nil
}

func (t *Todo) Kind() Kind       { return KindTodo }
func (t *Todo) String() string   { return t.render(KindTodo) }
func (t *Todo) Accept(v Visitor) { v.VisitTodo(t) }

// Deadline is a task due by a date.
type Deadline struct {
	base
	By Date
}

// NewDeadline returns a pending Deadline due on by.
func NewDeadline(description string, by Date) (*Deadline, error) {
	b, err := newBase(description)
	if err != nil {
		return nil, err
	}
	return &Deadline{base: b, By: by}, nil
}

func (d *Deadline) Kind() Kind { return KindDeadline }

func (d *Deadline) String() string {
	return fmt.Sprintf("%s (by: %s)", d.render(KindDeadline), d.By)
}

func (d *Deadline) Accept(v Visitor) { v.VisitDeadline(d) }

// Event is a task spanning from one date to another.
type Event struct {
	base
	From Date
	To   Date
}

// NewEvent returns a pending Event. from and to are not required to be ordered.
func NewEvent(description string, from, to Date) (*Event, error) {
	b, err := newBase(description)
	if err != nil {
		return nil, err
	}
	return &Event{base: b, From: from, To: to}, nil
}

func (e *Event) Kind() Kind { return KindEvent }

func (e *Event) String() string {
	return fmt.Sprintf("%s (from: %s to: %s)", e.render(KindEvent), e.From, e.To)
}

func (e *Event) Accept(v Visitor) { v.VisitEvent(e) }

// Equal reports whether a and b have the same kind, description, done flag
// and dates.
func Equal(a, b Task) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() || a.Description() != b.Description() || a.IsDone() != b.IsDone() {
		return false
	}
	switch at := a.(type) {
	case *Deadline:
		return at.By.Equal(b.(*Deadline).By)
	case *Event:
		bt := b.(*Event)
		return at.From.Equal(bt.From) && at.To.Equal(bt.To)
	}
	return true
}
