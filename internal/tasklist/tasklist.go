// Package tasklist holds the ordered, mutable list of tasks for a session.
package tasklist

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ashleyclx/yapper/internal/task"
)

// ErrIndexOutOfRange is returned when a 1-based position is outside [1, Len()].
var ErrIndexOutOfRange = errors.New("task index out of range")

// NoMatchesMessage is returned by Find when no description matches.
const NoMatchesMessage = "No matching tasks found."

// EmptyListMessage is returned by List when the list has no tasks.
const EmptyListMessage = "Your task list is empty."

// IndexError reports a 1-based position outside the list.
type IndexError struct {
	Index int
	Size  int
}

func (e *IndexError) Error() string {
	if e.TooLarge() {
		return fmt.Sprintf("task %d does not exist, the list has %s", e.Index, countTasks(e.Size))
	}
	return fmt.Sprintf("task %d does not exist, tasks are numbered from 1", e.Index)
}

// Unwrap returns ErrIndexOutOfRange.
func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}

// TooLarge reports whether the index is past the end rather than below 1.
func (e *IndexError) TooLarge() bool {
	return e.Index > e.Size
}

// TaskList is an ordered list of tasks. Positions shown to users are 1-based;
// Get takes a 0-based index. Deleting a task shifts later tasks down by one.
type TaskList struct {
	tasks []task.Task
}

// New returns an empty list.
func New() *TaskList {
	return &TaskList{}
}

// Len returns the number of tasks.
func (l *TaskList) Len() int {
	return len(l.tasks)
}

// Get returns the task at 0-based index i. It panics if i is out of range.
func (l *TaskList) Get(i int) task.Task {
	return l.tasks[i]
}

// CheckIndex returns an *IndexError if the 1-based position i is not in the list.
func (l *TaskList) CheckIndex(i int) error {
	if i < 1 || i > len(l.tasks) {
		return &IndexError{Index: i, Size: len(l.tasks)}
	}
	return nil
}

// Add appends t and returns a confirmation message.
func (l *TaskList) Add(t task.Task) string {
	l.tasks = append(l.tasks, t)
	return fmt.Sprintf("Got it. I've added this task:\n  %s\nNow you have %s in the list.",
		t, countTasks(len(l.tasks)))
}

// AddSilently appends t without producing a message. Used when restoring
// tasks from the data file.
func (l *TaskList) AddSilently(t task.Task) {
	l.tasks = append(l.tasks, t)
}

// Mark sets the done flag on the task at 1-based position i.
func (l *TaskList) Mark(i int) (string, error) {
	if err := l.CheckIndex(i); err != nil {
		return "", err
	}
	t := l.tasks[i-1]
	t.SetDone(true)
	return fmt.Sprintf("Nice! I've marked this task as done:\n  %s", t), nil
}

// Unmark clears the done flag on the task at 1-based position i.
func (l *TaskList) Unmark(i int) (string, error) {
	if err := l.CheckIndex(i); err != nil {
		return "", err
	}
	t := l.tasks[i-1]
	t.SetDone(false)
	return fmt.Sprintf("OK, I've marked this task as not done yet:\n  %s", t), nil
}

// Delete removes the task at 1-based position i.
func (l *TaskList) Delete(i int) (string, error) {
	if err := l.CheckIndex(i); err != nil {
		return "", err
	}
	removed := l.tasks[i-1]
	l.tasks = append(l.tasks[:i-1], l.tasks[i:]...)
	return fmt.Sprintf("Noted. I've removed this task:\n  %s\nNow you have %s in the list.",
		removed, countTasks(len(l.tasks))), nil
}

// List renders every task on its own line, prefixed by its 1-based position.
func (l *TaskList) List() string {
	if len(l.tasks) == 0 {
		return EmptyListMessage
	}
	var b strings.Builder
	b.WriteString("Here are the tasks in your list:")
	for i, t := range l.tasks {
		writeEntry(&b, i+1, t)
	}
	return b.String()
}

// Find renders the tasks whose description contains substr (case-sensitive),
// keeping their positions in the full list.
func (l *TaskList) Find(substr string) string {
	var b strings.Builder
	matches := 0
	for i, t := range l.tasks {
		if !strings.Contains(t.Description(), substr) {
			continue
		}
		if matches == 0 {
			b.WriteString("Here are the matching tasks in your list:")
		}
		writeEntry(&b, i+1, t)
		matches++
	}
	if matches == 0 {
		return NoMatchesMessage
	}
	return b.String()
}

func writeEntry(b *strings.Builder, pos int, t task.Task) {
	fmt.Fprintf(b, "\n%d. %s", pos, t)
}

func countTasks(n int) string {
	if n == 1 {
		return "1 task"
	}
	return fmt.Sprintf("%d tasks", n)
}
