package storage

import (
	"fmt"
	"strings"

	"github.com/ashleyclx/yapper/internal/task"
	"github.com/ashleyclx/yapper/internal/tasklist"
)

// Encode renders every task in l, in order, one per line.
func Encode(l *tasklist.TaskList) string {
	lines := make([]string, 0, l.Len())
	for i := 0; i < l.Len(); i++ {
		lines = append(lines, EncodeTask(l.Get(i)))
	}
	return strings.Join(lines, "\n")
}

// EncodeTask renders a single task as a data file line.
func EncodeTask(t task.Task) string {
	enc := &lineEncoder{}
	t.Accept(enc)
	return enc.line
}

type lineEncoder struct {
	line string
}

func (e *lineEncoder) VisitTodo(t *task.Todo) {
	e.line = joinFields(t, nil)
}

func (e *lineEncoder) VisitDeadline(d *task.Deadline) {
	e.line = joinFields(d, []task.Date{d.By})
}

func (e *lineEncoder) VisitEvent(ev *task.Event) {
	e.line = joinFields(ev, []task.Date{ev.From, ev.To})
}

func joinFields(t task.Task, dates []task.Date) string {
	fields := []string{string(t.Kind()), fmt.Sprint(t.DoneFlag()), t.Description()}
	for _, d := range dates {
		fields = append(fields, d.String())
	}
	return strings.Join(fields, task.Delimiter)
}

// DecodeLine parses a single data file line. Errors are *CorruptionError
// with Line left at 0.
func DecodeLine(line string) (task.Task, error) {
	fields := strings.Split(line, task.Delimiter)
	kind := task.Kind(fields[0])

	switch kind {
	case task.KindTodo:
		if err := checkFieldCount(kind, fields, 3); err != nil {
			return nil, err
		}
		done, err := parseFlag(fields[1])
		if err != nil {
			return nil, err
		}
		t, err := task.NewTodo(fields[2])
		if err != nil {
			return nil, corruptf(ErrBadDescription, "%v", err)
		}
		t.SetDone(done)
		return t, nil

	case task.KindDeadline:
		if err := checkFieldCount(kind, fields, 4); err != nil {
			return nil, err
		}
		done, err := parseFlag(fields[1])
		if err != nil {
			return nil, err
		}
		by, err := parseDate("by", fields[3])
		if err != nil {
			return nil, err
		}
		d, err := task.NewDeadline(fields[2], by)
		if err != nil {
			return nil, corruptf(ErrBadDescription, "%v", err)
		}
		d.SetDone(done)
		return d, nil

	case task.KindEvent:
		if err := checkFieldCount(kind, fields, 5); err != nil {
			return nil, err
		}
		done, err := parseFlag(fields[1])
		if err != nil {
			return nil, err
		}
		from, err := parseDate("from", fields[3])
		if err != nil {
			return nil, err
		}
		to, err := parseDate("to", fields[4])
		if err != nil {
			return nil, err
		}
		e, err := task.NewEvent(fields[2], from, to)
		if err != nil {
			return nil, corruptf(ErrBadDescription, "%v", err)
		}
		e.SetDone(done)
		return e, nil
	}

	return nil, corruptf(ErrTagMismatch, "%q is not one of T, D, E", fields[0])
}

func checkFieldCount(kind task.Kind, fields []string, want int) error {
	if len(fields) != want {
		return corruptf(ErrFieldCount, "%s line has %d fields, want %d", kind, len(fields), want)
	}
	return nil
}

func parseFlag(s string) (bool, error) {
	switch s {
	case "0":
		return false, nil
	case "1":
		return true, nil
	}
	return false, corruptf(ErrBadFlag, "got %q", s)
}

func parseDate(field, s string) (task.Date, error) {
	d, err := task.ParseDate(s)
	if err != nil {
		return task.Date{}, corruptf(ErrBadDate, "%s field %q", field, s)
	}
	return d, nil
}
