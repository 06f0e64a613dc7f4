// Package calendar exports dated tasks as an iCalendar (RFC 5545) feed.
//
// Deadlines become all-day events on their due date and events become
// all-day events spanning from..to inclusive. Todos carry no date and are
// left out.
package calendar

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/ashleyclx/yapper/internal/logging"
	"github.com/ashleyclx/yapper/internal/task"
	"github.com/ashleyclx/yapper/internal/tasklist"
)

// ProductID identifies yapper as the producer of exported calendars.
const ProductID = "-//yapper//task export//EN"

// Categories attached to exported events.
const (
	CategoryDeadline = "DEADLINE"
	CategoryEvent    = "EVENT"
	CategoryDone     = "DONE"
)

// uidNamespace scopes the name-based UUIDs of exported events.
var uidNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/ashleyclx/yapper"))

// Option configures an Exporter.
type Option func(*Exporter)

// WithClock sets the time source for DTSTAMP.
func WithClock(now func() time.Time) Option {
	return func(e *Exporter) {
		e.now = now
	}
}

// WithLogger sets the logger for export progress.
func WithLogger(logger *log.Logger) Option {
	return func(e *Exporter) {
		e.logger = logger
	}
}

// Exporter converts task lists to calendars.
type Exporter struct {
	now    func() time.Time
	logger *log.Logger
}

// NewExporter returns an Exporter.
func NewExporter(opts ...Option) *Exporter {
	e := &Exporter{now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = logging.Discard()
	}
	return e
}

// Calendar builds a calendar from l and returns it with the number of
// events it holds.
func (e *Exporter) Calendar(l *tasklist.TaskList) (*ics.Calendar, int) {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(ProductID)
	cal.SetName("yapper")

	b := &eventBuilder{cal: cal, stamp: e.now(), seen: make(map[string]int)}
	for i := 0; i < l.Len(); i++ {
		l.Get(i).Accept(b)
	}
	return cal, b.count
}

// Write serializes the calendar for l to w.
func (e *Exporter) Write(w io.Writer, l *tasklist.TaskList) (int, error) {
	cal, n := e.Calendar(l)
	if err := cal.SerializeTo(w); err != nil {
		return 0, fmt.Errorf("serialize calendar: %w", err)
	}
	return n, nil
}

// WriteFile writes the calendar for l to path, creating parent directories.
func (e *Exporter) WriteFile(path string, l *tasklist.TaskList) (int, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return 0, fmt.Errorf("create %s: %w", dir, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return 0, err
	}
	n, err := e.Write(f, l)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return 0, err
	}
	e.logger.Info("exported calendar", "path", path, "events", n)
	return n, nil
}

// UID returns the stable identifier of the exported event for t. It depends
// only on the kind, description and dates, so marking the task done or
// moving it in the list keeps the UID and a re-import updates the event.
func UID(t task.Task) string {
	return uid(identity(t), 0)
}

// uid names the nth export of identical tasks within one calendar.
func uid(name string, n int) string {
	if n > 0 {
		name = fmt.Sprintf("%s%s%d", name, task.Delimiter, n)
	}
	return uuid.NewSHA1(uidNamespace, []byte(name)).String() + "@yapper"
}

func identity(t task.Task) string {
	parts := []string{string(t.Kind()), t.Description()}
	switch t := t.(type) {
	case *task.Deadline:
		parts = append(parts, t.By.String())
	case *task.Event:
		parts = append(parts, t.From.String(), t.To.String())
	}
	return strings.Join(parts, task.Delimiter)
}

type eventBuilder struct {
	cal   *ics.Calendar
	stamp time.Time
	seen  map[string]int
	count int
}

func (b *eventBuilder) VisitTodo(*task.Todo) {}

func (b *eventBuilder) VisitDeadline(d *task.Deadline) {
	ev := b.add(d, CategoryDeadline)
	ev.SetAllDayStartAt(d.By.Time())
	ev.SetAllDayEndAt(d.By.AddDays(1).Time())
	ev.SetDescription("Due " + d.By.String())
}

func (b *eventBuilder) VisitEvent(e *task.Event) {
	ev := b.add(e, CategoryEvent)
	ev.SetAllDayStartAt(e.From.Time())
	// DTEND is exclusive for all-day events and may not precede DTSTART.
	last := e.To
	if last.Time().Before(e.From.Time()) {
		last = e.From
	}
	ev.SetAllDayEndAt(last.AddDays(1).Time())
	ev.SetDescription(e.From.String() + " to " + e.To.String())
}

func (b *eventBuilder) add(t task.Task, category string) *ics.VEvent {
	name := identity(t)
	ev := b.cal.AddEvent(uid(name, b.seen[name]))
	b.seen[name]++
	ev.SetDtStampTime(b.stamp)
	ev.SetSummary(t.Description())
	ev.SetStatus(ics.ObjectStatusConfirmed)
	ev.AddCategory(category)
	if t.IsDone() {
		ev.AddCategory(CategoryDone)
	}
	b.count++
	return ev
}
