package task

import (
	"errors"
	"fmt"
	"time"
)

// DateLayout is the ISO yyyy-mm-dd layout used for input, display and storage.
const DateLayout = "2006-01-02"

// ErrBadDate is returned when a string is not a valid yyyy-mm-dd date.
var ErrBadDate = errors.New("invalid date")

// Date is a calendar date. The zero value is 0001-01-01.
type Date struct {
	t time.Time
}

// NewDate returns the date for the given year, month and day.
// Out-of-range values are normalized the way time.Date normalizes them.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a strict yyyy-mm-dd date. Impossible dates such as
// 2024-02-30 are rejected.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w %q: expected yyyy-mm-dd", ErrBadDate, s)
	}
	return Date{t: t}, nil
}

// String returns the date in yyyy-mm-dd form.
func (d Date) String() string {
	return d.t.Format(DateLayout)
}

// Time returns midnight UTC of the date.
func (d Date) Time() time.Time {
	return d.t
}

// Equal reports whether d and other are the same calendar date.
func (d Date) Equal(other Date) bool {
	return d.t.Equal(other.t)
}

// AddDays returns the date n days after d.
func (d Date) AddDays(n int) Date {
	return Date{t: d.t.AddDate(0, 0, n)}
}
