package storage

import (
	"errors"
	"fmt"
)

var (
	// ErrDataCorruption matches every *CorruptionError.
	ErrDataCorruption = errors.New("corrupt task data")

	ErrTagMismatch    = errors.New("unknown task tag")
	ErrFieldCount     = errors.New("wrong number of fields")
	ErrBadFlag        = errors.New("done flag must be 0 or 1")
	ErrBadDate        = errors.New("unparseable date")
	ErrBadDescription = errors.New("invalid description")

	// ErrIO wraps failures reading or writing the data file.
	ErrIO = errors.New("data file I/O failed")
)

// CorruptionError describes a data file line that could not be decoded.
type CorruptionError struct {
	Line   int   // 1-based line number, 0 when decoding a lone line
	Kind   error // one of the Err* corruption kinds
	Detail string
}

func (e *CorruptionError) Error() string {
	msg := e.Kind.Error()
	if e.Detail != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Detail)
	}
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, msg)
	}
	return msg
}

// Unwrap exposes both the specific kind and ErrDataCorruption.
func (e *CorruptionError) Unwrap() []error {
	return []error{e.Kind, ErrDataCorruption}
}

func corruptf(kind error, format string, args ...any) *CorruptionError {
	return &CorruptionError{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}
