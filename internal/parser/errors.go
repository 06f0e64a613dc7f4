package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ashleyclx/yapper/internal/tasklist"
)

var (
	ErrUnknownCommand    = errors.New("unknown command")
	ErrMissingArguments  = errors.New("missing arguments")
	ErrNotANumber        = errors.New("not a number")
	ErrIndexOutOfRange   = tasklist.ErrIndexOutOfRange
	ErrBadDeadlineFormat = errors.New("malformed deadline")
	ErrBadEventFormat    = errors.New("malformed event")
	ErrBadDescription    = errors.New("invalid description")
)

// Error is returned for any input line that cannot be applied. The task list
// is never modified when Parse returns an Error.
type Error struct {
	Kind    error   // one of the Err* kinds above
	Command Command // empty for ErrUnknownCommand
	Message string  // user-facing explanation
	Example string  // a valid invocation to show the user, may be empty
	Cause   error
}

func (e *Error) Error() string {
	if e.Example == "" {
		return e.Message
	}
	return fmt.Sprintf("%s\ne.g. %s", e.Message, e.Example)
}

// Unwrap exposes the kind and, when present, the underlying cause.
func (e *Error) Unwrap() []error {
	if e.Cause != nil {
		return []error{e.Kind, e.Cause}
	}
	return []error{e.Kind}
}

func unknownCommand(word string) *Error {
	names := make([]string, 0, len(commandOrder))
	for _, c := range commandOrder {
		names = append(names, string(c))
	}
	return &Error{
		Kind:    ErrUnknownCommand,
		Message: fmt.Sprintf("What is %q? Here are the commands I know:\n%s", word, strings.Join(names, ", ")),
	}
}

func missingArguments(cmd Command) *Error {
	var msg string
	switch cmd {
	case CmdFind:
		msg = "What are you looking for?"
	case CmdMark, CmdUnmark, CmdDelete:
		msg = fmt.Sprintf("Which task should I %s?", cmd)
	default:
		msg = fmt.Sprintf("You're missing the details. Type %s", cmd.Usage())
	}
	return &Error{Kind: ErrMissingArguments, Command: cmd, Message: msg, Example: cmd.Example()}
}

func notANumber(cmd Command, arg string) *Error {
	return &Error{
		Kind:    ErrNotANumber,
		Command: cmd,
		Message: fmt.Sprintf("%q is not a task number. Use just the number after %s.", arg, cmd),
		Example: cmd.Example(),
	}
}

func indexOutOfRange(cmd Command, cause *tasklist.IndexError) *Error {
	msg := "Tasks are numbered from 1."
	if cause.TooLarge() {
		switch cause.Size {
		case 0:
			msg = "Your list is empty."
		case 1:
			msg = "You only have 1 task."
		default:
			msg = fmt.Sprintf("You only have %d tasks.", cause.Size)
		}
	}
	return &Error{Kind: ErrIndexOutOfRange, Command: cmd, Message: msg, Cause: cause}
}

func badDeadline(reason string) *Error {
	return &Error{
		Kind:    ErrBadDeadlineFormat,
		Command: CmdDeadline,
		Message: fmt.Sprintf("%s Type %s", reason, CmdDeadline.Usage()),
		Example: CmdDeadline.Example(),
	}
}

func badEvent(reason string) *Error {
	return &Error{
		Kind:    ErrBadEventFormat,
		Command: CmdEvent,
		Message: fmt.Sprintf("%s Type %s", reason, CmdEvent.Usage()),
		Example: CmdEvent.Example(),
	}
}

func badDescription(cmd Command, cause error) *Error {
	return &Error{
		Kind:    ErrBadDescription,
		Command: cmd,
		Message: fmt.Sprintf("That description won't fit in the task file: %v.", cause),
		Cause:   cause,
	}
}
