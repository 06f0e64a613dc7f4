// Package parser turns command lines into task list operations.
package parser

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/ashleyclx/yapper/internal/logging"
	"github.com/ashleyclx/yapper/internal/task"
	"github.com/ashleyclx/yapper/internal/tasklist"
)

// Farewell is the last line of the bye response.
const Farewell = "Bye. Hope to see you again soon!"

// Saver persists the task list when the session ends.
type Saver interface {
	Save(l *tasklist.TaskList) error
}

// Response is the result of a successfully applied line.
type Response struct {
	Command Command
	Text    string
	// Exit is set by bye; the caller should end the session.
	Exit bool
}

// Option configures a Parser.
type Option func(*Parser)

// WithLogger sets the logger used for debug tracing.
func WithLogger(logger *log.Logger) Option {
	return func(p *Parser) {
		p.logger = logger
	}
}

// Parser applies command lines to a task list. It holds no state between
// calls other than the list it mutates.
type Parser struct {
	tasks  *tasklist.TaskList
	saver  Saver
	logger *log.Logger
}

// New returns a Parser that mutates tasks and saves through saver on bye.
// saver may be nil, in which case bye does not save.
func New(tasks *tasklist.TaskList, saver Saver, opts ...Option) *Parser {
	p := &Parser{tasks: tasks, saver: saver}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = logging.Discard()
	}
	return p
}

// Tasks returns the list the parser mutates.
func (p *Parser) Tasks() *tasklist.TaskList {
	return p.tasks
}

// Parse applies one input line. Failures are returned as *Error and leave the
// task list unchanged.
func (p *Parser) Parse(input string) (Response, error) {
	line := strings.TrimSpace(input)
	word, rest, hasArgs := strings.Cut(line, " ")

	cmd, ok := Lookup(word)
	if !ok {
		return Response{}, unknownCommand(word)
	}
	if cmd.TakesArgs() && !hasArgs {
		return Response{}, missingArguments(cmd)
	}
	p.logger.Debug("dispatching command", "command", cmd)

	var (
		text string
		err  error
	)
	switch cmd {
	case CmdHelp:
		text = HelpText()
	case CmdList:
		text = p.tasks.List()
	case CmdFind:
		text = p.tasks.Find(strings.TrimSpace(rest))
	case CmdMark, CmdUnmark, CmdDelete:
		text, err = p.modify(cmd, rest)
	case CmdTodo:
		text, err = p.addTodo(rest)
	case CmdDeadline:
		text, err = p.addDeadline(rest)
	case CmdEvent:
		text, err = p.addEvent(rest)
	case CmdBye:
		return p.bye(), nil
	default:
		return Response{}, unknownCommand(word)
	}
	if err != nil {
		return Response{}, err
	}
	return Response{Command: cmd, Text: text}, nil
}

func (p *Parser) modify(cmd Command, arg string) (string, error) {
	arg = strings.TrimSpace(arg)
	idx, err := parseIndex(arg)
	if err != nil {
		return "", notANumber(cmd, arg)
	}
	if err := p.tasks.CheckIndex(idx); err != nil {
		var ie *tasklist.IndexError
		if errors.As(err, &ie) {
			return "", indexOutOfRange(cmd, ie)
		}
		return "", err
	}

	switch cmd {
	case CmdMark:
		return p.tasks.Mark(idx)
	case CmdUnmark:
		return p.tasks.Unmark(idx)
	default:
		return p.tasks.Delete(idx)
	}
}

// parseIndex parses a 1-based position. Numbers too large for an int clamp
// to the int range so they report as out of range rather than not a number.
func parseIndex(arg string) (int, error) {
	idx, err := strconv.Atoi(arg)
	if err == nil {
		return idx, nil
	}
	if errors.Is(err, strconv.ErrRange) {
		if strings.HasPrefix(arg, "-") {
			return math.MinInt, nil
		}
		return math.MaxInt, nil
	}
	return 0, err
}

func (p *Parser) addTodo(arg string) (string, error) {
	t, err := task.NewTodo(arg)
	if errors.Is(err, task.ErrEmptyDescription) {
		return "", missingArguments(CmdTodo)
	}
	if err != nil {
		return "", badDescription(CmdTodo, err)
	}
	return p.tasks.Add(t), nil
}

func (p *Parser) addDeadline(arg string) (string, error) {
	desc, byText, ok := strings.Cut(arg, " /by ")
	if !ok {
		return "", badDeadline("When is this due?")
	}
	by, err := task.ParseDate(strings.TrimSpace(byText))
	if err != nil {
		return "", badDeadline(fmt.Sprintf("%q is not a date I understand.", strings.TrimSpace(byText)))
	}
	d, err := task.NewDeadline(desc, by)
	if errors.Is(err, task.ErrEmptyDescription) {
		return "", badDeadline("What is the deadline for?")
	}
	if err != nil {
		return "", badDescription(CmdDeadline, err)
	}
	return p.tasks.Add(d), nil
}

func (p *Parser) addEvent(arg string) (string, error) {
	desc, span, ok := strings.Cut(arg, " /from ")
	if !ok {
		return "", badEvent("When does this event start?")
	}
	fromText, toText, ok := strings.Cut(span, " /to ")
	if !ok {
		return "", badEvent("When does this event end?")
	}
	from, err := task.ParseDate(strings.TrimSpace(fromText))
	if err != nil {
		return "", badEvent(fmt.Sprintf("%q is not a date I understand.", strings.TrimSpace(fromText)))
	}
	to, err := task.ParseDate(strings.TrimSpace(toText))
	if err != nil {
		return "", badEvent(fmt.Sprintf("%q is not a date I understand.", strings.TrimSpace(toText)))
	}
	e, err := task.NewEvent(desc, from, to)
	if errors.Is(err, task.ErrEmptyDescription) {
		return "", badEvent("What is the event called?")
	}
	if err != nil {
		return "", badDescription(CmdEvent, err)
	}
	return p.tasks.Add(e), nil
}

// bye saves the list and ends the session. A failed save is reported in the
// response but never prevents the exit.
func (p *Parser) bye() Response {
	var b strings.Builder
	if p.saver != nil {
		if err := p.saver.Save(p.tasks); err != nil {
			fmt.Fprintf(&b, "I couldn't save your tasks: %v\n", err)
		}
	}
	b.WriteString(Farewell)
	return Response{Command: CmdBye, Text: b.String(), Exit: true}
}
