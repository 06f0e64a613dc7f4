package parser

// Command is a recognized command keyword. Keywords are case-sensitive.
type Command string

const (
	CmdHelp     Command = "help"
	CmdList     Command = "list"
	CmdTodo     Command = "todo"
	CmdDeadline Command = "deadline"
	CmdEvent    Command = "event"
	CmdMark     Command = "mark"
	CmdUnmark   Command = "unmark"
	CmdDelete   Command = "delete"
	CmdFind     Command = "find"
	CmdBye      Command = "bye"
)

type commandSpec struct {
	takesArgs bool
	usage     string
	example   string
	summary   string
}

var commandOrder = []Command{
	CmdHelp, CmdList, CmdTodo, CmdDeadline, CmdEvent,
	CmdMark, CmdUnmark, CmdDelete, CmdFind, CmdBye,
}

var commandTable = map[Command]commandSpec{
	CmdHelp:     {false, "help", "help", "Show this help"},
	CmdList:     {false, "list", "list", "List every task"},
	CmdTodo:     {true, "todo <task>", "todo read book", "Add a task with no date"},
	CmdDeadline: {true, "deadline <task> /by <yyyy-mm-dd>", "deadline submit report /by 2024-12-31", "Add a task due by a date"},
	CmdEvent:    {true, "event <task> /from <yyyy-mm-dd> /to <yyyy-mm-dd>", "event party /from 2024-01-01 /to 2024-01-02", "Add a task spanning two dates"},
	CmdMark:     {true, "mark <n>", "mark 1", "Mark task n as done"},
	CmdUnmark:   {true, "unmark <n>", "unmark 1", "Mark task n as not done"},
	CmdDelete:   {true, "delete <n>", "delete 1", "Delete task n"},
	CmdFind:     {true, "find <text>", "find book", "List tasks whose description contains text"},
	CmdBye:      {false, "bye", "bye", "Save and exit"},
}

// Commands returns every command keyword in display order.
func Commands() []Command {
	out := make([]Command, len(commandOrder))
	copy(out, commandOrder)
	return out
}

// Lookup returns the command for an exact keyword match.
func Lookup(word string) (Command, bool) {
	cmd := Command(word)
	_, ok := commandTable[cmd]
	return cmd, ok
}

// TakesArgs reports whether the command requires text after the keyword.
func (c Command) TakesArgs() bool {
	return commandTable[c].takesArgs
}

// Usage returns the argument syntax of the command, e.g. "mark <n>".
func (c Command) Usage() string {
	return commandTable[c].usage
}

// Example returns a complete, valid invocation of the command.
func (c Command) Example() string {
	return commandTable[c].example
}
