package config

// ExampleConfig returns an example configuration showing all available options.
func ExampleConfig() string {
	return `# yapper configuration file
# Values can be overridden by YAPPER_* environment variables or CLI flags.

# Task data file (relative to the working directory; ~ and $VARS expand)
data_file = "data/taskData.txt"

# Log level: debug, info, warn, error
log_level = "warn"

# Log format: text, logfmt, json
log_format = "text"

# Include timestamps and caller location in log lines
log_timestamps = false
log_caller = false

# Interactive front end: console or tui
ui = "console"

# tui only: use the alternate screen, and how many exchanges to keep on screen
tui_alt_screen = true
tui_history = 50

# What to do with a corrupt line in the data file: skip or abort
on_corrupt = "skip"
`
}
