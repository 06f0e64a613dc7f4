package parser

import (
	"fmt"
	"strings"
)

// HelpText lists every command with its syntax.
func HelpText() string {
	width := 0
	for _, c := range commandOrder {
		if n := len(c.Usage()); n > width {
			width = n
		}
	}

	var b strings.Builder
	b.WriteString("Here's what I understand:")
	for _, c := range commandOrder {
		fmt.Fprintf(&b, "\n  %-*s  %s", width, c.Usage(), commandTable[c].summary)
	}
	b.WriteString("\nDates are written yyyy-mm-dd.")
	return b.String()
}
