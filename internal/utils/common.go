// Package utils provides small helpers shared across packages.
package utils

import (
	"strconv"
	"strings"
)

// JSONPointerToPath converts a JSON Pointer (RFC 6901) to a dot-notation path,
// so "#/foo/bar/0/baz" becomes "foo.bar[0].baz". Schema validators report
// instance locations as pointers; people read paths.
func JSONPointerToPath(ptr string) string {
	ptr = strings.TrimPrefix(ptr, "#")
	ptr = strings.TrimPrefix(ptr, "/")
	if ptr == "" {
		return ""
	}

	var b strings.Builder
	for _, part := range strings.Split(ptr, "/") {
		// ~1 is "/" and ~0 is "~"; the order matters.
		part = strings.ReplaceAll(part, "~1", "/")
		part = strings.ReplaceAll(part, "~0", "~")
		if part == "" {
			continue
		}
		if idx, err := strconv.Atoi(part); err == nil {
			b.WriteString("[" + strconv.Itoa(idx) + "]")
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(part)
	}
	return b.String()
}
