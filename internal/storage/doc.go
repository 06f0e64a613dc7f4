// Package storage reads and writes the task data file.
//
// The file holds one task per line with fields separated by " / ":
//
//	T / <done> / <description>
//	D / <done> / <description> / <by>
//	E / <done> / <description> / <from> / <to>
//
// <done> is 0 or 1 and dates are yyyy-mm-dd. Lines are joined by a single
// newline with no trailing newline; an empty list is an empty file.
//
// Decoding validates each line on its own. A bad line yields a
// *CorruptionError naming the line and the problem; Store either skips it or
// stops, depending on its CorruptPolicy.
package storage
