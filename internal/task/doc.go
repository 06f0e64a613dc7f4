// Package task defines the three kinds of tasks yapper tracks.
//
// Every task has a description and a done flag. The kinds differ only in the
// dates they carry:
//
//   - Todo: no dates
//   - Deadline: a single "by" date
//   - Event: a "from" and a "to" date (no ordering is enforced)
//
// Dates are calendar dates with no time component. Their canonical text form
// is ISO yyyy-mm-dd, which is also how they are written to the data file.
//
// # Rendering
//
// A task renders as "[<kind>][<status>] <description>" where kind is T, D or E
// and status is "X" when done and " " otherwise. Deadlines append
// " (by: <date>)" and events append " (from: <date> to: <date>)".
//
// # Kind dispatch
//
// Code that must handle every kind implements Visitor and calls Accept. A new
// kind adds a Visitor method, which breaks every implementation at compile
// time until it handles the new kind.
package task
