// Package logging provides a unified logging interface for fibtime.
// It abstracts the underlying logging implementation, allowing consistent
// diagnostics across components while keeping standard output reserved for
// the program's fixed console dialogue.
package logging
