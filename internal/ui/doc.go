// Package ui provides theme and color support for the console output.
// Colors only decorate messages; the text itself is never changed, so the
// program's fixed messages stay byte-identical when colors are disabled.
package ui
