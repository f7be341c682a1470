// Package logs reads the CLI's log file for display.
//
// Tail returns the last lines of a log with bounded memory. Follow streams
// appended lines by polling until the context is cancelled, starting over
// when the file is truncated or rotated underneath it.
package logs
