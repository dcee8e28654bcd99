// Package cliutil provides utilities for CLI and report output.
package cliutil

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Writef writes formatted output to the writer.
// If the write fails, it logs to stderr (useful for debugging).
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}

// Rule writes a horizontal rule of n '=' characters followed by a newline.
// Used to frame failure blocks and the run summary.
func Rule(w io.Writer, n int) {
	Writef(w, "%s\n", strings.Repeat("=", n))
}
