// Package utils provides shared utility functions for the TUI.
package utils

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// TruncateString truncates a string to the given display width, appending "…"
// if truncated. Wide characters count as two cells.
func TruncateString(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}

	w := 0
	for i, r := range s {
		rw := runewidth.RuneWidth(r)
		if w+rw > width-1 {
			return s[:i] + "…"
		}
		w += rw
	}
	return s
}

// PadRight truncates or pads s with spaces to exactly width cells.
func PadRight(s string, width int) string {
	s = TruncateString(s, width)
	if gap := width - runewidth.StringWidth(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}
