package ui

import (
	"os"

	"golang.org/x/term"
)

const fallbackWidth = 80

// TerminalWidth returns the current terminal width, or a conservative
// fallback when stdout is not a terminal.
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return fallbackWidth
	}
	return width
}

// ClampLine truncates line to width runes, appending an ellipsis when it had
// to cut. Keeps long commit type descriptions from wrapping inside the
// select prompt.
func ClampLine(line string, width int) string {
	if width <= 1 {
		return line
	}
	runes := []rune(line)
	if len(runes) <= width {
		return line
	}
	return string(runes[:width-1]) + "…"
}
