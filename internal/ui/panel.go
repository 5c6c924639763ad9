package ui

import (
	"fmt"
	"io"
	"strings"
)

// ProgressBar renders a Unicode progress bar with percentage.
func ProgressBar(done, total, width int) string {
	if total <= 0 {
		total = 1
	}
	if width < 5 {
		width = 5
	}
	filled := int(float64(done) / float64(total) * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	pct := int(float64(done) / float64(total) * 100)
	return fmt.Sprintf("%s %3d%%", bar, pct)
}

// Panel draws a framed box around the lines using the current theme.
func Panel(w io.Writer, lines []string) {
	fmt.Fprintln(w, Current().Border.Render(strings.Join(lines, "\n")))
}

// OK prints a success status line.
func OK(w io.Writer, msg string) {
	fmt.Fprintln(w, Current().Success.Render("✔ "+msg))
}

// Fail prints a failure status line.
func Fail(w io.Writer, msg string) {
	fmt.Fprintln(w, Current().Error.Render("✖ "+msg))
}
