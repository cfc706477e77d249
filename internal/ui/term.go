package ui

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Color definitions for consistent styling across the UI.
var (
	// Headers: bold
	colorHeader = color.New(color.Bold)

	// Course names: bold cyan
	colorCourse = color.New(color.FgCyan, color.Bold)

	// Time ranges: green
	colorTime = color.New(color.FgGreen)

	// Overlap warnings: yellow to make them pop
	colorWarning = color.New(color.FgYellow)

	// Muted: for secondary information
	colorMuted = color.New(color.FgWhite, color.Faint)
)

// termWidth returns the terminal width, or a default if detection fails.
func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80 // sensible default
	}
	return width
}

// DisableColor disables all color output.
func DisableColor() {
	color.NoColor = true
}

// EnableColor enables color output (if terminal supports it).
func EnableColor() {
	color.NoColor = false
}

// formatHeader formats text as a header.
func formatHeader(s string) string {
	return colorHeader.Sprint(s)
}

// formatCourse formats a course name.
func formatCourse(s string) string {
	return colorCourse.Sprint(s)
}

// formatTime formats a time range.
func formatTime(s string) string {
	return colorTime.Sprint(s)
}

// formatWarning formats overlap warnings.
func formatWarning(s string) string {
	return colorWarning.Sprint(s)
}

// formatMuted formats text as secondary/muted.
func formatMuted(s string) string {
	return colorMuted.Sprint(s)
}
