package ui

import "github.com/charmbracelet/lipgloss"

// Advisory message styles. Warnings must read differently from success and
// info output, so each gets its own color and prefix.
var (
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
)

// Warn renders a warning message.
func Warn(msg string) string {
	return warnStyle.Render("⚠ " + msg)
}

// Success renders a success confirmation.
func Success(msg string) string {
	return successStyle.Render("✔ " + msg)
}

// Info renders an informational message.
func Info(msg string) string {
	return infoStyle.Render(msg)
}
