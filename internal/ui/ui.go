package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#DC2626")).Bold(true)
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#CA8A04"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#16A34A"))
	hintStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280")).Italic(true)
	boldStyle    = lipgloss.NewStyle().Bold(true)
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#9CA3AF"))
)

// FormatError returns a styled multi-line error message.
func FormatError(title, detail, suggestion string) string {
	out := errorStyle.Render("Error: "+title) + "\n"
	if detail != "" {
		out += "  " + detail + "\n"
	}
	if suggestion != "" {
		out += "  " + hintStyle.Render("Hint: "+suggestion) + "\n"
	}
	return out
}

// Success prints a green success message.
func Success(w io.Writer, msg string) {
	fmt.Fprintln(w, successStyle.Render(msg))
}

// Warn prints a yellow warning message.
func Warn(w io.Writer, msg string) {
	fmt.Fprintln(w, warnStyle.Render("Warning: "+msg))
}

// Bold renders text in bold.
func Bold(s string) string {
	return boldStyle.Render(s)
}

// Hint renders text in dim italic.
func Hint(s string) string {
	return hintStyle.Render(s)
}

// Dim renders text in grey.
func Dim(s string) string {
	return dimStyle.Render(s)
}

// KeyValue prints an aligned "key: value" line.
func KeyValue(w io.Writer, key, value string) {
	fmt.Fprintf(w, "  %-10s %s\n", key+":", value)
}

// ValidationOK prints a green check for a valid field.
func ValidationOK(w io.Writer, field, detail string) {
	fmt.Fprintf(w, "  %s %s: %s\n", successStyle.Render("OK "), field, detail)
}

// ValidationErr prints a red error for an invalid field.
func ValidationErr(w io.Writer, field, message, suggestion string) {
	fmt.Fprintf(w, "  %s %s: %s\n", errorStyle.Render("ERR"), field, message)
	if suggestion != "" {
		fmt.Fprintf(w, "      %s\n", hintStyle.Render("Hint: "+suggestion))
	}
}
