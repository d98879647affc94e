package output

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette. Never use inline lipgloss.Color literals elsewhere.
var (
	// ColorCyan is used for identifiable nouns: variants, paths, options.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen is used for the "created" path status.
	ColorGreen = lipgloss.Color("82")

	// ColorRed is used for the "removed" path status.
	ColorRed = lipgloss.Color("196")

	// ColorGreenCheck is used for the completion checkmark.
	ColorGreenCheck = lipgloss.Color("10")

	// ColorDimGray is used for borders and other structural chrome.
	ColorDimGray = lipgloss.Color("240")
)

// Semantic styles.
var (
	// StyleNoun styles identifiable nouns.
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleBold styles headings and tree roots.
	StyleBold = lipgloss.NewStyle().Bold(true)

	// StyleDim styles structural chrome (prefixes, separators, descriptions).
	StyleDim = lipgloss.NewStyle().Faint(true)
)

// Path status constants.
const (
	StatusCreated = "created"
	StatusRemoved = "removed"
	StatusKept    = "kept"
)

// StatusStyle returns the style for a path status. Unknown statuses are
// rendered unstyled.
func StatusStyle(status string) lipgloss.Style {
	switch status {
	case StatusCreated:
		return lipgloss.NewStyle().Foreground(ColorGreen)
	case StatusRemoved:
		return lipgloss.NewStyle().Foreground(ColorRed)
	case StatusKept:
		return lipgloss.NewStyle().Faint(true)
	default:
		return lipgloss.NewStyle()
	}
}

// minPathColumnWidth keeps status words aligned across lines.
const minPathColumnWidth = 40

// FormatPathLine renders "p:<path>  <status>" with the status right-aligned.
func FormatPathLine(path, status string) string {
	padding := minPathColumnWidth - len(path)
	if padding < 2 {
		padding = 2
	}
	return StyleDim.Render("p:") + StyleNoun.Render(path) + strings.Repeat(" ", padding) + StatusStyle(status).Render(status)
}

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}
