// Package ui provides the visual styling and section rendering for the
// numfacts terminal output.
package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette for the demonstrator output.
var (
	Primary = lipgloss.Color("#2196F3") // Blue
	Accent  = lipgloss.Color("#8BC34A") // Lime Green
	Muted   = lipgloss.Color("245")
	Danger  = lipgloss.Color("#e53935") // Red
)

// Styles holds the lipgloss styles the renderer uses.
type Styles struct {
	Banner  lipgloss.Style // top-level battery heading
	Section lipgloss.Style // section title
	Label   lipgloss.Style
	Value   lipgloss.Style
	Divider lipgloss.Style
	Error   lipgloss.Style
}

// NewStyles returns the colored style set.
func NewStyles() Styles {
	return Styles{
		Banner: lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true).
			MarginBottom(1),

		Section: lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true),

		Label: lipgloss.NewStyle().
			Foreground(Muted),

		Value: lipgloss.NewStyle().
			Bold(true),

		Divider: lipgloss.NewStyle().
			Foreground(Muted),

		Error: lipgloss.NewStyle().
			Foreground(Danger).
			Bold(true),
	}
}

// PlainStyles returns an uncolored style set for piped or logged output.
func PlainStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{
		Banner:  plain,
		Section: plain,
		Label:   plain,
		Value:   plain,
		Divider: plain,
		Error:   plain,
	}
}
