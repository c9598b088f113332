package ui

import "github.com/charmbracelet/lipgloss"

// Semantic Color Palette
var (
	// Primary is the accent color used for the title and header row.
	Primary = lipgloss.AdaptiveColor{Light: "#7D56F4", Dark: "#7D56F4"}

	// Border is the table border color.
	Border = lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#3C3C3C"}

	// TextMuted is for hints and the footer row.
	TextMuted = lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"}

	// StatusSuccess is used for confirmations such as a finished copy.
	StatusSuccess = lipgloss.AdaptiveColor{Light: "#22C55E", Dark: "#22C55E"}

	// StatusWarning is used for the terminal-too-small notice.
	StatusWarning = lipgloss.AdaptiveColor{Light: "#F59E0B", Dark: "#F59E0B"}

	// StatusError is used for failed actions.
	StatusError = lipgloss.AdaptiveColor{Light: "#EF4444", Dark: "#EF4444"}
)

var titleStyle = lipgloss.NewStyle().Bold(true).Foreground(Primary)

// TableStyles are the styles the viewer applies to the table it shows.
var TableStyles = struct {
	Header lipgloss.Style
	Footer lipgloss.Style
	Border lipgloss.Style
}{
	Header: lipgloss.NewStyle().Bold(true).Foreground(Primary),
	Footer: lipgloss.NewStyle().Foreground(TextMuted),
	Border: lipgloss.NewStyle().Foreground(Border),
}

// StatusStyles colors the messages shown in the menu line.
var StatusStyles = struct {
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
}{
	Success: lipgloss.NewStyle().Foreground(StatusSuccess),
	Warning: lipgloss.NewStyle().Foreground(StatusWarning),
	Error:   lipgloss.NewStyle().Foreground(StatusError),
}
