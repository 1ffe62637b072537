// Package cli provides styled terminal output using lipgloss.
package cli

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/kipkoech/shamba/internal/model"
)

var (
	// PrimaryColor is the main theme color (leaf green).
	PrimaryColor = lipgloss.Color("#7CB518")
	// LowColor marks deficient soil properties.
	LowColor = lipgloss.Color("#FF6B6B") // Red
	// ModerateColor marks adequate soil properties.
	ModerateColor = lipgloss.Color("#FFE66D") // Yellow
	// HighColor marks abundant soil properties.
	HighColor = lipgloss.Color("#4ECDC4") // Teal
	// ErrorColor indicates errors or failure messages.
	ErrorColor = lipgloss.Color("#FF6B6B")
	// SubtleColor indicates less prominent UI elements.
	SubtleColor = lipgloss.Color("#666666") // Gray

	// TitleStyle is used for section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor).
			MarginBottom(1)

	// ErrorStyle formats error messages.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor)

	// SubtleStyle formats less prominent text.
	SubtleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// BoxStyle is used for bordered content boxes.
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#333")).
			Padding(1, 2)

	lowStyle      = lipgloss.NewStyle().Foreground(LowColor)
	moderateStyle = lipgloss.NewStyle().Foreground(ModerateColor)
	highStyle     = lipgloss.NewStyle().Foreground(HighColor)
)

// Icons.
const (
	SeedlingIcon = "🌱"
	ErrorIcon    = "✗"
)

// FormatTitle formats a title with the seedling icon.
func FormatTitle(title string) string {
	return TitleStyle.Render(SeedlingIcon + " " + title)
}

// FormatError formats an error message with icon.
func FormatError(message string) string {
	return ErrorStyle.Render(ErrorIcon + " " + message)
}

// FormatLevel renders a classification level in its band color.
func FormatLevel(level model.Level) string {
	switch level {
	case model.LevelLow:
		return lowStyle.Render(string(level))
	case model.LevelModerate:
		return moderateStyle.Render(string(level))
	case model.LevelHigh:
		return highStyle.Render(string(level))
	default:
		return string(level)
	}
}

// RenderBox renders content in a styled box.
func RenderBox(title, content string) string {
	boxTitle := TitleStyle.
		UnsetMargins().
		Render(title)

	boxContent := lipgloss.JoinVertical(
		lipgloss.Left,
		boxTitle,
		content,
	)

	return BoxStyle.Render(boxContent)
}
