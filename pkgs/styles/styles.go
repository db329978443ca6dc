// Package styles contains the shared styles for terminal output.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

type RenderFunc func(string ...string) string

const (
	Check = "✔"
	Cross = "✘"
	Dot   = "•"
)

const (
	ColorSuccess = "#22c55e"
	ColorWarning = "#eab308"
	ColorError   = "#d75f6b"
	ColorSubtle  = "#a3a3a3"
	ColorPath    = "#bb9af7"
)

var (
	Bold      = lipgloss.NewStyle().Bold(true).Render
	Underline = lipgloss.NewStyle().Underline(true).Render

	Error   = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorError)).Render
	Warning = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorWarning)).Render
	Success = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSuccess)).Render
	Subtle  = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSubtle)).Render
	Path    = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPath)).Render
)

// ErrorBox renders a bordered error block with a title and message.
func ErrorBox(title, message string) string {
	redStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorError))
	subtleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSubtle))

	lines := []string{
		redStyle.Render("╭ " + title),
		redStyle.Render("│") + " " + subtleStyle.Render(message),
		redStyle.Render("╵"),
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
