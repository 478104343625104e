package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/egbakou/eventtocommand/internal/tui/theme"
)

// DialogProps configures a modal acknowledgment dialog.
type DialogProps struct {
	Title   string
	Message string
	Width   int
	Height  int
}

// RenderDialog renders a centered modal dialog over the full terminal
// area. The dialog blocks until dismissed; the caller swallows input
// while it is shown.
func RenderDialog(props DialogProps) string {
	title := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Accent)).
		Bold(true).
		Render(props.Title)

	message := lipgloss.NewStyle().
		Width(44).
		Render(props.Message)

	hint := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle)).
		Render("[enter] OK")

	content := lipgloss.JoinVertical(lipgloss.Left, title, "", message, "", hint)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Dialog)).
		Padding(0, 2).
		Render(content)

	return lipgloss.Place(
		props.Width, props.Height,
		lipgloss.Center, lipgloss.Center,
		box,
	)
}
