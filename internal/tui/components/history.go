package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/egbakou/eventtocommand/internal/journal"
	"github.com/egbakou/eventtocommand/internal/tui/theme"
)

// HistoryProps configures the message history overlay.
type HistoryProps struct {
	Messages []journal.Message
	Width    int
	Height   int
}

// RenderHistory renders the journaled bus messages, newest first.
func RenderHistory(props HistoryProps) string {
	title := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Accent)).
		Bold(true).
		Render("Message History")

	var lines []string
	if len(props.Messages) == 0 {
		lines = append(lines, lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Subtle)).
			Render("No messages recorded yet."))
	}
	for _, m := range props.Messages {
		line := fmt.Sprintf("%s  %-12s %s",
			m.ReceivedAt.Local().Format("15:04:05"),
			m.Topic,
			m.Payload,
		)
		lines = append(lines, line)
	}

	hint := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle)).
		Render("[esc] close")

	content := lipgloss.JoinVertical(lipgloss.Left,
		title, "", strings.Join(lines, "\n"), "", hint)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Border)).
		Padding(0, 2).
		Render(content)

	return lipgloss.Place(
		props.Width, props.Height,
		lipgloss.Center, lipgloss.Center,
		box,
	)
}
