package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/egbakou/eventtocommand/internal/tui/theme"
)

// StatusBarProps configures the status bar.
type StatusBarProps struct {
	Width int
}

// RenderStatusBar renders a status bar with left and right aligned text.
// Left side: the sample's name. Right side: the help hint.
func RenderStatusBar(props StatusBarProps) string {
	leftText := "EventToCommand - Behavior Sample"
	rightText := "press ? for help"

	style := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle))

	leftRendered := style.Render(leftText)
	rightRendered := style.Render(rightText)

	leftWidth := lipgloss.Width(leftRendered)
	rightWidth := lipgloss.Width(rightRendered)
	gapWidth := props.Width - leftWidth - rightWidth
	if gapWidth < 1 {
		gapWidth = 1
	}

	gap := strings.Repeat(" ", gapWidth)

	return lipgloss.JoinHorizontal(lipgloss.Top, leftRendered, gap, rightRendered)
}
