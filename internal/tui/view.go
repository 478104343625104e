package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/egbakou/eventtocommand/internal/tui/components"
	"github.com/egbakou/eventtocommand/internal/tui/theme"
)

// View implements tea.Model.
func (m Model) View() string {
	switch m.mode {
	case alertMode:
		if m.current != nil {
			return components.RenderDialog(components.DialogProps{
				Title:   m.current.title,
				Message: m.current.message,
				Width:   m.width,
				Height:  m.height,
			})
		}
	case helpMode:
		return m.viewHelp()
	case historyMode:
		return m.viewHistory()
	}
	return m.viewMain()
}

func (m Model) viewMain() string {
	statusBar := components.RenderStatusBar(components.StatusBarProps{Width: m.width})

	borderColor := theme.Border
	if m.entry.Focused() {
		borderColor = theme.Accent
	}

	entryBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(borderColor)).
		Padding(0, 1).
		Render(m.entry.View())

	label := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle)).
		Render("An EventToCommandBehavior bridges this entry's Focused and TextChanged events to view-model commands.")

	mirror := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle)).
		Render(fmt.Sprintf("view model EntryText: %q", m.app.Home.EntryText()))

	hints := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle)).
		Render("tab focus/blur · ctrl+r history · ? help · ctrl+c quit")

	content := lipgloss.JoinVertical(lipgloss.Left,
		label,
		"",
		entryBox,
		"",
		mirror,
		"",
		hints,
	)

	body := lipgloss.Place(
		m.width, max(m.height-1, 0),
		lipgloss.Center, lipgloss.Center,
		content,
	)

	return lipgloss.JoinVertical(lipgloss.Left, statusBar, body)
}

func (m Model) viewHistory() string {
	if m.historyErr != nil {
		return components.RenderDialog(components.DialogProps{
			Title:   "History unavailable",
			Message: m.historyErr.Error(),
			Width:   m.width,
			Height:  m.height,
		})
	}
	return components.RenderHistory(components.HistoryProps{
		Messages: m.history,
		Width:    m.width,
		Height:   m.height,
	})
}
