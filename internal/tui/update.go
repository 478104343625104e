package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/egbakou/eventtocommand/internal/journal"
)

// historyLoadedMsg carries the journal contents into the history overlay.
type historyLoadedMsg struct {
	messages []journal.Message
	err      error
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case historyLoadedMsg:
		m.history = msg.messages
		m.historyErr = msg.err
		m.mode = historyMode
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handleKey routes a key press to the active surface. While an alert,
// the help overlay, or the history overlay is visible it owns the
// keyboard and the entry receives nothing.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case alertMode:
		return m.handleAlertKey(msg)
	case helpMode, historyMode:
		switch msg.String() {
		case "esc", "q", "enter":
			m.mode = normalMode
		}
		return m, nil
	}

	switch msg.String() {
	case "ctrl+c":
		m.Close()
		return m, tea.Quit

	case "esc":
		if m.entry.Focused() {
			m.entry.Blur()
			return m.drainAlerts(nil)
		}
		m.Close()
		return m, tea.Quit

	case "tab":
		if m.entry.Focused() {
			m.entry.Blur()
			return m.drainAlerts(nil)
		}
		cmd := m.entry.Focus()
		return m.drainAlerts(cmd)

	case "ctrl+r":
		return m, m.loadHistory()

	case "?":
		if !m.entry.Focused() {
			m.mode = helpMode
			return m, nil
		}
	}

	// Everything else belongs to the entry; typing raises TextChanged,
	// which the behavior bridges to the view model's command.
	cmd := m.entry.Update(msg)
	return m.drainAlerts(cmd)
}

// handleAlertKey dismisses the visible alert, showing the next queued
// one if any. All other keys are swallowed: the dialog is modal.
func (m Model) handleAlertKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc", " ":
		if next, ok := m.queue.pop(); ok {
			m.current = &next
			return m, nil
		}
		m.current = nil
		m.mode = normalMode
	}
	return m, nil
}

// drainAlerts promotes the first queued alert to the visible one. Alerts
// are produced synchronously by bus subscriptions while control events
// fire inside this same Update call.
func (m Model) drainAlerts(cmd tea.Cmd) (tea.Model, tea.Cmd) {
	if m.current == nil {
		if next, ok := m.queue.pop(); ok {
			m.current = &next
			m.mode = alertMode
		}
	}
	return m, cmd
}

// loadHistory reads the journal off the update loop.
func (m Model) loadHistory() tea.Cmd {
	ctx := m.ctx
	store := m.app.Journal
	return func() tea.Msg {
		if store == nil {
			return historyLoadedMsg{}
		}
		messages, err := store.Recent(ctx, 20)
		return historyLoadedMsg{messages: messages, err: err}
	}
}
