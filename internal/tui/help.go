package tui

import (
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

const helpMarkdown = `# EventToCommand

This sample shows the *behavior* pattern: reusable logic attached to a
control through its behavior collection instead of subclassing.

## What is wired

- The entry declares three named events: ` + "`Focused`" + `, ` + "`Unfocused`" + `
  and ` + "`TextChanged`" + `.
- Two ` + "`EventToCommandBehavior`" + ` instances are attached from the
  config file's bindings section, bridging ` + "`Focused`" + ` and
  ` + "`TextChanged`" + ` to the view model's commands.
- Each command publishes a message on the message center; the page
  subscribes and shows the acknowledgment dialog you see.
- Every delivered message is recorded in the journal (ctrl+r).

## Keys

| Key | Action |
| --- | ------ |
| tab | focus / blur the entry |
| ctrl+r | show message history |
| ? | this help |
| ctrl+c | quit |
`

var (
	helpOnce     sync.Once
	helpRendered string
)

// viewHelp renders the help overlay. The markdown is rendered once;
// glamour's renderer is expensive to construct.
func (m Model) viewHelp() string {
	helpOnce.Do(func() {
		renderer, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(72),
		)
		if err != nil {
			helpRendered = helpMarkdown
			return
		}
		out, err := renderer.Render(helpMarkdown)
		if err != nil {
			helpRendered = helpMarkdown
			return
		}
		helpRendered = out
	})

	return lipgloss.Place(
		m.width, m.height,
		lipgloss.Center, lipgloss.Center,
		helpRendered,
	)
}
