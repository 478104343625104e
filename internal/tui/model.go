// Package tui composes the demo page: an entry control with two
// event-to-command behaviors wired from configuration, message-center
// subscriptions showing acknowledgment dialogs, and overlays for help
// and message history.
package tui

import (
	"context"
	"fmt"

	"github.com/egbakou/eventtocommand/internal/app"
	"github.com/egbakou/eventtocommand/internal/behaviors"
	"github.com/egbakou/eventtocommand/internal/controls"
	"github.com/egbakou/eventtocommand/internal/journal"
	"github.com/egbakou/eventtocommand/internal/messaging"
	"github.com/egbakou/eventtocommand/internal/viewmodel"
)

// mode identifies which surface currently owns the keyboard.
type mode int

const (
	normalMode mode = iota
	alertMode
	helpMode
	historyMode
)

// alert is one pending acknowledgment dialog.
type alert struct {
	title   string
	message string
}

// alertQueue collects alerts produced synchronously by message-center
// subscriptions while an Update is in flight. Model values share one
// queue so handler closures survive Bubble Tea's value copying.
type alertQueue struct {
	pending []alert
}

func (q *alertQueue) push(a alert) {
	q.pending = append(q.pending, a)
}

func (q *alertQueue) pop() (alert, bool) {
	if len(q.pending) == 0 {
		return alert{}, false
	}
	a := q.pending[0]
	q.pending = q.pending[1:]
	return a, true
}

// Model is the Bubble Tea model for the demo page.
type Model struct {
	ctx context.Context
	app *app.App

	entry     *controls.Entry
	behaviors []*behaviors.EventToCommandBehavior
	subs      []*messaging.Subscription

	queue   *alertQueue
	current *alert
	mode    mode

	history    []journal.Message
	historyErr error

	width  int
	height int
}

// InitialModel builds the page: view model bound as the entry's context,
// behaviors wired from the config's bindings section, and subscriptions
// for the two sample topics. A binding that names an unknown event or
// command fails here — wiring mistakes surface during composition, not
// at event time.
func InitialModel(ctx context.Context, a *app.App) (Model, error) {
	entry := controls.NewEntry()
	entry.SetPlaceholder(a.Config.Entry.Placeholder)
	entry.SetWidth(a.Config.Entry.Width)
	entry.SetBindingContext(a.Home)

	m := Model{
		ctx:   ctx,
		app:   a,
		entry: entry,
		queue: &alertQueue{},
	}

	for _, bc := range a.Config.Bindings {
		cmd := a.Home.CommandNamed(bc.Command)
		if cmd == nil {
			return Model{}, fmt.Errorf("binding for event %q names unknown command %q", bc.Event, bc.Command)
		}

		b := behaviors.NewEventToCommand(bc.Event)
		b.SetCommand(cmd)
		if err := entry.AddBehavior(b); err != nil {
			return Model{}, fmt.Errorf("failed to wire event %q: %w", bc.Event, err)
		}
		m.behaviors = append(m.behaviors, b)
	}

	m.subs = append(m.subs,
		a.Center.Subscribe(viewmodel.TopicFocused, m.onFocusedMessage()),
		a.Center.Subscribe(viewmodel.TopicTextChanged, m.onTextChangedMessage()),
	)

	return m, nil
}

// onFocusedMessage queues the acknowledgment for the Focused topic.
func (m Model) onFocusedMessage() messaging.HandlerFunc {
	queue := m.queue
	return func(sender, payload any) {
		queue.push(alert{
			title:   "Focused",
			message: "The entry gained focus.",
		})
	}
}

// onTextChangedMessage mirrors the new text into the view model and
// queues the acknowledgment for the TextChanged topic.
func (m Model) onTextChangedMessage() messaging.HandlerFunc {
	queue := m.queue
	home := m.app.Home
	return func(sender, payload any) {
		message := "The entry text changed."
		if args, ok := payload.(controls.TextChangedArgs); ok {
			home.SetEntryText(args.New)
			message = fmt.Sprintf("Text changed to %q.", args.New)
		}
		queue.push(alert{title: "TextChanged", message: message})
	}
}

// Close cancels the page's message subscriptions.
func (m Model) Close() {
	for _, sub := range m.subs {
		sub.Cancel()
	}
}

// Entry returns the page's entry control. Primarily useful for tests.
func (m Model) Entry() *controls.Entry {
	return m.entry
}
