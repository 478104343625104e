// Package app wires the application together: configuration, message
// center, journal and view model. It is the single composition point
// used by the command layer and by tests.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/egbakou/eventtocommand/internal/config"
	"github.com/egbakou/eventtocommand/internal/controls"
	"github.com/egbakou/eventtocommand/internal/journal"
	"github.com/egbakou/eventtocommand/internal/messaging"
	"github.com/egbakou/eventtocommand/internal/viewmodel"
)

// App holds the application's long-lived collaborators.
type App struct {
	ctx context.Context

	Config  *config.Config
	Center  *messaging.Center
	Journal *journal.Store
	Home    *viewmodel.Home

	subs []*messaging.Subscription
}

// New builds the application container. The journal may be nil, in
// which case bus traffic is simply not recorded.
func New(ctx context.Context, cfg *config.Config, center *messaging.Center, store *journal.Store) *App {
	a := &App{
		ctx:     ctx,
		Config:  cfg,
		Center:  center,
		Journal: store,
		Home:    viewmodel.NewHome(center),
	}

	// Record every message the sample's topics carry so the history
	// overlay has something to show.
	for _, topic := range []string{viewmodel.TopicFocused, viewmodel.TopicTextChanged} {
		sub := center.Subscribe(topic, a.recorder(topic))
		a.subs = append(a.subs, sub)
	}

	return a
}

func (a *App) recorder(topic string) messaging.HandlerFunc {
	return func(sender, payload any) {
		if a.Journal == nil {
			return
		}
		err := a.Journal.Record(a.ctx, topic, fmt.Sprintf("%T", sender), payloadString(payload))
		if err != nil {
			slog.Warn("failed to journal message", "topic", topic, "error", err)
		}
	}
}

// payloadString flattens a message payload for storage.
func payloadString(payload any) string {
	switch p := payload.(type) {
	case nil:
		return ""
	case string:
		return p
	case controls.TextChangedArgs:
		return p.New
	default:
		return fmt.Sprintf("%v", p)
	}
}

// Close cancels the journaling subscriptions and closes the journal.
func (a *App) Close() error {
	for _, sub := range a.subs {
		sub.Cancel()
	}
	if a.Journal != nil {
		return a.Journal.Close()
	}
	return nil
}
