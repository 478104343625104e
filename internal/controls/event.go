// Package controls provides the bindable-control substrate: named event
// slots addressable by string, an embeddable element base carrying a
// binding context and a behavior collection, and the Entry text control.
package controls

import "sort"

// Handler receives the payload of a raised event.
type Handler func(payload any)

// Token identifies a single event registration. The zero Token is never
// issued and denotes "no registration".
type Token int

type registration struct {
	token Token
	fn    Handler
}

// Event is a named event slot on a control. Handlers run synchronously,
// in subscription order, on the goroutine that calls Raise.
type Event struct {
	name string
	next Token
	subs []registration
}

// NewEvent creates an event slot with the given name.
func NewEvent(name string) *Event {
	return &Event{name: name}
}

// Name returns the event's name as declared in its registry.
func (e *Event) Name() string {
	return e.name
}

// Subscribe registers fn and returns a token for later removal.
func (e *Event) Subscribe(fn Handler) Token {
	e.next++
	e.subs = append(e.subs, registration{token: e.next, fn: fn})
	return e.next
}

// Unsubscribe removes the registration identified by token.
// Unknown or zero tokens are ignored.
func (e *Event) Unsubscribe(token Token) {
	for i, r := range e.subs {
		if r.token == token {
			e.subs = append(e.subs[:i], e.subs[i+1:]...)
			return
		}
	}
}

// Raise delivers payload to every current handler before returning.
// Handlers subscribed during delivery are not invoked for this raise.
func (e *Event) Raise(payload any) {
	current := make([]registration, len(e.subs))
	copy(current, e.subs)
	for _, r := range current {
		r.fn(payload)
	}
}

// HandlerCount returns the number of live registrations.
func (e *Event) HandlerCount() int {
	return len(e.subs)
}

// Registry maps event names to event slots for one control. Controls
// declare their full event table at construction, so lookups never fall
// back to runtime reflection.
type Registry struct {
	events map[string]*Event
}

// NewRegistry creates an empty event registry.
func NewRegistry() *Registry {
	return &Registry{events: make(map[string]*Event)}
}

// Declare returns the event slot for name, creating it if absent.
func (r *Registry) Declare(name string) *Event {
	if ev, ok := r.events[name]; ok {
		return ev
	}
	ev := NewEvent(name)
	r.events[name] = ev
	return ev
}

// Lookup returns the event slot for name, or false when the control
// declares no such event.
func (r *Registry) Lookup(name string) (*Event, bool) {
	ev, ok := r.events[name]
	return ev, ok
}

// Names returns the declared event names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.events))
	for name := range r.events {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
