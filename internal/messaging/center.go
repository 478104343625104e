// Package messaging provides a topic-keyed publish/subscribe center.
// Unlike a process-wide singleton, a Center is constructor-injected and
// caller-owned; components that need to talk share one instance.
package messaging

import "sync"

// HandlerFunc receives one published message: the publishing object and
// its payload.
type HandlerFunc func(sender any, payload any)

type entry struct {
	token int
	fn    HandlerFunc
}

// Center is a synchronous publish/subscribe channel keyed by topic
// string. Delivery happens in subscription order on the publishing
// goroutine; Publish returns after every handler has run.
type Center struct {
	mu   sync.RWMutex
	next int
	subs map[string][]entry
}

// NewCenter creates an empty message center.
func NewCenter() *Center {
	return &Center{subs: make(map[string][]entry)}
}

// Subscribe registers fn for messages published under topic. The
// returned Subscription cancels the registration.
func (c *Center) Subscribe(topic string, fn HandlerFunc) *Subscription {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.next++
	c.subs[topic] = append(c.subs[topic], entry{token: c.next, fn: fn})
	return &Subscription{center: c, topic: topic, token: c.next}
}

// Publish delivers payload to every current subscriber of topic, tagged
// with the publishing sender. Topics with no subscribers are dropped
// silently.
func (c *Center) Publish(sender any, topic string, payload any) {
	c.mu.RLock()
	current := make([]entry, len(c.subs[topic]))
	copy(current, c.subs[topic])
	c.mu.RUnlock()

	for _, e := range current {
		e.fn(sender, payload)
	}
}

func (c *Center) unsubscribe(topic string, token int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entries := c.subs[topic]
	for i, e := range entries {
		if e.token == token {
			c.subs[topic] = append(entries[:i], entries[i+1:]...)
			return
		}
	}
}

// Subscription is the handle for one topic registration.
type Subscription struct {
	center *Center
	topic  string
	token  int
}

// Cancel removes the registration. Cancel is idempotent.
func (s *Subscription) Cancel() {
	if s.center == nil {
		return
	}
	s.center.unsubscribe(s.topic, s.token)
	s.center = nil
}
