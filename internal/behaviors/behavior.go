// Package behaviors implements attachable units of logic for bindable
// controls: a reusable attach/detach base and the event-to-command
// behavior bridging named control events to bound commands.
package behaviors

import (
	"errors"

	"github.com/egbakou/eventtocommand/internal/controls"
)

// ErrAlreadyAttached is returned when a behavior is attached while it is
// still bound to a host. Detach first.
var ErrAlreadyAttached = errors.New("behavior is already attached to a host")

// Base carries the attach/detach bookkeeping shared by all behaviors: it
// stores the host for the duration of the attachment, adopts the host's
// binding context, and tracks context replacement. Concrete behaviors
// embed Base and layer their own attach/detach work on top.
type Base struct {
	host             controls.Host
	bindingContext   any
	contextToken     controls.Token
	onContextChanged func(ctx any)
}

// Compile-time verification that *Base implements controls.Behavior
var _ controls.Behavior = (*Base)(nil)

// Attach binds the behavior to host, adopts the host's current binding
// context, and subscribes to context replacement.
func (b *Base) Attach(host controls.Host) error {
	if b.host != nil {
		return ErrAlreadyAttached
	}

	b.host = host
	b.bindingContext = host.BindingContext()
	b.contextToken = host.BindingContextChanged().Subscribe(func(ctx any) {
		b.bindingContext = ctx
		if b.onContextChanged != nil {
			b.onContextChanged(ctx)
		}
	})
	return nil
}

// Detach unsubscribes from the host and clears all host state. A
// detached behavior retains no reference to its former host and may be
// attached again. Detaching an unattached behavior is a no-op.
func (b *Base) Detach() error {
	if b.host == nil {
		return nil
	}

	b.host.BindingContextChanged().Unsubscribe(b.contextToken)
	b.host = nil
	b.contextToken = 0
	b.bindingContext = nil
	return nil
}

// Host returns the attached host, or nil while detached.
func (b *Base) Host() controls.Host {
	return b.host
}

// BindingContext returns the context adopted from the host, or nil
// while detached.
func (b *Base) BindingContext() any {
	return b.bindingContext
}

// OnContextChanged registers a hook run whenever the host's binding
// context is replaced while attached.
func (b *Base) OnContextChanged(fn func(ctx any)) {
	b.onContextChanged = fn
}
