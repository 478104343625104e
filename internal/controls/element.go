package controls

// Host is the surface a behavior needs from the control it is attached
// to: the event table and the binding context with its change event.
type Host interface {
	Events() *Registry
	BindingContext() any
	BindingContextChanged() *Event
}

// Behavior is a reusable unit of logic attachable to a host control
// without subclassing it. Attach and Detach bracket the behavior's
// lifetime on one host; a detached behavior may be attached again.
type Behavior interface {
	Attach(host Host) error
	Detach() error
}

// Element is the embeddable bindable base for controls. It owns the
// event registry, the binding context, and the behavior collection.
// The owner passed to NewElement is the concrete control handed to
// behaviors on attach.
type Element struct {
	owner          Host
	events         *Registry
	bindingContext any
	contextChanged *Event
	behaviors      []Behavior
}

// Compile-time verification that *Element implements Host
var _ Host = (*Element)(nil)

// NewElement creates the bindable base for owner. Controls embedding
// Element must pass themselves so behaviors see the concrete type.
func NewElement(owner Host) *Element {
	el := &Element{
		events:         NewRegistry(),
		contextChanged: NewEvent("BindingContextChanged"),
	}
	if owner != nil {
		el.owner = owner
	} else {
		el.owner = el
	}
	return el
}

// Events returns the control's event table.
func (el *Element) Events() *Registry {
	return el.events
}

// BindingContext returns the current binding context, or nil.
func (el *Element) BindingContext() any {
	return el.bindingContext
}

// SetBindingContext replaces the binding context and raises the
// BindingContextChanged event with the new context as payload.
func (el *Element) SetBindingContext(ctx any) {
	el.bindingContext = ctx
	el.contextChanged.Raise(ctx)
}

// BindingContextChanged returns the event raised on context replacement.
func (el *Element) BindingContextChanged() *Event {
	return el.contextChanged
}

// AddBehavior attaches b to this control. On attach failure the behavior
// is not added to the collection.
func (el *Element) AddBehavior(b Behavior) error {
	if err := b.Attach(el.owner); err != nil {
		return err
	}
	el.behaviors = append(el.behaviors, b)
	return nil
}

// RemoveBehavior detaches b and drops it from the collection.
// Removing a behavior that was never added is a no-op.
func (el *Element) RemoveBehavior(b Behavior) error {
	for i, existing := range el.behaviors {
		if existing == b {
			el.behaviors = append(el.behaviors[:i], el.behaviors[i+1:]...)
			return b.Detach()
		}
	}
	return nil
}

// Behaviors returns the currently attached behaviors.
func (el *Element) Behaviors() []Behavior {
	return el.behaviors
}
