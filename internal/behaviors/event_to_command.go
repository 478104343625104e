package behaviors

import (
	"github.com/egbakou/eventtocommand/internal/binding"
	"github.com/egbakou/eventtocommand/internal/controls"
)

// EventToCommandBehavior bridges one named host event to a bound
// command. On each firing it resolves the command parameter — the
// explicit CommandParameter when set, else the converter's transform of
// the event payload, else the raw payload — and invokes the command if
// its guard allows.
//
// At most one registration is live per behavior instance: renaming the
// target event fully deregisters the old handler before registering the
// new one.
type EventToCommandBehavior struct {
	Base

	eventName        string
	command          binding.Command
	commandParameter any
	converter        binding.ValueConverter

	token controls.Token
}

// NewEventToCommand creates a behavior targeting the named event.
// The command is bound separately via SetCommand.
func NewEventToCommand(eventName string) *EventToCommandBehavior {
	return &EventToCommandBehavior{eventName: eventName}
}

// EventName returns the currently configured event name.
func (b *EventToCommandBehavior) EventName() string {
	return b.eventName
}

// SetEventName reconfigures which host event is bridged. While attached,
// the old registration is removed before the new one is created, so a
// rename never leaks a duplicate handler. Either side failing to resolve
// returns a *BindingError.
func (b *EventToCommandBehavior) SetEventName(name string) error {
	if name == b.eventName {
		return nil
	}

	if b.Host() == nil {
		b.eventName = name
		return nil
	}

	if err := b.deregister(); err != nil {
		return err
	}
	b.eventName = name
	return b.register()
}

// Command returns the bound command, or nil.
func (b *EventToCommandBehavior) Command() binding.Command {
	return b.command
}

// SetCommand binds the command invoked when the event fires.
func (b *EventToCommandBehavior) SetCommand(cmd binding.Command) {
	b.command = cmd
}

// SetCommandParameter sets an explicit parameter that overrides both the
// converter and the raw event payload.
func (b *EventToCommandBehavior) SetCommandParameter(parameter any) {
	b.commandParameter = parameter
}

// SetConverter sets the transform applied to the raw event payload when
// no explicit CommandParameter is configured.
func (b *EventToCommandBehavior) SetConverter(converter binding.ValueConverter) {
	b.converter = converter
}

// Attach binds to host and registers the handler on the configured
// event. An unresolvable event name fails with *BindingError and leaves
// the behavior fully detached, with no handler registered.
func (b *EventToCommandBehavior) Attach(host controls.Host) error {
	if err := b.Base.Attach(host); err != nil {
		return err
	}
	if err := b.register(); err != nil {
		// Roll back the base attachment so a failed attach leaves no
		// trace on the host.
		_ = b.Base.Detach()
		return err
	}
	return nil
}

// Detach deregisters the handler from the configured event and releases
// the host. Like attach, an event name that no longer resolves fails
// with *BindingError.
func (b *EventToCommandBehavior) Detach() error {
	if b.Host() == nil {
		return nil
	}
	if err := b.deregister(); err != nil {
		return err
	}
	return b.Base.Detach()
}

// register subscribes the dispatch handler under the current event name.
// An empty name registers nothing.
func (b *EventToCommandBehavior) register() error {
	if b.eventName == "" {
		return nil
	}

	ev, ok := b.Host().Events().Lookup(b.eventName)
	if !ok {
		return newBindingError(b.eventName, b.Host())
	}
	b.token = ev.Subscribe(b.onEvent)
	return nil
}

// deregister removes the live registration, resolving the event by the
// current name as the original attach did.
func (b *EventToCommandBehavior) deregister() error {
	if b.token == 0 {
		return nil
	}

	ev, ok := b.Host().Events().Lookup(b.eventName)
	if !ok {
		return newBindingError(b.eventName, b.Host())
	}
	ev.Unsubscribe(b.token)
	b.token = 0
	return nil
}

// onEvent dispatches one event firing to the bound command. No bound
// command is a silent no-op.
func (b *EventToCommandBehavior) onEvent(payload any) {
	if b.command == nil {
		return
	}

	parameter := b.commandParameter
	if parameter == nil && b.converter != nil {
		parameter = b.converter.Convert(payload)
	} else if parameter == nil {
		parameter = payload
	}

	if !b.command.CanExecute(parameter) {
		return
	}
	b.command.Execute(parameter)
}
