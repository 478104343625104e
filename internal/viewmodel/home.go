// Package viewmodel holds the sample's view models. A view model owns
// the commands the UI binds to and talks back to the rest of the
// application through the injected message center.
package viewmodel

import (
	"github.com/egbakou/eventtocommand/internal/binding"
	"github.com/egbakou/eventtocommand/internal/messaging"
)

// Topics published by Home. The page subscribes to these to show its
// acknowledgment dialogs.
const (
	TopicFocused     = "Focused"
	TopicTextChanged = "TextChanged"
)

// Home is the view model for the demo page. Its two commands do nothing
// but publish a notification, which is all the sample needs to show the
// event-to-command round trip.
type Home struct {
	binding.ObservableObject

	center *messaging.Center

	entryText string

	// FocusedCommand publishes TopicFocused when the entry gains focus.
	FocusedCommand binding.Command

	// TextChangedCommand publishes TopicTextChanged with the event
	// payload when the entry's text changes.
	TextChangedCommand binding.Command
}

// NewHome creates the view model publishing on center.
func NewHome(center *messaging.Center) *Home {
	vm := &Home{center: center}

	vm.FocusedCommand = binding.NewRelayCommand(func(any) {
		center.Publish(vm, TopicFocused, nil)
	})
	vm.TextChangedCommand = binding.NewRelayCommand(func(parameter any) {
		center.Publish(vm, TopicTextChanged, parameter)
	})

	return vm
}

// CommandNamed resolves a command by the name used in configuration.
// Unknown names return nil.
func (vm *Home) CommandNamed(name string) binding.Command {
	switch name {
	case "FocusedCommand":
		return vm.FocusedCommand
	case "TextChangedCommand":
		return vm.TextChangedCommand
	default:
		return nil
	}
}

// EntryText returns the mirrored entry text.
func (vm *Home) EntryText() string {
	return vm.entryText
}

// SetEntryText updates the mirrored entry text, notifying observers of
// the EntryText property on change.
func (vm *Home) SetEntryText(text string) bool {
	return binding.SetProperty(&vm.ObservableObject, &vm.entryText, text, "EntryText")
}
