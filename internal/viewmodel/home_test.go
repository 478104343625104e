package viewmodel

import (
	"testing"

	"github.com/egbakou/eventtocommand/internal/messaging"
)

func TestFocusedCommandPublishes(t *testing.T) {
	center := messaging.NewCenter()
	vm := NewHome(center)

	var sender any
	calls := 0
	center.Subscribe(TopicFocused, func(s, _ any) {
		sender = s
		calls++
	})

	vm.FocusedCommand.Execute(nil)

	if calls != 1 {
		t.Fatalf("got %d Focused messages, want 1", calls)
	}
	if sender != vm {
		t.Error("message must be tagged with the publishing view model")
	}
}

func TestTextChangedCommandForwardsParameter(t *testing.T) {
	center := messaging.NewCenter()
	vm := NewHome(center)

	var payload any
	center.Subscribe(TopicTextChanged, func(_, p any) { payload = p })

	vm.TextChangedCommand.Execute("new text")

	if payload != "new text" {
		t.Errorf("payload = %v, want %q", payload, "new text")
	}
}

func TestCommandNamed(t *testing.T) {
	vm := NewHome(messaging.NewCenter())

	tests := []struct {
		name    string
		wantNil bool
	}{
		{"FocusedCommand", false},
		{"TextChangedCommand", false},
		{"MissingCommand", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := vm.CommandNamed(tt.name)
			if (cmd == nil) != tt.wantNil {
				t.Errorf("CommandNamed(%q) nil = %v, want %v", tt.name, cmd == nil, tt.wantNil)
			}
		})
	}
}

func TestSetEntryTextNotifies(t *testing.T) {
	vm := NewHome(messaging.NewCenter())

	var props []string
	vm.OnChange(func(property string) { props = append(props, property) })

	if !vm.SetEntryText("hello") {
		t.Error("SetEntryText with new value must return true")
	}
	if vm.SetEntryText("hello") {
		t.Error("SetEntryText with unchanged value must return false")
	}

	if len(props) != 1 || props[0] != "EntryText" {
		t.Errorf("notifications = %v, want exactly one for EntryText", props)
	}
	if vm.EntryText() != "hello" {
		t.Errorf("EntryText() = %q, want %q", vm.EntryText(), "hello")
	}
}
