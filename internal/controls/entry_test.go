package controls

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

var errAttachRefused = errors.New("attach refused")

func typeRune(e *Entry, r rune) {
	e.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

func TestEntryFocusRaisesEvent(t *testing.T) {
	e := NewEntry()

	var payloads []any
	ev, ok := e.Events().Lookup(EventFocused)
	if !ok {
		t.Fatal("Entry must declare the Focused event")
	}
	ev.Subscribe(func(p any) { payloads = append(payloads, p) })

	e.Focus()

	if len(payloads) != 1 {
		t.Fatalf("got %d Focused events, want 1", len(payloads))
	}
	args, ok := payloads[0].(FocusArgs)
	if !ok || !args.Focused {
		t.Errorf("payload = %v, want FocusArgs{Focused: true}", payloads[0])
	}

	// Focusing again must not raise a second event
	e.Focus()
	if len(payloads) != 1 {
		t.Errorf("got %d Focused events after redundant Focus, want 1", len(payloads))
	}
}

func TestEntryBlurRaisesUnfocused(t *testing.T) {
	e := NewEntry()
	e.Focus()

	calls := 0
	ev, _ := e.Events().Lookup(EventUnfocused)
	ev.Subscribe(func(any) { calls++ })

	e.Blur()
	e.Blur() // redundant

	if calls != 1 {
		t.Errorf("got %d Unfocused events, want 1", calls)
	}
}

func TestEntryTypingRaisesTextChanged(t *testing.T) {
	e := NewEntry()
	e.Focus()

	var changes []TextChangedArgs
	ev, _ := e.Events().Lookup(EventTextChanged)
	ev.Subscribe(func(p any) {
		changes = append(changes, p.(TextChangedArgs))
	})

	typeRune(e, 'h')
	typeRune(e, 'i')

	if len(changes) != 2 {
		t.Fatalf("got %d TextChanged events, want 2", len(changes))
	}
	if changes[0].Old != "" || changes[0].New != "h" {
		t.Errorf("first change = %+v, want {Old: \"\", New: \"h\"}", changes[0])
	}
	if changes[1].Old != "h" || changes[1].New != "hi" {
		t.Errorf("second change = %+v, want {Old: \"h\", New: \"hi\"}", changes[1])
	}
}

func TestEntrySetValue(t *testing.T) {
	e := NewEntry()

	calls := 0
	ev, _ := e.Events().Lookup(EventTextChanged)
	ev.Subscribe(func(any) { calls++ })

	e.SetValue("hello")
	e.SetValue("hello") // same value, no event

	if calls != 1 {
		t.Errorf("got %d TextChanged events, want 1", calls)
	}
	if e.Value() != "hello" {
		t.Errorf("Value() = %q, want %q", e.Value(), "hello")
	}
}

func TestEntryNonEditingKeysRaiseNothing(t *testing.T) {
	e := NewEntry()
	e.Focus()
	e.SetValue("stable")

	calls := 0
	ev, _ := e.Events().Lookup(EventTextChanged)
	ev.Subscribe(func(any) { calls++ })

	e.Update(tea.KeyMsg{Type: tea.KeyLeft})
	e.Update(tea.KeyMsg{Type: tea.KeyRight})

	if calls != 0 {
		t.Errorf("cursor movement raised %d TextChanged events, want 0", calls)
	}
}

func TestElementBindingContext(t *testing.T) {
	e := NewEntry()

	var seen []any
	e.BindingContextChanged().Subscribe(func(ctx any) { seen = append(seen, ctx) })

	vm := struct{ name string }{"vm"}
	e.SetBindingContext(&vm)

	if e.BindingContext() != &vm {
		t.Error("BindingContext() did not return the assigned context")
	}
	if len(seen) != 1 || seen[0] != &vm {
		t.Errorf("BindingContextChanged saw %v, want the new context once", seen)
	}
}

type stubBehavior struct {
	attached Host
	attaches int
	detaches int
	fail     error
}

func (b *stubBehavior) Attach(host Host) error {
	if b.fail != nil {
		return b.fail
	}
	b.attached = host
	b.attaches++
	return nil
}

func TestElementAddBehaviorFailure(t *testing.T) {
	e := NewEntry()
	b := &stubBehavior{fail: errAttachRefused}

	if err := e.AddBehavior(b); err == nil {
		t.Fatal("AddBehavior() must propagate the attach error")
	}
	if len(e.Behaviors()) != 0 {
		t.Errorf("failed attach must not add the behavior, got %d", len(e.Behaviors()))
	}
}

func (b *stubBehavior) Detach() error {
	b.attached = nil
	b.detaches++
	return nil
}

func TestElementBehaviorCollection(t *testing.T) {
	e := NewEntry()
	b := &stubBehavior{}

	if err := e.AddBehavior(b); err != nil {
		t.Fatalf("AddBehavior() error = %v", err)
	}
	if b.attached != e {
		t.Error("behavior attached to wrong host: want the Entry itself")
	}
	if len(e.Behaviors()) != 1 {
		t.Fatalf("Behaviors() len = %d, want 1", len(e.Behaviors()))
	}

	if err := e.RemoveBehavior(b); err != nil {
		t.Fatalf("RemoveBehavior() error = %v", err)
	}
	if b.detaches != 1 {
		t.Errorf("detaches = %d, want 1", b.detaches)
	}
	if len(e.Behaviors()) != 0 {
		t.Errorf("Behaviors() len = %d after removal, want 0", len(e.Behaviors()))
	}

	// Removing again is a no-op
	if err := e.RemoveBehavior(b); err != nil {
		t.Errorf("RemoveBehavior() of absent behavior error = %v, want nil", err)
	}
	if b.detaches != 1 {
		t.Errorf("detaches = %d after redundant removal, want 1", b.detaches)
	}
}
