package controls

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Event names declared by Entry. Behaviors address these by string, the
// same names a markup surface would use.
const (
	EventFocused     = "Focused"
	EventUnfocused   = "Unfocused"
	EventTextChanged = "TextChanged"
)

// FocusArgs is the payload of the Focused and Unfocused events.
type FocusArgs struct {
	Focused bool
}

// TextChangedArgs is the payload of the TextChanged event.
type TextChangedArgs struct {
	Old string
	New string
}

// Entry is a single-line text control backed by a bubbles text input.
// It raises Focused/Unfocused on focus transitions and TextChanged
// whenever its value changes, from typing or programmatic assignment.
type Entry struct {
	*Element

	input       textinput.Model
	focused     *Event
	unfocused   *Event
	textChanged *Event
}

// NewEntry creates an Entry with its full event table declared.
func NewEntry() *Entry {
	input := textinput.New()
	input.Prompt = "> "

	e := &Entry{input: input}
	e.Element = NewElement(e)

	e.focused = e.Events().Declare(EventFocused)
	e.unfocused = e.Events().Declare(EventUnfocused)
	e.textChanged = e.Events().Declare(EventTextChanged)

	return e
}

// SetPlaceholder sets the hint text shown while the entry is empty.
func (e *Entry) SetPlaceholder(text string) {
	e.input.Placeholder = text
}

// SetWidth sets the rendered width of the input field.
func (e *Entry) SetWidth(width int) {
	e.input.Width = width
}

// Value returns the current text.
func (e *Entry) Value() string {
	return e.input.Value()
}

// SetValue assigns the text, raising TextChanged when it differs from
// the current value.
func (e *Entry) SetValue(text string) {
	old := e.input.Value()
	if old == text {
		return
	}
	e.input.SetValue(text)
	e.textChanged.Raise(TextChangedArgs{Old: old, New: text})
}

// Focused reports whether the entry has input focus.
func (e *Entry) Focused() bool {
	return e.input.Focused()
}

// Focus gives the entry input focus and raises the Focused event.
// Focusing an already-focused entry is a no-op.
func (e *Entry) Focus() tea.Cmd {
	if e.input.Focused() {
		return nil
	}
	cmd := e.input.Focus()
	e.focused.Raise(FocusArgs{Focused: true})
	return cmd
}

// Blur removes input focus and raises the Unfocused event.
// Blurring an unfocused entry is a no-op.
func (e *Entry) Blur() {
	if !e.input.Focused() {
		return
	}
	e.input.Blur()
	e.unfocused.Raise(FocusArgs{Focused: false})
}

// Update forwards msg to the underlying text input and raises
// TextChanged when the value changed as a result.
func (e *Entry) Update(msg tea.Msg) tea.Cmd {
	old := e.input.Value()

	var cmd tea.Cmd
	e.input, cmd = e.input.Update(msg)

	if current := e.input.Value(); current != old {
		e.textChanged.Raise(TextChangedArgs{Old: old, New: current})
	}
	return cmd
}

// View renders the entry.
func (e *Entry) View() string {
	return e.input.View()
}
