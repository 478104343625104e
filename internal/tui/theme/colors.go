// Package theme holds the color palette used by the TUI. Defaults match
// config.Default; Apply overrides them from the loaded configuration.
package theme

import "github.com/egbakou/eventtocommand/internal/config"

var (
	// Accent highlights the focused control and dialog titles
	Accent = "205"

	// Subtle is used for hints and secondary text
	Subtle = "241"

	// Border is the frame color for the entry box
	Border = "62"

	// Dialog is the border color for modal dialogs
	Dialog = "170"
)

// Apply overrides the palette with values from the loaded config.
func Apply(t config.Theme) {
	if t.Accent != "" {
		Accent = t.Accent
	}
	if t.Subtle != "" {
		Subtle = t.Subtle
	}
	if t.Border != "" {
		Border = t.Border
	}
	if t.Dialog != "" {
		Dialog = t.Dialog
	}
}
