// Package event defines the shell-independent input event handed to
// the UI runtime, plus the translation from native shell messages.
package event

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Kind discriminates translated input events.
type Kind int

const (
	KeyDown Kind = iota
	MouseDown
	MouseUp
	MouseMove
	ScrollWheel
)

// Event is a translated input event. Key events carry the terminal key
// notation (for example "ctrl+s") and any literal runes; mouse events
// carry cell coordinates and the originating button.
type Event struct {
	Kind   Kind
	Key    string
	Runes  []rune
	Paste  bool
	X      int
	Y      int
	Button tea.MouseButton
	Shift  bool
	Alt    bool
	Ctrl   bool
}

// Translate converts a native shell message into an Event. The second
// return value reports whether a translation exists; untranslatable
// messages fall through to the shell's default handling.
func Translate(msg tea.Msg) (Event, bool) {
	switch m := msg.(type) {
	case tea.KeyMsg:
		return Event{
			Kind:  KeyDown,
			Key:   m.String(),
			Runes: m.Runes,
			Paste: m.Paste,
			Alt:   m.Alt,
		}, true
	case tea.MouseMsg:
		evt := Event{
			X:      m.X,
			Y:      m.Y,
			Button: m.Button,
			Shift:  m.Shift,
			Alt:    m.Alt,
			Ctrl:   m.Ctrl,
		}
		switch {
		case m.Button == tea.MouseButtonWheelUp,
			m.Button == tea.MouseButtonWheelDown,
			m.Button == tea.MouseButtonWheelLeft,
			m.Button == tea.MouseButtonWheelRight:
			evt.Kind = ScrollWheel
		case m.Action == tea.MouseActionPress:
			evt.Kind = MouseDown
		case m.Action == tea.MouseActionRelease:
			evt.Kind = MouseUp
		default:
			evt.Kind = MouseMove
		}
		return evt, true
	}
	return Event{}, false
}
