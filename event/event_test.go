package event

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestTranslateKeyMsg(t *testing.T) {
	msg := tea.KeyMsg{Type: tea.KeyCtrlS}
	evt, ok := Translate(msg)
	if !ok {
		t.Fatalf("expected key message to translate")
	}
	if evt.Kind != KeyDown {
		t.Fatalf("expected KeyDown, got %v", evt.Kind)
	}
	if evt.Key != "ctrl+s" {
		t.Fatalf("expected ctrl+s, got %q", evt.Key)
	}
}

func TestTranslateRuneKeyCarriesRunes(t *testing.T) {
	msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}
	evt, ok := Translate(msg)
	if !ok {
		t.Fatalf("expected key message to translate")
	}
	if len(evt.Runes) != 1 || evt.Runes[0] != 'x' {
		t.Fatalf("expected runes [x], got %v", evt.Runes)
	}
}

func TestTranslateMousePress(t *testing.T) {
	msg := tea.MouseMsg{X: 3, Y: 7, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	evt, ok := Translate(msg)
	if !ok {
		t.Fatalf("expected mouse message to translate")
	}
	if evt.Kind != MouseDown {
		t.Fatalf("expected MouseDown, got %v", evt.Kind)
	}
	if evt.X != 3 || evt.Y != 7 {
		t.Fatalf("expected coordinates (3,7), got (%d,%d)", evt.X, evt.Y)
	}
}

func TestTranslateWheel(t *testing.T) {
	msg := tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown}
	evt, ok := Translate(msg)
	if !ok {
		t.Fatalf("expected mouse message to translate")
	}
	if evt.Kind != ScrollWheel {
		t.Fatalf("expected ScrollWheel, got %v", evt.Kind)
	}
}

func TestTranslateIgnoresOtherMessages(t *testing.T) {
	if _, ok := Translate(tea.WindowSizeMsg{Width: 80, Height: 24}); ok {
		t.Fatalf("expected window size message to fall through")
	}
	if _, ok := Translate(nil); ok {
		t.Fatalf("expected nil message to fall through")
	}
}
