// Package keystroke parses accelerator strings such as "cmd-s" or
// "ctrl-shift-k" into their modifier flags and bare key character.
package keystroke

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/key"
)

// Keystroke is a parsed accelerator: independent modifier booleans plus
// the bare key the modifiers apply to.
type Keystroke struct {
	Ctrl  bool
	Alt   bool
	Shift bool
	Cmd   bool
	Key   string
}

// namedKeys lists the non-character keys an accelerator may name.
var namedKeys = map[string]struct{}{
	"enter":     {},
	"escape":    {},
	"tab":       {},
	"space":     {},
	"backspace": {},
	"delete":    {},
	"up":        {},
	"down":      {},
	"left":      {},
	"right":     {},
	"home":      {},
	"end":       {},
	"pgup":      {},
	"pgdown":    {},
	"f1":        {},
	"f2":        {},
	"f3":        {},
	"f4":        {},
	"f5":        {},
	"f6":        {},
	"f7":        {},
	"f8":        {},
	"f9":        {},
	"f10":       {},
	"f11":       {},
	"f12":       {},
}

// Parse decodes a dash-separated accelerator string. Every token before
// the last must be a modifier name; the last token is the key itself,
// either a single character or one of the named keys.
func Parse(source string) (Keystroke, error) {
	var ks Keystroke
	if strings.TrimSpace(source) == "" {
		return ks, fmt.Errorf("empty keystroke")
	}
	tokens := strings.Split(source, "-")
	for i, token := range tokens {
		last := i == len(tokens)-1
		switch token {
		case "ctrl":
			if last {
				return ks, fmt.Errorf("keystroke %q ends with a modifier", source)
			}
			ks.Ctrl = true
		case "alt":
			if last {
				return ks, fmt.Errorf("keystroke %q ends with a modifier", source)
			}
			ks.Alt = true
		case "shift":
			if last {
				return ks, fmt.Errorf("keystroke %q ends with a modifier", source)
			}
			ks.Shift = true
		case "cmd":
			if last {
				return ks, fmt.Errorf("keystroke %q ends with a modifier", source)
			}
			ks.Cmd = true
		default:
			if !last {
				return ks, fmt.Errorf("keystroke %q contains unknown modifier %q", source, token)
			}
			if err := validateKey(source, token); err != nil {
				return ks, err
			}
			ks.Key = token
		}
	}
	return ks, nil
}

func validateKey(source, token string) error {
	if token == "" {
		return fmt.Errorf("keystroke %q is missing a key", source)
	}
	if utf8.RuneCountInString(token) == 1 {
		return nil
	}
	if _, ok := namedKeys[token]; ok {
		return nil
	}
	return fmt.Errorf("keystroke %q names unknown key %q", source, token)
}

// TermString renders the keystroke in the terminal key notation used by
// incoming key events. Terminals have no command key, so the primary
// modifier collapses onto ctrl.
func (ks Keystroke) TermString() string {
	var b strings.Builder
	if ks.Ctrl || ks.Cmd {
		b.WriteString("ctrl+")
	}
	if ks.Alt {
		b.WriteString("alt+")
	}
	if ks.Shift {
		b.WriteString("shift+")
	}
	b.WriteString(ks.Key)
	return b.String()
}

// Binding converts the keystroke into a matchable key binding.
func (ks Keystroke) Binding(help string) key.Binding {
	return key.NewBinding(
		key.WithKeys(ks.TermString()),
		key.WithHelp(ks.TermString(), help),
	)
}

// String renders the canonical dash-separated form.
func (ks Keystroke) String() string {
	var b strings.Builder
	if ks.Cmd {
		b.WriteString("cmd-")
	}
	if ks.Ctrl {
		b.WriteString("ctrl-")
	}
	if ks.Alt {
		b.WriteString("alt-")
	}
	if ks.Shift {
		b.WriteString("shift-")
	}
	b.WriteString(ks.Key)
	return b.String()
}
