package keystroke

import (
	"strings"
	"testing"
)

func TestParseDecodesModifiersAndKey(t *testing.T) {
	cases := []struct {
		source string
		want   Keystroke
	}{
		{"s", Keystroke{Key: "s"}},
		{"cmd-s", Keystroke{Cmd: true, Key: "s"}},
		{"ctrl-alt-k", Keystroke{Ctrl: true, Alt: true, Key: "k"}},
		{"cmd-shift-enter", Keystroke{Cmd: true, Shift: true, Key: "enter"}},
		{"f5", Keystroke{Key: "f5"}},
	}
	for _, tc := range cases {
		got, err := Parse(tc.source)
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", tc.source, err)
		}
		if got != tc.want {
			t.Fatalf("Parse(%q) = %#v, want %#v", tc.source, got, tc.want)
		}
	}
}

func TestParseRejectsMalformedInput(t *testing.T) {
	cases := []struct {
		source string
		frag   string
	}{
		{"", "empty keystroke"},
		{"cmd-", "missing a key"},
		{"cmd", "ends with a modifier"},
		{"ctrl-shift", "ends with a modifier"},
		{"meta-s", "unknown modifier"},
		{"cmd-banana", "unknown key"},
	}
	for _, tc := range cases {
		_, err := Parse(tc.source)
		if err == nil {
			t.Fatalf("Parse(%q) succeeded, want error", tc.source)
		}
		if !strings.Contains(err.Error(), tc.frag) {
			t.Fatalf("Parse(%q) error %q does not mention %q", tc.source, err, tc.frag)
		}
	}
}

func TestTermStringCollapsesCmdOntoCtrl(t *testing.T) {
	ks, err := Parse("cmd-o")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if got := ks.TermString(); got != "ctrl+o" {
		t.Fatalf("expected ctrl+o, got %q", got)
	}

	ks, err = Parse("ctrl-alt-shift-x")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if got := ks.TermString(); got != "ctrl+alt+shift+x" {
		t.Fatalf("expected ctrl+alt+shift+x, got %q", got)
	}
}

func TestStringRoundTripsCanonicalForm(t *testing.T) {
	ks, err := Parse("cmd-shift-k")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if got := ks.String(); got != "cmd-shift-k" {
		t.Fatalf("expected cmd-shift-k, got %q", got)
	}
}

func TestBindingMatchesTermNotation(t *testing.T) {
	ks, err := Parse("ctrl-p")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	binding := ks.Binding("print")
	keys := binding.Keys()
	if len(keys) != 1 || keys[0] != "ctrl+p" {
		t.Fatalf("expected binding keys [ctrl+p], got %v", keys)
	}
}
