// Package dialog implements the shell's modal open and save panels.
// A panel is presented by the platform binding, receives the input the
// shell routes to it while active, and resolves exactly once: with the
// chosen paths on confirmation or with nothing on cancellation. An
// abandoned panel simply never resolves.
package dialog

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Options controls what an open panel lets the user choose. Each flag
// toggles independently.
type Options struct {
	Directories bool
	Files       bool
	Multiple    bool
}

// OpenDone receives the open panel result. ok is false on cancellation;
// a confirmed selection may legitimately be empty.
type OpenDone func(paths []string, ok bool)

// SaveDone receives the save panel result. ok is false on cancellation
// or when the chosen name is not expressible as a local path.
type SaveDone func(path string, ok bool)

type keyBindings struct {
	Up      key.Binding
	Down    key.Binding
	Descend key.Binding
	Ascend  key.Binding
	Toggle  key.Binding
	Confirm key.Binding
	Cancel  key.Binding
}

var panelKeys = keyBindings{
	Up:      key.NewBinding(key.WithKeys("up", "ctrl+p"), key.WithHelp("↑", "move up")),
	Down:    key.NewBinding(key.WithKeys("down", "ctrl+n"), key.WithHelp("↓", "move down")),
	Descend: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "enter directory")),
	Ascend:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "parent directory")),
	Toggle:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "toggle selection")),
	Confirm: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
	Cancel:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
}

// filterNames returns the entries of names matching the query, keeping
// declaration order. Fuzzy ranking first, substring fallback second,
// mirroring how the shell filters menu listings elsewhere.
func filterNames(names []string, query string) []string {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return append([]string(nil), names...)
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, names)
	if len(ranks) > 0 {
		matches := make(map[int]struct{}, len(ranks))
		for _, rank := range ranks {
			matches[rank.OriginalIndex] = struct{}{}
		}
		filtered := make([]string, 0, len(matches))
		for idx, name := range names {
			if _, ok := matches[idx]; ok {
				filtered = append(filtered, name)
			}
		}
		if len(filtered) > 0 {
			return filtered
		}
	}
	lower := strings.ToLower(trimmed)
	filtered := make([]string, 0, len(names))
	for _, name := range names {
		if strings.Contains(strings.ToLower(name), lower) {
			filtered = append(filtered, name)
		}
	}
	return filtered
}
