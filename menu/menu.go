// Package menu converts a declarative menu tree into a renderable menu
// bar plus a flat, tag-indexed action table. Native menu items can only
// carry a small integer tag, so the table is the single source of truth
// mapping an activation back to its command and optional argument.
package menu

import "github.com/charmbracelet/bubbles/key"

// Menu is one top-level menu: a title plus its ordered items.
type Menu struct {
	Name  string
	Items []Item
}

// Item is a single entry in a declarative menu. A separator carries no
// other fields; an action carries a display name, an optional
// accelerator string (see package keystroke), the command name fired on
// activation, and an optional opaque argument delivered alongside it.
type Item struct {
	Separator bool
	Name      string
	Keystroke string
	Action    string
	Arg       any
}

// ActionEntry is one row of the action table. The row's index is the
// tag assigned to the menu item that produced it.
type ActionEntry struct {
	Action string
	Arg    any
}

// ModMask holds the accelerator modifier flags as independent bits.
type ModMask uint8

const (
	ModCmd ModMask = 1 << iota
	ModCtrl
	ModAlt
)

// NativeMenu is a built, displayable menu.
type NativeMenu struct {
	Title string
	Items []NativeItem
}

// NativeItem is a built menu entry. Interactive items carry the tag
// indexing the action table; separators carry tag -1 and no accelerator.
type NativeItem struct {
	Separator bool
	Title     string
	Key       string
	Mods      ModMask
	Hint      string
	Tag       int
	Accel     key.Binding
	HasAccel  bool
}

// Bar is the built menu bar installed on the shell.
type Bar struct {
	Menus []NativeMenu
}

// Lookup returns the item carrying the given tag.
func (b *Bar) Lookup(tag int) (NativeItem, bool) {
	if b == nil || tag < 0 {
		return NativeItem{}, false
	}
	for _, m := range b.Menus {
		for _, item := range m.Items {
			if !item.Separator && item.Tag == tag {
				return item, true
			}
		}
	}
	return NativeItem{}, false
}
