package menu

import (
	"fmt"

	"github.com/termshell/termshell/keystroke"
)

// Build walks the declarative tree and produces the displayable bar
// together with the rebuilt action table. Tags are assigned to
// interactive items only, in declaration order, each equal to the table
// length at the moment the item is created; separators never consume an
// index. A malformed accelerator aborts the build: that is a defect in
// the menu description, not a runtime condition.
func Build(menus []Menu) (*Bar, []ActionEntry, error) {
	bar := &Bar{Menus: make([]NativeMenu, 0, len(menus))}
	actions := make([]ActionEntry, 0)

	for _, m := range menus {
		native := NativeMenu{Title: m.Name, Items: make([]NativeItem, 0, len(m.Items))}
		for _, item := range m.Items {
			if item.Separator {
				native.Items = append(native.Items, NativeItem{Separator: true, Tag: -1})
				continue
			}

			built := NativeItem{Title: item.Name, Tag: len(actions)}
			if item.Keystroke != "" {
				ks, err := keystroke.Parse(item.Keystroke)
				if err != nil {
					return nil, nil, fmt.Errorf("menu %q item %q: %w", m.Name, item.Name, err)
				}
				var mods ModMask
				if ks.Cmd {
					mods |= ModCmd
				}
				if ks.Ctrl {
					mods |= ModCtrl
				}
				if ks.Alt {
					mods |= ModAlt
				}
				built.Key = ks.Key
				built.Mods = mods
				built.Hint = ks.String()
				built.Accel = ks.Binding(item.Name)
				built.HasAccel = true
			}

			actions = append(actions, ActionEntry{Action: item.Action, Arg: item.Arg})
			native.Items = append(native.Items, built)
		}
		bar.Menus = append(bar.Menus, native)
	}

	return bar, actions, nil
}
