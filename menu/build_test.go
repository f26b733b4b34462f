package menu

import (
	"strings"
	"testing"
)

func sampleMenus() []Menu {
	return []Menu{
		{
			Name: "File",
			Items: []Item{
				{Name: "Open", Keystroke: "cmd-o", Action: "file:open"},
				{Separator: true},
				{Name: "Save", Keystroke: "cmd-s", Action: "file:save", Arg: "save-arg"},
				{Name: "Close", Action: "file:close"},
			},
		},
		{
			Name: "Edit",
			Items: []Item{
				{Separator: true},
				{Name: "Copy", Keystroke: "ctrl-alt-c", Action: "edit:copy"},
			},
		},
	}
}

func TestBuildAssignsDenseTagsSkippingSeparators(t *testing.T) {
	bar, actions, err := Build(sampleMenus())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if len(actions) != 4 {
		t.Fatalf("expected 4 action entries, got %d", len(actions))
	}
	wantActions := []string{"file:open", "file:save", "file:close", "edit:copy"}
	for i, want := range wantActions {
		if actions[i].Action != want {
			t.Fatalf("expected action %d to be %q, got %q", i, want, actions[i].Action)
		}
	}
	if actions[1].Arg != "save-arg" {
		t.Fatalf("expected arg for tag 1, got %v", actions[1].Arg)
	}

	tags := []int{}
	for _, m := range bar.Menus {
		for _, item := range m.Items {
			if item.Separator {
				if item.Tag != -1 {
					t.Fatalf("expected separator tag -1, got %d", item.Tag)
				}
				continue
			}
			tags = append(tags, item.Tag)
		}
	}
	for i, tag := range tags {
		if tag != i {
			t.Fatalf("expected tag %d at position %d, got %d", i, i, tag)
		}
	}
}

func TestBuildDecodesModifierMask(t *testing.T) {
	bar, _, err := Build(sampleMenus())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	open := bar.Menus[0].Items[0]
	if open.Mods != ModCmd {
		t.Fatalf("expected ModCmd for Open, got %v", open.Mods)
	}
	if open.Key != "o" {
		t.Fatalf("expected bare key o, got %q", open.Key)
	}
	copyItem := bar.Menus[1].Items[1]
	if copyItem.Mods != ModCtrl|ModAlt {
		t.Fatalf("expected ModCtrl|ModAlt for Copy, got %v", copyItem.Mods)
	}
	closeItem := bar.Menus[0].Items[3]
	if closeItem.HasAccel {
		t.Fatalf("expected Close to have no accelerator")
	}
}

func TestBuildFailsOnMalformedKeystrokeNamingMenuAndItem(t *testing.T) {
	menus := []Menu{
		{
			Name: "File",
			Items: []Item{
				{Name: "Broken", Keystroke: "cmd-", Action: "file:broken"},
			},
		},
	}
	_, _, err := Build(menus)
	if err == nil {
		t.Fatalf("expected error for malformed keystroke")
	}
	if !strings.Contains(err.Error(), `menu "File"`) || !strings.Contains(err.Error(), `item "Broken"`) {
		t.Fatalf("error %q does not name menu and item", err)
	}
}

func TestLookupFindsItemByTag(t *testing.T) {
	bar, _, err := Build(sampleMenus())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	item, ok := bar.Lookup(2)
	if !ok {
		t.Fatalf("expected to find tag 2")
	}
	if item.Title != "Close" {
		t.Fatalf("expected Close, got %q", item.Title)
	}
	if _, ok := bar.Lookup(99); ok {
		t.Fatalf("expected lookup miss for stale tag")
	}
	if _, ok := bar.Lookup(-1); ok {
		t.Fatalf("expected lookup miss for separator tag")
	}
}
