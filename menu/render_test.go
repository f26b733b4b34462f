package menu

import (
	"strings"
	"testing"
)

func TestMenuViewRendersHintColumn(t *testing.T) {
	bar, _, err := Build(sampleMenus())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	view := bar.MenuView(0, 0, 0)
	lines := strings.Split(view, "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 rows, got %d:\n%s", len(lines), view)
	}
	if !strings.Contains(lines[0], "Open") || !strings.Contains(lines[0], "cmd-o") {
		t.Fatalf("expected title and hint on row 0, got %q", lines[0])
	}
	if !strings.Contains(lines[1], "─") {
		t.Fatalf("expected separator row, got %q", lines[1])
	}
	if !strings.Contains(lines[3], "Close") || strings.Contains(lines[3], "cmd-") {
		t.Fatalf("expected accel-less row for Close, got %q", lines[3])
	}
}

func TestTitlesViewHighlightsActiveMenu(t *testing.T) {
	bar, _, err := Build(sampleMenus())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	view := bar.TitlesView(-1)
	if !strings.Contains(view, "File") || !strings.Contains(view, "Edit") {
		t.Fatalf("expected both titles, got %q", view)
	}
}
