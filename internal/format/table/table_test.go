package table

import (
	"strings"
	"testing"

	"github.com/termshell/termshell/internal/testutil"
)

func TestFormatAlignsColumns(t *testing.T) {
	rows := [][]string{
		{"open", "ctrl+o"},
		{"save as", "ctrl+shift+s"},
	}
	got := Format(rows, []Alignment{AlignLeft, AlignRight})
	expected := []string{
		"open           ctrl+o",
		"save as  ctrl+shift+s",
	}
	if len(got) != len(expected) {
		t.Fatalf("expected %d rows, got %d", len(expected), len(got))
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Fatalf("row %d: expected %q, got %q", i, expected[i], got[i])
		}
	}
}

func TestFormatMeasuresWideRunes(t *testing.T) {
	rows := [][]string{
		{"日本語", "a"},
		{"go", "b"},
	}
	got := Format(rows, []Alignment{AlignLeft, AlignLeft})
	if got[0] != "日本語  a" {
		t.Fatalf("unexpected wide-rune row %q", got[0])
	}
	if got[1] != "go      b" {
		t.Fatalf("expected padding to wide-rune width, got %q", got[1])
	}
}

func TestFormatEmpty(t *testing.T) {
	if got := Format(nil, nil); got != nil {
		t.Fatalf("expected nil for no rows, got %v", got)
	}
}

func TestRowWidth(t *testing.T) {
	rows := []string{"ab", "abcd", "a"}
	if got := RowWidth(rows); got != 4 {
		t.Fatalf("expected width 4, got %d", got)
	}
}

func TestFormatGolden(t *testing.T) {
	rows := [][]string{
		{"open", "ctrl+o"},
		{"save as", "ctrl+shift+s"},
		{"quit", "ctrl+q"},
	}
	out := strings.Join(Format(rows, []Alignment{AlignLeft, AlignRight}), "\n") + "\n"
	testutil.AssertGolden(t, "table_rows.golden", out)
}
