package menu

import (
	"strings"

	"github.com/muesli/reflow/truncate"

	"github.com/termshell/termshell/internal/format/table"
	"github.com/termshell/termshell/internal/theme"
)

var styles = theme.Default()

const separatorRune = "─"

// TitlesView renders the menu bar row. A negative active index renders
// every title unhighlighted.
func (b *Bar) TitlesView(active int) string {
	if b == nil || len(b.Menus) == 0 {
		return ""
	}
	var out strings.Builder
	for i, m := range b.Menus {
		title := " " + m.Title + " "
		if i == active {
			out.WriteString(styles.BarTitleActive.Render(title))
		} else {
			out.WriteString(styles.BarTitle.Render(title))
		}
	}
	return out.String()
}

// MenuView renders one open menu as a vertical panel with the item
// titles left-aligned and accelerator hints right-aligned, highlighting
// the row under the cursor. Separator rows are never highlighted.
func (b *Bar) MenuView(index, cursor, maxWidth int) string {
	if b == nil || index < 0 || index >= len(b.Menus) {
		return ""
	}
	m := b.Menus[index]
	titleRows := make([][]string, len(m.Items))
	hintRows := make([][]string, len(m.Items))
	for i, item := range m.Items {
		if item.Separator {
			titleRows[i] = []string{""}
			hintRows[i] = []string{""}
			continue
		}
		titleRows[i] = []string{item.Title}
		hintRows[i] = []string{item.Hint}
	}
	titles := table.Format(titleRows, []table.Alignment{table.AlignLeft})
	hints := table.Format(hintRows, []table.Alignment{table.AlignRight})
	width := table.RowWidth(titles) + 2 + table.RowWidth(hints)

	lines := make([]string, 0, len(m.Items))
	for i, item := range m.Items {
		if item.Separator {
			lines = append(lines, styles.Separator.Render(strings.Repeat(separatorRune, width)))
			continue
		}
		var line string
		if i == cursor {
			line = styles.SelectedItem.Render(titles[i]+"  ") + styles.SelectedAccel.Render(hints[i])
		} else {
			line = styles.Item.Render(titles[i]+"  ") + styles.AccelHint.Render(hints[i])
		}
		if maxWidth > 0 {
			line = truncate.String(line, uint(maxWidth))
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
