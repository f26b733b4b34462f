package dialog

import (
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/termshell/termshell/internal/logging/events"
)

// SavePanel prompts for a new file name under a default directory.
type SavePanel struct {
	dir   string
	input textinput.Model
	done  SaveDone
}

// NewSavePanel returns a panel defaulting to dir.
func NewSavePanel(dir string, done SaveDone) *SavePanel {
	input := textinput.New()
	input.Prompt = "Save as: "
	input.Focus()
	events.Dialog.Presented("save")
	return &SavePanel{dir: dir, input: input, done: done}
}

// Update consumes one key while the panel is active. The boolean is
// true once the panel has completed and should be dismissed.
func (p *SavePanel) Update(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, panelKeys.Cancel):
		p.complete("", false)
		return nil, true
	case key.Matches(msg, panelKeys.Confirm):
		name := strings.TrimSpace(p.input.Value())
		if name == "" {
			return nil, false
		}
		if !filepath.IsLocal(name) {
			// Names escaping the directory are not expressible as a
			// chosen local path.
			p.complete("", false)
			return nil, true
		}
		p.complete(filepath.Join(p.dir, name), true)
		return nil, true
	}

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return cmd, false
}

// complete fires the completion exactly once; later calls are no-ops.
func (p *SavePanel) complete(path string, ok bool) {
	done := p.done
	p.done = nil
	if done == nil {
		return
	}
	count := 0
	if ok {
		count = 1
	}
	events.Dialog.Completed("save", ok, count)
	done(path, ok)
}

// View renders the panel.
func (p *SavePanel) View() string {
	var b strings.Builder
	b.WriteString(styles.DialogTitle.Render("Save in: " + p.dir))
	b.WriteString("\n")
	b.WriteString(p.input.View())
	return b.String()
}
