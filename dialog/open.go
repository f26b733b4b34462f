package dialog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/termshell/termshell/internal/logging/events"
	"github.com/termshell/termshell/internal/theme"
)

var styles = theme.Default()

type entry struct {
	name string
	path string
	dir  bool
}

// OpenPanel is a modal chooser over the filesystem. Directories are
// always listed so the user can navigate; whether they are choosable,
// and whether files appear at all, follows the Options.
type OpenPanel struct {
	opts    Options
	dir     string
	entries []entry
	visible []entry
	filter  textinput.Model
	cursor  int
	offset  int
	height  int
	marked  []string
	done    OpenDone
}

// NewOpenPanel lists dir and returns the panel ready for input.
func NewOpenPanel(dir string, opts Options, done OpenDone) (*OpenPanel, error) {
	input := textinput.New()
	input.Prompt = "> "
	input.Focus()
	p := &OpenPanel{
		opts:   opts,
		filter: input,
		height: 12,
		done:   done,
	}
	if err := p.changeDir(dir); err != nil {
		return nil, err
	}
	events.Dialog.Presented("open")
	return p, nil
}

// SetHeight adjusts how many listing rows the panel shows.
func (p *OpenPanel) SetHeight(rows int) {
	if rows > 0 {
		p.height = rows
	}
}

func (p *OpenPanel) changeDir(dir string) error {
	listed, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("list %s: %w", dir, err)
	}
	entries := make([]entry, 0, len(listed))
	for _, e := range listed {
		if e.IsDir() {
			entries = append(entries, entry{name: e.Name(), path: filepath.Join(dir, e.Name()), dir: true})
		}
	}
	if p.opts.Files {
		for _, e := range listed {
			if !e.IsDir() {
				entries = append(entries, entry{name: e.Name(), path: filepath.Join(dir, e.Name()), dir: false})
			}
		}
	}
	p.dir = dir
	p.entries = entries
	p.filter.SetValue("")
	p.cursor = 0
	p.offset = 0
	p.refilter()
	return nil
}

func (p *OpenPanel) refilter() {
	names := make([]string, len(p.entries))
	for i, e := range p.entries {
		names[i] = e.name
	}
	kept := filterNames(names, p.filter.Value())
	keep := make(map[string]struct{}, len(kept))
	for _, name := range kept {
		keep[name] = struct{}{}
	}
	p.visible = p.visible[:0]
	for _, e := range p.entries {
		if _, ok := keep[e.name]; ok {
			p.visible = append(p.visible, e)
		}
	}
	if p.cursor >= len(p.visible) {
		p.cursor = len(p.visible) - 1
	}
	if p.cursor < 0 {
		p.cursor = 0
	}
}

// choosable reports whether the entry may be part of the selection.
func (p *OpenPanel) choosable(e entry) bool {
	if e.dir {
		return p.opts.Directories
	}
	return p.opts.Files
}

func (p *OpenPanel) current() (entry, bool) {
	if p.cursor < 0 || p.cursor >= len(p.visible) {
		return entry{}, false
	}
	return p.visible[p.cursor], true
}

// Update consumes one key while the panel is active. The boolean is
// true once the panel has completed and should be dismissed.
func (p *OpenPanel) Update(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, panelKeys.Cancel):
		p.complete(nil, false)
		return nil, true
	case key.Matches(msg, panelKeys.Up):
		p.moveCursor(-1)
		return nil, false
	case key.Matches(msg, panelKeys.Down):
		p.moveCursor(1)
		return nil, false
	case key.Matches(msg, panelKeys.Ascend):
		parent := filepath.Dir(p.dir)
		if parent != p.dir {
			if err := p.changeDir(parent); err != nil {
				return nil, false
			}
		}
		return nil, false
	case key.Matches(msg, panelKeys.Descend):
		if e, ok := p.current(); ok && e.dir {
			_ = p.changeDir(e.path)
		}
		return nil, false
	case key.Matches(msg, panelKeys.Toggle):
		if !p.opts.Multiple {
			return nil, false
		}
		if e, ok := p.current(); ok && p.choosable(e) {
			p.toggleMark(e.path)
		}
		return nil, false
	case key.Matches(msg, panelKeys.Confirm):
		return p.confirm()
	}

	var cmd tea.Cmd
	p.filter, cmd = p.filter.Update(msg)
	p.refilter()
	return cmd, false
}

func (p *OpenPanel) moveCursor(delta int) {
	next := p.cursor + delta
	if next < 0 || next >= len(p.visible) {
		return
	}
	p.cursor = next
	if p.cursor < p.offset {
		p.offset = p.cursor
	}
	if p.cursor >= p.offset+p.height {
		p.offset = p.cursor - p.height + 1
	}
}

func (p *OpenPanel) toggleMark(path string) {
	for i, marked := range p.marked {
		if marked == path {
			p.marked = append(p.marked[:i], p.marked[i+1:]...)
			return
		}
	}
	p.marked = append(p.marked, path)
}

func (p *OpenPanel) isMarked(path string) bool {
	for _, marked := range p.marked {
		if marked == path {
			return true
		}
	}
	return false
}

func (p *OpenPanel) confirm() (tea.Cmd, bool) {
	selection := p.marked
	if len(selection) == 0 {
		e, ok := p.current()
		if !ok {
			return nil, false
		}
		if e.dir && !p.opts.Directories {
			_ = p.changeDir(e.path)
			return nil, false
		}
		if !p.choosable(e) {
			return nil, false
		}
		selection = []string{e.path}
	}
	p.complete(resolvePaths(selection), true)
	return nil, true
}

// complete fires the completion exactly once; later calls are no-ops.
func (p *OpenPanel) complete(paths []string, ok bool) {
	done := p.done
	p.done = nil
	if done == nil {
		return
	}
	events.Dialog.Completed("open", ok, len(paths))
	done(paths, ok)
}

// resolvePaths resolves every selection to its real target. Entries
// that cannot be resolved to a local path are dropped.
func resolvePaths(selection []string) []string {
	resolved := make([]string, 0, len(selection))
	for _, path := range selection {
		real, err := filepath.EvalSymlinks(path)
		if err != nil {
			continue
		}
		resolved = append(resolved, real)
	}
	return resolved
}

// View renders the panel.
func (p *OpenPanel) View() string {
	var b strings.Builder
	b.WriteString(styles.DialogTitle.Render("Open: " + p.dir))
	b.WriteString("\n")
	b.WriteString(styles.FilterPrompt.Render(p.filter.Prompt))
	b.WriteString(styles.Filter.Render(p.filter.Value()))
	b.WriteString("\n")

	end := p.offset + p.height
	if end > len(p.visible) {
		end = len(p.visible)
	}
	if len(p.visible) == 0 {
		b.WriteString(styles.Info.Render("(no entries)"))
		return b.String()
	}
	for i := p.offset; i < end; i++ {
		e := p.visible[i]
		label := e.name
		if e.dir {
			label += "/"
		}
		mark := "  "
		if p.isMarked(e.path) {
			mark = styles.DialogMarked.Render("✓ ")
		}
		line := mark + label
		switch {
		case i == p.cursor:
			b.WriteString(styles.DialogSelected.Render(line))
		case e.dir:
			b.WriteString(styles.DialogDirectory.Render(line))
		default:
			b.WriteString(styles.DialogEntry.Render(line))
		}
		if i != end-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
