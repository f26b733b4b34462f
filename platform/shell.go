package platform

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/termshell/termshell/dialog"
	"github.com/termshell/termshell/event"
	"github.com/termshell/termshell/internal/logging"
	"github.com/termshell/termshell/internal/logging/events"
	"github.com/termshell/termshell/internal/spool"
	"github.com/termshell/termshell/internal/theme"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// quitRequestMsg is serviced after the callback frame that posted it
// has fully unwound.
type quitRequestMsg struct{}

type activateMsg struct {
	ignoringOtherApps bool
}

type spoolEventMsg struct {
	event spool.Event
}

type spoolDoneMsg struct{}

// menuKeys drive the menu bar overlay.
var menuKeys = struct {
	Open, Close, Left, Right, Up, Down, Activate key.Binding
}{
	Open:     key.NewBinding(key.WithKeys("f10")),
	Close:    key.NewBinding(key.WithKeys("esc", "f10")),
	Left:     key.NewBinding(key.WithKeys("left")),
	Right:    key.NewBinding(key.WithKeys("right")),
	Up:       key.NewBinding(key.WithKeys("up")),
	Down:     key.NewBinding(key.WithKeys("down")),
	Activate: key.NewBinding(key.WithKeys("enter")),
}

// shell is the Bubble Tea model bridging terminal activity onto the
// platform's callback registry. It owns the transient UI state: the
// menu overlay, at most one modal panel, and the queue of deferred
// requests.
type shell struct {
	platform *Platform
	watcher  *spool.Watcher

	width    int
	height   int
	launched bool
	focused  bool

	menuVisible bool
	menuIndex   int
	menuCursor  int

	openPanel *dialog.OpenPanel
	savePanel *dialog.SavePanel

	queued []tea.Msg

	statusMsg    string
	statusExpire time.Time

	handlers map[reflect.Type]msgHandler
}

func newShell(p *Platform) *shell {
	s := &shell{platform: p}
	s.registerHandlers()
	return s
}

func (s *shell) registerHandlers() {
	s.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        s.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):      s.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): s.handleWindowSizeMsg,
		reflect.TypeOf(tea.FocusMsg{}):      s.handleFocusMsg,
		reflect.TypeOf(tea.BlurMsg{}):       s.handleBlurMsg,
		reflect.TypeOf(quitRequestMsg{}):    s.handleQuitRequestMsg,
		reflect.TypeOf(activateMsg{}):       s.handleActivateMsg,
		reflect.TypeOf(spoolEventMsg{}):     s.handleSpoolEventMsg,
		reflect.TypeOf(spoolDoneMsg{}):      s.handleSpoolDoneMsg,
	}
}

// enqueue parks a message behind the current update frame; Init or the
// next finishUpdate turns it into a command.
func (s *shell) enqueue(msg tea.Msg) {
	s.queued = append(s.queued, msg)
}

func (s *shell) presentOpen(panel *dialog.OpenPanel) {
	if s.height > 0 {
		panel.SetHeight(s.height - 4)
	}
	s.savePanel = nil
	s.openPanel = panel
}

func (s *shell) presentSave(panel *dialog.SavePanel) {
	s.openPanel = nil
	s.savePanel = panel
}

// Init is part of the tea.Model interface.
func (s *shell) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, 2)
	if s.watcher != nil {
		cmds = append(cmds, waitForSpoolEvent(s.watcher))
	}
	return s.finishUpdate(cmds)
}

// Update responds to Bubble Tea messages.
func (s *shell) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if handler := s.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return s, s.finishUpdate(cmds)
}

func (s *shell) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || s.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := s.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := s.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

// finishUpdate converts requests queued during the frame into commands
// so they are serviced only after the frame has unwound.
func (s *shell) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	for _, queued := range s.queued {
		msg := queued
		cmds = append(cmds, func() tea.Msg { return msg })
	}
	s.queued = nil
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (s *shell) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	// A modal panel owns the keyboard outright.
	if s.openPanel != nil {
		cmd, closed := s.openPanel.Update(keyMsg)
		if closed {
			s.openPanel = nil
		}
		return cmd
	}
	if s.savePanel != nil {
		cmd, closed := s.savePanel.Update(keyMsg)
		if closed {
			s.savePanel = nil
		}
		return cmd
	}

	// Interception comes before every built-in response, accelerators
	// included.
	if evt, ok := event.Translate(keyMsg); ok {
		if s.platform != nil && s.platform.dispatchEvent(evt) {
			return nil
		}
	}

	if s.menuVisible {
		return s.handleMenuNav(keyMsg)
	}

	if key.Matches(keyMsg, menuKeys.Open) && s.platform != nil && s.platform.bar != nil && len(s.platform.bar.Menus) > 0 {
		s.menuVisible = true
		s.menuIndex = 0
		s.menuCursor = s.firstSelectable(0)
		return nil
	}

	return s.matchAccelerator(keyMsg)
}

// matchAccelerator activates the first menu item whose accelerator
// binding matches the key.
func (s *shell) matchAccelerator(msg tea.KeyMsg) tea.Cmd {
	if s.platform == nil || s.platform.bar == nil {
		return nil
	}
	for _, nativeMenu := range s.platform.bar.Menus {
		for _, item := range nativeMenu.Items {
			if item.HasAccel && key.Matches(msg, item.Accel) {
				s.platform.dispatchMenuTag(item.Tag)
				return nil
			}
		}
	}
	return nil
}

func (s *shell) handleMenuNav(msg tea.KeyMsg) tea.Cmd {
	// The interception handler ran before us and may have rebuilt the
	// menus; a rebuild must never turn navigation into a panic.
	bar := s.platform.bar
	if bar == nil || len(bar.Menus) == 0 {
		s.menuVisible = false
		return nil
	}
	if s.menuIndex >= len(bar.Menus) {
		s.menuIndex = 0
		s.menuCursor = s.firstSelectable(0)
	}
	if s.menuCursor >= len(bar.Menus[s.menuIndex].Items) {
		s.menuCursor = s.firstSelectable(s.menuIndex)
	}
	switch {
	case key.Matches(msg, menuKeys.Close):
		s.menuVisible = false
	case key.Matches(msg, menuKeys.Left):
		s.menuIndex = (s.menuIndex + len(bar.Menus) - 1) % len(bar.Menus)
		s.menuCursor = s.firstSelectable(s.menuIndex)
	case key.Matches(msg, menuKeys.Right):
		s.menuIndex = (s.menuIndex + 1) % len(bar.Menus)
		s.menuCursor = s.firstSelectable(s.menuIndex)
	case key.Matches(msg, menuKeys.Up):
		s.moveMenuCursor(-1)
	case key.Matches(msg, menuKeys.Down):
		s.moveMenuCursor(1)
	case key.Matches(msg, menuKeys.Activate):
		items := bar.Menus[s.menuIndex].Items
		if s.menuCursor >= 0 && s.menuCursor < len(items) {
			// Lookup rejects separators, which carry tag -1.
			if item, ok := bar.Lookup(items[s.menuCursor].Tag); ok {
				s.menuVisible = false
				s.platform.dispatchMenuTag(item.Tag)
			}
		}
	}
	return nil
}

// firstSelectable returns the index of the first non-separator item in
// the menu, or -1 when the menu holds nothing selectable.
func (s *shell) firstSelectable(menuIndex int) int {
	items := s.platform.bar.Menus[menuIndex].Items
	for i, item := range items {
		if !item.Separator {
			return i
		}
	}
	return -1
}

func (s *shell) moveMenuCursor(delta int) {
	items := s.platform.bar.Menus[s.menuIndex].Items
	if len(items) == 0 {
		return
	}
	cursor := s.menuCursor
	for range items {
		cursor = (cursor + delta + len(items)) % len(items)
		if !items[cursor].Separator {
			s.menuCursor = cursor
			return
		}
	}
}

func (s *shell) handleMouseMsg(msg tea.Msg) tea.Cmd {
	mouseMsg, ok := msg.(tea.MouseMsg)
	if !ok {
		return nil
	}
	if s.openPanel != nil || s.savePanel != nil {
		return nil
	}
	if evt, ok := event.Translate(mouseMsg); ok && s.platform != nil {
		s.platform.dispatchEvent(evt)
	}
	return nil
}

func (s *shell) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	sizeMsg, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	s.width = sizeMsg.Width
	s.height = sizeMsg.Height
	if s.openPanel != nil && s.height > 0 {
		s.openPanel.SetHeight(s.height - 4)
	}
	if s.launched {
		return nil
	}
	// The first size report marks the end of launch.
	s.launched = true
	var cmd tea.Cmd
	if s.platform != nil {
		if title := s.platform.opts.WindowTitle; title != "" {
			cmd = tea.SetWindowTitle(title)
		}
		s.platform.dispatchFinishLaunching()
	}
	return cmd
}

func (s *shell) handleFocusMsg(tea.Msg) tea.Cmd {
	if s.focused {
		return nil
	}
	s.focused = true
	if s.platform != nil {
		s.platform.dispatchBecomeActive()
	}
	return nil
}

func (s *shell) handleBlurMsg(tea.Msg) tea.Cmd {
	if !s.focused {
		return nil
	}
	s.focused = false
	if s.platform != nil {
		s.platform.dispatchResignActive()
	}
	return nil
}

func (s *shell) handleQuitRequestMsg(tea.Msg) tea.Cmd {
	events.Shell.QuitRequested()
	return tea.Quit
}

func (s *shell) handleActivateMsg(msg tea.Msg) tea.Cmd {
	actMsg, ok := msg.(activateMsg)
	if !ok {
		return nil
	}
	s.statusMsg = "attention requested"
	s.statusExpire = time.Now().Add(3 * time.Second)
	if actMsg.ignoringOtherApps && s.platform != nil && s.platform.opts.WindowTitle != "" {
		return tea.SetWindowTitle("● " + s.platform.opts.WindowTitle)
	}
	return nil
}

func waitForSpoolEvent(w *spool.Watcher) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-w.Events()
		if !ok {
			return spoolDoneMsg{}
		}
		return spoolEventMsg{event: evt}
	}
}

func (s *shell) handleSpoolEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(spoolEventMsg)
	if !ok {
		return nil
	}
	if eventMsg.event.Err != nil {
		logging.Error(fmt.Errorf("spool poll: %w", eventMsg.event.Err))
	} else if s.platform != nil {
		s.platform.dispatchOpenFiles(eventMsg.event.Paths)
	}
	if s.watcher != nil {
		return waitForSpoolEvent(s.watcher)
	}
	return nil
}

func (s *shell) handleSpoolDoneMsg(tea.Msg) tea.Cmd {
	s.watcher = nil
	return nil
}

// View is part of the tea.Model interface.
func (s *shell) View() string {
	if !s.launched {
		return ""
	}
	var b strings.Builder
	if s.platform != nil && s.platform.bar != nil && len(s.platform.bar.Menus) > 0 {
		active := -1
		if s.menuVisible {
			active = s.menuIndex
		}
		b.WriteString(s.platform.bar.TitlesView(active))
		b.WriteString("\n")
		if s.menuVisible {
			b.WriteString(s.platform.bar.MenuView(s.menuIndex, s.menuCursor, s.width))
			b.WriteString("\n")
		}
	}
	switch {
	case s.openPanel != nil:
		b.WriteString(s.openPanel.View())
	case s.savePanel != nil:
		b.WriteString(s.savePanel.View())
	}
	if s.statusMsg != "" && time.Now().Before(s.statusExpire) {
		if styles.Status != nil {
			b.WriteString(styles.Status.Render(s.statusMsg))
		} else {
			b.WriteString(s.statusMsg)
		}
		b.WriteString("\n")
	}
	return b.String()
}
