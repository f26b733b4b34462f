// Package platform is the seam between a UI runtime and the terminal
// host shell. The runtime installs single-slot callbacks for lifecycle
// and input events, hands over a declarative menu tree, and reads and
// writes the clipboard; the shell translates native activity back
// through those callbacks without the runtime ever touching the
// terminal directly.
package platform

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/termshell/termshell/clipboard"
	"github.com/termshell/termshell/dialog"
	"github.com/termshell/termshell/event"
	"github.com/termshell/termshell/internal/logging"
	"github.com/termshell/termshell/internal/logging/events"
	"github.com/termshell/termshell/internal/spool"
	"github.com/termshell/termshell/menu"
)

// Options configures a platform binding.
type Options struct {
	// Board overrides the clipboard backing; nil selects the system
	// board.
	Board clipboard.Board
	// SpoolPath enables the open-file spool watcher when non-empty.
	SpoolPath string
	// SpoolInterval overrides the spool poll interval.
	SpoolInterval time.Duration
	// WindowTitle is applied to the terminal window once launch
	// completes.
	WindowTitle string
	// Input and Output override the shell's terminal endpoints,
	// primarily for tests.
	Input  io.Reader
	Output io.Writer
}

// Platform owns the callback registry, the installed menu bar with its
// action table, and the clipboard codec. It is bound to one shell for
// the process lifetime; every method is effective on the shell
// goroutine (calls from runtime callbacks already are).
type Platform struct {
	opts      Options
	callbacks callbacks
	bar       *menu.Bar
	actions   []menu.ActionEntry
	codec     *clipboard.Codec
	shell     *shell
	program   *tea.Program
}

// New builds a platform binding. The shell does not start until Run.
func New(opts Options) (*Platform, error) {
	board := opts.Board
	if board == nil {
		system, err := clipboard.NewSystemBoard()
		if err != nil {
			return nil, fmt.Errorf("clipboard board: %w", err)
		}
		board = system
	}
	p := &Platform{
		opts:  opts,
		codec: clipboard.NewCodec(board),
	}
	p.shell = newShell(p)
	return p, nil
}

// OnBecomeActive installs the handler fired when the shell gains focus.
func (p *Platform) OnBecomeActive(handler func()) {
	p.callbacks.becomeActive = handler
}

// OnResignActive installs the handler fired when the shell loses focus.
func (p *Platform) OnResignActive(handler func()) {
	p.callbacks.resignActive = handler
}

// OnEvent installs the input interception handler. Returning true
// consumes the event and suppresses the shell's default handling.
func (p *Platform) OnEvent(handler func(event.Event) bool) {
	p.callbacks.event = handler
}

// OnMenuCommand installs the handler receiving activated menu commands
// with their optional argument. The argument remains owned by the
// action table.
func (p *Platform) OnMenuCommand(handler func(action string, arg any)) {
	p.callbacks.menuCommand = handler
}

// OnOpenFiles installs the handler receiving open-file notifications.
func (p *Platform) OnOpenFiles(handler func(paths []string)) {
	p.callbacks.openFiles = handler
}

// Run enters the shell event loop and blocks until the application
// exits. onFinishLaunching fires once, after the shell completes its
// launch.
func (p *Platform) Run(onFinishLaunching func()) error {
	p.callbacks.finishLaunching = onFinishLaunching

	teaOpts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithReportFocus(), tea.WithMouseCellMotion()}
	if p.opts.Input != nil {
		teaOpts = append(teaOpts, tea.WithInput(p.opts.Input))
	}
	if p.opts.Output != nil {
		teaOpts = append(teaOpts, tea.WithOutput(p.opts.Output))
	}

	if p.opts.SpoolPath != "" {
		interval := p.opts.SpoolInterval
		if interval <= 0 {
			interval = 1500 * time.Millisecond
		}
		watcher := spool.NewWatcher(p.opts.SpoolPath, interval)
		p.shell.watcher = watcher
		defer watcher.Stop()
	}

	p.program = tea.NewProgram(p.shell, teaOpts...)
	_, err := p.program.Run()
	p.program = nil
	// Clear the back-reference: entry points arriving after teardown
	// must find no binding rather than a dangling one.
	p.shell.platform = nil
	p.shell = nil
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

// SetMenus rebuilds and installs the menu bar. The action table is
// cleared before the build starts, so no activation can observe a
// partially rebuilt table; on failure the bar stays empty.
func (p *Platform) SetMenus(menus []menu.Menu) error {
	p.actions = nil
	p.bar = nil
	bar, actions, err := menu.Build(menus)
	if err != nil {
		return err
	}
	p.bar = bar
	p.actions = actions
	events.Menu.Rebuilt(len(bar.Menus), len(actions))
	return nil
}

// Activate asks the terminal for the user's attention. Terminal shells
// cannot steal focus from other applications; when ignoringOtherApps
// is set the window is retitled as the closest available signal.
func (p *Platform) Activate(ignoringOtherApps bool) {
	p.post(activateMsg{ignoringOtherApps: ignoringOtherApps})
}

// Quit requests termination. The request is queued behind the current
// callback frame rather than serviced inside it: teardown closes
// windows, window close re-enters runtime callbacks, and those must
// not run while the requesting callback still holds runtime state.
func (p *Platform) Quit() {
	p.post(quitRequestMsg{})
}

// OpenFiles delivers an open-file notification, as when the process is
// asked to open paths on behalf of another program.
func (p *Platform) OpenFiles(paths []string) {
	p.dispatchOpenFiles(paths)
}

// WriteToClipboard stores the item per the clipboard protocol.
func (p *Platform) WriteToClipboard(item clipboard.Item) error {
	return p.codec.Write(item)
}

// ReadFromClipboard reconstructs the current clipboard item; the
// boolean is false when the clipboard holds no text at all.
func (p *Platform) ReadFromClipboard() (clipboard.Item, bool) {
	return p.codec.Read()
}

// PromptForPaths presents a modal open panel. The call returns
// immediately; done fires exactly once on the shell goroutine when the
// user confirms or cancels.
func (p *Platform) PromptForPaths(opts dialog.Options, done dialog.OpenDone) {
	sh := p.shell
	if sh == nil {
		done(nil, false)
		return
	}
	start, err := os.Getwd()
	if err != nil {
		start = string(filepath.Separator)
	}
	panel, err := dialog.NewOpenPanel(start, opts, done)
	if err != nil {
		logging.Error(fmt.Errorf("open panel: %w", err))
		done(nil, false)
		return
	}
	sh.presentOpen(panel)
}

// PromptForNewPath presents a modal save panel defaulting to directory.
// done fires exactly once with the chosen path or nothing on cancel.
func (p *Platform) PromptForNewPath(directory string, done dialog.SaveDone) {
	sh := p.shell
	if sh == nil {
		done("", false)
		return
	}
	sh.presentSave(dialog.NewSavePanel(directory, done))
}

// post enqueues a message behind the current callback frame. Before the
// loop starts the queue is drained by Init, so pre-run requests are
// honored in order.
func (p *Platform) post(msg tea.Msg) {
	if sh := p.shell; sh != nil {
		sh.enqueue(msg)
	}
}

// dispatchBecomeActive forwards shell focus gain. The handler is
// invoked in place; it is not one-shot.
func (p *Platform) dispatchBecomeActive() {
	events.Shell.BecomeActive()
	if cb := p.callbacks.becomeActive; cb != nil {
		cb()
	}
}

// dispatchResignActive forwards shell focus loss.
func (p *Platform) dispatchResignActive() {
	events.Shell.ResignActive()
	if cb := p.callbacks.resignActive; cb != nil {
		cb()
	}
}

// dispatchFinishLaunching consumes and fires the one-shot launch
// handler.
func (p *Platform) dispatchFinishLaunching() {
	cb := p.callbacks.takeFinishLaunching()
	events.Shell.FinishLaunching()
	if cb != nil {
		cb()
	}
}

// dispatchEvent offers a translated event to the interception handler
// and reports whether it was consumed.
func (p *Platform) dispatchEvent(evt event.Event) bool {
	cb := p.callbacks.event
	if cb == nil {
		return false
	}
	return cb(evt)
}

// dispatchMenuTag maps an activated tag through the action table and
// fires the menu command handler. The handler is taken out of its slot
// for the duration of the call so it may rebuild menus or reinstall
// itself without re-entering; a stale tag fires nothing.
func (p *Platform) dispatchMenuTag(tag int) {
	handler := p.callbacks.takeMenuCommand()
	if handler == nil {
		return
	}
	if tag >= 0 && tag < len(p.actions) {
		entry := p.actions[tag]
		events.Menu.Command(tag, entry.Action)
		handler(entry.Action, entry.Arg)
	} else {
		events.Menu.StaleTag(tag)
	}
	p.callbacks.restoreMenuCommand(handler)
}

// dispatchOpenFiles validates each path and forwards the decodable
// ones. A path that is not valid text is logged and skipped; the rest
// of the batch still goes through.
func (p *Platform) dispatchOpenFiles(raw []string) {
	cb := p.callbacks.openFiles
	if cb == nil {
		return
	}
	paths := make([]string, 0, len(raw))
	for _, r := range raw {
		if !utf8.ValidString(r) {
			logging.Errorf("skipping open path with invalid encoding: %q", r)
			continue
		}
		paths = append(paths, filepath.Clean(r))
	}
	events.Shell.OpenFiles(len(paths))
	cb(paths)
}
