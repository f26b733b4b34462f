package events

import "github.com/termshell/termshell/internal/logging"

type AppTracer struct{}

type ShellTracer struct{}

type MenuTracer struct{}

type ClipboardTracer struct{}

type DialogTracer struct{}

var (
	App       = AppTracer{}
	Shell     = ShellTracer{}
	Menu      = MenuTracer{}
	Clipboard = ClipboardTracer{}
	Dialog    = DialogTracer{}
)

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (ShellTracer) FinishLaunching() {
	logging.Trace("shell.finish-launching", nil)
}

func (ShellTracer) BecomeActive() {
	logging.Trace("shell.become-active", nil)
}

func (ShellTracer) ResignActive() {
	logging.Trace("shell.resign-active", nil)
}

func (ShellTracer) QuitRequested() {
	logging.Trace("shell.quit-requested", nil)
}

func (ShellTracer) OpenFiles(count int) {
	logging.Trace("shell.open-files", map[string]interface{}{"count": count})
}

func (MenuTracer) Rebuilt(menus, actions int) {
	logging.Trace("menu.rebuilt", map[string]interface{}{"menus": menus, "actions": actions})
}

func (MenuTracer) Command(tag int, action string) {
	logging.Trace("menu.command", map[string]interface{}{"tag": tag, "action": action})
}

func (MenuTracer) StaleTag(tag int) {
	logging.Trace("menu.stale-tag", map[string]interface{}{"tag": tag})
}

func (ClipboardTracer) StaleMetadata() {
	logging.Trace("clipboard.stale-metadata", nil)
}

func (DialogTracer) Presented(kind string) {
	logging.Trace("dialog.presented", map[string]interface{}{"kind": kind})
}

func (DialogTracer) Completed(kind string, confirmed bool, count int) {
	logging.Trace("dialog.completed", map[string]interface{}{
		"kind":      kind,
		"confirmed": confirmed,
		"count":     count,
	})
}
