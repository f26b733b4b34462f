package platform

import (
	"github.com/termshell/termshell/event"
)

// callbacks is the single-slot handler registry. Each slot holds at
// most the one current handler for its category; installing a handler
// discards the previous one without invoking it. All slots default to
// empty. Slots are mutated only on the shell goroutine.
type callbacks struct {
	becomeActive    func()
	resignActive    func()
	event           func(event.Event) bool
	menuCommand     func(action string, arg any)
	openFiles       func(paths []string)
	finishLaunching func()
}

// takeMenuCommand removes the menu command handler from its slot so a
// handler that triggers further installs cannot observe itself.
func (c *callbacks) takeMenuCommand() func(action string, arg any) {
	handler := c.menuCommand
	c.menuCommand = nil
	return handler
}

// restoreMenuCommand puts a taken handler back unless the invocation
// installed a replacement, in which case the replacement stays active
// for the next event.
func (c *callbacks) restoreMenuCommand(handler func(action string, arg any)) {
	if c.menuCommand == nil {
		c.menuCommand = handler
	}
}

// takeFinishLaunching consumes the one-shot launch handler atomically
// with its invocation; subsequent lifecycle events can never fire it
// again.
func (c *callbacks) takeFinishLaunching() func() {
	handler := c.finishLaunching
	c.finishLaunching = nil
	return handler
}
