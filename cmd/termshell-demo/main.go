// Command termshell-demo exercises the platform binding end to end: it
// installs a menu bar, wires the lifecycle and clipboard callbacks, and
// leaves the shell running until Quit is chosen or ctrl+c is pressed.
package main

import (
	"fmt"
	"os"

	"github.com/termshell/termshell/clipboard"
	"github.com/termshell/termshell/dialog"
	"github.com/termshell/termshell/event"
	"github.com/termshell/termshell/internal/config"
	"github.com/termshell/termshell/internal/logging"
	"github.com/termshell/termshell/internal/logging/events"
	"github.com/termshell/termshell/menu"
	"github.com/termshell/termshell/platform"
	"golang.org/x/term"
)

func main() {
	runtimeCfg := config.MustLoad()
	if err := config.Validate(runtimeCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(runtimeCfg.Logging.FilePath)
	logging.SetTraceEnabled(runtimeCfg.Logging.Trace)

	traceStartup(runtimeCfg)

	if err := run(runtimeCfg.Demo); err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config.Demo) error {
	p, err := platform.New(platform.Options{
		SpoolPath:     cfg.SpoolPath,
		SpoolInterval: cfg.SpoolInterval,
		WindowTitle:   cfg.WindowTitle,
	})
	if err != nil {
		return fmt.Errorf("platform: %w", err)
	}

	if err := p.SetMenus(demoMenus()); err != nil {
		return fmt.Errorf("menus: %w", err)
	}

	p.OnEvent(func(evt event.Event) bool {
		if evt.Kind == event.KeyDown && evt.Key == "ctrl+c" {
			p.Quit()
			return true
		}
		return false
	})
	p.OnMenuCommand(func(action string, arg any) {
		handleMenuCommand(p, action, arg)
	})
	p.OnOpenFiles(func(paths []string) {
		logging.Trace("demo.open_files", map[string]interface{}{"paths": paths})
	})
	p.OnBecomeActive(func() {
		logging.Trace("demo.active", nil)
	})

	return p.Run(func() {
		p.Activate(false)
	})
}

func handleMenuCommand(p *platform.Platform, action string, arg any) {
	switch action {
	case "clipboard.copy":
		text, _ := arg.(string)
		item := clipboard.New(text).WithMetadata(`{"source":"termshell-demo"}`)
		if err := p.WriteToClipboard(item); err != nil {
			logging.Error(fmt.Errorf("clipboard write: %w", err))
		}
	case "clipboard.paste":
		if item, ok := p.ReadFromClipboard(); ok {
			logging.Trace("demo.paste", map[string]interface{}{"text": item.Text})
		}
	case "file.open":
		p.PromptForPaths(dialog.Options{Files: true, Multiple: true}, func(paths []string, ok bool) {
			if ok {
				p.OpenFiles(paths)
			}
		})
	case "file.save_as":
		dir, err := os.Getwd()
		if err != nil {
			dir = "."
		}
		p.PromptForNewPath(dir, func(path string, ok bool) {
			if ok {
				logging.Trace("demo.save_as", map[string]interface{}{"path": path})
			}
		})
	case "app.quit":
		p.Quit()
	}
}

func demoMenus() []menu.Menu {
	return []menu.Menu{
		{
			Name: "File",
			Items: []menu.Item{
				{Name: "Open…", Keystroke: "cmd-o", Action: "file.open"},
				{Name: "Save As…", Keystroke: "cmd-shift-s", Action: "file.save_as"},
				{Separator: true},
				{Name: "Quit", Keystroke: "cmd-q", Action: "app.quit"},
			},
		},
		{
			Name: "Edit",
			Items: []menu.Item{
				{Name: "Copy Greeting", Keystroke: "cmd-g", Action: "clipboard.copy", Arg: "hello from termshell"},
				{Name: "Paste", Keystroke: "cmd-v", Action: "clipboard.paste"},
			},
		},
	}
}

func traceStartup(cfg config.Config) {
	events.App.Start(startupTracePayload(cfg))
}

// startupTracePayload bundles runtime context for trace logging.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags))
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath
	payload := map[string]interface{}{
		"argv":   cfg.Args,
		"flags":  flags,
		"config": cfg,
	}
	if exe, err := os.Executable(); err == nil {
		payload["executable"] = exe
	} else {
		payload["executableError"] = err.Error()
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	} else {
		payload["cwdError"] = err.Error()
	}
	payload["tty"] = collectTTYDetails()
	return payload
}

type ttyDetails struct {
	Detected *ttyDetected     `json:"detected,omitempty"`
	Probes   []ttyProbeResult `json:"probes"`
}

type ttyDetected struct {
	Source string `json:"source"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type ttyProbeResult struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Error      string `json:"error,omitempty"`
}

// collectTTYDetails inspects standard descriptors for terminal support and dimensions.
func collectTTYDetails() ttyDetails {
	probes := []struct {
		name string
		fd   uintptr
	}{
		{"stdin", os.Stdin.Fd()},
		{"stdout", os.Stdout.Fd()},
		{"stderr", os.Stderr.Fd()},
	}
	results := make([]ttyProbeResult, 0, len(probes))
	var detected *ttyDetected
	for _, probe := range probes {
		entry := ttyProbeResult{Name: probe.name}
		fd := int(probe.fd)
		if fd >= 0 && term.IsTerminal(fd) {
			entry.IsTerminal = true
			if width, height, err := term.GetSize(fd); err == nil {
				entry.Width = width
				entry.Height = height
				if detected == nil {
					detected = &ttyDetected{Source: probe.name, Width: width, Height: height}
				}
			} else {
				entry.Error = err.Error()
			}
		} else {
			entry.IsTerminal = false
		}
		results = append(results, entry)
	}
	return ttyDetails{Detected: detected, Probes: results}
}
