package main

import (
	"testing"
	"time"

	"github.com/termshell/termshell/internal/config"
)

func TestCollectTTYDetailsIncludesStandardDescriptors(t *testing.T) {
	info := collectTTYDetails()
	if len(info.Probes) != 3 {
		t.Fatalf("expected 3 probe entries, got %d", len(info.Probes))
	}
	expected := []string{"stdin", "stdout", "stderr"}
	for i, name := range expected {
		if info.Probes[i].Name != name {
			t.Fatalf("expected probe %d name %q, got %q", i, name, info.Probes[i].Name)
		}
	}
}

func TestStartupTracePayloadIncludesFlags(t *testing.T) {
	cfg := config.Config{
		Demo: config.Demo{
			SpoolPath:     "/tmp/opens",
			SpoolInterval: 1500 * time.Millisecond,
			WindowTitle:   "demo",
			Verbose:       true,
		},
		Logging: config.Logging{
			FilePath: "trace.log",
			Trace:    true,
		},
		Flags: map[string]string{
			"spool":   "/tmp/opens",
			"title":   "demo",
			"verbose": "true",
		},
		Args: []string{"--spool", "/tmp/opens"},
	}

	payload := startupTracePayload(cfg)

	flagsValue, ok := payload["flags"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected flags map in payload")
	}
	if flagsValue["spool"] != "/tmp/opens" {
		t.Fatalf("expected spool flag, got %v", flagsValue["spool"])
	}
	if flagsValue["trace"] != true {
		t.Fatalf("expected trace true, got %v", flagsValue["trace"])
	}
	if flagsValue["logFile"] != "trace.log" {
		t.Fatalf("expected logFile trace.log, got %v", flagsValue["logFile"])
	}
	argv, ok := payload["argv"].([]string)
	if !ok || len(argv) != 2 {
		t.Fatalf("expected argv preserved, got %v", payload["argv"])
	}
	if _, ok := payload["tty"].(ttyDetails); !ok {
		t.Fatalf("expected tty details in payload")
	}
}

func TestDemoMenusWellFormed(t *testing.T) {
	menus := demoMenus()
	if len(menus) != 2 {
		t.Fatalf("expected 2 menus, got %d", len(menus))
	}
	for _, m := range menus {
		for _, item := range m.Items {
			if item.Separator {
				continue
			}
			if item.Action == "" {
				t.Fatalf("menu %q item %q has no action", m.Name, item.Name)
			}
		}
	}
}
