package config

import (
	"testing"
	"time"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if cfg.Demo.WindowTitle != "termshell" {
		t.Fatalf("expected default title termshell, got %q", cfg.Demo.WindowTitle)
	}
	if cfg.Demo.SpoolInterval != 1500*time.Millisecond {
		t.Fatalf("expected default interval 1500ms, got %v", cfg.Demo.SpoolInterval)
	}
	if cfg.Demo.Verbose {
		t.Fatalf("expected verbose off by default")
	}
}

func TestLoadArgsFlagsOverrideEnv(t *testing.T) {
	env := []string{"TERMSHELL_TITLE=from-env", "TERMSHELL_TRACE=true"}
	cfg, err := LoadArgs([]string{"--title", "from-flag"}, env)
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if cfg.Demo.WindowTitle != "from-flag" {
		t.Fatalf("expected flag to win, got %q", cfg.Demo.WindowTitle)
	}
	if !cfg.Logging.Trace {
		t.Fatalf("expected trace enabled from environment")
	}
}

func TestLoadArgsRejectsNonPositiveInterval(t *testing.T) {
	if _, err := LoadArgs([]string{"--spool-interval", "0"}, nil); err == nil {
		t.Fatalf("expected error for zero interval")
	}
}

func TestLoadArgsRecordsFlags(t *testing.T) {
	cfg, err := LoadArgs([]string{"--spool", "/tmp/opens", "--verbose"}, nil)
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if cfg.Flags["spool"] != "/tmp/opens" {
		t.Fatalf("expected spool flag recorded, got %q", cfg.Flags["spool"])
	}
	if cfg.Flags["verbose"] != "true" {
		t.Fatalf("expected verbose flag recorded, got %q", cfg.Flags["verbose"])
	}
	if len(cfg.Args) != 3 {
		t.Fatalf("expected raw args preserved, got %v", cfg.Args)
	}
}
