package config

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Config captures runtime configuration for the demo shell.
type Config struct {
	Demo    Demo
	Logging Logging
	Flags   map[string]string
	Args    []string
}

// Demo describes user-provided options for the demo shell.
type Demo struct {
	SpoolPath     string
	SpoolInterval time.Duration
	WindowTitle   string
	Verbose       bool
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envSpoolPath     = "TERMSHELL_SPOOL"
	envSpoolInterval = "TERMSHELL_SPOOL_INTERVAL_MS"
	envTitle         = "TERMSHELL_TITLE"
	envVerbose       = "TERMSHELL_VERBOSE"
	envTrace         = "TERMSHELL_TRACE"
	envLogFile       = "TERMSHELL_LOG_FILE"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("termshell-demo", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	spool := fs.String("spool", envOrDefault(env, envSpoolPath, ""), "path to the open-file spool (empty disables watching)")
	spoolInterval := fs.Int("spool-interval", envOrInt(env, envSpoolInterval, 1500), "spool poll interval in milliseconds")
	title := fs.String("title", envOrDefault(env, envTitle, "termshell"), "terminal window title applied after launch")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	verbose := fs.Bool("verbose", envOrBool(env, envVerbose, false), "print handler activity to the status line")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *spoolInterval <= 0 {
		return Config{}, fmt.Errorf("spool-interval must be > 0 (got %d)", *spoolInterval)
	}

	cfg := Config{
		Demo: Demo{
			SpoolPath:     *spool,
			SpoolInterval: time.Duration(*spoolInterval) * time.Millisecond,
			WindowTitle:   *title,
			Verbose:       *verbose,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"spool":          *spool,
			"spool-interval": strconv.Itoa(*spoolInterval),
			"title":          *title,
			"trace":          strconv.FormatBool(*trace),
			"verbose":        strconv.FormatBool(*verbose),
			"logFile":        *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures required minimum configuration is present.
func Validate(cfg Config) error {
	if cfg.Demo.SpoolPath != "" {
		if dir := filepath.Dir(cfg.Demo.SpoolPath); dir != "." {
			if _, err := os.Stat(dir); err != nil {
				return fmt.Errorf("spool directory: %w", err)
			}
		}
	}
	return nil
}
