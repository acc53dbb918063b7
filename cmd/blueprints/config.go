package main

import (
	"flag"
	"fmt"
	"io"
	"time"

	"blueprints/internal/api"
)

type config struct {
	baseURL   string
	author    string
	timeout   time.Duration
	exportDir string
	logFile   string
}

// parseConfig reads flags, falling back to BLUEPRINTS_* environment
// variables and then to the defaults.
func parseConfig(args []string, getenv func(string) string) (config, error) {
	env := func(key, def string) string {
		if v := getenv(key); v != "" {
			return v
		}
		return def
	}
	timeout, err := time.ParseDuration(env("BLUEPRINTS_TIMEOUT", "10s"))
	if err != nil {
		return config{}, fmt.Errorf("BLUEPRINTS_TIMEOUT: %w", err)
	}

	var cfg config
	fs := flag.NewFlagSet("blueprints", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&cfg.baseURL, "url", env("BLUEPRINTS_URL", api.DefaultBaseURL), "blueprint backend base URL")
	fs.StringVar(&cfg.author, "author", env("BLUEPRINTS_AUTHOR", ""), "author to load on start")
	fs.DurationVar(&cfg.timeout, "timeout", timeout, "per-request timeout, 0 disables")
	fs.StringVar(&cfg.exportDir, "export-dir", env("BLUEPRINTS_EXPORT_DIR", "."), "directory for PNG and PDF exports")
	fs.StringVar(&cfg.logFile, "log", env("BLUEPRINTS_LOG", "blueprints.log"), "log file, empty disables logging")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	if cfg.timeout < 0 {
		return config{}, fmt.Errorf("timeout must not be negative: %v", cfg.timeout)
	}
	return cfg, nil
}
