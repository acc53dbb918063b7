package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"blueprints/internal/api"
	"blueprints/internal/tui"
)

func main() {
	cfg, err := parseConfig(os.Args[1:], os.Getenv)
	if errors.Is(err, flag.ErrHelp) {
		fmt.Fprintln(os.Stderr, "usage: blueprints [-url URL] [-author NAME] [-timeout D] [-export-dir DIR] [-log FILE]")
		return
	}
	if err != nil {
		log.Fatal(err)
	}

	// The program owns the terminal, so logs go to a file or nowhere.
	if cfg.logFile != "" {
		f, err := tea.LogToFile(cfg.logFile, "blueprints")
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}
	log.Printf("starting url=%s author=%q timeout=%v", cfg.baseURL, cfg.author, cfg.timeout)

	m := tui.New(tui.Config{
		Backend:   api.NewClient(cfg.baseURL, cfg.timeout),
		Author:    cfg.author,
		Timeout:   cfg.timeout,
		ExportDir: cfg.exportDir,
	})
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run(); err != nil {
		log.Fatal(err)
	}
}
