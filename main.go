package main

import (
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"ytui/internal/config"
	"ytui/internal/ui"
)

func main() {
	// The UI needs a real terminal: raw mode plus the alternate screen buffer.
	// Refusing early keeps the diagnostic on a usable stderr.
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		fmt.Fprintln(os.Stderr, "ytui: standard output is not a terminal")
		os.Exit(1)
	}

	// Load configuration; a broken or missing config is never fatal.
	configSvc := config.NewService()
	cfg, err := configSvc.Load()
	if err != nil {
		log.Printf("Error loading config: %v", err)
		cfg = config.Default()
	}

	// Set up logging. Stdout belongs to the alternate screen while the UI
	// runs, so everything goes to a file.
	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	// Provider and launcher are wired in once a search backend exists; the
	// shell runs without them.
	uiModel := ui.NewModel(cfg, nil, nil)

	p := tea.NewProgram(uiModel, tea.WithAltScreen())

	// Run restores the terminal on every exit path, including panics inside
	// the update loop, before the error reaches us.
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "ytui: %v\n", err)
		os.Exit(1)
	}
}
