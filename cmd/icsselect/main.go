package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"icsselect/internal/config"
	"icsselect/internal/eventbus"
	"icsselect/internal/ui"
)

func main() {
	var startDir, configPath string
	flag.StringVar(&startDir, "dir", "", "Directory the file picker starts in")
	flag.StringVar(&startDir, "d", "", "Directory the file picker starts in (shorthand)")
	flag.StringVar(&configPath, "config", "", "Path to config.toml")
	flag.Parse()

	if startDir == "" {
		var err error
		startDir, err = os.Getwd()
		if err != nil {
			fmt.Printf("Error getting current directory: %v\n", err)
			os.Exit(1)
		}
	}

	absDir, err := filepath.Abs(startDir)
	if err != nil {
		fmt.Printf("Error resolving path: %v\n", err)
		os.Exit(1)
	}
	if info, err := os.Stat(absDir); err != nil || !info.IsDir() {
		fmt.Printf("Not a directory: %s\n", absDir)
		os.Exit(1)
	}

	// nothing may reach the terminal before the log file is known
	log.SetOutput(io.Discard)

	bus := eventbus.New()

	if configPath == "" {
		configPath = config.DefaultPath()
	}
	cfg, err := config.NewConfigServiceWithBus(configPath, bus).Load()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	if cfg.LogFile != "" {
		logFile, err := tea.LogToFile(cfg.LogFile, "icsselect")
		if err != nil {
			fmt.Printf("Could not open log file: %v\n", err)
			os.Exit(1)
		}
		defer logFile.Close()
	}

	bus.Subscribe(eventbus.EventExportCompleted, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ExportCompletedEvent); ok {
			log.Printf("Saved %d of %d events to %s", event.Exported, event.Total, event.Path)
		}
	})
	bus.Subscribe(eventbus.EventSessionChanged, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.SessionChangedEvent); ok {
			log.Printf("Session %s -> %s", event.From, event.To)
		}
	})

	uiModel := ui.NewModel(bus, cfg, absDir)
	p := tea.NewProgram(uiModel, tea.WithAltScreen())
	uiModel.SetProgram(p)

	// Forward the events the UI reacts to
	eventChan := make(chan eventbus.DomainEvent, 100)
	forwardEvent := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			log.Println("Event channel full, dropping event")
		}
	}
	for _, t := range []eventbus.EventType{
		eventbus.EventCalendarLoaded,
		eventbus.EventSelectionChanged,
		eventbus.EventError,
		eventbus.EventLoadFailed,
	} {
		bus.Subscribe(t, forwardEvent)
	}
	go func() {
		for event := range eventChan {
			p.Send(ui.EventMsg{Event: event})
		}
	}()

	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}

	bus.Close()
	close(eventChan)

	if out := uiModel.SavedTo(); out != "" {
		fmt.Printf("Saved selection to %s\n", out)
	}
}
