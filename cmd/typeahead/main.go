package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"typeahead/internal/config"
	"typeahead/internal/eventbus"
	"typeahead/internal/ui"
)

func main() {
	// Set up logging
	logger := log.Default()
	logFile, err := os.OpenFile("typeahead.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		logger.Warn("could not open log file", "err", err)
	} else {
		defer logFile.Close()
		logger.SetOutput(logFile)
		log.SetOutput(logFile)
	}

	// Create event bus
	bus := eventbus.New()

	// Load configuration
	configSvc := config.NewConfigServiceWithBus(bus)
	cfg, err := configSvc.Load()
	if err != nil {
		logger.Warn("could not load config, using defaults", "err", err)
		cfg = config.DefaultConfig()
	}

	// Create UI model
	uiModel := ui.NewModel(bus, cfg, logger)

	// Create Bubble Tea program with mouse support
	p := tea.NewProgram(uiModel, tea.WithAltScreen(), tea.WithMouseCellMotion())
	uiModel.SetProgram(p)

	// Set up event forwarding to UI
	eventChan := make(chan eventbus.DomainEvent, 100)
	forward := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			logger.Warn("event channel full, dropping event", "type", e.Type())
		}
	}
	for _, eventType := range []eventbus.EventType{
		eventbus.EventConfigSaved,
		eventbus.EventError,
	} {
		bus.Subscribe(eventType, forward)
	}

	// Start forwarding events to UI in background
	go func() {
		for event := range eventChan {
			p.Send(ui.EventMsg{Event: event})
		}
	}()

	// Run the UI
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}

	close(eventChan)
}
