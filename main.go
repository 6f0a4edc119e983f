package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"typeahead/internal/config"
	"typeahead/internal/eventbus"
	"typeahead/internal/ui"
)

func main() {
	// Parse command line arguments
	var configPath string
	flag.StringVar(&configPath, "config", "", "Path to a configuration file")
	flag.StringVar(&configPath, "c", "", "Path to a configuration file (shorthand)")
	flag.Parse()

	// If no config specified, check for remaining args
	if configPath == "" && flag.NArg() > 0 {
		configPath = flag.Arg(0)
	}

	// Set up logging
	logger := log.Default()
	logFile, err := os.OpenFile("typeahead.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		logger.Warn("could not open log file", "err", err)
	} else {
		defer logFile.Close()
		logger.SetOutput(logFile)
		logger.SetReportTimestamp(true)
		// The package-level logger backs code without an explicit one
		log.SetOutput(logFile)
	}

	// Create event bus
	bus := eventbus.New()

	// Load configuration with event bus support
	configSvc := config.NewConfigServiceWithBus(bus)
	cfg := loadConfig(configSvc, configPath, logger)

	// Create UI model
	uiModel := ui.NewModel(bus, cfg, logger)

	// Create Bubble Tea program; mouse support is needed for row clicks and
	// outside-click dismissal
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
		eventbus.EventSuggestionChosen,
		eventbus.EventPanelShown,
		eventbus.EventPanelHidden,
		eventbus.EventInputCleared,
		eventbus.EventListChanged,
		eventbus.EventWidgetReady,
		eventbus.EventWidgetDestroyed,
		eventbus.EventConfigSaved,
		eventbus.EventError,
	} {
		bus.Subscribe(eventType, forward)
	}

	// Log everything that crosses the bus
	bus.Subscribe(eventbus.EventSuggestionChosen, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.SuggestionChosenEvent); ok {
			logger.Info("suggestion chosen", "value", event.Value, "list", event.List)
		}
	})
	bus.Subscribe(eventbus.EventInputCleared, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.InputClearedEvent); ok {
			logger.Info("input cleared", "rejected", event.Rejected)
		}
	})
	bus.Subscribe(eventbus.EventError, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ErrorEvent); ok {
			logger.Error(event.Message, "err", event.Err)
		}
	})

	// Start forwarding events to UI in background
	go func() {
		for event := range eventChan {
			p.Send(ui.EventMsg{Event: event})
		}
	}()

	// Shut the program down cleanly on interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		p.Quit()
	}()

	// Startup marker for the PTY test driver
	if os.Getenv("TYPEAHEAD_E2E_TEST") == "1" {
		fmt.Println("__READY__")
	}

	// Run the UI
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}

	// Cleanup
	close(eventChan)
}

// loadConfig loads config from the given path, the working directory,
// or the user config dir, falling back to the built-in defaults
func loadConfig(configSvc config.ConfigService, path string, logger *log.Logger) *config.Config {
	if path != "" {
		abs, err := filepath.Abs(path)
		if err == nil {
			path = abs
		}
		if cfg, err := configSvc.LoadFromPath(path); err == nil {
			logger.Info("loaded config", "path", path)
			return cfg
		} else {
			logger.Warn("could not load config, using defaults", "path", path, "err", err)
		}
		return config.DefaultConfig()
	}

	// A config file in the working directory wins over the user config dir
	if _, err := os.Stat(config.FileName); err == nil {
		if cfg, err := configSvc.LoadFromPath(config.FileName); err == nil {
			logger.Info("loaded config", "path", config.FileName)
			return cfg
		} else {
			logger.Warn("could not load config", "path", config.FileName, "err", err)
		}
	}

	cfg, err := configSvc.Load()
	if err != nil {
		logger.Warn("could not load config, using defaults", "err", err)
		cfg = config.DefaultConfig()
	}
	return cfg
}
