package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"typeahead/internal/eventbus"
	"typeahead/internal/merge"
)

// FileName is the config file looked up in the working directory.
const FileName = ".typeahead.toml"

// Config represents the application configuration
type Config struct {
	Version int                 `toml:"version"`
	Lists   map[string][]string `toml:"lists"` // list name -> suggestions
	Widget  WidgetSettings      `toml:"widget"`
	UI      UISettings          `toml:"ui"`
}

// WidgetSettings configures the autocomplete widget
type WidgetSettings struct {
	ValueMatchItem bool   `toml:"value_match_item"`
	MaxPanelRows   int    `toml:"max_panel_rows"`
	DefaultList    string `toml:"default_list"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	Title         string `toml:"title"`
	ShowStatusBar bool   `toml:"show_status_bar"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// NewConfigService creates a new config service rooted in the user config dir
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	appDir := filepath.Join(configDir, "typeahead")
	os.MkdirAll(appDir, 0755)

	return &configService{
		filePath: filepath.Join(appDir, "config.toml"),
	}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(bus eventbus.EventBus) ConfigService {
	cs := NewConfigService().(*configService)
	cs.bus = bus
	return cs
}

// Load loads the configuration from the default location
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		cfg := DefaultConfig()
		cs.publishLoaded(cs.filePath, cfg)
		return cfg, nil
	}

	cfg, err := cs.LoadFromPath(cs.filePath)
	if err != nil {
		return nil, err
	}
	cs.publishLoaded(cs.filePath, cfg)
	return cfg, nil
}

// Save saves the configuration to the default location
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path. The user's file is
// overlaid onto the defaults: keys not present keep their default, matching
// lists concatenate, scalars are overridden.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var user map[string]any
	if err := toml.Unmarshal(data, &user); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	defaults, err := asMap(DefaultConfig())
	if err != nil {
		return nil, err
	}
	merged := merge.Maps(defaults, user)

	out, err := toml.Marshal(merged)
	if err != nil {
		return nil, fmt.Errorf("failed to encode merged config: %w", err)
	}
	var cfg Config
	if err := toml.Unmarshal(out, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode merged config: %w", err)
	}
	if cfg.Lists == nil {
		cfg.Lists = make(map[string][]string)
	}
	return &cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{})
	}
	return nil
}

// publishLoaded announces a loaded config on the bus, if one is attached
func (cs *configService) publishLoaded(path string, cfg *Config) {
	if cs.bus == nil {
		return
	}
	cs.bus.Publish(eventbus.ConfigLoadedEvent{
		Path:  path,
		Lists: cfg.Lists,
	})
}

// asMap round-trips a config struct through TOML into a plain map so it can
// be deep-merged with the user's file
func asMap(cfg *Config) (map[string]any, error) {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode default config: %w", err)
	}
	var out map[string]any
	if err := toml.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("failed to decode default config: %w", err)
	}
	return out, nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Lists: map[string][]string{
			"fruits": {"Apple", "Apricot", "Banana", "Cherry", "Mango", "Peach"},
			"colors": {"Red", "Green", "Blue", "Magenta", "Cyan", "Yellow"},
		},
		Widget: WidgetSettings{
			ValueMatchItem: false,
			MaxPanelRows:   8,
			DefaultList:    "fruits",
		},
		UI: UISettings{
			Title:         "typeahead",
			ShowStatusBar: true,
		},
	}
}
