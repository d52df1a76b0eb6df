package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"icsselect/internal/eventbus"
)

const (
	DefaultPageSize     = 20
	DefaultOutputSuffix = "_selection"
	DefaultTimeFormat   = "2006-01-02 15:04"
	DefaultLogFile      = "icsselect.log"
)

// Config represents the application configuration
type Config struct {
	PageSize          int        `toml:"page_size"`
	OutputSuffix      string     `toml:"output_suffix"`
	TimeFormat        string     `toml:"time_format"`
	LogFile           string     `toml:"log_file"`
	AllowedExtensions []string   `toml:"allowed_extensions"`
	UISettings        UISettings `toml:"ui"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ShowCreated  bool `toml:"show_created"`
	ShowLocation bool `toml:"show_location"`
}

// ConfigService handles configuration loading. The file is never written
// by the application.
type ConfigService interface {
	Load() (*Config, error)
	LoadFromPath(path string) (*Config, error)
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// DefaultPath returns the per-user config file location
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "icsselect", "config.toml")
}

// NewConfigService creates a config service reading from path, or from
// DefaultPath when path is empty
func NewConfigService(path string) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(path string, bus eventbus.EventBus) ConfigService {
	cs := NewConfigService(path).(*configService)
	cs.bus = bus
	return cs
}

// Path returns the file the service reads from
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration, falling back to defaults when the file does not exist
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, fs.ErrNotExist) {
		cfg, err = DefaultConfig(), nil
	}
	if err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{
			Path:     cs.filePath,
			PageSize: cfg.PageSize,
		})
	}

	return cfg, nil
}

// LoadFromPath loads configuration from a specific path. Keys absent from
// the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks value ranges and normalizes extensions
func (c *Config) Validate() error {
	if c.PageSize < 1 {
		return fmt.Errorf("page_size must be at least 1, got %d", c.PageSize)
	}
	if strings.TrimSpace(c.OutputSuffix) == "" {
		return errors.New("output_suffix must not be empty")
	}
	if strings.ContainsAny(c.OutputSuffix, `/\`) {
		return fmt.Errorf("output_suffix must not contain a path separator: %q", c.OutputSuffix)
	}
	if c.TimeFormat == "" {
		return errors.New("time_format must not be empty")
	}
	if _, err := time.Parse(c.TimeFormat, time.Now().Format(c.TimeFormat)); err != nil {
		return fmt.Errorf("time_format %q is not a usable layout: %w", c.TimeFormat, err)
	}
	if len(c.AllowedExtensions) == 0 {
		return errors.New("allowed_extensions must list at least one extension")
	}
	for i, ext := range c.AllowedExtensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			return fmt.Errorf("allowed_extensions[%d] is empty", i)
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		c.AllowedExtensions[i] = ext
	}
	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		PageSize:          DefaultPageSize,
		OutputSuffix:      DefaultOutputSuffix,
		TimeFormat:        DefaultTimeFormat,
		LogFile:           DefaultLogFile,
		AllowedExtensions: []string{".ics", ".ical", ".icalendar", ".ifb"},
		UISettings: UISettings{
			ShowCreated:  true,
			ShowLocation: false,
		},
	}
}
