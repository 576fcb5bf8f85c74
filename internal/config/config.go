package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"
	"github.com/charmbracelet/log"
)

// Config holds all plura configuration
type Config struct {
	Catalog CatalogConfig `toml:"catalog"`
	UI      UIConfig      `toml:"ui"`
	Keys    KeyConfig     `toml:"keys"`
	Log     LogConfig     `toml:"log"`
}

// CatalogConfig defines where content comes from
type CatalogConfig struct {
	Path  string `toml:"path"`  // JSON or YAML file, empty uses the built-in sample
	Watch bool   `toml:"watch"` // reload when the file changes
}

// UIConfig holds layout and focus settings
type UIConfig struct {
	InitialFocus string `toml:"initial_focus"` // element focused at startup
	Columns      int    `toml:"columns"`       // grid columns, 0 fits the terminal
}

// KeyConfig maps actions to key names as reported by bubbletea
type KeyConfig struct {
	Up       []string `toml:"up"`
	Down     []string `toml:"down"`
	Left     []string `toml:"left"`
	Right    []string `toml:"right"`
	Activate []string `toml:"activate"`
	Search   []string `toml:"search"`
	Back     []string `toml:"back"`
	Quit     []string `toml:"quit"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level string `toml:"level"` // debug, info, warn, error
	File  string `toml:"file"`  // empty uses the XDG state dir
}

// DefaultInitialFocus is the welcome screen's enter button
const DefaultInitialFocus = "welcome-enter-button"

// DefaultConfig returns a config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Catalog: CatalogConfig{
			Path:  "",
			Watch: false,
		},
		UI: UIConfig{
			InitialFocus: DefaultInitialFocus,
			Columns:      0,
		},
		Keys: KeyConfig{
			Up:       []string{"up", "k"},
			Down:     []string{"down", "j"},
			Left:     []string{"left", "h"},
			Right:    []string{"right", "l"},
			Activate: []string{"enter", " "},
			Search:   []string{"/"},
			Back:     []string{"esc"},
			Quit:     []string{"q", "ctrl+c"},
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// ConfigPath returns the path to the config file
func ConfigPath() (string, error) {
	if xdg.ConfigHome == "" {
		return "", fmt.Errorf("failed to get config directory: XDG config home not set")
	}
	return filepath.Join(xdg.ConfigHome, "plura", "config.toml"), nil
}

// LogPath returns the default log file location
func LogPath() (string, error) {
	if xdg.StateHome == "" {
		return "", fmt.Errorf("failed to get state directory: XDG state home not set")
	}
	return filepath.Join(xdg.StateHome, "plura", "plura.log"), nil
}

// EnsureConfigDir creates the config directory if it doesn't exist
func EnsureConfigDir() error {
	configFile, err := ConfigPath()
	if err != nil {
		return err
	}

	configDir := filepath.Dir(configFile)

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	return nil
}

// Load reads the config file, creating it with defaults if it doesn't exist
func Load() (*Config, error) {
	configFile, err := ConfigPath()
	if err != nil {
		return nil, err
	}

	// Create config directory if needed
	if err := EnsureConfigDir(); err != nil {
		return nil, err
	}

	// If config doesn't exist, create it with defaults
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		cfg := DefaultConfig()
		if err := SaveTo(cfg, configFile); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
		return cfg, nil
	}

	return LoadFrom(configFile)
}

// LoadFrom reads a config file at an explicit path. Keys missing from the
// file keep their default values.
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("unknown config keys: %s", strings.Join(keys, ", "))
	}

	return cfg, nil
}

// Save writes the config to the default location
func Save(cfg *Config) error {
	configFile, err := ConfigPath()
	if err != nil {
		return err
	}

	// Ensure config directory exists
	if err := EnsureConfigDir(); err != nil {
		return err
	}

	return SaveTo(cfg, configFile)
}

// SaveTo writes the config as TOML to path
func SaveTo(cfg *Config, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(cfg); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// Validate checks if the config is valid
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn or error)", c.Log.Level)
	}

	if strings.TrimSpace(c.UI.InitialFocus) == "" {
		return fmt.Errorf("initial focus id must not be empty")
	}

	if c.UI.Columns < 0 {
		return fmt.Errorf("invalid column count: %d", c.UI.Columns)
	}

	if c.Catalog.Path != "" {
		info, err := os.Stat(c.Catalog.Path)
		if err != nil {
			return fmt.Errorf("catalog path %s: %w", c.Catalog.Path, err)
		}
		if info.IsDir() {
			return fmt.Errorf("catalog path %s is a directory", c.Catalog.Path)
		}
	}

	return c.Keys.Validate()
}

// Bindings returns the key lists by action name, in a stable order
func (k KeyConfig) Bindings() []Binding {
	return []Binding{
		{"up", k.Up},
		{"down", k.Down},
		{"left", k.Left},
		{"right", k.Right},
		{"activate", k.Activate},
		{"search", k.Search},
		{"back", k.Back},
		{"quit", k.Quit},
	}
}

// Binding is one action and the keys bound to it
type Binding struct {
	Action string
	Keys   []string
}

// Validate checks every action has a key and no key triggers two actions
func (k KeyConfig) Validate() error {
	owner := make(map[string]string)
	for _, b := range k.Bindings() {
		if len(b.Keys) == 0 {
			return fmt.Errorf("no keys bound to %s", b.Action)
		}
		for _, key := range b.Keys {
			if key == "" {
				return fmt.Errorf("empty key bound to %s", b.Action)
			}
			if prev, ok := owner[key]; ok {
				return fmt.Errorf("key %q bound to both %s and %s", key, prev, b.Action)
			}
			owner[key] = b.Action
		}
	}
	return nil
}
