package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.UI.InitialFocus != "welcome-enter-button" {
		t.Errorf("expected initial focus 'welcome-enter-button', got '%s'", cfg.UI.InitialFocus)
	}

	if cfg.Log.Level != "info" {
		t.Errorf("expected log level 'info', got '%s'", cfg.Log.Level)
	}

	if cfg.Catalog.Path != "" {
		t.Errorf("expected empty catalog path, got '%s'", cfg.Catalog.Path)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tmpDir := t.TempDir()
	catalogFile := filepath.Join(tmpDir, "catalog.json")
	if err := os.WriteFile(catalogFile, []byte("{}"), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr string
	}{
		{"valid catalog file", func(c *Config) { c.Catalog.Path = catalogFile }, ""},
		{"missing catalog", func(c *Config) { c.Catalog.Path = "/nonexistent/catalog.json" }, "catalog path"},
		{"catalog is directory", func(c *Config) { c.Catalog.Path = tmpDir }, "is a directory"},
		{"bad log level", func(c *Config) { c.Log.Level = "loud" }, "invalid log level"},
		{"debug level", func(c *Config) { c.Log.Level = "debug" }, ""},
		{"negative columns", func(c *Config) { c.UI.Columns = -1 }, "invalid column count"},
		{"empty initial focus", func(c *Config) { c.UI.InitialFocus = " " }, "initial focus"},
		{"unbound action", func(c *Config) { c.Keys.Search = nil }, "no keys bound to search"},
		{"empty key", func(c *Config) { c.Keys.Quit = []string{""} }, "empty key"},
		{"key conflict", func(c *Config) { c.Keys.Back = []string{"q"} }, `key "q" bound to both back and quit`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestSaveAndLoadFrom(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg := DefaultConfig()
	cfg.UI.Columns = 5
	cfg.Catalog.Watch = true
	cfg.Keys.Up = []string{"w"}

	if err := SaveTo(cfg, path); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if loaded.UI.Columns != 5 {
		t.Errorf("expected 5 columns, got %d", loaded.UI.Columns)
	}
	if !loaded.Catalog.Watch {
		t.Error("expected watch to be true")
	}
	if len(loaded.Keys.Up) != 1 || loaded.Keys.Up[0] != "w" {
		t.Errorf("expected up keys [w], got %v", loaded.Keys.Up)
	}
}

func TestLoadFromKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "[ui]\ncolumns = 3\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.UI.Columns != 3 {
		t.Errorf("expected 3 columns, got %d", cfg.UI.Columns)
	}
	if cfg.UI.InitialFocus != DefaultInitialFocus {
		t.Errorf("expected default initial focus, got %q", cfg.UI.InitialFocus)
	}
	if len(cfg.Keys.Activate) != 2 {
		t.Errorf("expected default activate keys, got %v", cfg.Keys.Activate)
	}
}

func TestLoadFromRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "[ui]\ncolums = 3\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFrom(path); err == nil || !strings.Contains(err.Error(), "ui.colums") {
		t.Errorf("expected unknown key error, got %v", err)
	}
}

func TestLoadFromInvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[ui\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFrom(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestConfigPath(t *testing.T) {
	path, err := ConfigPath()
	if err != nil {
		t.Fatalf("ConfigPath: %v", err)
	}
	if filepath.Base(path) != "config.toml" || filepath.Base(filepath.Dir(path)) != "plura" {
		t.Errorf("unexpected config path %s", path)
	}
}

func TestBindingsOrder(t *testing.T) {
	var actions []string
	for _, b := range DefaultConfig().Keys.Bindings() {
		actions = append(actions, b.Action)
	}

	want := "up,down,left,right,activate,search,back,quit"
	if got := strings.Join(actions, ","); got != want {
		t.Errorf("bindings order = %s, want %s", got, want)
	}
}
