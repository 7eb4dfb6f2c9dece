package catwalk

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

// --- Defaults ---

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

// --- LoadConfig ---

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing file should fall back to defaults, got %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Errorf("missing file config = %+v, want defaults", cfg)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catwalk.yaml")
	body := `
width: 640
height: 360
tree_count: 10
capture:
  seconds: 2
  fps: 15
  tick_rate: 60
  formats: [gif]
  dir: out
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Width != 640 || cfg.Height != 360 {
		t.Errorf("size = %dx%d, want 640x360", cfg.Width, cfg.Height)
	}
	if cfg.TreeCount != 10 {
		t.Errorf("tree_count = %d, want 10", cfg.TreeCount)
	}
	// Untouched keys keep their defaults.
	if cfg.Title != "Catwalk" || cfg.GrassBlades != 80 {
		t.Errorf("defaults lost: title=%q grass=%d", cfg.Title, cfg.GrassBlades)
	}
	if cfg.Capture.Seconds != 2 || len(cfg.Capture.Formats) != 1 {
		t.Errorf("capture = %+v", cfg.Capture)
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("width: [not a number"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestLoadConfigInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invalid.yaml")
	if err := os.WriteFile(path, []byte("width: -5\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Error("expected validation error")
	}
}

// --- Validate ---

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Width = 0 }},
		{"negative height", func(c *Config) { c.Height = -1 }},
		{"negative trees", func(c *Config) { c.TreeCount = -1 }},
		{"negative grass", func(c *Config) { c.GrassBlades = -3 }},
		{"zero capture seconds", func(c *Config) { c.Capture.Seconds = 0 }},
		{"zero capture fps", func(c *Config) { c.Capture.FPS = 0 }},
		{"zero tick rate", func(c *Config) { c.Capture.TickRate = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
