package catwalk

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds everything needed to set up a session: surface size, scene
// density, and capture settings. Zero values are filled from DefaultConfig
// when loading from YAML.
type Config struct {
	Title       string `yaml:"title"`
	Width       int    `yaml:"width"`
	Height      int    `yaml:"height"`
	TreeCount   int    `yaml:"tree_count"`
	GrassBlades int    `yaml:"grass_blades"`
	ShowFPS     bool   `yaml:"show_fps"`

	// ScreenshotDir receives PNG screenshots taken with the S key.
	ScreenshotDir string `yaml:"screenshot_dir"`

	Capture CaptureConfig `yaml:"capture"`
}

// CaptureConfig controls clip recording.
type CaptureConfig struct {
	// Seconds is the fixed recording duration.
	Seconds float64 `yaml:"seconds"`
	// FPS is the clip frame rate. Frames are sampled from the render loop,
	// so rates above the tick rate are clamped to it.
	FPS int `yaml:"fps"`
	// TickRate is the render loop rate frames are sampled from.
	TickRate int `yaml:"tick_rate"`
	// Formats is the encoder preference list, first supported wins.
	Formats []string `yaml:"formats"`
	// Dir receives finished clips.
	Dir string `yaml:"dir"`
}

// DefaultConfig returns the stock 1280x720 session.
func DefaultConfig() Config {
	return Config{
		Title:         "Catwalk",
		Width:         1280,
		Height:        720,
		TreeCount:     24,
		GrassBlades:   80,
		ScreenshotDir: "screenshots",
		Capture: CaptureConfig{
			Seconds:  5,
			FPS:      30,
			TickRate: 60,
			Formats:  []string{"apng", "gif"},
			Dir:      "clips",
		},
	}
}

// LoadConfig reads a YAML config file over the defaults. A missing file is
// not an error; the defaults are returned unchanged.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports the first nonsensical setting.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("surface size %dx%d must be positive", c.Width, c.Height)
	}
	if c.TreeCount < 0 {
		return fmt.Errorf("tree_count %d must not be negative", c.TreeCount)
	}
	if c.GrassBlades < 0 {
		return fmt.Errorf("grass_blades %d must not be negative", c.GrassBlades)
	}
	if c.Capture.Seconds <= 0 {
		return fmt.Errorf("capture.seconds %v must be positive", c.Capture.Seconds)
	}
	if c.Capture.FPS <= 0 {
		return fmt.Errorf("capture.fps %d must be positive", c.Capture.FPS)
	}
	if c.Capture.TickRate <= 0 {
		return fmt.Errorf("capture.tick_rate %d must be positive", c.Capture.TickRate)
	}
	return nil
}
