package canopy

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Config collects the settings a Scene is built from.
type Config struct {
	Viewport          Viewport    `yaml:"viewport"`
	Input             InputConfig `yaml:"input"`
	FocusCapacity     int         `yaml:"focusCapacity"`
	CanvasMaxElements int         `yaml:"canvasMaxElements"`
	Debug             bool        `yaml:"debug"`
	ScreenshotDir     string      `yaml:"screenshotDir"`
	// Style, when set, is applied by Scene.NewButton and Scene.NewList.
	Style *Style `yaml:"style"`
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		Viewport:          DefaultViewport,
		Input:             DefaultInputConfig(),
		FocusCapacity:     DefaultFocusCapacity,
		CanvasMaxElements: DefaultCanvasElements,
		ScreenshotDir:     "screenshots",
	}
}

// LoadConfig parses YAML on top of DefaultConfig. Fields left out keep their
// defaults.
func LoadConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("canopy: parse config: %w", err)
	}
	if cfg.Style != nil {
		if err := cfg.Style.validate(); err != nil {
			return Config{}, fmt.Errorf("canopy: parse config: %w", err)
		}
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("canopy: parse config: %w", err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	vp := c.Viewport
	if vp.Size.X <= 0 || vp.Size.Y <= 0 {
		return fmt.Errorf("viewport size %vx%v must be positive", vp.Size.X, vp.Size.Y)
	}
	if vp.PixelsPerUnit.X <= 0 || vp.PixelsPerUnit.Y <= 0 {
		return fmt.Errorf("viewport pixelsPerUnit %vx%v must be positive", vp.PixelsPerUnit.X, vp.PixelsPerUnit.Y)
	}
	if c.FocusCapacity < 0 || c.CanvasMaxElements < 0 {
		return fmt.Errorf("capacities must not be negative")
	}
	return nil
}
