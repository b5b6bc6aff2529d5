// Package config loads led-trail settings from YAML and watches them for changes
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultPath is looked up in the working directory when -config is not given
const DefaultPath = "led-trail.yaml"

// Color modes accepted by ColorMode
const (
	ColorModeAuto      = "auto"
	ColorModeTrueColor = "truecolor"
	ColorMode256       = "256"
)

// CursorSpec describes the custom pointer
type CursorSpec struct {
	Glyph    string `yaml:"glyph"`
	HotspotX int    `yaml:"hotspot_x"`
	HotspotY int    `yaml:"hotspot_y"`
	SpriteW  int    `yaml:"sprite_w"`
	SpriteH  int    `yaml:"sprite_h"`
}

// Config is the full settings file
type Config struct {
	Color     string     `yaml:"color"`
	LagMs     int        `yaml:"lag_ms"`
	FadeOutMs int        `yaml:"fade_out_ms"`
	Sound     bool       `yaml:"sound"`
	ColorMode string     `yaml:"color_mode"`
	Cursor    CursorSpec `yaml:"cursor"`
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		Color:     "#c9ff5e",
		LagMs:     20,
		FadeOutMs: 1000,
		ColorMode: ColorModeAuto,
		Cursor: CursorSpec{
			Glyph:    "+",
			HotspotX: 16,
			HotspotY: 16,
			SpriteW:  32,
			SpriteH:  32,
		},
	}
}

// Load reads path over the defaults; a missing file is not an error
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes YAML over the defaults and validates the result
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// Validate rejects settings the program cannot run with
// Color is not checked, malformed values render black
func (c Config) Validate() error {
	if c.LagMs < 0 {
		return fmt.Errorf("config: lag_ms must not be negative, got %d", c.LagMs)
	}
	if c.FadeOutMs < 0 {
		return fmt.Errorf("config: fade_out_ms must not be negative, got %d", c.FadeOutMs)
	}
	switch c.ColorMode {
	case ColorModeAuto, ColorModeTrueColor, ColorMode256, "":
	default:
		return fmt.Errorf("config: unknown color_mode %q", c.ColorMode)
	}
	if c.Cursor.SpriteW < 0 || c.Cursor.SpriteH < 0 {
		return fmt.Errorf("config: cursor sprite size must not be negative")
	}
	return nil
}

// LagDelay is LagMs as a duration
func (c Config) LagDelay() time.Duration {
	return time.Duration(c.LagMs) * time.Millisecond
}

// FadeOutDelay is FadeOutMs as a duration
func (c Config) FadeOutDelay() time.Duration {
	return time.Duration(c.FadeOutMs) * time.Millisecond
}

// CursorGlyph returns the first rune of the glyph, '+' when empty
func (c Config) CursorGlyph() rune {
	for _, r := range c.Cursor.Glyph {
		return r
	}
	return '+'
}
