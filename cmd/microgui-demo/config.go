package main

import (
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Config is the demo's TOML configuration file.
type Config struct {
	Display DisplayConfig `toml:"display"`
	Colors  ColorsConfig  `toml:"colors"`
	Dial    DialConfig    `toml:"dial"`
}

type DisplayConfig struct {
	// Width and Height of the pixel surface.
	Width  int `toml:"width"`
	Height int `toml:"height"`
	// Backend selects the surface: "tcell" renders into the terminal,
	// "image" renders one frame to a PNG file.
	Backend string `toml:"backend"`
	// Output is the PNG path for the image backend.
	Output string `toml:"output"`
}

type ColorsConfig struct {
	// Hex colors, "#rrggbb".
	Foreground string `toml:"foreground"`
	Background string `toml:"background"`
	Accent     string `toml:"accent"`
}

type DialConfig struct {
	Radius        int     `toml:"radius"`
	Ticks         int     `toml:"ticks"`
	ChevronLength float64 `toml:"chevron_length"`
}

func defaultConfig() Config {
	return Config{
		Display: DisplayConfig{
			Width:   64,
			Height:  48,
			Backend: "tcell",
			Output:  "dial.png",
		},
		Colors: ColorsConfig{
			Foreground: "#e0e0e0",
			Background: "#1a1b26",
			Accent:     "#50ff50",
		},
		Dial: DialConfig{
			Radius:        18,
			Ticks:         12,
			ChevronLength: 4,
		},
	}
}

// loadConfig reads a TOML config file, falling back to defaults when
// the path is empty or missing.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// parseHex converts a "#rrggbb" string to a color.
func parseHex(s string) (color.RGBA, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid color %q: want rrggbb", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xff,
	}, nil
}
