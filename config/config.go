package config

import (
	_ "embed"
	"errors"
	"fmt"
	"image/color"
	"os"

	"github.com/milk9111/bouncers/physics"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

var ErrInvalid = errors.New("config: invalid")

type Config struct {
	Window     WindowSpec     `yaml:"window"`
	Simulation SimulationSpec `yaml:"simulation"`
	Render     RenderSpec     `yaml:"render"`
}

type WindowSpec struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Title     string `yaml:"title"`
	Resizable bool   `yaml:"resizable"`
}

type SimulationSpec struct {
	Count    int     `yaml:"count"`
	Speed    float64 `yaml:"speed"`
	BodySize float64 `yaml:"body_size"`
	// Seed feeds the placement RNG. Zero picks a random seed per run.
	Seed uint64 `yaml:"seed"`
	// Workers bounds the update pool. Zero or less means GOMAXPROCS.
	Workers    int    `yaml:"workers"`
	Broadphase string `yaml:"broadphase"`
}

// RenderSpec is the part of the config that may change while running.
type RenderSpec struct {
	Sprite     string `yaml:"sprite"`
	Background string `yaml:"background"`
	Tint       string `yaml:"tint"`
	ShowDebug  bool   `yaml:"show_debug"`
}

// Default returns the embedded default configuration.
func Default() Config {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		panic(fmt.Sprintf("config: embedded default.yaml: %v", err))
	}
	return cfg
}

// Load reads the YAML file at path on top of the defaults. An empty path
// returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: load %s: %w", path, err)
	}
	if err := Parse(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes data over cfg and validates the result.
func Parse(data []byte, cfg *Config) error {
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("unmarshal: %w", err)
	}
	return cfg.Validate()
}

// Validate rejects values the simulation cannot run with.
func (c Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.Simulation.Count < 0:
		return fmt.Errorf("%w: simulation.count %d", ErrInvalid, c.Simulation.Count)
	case c.Simulation.Speed <= 0:
		return fmt.Errorf("%w: simulation.speed %v", ErrInvalid, c.Simulation.Speed)
	case c.Simulation.BodySize <= 0:
		return fmt.Errorf("%w: simulation.body_size %v", ErrInvalid, c.Simulation.BodySize)
	}
	if _, err := physics.NewBroadphase(c.Simulation.Broadphase); err != nil {
		return fmt.Errorf("%w: simulation.broadphase: %w", ErrInvalid, err)
	}
	if _, err := ParseColor(c.Render.Background); err != nil {
		return fmt.Errorf("%w: render.background: %w", ErrInvalid, err)
	}
	if _, err := ParseColor(c.Render.Tint); err != nil {
		return fmt.Errorf("%w: render.tint: %w", ErrInvalid, err)
	}
	return nil
}

// ParseColor parses "#rrggbb" or "#rrggbbaa".
func ParseColor(hex string) (color.RGBA, error) {
	var r, g, b uint8
	a := uint8(0xff)
	switch len(hex) {
	case 7:
		if n, err := fmt.Sscanf(hex, "#%02x%02x%02x", &r, &g, &b); err != nil || n != 3 {
			return color.RGBA{}, fmt.Errorf("bad color %q", hex)
		}
	case 9:
		if n, err := fmt.Sscanf(hex, "#%02x%02x%02x%02x", &r, &g, &b, &a); err != nil || n != 4 {
			return color.RGBA{}, fmt.Errorf("bad color %q", hex)
		}
	default:
		return color.RGBA{}, fmt.Errorf("bad color %q", hex)
	}
	return color.RGBA{R: r, G: g, B: b, A: a}, nil
}
