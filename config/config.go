package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// PathEnvName overrides the config path when -config is not given.
const PathEnvName = "PICKER_CONFIG"

//go:embed default.yaml
var defaultYAML []byte

var ErrInvalid = errors.New("invalid config")

type Config struct {
	Window      WindowConfig   `yaml:"window"`
	Restaurants []string       `yaml:"restaurants"`
	Wheel       WheelConfig    `yaml:"wheel"`
	Snake       SnakeConfig    `yaml:"snake"`
	Confetti    ConfettiConfig `yaml:"confetti"`
	Log         LogConfig      `yaml:"log"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	FPS    int    `yaml:"fps"`
}

type WheelConfig struct {
	Spins    int           `yaml:"spins"`
	Duration time.Duration `yaml:"duration"`
}

type SnakeConfig struct {
	Grid int           `yaml:"grid"`
	Tick time.Duration `yaml:"tick"`
}

type ConfettiConfig struct {
	Count     int           `yaml:"count"`
	Duration  time.Duration `yaml:"duration"`
	Gravity   float64       `yaml:"gravity"`
	TimeScale float64       `yaml:"time_scale"`
	MinSpeed  float64       `yaml:"min_speed"`
	MaxSpeed  float64       `yaml:"max_speed"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	File  bool   `yaml:"file"`
	Dir   string `yaml:"dir"`
}

// Default returns the built-in configuration.
func Default() (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultYAML, cfg); err != nil {
		return nil, fmt.Errorf("parse default config: %w", err)
	}
	return cfg, nil
}

// Load reads path on top of the defaults. An empty path falls back to
// PICKER_CONFIG, and to the defaults alone when that is unset too.
func Load(path string) (*Config, error) {
	cfg, err := Default()
	if err != nil {
		return nil, err
	}

	if path == "" {
		path = os.Getenv(PathEnvName)
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := Parse(data, cfg); err != nil {
			return nil, fmt.Errorf("config %s: %w", path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse decodes YAML into cfg, keeping fields the document leaves out.
func Parse(data []byte, cfg *Config) error {
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse yaml: %w", err)
	}
	return nil
}

func (c *Config) Validate() error {
	switch {
	case len(c.Restaurants) == 0:
		return fmt.Errorf("%w: restaurants must not be empty", ErrInvalid)
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.Window.FPS <= 0:
		return fmt.Errorf("%w: fps must be positive", ErrInvalid)
	case c.Wheel.Spins <= 0:
		return fmt.Errorf("%w: wheel spins must be positive", ErrInvalid)
	case c.Wheel.Duration <= 0:
		return fmt.Errorf("%w: wheel duration must be positive", ErrInvalid)
	case c.Snake.Grid <= 0:
		return fmt.Errorf("%w: snake grid must be positive", ErrInvalid)
	case c.Snake.Tick <= 0:
		return fmt.Errorf("%w: snake tick must be positive", ErrInvalid)
	case c.Confetti.Count <= 0:
		return fmt.Errorf("%w: confetti count must be positive", ErrInvalid)
	case c.Confetti.Duration <= 0:
		return fmt.Errorf("%w: confetti duration must be positive", ErrInvalid)
	case c.Confetti.Gravity <= 0:
		return fmt.Errorf("%w: confetti gravity must be positive", ErrInvalid)
	case c.Confetti.MaxSpeed <= c.Confetti.MinSpeed:
		return fmt.Errorf("%w: confetti max_speed must exceed min_speed", ErrInvalid)
	}
	for i, r := range c.Restaurants {
		if r == "" {
			return fmt.Errorf("%w: restaurant %d has no name", ErrInvalid, i)
		}
	}
	return nil
}
