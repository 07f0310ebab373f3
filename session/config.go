package session

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned, wrapped, when a configuration value is out of range.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the tunable timing and progression values of a session.
// Durations are in seconds and speeds in rows per second.
type Config struct {
	// Seed for the piece bag; zero picks a random seed.
	Seed uint64 `yaml:"seed"`

	StartLevel    int `yaml:"start_level"`
	LinesPerLevel int `yaml:"lines_per_level"`

	BaseFallSpeed float64 `yaml:"base_fall_speed"`
	FallSpeedStep float64 `yaml:"fall_speed_step"`

	// Horizontal auto-repeat and soft drop pacing, used by interactive drivers.
	RepeatDelay      float64 `yaml:"repeat_delay"`
	RepeatRate       float64 `yaml:"repeat_rate"`
	SoftDropInterval float64 `yaml:"soft_drop_interval"`
}

// DefaultConfig returns the standard settings.
func DefaultConfig() Config {
	return Config{
		StartLevel:       1,
		LinesPerLevel:    10,
		BaseFallSpeed:    1.0,
		FallSpeedStep:    0.1,
		RepeatDelay:      0.2,
		RepeatRate:       0.05,
		SoftDropInterval: 0.05,
	}
}

// LoadConfig reads a YAML file over the defaults and validates the result.
func LoadConfig(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg, err := ParseConfig(raw)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes YAML over the defaults and validates the result.
// Keys missing from raw keep their default value.
func ParseConfig(raw []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that every value is usable.
func (c Config) Validate() error {
	switch {
	case c.StartLevel < 1:
		return fmt.Errorf("%w: start_level must be at least 1, got %d", ErrInvalidConfig, c.StartLevel)
	case c.LinesPerLevel < 1:
		return fmt.Errorf("%w: lines_per_level must be positive, got %d", ErrInvalidConfig, c.LinesPerLevel)
	case c.BaseFallSpeed <= 0:
		return fmt.Errorf("%w: base_fall_speed must be positive, got %g", ErrInvalidConfig, c.BaseFallSpeed)
	case c.FallSpeedStep < 0:
		return fmt.Errorf("%w: fall_speed_step must not be negative, got %g", ErrInvalidConfig, c.FallSpeedStep)
	case c.RepeatDelay < 0:
		return fmt.Errorf("%w: repeat_delay must not be negative, got %g", ErrInvalidConfig, c.RepeatDelay)
	case c.RepeatRate <= 0 || c.SoftDropInterval <= 0:
		return fmt.Errorf("%w: repeat_rate and soft_drop_interval must be positive", ErrInvalidConfig)
	}
	return nil
}
