// Package config handles configuration for the kinematics demo.
package config

import (
	"fmt"
	gomath "math"

	"go.uber.org/multierr"
)

// Config holds all demo settings.
type Config struct {
	Displacement DisplacementConfig `yaml:"displacement"`
	Gravity      GravityConfig      `yaml:"gravity"`
	Logging      LoggingConfig      `yaml:"logging"`
}

// DisplacementConfig holds the start point, velocity and duration of the
// displacement scenario. Each field is in the unit its tag names.
type DisplacementConfig struct {
	StartXMeters   float64 `yaml:"start_x_m"`
	StartYMeters   float64 `yaml:"start_y_m"`
	VelocityXMPS   float64 `yaml:"velocity_x_mps"`
	VelocityYFPS   float64 `yaml:"velocity_y_fps"`
	DurationSecond float64 `yaml:"duration_s"`
}

// GravityConfig holds the gravity scenario settings.
type GravityConfig struct {
	Enabled bool `yaml:"enabled"`
	// Distance from Earth's center used for the surface gravity check.
	BodyDistanceMiles float64 `yaml:"body_distance_miles"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Displacement: DisplacementConfig{
			StartXMeters:   3,
			StartYMeters:   4,
			VelocityXMPS:   2,
			VelocityYFPS:   -0.2,
			DurationSecond: 5,
		},
		Gravity: GravityConfig{
			Enabled:           true,
			BodyDistanceMiles: 3958.8,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var err error

	d := c.Displacement
	for name, v := range map[string]float64{
		"displacement.start_x_m":      d.StartXMeters,
		"displacement.start_y_m":      d.StartYMeters,
		"displacement.velocity_x_mps": d.VelocityXMPS,
		"displacement.velocity_y_fps": d.VelocityYFPS,
	} {
		if gomath.IsNaN(v) || gomath.IsInf(v, 0) {
			err = multierr.Append(err, fmt.Errorf("%s must be finite, got %v", name, v))
		}
	}
	if !(d.DurationSecond >= 0) || gomath.IsInf(d.DurationSecond, 0) {
		err = multierr.Append(err, fmt.Errorf("displacement.duration_s must be finite and non-negative, got %v", d.DurationSecond))
	}

	if c.Gravity.Enabled && !(c.Gravity.BodyDistanceMiles > 0) {
		err = multierr.Append(err, fmt.Errorf("gravity.body_distance_miles must be positive, got %v", c.Gravity.BodyDistanceMiles))
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		err = multierr.Append(err, fmt.Errorf("logging.level %q is not one of debug, info, warn, error", c.Logging.Level))
	}

	return err
}
