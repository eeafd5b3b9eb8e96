// Package config loads and saves simulation settings as YAML.
package config

import (
	"fmt"
	"os"

	"github.com/akmonengine/stride/body"
	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"
)

const (
	DefaultDt      = 0.01
	DefaultGravity = -9.81
	DefaultWorkers = 1
)

// Config is the on-disk simulation configuration. Gravity takes two or
// three components depending on the world's dimensionality.
type Config struct {
	Dt             float64   `yaml:"dt"`
	Workers        int       `yaml:"workers"`
	Gravity        []float64 `yaml:"gravity"`
	LinearDamping  float64   `yaml:"linear_damping"`
	AngularDamping float64   `yaml:"angular_damping"`
}

// Default returns a configuration for a sequential 3D world with standard
// gravity and no damping.
func Default() *Config {
	return &Config{
		Dt:      DefaultDt,
		Workers: DefaultWorkers,
		Gravity: []float64{0, DefaultGravity, 0},
	}
}

// Load reads a YAML configuration, applying defaults for absent fields.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the configuration as YAML.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks the configuration invariants.
func (c *Config) Validate() error {
	if c.Dt <= 0 {
		return fmt.Errorf("dt must be positive, got %f", c.Dt)
	}
	if c.Workers <= 0 {
		return fmt.Errorf("workers must be positive, got %d", c.Workers)
	}
	if n := len(c.Gravity); n != 2 && n != 3 {
		return fmt.Errorf("gravity needs 2 or 3 components, got %d", n)
	}
	if c.LinearDamping < 0 || c.AngularDamping < 0 {
		return fmt.Errorf("damping coefficients must not be negative")
	}
	return nil
}

// Params2 extracts the world parameters for a planar world.
func (c *Config) Params2() (body.WorldParameters[mgl64.Vec2], error) {
	if len(c.Gravity) != 2 {
		return body.WorldParameters[mgl64.Vec2]{}, fmt.Errorf("gravity needs 2 components for a 2D world, got %d", len(c.Gravity))
	}
	return body.WorldParameters[mgl64.Vec2]{
		Gravity:        mgl64.Vec2{c.Gravity[0], c.Gravity[1]},
		LinearDamping:  c.LinearDamping,
		AngularDamping: c.AngularDamping,
	}, nil
}

// Params3 extracts the world parameters for a spatial world.
func (c *Config) Params3() (body.WorldParameters[mgl64.Vec3], error) {
	if len(c.Gravity) != 3 {
		return body.WorldParameters[mgl64.Vec3]{}, fmt.Errorf("gravity needs 3 components for a 3D world, got %d", len(c.Gravity))
	}
	return body.WorldParameters[mgl64.Vec3]{
		Gravity:        mgl64.Vec3{c.Gravity[0], c.Gravity[1], c.Gravity[2]},
		LinearDamping:  c.LinearDamping,
		AngularDamping: c.AngularDamping,
	}, nil
}
