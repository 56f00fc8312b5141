// Package config provides the run configuration from defaults, an optional
// YAML file, the environment and command-line flags.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/uhrsim/uhrsim/pkg/geometry"
	"github.com/uhrsim/uhrsim/pkg/setup"
)

// Defaults.
const (
	DefaultActivity      = 37e6 // Bq
	DefaultVisuParticles = 15
	DefaultLayout        = "uhr"
	DefaultLogLevel      = "info"
	DefaultEngineCommand = "gate-run"
	DefaultEngineTimeout = 24 * time.Hour
)

// DefaultOutputName returns the hits file name for a run started at now.
func DefaultOutputName(now time.Time) string {
	return fmt.Sprintf("sim-%s.root", now.Format("060102-15h04"))
}

// Default returns the configuration used when nothing is overridden.
func Default(now time.Time) Config {
	return Config{
		Threads:       1,
		Seed:          setup.DefaultRandomSeed,
		Output:        DefaultOutputName(now),
		LogLevel:      DefaultLogLevel,
		Layout:        DefaultLayout,
		WorldMargin:   geometry.Vec3D{X: 10 * geometry.MM, Y: 10 * geometry.MM, Z: 10 * geometry.MM},
		Activity:      DefaultActivity,
		VisuParticles: DefaultVisuParticles,
		Rods: []Rod{
			{Name: "rod", Position: geometry.Vec3D{X: 7.5 * geometry.MM}},
		},
		Engine: Engine{
			Command: DefaultEngineCommand,
			Timeout: DefaultEngineTimeout,
		},
	}
}

// LoadFile decodes the YAML file at path over conf. Unknown keys are errors.
func LoadFile(path string, conf *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("[config] read %s: %w", path, err)
	}
	return Decode(data, conf)
}

// Decode decodes YAML data over conf. Unknown keys are errors.
func Decode(data []byte, conf *Config) error {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(conf); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("[config] parse: %w", err)
	}
	return nil
}

var validate = validator.New()

// Validate checks field constraints and the cross-field rules.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("[config] %w", err)
	}
	return checkConfig(c)
}
