package config

import (
	"time"

	"github.com/uhrsim/uhrsim/pkg/geometry"
)

// Config is the run configuration. Lengths are in mm, Time in seconds and
// Activity in Bq.
type Config struct {
	Visu          bool           `yaml:"visu"`
	Time          float64        `yaml:"time" validate:"gte=0"`
	Threads       int            `yaml:"threads" validate:"gte=1"`
	Seed          int64          `yaml:"seed"`
	Output        string         `yaml:"output" validate:"required"`
	LogLevel      string         `yaml:"log_level" validate:"oneof=panic fatal error warn info debug trace"`
	Layout        string         `yaml:"layout" validate:"oneof=uhr lp2"`
	WorldMargin   geometry.Vec3D `yaml:"world_margin"`
	Activity      float64        `yaml:"activity" validate:"gt=0"`
	VisuParticles int64          `yaml:"visu_particles" validate:"gt=0"`
	Rods          []Rod          `yaml:"rods" validate:"dive"`
	WorkDir       string         `yaml:"workdir"`
	Engine        Engine         `yaml:"engine"`
}

// Rod is a Cs-137 rod placed in the world.
type Rod struct {
	Name     string         `yaml:"name" validate:"required"`
	Position geometry.Vec3D `yaml:"position"`
}

// Engine is the external simulation program. The scene file path is
// appended to Args.
type Engine struct {
	Command string        `yaml:"command" validate:"required"`
	Args    []string      `yaml:"args"`
	Timeout time.Duration `yaml:"timeout" validate:"gte=0"`
}
