package setup

import (
	"fmt"

	"github.com/uhrsim/uhrsim/pkg/geometry"
)

// Source is a primary particle generator attached to a volume.
type Source struct {
	Name      string         `json:"name"`
	Type      string         `json:"type"`
	Mother    string         `json:"mother"`
	Particle  string         `json:"particle"`
	N         int64          `json:"n,omitempty"`
	Activity  float64        `json:"activity,omitempty"`
	Energy    Energy         `json:"energy"`
	Direction Direction      `json:"direction"`
	Position  SourcePosition `json:"position"`
}

// GenericSourceType is the only source type the engine is driven with.
const GenericSourceType = "GenericSource"

// NewGenericSource returns a source with no emission set.
func NewGenericSource(name, mother, particle string) Source {
	return Source{
		Name:      name,
		Type:      GenericSourceType,
		Mother:    mother,
		Particle:  particle,
		Energy:    Energy{Type: "mono"},
		Direction: Direction{Type: "iso"},
		Position:  SourcePosition{Type: "point"},
	}
}

// Energy spectrum of emitted particles.
type Energy struct {
	Type string  `json:"type"`
	Mono float64 `json:"mono"`
}

// Direction of emitted particles.
type Direction struct {
	Type string `json:"type"`
}

// SourcePosition is the emission region. Confine restricts it to the inside
// of a volume.
type SourcePosition struct {
	Type    string         `json:"type"`
	Size    geometry.Vec3D `json:"size"`
	Center  geometry.Vec3D `json:"translation"`
	Confine string         `json:"confine,omitempty"`
}

var knownParticles = map[string]bool{
	"gamma":    true,
	"e-":       true,
	"e+":       true,
	"proton":   true,
	"neutron":  true,
	"alpha":    true,
	"geantino": true,
}

var knownEnergyTypes = map[string]bool{"mono": true}

var knownDirectionTypes = map[string]bool{"iso": true, "momentum": true}

var knownPositionTypes = map[string]bool{"point": true, "box": true, "sphere": true}

// Validate checks the fields of a source that do not depend on other models.
func (s Source) Validate() error {
	result := E{}

	if s.Type != GenericSourceType {
		result["type"] = fmt.Errorf("unsupported source type %q", s.Type)
	}
	if s.Mother == "" {
		result["mother"] = fmt.Errorf("is required")
	}
	if !knownParticles[s.Particle] {
		result["particle"] = fmt.Errorf("unknown particle %q", s.Particle)
	}
	if (s.N > 0) == (s.Activity > 0) {
		result["n"] = fmt.Errorf("exactly one of n and activity must be set")
	}
	if s.N < 0 {
		result["n"] = fmt.Errorf("should be positive value")
	}
	if s.Activity < 0 {
		result["activity"] = fmt.Errorf("should be positive value")
	}
	if !knownEnergyTypes[s.Energy.Type] {
		result["energy.type"] = fmt.Errorf("unknown energy type %q", s.Energy.Type)
	} else if s.Energy.Mono <= 0 {
		result["energy.mono"] = fmt.Errorf("should be positive value")
	}
	if !knownDirectionTypes[s.Direction.Type] {
		result["direction.type"] = fmt.Errorf("unknown direction type %q", s.Direction.Type)
	}
	if !knownPositionTypes[s.Position.Type] {
		result["position.type"] = fmt.Errorf("unknown position type %q", s.Position.Type)
	}
	size := s.Position.Size
	if size.X < 0 || size.Y < 0 || size.Z < 0 {
		result["position.size"] = fmt.Errorf("should not have negative components")
	}

	return result.OrNil()
}
