// Package setup is the declarative scene handed to the simulation engine:
// volumes, sources, actors, physics and run options.
package setup

import (
	"github.com/uhrsim/uhrsim/pkg/geometry"
)

// WorldName is the name of the root volume.
const WorldName = "world"

// VolumeMap type used in Setup structure.
type VolumeMap map[string]Volume

// SourceMap type used in Setup structure.
type SourceMap map[string]Source

// ActorMap type used in Setup structure.
type ActorMap map[string]Actor

// Setup contains all simulation data.
type Setup struct {
	UserInfo           UserInfo       `json:"userInfo"`
	MaterialDatabases  []string       `json:"materialDatabases"`
	Volumes            VolumeMap      `json:"volumes"`
	Sources            SourceMap      `json:"sources"`
	Actors             ActorMap       `json:"actors"`
	Physics            Physics        `json:"physics"`
	RunTimingIntervals []TimeInterval `json:"runTimingIntervals,omitempty"`
}

// DefaultWorld is the world volume of an empty setup.
var DefaultWorld = Volume{
	Name:     WorldName,
	Material: "G4_AIR",
	Shape:    Shape{BoxShape{Size: geometry.Vec3D{X: 3 * geometry.M, Y: 3 * geometry.M, Z: 3 * geometry.M}}},
	Rotation: geometry.Identity(),
	Color:    Color{1, 1, 1, 0},
}

// NewEmptySetup constructor.
func NewEmptySetup() Setup {
	return Setup{
		UserInfo:          DefaultUserInfo,
		MaterialDatabases: []string{},
		Volumes:           VolumeMap{WorldName: DefaultWorld},
		Sources:           make(SourceMap),
		Actors:            make(ActorMap),
		Physics:           DefaultPhysics,
	}
}

// AddVolume registers v. Names are unique across volumes.
func (s *Setup) AddVolume(v Volume) error {
	if v.Name == "" {
		return VolumeError(v.Name, "name is required")
	}
	if _, exists := s.Volumes[v.Name]; exists {
		return VolumeError(v.Name, "volume already exists")
	}
	s.Volumes[v.Name] = v
	return nil
}

// AddSource registers src. Names are unique across sources.
func (s *Setup) AddSource(src Source) error {
	if src.Name == "" {
		return SourceError(src.Name, "name is required")
	}
	if _, exists := s.Sources[src.Name]; exists {
		return SourceError(src.Name, "source already exists")
	}
	s.Sources[src.Name] = src
	return nil
}

// AddActor registers a. Names are unique across actors.
func (s *Setup) AddActor(a Actor) error {
	if a.Name == "" {
		return ActorError(a.Name, "name is required")
	}
	if _, exists := s.Actors[a.Name]; exists {
		return ActorError(a.Name, "actor already exists")
	}
	s.Actors[a.Name] = a
	return nil
}

// AddMaterialDatabase registers a material database file by name.
func (s *Setup) AddMaterialDatabase(path string) {
	for _, existing := range s.MaterialDatabases {
		if existing == path {
			return
		}
	}
	s.MaterialDatabases = append(s.MaterialDatabases, path)
}

// SetProductionCut sets the cut of particle in volume, replacing an existing one.
func (s *Setup) SetProductionCut(volume, particle string, value float64) {
	for i, cut := range s.Physics.ProductionCuts {
		if cut.Volume == volume && cut.Particle == particle {
			s.Physics.ProductionCuts[i].Value = value
			return
		}
	}
	s.Physics.ProductionCuts = append(s.Physics.ProductionCuts, ProductionCut{
		Volume:   volume,
		Particle: particle,
		Value:    value,
	})
}
