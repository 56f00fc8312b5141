// Package phantom holds the calibration phantoms placed in front of the
// detector: sealed Cs-137 rods.
package phantom

import (
	"errors"
	"fmt"

	"github.com/uhrsim/uhrsim/pkg/geometry"
	"github.com/uhrsim/uhrsim/pkg/material"
	"github.com/uhrsim/uhrsim/pkg/setup"
)

// Cs137GammaEnergy is the energy of the Cs-137 (Ba-137m) gamma line.
const Cs137GammaEnergy = 661.7 * geometry.KeV

// RodColor is opaque red.
var RodColor = setup.Color{1, 0, 0, 1}

// HollowRod is a sealed tube: a solid shell with a thin inner channel that
// holds the activity. The tube axis is the local z axis before Rotation.
type HollowRod struct {
	Name        string
	Mother      string
	Translation geometry.Vec3D
	Rotation    geometry.Rotation
	Material    string

	InnerRadius float64
	InnerLength float64
	ShellRadius float64
	ShellLength float64
}

// NewHollowRod returns the standard aluminium rod, laid along the y axis.
func NewHollowRod(name, mother string) HollowRod {
	return HollowRod{
		Name:        name,
		Mother:      mother,
		Rotation:    geometry.MustRotationFromEuler("x", 90),
		Material:    material.Aluminium,
		InnerRadius: 100 * geometry.UM,
		InnerLength: 119.38 * geometry.MM,
		ShellRadius: 1.5 * geometry.MM,
		ShellLength: 123.444 * geometry.MM,
	}
}

func (r HollowRod) shell() setup.TubsShape {
	return setup.TubsShape{RMax: r.ShellRadius, DZ: r.ShellLength / 2}
}

func (r HollowRod) inner() setup.TubsShape {
	return setup.TubsShape{RMax: r.InnerRadius, DZ: r.InnerLength / 2}
}

// Volume returns the rod as a shell minus inner channel subtraction.
func (r HollowRod) Volume() setup.Volume {
	v := setup.NewVolume(r.Name, r.Mother, r.Material, setup.SubtractionShape{
		Base: setup.Shape{ShapeType: r.shell()},
		Cut:  setup.Shape{ShapeType: r.inner()},
	})
	v.Translation = r.Translation
	v.Rotation = r.Rotation
	v.Color = RodColor
	return v
}

// InnerSize is the bounding box size of the inner channel in the rod frame.
func (r HollowRod) InnerSize() (geometry.Vec3D, error) {
	limits, err := setup.BoundingLimits(setup.Shape{ShapeType: r.inner()})
	if err != nil {
		return geometry.Vec3D{}, fmt.Errorf("[phantom] rod %q inner channel: %w", r.Name, err)
	}
	return limits.Size(), nil
}

// ErrEmission is returned when a source sets both or neither of N and Activity.
var ErrEmission = errors.New("exactly one of n and activity must be set")

// CesiumSource is a rod filled with Cs-137. Exactly one of N (a fixed number
// of primaries) and Activity is set.
type CesiumSource struct {
	Name     string
	Rod      HollowRod
	N        int64
	Activity float64
}

// AddCesiumSource places the rod into s and attaches a gamma source that
// emits isotropically from the inner channel. It returns the rod volume.
func AddCesiumSource(s *setup.Setup, src CesiumSource) (setup.Volume, error) {
	if (src.N > 0) == (src.Activity > 0) {
		return setup.Volume{}, fmt.Errorf("[phantom] source %q: %w", src.Name, ErrEmission)
	}
	size, err := src.Rod.InnerSize()
	if err != nil {
		return setup.Volume{}, err
	}

	rod := src.Rod.Volume()
	if err := s.AddVolume(rod); err != nil {
		return setup.Volume{}, err
	}

	source := setup.NewGenericSource(src.Name, rod.Name, "gamma")
	source.N = src.N
	source.Activity = src.Activity
	source.Energy = setup.Energy{Type: "mono", Mono: Cs137GammaEnergy}
	source.Direction = setup.Direction{Type: "iso"}
	source.Position = setup.SourcePosition{Type: "box", Size: size, Confine: rod.Name}
	if err := s.AddSource(source); err != nil {
		return setup.Volume{}, err
	}
	return rod, nil
}
