package setup

import (
	"errors"
	"fmt"

	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/uhrsim/uhrsim/pkg/geometry"
	"github.com/uhrsim/uhrsim/pkg/validate"
)

// ErrMissingShape is returned for a volume without a shape.
var ErrMissingShape = errors.New("shape is missing")

// Solid builds the box centered at the origin.
func (b BoxShape) Solid() (sdf.SDF3, error) {
	if !validate.Positive(b.Size.X, b.Size.Y, b.Size.Z) {
		return nil, fmt.Errorf("box size %v should be positive", b.Size)
	}
	return sdf.Box3D(v3.Vec{X: b.Size.X, Y: b.Size.Y, Z: b.Size.Z}, 0)
}

// Solid builds the tube centered at the origin along z.
func (t TubsShape) Solid() (sdf.SDF3, error) {
	if !validate.Positive(t.RMax, t.DZ) {
		return nil, fmt.Errorf("tubs needs positive rmax and dz, got rmax=%v dz=%v", t.RMax, t.DZ)
	}
	if t.RMin < 0 || t.RMin >= t.RMax {
		return nil, fmt.Errorf("tubs rmin=%v must be in [0, rmax=%v)", t.RMin, t.RMax)
	}
	outer, err := sdf.Cylinder3D(2*t.DZ, t.RMax, 0)
	if err != nil {
		return nil, err
	}
	if t.RMin == 0 {
		return outer, nil
	}
	inner, err := sdf.Cylinder3D(2*t.DZ, t.RMin, 0)
	if err != nil {
		return nil, err
	}
	return sdf.Difference3D(outer, inner), nil
}

// Solid builds Base minus the translated Cut.
func (s SubtractionShape) Solid() (sdf.SDF3, error) {
	if s.Base.ShapeType == nil || s.Cut.ShapeType == nil {
		return nil, fmt.Errorf("subtraction needs both base and cut: %w", ErrMissingShape)
	}
	base, err := s.Base.Solid()
	if err != nil {
		return nil, fmt.Errorf("base: %w", err)
	}
	cut, err := s.Cut.Solid()
	if err != nil {
		return nil, fmt.Errorf("cut: %w", err)
	}
	moved := sdf.Transform3D(cut, sdf.Translate3d(v3.Vec{
		X: s.CutTranslation.X,
		Y: s.CutTranslation.Y,
		Z: s.CutTranslation.Z,
	}))
	return sdf.Difference3D(base, moved), nil
}

// BoundingLimits returns the local axis-aligned box of shape.
func BoundingLimits(shape Shape) (geometry.Limits, error) {
	if shape.ShapeType == nil {
		return geometry.Limits{}, ErrMissingShape
	}
	solid, err := shape.Solid()
	if err != nil {
		return geometry.Limits{}, err
	}
	bb := solid.BoundingBox()
	return geometry.Limits{
		Min: geometry.Vec3D{X: bb.Min.X, Y: bb.Min.Y, Z: bb.Min.Z},
		Max: geometry.Vec3D{X: bb.Max.X, Y: bb.Max.Y, Z: bb.Max.Z},
	}, nil
}
