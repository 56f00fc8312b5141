package setup

import (
	"encoding/json"

	"github.com/deadsy/sdfx/sdf"

	"github.com/uhrsim/uhrsim/pkg/geometry"
	"github.com/uhrsim/uhrsim/pkg/utils"
)

var shapeType = struct {
	box         string
	tubs        string
	subtraction string
}{
	box:         "box",
	tubs:        "tubs",
	subtraction: "subtraction",
}

var shapeTypeMapping = map[string]func() interface{}{
	shapeType.box:         func() interface{} { return &BoxShape{} },
	shapeType.tubs:        func() interface{} { return &TubsShape{} },
	shapeType.subtraction: func() interface{} { return &SubtractionShape{} },
}

// Color is an RGBA colour with components in [0, 1].
type Color [4]float64

// Volume is a placed solid. Translation and Rotation are relative to Mother.
// When Repeat is set the volume is placed once per entry instead.
type Volume struct {
	Name        string            `json:"name"`
	Mother      string            `json:"mother,omitempty"`
	Material    string            `json:"material"`
	Shape       Shape             `json:"shape"`
	Translation geometry.Vec3D    `json:"translation"`
	Rotation    geometry.Rotation `json:"rotation"`
	Color       Color             `json:"color"`
	Repeat      []Placement       `json:"repeat,omitempty"`
}

// NewVolume returns an unplaced, unrotated, opaque white volume.
func NewVolume(name, mother, material string, shape ShapeType) Volume {
	return Volume{
		Name:     name,
		Mother:   mother,
		Material: material,
		Shape:    Shape{shape},
		Rotation: geometry.Identity(),
		Color:    Color{1, 1, 1, 1},
	}
}

// Placement is one physical copy of a volume.
type Placement struct {
	Name        string            `json:"name"`
	Translation geometry.Vec3D    `json:"translation"`
	Rotation    geometry.Rotation `json:"rotation"`
}

// Placements returns the repeat entries, or the single placement of an
// unrepeated volume.
func (v Volume) Placements() []Placement {
	if len(v.Repeat) > 0 {
		return v.Repeat
	}
	return []Placement{{Name: v.Name, Translation: v.Translation, Rotation: v.Rotation}}
}

// ShapeType is implemented by every solid a volume can be made of.
type ShapeType interface {
	Solid() (sdf.SDF3, error)
}

// Shape is a type-tagged ShapeType.
type Shape struct {
	ShapeType
}

// MarshalJSON ...
func (s Shape) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.ShapeType)
}

// UnmarshalJSON ...
func (s *Shape) UnmarshalJSON(b []byte) error {
	if utils.IsJSONNull(b) {
		s.ShapeType = nil
		return nil
	}
	shape, err := utils.TypeBasedUnmarshallJSON(b, shapeTypeMapping)
	if err != nil {
		return err
	}
	s.ShapeType = shape.(ShapeType)
	return nil
}

// BoxShape is a box of the given full size centered on the origin.
type BoxShape struct {
	Size geometry.Vec3D `json:"size"`
}

// MarshalJSON json.Marshaller implementation.
func (b BoxShape) MarshalJSON() ([]byte, error) {
	type Alias BoxShape
	return json.Marshal(struct {
		Type string `json:"type"`
		Alias
	}{
		Type:  shapeType.box,
		Alias: Alias(b),
	})
}

// TubsShape is a (possibly hollow) cylinder along the local z axis.
// DZ is the half length.
type TubsShape struct {
	RMin float64 `json:"rmin"`
	RMax float64 `json:"rmax"`
	DZ   float64 `json:"dz"`
}

// MarshalJSON json.Marshaller implementation.
func (t TubsShape) MarshalJSON() ([]byte, error) {
	type Alias TubsShape
	return json.Marshal(struct {
		Type string `json:"type"`
		Alias
	}{
		Type:  shapeType.tubs,
		Alias: Alias(t),
	})
}

// SubtractionShape is Base with Cut, moved by CutTranslation, removed.
type SubtractionShape struct {
	Base           Shape          `json:"base"`
	Cut            Shape          `json:"cut"`
	CutTranslation geometry.Vec3D `json:"cutTranslation"`
}

// MarshalJSON json.Marshaller implementation.
func (s SubtractionShape) MarshalJSON() ([]byte, error) {
	type Alias SubtractionShape
	return json.Marshal(struct {
		Type string `json:"type"`
		Alias
	}{
		Type:  shapeType.subtraction,
		Alias: Alias(s),
	})
}
