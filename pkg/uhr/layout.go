// Package uhr builds the nested box geometry of the ultra-high-resolution
// detector modules.
package uhr

import (
	"fmt"
	"sort"

	"github.com/uhrsim/uhrsim/pkg/geometry"
	"github.com/uhrsim/uhrsim/pkg/material"
	"github.com/uhrsim/uhrsim/pkg/setup"
)

// Level is one box of the hierarchy, repeated inside the level above it.
type Level struct {
	Name     string
	Material string
	Size     geometry.Vec3D
	Repeat   geometry.Vec3DInt
	Offset   geometry.Vec3D
	Color    [3]float64
	Opacity  float64
}

// Layout is a detector hierarchy, outermost level first.
type Layout struct {
	Name   string
	Levels []Level
}

// CrystalName is the name of the innermost (readout) volume.
func (l Layout) CrystalName() string {
	if len(l.Levels) == 0 {
		return ""
	}
	return l.Levels[len(l.Levels)-1].Name
}

// Add places every level into s, the outermost one inside mother.
func (l Layout) Add(s *setup.Setup, mother string) error {
	if len(l.Levels) == 0 {
		return fmt.Errorf("[uhr] layout %q has no levels", l.Name)
	}
	for _, level := range l.Levels {
		volume := setup.NewVolume(level.Name, mother, level.Material, setup.BoxShape{Size: level.Size})
		volume.Color = setup.Color{level.Color[0], level.Color[1], level.Color[2], level.Opacity}
		volume.Repeat = setup.RepeatArray(level.Name, level.Repeat, level.Offset)
		if len(volume.Repeat) == 0 {
			return fmt.Errorf("[uhr] layout %q: level %q has an empty repeat %v", l.Name, level.Name, level.Repeat)
		}
		if err := s.AddVolume(volume); err != nil {
			return err
		}
		mother = level.Name
	}
	return nil
}

// Copies returns the number of placed readout volumes.
func (l Layout) Copies() int64 {
	total := int64(1)
	for _, level := range l.Levels {
		total *= level.Repeat.X * level.Repeat.Y * level.Repeat.Z
	}
	return total
}

const (
	crystalLength = 12 * geometry.MM
	crystalWidth  = 1.1225 * geometry.MM
	crystalHeight = 1.1225 * geometry.MM
	crystalPitch  = 1.2 * geometry.MM

	matrixWidth  = crystalWidth*4 + (crystalPitch-crystalWidth)*3
	matrixHeight = crystalHeight*8 + (crystalPitch-crystalHeight)*7

	asicWidth  = matrixWidth*2 + crystalWidth + 2*(crystalPitch-crystalWidth)
	asicHeight = matrixHeight

	detectorWidth  = asicWidth
	detectorHeight = asicHeight*2 + crystalHeight + 2*(crystalPitch-crystalHeight)
)

// UHR is the four level detector: detector, ASIC, matrix and crystal.
func UHR() Layout {
	return Layout{
		Name: "uhr",
		Levels: []Level{
			{
				Name:     "detector",
				Material: material.Air,
				Size:     geometry.Vec3D{X: crystalLength, Y: detectorWidth, Z: detectorHeight},
				Repeat:   geometry.Vec3DInt{X: 1, Y: 6, Z: 1},
				Offset:   geometry.Vec3D{Y: 13.2 * geometry.MM},
				Color:    [3]float64{1, 0, 0},
				Opacity:  0.5,
			},
			{
				Name:     "asic",
				Material: material.Air,
				Size:     geometry.Vec3D{X: crystalLength, Y: asicWidth, Z: asicHeight},
				Repeat:   geometry.Vec3DInt{X: 1, Y: 1, Z: 2},
				Offset:   geometry.Vec3D{Z: 10.8 * geometry.MM},
				Color:    [3]float64{0, 1, 0},
				Opacity:  0.5,
			},
			{
				Name:     "matrix",
				Material: material.Air,
				Size:     geometry.Vec3D{X: crystalLength, Y: matrixWidth, Z: matrixHeight},
				Repeat:   geometry.Vec3DInt{X: 1, Y: 2, Z: 1},
				Offset:   geometry.Vec3D{Y: 6 * geometry.MM},
				Color:    [3]float64{0, 0.5, 0.5},
				Opacity:  0.2,
			},
			{
				Name:     "crystal",
				Material: material.LYSO,
				Size:     geometry.Vec3D{X: crystalLength, Y: crystalWidth, Z: crystalHeight},
				Repeat:   geometry.Vec3DInt{X: 1, Y: 4, Z: 8},
				Offset:   geometry.Vec3D{Y: crystalPitch, Z: crystalPitch},
				Color:    [3]float64{0, 0, 1},
				Opacity:  0.5,
			},
		},
	}
}

// LP2 is the first prototype: module, matrix and crystal with fixed sizes.
func LP2() Layout {
	return Layout{
		Name: "lp2",
		Levels: []Level{
			{
				Name:     "lp2Module",
				Material: material.Air,
				Size:     geometry.Vec3D{X: 12 * geometry.MM, Y: 10.86 * geometry.MM, Z: 20.46 * geometry.MM},
				Repeat:   geometry.Vec3DInt{X: 1, Y: 6, Z: 1},
				Offset:   geometry.Vec3D{Y: 13.2 * geometry.MM},
				Color:    [3]float64{0, 1, 0},
				Opacity:  1,
			},
			{
				Name:     "lp2Matrix",
				Material: material.Air,
				Size:     geometry.Vec3D{X: 12 * geometry.MM, Y: 4.86 * geometry.MM, Z: 9.66 * geometry.MM},
				Repeat:   geometry.Vec3DInt{X: 1, Y: 2, Z: 2},
				Offset:   geometry.Vec3D{Y: 6 * geometry.MM, Z: 10.8 * geometry.MM},
				Color:    [3]float64{0, 1, 0},
				Opacity:  1,
			},
			{
				Name:     "lp2Crystal",
				Material: material.LYSO,
				Size:     geometry.Vec3D{X: crystalLength, Y: crystalWidth, Z: crystalHeight},
				Repeat:   geometry.Vec3DInt{X: 1, Y: 4, Z: 8},
				Offset:   geometry.Vec3D{Y: crystalPitch, Z: crystalPitch},
				Color:    [3]float64{0, 0, 1},
				Opacity:  1,
			},
		},
	}
}

var layouts = map[string]func() Layout{
	"uhr": UHR,
	"lp2": LP2,
}

// ByName returns the layout registered under name.
func ByName(name string) (Layout, error) {
	build, ok := layouts[name]
	if !ok {
		return Layout{}, fmt.Errorf("[uhr] unknown layout %q, expected one of %v", name, Names())
	}
	return build(), nil
}

// Names lists the registered layouts.
func Names() []string {
	names := make([]string, 0, len(layouts))
	for name := range layouts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
