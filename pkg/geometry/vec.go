// Package geometry contains the small fixed-size vector, rotation and
// box types shared by the scene model and the volume tree.
package geometry

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Vec3D is a 3-vector in the engine's internal length unit (mm).
type Vec3D struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	Z float64 `json:"z" yaml:"z"`
}

// Vec3DInt is an integer 3-vector, e.g. repeat counts per axis.
type Vec3DInt struct {
	X int64 `json:"x" yaml:"x"`
	Y int64 `json:"y" yaml:"y"`
	Z int64 `json:"z" yaml:"z"`
}

// NewVec3D builds a vector from a [x, y, z] array.
func NewVec3D(v [3]float64) Vec3D {
	return Vec3D{X: v[0], Y: v[1], Z: v[2]}
}

// Add returns v + w.
func (v Vec3D) Add(w Vec3D) Vec3D {
	return fromR3(r3.Add(v.r3(), w.r3()))
}

// Sub returns v - w.
func (v Vec3D) Sub(w Vec3D) Vec3D {
	return fromR3(r3.Sub(v.r3(), w.r3()))
}

// Scale returns f * v.
func (v Vec3D) Scale(f float64) Vec3D {
	return fromR3(r3.Scale(f, v.r3()))
}

// Abs returns the elementwise absolute value.
func (v Vec3D) Abs() Vec3D {
	return Vec3D{X: math.Abs(v.X), Y: math.Abs(v.Y), Z: math.Abs(v.Z)}
}

// Max returns the elementwise maximum of v and w.
func (v Vec3D) Max(w Vec3D) Vec3D {
	return Vec3D{X: math.Max(v.X, w.X), Y: math.Max(v.Y, w.Y), Z: math.Max(v.Z, w.Z)}
}

// Array returns the vector as [x, y, z].
func (v Vec3D) Array() [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

func (v Vec3D) r3() r3.Vec {
	return r3.Vec{X: v.X, Y: v.Y, Z: v.Z}
}

func fromR3(v r3.Vec) Vec3D {
	return Vec3D{X: v.X, Y: v.Y, Z: v.Z}
}
