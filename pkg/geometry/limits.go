package geometry

// Limits is an axis-aligned bounding box given by its min and max corners.
type Limits struct {
	Min Vec3D `json:"min"`
	Max Vec3D `json:"max"`
}

// Corners returns the 8 corners of the box.
func (l Limits) Corners() [8]Vec3D {
	var corners [8]Vec3D
	for i := range corners {
		c := l.Min
		if i&1 != 0 {
			c.X = l.Max.X
		}
		if i&2 != 0 {
			c.Y = l.Max.Y
		}
		if i&4 != 0 {
			c.Z = l.Max.Z
		}
		corners[i] = c
	}
	return corners
}

// Size returns the box extent per axis.
func (l Limits) Size() Vec3D {
	return l.Max.Sub(l.Min)
}

// Center returns the box center.
func (l Limits) Center() Vec3D {
	return l.Min.Add(l.Max).Scale(0.5)
}

// CenterAndSizeToMinAndMax converts a center/size pair on one axis into
// min/max coordinates.
func CenterAndSizeToMinAndMax(center, size float64) (float64, float64) {
	halfSize := size / 2.0
	return center - halfSize, center + halfSize
}

// LimitsFromCenterAndSize builds the box of the given size around center.
func LimitsFromCenterAndSize(center, size Vec3D) Limits {
	minX, maxX := CenterAndSizeToMinAndMax(center.X, size.X)
	minY, maxY := CenterAndSizeToMinAndMax(center.Y, size.Y)
	minZ, maxZ := CenterAndSizeToMinAndMax(center.Z, size.Z)
	return Limits{
		Min: Vec3D{X: minX, Y: minY, Z: minZ},
		Max: Vec3D{X: maxX, Y: maxY, Z: maxZ},
	}
}
