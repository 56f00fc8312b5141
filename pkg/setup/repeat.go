package setup

import (
	"fmt"

	"github.com/uhrsim/uhrsim/pkg/geometry"
)

// RepeatArray returns counts.X*counts.Y*counts.Z placements on a grid centered
// on the mother's origin, spaced by offsets. Copies are named name_0, name_1...
// with x varying slowest and z fastest.
func RepeatArray(name string, counts geometry.Vec3DInt, offsets geometry.Vec3D) []Placement {
	if counts.X <= 0 || counts.Y <= 0 || counts.Z <= 0 {
		return nil
	}
	start := geometry.Vec3D{
		X: -float64(counts.X-1) * offsets.X / 2,
		Y: -float64(counts.Y-1) * offsets.Y / 2,
		Z: -float64(counts.Z-1) * offsets.Z / 2,
	}

	placements := make([]Placement, 0, counts.X*counts.Y*counts.Z)
	for i := int64(0); i < counts.X; i++ {
		for j := int64(0); j < counts.Y; j++ {
			for k := int64(0); k < counts.Z; k++ {
				placements = append(placements, Placement{
					Name: fmt.Sprintf("%s_%d", name, len(placements)),
					Translation: geometry.Vec3D{
						X: start.X + float64(i)*offsets.X,
						Y: start.Y + float64(j)*offsets.Y,
						Z: start.Z + float64(k)*offsets.Z,
					},
					Rotation: geometry.Identity(),
				})
			}
		}
	}
	return placements
}
