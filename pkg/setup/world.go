package setup

import (
	"github.com/uhrsim/uhrsim/pkg/geometry"
	"github.com/uhrsim/uhrsim/pkg/tree"
)

// ContentSize returns the full extent of everything placed inside the named
// volume, measured in that volume's frame.
func (s Setup) ContentSize(volume string) (geometry.Vec3D, error) {
	root, err := s.VolumeTree()
	if err != nil {
		return geometry.Vec3D{}, err
	}
	return tree.ComputeMaxBBoxForChild(root, volume)
}

// SizeWorld resizes the world box to its content size plus margin and returns
// the new size.
func SizeWorld(s *Setup, margin geometry.Vec3D) (geometry.Vec3D, error) {
	content, err := s.ContentSize(WorldName)
	if err != nil {
		return geometry.Vec3D{}, err
	}
	size := content.Add(margin)

	world := s.Volumes[WorldName]
	world.Shape = Shape{BoxShape{Size: size}}
	s.Volumes[WorldName] = world
	return size, nil
}
