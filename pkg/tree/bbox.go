package tree

import (
	"github.com/uhrsim/uhrsim/pkg/geometry"
)

// orthonormalTolerance bounds the accepted deviation of R·Rᵀ from identity.
const orthonormalTolerance = 1e-6

// ComputeMaxBBoxForChild returns the full extents (dx, dy, dz) of the
// smallest origin-centered box of the named node's frame that contains every
// descendant of that node. The node's own limits are not included.
//
// Each descendant's corners are first translated, then multiplied as row
// vectors by that descendant's rotation (p·R). Only the placement of the
// descendant itself is applied, never those of the nodes between it and the
// target.
func ComputeMaxBBoxForChild(root *Node, name string) (geometry.Vec3D, error) {
	target, err := Find(root, name)
	if err != nil {
		return geometry.Vec3D{}, err
	}

	farthest := geometry.Vec3D{}
	err = target.PreOrder(func(n *Node) error {
		if n == target {
			return nil
		}
		if err := checkPlacement(n); err != nil {
			return err
		}
		for _, corner := range n.Limits.Corners() {
			placed := n.Rotation.ApplyRow(corner.Add(*n.Translation))
			farthest = farthest.Max(placed.Abs())
		}
		return nil
	})
	if err != nil {
		return geometry.Vec3D{}, err
	}

	return farthest.Scale(2), nil
}

func checkPlacement(n *Node) error {
	missing := []string{}
	if n.Translation == nil {
		missing = append(missing, "translation")
	}
	if n.Rotation == nil {
		missing = append(missing, "rotation")
	}
	if n.Limits == nil {
		missing = append(missing, "bounding limits")
	}
	if len(missing) > 0 {
		return &MalformedNodeError{Name: n.Name, Missing: missing}
	}
	if !n.Rotation.IsOrthonormal(orthonormalTolerance) {
		return &MalformedNodeError{Name: n.Name, Reason: "rotation is not orthonormal"}
	}
	return nil
}
