package setup

import (
	"fmt"
	"sort"
	"strings"

	"github.com/uhrsim/uhrsim/pkg/geometry"
	"github.com/uhrsim/uhrsim/pkg/tree"
)

// VolumeTree builds the placed-volume hierarchy rooted at the world.
// A repeated volume contributes one node per placement, each carrying its own
// copy of the daughters. A volume without a shape gets nil limits.
func (s Setup) VolumeTree() (*tree.Node, error) {
	world, ok := s.Volumes[WorldName]
	if !ok {
		return nil, VolumeError(WorldName, "root volume is missing")
	}

	daughters := s.daughters()
	attached := map[string]bool{}
	var build func(v Volume) ([]*tree.Node, error)
	build = func(v Volume) ([]*tree.Node, error) {
		attached[v.Name] = true

		var limits *geometry.Limits
		if v.Shape.ShapeType != nil {
			l, err := BoundingLimits(v.Shape)
			if err != nil {
				return nil, VolumeError(v.Name, "shape: %v", err)
			}
			limits = &l
		}

		children := []*tree.Node{}
		for _, name := range daughters[v.Name] {
			nodes, err := build(s.Volumes[name])
			if err != nil {
				return nil, err
			}
			children = append(children, nodes...)
		}

		placements := v.Placements()
		nodes := make([]*tree.Node, 0, len(placements))
		for i, p := range placements {
			translation, rotation := p.Translation, p.Rotation
			node := &tree.Node{
				Name:        p.Name,
				Translation: &translation,
				Rotation:    &rotation,
				Children:    children,
			}
			if limits != nil {
				l := *limits
				node.Limits = &l
			}
			if i > 0 {
				node.Children = make([]*tree.Node, len(children))
				for j, child := range children {
					node.Children[j] = child.Clone()
				}
			}
			nodes = append(nodes, node)
		}
		return nodes, nil
	}

	nodes, err := build(world)
	if err != nil {
		return nil, err
	}
	if len(nodes) != 1 {
		return nil, VolumeError(WorldName, "root volume cannot be repeated")
	}

	orphans := []string{}
	for name := range s.Volumes {
		if !attached[name] {
			orphans = append(orphans, name)
		}
	}
	if len(orphans) > 0 {
		sort.Strings(orphans)
		return nil, fmt.Errorf("[setup] volumes not attached to %q: %s", WorldName, strings.Join(orphans, ", "))
	}
	return nodes[0], nil
}

// daughters maps each mother name to the sorted names of its volumes.
func (s Setup) daughters() map[string][]string {
	daughters := map[string][]string{}
	for name, v := range s.Volumes {
		if name == WorldName {
			continue
		}
		daughters[v.Mother] = append(daughters[v.Mother], name)
	}
	for _, names := range daughters {
		sort.Strings(names)
	}
	return daughters
}

// OrderedVolumes lists the volumes attached to the world, every mother
// before its daughters and sisters sorted by name.
func (s Setup) OrderedVolumes() ([]Volume, error) {
	world, ok := s.Volumes[WorldName]
	if !ok {
		return nil, VolumeError(WorldName, "root volume is missing")
	}
	daughters := s.daughters()

	ordered := []Volume{}
	var visit func(v Volume)
	visit = func(v Volume) {
		ordered = append(ordered, v)
		for _, name := range daughters[v.Name] {
			visit(s.Volumes[name])
		}
	}
	visit(world)

	if len(ordered) != len(s.Volumes) {
		return nil, fmt.Errorf("[setup] %d volumes not attached to %q", len(s.Volumes)-len(ordered), WorldName)
	}
	return ordered, nil
}
