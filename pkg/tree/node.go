// Package tree holds the placed-volume hierarchy and the queries run over it.
//
// A tree is built once, then only read: nothing in this package mutates the
// nodes it is given.
package tree

import "github.com/uhrsim/uhrsim/pkg/geometry"

// Node is a placed volume. Translation and Rotation are relative to the
// parent's frame, Limits is the node's own box before placement. A nil field
// means the attribute is missing.
type Node struct {
	Name        string
	Translation *geometry.Vec3D
	Rotation    *geometry.Rotation
	Limits      *geometry.Limits
	Children    []*Node
}

// NewNode returns a fully specified node.
func NewNode(
	name string, translation geometry.Vec3D, rotation geometry.Rotation, limits geometry.Limits,
	children ...*Node,
) *Node {
	return &Node{
		Name:        name,
		Translation: &translation,
		Rotation:    &rotation,
		Limits:      &limits,
		Children:    children,
	}
}

// WalkFunc is called for every visited node. Returning an error stops the walk.
type WalkFunc func(n *Node) error

// PreOrder visits n and then its descendants, a node always before its children.
func (n *Node) PreOrder(fn WalkFunc) error {
	if err := fn(n); err != nil {
		return err
	}
	for _, child := range n.Children {
		if err := child.PreOrder(fn); err != nil {
			return err
		}
	}
	return nil
}

// FindAll returns every node of the tree rooted at n with the given name.
func (n *Node) FindAll(name string) []*Node {
	found := []*Node{}
	_ = n.PreOrder(func(node *Node) error {
		if node.Name == name {
			found = append(found, node)
		}
		return nil
	})
	return found
}

// Find returns the single node with the given name.
// It fails with a *LookupError when the name is absent or not unique.
func Find(root *Node, name string) (*Node, error) {
	if root == nil {
		return nil, &LookupError{Name: name}
	}
	found := root.FindAll(name)
	if len(found) != 1 {
		return nil, &LookupError{Name: name, Count: len(found)}
	}
	return found[0], nil
}

// Size returns the number of nodes in the tree rooted at n.
func (n *Node) Size() int {
	count := 0
	_ = n.PreOrder(func(*Node) error {
		count++
		return nil
	})
	return count
}

// Clone returns a deep copy of the tree rooted at n.
func (n *Node) Clone() *Node {
	clone := &Node{Name: n.Name}
	if n.Translation != nil {
		t := *n.Translation
		clone.Translation = &t
	}
	if n.Rotation != nil {
		r := *n.Rotation
		clone.Rotation = &r
	}
	if n.Limits != nil {
		l := *n.Limits
		clone.Limits = &l
	}
	for _, child := range n.Children {
		clone.Children = append(clone.Children, child.Clone())
	}
	return clone
}
