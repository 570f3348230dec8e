// Package scene is a small scene graph: transform nodes, meshes with
// materials, lights and wireframe helpers, rendered through pkg/render.
package scene

import (
	"slices"

	"github.com/taigrr/scenery/pkg/math3d"
)

// Object is anything that lives in the scene graph.
type Object interface {
	Base() *Node
}

// Node carries a transform and children. Other scene types embed it.
type Node struct {
	Name     string
	Position math3d.Vec3
	Rotation math3d.Vec3 // Euler angles in radians, applied X then Y then Z
	Scale    math3d.Vec3
	Visible  bool

	parent   *Node
	frame    math3d.Transformer
	children []Object
}

// NewNode creates an empty, visible node with unit scale.
func NewNode(name string) *Node {
	n := &Node{}
	n.init(name)
	return n
}

func (n *Node) init(name string) {
	n.Name = name
	n.Scale = math3d.V3(1, 1, 1)
	n.Visible = true
}

// Base returns the node itself.
func (n *Node) Base() *Node {
	return n
}

// Parent returns the node's parent in the graph, or nil.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns the direct children. The slice must not be modified.
func (n *Node) Children() []Object {
	return n.children
}

// Add attaches child to n, detaching it from any previous parent.
func (n *Node) Add(children ...Object) {
	for _, child := range children {
		c := child.Base()
		if c == n {
			continue
		}
		if c.parent != nil {
			c.parent.Remove(child)
		}
		c.parent = n
		n.children = append(n.children, child)
	}
}

// Remove detaches child from n. It is a no-op if child is not a direct
// child.
func (n *Node) Remove(child Object) {
	c := child.Base()
	i := slices.IndexFunc(n.children, func(o Object) bool { return o.Base() == c })
	if i < 0 {
		return
	}
	n.children = slices.Delete(n.children, i, i+1)
	c.parent = nil
}

// AttachTo makes the node follow an external transform (such as a camera)
// instead of its graph parent. The node stays in the graph so it is still
// found by traversal. Pass nil to restore the graph parent.
func (n *Node) AttachTo(t math3d.Transformer) {
	n.frame = t
}

// LocalMatrix returns T * R * S for the node's own transform.
func (n *Node) LocalMatrix() math3d.Mat4 {
	return math3d.Compose(n.Position, n.Rotation, n.Scale)
}

// WorldMatrix returns the node's transform in world space.
func (n *Node) WorldMatrix() math3d.Mat4 {
	local := n.LocalMatrix()
	switch {
	case n.frame != nil:
		return n.frame.WorldMatrix().Mul(local)
	case n.parent != nil:
		return n.parent.WorldMatrix().Mul(local)
	}
	return local
}

// WorldPosition returns the node's origin in world space.
func (n *Node) WorldPosition() math3d.Vec3 {
	return n.WorldMatrix().Translation()
}

// Traverse calls fn for every descendant of n in depth-first order.
func (n *Node) Traverse(fn func(Object)) {
	for _, child := range n.children {
		fn(child)
		child.Base().Traverse(fn)
	}
}

// TraverseVisible is Traverse that skips hidden subtrees.
func (n *Node) TraverseVisible(fn func(Object)) {
	for _, child := range n.children {
		if !child.Base().Visible {
			continue
		}
		fn(child)
		child.Base().TraverseVisible(fn)
	}
}
