// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"slices"

	"cogentcore.org/core/math32"
)

// Node is an element of the scene graph: it has a [Pose] relative to its
// parent, an optional local bounding box used for ray picking, and
// parent / children links. The zero value is not ready to use;
// use [NewNode] or call [Node.Defaults].
type Node struct {

	// Name is the name of the node, which need not be unique.
	Name string

	// Pose is the position, rotation and scale relative to the parent,
	// plus the derived world transform.
	Pose Pose

	// Bounds is the bounding box in local coordinates, used for ray picking.
	// Nodes with an empty box (the default) are not pickable themselves,
	// but their children still are.
	Bounds math32.Box3

	// WorldBounds is Bounds transformed by the WorldMatrix,
	// updated by [Node.UpdateWorldTransform].
	WorldBounds math32.Box3 `display:"-"`

	parent   *Node
	children []*Node
}

// NewNode returns a new node with the given name, added as the last
// child of the given parent, which can be nil for a root node.
func NewNode(parent *Node, name string) *Node {
	nd := &Node{Name: name}
	nd.Defaults()
	if parent != nil {
		parent.AddChild(nd)
	}
	return nd
}

func (nd *Node) Defaults() {
	nd.Bounds = math32.B3Empty()
	nd.Pose.Defaults()
}

func (nd *Node) String() string {
	return nd.Name
}

// Parent returns the parent of this node, or nil for a root.
func (nd *Node) Parent() *Node {
	return nd.parent
}

// Children returns the children of this node.
// The returned slice must not be modified.
func (nd *Node) Children() []*Node {
	return nd.children
}

// AddChild adds the given node as the last child of this one,
// removing it from any existing parent first.
func (nd *Node) AddChild(kid *Node) {
	if kid.parent != nil {
		kid.parent.RemoveChild(kid)
	}
	kid.parent = nd
	nd.children = append(nd.children, kid)
}

// RemoveChild removes the given child, returning false if it is not a child.
func (nd *Node) RemoveChild(kid *Node) bool {
	i := slices.Index(nd.children, kid)
	if i < 0 {
		return false
	}
	nd.children = slices.Delete(nd.children, i, i+1)
	kid.parent = nil
	return true
}

// IsAncestorOf returns true if this node is a strict ancestor of the other.
func (nd *Node) IsAncestorOf(other *Node) bool {
	if other == nil {
		return false
	}
	for par := other.parent; par != nil; par = par.parent {
		if par == nd {
			return true
		}
	}
	return false
}

// Root returns the top-most ancestor of this node (itself if it has no parent).
func (nd *Node) Root() *Node {
	rt := nd
	for rt.parent != nil {
		rt = rt.parent
	}
	return rt
}

// WalkDown calls the given function on this node and all of its
// descendants in depth-first order. If the function returns false,
// the children of that node are skipped.
func (nd *Node) WalkDown(fun func(n *Node) bool) {
	if !fun(nd) {
		return
	}
	for _, kid := range nd.children {
		kid.WalkDown(fun)
	}
}

// UpdateWorldTransform updates the world transform of this node and all
// of its descendants. The path from the root down to this node is
// refreshed first, so it is always safe to call after mutating any
// Pose along the way, and must be called before world values are read.
func (nd *Node) UpdateWorldTransform() {
	var path []*Node
	for par := nd.parent; par != nil; par = par.parent {
		path = append(path, par)
	}
	for i := len(path) - 1; i >= 0; i-- {
		path[i].updateWorldSelf()
	}
	nd.updateWorldTree()
}

// ParentWorld returns the world pose of the parent, or nil for a root node,
// which has an identity parent transform.
func (nd *Node) ParentWorld() *Pose {
	if nd.parent == nil {
		return nil
	}
	return &nd.parent.Pose
}

func (nd *Node) updateWorldSelf() {
	nd.Pose.UpdateWorld(nd.ParentWorld())
	if nd.Bounds.IsEmpty() {
		nd.WorldBounds = math32.B3Empty()
	} else {
		nd.WorldBounds = nd.Bounds.MulMatrix4(&nd.Pose.WorldMatrix)
	}
}

func (nd *Node) updateWorldTree() {
	nd.updateWorldSelf()
	for _, kid := range nd.children {
		kid.updateWorldTree()
	}
}

// SetPos sets the [Pose.Pos] position of the node
func (nd *Node) SetPos(x, y, z float32) *Node {
	nd.Pose.Pos.Set(x, y, z)
	return nd
}

// SetScale sets the [Pose.Scale] scale of the node
func (nd *Node) SetScale(x, y, z float32) *Node {
	nd.Pose.Scale.Set(x, y, z)
	return nd
}

// SetAxisRotation sets the [Pose.Quat] rotation of the node,
// from local axis and angle in degrees.
func (nd *Node) SetAxisRotation(x, y, z, angle float32) *Node {
	nd.Pose.SetAxisRotation(x, y, z, angle)
	return nd
}

// SetBounds sets the local [Node.Bounds] to a box of the given size
// centered on the origin.
func (nd *Node) SetBounds(sx, sy, sz float32) *Node {
	nd.Bounds = math32.B3(-sx/2, -sy/2, -sz/2, sx/2, sy/2, sz/2)
	return nd
}
