// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene provides a headless scene graph of box meshes and groups,
// with poses, materials and bounding boxes that a renderer can consume,
// along with the construction of device and highlight visuals.
package scene

import (
	"image/color"
	"slices"

	"cogentcore.org/fleetview/math32"
)

const (
	// Continue = true can be returned from tree walk functions to continue down the branch.
	Continue = true

	// Break = false can be returned from tree walk functions to not descend into the branch.
	Break = false
)

// Pose contains the local position and scale of a node
// relative to its parent.
type Pose struct {

	// Pos is the position of the node origin in parent coordinates.
	Pos math32.Vector3

	// Scale is the per-axis scale factor.
	Scale math32.Vector3
}

// Defaults sets default pose values.
func (ps *Pose) Defaults() {
	ps.Scale.Set(1, 1, 1)
}

// Matrix returns the local transform of the pose.
func (ps *Pose) Matrix() math32.Matrix4 {
	var m math32.Matrix4
	m.SetScaleTranslate(ps.Scale, ps.Pos)
	return m
}

// Material describes the surface of a mesh.
type Material struct {

	// Color is the main color of the surface. Alpha is not used;
	// see Opacity.
	Color color.RGBA

	// Opacity is the opacity of the surface, 1 = opaque.
	Opacity float32

	// CullFront indicates to cull the front-facing surfaces,
	// so only the back side is rendered.
	CullFront bool
}

// Defaults sets default surface parameters.
func (mt *Material) Defaults() {
	mt.Color = color.RGBA{128, 128, 128, 255}
	mt.Opacity = 1
}

// IsTransparent returns true if the material is not fully opaque.
func (mt *Material) IsTransparent() bool {
	return mt.Opacity < 1
}

// Meta is the typed metadata record attached to the root node of a
// device visual. It carries only the device id; everything else about
// the device is looked up by id.
type Meta struct {
	DeviceID string
}

// Node is a node in the scene graph: either a group, which only
// holds children, or a box mesh with a size and a material.
type Node struct {

	// Name is the name of the node, unique among its siblings.
	Name string

	// Parent is the parent node, nil for the root.
	Parent *Node

	// Children are the child nodes, in order.
	Children []*Node

	// Pose is the local transform relative to the parent.
	Pose Pose

	// Size is the size of the box mesh centered on the node origin.
	// A zero size marks a group.
	Size math32.Vector3

	// Material is the surface of a mesh node.
	Material Material

	// Meta is the device metadata of a device root node, nil otherwise.
	Meta *Meta

	// Pickable indicates that ray picking considers this mesh.
	Pickable bool

	// Highlight marks a selection highlight visual.
	Highlight bool
}

// NewGroup returns a new group node with the given name.
func NewGroup(name string) *Node {
	n := &Node{Name: name}
	n.Pose.Defaults()
	n.Material.Defaults()
	return n
}

// NewBox returns a new pickable box mesh node with the given name and size.
func NewBox(name string, size math32.Vector3) *Node {
	n := NewGroup(name)
	n.Size = size
	n.Pickable = true
	return n
}

// IsMesh returns true if the node has a mesh.
func (n *Node) IsMesh() bool {
	return n.Size != (math32.Vector3{})
}

// AddChild adds the given node to the end of the children of this node,
// first removing it from any previous parent.
func (n *Node) AddChild(child *Node) *Node {
	if child.Parent != nil {
		child.Parent.RemoveChild(child)
	}
	child.Parent = n
	n.Children = append(n.Children, child)
	return child
}

// RemoveChild removes the given child and returns true if it was found.
func (n *Node) RemoveChild(child *Node) bool {
	idx := slices.Index(n.Children, child)
	if idx < 0 {
		return false
	}
	n.Children = slices.Delete(n.Children, idx, idx+1)
	child.Parent = nil
	return true
}

// Delete removes this node from its parent.
func (n *Node) Delete() {
	if n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
}

// ChildByName returns the first child with the given name, or nil.
func (n *Node) ChildByName(name string) *Node {
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// Path returns the names of the nodes from the root to this one,
// joined by '/'.
func (n *Node) Path() string {
	if n.Parent == nil {
		return "/" + n.Name
	}
	return n.Parent.Path() + "/" + n.Name
}

// WalkDown calls the given function on this node and all of its
// descendants in depth-first order. If fun returns [Break], the
// children of that node are skipped.
func (n *Node) WalkDown(fun func(n *Node) bool) {
	if !fun(n) {
		return
	}
	for _, c := range slices.Clone(n.Children) {
		c.WalkDown(fun)
	}
}

// Owner walks up from this node to the first node carrying [Meta],
// and returns it, or nil if the root is reached without one.
func (n *Node) Owner() *Node {
	for p := n; p != nil; p = p.Parent {
		if p.Meta != nil {
			return p
		}
	}
	return nil
}

// WorldMatrix returns the transform from local node coordinates
// to scene coordinates.
func (n *Node) WorldMatrix() math32.Matrix4 {
	m := n.Pose.Matrix()
	for p := n.Parent; p != nil; p = p.Parent {
		pm := p.Pose.Matrix()
		m.MulMatrices(&pm, &m)
	}
	return m
}

// WorldPos returns the position of the node origin in scene coordinates.
func (n *Node) WorldPos() math32.Vector3 {
	m := n.WorldMatrix()
	return m.Translation()
}

// WorldBBox returns the scene-space bounding box of the mesh of this node,
// or of all meshes below it for a group. It is empty if there are none.
func (n *Node) WorldBBox() math32.Box3 {
	bb := math32.B3Empty()
	n.WalkDown(func(c *Node) bool {
		if c.IsMesh() {
			m := c.WorldMatrix()
			bb.ExpandByBox(math32.B3FromCenterSize(math32.Vector3{}, c.Size).MulMatrix4(&m))
		}
		return Continue
	})
	return bb
}

// CountHighlights returns the number of highlight nodes at or below n.
func CountHighlights(n *Node) int {
	count := 0
	n.WalkDown(func(c *Node) bool {
		if c.Highlight {
			count++
		}
		return Continue
	})
	return count
}
