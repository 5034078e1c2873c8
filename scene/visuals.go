// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"image/color"

	"cogentcore.org/fleetview/math32"
)

const (
	// BodyName is the name of the primary mesh of a device visual.
	BodyName = "body"

	// PanelName is the name of the front panel mesh of a device visual.
	PanelName = "panel"

	// HighlightName is the name of a selection highlight node.
	HighlightName = "highlight"

	// DeviceLift is the height of a device visual origin above the
	// device floor position, so that it rests on the area slab.
	DeviceLift float32 = 2

	// HighlightScale is the uniform scale of a highlight relative to
	// the body it covers.
	HighlightScale float32 = 1.1

	// AreaHeight is the thickness of an area floor slab.
	AreaHeight float32 = 1
)

var (
	// PanelColor is the color of the front panel of a device visual.
	PanelColor = color.RGBA{0x00, 0xaa, 0xff, 0xff}

	// AreaColor is the color of an area floor slab.
	AreaColor = color.RGBA{0x1e, 0x32, 0x4a, 0xff}

	// HighlightColor is the color of a selection highlight.
	HighlightColor = color.RGBA{0xff, 0xff, 0xff, 0xff}
)

// NewDevice returns a new device visual for the given device id:
// a group at pos (lifted by [DeviceLift]) carrying [Meta], with a body
// box of the given size and clr, and a smaller front panel.
// Both meshes are pickable and resolve to the group through [Node.Owner].
func NewDevice(id string, pos, size math32.Vector3, clr color.RGBA) *Node {
	gp := NewGroup(id)
	gp.Meta = &Meta{DeviceID: id}
	gp.Pose.Pos = math32.Vec3(pos.X, pos.Y+DeviceLift, pos.Z)

	body := gp.AddChild(NewBox(BodyName, size))
	body.Material.Color = clr

	panel := gp.AddChild(NewBox(PanelName, math32.Vec3(size.X*0.8, size.Y*0.3, size.Z*0.2)))
	panel.Pose.Pos = math32.Vec3(0, size.Y*0.5, size.Z*0.3)
	panel.Material.Color = PanelColor
	panel.Material.Opacity = 0.9
	return gp
}

// Body returns the primary mesh of the given device visual, or nil.
func Body(device *Node) *Node {
	return device.ChildByName(BodyName)
}

// NewHighlight returns a highlight for the given mesh: a copy of its box
// enlarged by [HighlightScale], rendered back side only, white and
// semi-transparent, at the same position. It is not pickable.
// It must be added to the parent of the mesh to coincide with it.
func NewHighlight(mesh *Node) *Node {
	hl := NewGroup(HighlightName)
	hl.Size = mesh.Size
	hl.Highlight = true
	hl.Pose.Pos = mesh.Pose.Pos
	hl.Pose.Scale = mesh.Pose.Scale.MulScalar(HighlightScale)
	hl.Material.Color = HighlightColor
	hl.Material.Opacity = 0.5
	hl.Material.CullFront = true
	return hl
}

// NewArea returns a floor slab for an area with the given id, center and
// extent. It is not pickable.
func NewArea(id string, center math32.Vector3, width, depth float32) *Node {
	sl := NewGroup(id)
	sl.Size = math32.Vec3(width, AreaHeight, depth)
	sl.Pose.Pos = center
	sl.Material.Color = AreaColor
	sl.Material.Opacity = 0.2
	return sl
}
