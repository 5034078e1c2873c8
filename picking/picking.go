// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package picking resolves pointer positions to devices by casting
// camera rays against the pickable meshes of the device visuals.
package picking

import (
	"cmp"
	"slices"

	"cogentcore.org/fleetview/camera"
	"cogentcore.org/fleetview/devices"
	"cogentcore.org/fleetview/math32"
	"cogentcore.org/fleetview/scene"
)

// Cursor is the pointer affordance hint for the current hover state.
type Cursor int32

const (
	// CursorDefault is the normal arrow cursor.
	CursorDefault Cursor = iota

	// CursorPointer indicates that a click would select a device.
	CursorPointer
)

func (c Cursor) String() string {
	if c == CursorPointer {
		return "pointer"
	}
	return "default"
}

// Hit is an intersection of a ray with a pickable mesh of a device.
type Hit struct {

	// Node is the mesh that was hit.
	Node *scene.Node

	// Distance is the ray parameter of the hit: the distance from the eye.
	Distance float32

	// DeviceID is the id of the device owning the mesh.
	DeviceID string

	// order is the registry index of the owning device.
	order int
}

// Picker casts rays from the camera through pointer positions.
type Picker struct {

	// Camera provides the ray origin and direction.
	Camera *camera.Camera

	// Registry provides the device visuals tested against the ray,
	// and gives the tie-breaking order.
	Registry *devices.Registry

	// Hovered is the device under the pointer as of the last [Picker.Probe].
	Hovered string
}

// NewPicker returns a new picker.
func NewPicker(cm *camera.Camera, rg *devices.Registry) *Picker {
	return &Picker{Camera: cm, Registry: rg}
}

// Hits returns all intersections of the ray with the pickable meshes of
// the device visuals, sorted by distance. Equal distances are ordered
// by the registry order of the owning devices. Other scene nodes never
// take part, so they cannot occlude a device.
func (pk *Picker) Hits(ray *math32.Ray) []Hit {
	var hits []Hit
	for i, dv := range pk.Registry.Devices() {
		nd := pk.visual(dv.ID)
		if nd == nil {
			continue
		}
		nd.WalkDown(func(n *scene.Node) bool {
			if !n.Pickable || !n.IsMesh() || n.Owner() != nd {
				return scene.Continue
			}
			if d, ok := ray.IntersectBox(n.WorldBBox()); ok {
				hits = append(hits, Hit{Node: n, Distance: d, DeviceID: dv.ID, order: i})
			}
			return scene.Continue
		})
	}
	slices.SortStableFunc(hits, func(a, b Hit) int {
		if c := cmp.Compare(a.Distance, b.Distance); c != 0 {
			return c
		}
		return cmp.Compare(a.order, b.order)
	})
	return hits
}

// visual returns the attached visual of the device, or nil if there is
// none or its metadata and the registry disagree on the device.
func (pk *Picker) visual(id string) *scene.Node {
	nd := pk.Registry.Handle(id)
	if nd == nil || nd.Meta == nil || nd.Meta.DeviceID != id {
		return nil
	}
	if owner, ok := pk.Registry.DeviceOf(nd); !ok || owner != id {
		return nil
	}
	return nd
}

// Pick returns the id of the device nearest to the camera under the
// given pointer position in normalized device coordinates, and false
// if there is none.
func (pk *Picker) Pick(ndc math32.Vector2) (string, bool) {
	hits := pk.Hits(pk.Camera.RayFromNDC(ndc))
	if len(hits) == 0 {
		return "", false
	}
	return hits[0].DeviceID, true
}

// Probe performs the same resolution as [Picker.Pick] and records the
// result as the hovered device. It returns the hovered id, and whether
// it changed since the last probe.
func (pk *Picker) Probe(ndc math32.Vector2) (id string, changed bool) {
	id, _ = pk.Pick(ndc)
	changed = id != pk.Hovered
	pk.Hovered = id
	return
}

// Cursor returns the cursor affordance for the current hover state.
func (pk *Picker) Cursor() Cursor {
	if pk.Hovered != "" {
		return CursorPointer
	}
	return CursorDefault
}
