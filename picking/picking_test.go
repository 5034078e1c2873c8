// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package picking

import (
	"image/color"
	"testing"

	"cogentcore.org/fleetview/base/tolassert"
	"cogentcore.org/fleetview/camera"
	"cogentcore.org/fleetview/devices"
	"cogentcore.org/fleetview/math32"
	"cogentcore.org/fleetview/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cube = math32.Vec3(2, 2, 2)

// testScene is a picker looking down -Z from z = 30 at the origin,
// with the scene that holds the device visuals.
type testScene struct {
	*Picker
	Root *scene.Node
}

func testPicker(t *testing.T) *testScene {
	cm := camera.NewCamera()
	cm.SetPose(camera.Pose{Eye: math32.Vec3(0, 0, 30)})
	return &testScene{Picker: NewPicker(cm, devices.NewRegistry()), Root: scene.NewGroup("scene")}
}

// visualAt returns a device visual whose body is centered at center.
func visualAt(id string, center math32.Vector3) *scene.Node {
	return scene.NewDevice(id, center.Sub(math32.Vec3(0, scene.DeviceLift, 0)), cube, color.RGBA{})
}

// addDevice adds a device whose body is centered at center.
func addDevice(t *testing.T, pk *testScene, id string, center math32.Vector3) *scene.Node {
	require.NoError(t, pk.Registry.Add(&devices.Device{ID: id}))
	nd := pk.Root.AddChild(visualAt(id, center))
	require.NoError(t, pk.Registry.Attach(id, nd))
	return nd
}

func TestPickNearest(t *testing.T) {
	pk := testPicker(t)
	addDevice(t, pk, "far", math32.Vec3(0, 0, 14))
	addDevice(t, pk, "near", math32.Vec3(0, 0, 19))

	hits := pk.Hits(pk.Camera.RayFromNDC(math32.Vec2(0, 0)))
	require.Len(t, hits, 2)
	tolassert.EqualTol(t, 10, hits[0].Distance, 1e-3)
	tolassert.EqualTol(t, 15, hits[1].Distance, 1e-3)
	assert.Equal(t, "far", hits[1].DeviceID)

	id, ok := pk.Pick(math32.Vec2(0, 0))
	assert.True(t, ok)
	assert.Equal(t, "near", id)

	// idempotent on a static scene
	for range 5 {
		again, ok := pk.Pick(math32.Vec2(0, 0))
		assert.True(t, ok)
		assert.Equal(t, id, again)
	}

	_, ok = pk.Pick(math32.Vec2(0.9, 0.9))
	assert.False(t, ok)
}

func TestPickComposite(t *testing.T) {
	pk := testPicker(t)
	nd := addDevice(t, pk, "T001", math32.Vec3(0, 0, 0))
	panel := nd.ChildByName(scene.PanelName)
	// aim at the part of the panel that sticks out above the body
	ndc := pk.Camera.Project(math32.Vec3(0, 1.2, 0.6))
	hits := pk.Hits(pk.Camera.RayFromNDC(math32.Vec2(ndc.X, ndc.Y)))
	require.NotEmpty(t, hits)
	assert.Equal(t, panel, hits[0].Node)
	assert.Equal(t, "T001", hits[0].DeviceID)

	id, ok := pk.Pick(math32.Vec2(ndc.X, ndc.Y))
	assert.True(t, ok)
	assert.Equal(t, "T001", id)
}

func TestPickTies(t *testing.T) {
	pk := testPicker(t)
	require.NoError(t, pk.Registry.Add(&devices.Device{ID: "first"}))
	require.NoError(t, pk.Registry.Add(&devices.Device{ID: "second"}))
	pos := math32.Vec3(0, -scene.DeviceLift, 0)
	// scene order differs from registry order
	second := pk.Root.AddChild(scene.NewDevice("second", pos, cube, color.RGBA{}))
	first := pk.Root.AddChild(scene.NewDevice("first", pos, cube, color.RGBA{}))
	require.NoError(t, pk.Registry.Attach("first", first))
	require.NoError(t, pk.Registry.Attach("second", second))

	id, ok := pk.Pick(math32.Vec2(0, 0))
	assert.True(t, ok)
	assert.Equal(t, "first", id)
}

func TestPickIgnoresOtherMeshes(t *testing.T) {
	pk := testPicker(t)
	addDevice(t, pk, "T001", math32.Vec3(0, 0, 0))
	wall := scene.NewBox("wall", math32.Vec3(10, 10, 1))
	wall.Pose.Pos = math32.Vec3(0, 0, 10)
	pk.Root.AddChild(wall)

	// the wall is between the eye and the device
	id, ok := pk.Pick(math32.Vec2(0, 0))
	assert.True(t, ok)
	assert.Equal(t, "T001", id)
	hits := pk.Hits(pk.Camera.RayFromNDC(math32.Vec2(0, 0)))
	require.Len(t, hits, 1)
	assert.Equal(t, "T001", hits[0].DeviceID)

	// so is a visual of a device that is not in the registry
	pk.Root.AddChild(visualAt("ghost", math32.Vec3(0, 0, 5)))
	id, ok = pk.Pick(math32.Vec2(0, 0))
	assert.True(t, ok)
	assert.Equal(t, "T001", id)

	// nothing but the wall under the pointer
	_, ok = pk.Pick(math32.Vec2(0.2, 0.2))
	assert.False(t, ok)
}

func TestPickStaleVisual(t *testing.T) {
	pk := testPicker(t)
	old := addDevice(t, pk, "T001", math32.Vec3(0, 0, 10))
	addDevice(t, pk, "T002", math32.Vec3(0, 0, 0))

	// T001 gets a new visual off to the side; the old one stays in the scene
	require.NoError(t, pk.Registry.Attach("T001", pk.Root.AddChild(visualAt("T001", math32.Vec3(20, 0, 0)))))
	require.NotNil(t, old.Parent)
	id, ok := pk.Pick(math32.Vec2(0, 0))
	assert.True(t, ok)
	assert.Equal(t, "T002", id)

	// a visual whose metadata names another device does not resolve
	require.NoError(t, pk.Registry.Attach("T002", pk.Root.AddChild(visualAt("T001", math32.Vec3(0, 0, 0)))))
	_, ok = pk.Pick(math32.Vec2(0, 0))
	assert.False(t, ok)
}

func TestHighlightNotPickable(t *testing.T) {
	pk := testPicker(t)
	nd := addDevice(t, pk, "T001", math32.Vec3(0, 0, 0))
	nd.AddChild(scene.NewHighlight(scene.Body(nd)))
	hits := pk.Hits(pk.Camera.RayFromNDC(math32.Vec2(0, 0)))
	require.Len(t, hits, 1)
	assert.Equal(t, scene.BodyName, hits[0].Node.Name)
}

func TestProbe(t *testing.T) {
	pk := testPicker(t)
	addDevice(t, pk, "T001", math32.Vec3(0, 0, 0))
	assert.Equal(t, CursorDefault, pk.Cursor())

	id, changed := pk.Probe(math32.Vec2(0, 0))
	assert.Equal(t, "T001", id)
	assert.True(t, changed)
	assert.Equal(t, CursorPointer, pk.Cursor())

	_, changed = pk.Probe(math32.Vec2(0, 0))
	assert.False(t, changed)

	id, changed = pk.Probe(math32.Vec2(0.9, -0.9))
	assert.Equal(t, "", id)
	assert.True(t, changed)
	assert.Equal(t, CursorDefault, pk.Cursor())
}
