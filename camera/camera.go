// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package camera provides a perspective camera with view and
// projection transforms, pointer rays and point projection,
// and a controller for timed transitions between camera poses.
package camera

import (
	"fmt"
	"image"

	"cogentcore.org/fleetview/math32"
)

// Pose is the position of the camera and the point it looks at.
type Pose struct {
	Eye    math32.Vector3
	LookAt math32.Vector3
}

func (ps Pose) String() string {
	return fmt.Sprintf("eye %v look at %v", ps.Eye, ps.LookAt)
}

// Lerp returns the pose with eye and look-at point each linearly
// interpolated toward other by alpha.
func (ps Pose) Lerp(other Pose, alpha float32) Pose {
	return Pose{Eye: ps.Eye.Lerp(other.Eye, alpha), LookAt: ps.LookAt.Lerp(other.LookAt, alpha)}
}

// Camera defines the properties of a perspective camera.
// The live pose is written by [Transition] and read by picking
// and label projection, all on the tick thread.
type Camera struct {

	// Pose is the current eye position and look-at target.
	Pose Pose

	// UpDir is the up direction of the camera.
	UpDir math32.Vector3

	// FOV is the vertical field of view in degrees.
	FOV float32

	// Aspect is the aspect ratio (width/height).
	Aspect float32

	// Near is the near plane distance.
	Near float32

	// Far is the far plane distance.
	Far float32

	// Viewport is the size of the viewport in pixels.
	Viewport image.Point

	// ViewMatrix is the view matrix (world to camera).
	ViewMatrix math32.Matrix4

	// ProjectionMatrix is the perspective projection matrix.
	ProjectionMatrix math32.Matrix4

	// ViewProjection is ProjectionMatrix * ViewMatrix.
	ViewProjection math32.Matrix4
}

// NewCamera returns a new camera with default settings.
func NewCamera() *Camera {
	cm := &Camera{}
	cm.Defaults()
	return cm
}

// Defaults sets the default camera parameters: a 45 degree field of
// view on a 1280x720 viewport, looking at the origin from (0, 100, 100).
func (cm *Camera) Defaults() {
	cm.FOV = 45
	cm.Near = 1
	cm.Far = 2000
	cm.UpDir = math32.Vector3Y
	cm.Viewport = image.Pt(1280, 720)
	cm.Aspect = float32(cm.Viewport.X) / float32(cm.Viewport.Y)
	cm.Pose = Pose{Eye: math32.Vec3(0, 100, 100)}
	cm.UpdateMatrix()
}

// SetPose sets the camera pose and updates the matrices.
func (cm *Camera) SetPose(ps Pose) {
	cm.Pose = ps
	cm.UpdateMatrix()
}

// UpdateMatrix updates the view and projection matrices.
func (cm *Camera) UpdateMatrix() {
	cm.ViewMatrix.SetLookAt(cm.Pose.Eye, cm.Pose.LookAt, cm.UpDir)
	cm.ProjectionMatrix.SetPerspective(cm.FOV, cm.Aspect, cm.Near, cm.Far)
	cm.ViewProjection.MulMatrices(&cm.ProjectionMatrix, &cm.ViewMatrix)
}

// Resize sets the viewport size and the aspect ratio derived from it.
// Non-positive sizes are ignored.
func (cm *Camera) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	cm.Viewport = image.Pt(width, height)
	cm.Aspect = float32(width) / float32(height)
	cm.UpdateMatrix()
}

// ViewVector is the vector from the look-at target to the camera eye.
func (cm *Camera) ViewVector() math32.Vector3 {
	return cm.Pose.Eye.Sub(cm.Pose.LookAt)
}

// FocusPose returns a pose looking at target from the given distance,
// keeping the current viewing direction.
func (cm *Camera) FocusPose(target math32.Vector3, distance float32) Pose {
	dir := cm.ViewVector()
	if dir.IsNil() {
		dir = math32.Vec3(0, 0, 1)
	}
	return Pose{Eye: target.Add(dir.Normal().MulScalar(distance)), LookAt: target}
}

// Project returns the normalized device coordinates of the given
// world point. A Z value of 1 or more means the point is behind the
// camera or beyond the far plane.
func (cm *Camera) Project(pt math32.Vector3) math32.Vector3 {
	clip := math32.Vector4FromVector3(pt, 1).MulMatrix4(&cm.ViewProjection)
	if clip.W <= 0 {
		return math32.Vec3(clip.X, clip.Y, math32.Infinity)
	}
	return clip.PerspDiv()
}

// NDCToPixels converts normalized device coordinates to pixel
// coordinates in the viewport, with Y pointing down.
func (cm *Camera) NDCToPixels(ndc math32.Vector3) math32.Vector2 {
	return math32.Vec2((ndc.X*0.5+0.5)*float32(cm.Viewport.X), (-ndc.Y*0.5+0.5)*float32(cm.Viewport.Y))
}

// PixelsToNDC converts viewport pixel coordinates to normalized
// device coordinates in [-1, 1].
func (cm *Camera) PixelsToNDC(pix math32.Vector2) math32.Vector2 {
	return math32.Vec2(2*pix.X/float32(cm.Viewport.X)-1, 1-2*pix.Y/float32(cm.Viewport.Y))
}

// RayFromNDC returns the ray from the camera eye through the given
// normalized device coordinates. Ray parameters are distances from the eye.
func (cm *Camera) RayFromNDC(ndc math32.Vector2) *math32.Ray {
	ty := math32.Tan(math32.DegToRad(cm.FOV * 0.5))
	tx := ty * cm.Aspect
	// the rows of the view rotation are the camera axes in world space
	vm := &cm.ViewMatrix
	right := math32.Vec3(vm[0], vm[4], vm[8])
	up := math32.Vec3(vm[1], vm[5], vm[9])
	back := math32.Vec3(vm[2], vm[6], vm[10])
	dir := right.MulScalar(ndc.X * tx).Add(up.MulScalar(ndc.Y * ty)).Sub(back)
	return math32.NewRay(cm.Pose.Eye, dir)
}
