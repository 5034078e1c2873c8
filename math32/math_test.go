// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"cogentcore.org/fleetview/base/tolassert"
	"github.com/stretchr/testify/assert"
)

const StandardTol = float32(1.0e-4)

func TolAssertEqualVector(t *testing.T, tol float32, vt, va Vector3) {
	t.Helper()
	tolassert.EqualTol(t, vt.X, va.X, tol)
	tolassert.EqualTol(t, vt.Y, va.Y, tol)
	tolassert.EqualTol(t, vt.Z, va.Z, tol)
}

func TestVector3(t *testing.T) {
	a := Vec3(1, 2, 3)
	b := Vec3(4, 6, 8)
	assert.Equal(t, Vec3(5, 8, 11), a.Add(b))
	assert.Equal(t, Vec3(3, 4, 5), b.Sub(a))
	assert.Equal(t, float32(5), Vec3(3, 4, 0).Length())
	assert.Equal(t, Vec3(0, 0, 1), Vec3(1, 0, 0).Cross(Vec3(0, 1, 0)))
	assert.Equal(t, Vector3{}, Vector3{}.Normal())
	assert.Equal(t, a, a.Lerp(b, 0))
	assert.Equal(t, b, a.Lerp(b, 1))
	TolAssertEqualVector(t, StandardTol, Vec3(2.5, 4, 5.5), a.Lerp(b, 0.5))
}

func TestMatrix4Inverse(t *testing.T) {
	var m Matrix4
	m.SetScaleTranslate(Vec3(2, 3, 4), Vec3(-5, 1, 7))
	p := Vec3(1, 1, 1)
	tp := p.MulMatrix4(&m)
	assert.Equal(t, Vec3(-3, 4, 11), tp)
	TolAssertEqualVector(t, StandardTol, p, tp.MulMatrix4(m.Inverse()))

	var sing Matrix4
	assert.Equal(t, Identity4(), sing.Inverse())
}

func TestLookAtPerspective(t *testing.T) {
	var view, proj, vp Matrix4
	eye := Vec3(0, 100, 100)
	view.SetLookAt(eye, Vector3Zero, Vector3Y)
	proj.SetPerspective(45, 1.5, 1, 2000)
	vp.MulMatrices(&proj, &view)

	// the target is in the middle of the screen
	ndc := Vector3Zero.MulMatrix4(&vp)
	tolassert.EqualTol(t, 0, ndc.X, StandardTol)
	tolassert.EqualTol(t, 0, ndc.Y, StandardTol)
	assert.Less(t, ndc.Z, float32(1))

	// the eye itself maps to the origin of view space
	TolAssertEqualVector(t, StandardTol, Vector3Zero, eye.MulMatrix4(&view))

	// a point behind the camera ends up beyond the far plane in NDC
	behind := eye.Add(eye.Normal().MulScalar(10))
	assert.GreaterOrEqual(t, behind.MulMatrix4(&vp).Z, float32(1))

	// looking straight down still gives an invertible view
	view.SetLookAt(Vec3(0, 10, 0), Vector3Zero, Vector3Y)
	assert.NotEqual(t, float32(0), view.Determinant())
}

func TestRayIntersectBox(t *testing.T) {
	box := B3(-1, -1, -1, 1, 1, 1)
	ray := NewRay(Vec3(0, 0, 10), Vec3(0, 0, -5))
	d, ok := ray.IntersectBox(box)
	assert.True(t, ok)
	tolassert.EqualTol(t, 9, d, StandardTol)
	TolAssertEqualVector(t, StandardTol, Vec3(0, 0, 1), ray.At(d))

	// inside the box: exit distance
	inside := NewRay(Vector3Zero, Vec3(1, 0, 0))
	d, ok = inside.IntersectBox(box)
	assert.True(t, ok)
	tolassert.EqualTol(t, 1, d, StandardTol)

	// pointing away
	away := NewRay(Vec3(0, 0, 10), Vec3(0, 0, 1))
	_, ok = away.IntersectBox(box)
	assert.False(t, ok)

	// passing beside
	miss := NewRay(Vec3(3, 0, 10), Vec3(0, 0, -1))
	_, ok = miss.IntersectBox(box)
	assert.False(t, ok)

	_, ok = ray.IntersectBox(B3Empty())
	assert.False(t, ok)
}

func TestBox3MulMatrix4(t *testing.T) {
	var m Matrix4
	m.SetScaleTranslate(Vector3Scalar(1.1), Vec3(10, 2, -4))
	bb := B3FromCenterSize(Vector3Zero, Vec3(5, 3, 5)).MulMatrix4(&m)
	TolAssertEqualVector(t, StandardTol, Vec3(10, 2, -4), bb.Center())
	TolAssertEqualVector(t, StandardTol, Vec3(5.5, 3.3, 5.5), bb.Size())
	assert.True(t, bb.ContainsPoint(Vec3(10, 2, -4)))
	assert.False(t, bb.ContainsPoint(Vector3Zero))
}
