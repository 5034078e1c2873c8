// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Ray represents an oriented 3D line segment defined by an origin point
// and a direction vector, which is kept normalized so that ray
// parameters are distances from the origin.
type Ray struct {
	Origin Vector3
	Dir    Vector3
}

// NewRay creates and returns a pointer to a Ray object with
// the specified origin and direction vectors.
// The direction is normalized.
func NewRay(origin, dir Vector3) *Ray {
	return &Ray{Origin: origin, Dir: dir.Normal()}
}

// At returns the point along the ray at distance t from the origin.
func (ray *Ray) At(t float32) Vector3 {
	return ray.Origin.Add(ray.Dir.MulScalar(t))
}

// IntersectBox returns the ray parameter of the first intersection of
// this ray with the specified box, using the slab method. If the origin
// is inside the box, the exit parameter is returned. The second return
// value is false if there is no intersection in front of the origin.
func (ray *Ray) IntersectBox(box Box3) (float32, bool) {
	if box.IsEmpty() {
		return 0, false
	}
	var tmin, tmax, tymin, tymax, tzmin, tzmax float32

	invdirx := 1 / ray.Dir.X
	invdiry := 1 / ray.Dir.Y
	invdirz := 1 / ray.Dir.Z

	origin := ray.Origin
	if invdirx >= 0 {
		tmin = (box.Min.X - origin.X) * invdirx
		tmax = (box.Max.X - origin.X) * invdirx
	} else {
		tmin = (box.Max.X - origin.X) * invdirx
		tmax = (box.Min.X - origin.X) * invdirx
	}

	if invdiry >= 0 {
		tymin = (box.Min.Y - origin.Y) * invdiry
		tymax = (box.Max.Y - origin.Y) * invdiry
	} else {
		tymin = (box.Max.Y - origin.Y) * invdiry
		tymax = (box.Min.Y - origin.Y) * invdiry
	}

	if (tmin > tymax) || (tymin > tmax) {
		return 0, false
	}

	// a NaN bound (0 * Inf, origin on a slab plane) is replaced by the next slab
	if tymin > tmin || IsNaN(tmin) {
		tmin = tymin
	}
	if tymax < tmax || IsNaN(tmax) {
		tmax = tymax
	}

	if invdirz >= 0 {
		tzmin = (box.Min.Z - origin.Z) * invdirz
		tzmax = (box.Max.Z - origin.Z) * invdirz
	} else {
		tzmin = (box.Max.Z - origin.Z) * invdirz
		tzmax = (box.Min.Z - origin.Z) * invdirz
	}

	if (tmin > tzmax) || (tzmin > tmax) {
		return 0, false
	}
	if tzmin > tmin || IsNaN(tmin) {
		tmin = tzmin
	}
	if tzmax < tmax || IsNaN(tmax) {
		tmax = tzmax
	}

	// the box is behind the ray
	if tmax < 0 {
		return 0, false
	}
	if tmin >= 0 {
		return tmin, true
	}
	return tmax, true
}
