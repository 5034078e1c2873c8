// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package floor defines the areas of the factory floor: named
// rectangular regions on the XZ plane that each host the devices
// of one category.
package floor

import (
	"fmt"

	"cogentcore.org/fleetview/base/ordmap"
	"cogentcore.org/fleetview/math32"
)

// Area is a named rectangular region of the factory floor.
// It is immutable after load.
type Area struct {

	// ID is the unique identifier of the area, e.g. "temperature".
	ID string

	// Name is the display name shown on the area label.
	Name string

	// Center is the centroid of the area; Y is the floor height.
	Center math32.Vector3

	// Width is the extent of the area along X.
	Width float32

	// Depth is the extent of the area along Z.
	Depth float32
}

// Bounds returns the min and max corners of the area on the XZ plane
// (as X, Y = X, Z) after moving each edge inward by margin.
func (ar *Area) Bounds(margin float32) (min, max math32.Vector2) {
	hw := ar.Width / 2
	hd := ar.Depth / 2
	min = math32.Vec2(ar.Center.X-hw+margin, ar.Center.Z-hd+margin)
	max = math32.Vec2(ar.Center.X+hw-margin, ar.Center.Z+hd-margin)
	return
}

// Box returns the 3D bounding box of the area slab with the given height,
// centered vertically on the area center.
func (ar *Area) Box(height float32) math32.Box3 {
	return math32.B3FromCenterSize(ar.Center, math32.Vec3(ar.Width, height, ar.Depth))
}

// Catalog is the static, ordered set of areas, keyed by id.
type Catalog struct {
	areas ordmap.Map[string, *Area]
}

// NewCatalog returns a new catalog holding the given areas, in order.
// It returns an error for an empty or duplicate id.
func NewCatalog(areas ...Area) (*Catalog, error) {
	ct := &Catalog{}
	for i := range areas {
		ar := areas[i]
		if ar.ID == "" {
			return nil, fmt.Errorf("floor.NewCatalog: area %d has no id", i)
		}
		if _, has := ct.areas.ValueByKeyTry(ar.ID); has {
			return nil, fmt.Errorf("floor.NewCatalog: duplicate area id %q", ar.ID)
		}
		ct.areas.Add(ar.ID, &ar)
	}
	return ct, nil
}

// Area returns the area with the given id, and false if there is none.
func (ct *Catalog) Area(id string) (*Area, bool) {
	return ct.areas.ValueByKeyTry(id)
}

// Areas returns all areas in catalog order.
func (ct *Catalog) Areas() []*Area {
	return ct.areas.Values()
}

// Len returns the number of areas.
func (ct *Catalog) Len() int {
	return ct.areas.Len()
}
