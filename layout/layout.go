// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package layout computes deterministic device placements inside
// the areas of the factory floor.
package layout

import (
	"fmt"

	"cogentcore.org/fleetview/base/errors"
	"cogentcore.org/fleetview/floor"
	"cogentcore.org/fleetview/math32"
)

// Margin is the distance kept between every cell and the area boundary.
const Margin float32 = 3

// ErrInvalidParameters is returned for a layout request that cannot be
// satisfied, including an area with no usable room for a non-zero count.
var ErrInvalidParameters = errors.New("invalid layout parameters")

// Grid returns count positions inside the given area, laid out row-major
// with the given number of columns, each centered in its cell.
// The number of rows is ceil(count / columns), and the usable extent of
// the area (its size minus [Margin] on every side) is divided evenly
// between the rows and columns. Y is always zero.
//
// Grid does not check that the cells are large enough for the devices
// placed in them; use [Fits] for that.
func Grid(area *floor.Area, count, columns int) ([]math32.Vector3, error) {
	if count < 0 || columns <= 0 {
		return nil, fmt.Errorf("layout.Grid: area %q, count %d, columns %d: %w", area.ID, count, columns, ErrInvalidParameters)
	}
	if count == 0 {
		return []math32.Vector3{}, nil
	}
	min, max := area.Bounds(Margin)
	width := max.X - min.X
	depth := max.Y - min.Y
	if width <= 0 || depth <= 0 {
		return nil, fmt.Errorf("layout.Grid: area %q has no usable room (%g x %g): %w", area.ID, width, depth, ErrInvalidParameters)
	}
	rows := Rows(count, columns)
	colSpacing := width / float32(columns)
	rowSpacing := depth / float32(rows)

	pos := make([]math32.Vector3, count)
	for i := range pos {
		col := i % columns
		row := i / columns
		pos[i] = math32.Vec3(
			min.X+float32(col)*colSpacing+colSpacing/2,
			0,
			min.Y+float32(row)*rowSpacing+rowSpacing/2)
	}
	return pos, nil
}

// Rows returns the number of rows used by [Grid] for count items in
// the given number of columns.
func Rows(count, columns int) int {
	if columns <= 0 {
		return 0
	}
	return (count + columns - 1) / columns
}

// Fits reports whether each cell of the grid that [Grid] would produce
// is strictly larger than the given footprint (X is the width, Z the depth).
// It returns false for parameters that Grid rejects.
func Fits(area *floor.Area, count, columns int, footprint math32.Vector3) bool {
	if count < 0 || columns <= 0 {
		return false
	}
	if count == 0 {
		return true
	}
	min, max := area.Bounds(Margin)
	colSpacing := (max.X - min.X) / float32(columns)
	rowSpacing := (max.Y - min.Y) / float32(Rows(count, columns))
	return colSpacing > footprint.X && rowSpacing > footprint.Z
}
