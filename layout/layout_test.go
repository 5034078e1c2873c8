// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import (
	"testing"

	"cogentcore.org/fleetview/base/randx"
	"cogentcore.org/fleetview/floor"
	"cogentcore.org/fleetview/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var temperature = floor.Area{ID: "temperature", Center: math32.Vec3(-20, 0, 0), Width: 45, Depth: 60}

func TestGridTemperature(t *testing.T) {
	pos, err := Grid(&temperature, 17, 4)
	require.NoError(t, err)
	assert.Len(t, pos, 17)
	assert.Equal(t, 5, Rows(17, 4))

	for _, p := range pos {
		assert.GreaterOrEqual(t, p.X, float32(-41))
		assert.LessOrEqual(t, p.X, float32(1))
		assert.GreaterOrEqual(t, p.Z, float32(-27))
		assert.LessOrEqual(t, p.Z, float32(27))
		assert.Equal(t, float32(0), p.Y)
	}
	// first cell: -39.5 + 9.75/2, -27 + 10.8/2
	assert.InDelta(t, -34.625, pos[0].X, 1e-4)
	assert.InDelta(t, -21.6, pos[0].Z, 1e-4)
	// second row starts at column 0 again
	assert.Equal(t, pos[0].X, pos[4].X)
	assert.Greater(t, pos[4].Z, pos[0].Z)
	assert.True(t, Fits(&temperature, 17, 4, math32.Vec3(5, 3, 5)))
}

func TestGridProperties(t *testing.T) {
	rnd := randx.NewSysRand(42)
	for range 200 {
		ar := floor.Area{
			ID:     "a",
			Center: math32.Vec3(float32(rnd.Float64()*200-100), 0, float32(rnd.Float64()*200-100)),
			Width:  float32(7 + rnd.Float64()*60),
			Depth:  float32(7 + rnd.Float64()*60),
		}
		count := rnd.Intn(40)
		columns := 1 + rnd.Intn(8)
		pos, err := Grid(&ar, count, columns)
		require.NoError(t, err)
		assert.Len(t, pos, count)

		min, max := ar.Bounds(Margin)
		seen := map[math32.Vector3]bool{}
		for _, p := range pos {
			assert.True(t, p.X > min.X && p.X < max.X, "x %g outside (%g, %g)", p.X, min.X, max.X)
			assert.True(t, p.Z > min.Y && p.Z < max.Y, "z %g outside (%g, %g)", p.Z, min.Y, max.Y)
			assert.False(t, seen[p], "duplicate position %v", p)
			seen[p] = true
		}

		again, err := Grid(&ar, count, columns)
		require.NoError(t, err)
		assert.Equal(t, pos, again)
	}
}

func TestGridErrors(t *testing.T) {
	pos, err := Grid(&temperature, 0, 4)
	assert.NoError(t, err)
	assert.Empty(t, pos)

	_, err = Grid(&temperature, 5, 0)
	assert.ErrorIs(t, err, ErrInvalidParameters)
	_, err = Grid(&temperature, -1, 4)
	assert.ErrorIs(t, err, ErrInvalidParameters)
	_, err = Grid(&temperature, 0, -2)
	assert.ErrorIs(t, err, ErrInvalidParameters)

	flat := floor.Area{ID: "flat", Width: 0, Depth: 30}
	pos, err = Grid(&flat, 0, 2)
	assert.NoError(t, err)
	assert.Empty(t, pos)
	_, err = Grid(&flat, 3, 2)
	assert.ErrorIs(t, err, ErrInvalidParameters)

	tight := floor.Area{ID: "tight", Width: 20, Depth: 20}
	assert.False(t, Fits(&tight, 9, 3, math32.Vec3(5, 3, 5)))
	assert.False(t, Fits(&tight, 1, 0, math32.Vec3(5, 3, 5)))
}
