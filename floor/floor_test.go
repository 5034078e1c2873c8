// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package floor

import (
	"testing"

	"cogentcore.org/fleetview/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAreaBounds(t *testing.T) {
	ar := Area{ID: "temperature", Center: math32.Vec3(-20, 0, 0), Width: 45, Depth: 60}
	min, max := ar.Bounds(3)
	assert.Equal(t, math32.Vec2(-39.5, -27), min)
	assert.Equal(t, math32.Vec2(-0.5, 27), max)

	bb := ar.Box(1)
	assert.Equal(t, math32.Vec3(-42.5, -0.5, -30), bb.Min)
	assert.Equal(t, math32.Vec3(2.5, 0.5, 30), bb.Max)
}

func TestCatalog(t *testing.T) {
	ct, err := NewCatalog(
		Area{ID: "entrance", Name: "Entrance"},
		Area{ID: "temperature", Name: "Temperature"},
	)
	require.NoError(t, err)
	assert.Equal(t, 2, ct.Len())
	ar, ok := ct.Area("temperature")
	assert.True(t, ok)
	assert.Equal(t, "Temperature", ar.Name)
	_, ok = ct.Area("nope")
	assert.False(t, ok)
	assert.Equal(t, "entrance", ct.Areas()[0].ID)

	_, err = NewCatalog(Area{ID: "a"}, Area{ID: "a"})
	assert.Error(t, err)
	_, err = NewCatalog(Area{})
	assert.Error(t, err)
}
