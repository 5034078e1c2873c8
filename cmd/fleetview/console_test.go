// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"testing"

	"cogentcore.org/fleetview/base/randx"
	"cogentcore.org/fleetview/config"
	"cogentcore.org/fleetview/devices"
	"cogentcore.org/fleetview/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePixels(t *testing.T) {
	pix, err := parsePixels([]string{"640", "360.5"})
	require.NoError(t, err)
	assert.Equal(t, math32.Vec2(640, 360.5), pix)

	_, err = parsePixels([]string{"640"})
	assert.Error(t, err)
	_, err = parsePixels([]string{"x", "1"})
	assert.Error(t, err)
	_, err = parsePixels([]string{"1", "y"})
	assert.Error(t, err)
}

func TestSuggest(t *testing.T) {
	cfg := config.Default()
	ct, err := cfg.Catalog()
	require.NoError(t, err)
	rg, err := devices.Build(ct, cfg.Specs(), randx.NewSysRand(1))
	require.NoError(t, err)

	sg, ok := suggest(rg, "t001")
	assert.True(t, ok)
	assert.Equal(t, "T001", sg)

	sg, ok = suggest(rg, "P0700")
	assert.True(t, ok)
	assert.Equal(t, "P070", sg)

	_, ok = suggest(rg, "conveyor-belt")
	assert.False(t, ok)
}
