// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package selection

import (
	"bytes"
	"log/slog"
	"testing"

	"cogentcore.org/fleetview/devices"
	"cogentcore.org/fleetview/math32"
	"cogentcore.org/fleetview/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	events []string
}

func (rc *recorder) OnSelect(dv *devices.Device) { rc.events = append(rc.events, "select "+dv.ID) }
func (rc *recorder) OnDeselect()                 { rc.events = append(rc.events, "deselect") }
func (rc *recorder) OnRefresh(dv *devices.Device) {
	rc.events = append(rc.events, "refresh "+dv.ID+" "+dv.Status.String())
}

func testMachine(t *testing.T) (*Machine, *scene.Node, *recorder) {
	rg := devices.NewRegistry()
	for i, id := range []string{"A", "B", "C"} {
		require.NoError(t, rg.Add(&devices.Device{ID: id, Position: math32.Vec3(float32(i*10), 0, 0)}))
	}
	root := scene.NewGroup("scene")
	rg.Populate(root)
	sm := NewMachine(rg)
	rc := &recorder{}
	sm.AddListener(rc)
	return sm, root, rc
}

func TestSelectSwitch(t *testing.T) {
	sm, root, rc := testMachine(t)
	assert.Equal(t, Idle, sm.State())
	assert.Nil(t, sm.Highlight())

	require.NoError(t, sm.Pick("A", true))
	id, ok := sm.Current()
	assert.True(t, ok)
	assert.Equal(t, "A", id)
	assert.Equal(t, 1, scene.CountHighlights(root))
	assert.Equal(t, sm.Registry.Handle("A"), sm.Highlight().Parent)

	require.NoError(t, sm.Pick("B", true))
	assert.Equal(t, 1, scene.CountHighlights(root))
	assert.Equal(t, 0, scene.CountHighlights(sm.Registry.Handle("A")))
	assert.Equal(t, sm.Registry.Handle("B"), sm.Highlight().Parent)
	assert.Equal(t, []string{"select A", "select B"}, rc.events)
}

func TestSelectSame(t *testing.T) {
	sm, root, rc := testMachine(t)
	require.NoError(t, sm.Pick("A", true))
	hl := sm.Highlight()
	require.NoError(t, sm.Pick("A", true))
	assert.Same(t, hl, sm.Highlight())
	assert.Equal(t, 1, scene.CountHighlights(root))
	assert.Equal(t, []string{"select A"}, rc.events)
}

func TestDeselect(t *testing.T) {
	sm, root, rc := testMachine(t)
	require.NoError(t, sm.Pick("", false))
	assert.Empty(t, rc.events)

	require.NoError(t, sm.Pick("C", true))
	require.NoError(t, sm.Pick("", false))
	assert.Equal(t, Idle, sm.State())
	assert.Nil(t, sm.Highlight())
	_, ok := sm.Current()
	assert.False(t, ok)
	assert.Equal(t, 0, scene.CountHighlights(root))
	assert.Equal(t, []string{"select C", "deselect"}, rc.events)
}

func TestUnknownDevice(t *testing.T) {
	sm, root, rc := testMachine(t)
	require.NoError(t, sm.Pick("A", true))
	err := sm.Pick("Z", true)
	assert.ErrorIs(t, err, devices.ErrUnknownDevice)
	id, _ := sm.Current()
	assert.Equal(t, "A", id)
	assert.Equal(t, 1, scene.CountHighlights(root))
	assert.Len(t, rc.events, 1)
}

func TestRemoved(t *testing.T) {
	sm, root, rc := testMachine(t)
	require.NoError(t, sm.Pick("B", true))
	require.NoError(t, sm.Registry.Remove("A"))
	assert.Equal(t, Selected, sm.State())

	var logs bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&logs, nil)))
	defer slog.SetDefault(prev)
	require.NoError(t, sm.Registry.Remove("B"))
	assert.Empty(t, logs.String())
	assert.Equal(t, Idle, sm.State())
	assert.Nil(t, sm.Highlight())
	assert.Equal(t, 0, scene.CountHighlights(root))
	assert.Equal(t, []string{"select B", "deselect"}, rc.events)
}

func TestStatusRefresh(t *testing.T) {
	sm, root, rc := testMachine(t)
	require.NoError(t, sm.Registry.SetStatus("A", devices.Alarm))
	assert.Empty(t, rc.events)

	require.NoError(t, sm.Pick("A", true))
	require.NoError(t, sm.Registry.SetStatus("A", devices.Alarm))
	require.NoError(t, sm.Registry.SetStatus("B", devices.Waiting))
	assert.Equal(t, []string{"select A", "refresh A ALARM"}, rc.events)
	assert.Equal(t, devices.Alarm.Color(), scene.Body(sm.Registry.Handle("A")).Material.Color)
	assert.Equal(t, 1, scene.CountHighlights(root))
}

func TestTransitionTable(t *testing.T) {
	for st, row := range Transitions {
		for in, tr := range row {
			assert.Equal(t, tr.Attach, tr.Next == Selected && (in == PickOther), "%v %v", st, in)
			if st == Idle {
				assert.False(t, tr.Teardown)
			}
			if tr.Next == Idle && st == Selected {
				assert.True(t, tr.Teardown)
			}
		}
	}
}
