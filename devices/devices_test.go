// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package devices

import (
	"testing"

	"cogentcore.org/fleetview/base/randx"
	"cogentcore.org/fleetview/floor"
	"cogentcore.org/fleetview/math32"
	"cogentcore.org/fleetview/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog(t *testing.T) *floor.Catalog {
	ct, err := floor.NewCatalog(
		floor.Area{ID: "temperature", Name: "温度区", Center: math32.Vec3(-20, 0, 0), Width: 45, Depth: 60},
		floor.Area{ID: "durability1", Name: "耐久1区", Center: math32.Vec3(20, 0, 0), Width: 45, Depth: 60},
	)
	require.NoError(t, err)
	return ct
}

var testSpecs = []AreaSpec{
	{Area: "temperature", Type: TemperatureDevice, Prefix: "T", Name: "温度测试仪", Count: 17, Columns: 4,
		Splits: []Split{{Running, 15}}, Remainder: Offline},
	{Area: "durability1", Type: DurabilityDevice, Prefix: "D1", Name: "耐久测试仪", Count: 15, Columns: 5,
		Splits: []Split{{Running, 12}, {Waiting, 2}}, Remainder: Offline},
}

type recorder struct {
	changed []string
	removed []string
}

func (rc *recorder) StatusChanged(dv *Device, old Status) {
	rc.changed = append(rc.changed, dv.ID+":"+old.String()+">"+dv.Status.String())
}

func (rc *recorder) DeviceRemoved(id string) {
	rc.removed = append(rc.removed, id)
}

func TestEnums(t *testing.T) {
	assert.Equal(t, "ALARM", Alarm.String())
	assert.Equal(t, "报警", Alarm.Info().Name)
	assert.Equal(t, uint8(0xf4), Alarm.Color().R)
	var st Status
	assert.NoError(t, st.SetString("waiting"))
	assert.Equal(t, Waiting, st)
	assert.NoError(t, st.UnmarshalText([]byte("MAINTENANCE")))
	assert.Equal(t, Maintenance, st)
	assert.Error(t, st.SetString("BROKEN"))
	assert.Equal(t, "Status(9)", Status(9).String())

	var tp Type
	assert.NoError(t, tp.SetString("PERFORMANCE_DEVICE"))
	assert.Equal(t, PerformanceDevice, tp)
	assert.Equal(t, math32.Vec3(5, 3, 5), tp.Size())
	assert.Len(t, TypeValues(), int(TypeN))
	assert.Len(t, StatusValues(), int(StatusN))
}

func TestBuild(t *testing.T) {
	rg, err := Build(testCatalog(t), testSpecs, randx.NewSysRand(1))
	require.NoError(t, err)
	assert.Equal(t, 32, rg.Len())

	devs := rg.Devices()
	assert.Equal(t, "T001", devs[0].ID)
	assert.Equal(t, "T017", devs[16].ID)
	assert.Equal(t, "D1018", devs[17].ID)
	for i, dv := range devs[:17] {
		if i < 15 {
			assert.Equal(t, Running, dv.Status, dv.ID)
		} else {
			assert.Equal(t, Offline, dv.Status, dv.ID)
		}
		assert.True(t, dv.Position.X >= -41 && dv.Position.X <= 1)
		assert.True(t, dv.Position.Z >= -27 && dv.Position.Z <= 27)
		tm := dv.Telemetry
		assert.True(t, tm.Temperature >= 20 && tm.Temperature <= 60)
		assert.True(t, tm.EfficiencyPct >= 60 && tm.EfficiencyPct <= 100)
		assert.True(t, tm.PowerKW >= 0 && tm.PowerKW <= 10)
	}
	stats := rg.Statistics()
	assert.Equal(t, 27, stats[Running])
	assert.Equal(t, 2, stats[Waiting])
	assert.Equal(t, 3, stats[Offline])
	assert.Equal(t, 0, stats[Alarm])

	// same layout for the same inputs
	again, err := Build(testCatalog(t), testSpecs, randx.NewSysRand(2))
	require.NoError(t, err)
	for i, dv := range again.Devices() {
		assert.Equal(t, devs[i].Position, dv.Position)
	}

	_, err = Build(testCatalog(t), []AreaSpec{{Area: "nowhere", Count: 1, Columns: 1}}, nil)
	assert.Error(t, err)
	_, err = Build(testCatalog(t), []AreaSpec{{Area: "temperature", Count: 1, Columns: 0}}, nil)
	assert.Error(t, err)
}

func TestSetStatus(t *testing.T) {
	rg, err := Build(testCatalog(t), testSpecs, randx.NewSysRand(1))
	require.NoError(t, err)
	root := scene.NewGroup("scene")
	rg.Populate(root)
	rc := &recorder{}
	rg.AddObserver(rc)

	nd := rg.Handle("T001")
	require.NotNil(t, nd)
	id, ok := rg.DeviceOf(nd)
	assert.True(t, ok)
	assert.Equal(t, "T001", id)
	assert.Equal(t, Running.Color(), scene.Body(nd).Material.Color)

	require.NoError(t, rg.SetStatus("T001", Alarm))
	dv, err := rg.Get("T001")
	require.NoError(t, err)
	assert.Equal(t, Alarm, dv.Status)
	assert.Equal(t, Alarm.Color(), scene.Body(nd).Material.Color)
	assert.Equal(t, []string{"T001:RUNNING>ALARM"}, rc.changed)

	err = rg.SetStatus("X999", Alarm)
	assert.ErrorIs(t, err, ErrUnknownDevice)
	_, err = rg.Get("X999")
	assert.ErrorIs(t, err, ErrUnknownDevice)
	assert.Len(t, rc.changed, 1)
}

func TestRemove(t *testing.T) {
	rg, err := Build(testCatalog(t), testSpecs, nil)
	require.NoError(t, err)
	root := scene.NewGroup("scene")
	rg.Populate(root)
	rc := &recorder{}
	rg.AddObserver(rc)
	nd := rg.Handle("T002")

	require.NoError(t, rg.Remove("T002"))
	assert.Equal(t, []string{"T002"}, rc.removed)
	assert.Nil(t, rg.Handle("T002"))
	assert.Nil(t, nd.Parent)
	_, ok := rg.DeviceOf(nd)
	assert.False(t, ok)
	assert.Equal(t, 31, rg.Len())
	assert.Equal(t, 1, rg.Index("T003"))
	assert.ErrorIs(t, rg.Remove("T002"), ErrUnknownDevice)
}
