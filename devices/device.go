// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package devices owns the device records of the factory floor,
// the mapping between devices and their scene visuals,
// and the notification of status changes.
package devices

import (
	"fmt"

	"cogentcore.org/fleetview/math32"
)

// Telemetry is the simulated measurement data of a device.
type Telemetry struct {

	// Temperature in degrees Celsius.
	Temperature float64

	// RunningHours is the total running time in hours.
	RunningHours float64

	// PowerKW is the power consumption in kW.
	PowerKW float64

	// EfficiencyPct is the efficiency in percent.
	EfficiencyPct float64
}

// Device is a single monitored unit. Status is the only field
// that changes after creation, through [Registry.SetStatus].
type Device struct {

	// ID is the unique id, e.g. "T001".
	ID string

	// Name is the display name.
	Name string

	// Type is the device type.
	Type Type

	// Status is the current operating status.
	Status Status

	// Area is the id of the area that hosts the device.
	Area string

	// Position is the floor position of the device.
	Position math32.Vector3

	// Telemetry is the measurement data.
	Telemetry Telemetry
}

func (dv *Device) String() string {
	return fmt.Sprintf("%s %s [%s] in %s at %v", dv.ID, dv.Name, dv.Status, dv.Area, dv.Position)
}

// Split assigns a status to a run of consecutive devices in an area.
type Split struct {
	Status Status
	Count  int
}

// AreaSpec describes the devices to generate in one area.
type AreaSpec struct {

	// Area is the id of the area in the catalog.
	Area string

	// Type is the type of all devices in the area.
	Type Type

	// Prefix is prepended to the zero-padded device number to form the id.
	Prefix string

	// Name is the display name of all devices in the area.
	Name string

	// Count is the number of devices.
	Count int

	// Columns is the number of layout columns.
	Columns int

	// Splits assign statuses by index: the first Splits[0].Count devices
	// get Splits[0].Status, and so on.
	Splits []Split

	// Remainder is the status of the devices not covered by Splits.
	Remainder Status
}

// StatusAt returns the status of the device at the given index in the area.
func (as *AreaSpec) StatusAt(i int) Status {
	for _, sp := range as.Splits {
		if i < sp.Count {
			return sp.Status
		}
		i -= sp.Count
	}
	return as.Remainder
}
