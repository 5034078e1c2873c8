// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package devices

import (
	"fmt"
	"image/color"

	"cogentcore.org/fleetview/math32"
)

// Status is the operating status of a device.
type Status int32

const (
	Running Status = iota
	Waiting
	Offline
	Maintenance
	Alarm
	Stopped
)

// StatusN is the number of [Status] values.
const StatusN Status = 6

// StatusInfo is the presentation lookup data for a [Status].
type StatusInfo struct {

	// Key is the canonical upper-case key, as used in config and status files.
	Key string

	// Name is the display name.
	Name string

	// Code is the lower-case css-style code.
	Code string

	// Color is the material color of a device with this status.
	Color color.RGBA
}

var statusInfo = [StatusN]StatusInfo{
	{"RUNNING", "运行", "running", hexColor(0x4caf50)},
	{"WAITING", "待机", "waiting", hexColor(0xffc107)},
	{"OFFLINE", "掉线", "offline", hexColor(0x9c27b0)},
	{"MAINTENANCE", "维修", "maintenance", hexColor(0x2196f3)},
	{"ALARM", "报警", "alarm", hexColor(0xf44336)},
	{"STOPPED", "停机", "stopped", hexColor(0x9e9e9e)},
}

func hexColor(h uint32) color.RGBA {
	return color.RGBA{uint8(h >> 16), uint8(h >> 8), uint8(h), 0xff}
}

// StatusValues returns all possible values for the type Status.
func StatusValues() []Status {
	return []Status{Running, Waiting, Offline, Maintenance, Alarm, Stopped}
}

// IsValid returns whether the value is a valid option for type Status.
func (s Status) IsValid() bool {
	return s >= 0 && s < StatusN
}

// Info returns the lookup data of the status; invalid values
// return the data of [Offline].
func (s Status) Info() StatusInfo {
	if !s.IsValid() {
		return statusInfo[Offline]
	}
	return statusInfo[s]
}

// String returns the string representation of this Status value.
func (s Status) String() string {
	if !s.IsValid() {
		return fmt.Sprintf("Status(%d)", int32(s))
	}
	return statusInfo[s].Key
}

// Color returns the material color for the status.
func (s Status) Color() color.RGBA {
	return s.Info().Color
}

// SetString sets the Status value from its string representation,
// accepting either the key ("ALARM") or the code ("alarm"),
// and returns an error if the string is invalid.
func (s *Status) SetString(str string) error {
	for i, si := range statusInfo {
		if str == si.Key || str == si.Code {
			*s = Status(i)
			return nil
		}
	}
	return fmt.Errorf("%q is not a valid value for type Status", str)
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (s *Status) UnmarshalText(text []byte) error {
	return s.SetString(string(text))
}

// Type is the kind of test device.
type Type int32

const (
	TemperatureDevice Type = iota
	DurabilityDevice
	PerformanceDevice
)

// TypeN is the number of [Type] values.
const TypeN Type = 3

var typeInfo = [TypeN]struct {
	key, name string
}{
	{"TEMPERATURE_DEVICE", "温度测试设备"},
	{"DURABILITY_DEVICE", "耐久测试设备"},
	{"PERFORMANCE_DEVICE", "性能测试设备"},
}

// TypeValues returns all possible values for the type Type.
func TypeValues() []Type {
	return []Type{TemperatureDevice, DurabilityDevice, PerformanceDevice}
}

// IsValid returns whether the value is a valid option for type Type.
func (t Type) IsValid() bool {
	return t >= 0 && t < TypeN
}

// String returns the string representation of this Type value.
func (t Type) String() string {
	if !t.IsValid() {
		return fmt.Sprintf("Type(%d)", int32(t))
	}
	return typeInfo[t].key
}

// Name returns the display name of the device type.
func (t Type) Name() string {
	if !t.IsValid() {
		return t.String()
	}
	return typeInfo[t].name
}

// Size returns the footprint of the device type: width, height and depth.
// All current types share the same cube footprint.
func (t Type) Size() math32.Vector3 {
	return math32.Vec3(5, 3, 5)
}

// SetString sets the Type value from its string representation,
// and returns an error if the string is invalid.
func (t *Type) SetString(str string) error {
	for i, ti := range typeInfo {
		if str == ti.key {
			*t = Type(i)
			return nil
		}
	}
	return fmt.Errorf("%q is not a valid value for type Type", str)
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (t *Type) UnmarshalText(text []byte) error {
	return t.SetString(string(text))
}
