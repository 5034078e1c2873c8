// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package devices

import (
	"fmt"
	"log/slog"

	"cogentcore.org/fleetview/base/errors"
	"cogentcore.org/fleetview/base/ordmap"
	"cogentcore.org/fleetview/base/randx"
	"cogentcore.org/fleetview/floor"
	"cogentcore.org/fleetview/layout"
	"cogentcore.org/fleetview/scene"
)

// ErrUnknownDevice is returned for a device id that is not in the registry.
var ErrUnknownDevice = errors.New("unknown device")

// Observer is notified synchronously of changes to the registry.
type Observer interface {

	// StatusChanged is called after the status of dev changed from old.
	StatusChanged(dev *Device, old Status)

	// DeviceRemoved is called after the device with the given id
	// was removed from the registry.
	DeviceRemoved(id string)
}

// Registry owns the device records in creation order, and the two
// one-directional maps between device ids and their scene visuals.
type Registry struct {
	devices   ordmap.Map[string, *Device]
	handles   map[string]*scene.Node
	owners    map[*scene.Node]string
	observers []Observer
}

// NewRegistry returns a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		handles: make(map[string]*scene.Node),
		owners:  make(map[*scene.Node]string),
	}
}

// Build generates the devices for each area spec in order, laying them
// out with [layout.Grid]. Ids are the [AreaSpec] prefix followed by a single
// counter over all areas, zero-padded to three digits. Statuses come
// from its splits, and telemetry is drawn from rnd (the global
// source if nil).
func Build(catalog *floor.Catalog, specs []AreaSpec, rnd randx.Rand) (*Registry, error) {
	rg := NewRegistry()
	counter := 0
	for si := range specs {
		spec := &specs[si]
		area, ok := catalog.Area(spec.Area)
		if !ok {
			return nil, fmt.Errorf("devices.Build: spec %d: unknown area %q", si, spec.Area)
		}
		pos, err := layout.Grid(area, spec.Count, spec.Columns)
		if err != nil {
			return nil, fmt.Errorf("devices.Build: %w", err)
		}
		if !layout.Fits(area, spec.Count, spec.Columns, spec.Type.Size()) {
			slog.Warn("devices.Build: device cells are smaller than the device footprint", "area", spec.Area, "count", spec.Count, "columns", spec.Columns)
		}
		for i, p := range pos {
			counter++
			dv := &Device{
				ID:        fmt.Sprintf("%s%03d", spec.Prefix, counter),
				Name:      spec.Name,
				Type:      spec.Type,
				Status:    spec.StatusAt(i),
				Area:      spec.Area,
				Position:  p,
				Telemetry: NewTelemetry(rnd),
			}
			if err := rg.Add(dv); err != nil {
				return nil, fmt.Errorf("devices.Build: %w", err)
			}
		}
	}
	slog.Debug("devices.Build", "areas", len(specs), "devices", rg.Len())
	return rg, nil
}

// NewTelemetry returns simulated telemetry drawn from rnd.
func NewTelemetry(rnd randx.Rand) Telemetry {
	return Telemetry{
		Temperature:   randx.UniformRound(20, 40, 1, rnd),
		RunningHours:  randx.UniformRound(0, 10000, 1, rnd),
		PowerKW:       randx.UniformRound(0, 10, 0.1, rnd),
		EfficiencyPct: randx.UniformRound(60, 40, 1, rnd),
	}
}

// Add adds the given device, returning an error if its id is empty
// or already present.
func (rg *Registry) Add(dv *Device) error {
	if dv.ID == "" {
		return errors.New("device has no id")
	}
	if _, has := rg.devices.ValueByKeyTry(dv.ID); has {
		return fmt.Errorf("duplicate device id %q", dv.ID)
	}
	rg.devices.Add(dv.ID, dv)
	return nil
}

// Get returns the device with the given id, or [ErrUnknownDevice].
func (rg *Registry) Get(id string) (*Device, error) {
	dv, ok := rg.devices.ValueByKeyTry(id)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDevice, id)
	}
	return dv, nil
}

// Devices returns all devices in creation order.
func (rg *Registry) Devices() []*Device {
	return rg.devices.Values()
}

// Len returns the number of devices.
func (rg *Registry) Len() int {
	return rg.devices.Len()
}

// Index returns the creation-order index of the device, or -1.
func (rg *Registry) Index(id string) int {
	return rg.devices.IndexByKey(id)
}

// AddObserver registers an observer of status changes and removals.
func (rg *Registry) AddObserver(ob Observer) {
	rg.observers = append(rg.observers, ob)
}

// SetStatus sets the status of the given device and notifies the
// observers in registration order. It returns [ErrUnknownDevice]
// if there is no such device.
func (rg *Registry) SetStatus(id string, st Status) error {
	dv, err := rg.Get(id)
	if err != nil {
		return err
	}
	if !st.IsValid() {
		return fmt.Errorf("devices.SetStatus: %q: invalid status %d", id, int32(st))
	}
	old := dv.Status
	dv.Status = st
	for _, ob := range rg.observers {
		ob.StatusChanged(dv, old)
	}
	return nil
}

// Remove removes the given device and its visual from the scene,
// and notifies the observers.
func (rg *Registry) Remove(id string) error {
	if !rg.devices.DeleteKey(id) {
		return fmt.Errorf("%w: %q", ErrUnknownDevice, id)
	}
	if nd, ok := rg.handles[id]; ok {
		delete(rg.handles, id)
		delete(rg.owners, nd)
		nd.Delete()
	}
	for _, ob := range rg.observers {
		ob.DeviceRemoved(id)
	}
	return nil
}

// Attach associates the given scene node as the visual of the device.
func (rg *Registry) Attach(id string, nd *scene.Node) error {
	if _, err := rg.Get(id); err != nil {
		return err
	}
	if old, ok := rg.handles[id]; ok {
		delete(rg.owners, old)
	}
	rg.handles[id] = nd
	rg.owners[nd] = id
	return nil
}

// Handle returns the scene visual of the device, or nil.
func (rg *Registry) Handle(id string) *scene.Node {
	return rg.handles[id]
}

// DeviceOf returns the id of the device whose visual is nd.
func (rg *Registry) DeviceOf(nd *scene.Node) (string, bool) {
	id, ok := rg.owners[nd]
	return id, ok
}

// Statistics returns the number of devices in each status.
func (rg *Registry) Statistics() map[Status]int {
	stats := make(map[Status]int, StatusN)
	for _, st := range StatusValues() {
		stats[st] = 0
	}
	for _, dv := range rg.Devices() {
		stats[dv.Status]++
	}
	return stats
}
