// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package devices

import (
	"cogentcore.org/fleetview/base/errors"
	"cogentcore.org/fleetview/scene"
)

// Populate adds a visual for every device under root and attaches it,
// and registers a [Painter] that keeps the body colors in sync
// with the device statuses.
func (rg *Registry) Populate(root *scene.Node) {
	for _, dv := range rg.Devices() {
		nd := root.AddChild(scene.NewDevice(dv.ID, dv.Position, dv.Type.Size(), dv.Status.Color()))
		errors.Log(rg.Attach(dv.ID, nd))
	}
	rg.AddObserver(&Painter{Registry: rg})
}

// Painter is an [Observer] that applies the status color to the body
// material of the visual of a device, without rebuilding the scene.
type Painter struct {
	Registry *Registry
}

func (pt *Painter) StatusChanged(dv *Device, old Status) {
	nd := pt.Registry.Handle(dv.ID)
	if nd == nil {
		return
	}
	if body := scene.Body(nd); body != nil {
		body.Material.Color = dv.Status.Color()
	}
}

func (pt *Painter) DeviceRemoved(id string) {}
