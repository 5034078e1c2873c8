// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viewer

import (
	"cogentcore.org/fleetview/devices"
	"cogentcore.org/fleetview/selection"
)

// Listener receives the outbound notifications of the viewer,
// used to drive a detail panel and a device table.
type Listener interface {
	selection.Listener

	// OnHover is called when the hovered device changes; id is "" for none.
	OnHover(id string)
}

// Funcs is a [Listener] made of optional functions.
type Funcs struct {
	Select   func(dev *devices.Device)
	Deselect func()
	Refresh  func(dev *devices.Device)
	Hover    func(id string)
}

func (fs *Funcs) OnSelect(dev *devices.Device) {
	if fs.Select != nil {
		fs.Select(dev)
	}
}

func (fs *Funcs) OnDeselect() {
	if fs.Deselect != nil {
		fs.Deselect()
	}
}

func (fs *Funcs) OnRefresh(dev *devices.Device) {
	if fs.Refresh != nil {
		fs.Refresh(dev)
	}
}

func (fs *Funcs) OnHover(id string) {
	if fs.Hover != nil {
		fs.Hover(id)
	}
}
