// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package selection tracks the single selected device, maintains its
// highlight visual, and notifies listeners of selection changes.
package selection

import (
	"fmt"
	"log/slog"

	"cogentcore.org/fleetview/base/errors"
	"cogentcore.org/fleetview/devices"
	"cogentcore.org/fleetview/scene"
)

// State is the state of the selection [Machine].
type State int32

const (
	// Idle is the state with no device selected.
	Idle State = iota

	// Selected is the state with one device selected.
	Selected
)

func (s State) String() string {
	if s == Selected {
		return "Selected"
	}
	return "Idle"
}

// Input is the kind of event applied to the [Machine], relative to
// the current selection.
type Input int32

const (
	// PickSame is a pick of the currently selected device.
	PickSame Input = iota

	// PickOther is a pick of a device that is not currently selected.
	PickOther

	// PickNone is a pick that hit no device.
	PickNone

	// Removed is the removal of the selected device from the registry.
	Removed
)

// Notify is the listener notification of a transition.
type Notify int32

const (
	NotifyNone Notify = iota
	NotifySelect
	NotifyDeselect
)

// Transition is one entry of the transition table.
type Transition struct {

	// Next is the state after the transition.
	Next State

	// Teardown removes the highlight of the current device.
	Teardown bool

	// Attach adds the highlight to the new device, after any teardown.
	Attach bool

	// Notify is the listener notification sent last.
	Notify Notify
}

// Transitions is the transition table of the [Machine].
// Inputs missing for a state leave the machine unchanged.
var Transitions = map[State]map[Input]Transition{
	Idle: {
		PickOther: {Next: Selected, Attach: true, Notify: NotifySelect},
		PickNone:  {Next: Idle},
	},
	Selected: {
		PickSame:  {Next: Selected},
		PickOther: {Next: Selected, Teardown: true, Attach: true, Notify: NotifySelect},
		PickNone:  {Next: Idle, Teardown: true, Notify: NotifyDeselect},
		Removed:   {Next: Idle, Teardown: true, Notify: NotifyDeselect},
	},
}

// Listener receives the notifications of the [Machine].
type Listener interface {

	// OnSelect is called when the given device becomes selected.
	OnSelect(dev *devices.Device)

	// OnDeselect is called when the selection is cleared.
	OnDeselect()

	// OnRefresh is called when the status of the selected device changes.
	OnRefresh(dev *devices.Device)
}

// Machine is the selection state machine. It holds at most one
// selected device and its highlight visual: the highlight is non-nil
// exactly when a device is selected.
// It is a [devices.Observer], to follow status changes and removals.
type Machine struct {

	// Registry provides the devices and their visuals.
	Registry *devices.Registry

	// Listeners are notified in order.
	Listeners []Listener

	state     State
	current   string
	highlight *scene.Node
}

// NewMachine returns a new idle machine that observes the registry.
func NewMachine(rg *devices.Registry) *Machine {
	sm := &Machine{Registry: rg}
	rg.AddObserver(sm)
	return sm
}

// AddListener adds a listener.
func (sm *Machine) AddListener(ls Listener) {
	sm.Listeners = append(sm.Listeners, ls)
}

// State returns the current state.
func (sm *Machine) State() State {
	return sm.state
}

// Current returns the selected device id, and false when idle.
func (sm *Machine) Current() (string, bool) {
	return sm.current, sm.state == Selected
}

// Highlight returns the highlight visual of the selected device, or nil.
func (sm *Machine) Highlight() *scene.Node {
	return sm.highlight
}

// Pick applies a pick result: the device id when ok, or no device.
// An id that is not in the registry returns [devices.ErrUnknownDevice]
// and leaves the selection unchanged.
func (sm *Machine) Pick(id string, ok bool) error {
	if !ok {
		return sm.apply(PickNone, "")
	}
	if _, err := sm.Registry.Get(id); err != nil {
		return err
	}
	if sm.state == Selected && id == sm.current {
		return sm.apply(PickSame, id)
	}
	return sm.apply(PickOther, id)
}

// Clear deselects any selected device.
func (sm *Machine) Clear() error {
	return sm.apply(PickNone, "")
}

func (sm *Machine) apply(in Input, id string) error {
	tr, ok := Transitions[sm.state][in]
	if !ok {
		return nil
	}
	var body *scene.Node
	if tr.Attach {
		if nd := sm.Registry.Handle(id); nd != nil {
			body = scene.Body(nd)
		}
		if body == nil {
			return fmt.Errorf("selection: device %q has no visual", id)
		}
	}
	if tr.Teardown && sm.highlight != nil {
		sm.highlight.Delete()
		sm.highlight = nil
		sm.current = ""
	}
	if tr.Attach {
		sm.highlight = body.Parent.AddChild(scene.NewHighlight(body))
		sm.current = id
	}
	sm.state = tr.Next
	if sm.state == Idle {
		sm.current = ""
	}
	slog.Debug("selection", "state", sm.state, "device", sm.current)

	switch tr.Notify {
	case NotifySelect:
		dv, err := sm.Registry.Get(id)
		if err != nil {
			return err
		}
		for _, ls := range sm.Listeners {
			ls.OnSelect(dv)
		}
	case NotifyDeselect:
		for _, ls := range sm.Listeners {
			ls.OnDeselect()
		}
	}
	return nil
}

// StatusChanged refreshes the listeners when the selected device changes.
func (sm *Machine) StatusChanged(dv *devices.Device, old devices.Status) {
	if sm.state != Selected || dv.ID != sm.current {
		return
	}
	for _, ls := range sm.Listeners {
		ls.OnRefresh(dv)
	}
}

// DeviceRemoved forces deselection when the selected device is removed.
func (sm *Machine) DeviceRemoved(id string) {
	if sm.state != Selected || id != sm.current {
		return
	}
	errors.Log(sm.apply(Removed, id))
}
