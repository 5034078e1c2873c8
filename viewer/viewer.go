// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package viewer assembles the factory floor viewer: the scene, the
// device registry, picking, selection, the camera transitions and the
// area labels, driven by one frame tick. All methods must be called
// from the goroutine that calls [Viewer.Tick]; other goroutines hand
// over work through [Viewer.Post] and [Viewer.Updates].
package viewer

import (
	"fmt"
	"log/slog"
	"time"

	"cogentcore.org/fleetview/base/errors"
	"cogentcore.org/fleetview/base/randx"
	"cogentcore.org/fleetview/camera"
	"cogentcore.org/fleetview/config"
	"cogentcore.org/fleetview/devices"
	"cogentcore.org/fleetview/feed"
	"cogentcore.org/fleetview/floor"
	"cogentcore.org/fleetview/frame"
	"cogentcore.org/fleetview/labels"
	"cogentcore.org/fleetview/math32"
	"cogentcore.org/fleetview/picking"
	"cogentcore.org/fleetview/scene"
	"cogentcore.org/fleetview/selection"
)

// FocusDistance is the distance of the camera from a device focused
// by [Viewer.SelectDeviceByID].
const FocusDistance float32 = 50

// Names of the frame stages, in tick order.
const (
	StageDrain   = "drain"
	StageCamera  = "camera"
	StageLabels  = "labels"
	StageDecor   = "decorations"
	decorPrefix  = StageDecor + "/"
	areasGroup   = "areas"
	devicesGroup = "devices"
)

// Viewer is the factory floor viewer.
type Viewer struct {

	// Config is a copy of the configuration the viewer was built from.
	Config *config.Config

	// Catalog is the area catalog.
	Catalog *floor.Catalog

	// Registry owns the devices.
	Registry *devices.Registry

	// Root is the root of the scene.
	Root *scene.Node

	// Camera is the live camera.
	Camera *camera.Camera

	// Transition animates the camera.
	Transition *camera.Transition

	// Picker resolves pointer positions to devices.
	Picker *picking.Picker

	// Selection is the selection state machine.
	Selection *selection.Machine

	// Labels places the area labels.
	Labels *labels.Projector

	// Scheduler runs the frame stages.
	Scheduler *frame.Scheduler

	// Updates receives status updates from other goroutines,
	// applied at the start of the next tick.
	Updates *feed.Queue[feed.Update]

	// SavedCameras are named camera poses.
	SavedCameras map[string]camera.Pose

	posted    feed.Queue[func()]
	listeners []Listener
}

// New returns a new viewer built from the given configuration.
// Everything is validated and built before it returns, so an error
// leaves nothing partially initialized.
func New(cfg *config.Config) (*Viewer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	ct, err := cfg.Catalog()
	if err != nil {
		return nil, fmt.Errorf("viewer.New: %w", err)
	}
	var rnd randx.Rand
	if cfg.Seed != 0 {
		rnd = randx.NewSysRand(cfg.Seed)
	}
	rg, err := devices.Build(ct, cfg.Specs(), rnd)
	if err != nil {
		return nil, fmt.Errorf("viewer.New: %w", err)
	}

	vw := &Viewer{
		Config:       cfg.Clone(),
		Catalog:      ct,
		Registry:     rg,
		Root:         scene.NewGroup("scene"),
		Camera:       camera.NewCamera(),
		Scheduler:    frame.NewScheduler(),
		Updates:      &feed.Queue[feed.Update]{},
		SavedCameras: map[string]camera.Pose{},
	}
	areas := vw.Root.AddChild(scene.NewGroup(areasGroup))
	for _, ar := range ct.Areas() {
		areas.AddChild(scene.NewArea(ar.ID, ar.Center, ar.Width, ar.Depth))
	}
	rg.Populate(vw.Root.AddChild(scene.NewGroup(devicesGroup)))

	cfg.ApplyCamera(vw.Camera)
	vw.SavedCameras["default"] = vw.Camera.Pose
	vw.Transition = camera.NewTransition(vw.Camera)
	vw.Picker = picking.NewPicker(vw.Camera, rg)
	vw.Selection = selection.NewMachine(rg)
	vw.Labels = labels.NewProjector(vw.Camera, ct)

	vw.Scheduler.Add(StageDrain, vw.drain)
	vw.Scheduler.Add(StageCamera, func(now time.Time) { vw.Transition.Step(now) })
	vw.Scheduler.Add(StageLabels, func(now time.Time) { vw.Labels.Update() })
	vw.Labels.Update()
	slog.Info("viewer: ready", "areas", ct.Len(), "devices", rg.Len())
	return vw, nil
}

// AddListener adds a listener of selection and hover notifications.
func (vw *Viewer) AddListener(ls Listener) {
	vw.listeners = append(vw.listeners, ls)
	vw.Selection.AddListener(ls)
}

// AddDecoration adds a named decoration hook, called on every tick
// after the camera and labels are updated.
func (vw *Viewer) AddDecoration(name string, st frame.Stage) {
	vw.Scheduler.Add(decorPrefix+name, st)
}

// Tick runs one frame at the given time.
func (vw *Viewer) Tick(now time.Time) {
	vw.Scheduler.Tick(now)
}

// Post queues a function to be run at the start of the next tick.
// It is safe to call from any goroutine.
func (vw *Viewer) Post(fun func()) {
	vw.posted.Push(fun)
}

// drain applies the queued status updates and posted functions.
func (vw *Viewer) drain(now time.Time) {
	for _, up := range vw.Updates.Drain() {
		vw.SetStatus(up.ID, up.Status)
	}
	for _, fun := range vw.posted.Drain() {
		fun()
	}
}

// PointerDown selects the device under the pointer, given in
// normalized device coordinates, or deselects if there is none.
func (vw *Viewer) PointerDown(x, y float32) error {
	id, ok := vw.Picker.Pick(math32.Vec2(x, y))
	return errors.Log(vw.Selection.Pick(id, ok))
}

// PointerMove updates the hover state for the pointer, given in
// normalized device coordinates, and returns the hovered device id.
// Listeners are notified when it changes. Selection is not affected.
func (vw *Viewer) PointerMove(x, y float32) string {
	id, changed := vw.Picker.Probe(math32.Vec2(x, y))
	if changed {
		for _, ls := range vw.listeners {
			ls.OnHover(id)
		}
	}
	return id
}

// Cursor returns the cursor affordance of the current hover state.
func (vw *Viewer) Cursor() picking.Cursor {
	return vw.Picker.Cursor()
}

// SelectDeviceByID moves the camera to look at the device from
// [FocusDistance] along the current viewing direction, over
// [camera.FocusDuration], and selects it as a pointer pick would.
func (vw *Viewer) SelectDeviceByID(id string) error {
	if _, err := vw.Registry.Get(id); err != nil {
		return errors.Log(err)
	}
	nd := vw.Registry.Handle(id)
	if nd == nil {
		return errors.Log(fmt.Errorf("viewer: device %q has no visual", id))
	}
	vw.Transition.MoveTo(vw.Camera.FocusPose(nd.WorldPos(), FocusDistance), camera.FocusDuration)
	return errors.Log(vw.Selection.Pick(id, true))
}

// SetStatus sets the status of a device: its color is updated and,
// if it is selected, the listeners are refreshed.
func (vw *Viewer) SetStatus(id string, st devices.Status) error {
	return errors.Log(vw.Registry.SetStatus(id, st))
}

// Resize sets the viewport size in pixels. Labels follow on the next tick.
func (vw *Viewer) Resize(width, height int) {
	vw.Camera.Resize(width, height)
}

// SaveCamera saves the current camera pose under the given name.
func (vw *Viewer) SaveCamera(name string) {
	vw.SavedCameras[name] = vw.Camera.Pose
}

// RestoreCamera moves the camera to the saved pose with the given name
// over the given duration.
func (vw *Viewer) RestoreCamera(name string, duration time.Duration) error {
	ps, ok := vw.SavedCameras[name]
	if !ok {
		return fmt.Errorf("viewer: no saved camera named %q", name)
	}
	vw.Transition.MoveTo(ps, duration)
	return nil
}

// Selected returns the selected device, or nil.
func (vw *Viewer) Selected() *devices.Device {
	id, ok := vw.Selection.Current()
	if !ok {
		return nil
	}
	return errors.Log1(vw.Registry.Get(id))
}
