// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package camera

import (
	"log/slog"
	"time"

	"cogentcore.org/fleetview/math32"
)

// FocusDuration is the duration of a transition that focuses on a device.
const FocusDuration = 1000 * time.Millisecond

// EaseInOutCubic is the symmetric cubic ease-in-out curve on [0, 1]:
// 4t^3 for t < 0.5, and 1 - (-2t+2)^3 / 2 otherwise.
func EaseInOutCubic(t float32) float32 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := -2*t + 2
	return 1 - u*u*u/2
}

// Transition animates the pose of a camera toward a target over a
// fixed duration. There is at most one active transition: [Transition.MoveTo]
// replaces any in-flight one, starting from the current camera pose.
type Transition struct {

	// Camera is the camera whose pose is animated.
	Camera *Camera

	// From is the pose at the start of the transition.
	From Pose

	// To is the target pose.
	To Pose

	// Start is the time of the first step of the transition.
	Start time.Time

	// Duration is the duration of the transition.
	Duration time.Duration

	active  bool
	pending bool
}

// NewTransition returns a new idle transition controller for the camera.
func NewTransition(cm *Camera) *Transition {
	return &Transition{Camera: cm}
}

// MoveTo starts a transition from the current camera pose to the given
// pose over the given duration, discarding any transition in flight.
// The start time is taken from the next call to [Transition.Step].
// A duration <= 0 completes on that step.
func (tr *Transition) MoveTo(to Pose, duration time.Duration) {
	if tr.active {
		slog.Debug("camera.Transition: superseded", "from", tr.From, "to", tr.To)
	}
	tr.From = tr.Camera.Pose
	tr.To = to
	tr.Duration = duration
	tr.active = true
	tr.pending = true
}

// Active returns true if a transition is in progress.
func (tr *Transition) Active() bool {
	return tr.active
}

// Progress returns the normalized time of the transition at now, in [0, 1].
func (tr *Transition) Progress(now time.Time) float32 {
	if !tr.active || tr.Duration <= 0 {
		return 1
	}
	if tr.pending {
		return 0
	}
	return math32.Clamp(float32(now.Sub(tr.Start).Seconds()/tr.Duration.Seconds()), 0, 1)
}

// Step advances the transition to the given time and writes the eased
// pose to the camera. On reaching the end, the target pose is written
// exactly and the transition becomes idle. It returns false, without
// changing the camera, when no transition is active.
func (tr *Transition) Step(now time.Time) bool {
	if !tr.active {
		return false
	}
	if tr.pending {
		tr.Start = now
		tr.pending = false
	}
	p := tr.Progress(now)
	if p >= 1 {
		tr.Camera.SetPose(tr.To)
		tr.active = false
		return true
	}
	tr.Camera.SetPose(tr.From.Lerp(tr.To, EaseInOutCubic(p)))
	return true
}
