// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package frame drives the per-frame tick: an ordered list of named
// stages that are all invoked once per tick, on a single goroutine.
package frame

import (
	"context"
	"log/slog"
	"time"

	"cogentcore.org/fleetview/base/ordmap"
)

// DefaultInterval is the default interval between ticks of [Scheduler.Run].
const DefaultInterval = time.Second / 60

// Stage is a function called once per tick with the tick time.
type Stage func(now time.Time)

// Scheduler invokes its stages in order on every tick.
type Scheduler struct {

	// Frames is the number of ticks so far.
	Frames int

	// Last is the time of the last tick.
	Last time.Time

	stages ordmap.Map[string, Stage]
}

// NewScheduler returns a new scheduler with no stages.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Add adds a stage with the given name at the end of the order.
// Adding an existing name replaces that stage in place.
func (sc *Scheduler) Add(name string, st Stage) {
	sc.stages.Add(name, st)
}

// Remove removes the stage with the given name, returning false if
// there is none.
func (sc *Scheduler) Remove(name string) bool {
	return sc.stages.DeleteKey(name)
}

// Stages returns the names of the stages in order.
func (sc *Scheduler) Stages() []string {
	return sc.stages.Keys()
}

// Tick runs one frame: all stages in order with the given time.
func (sc *Scheduler) Tick(now time.Time) {
	sc.Frames++
	sc.Last = now
	for _, kv := range sc.stages.Order {
		kv.Value(now)
	}
}

// Run calls [Scheduler.Tick] at the given interval ([DefaultInterval]
// if <= 0) until the context is done, and returns the context error.
func (sc *Scheduler) Run(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		interval = DefaultInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	slog.Debug("frame.Run: started", "interval", interval, "stages", sc.Stages())
	for {
		select {
		case <-ctx.Done():
			slog.Debug("frame.Run: stopped", "frames", sc.Frames)
			return ctx.Err()
		case now := <-ticker.C:
			sc.Tick(now)
		}
	}
}
