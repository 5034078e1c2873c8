// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package feed hands work from other goroutines over to the tick
// goroutine: a queue drained once per frame, and a watcher that turns
// changes of a device status file into queued status updates.
package feed

import (
	"fmt"
	"sync"

	"cogentcore.org/fleetview/devices"
)

// Update is a status change for one device.
type Update struct {
	ID     string
	Status devices.Status
}

func (up Update) String() string {
	return fmt.Sprintf("%s=%s", up.ID, up.Status)
}

// Queue is a first-in first-out queue that is safe for concurrent
// pushes, drained as a whole by the consumer.
type Queue[T any] struct {
	mu    sync.Mutex
	items []T
}

// Push appends the given items.
func (q *Queue[T]) Push(items ...T) {
	q.mu.Lock()
	q.items = append(q.items, items...)
	q.mu.Unlock()
}

// Drain removes and returns all queued items in push order.
func (q *Queue[T]) Drain() []T {
	q.mu.Lock()
	defer q.mu.Unlock()
	items := q.items
	q.items = nil
	return items
}

// Len returns the number of queued items.
func (q *Queue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}
