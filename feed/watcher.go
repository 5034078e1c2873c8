// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package feed

import (
	"fmt"
	"log/slog"
	"maps"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"cogentcore.org/fleetview/config"
	"cogentcore.org/fleetview/devices"
	"github.com/fsnotify/fsnotify"
)

// Watcher watches a status file, mapping device ids to status keys in
// TOML or YAML, and pushes an [Update] for every entry that differs
// from the previous read of the file.
type Watcher struct {

	// Path is the status file.
	Path string

	// Queue receives the updates.
	Queue *Queue[Update]

	// LastLoad is the time of the last successful read.
	LastLoad time.Time

	mu      sync.Mutex
	last    map[string]devices.Status
	watcher *fsnotify.Watcher
	done    chan bool
}

// NewWatcher returns a new watcher of the given file, pushing to q.
// The directory of the file is watched, so that files replaced by
// editors are followed.
func NewWatcher(path string, q *Queue[Update]) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	path = filepath.Clean(path)
	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("feed.NewWatcher: %w", err)
	}
	return &Watcher{Path: path, Queue: q, watcher: fw}, nil
}

// Load reads the file and pushes the changed entries in id order.
func (w *Watcher) Load() error {
	var raw map[string]string
	if err := config.Load(w.Path, &raw); err != nil {
		return err
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	next := make(map[string]devices.Status, len(raw))
	var ups []Update
	for _, id := range slices.Sorted(maps.Keys(raw)) {
		var st devices.Status
		if err := st.SetString(raw[id]); err != nil {
			slog.Warn("feed: skipping status entry", "file", w.Path, "device", id, "err", err)
			continue
		}
		next[id] = st
		if old, ok := w.last[id]; !ok || old != st {
			ups = append(ups, Update{ID: id, Status: st})
		}
	}
	w.last = next
	w.LastLoad = time.Now()
	if len(ups) > 0 {
		slog.Info("feed: status file changed", "file", w.Path, "updates", len(ups))
		w.Queue.Push(ups...)
	}
	return nil
}

// Start monitors the watcher events in a separate goroutine until
// [Watcher.Close]. It is safe to call multiple times.
func (w *Watcher) Start() {
	if w.done != nil {
		return
	}
	w.done = make(chan bool)
	go func() {
		watch := w.watcher
		done := w.done
		for {
			select {
			case <-done:
				return
			case event, ok := <-watch.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != w.Path {
					continue
				}
				if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
					if err := w.Load(); err != nil {
						slog.Error("feed: reading status file", "file", w.Path, "err", err)
					}
				}
			case err, ok := <-watch.Errors:
				if !ok {
					return
				}
				slog.Error("feed: watcher", "err", err)
			}
		}
	}()
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	if w.done != nil {
		close(w.done)
		w.done = nil
	}
	return w.watcher.Close()
}
