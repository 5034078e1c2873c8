// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"cogentcore.org/fleetview/base/errors"
	"cogentcore.org/fleetview/camera"
	"cogentcore.org/fleetview/devices"
	"cogentcore.org/fleetview/math32"
	"cogentcore.org/fleetview/viewer"
	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
	"github.com/chzyer/readline"
	"github.com/mattn/go-shellwords"
)

// Console is the interactive command loop. Commands are executed on
// the frame goroutine through [viewer.Viewer.Post], and the console
// waits for each one to finish before reading the next line.
type Console struct {
	Viewer *viewer.Viewer

	ctx context.Context
	rl  *readline.Instance
}

// NewConsole returns a new console for the given viewer, printing the
// viewer notifications as they happen.
func NewConsole(ctx context.Context, vw *viewer.Viewer) (*Console, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "fleetview> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		AutoComplete: readline.NewPrefixCompleter(
			readline.PcItem("help"),
			readline.PcItem("list"),
			readline.PcItem("show"),
			readline.PcItem("pick"),
			readline.PcItem("hover"),
			readline.PcItem("select"),
			readline.PcItem("status"),
			readline.PcItem("resize"),
			readline.PcItem("labels"),
			readline.PcItem("stats"),
			readline.PcItem("camera", readline.PcItem("save"), readline.PcItem("restore")),
			readline.PcItem("quit"),
		),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}
	cs := &Console{Viewer: vw, ctx: ctx, rl: rl}
	vw.AddListener(&viewer.Funcs{
		Select: func(dv *devices.Device) {
			fmt.Fprintln(cs.Stdout(), "selected:", dv)
		},
		Deselect: func() {
			fmt.Fprintln(cs.Stdout(), "deselected")
		},
		Refresh: func(dv *devices.Device) {
			fmt.Fprintln(cs.Stdout(), "updated:", dv)
		},
		Hover: func(id string) {
			if id == "" {
				id = "(none)"
			}
			fmt.Fprintln(cs.Stdout(), "hover:", id)
		},
	})
	return cs, nil
}

// Stdout returns a writer that coordinates with the prompt.
func (cs *Console) Stdout() io.Writer {
	return cs.rl.Stdout()
}

// Stderr returns a writer that coordinates with the prompt.
func (cs *Console) Stderr() io.Writer {
	return cs.rl.Stderr()
}

// Run reads and executes commands until the input ends, a quit
// command is given, or the context is done; cancel is then called.
func (cs *Console) Run(cancel context.CancelFunc) {
	defer cs.rl.Close()
	defer cancel()

	cs.printHelp()
	for {
		select {
		case <-cs.ctx.Done():
			return
		default:
		}

		line, err := cs.rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			return
		}
		parts, err := shellwords.Parse(line)
		if err != nil {
			cs.errorf("%v", err)
			continue
		}
		if len(parts) == 0 {
			continue
		}
		cmd := strings.ToLower(parts[0])
		args := parts[1:]

		switch cmd {
		case "help", "?":
			cs.printHelp()
		case "list", "ls":
			cs.cmdList(args)
		case "show":
			cs.cmdShow(args)
		case "pick", "p":
			cs.cmdPointer(args, true)
		case "hover", "h":
			cs.cmdPointer(args, false)
		case "select", "sel":
			cs.cmdSelect(args)
		case "status", "st":
			cs.cmdStatus(args)
		case "resize":
			cs.cmdResize(args)
		case "labels":
			cs.cmdLabels()
		case "stats":
			cs.cmdStats()
		case "camera", "cam":
			cs.cmdCamera(args)
		case "quit", "exit", "q":
			return
		default:
			fmt.Fprintf(cs.Stdout(), "Unknown command: %s (type 'help' for commands)\n", cmd)
		}
	}
}

func (cs *Console) printHelp() {
	fmt.Fprintln(cs.Stdout(), `
fleetview commands:
  list [area]               - List devices, optionally in one area
  show [id]                 - Show a device, or the selected one
  pick <x> <y>              - Click at viewport pixel x, y
  hover <x> <y>             - Move the pointer to viewport pixel x, y
  select <id>               - Focus the camera on a device and select it
  status <id> <status>      - Set a device status (RUNNING, WAITING, ...)
  resize <w> <h>            - Resize the viewport
  labels                    - Show the area label placements
  stats                     - Show the number of devices per status
  camera                    - Show the camera pose
  camera save <name>        - Save the camera pose
  camera restore <name> [d] - Move to a saved pose over duration d
  quit                      - Exit`)
}

// do runs fun on the frame goroutine and waits for it.
func (cs *Console) do(fun func()) {
	done := make(chan struct{})
	cs.Viewer.Post(func() {
		defer close(done)
		fun()
	})
	select {
	case <-done:
	case <-cs.ctx.Done():
	}
}

func (cs *Console) errorf(format string, args ...any) {
	fmt.Fprintf(cs.Stdout(), "error: "+format+"\n", args...)
}

// deviceError prints err, with the closest known device id
// when it is an unknown device.
func (cs *Console) deviceError(id string, err error) {
	if errors.Is(err, devices.ErrUnknownDevice) {
		if sg, ok := suggest(cs.Viewer.Registry, id); ok {
			cs.errorf("%v (did you mean %s?)", err, sg)
			return
		}
	}
	cs.errorf("%v", err)
}

// MinSimilarity is the minimum similarity of a suggested device id.
const MinSimilarity = 0.5

// suggest returns the device id most similar to id, ignoring case,
// if it is at least [MinSimilarity] similar.
func suggest(rg *devices.Registry, id string) (string, bool) {
	lev := metrics.NewLevenshtein()
	lev.CaseSensitive = false
	best, bestSim := "", 0.0
	for _, dv := range rg.Devices() {
		if sim := strutil.Similarity(id, dv.ID, lev); sim > bestSim {
			best, bestSim = dv.ID, sim
		}
	}
	return best, bestSim >= MinSimilarity
}

func (cs *Console) cmdList(args []string) {
	cs.do(func() {
		for _, dv := range cs.Viewer.Registry.Devices() {
			if len(args) > 0 && dv.Area != args[0] {
				continue
			}
			fmt.Fprintln(cs.Stdout(), dv)
		}
	})
}

func (cs *Console) cmdShow(args []string) {
	cs.do(func() {
		var dv *devices.Device
		if len(args) > 0 {
			var err error
			if dv, err = cs.Viewer.Registry.Get(args[0]); err != nil {
				cs.deviceError(args[0], err)
				return
			}
		} else if dv = cs.Viewer.Selected(); dv == nil {
			fmt.Fprintln(cs.Stdout(), "no device selected")
			return
		}
		tl := dv.Telemetry
		fmt.Fprintf(cs.Stdout(), "%s\n  type: %s\n  status: %s\n  temperature: %.1f C\n  running: %.0f h\n  power: %.1f kW\n  efficiency: %.1f %%\n",
			dv, dv.Type.Name(), dv.Status.Info().Name, tl.Temperature, tl.RunningHours, tl.PowerKW, tl.EfficiencyPct)
	})
}

// parsePixels parses x and y viewport pixel coordinates.
func parsePixels(args []string) (math32.Vector2, error) {
	if len(args) != 2 {
		return math32.Vector2{}, fmt.Errorf("expected x and y")
	}
	x, err := strconv.ParseFloat(args[0], 32)
	if err != nil {
		return math32.Vector2{}, err
	}
	y, err := strconv.ParseFloat(args[1], 32)
	if err != nil {
		return math32.Vector2{}, err
	}
	return math32.Vec2(float32(x), float32(y)), nil
}

func (cs *Console) cmdPointer(args []string, down bool) {
	pix, err := parsePixels(args)
	if err != nil {
		cs.errorf("%v", err)
		return
	}
	cs.do(func() {
		ndc := cs.Viewer.Camera.PixelsToNDC(pix)
		if down {
			cs.Viewer.PointerDown(ndc.X, ndc.Y)
			return
		}
		cs.Viewer.PointerMove(ndc.X, ndc.Y)
		fmt.Fprintln(cs.Stdout(), "cursor:", cs.Viewer.Cursor())
	})
}

func (cs *Console) cmdSelect(args []string) {
	if len(args) != 1 {
		cs.errorf("usage: select <id>")
		return
	}
	cs.do(func() {
		if err := cs.Viewer.SelectDeviceByID(args[0]); err != nil {
			cs.deviceError(args[0], err)
		}
	})
}

func (cs *Console) cmdStatus(args []string) {
	if len(args) != 2 {
		cs.errorf("usage: status <id> <status>")
		return
	}
	var st devices.Status
	if err := st.SetString(args[1]); err != nil {
		cs.errorf("%v", err)
		return
	}
	cs.do(func() {
		if err := cs.Viewer.SetStatus(args[0], st); err != nil {
			cs.deviceError(args[0], err)
		}
	})
}

func (cs *Console) cmdResize(args []string) {
	if len(args) != 2 {
		cs.errorf("usage: resize <w> <h>")
		return
	}
	w, err := strconv.Atoi(args[0])
	if err != nil {
		cs.errorf("%v", err)
		return
	}
	h, err := strconv.Atoi(args[1])
	if err != nil {
		cs.errorf("%v", err)
		return
	}
	cs.do(func() {
		cs.Viewer.Resize(w, h)
	})
}

func (cs *Console) cmdLabels() {
	cs.do(func() {
		for _, lb := range cs.Viewer.Labels.Labels {
			fmt.Fprintln(cs.Stdout(), lb)
		}
	})
}

func (cs *Console) cmdStats() {
	cs.do(func() {
		stats := cs.Viewer.Registry.Statistics()
		for _, st := range devices.StatusValues() {
			fmt.Fprintf(cs.Stdout(), "%-12s %-4s %d\n", st, st.Info().Name, stats[st])
		}
		fmt.Fprintf(cs.Stdout(), "%-17s %d\n", "total", cs.Viewer.Registry.Len())
	})
}

func (cs *Console) cmdCamera(args []string) {
	if len(args) == 0 {
		cs.do(func() {
			fmt.Fprintln(cs.Stdout(), cs.Viewer.Camera.Pose)
		})
		return
	}
	switch {
	case args[0] == "save" && len(args) == 2:
		cs.do(func() {
			cs.Viewer.SaveCamera(args[1])
		})
	case args[0] == "restore" && (len(args) == 2 || len(args) == 3):
		d := camera.FocusDuration
		if len(args) == 3 {
			var err error
			if d, err = time.ParseDuration(args[2]); err != nil {
				cs.errorf("%v", err)
				return
			}
		}
		cs.do(func() {
			if err := cs.Viewer.RestoreCamera(args[1], d); err != nil {
				cs.errorf("%v", err)
			}
		})
	default:
		cs.errorf("usage: camera [save <name> | restore <name> [duration]]")
	}
}
