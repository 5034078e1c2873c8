// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command fleetview is an interactive console for the factory floor
// viewer. It builds the factory from a configuration file (or the
// embedded default factory), optionally follows a status file, and
// runs the frame loop while commands are read from the terminal.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cogentcore.org/fleetview/base/errors"
	"cogentcore.org/fleetview/base/logx"
	"cogentcore.org/fleetview/config"
	"cogentcore.org/fleetview/feed"
	"cogentcore.org/fleetview/frame"
	"cogentcore.org/fleetview/viewer"
	"github.com/mitchellh/go-homedir"
)

func main() {
	var (
		configFile  string
		statusFile  string
		verbose     bool
		veryVerbose bool
		quiet       bool
	)
	interval := frame.DefaultInterval
	flag.StringVar(&configFile, "config", "", "Factory configuration file (.toml, .yaml or .yml); the default factory if empty")
	flag.StringVar(&statusFile, "status", "", "Status file (id = status) to follow for device status updates")
	flag.DurationVar(&interval, "interval", interval, "Frame interval")
	flag.BoolVar(&verbose, "v", false, "Show informational log messages")
	flag.BoolVar(&veryVerbose, "vv", false, "Show debug log messages")
	flag.BoolVar(&quiet, "q", false, "Only show errors")
	flag.Parse()

	logx.UserLevel = logx.LevelFromFlags(veryVerbose, verbose, quiet)
	logx.SetDefaultLogger()

	if err := run(configFile, statusFile, interval); err != nil {
		fmt.Fprintln(os.Stderr, "fleetview:", err)
		os.Exit(1)
	}
}

func run(configFile, statusFile string, interval time.Duration) error {
	cfg := config.Default()
	if configFile != "" {
		path, err := homedir.Expand(configFile)
		if err != nil {
			return err
		}
		if cfg, err = config.Open(path); err != nil {
			return err
		}
	}
	vw, err := viewer.New(cfg)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cs, err := NewConsole(ctx, vw)
	if err != nil {
		return err
	}
	// log through readline so that messages do not garble the prompt
	slog.SetDefault(slog.New(logx.NewHandler(cs.Stderr())))

	if statusFile != "" {
		path, err := homedir.Expand(statusFile)
		if err != nil {
			return err
		}
		w, err := feed.NewWatcher(path, vw.Updates)
		if err != nil {
			return err
		}
		defer w.Close()
		errors.Log(w.Load())
		w.Start()
	}

	go vw.Scheduler.Run(ctx, interval)
	cs.Run(cancel)
	return nil
}
