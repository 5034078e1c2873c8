// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the description of the factory floor:
// the areas, the device groups generated in them, and the initial
// camera, read from TOML or YAML files.
package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/fleetview/base/errors"
	"cogentcore.org/fleetview/camera"
	"cogentcore.org/fleetview/devices"
	"cogentcore.org/fleetview/floor"
	"cogentcore.org/fleetview/math32"
	"github.com/jinzhu/copier"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

//go:embed factory.toml
var factoryTOML []byte

// ErrInvalidConfig is returned for a configuration that fails validation.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the main config struct that describes the factory floor.
type Config struct {

	// Seed is the seed of the simulated telemetry; 0 uses the global source.
	Seed int64 `toml:"seed" yaml:"seed"`

	// Camera is the initial camera.
	Camera Camera `toml:"camera" yaml:"camera"`

	// Areas are the areas of the floor, in label order.
	Areas []Area `toml:"areas" yaml:"areas"`

	// Devices are the device groups, in generation order.
	Devices []DeviceGroup `toml:"devices" yaml:"devices"`
}

// Camera is the initial camera configuration.
type Camera struct {
	Eye    [3]float32 `toml:"eye" yaml:"eye"`
	LookAt [3]float32 `toml:"look_at" yaml:"look_at"`

	// FOV is the vertical field of view in degrees.
	FOV  float32 `toml:"fov" yaml:"fov"`
	Near float32 `toml:"near" yaml:"near"`
	Far  float32 `toml:"far" yaml:"far"`
}

// Area is the configuration of one area.
type Area struct {
	ID     string     `toml:"id" yaml:"id"`
	Name   string     `toml:"name" yaml:"name"`
	Center [3]float32 `toml:"center" yaml:"center"`
	Width  float32    `toml:"width" yaml:"width"`
	Depth  float32    `toml:"depth" yaml:"depth"`
}

// Split is a run of devices with the same initial status.
type Split struct {
	Status devices.Status `toml:"status" yaml:"status"`
	Count  int            `toml:"count" yaml:"count"`
}

// DeviceGroup is the configuration of the devices of one area.
type DeviceGroup struct {
	Area    string       `toml:"area" yaml:"area"`
	Type    devices.Type `toml:"type" yaml:"type"`
	Prefix  string       `toml:"prefix" yaml:"prefix"`
	Name    string       `toml:"name" yaml:"name"`
	Count   int          `toml:"count" yaml:"count"`
	Columns int          `toml:"columns" yaml:"columns"`

	// Splits assign the initial statuses by index, in order.
	Splits []Split `toml:"splits" yaml:"splits"`

	// Remainder is the status of the devices after the splits.
	Remainder devices.Status `toml:"remainder" yaml:"remainder"`
}

// Default returns the built-in factory configuration.
func Default() *Config {
	cfg := &Config{}
	errors.Must(toml.Unmarshal(factoryTOML, cfg))
	return cfg
}

// Clone returns a deep copy of the configuration.
func (cfg *Config) Clone() *Config {
	nc := &Config{}
	errors.Log(copier.CopyWithOption(nc, cfg, copier.Option{DeepCopy: true}))
	return nc
}

// Open reads the configuration from the given file, as TOML or YAML
// depending on its extension, and validates it.
func Open(path string) (*Config, error) {
	cfg := &Config{}
	if err := Load(path, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config.Open %q: %w", path, err)
	}
	return cfg, nil
}

// Load decodes the given file into v: ".yaml" and ".yml" files as YAML,
// anything else as TOML.
func Load(path string, v any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, v)
	default:
		dec := toml.NewDecoder(bytes.NewReader(b))
		dec.DisallowUnknownFields()
		err = dec.Decode(v)
	}
	if err != nil {
		return fmt.Errorf("config.Load %q: %w", path, err)
	}
	return nil
}

// Save writes the configuration to the given file, as TOML or YAML
// depending on its extension.
func (cfg *Config) Save(path string) error {
	var b []byte
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		b, err = yaml.Marshal(cfg)
	default:
		b, err = toml.Marshal(cfg)
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0666)
}

// Validate checks the configuration, returning all of the problems
// found, joined and wrapped with [ErrInvalidConfig].
func (cfg *Config) Validate() error {
	var errs []error
	ids := map[string]bool{}
	for i, ar := range cfg.Areas {
		switch {
		case ar.ID == "":
			errs = append(errs, fmt.Errorf("area %d has no id", i))
		case ids[ar.ID]:
			errs = append(errs, fmt.Errorf("duplicate area %q", ar.ID))
		}
		ids[ar.ID] = true
		if ar.Width < 0 || ar.Depth < 0 {
			errs = append(errs, fmt.Errorf("area %q has a negative size", ar.ID))
		}
	}
	for i, dg := range cfg.Devices {
		if !ids[dg.Area] {
			errs = append(errs, fmt.Errorf("device group %d: unknown area %q", i, dg.Area))
		}
		if !dg.Type.IsValid() {
			errs = append(errs, fmt.Errorf("device group %d: invalid type", i))
		}
		if dg.Count < 0 || dg.Columns <= 0 {
			errs = append(errs, fmt.Errorf("device group %d: count %d, columns %d", i, dg.Count, dg.Columns))
		}
		sum := 0
		for _, sp := range dg.Splits {
			if sp.Count < 0 {
				errs = append(errs, fmt.Errorf("device group %d: negative split count", i))
			}
			sum += sp.Count
		}
		if sum > dg.Count {
			errs = append(errs, fmt.Errorf("device group %d: splits cover %d of %d devices", i, sum, dg.Count))
		}
	}
	if cfg.Camera.FOV <= 0 || cfg.Camera.Near <= 0 || cfg.Camera.Far <= cfg.Camera.Near {
		errs = append(errs, fmt.Errorf("camera: fov %g, near %g, far %g", cfg.Camera.FOV, cfg.Camera.Near, cfg.Camera.Far))
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}

func vec3(v [3]float32) math32.Vector3 {
	return math32.Vec3(v[0], v[1], v[2])
}

// Catalog returns the area catalog.
func (cfg *Config) Catalog() (*floor.Catalog, error) {
	areas := make([]floor.Area, len(cfg.Areas))
	for i, ar := range cfg.Areas {
		areas[i] = floor.Area{ID: ar.ID, Name: ar.Name, Center: vec3(ar.Center), Width: ar.Width, Depth: ar.Depth}
	}
	return floor.NewCatalog(areas...)
}

// Specs returns the device area specs, in generation order.
func (cfg *Config) Specs() []devices.AreaSpec {
	specs := make([]devices.AreaSpec, len(cfg.Devices))
	for i, dg := range cfg.Devices {
		sp := devices.AreaSpec{Area: dg.Area, Type: dg.Type, Prefix: dg.Prefix, Name: dg.Name,
			Count: dg.Count, Columns: dg.Columns, Remainder: dg.Remainder}
		for _, s := range dg.Splits {
			sp.Splits = append(sp.Splits, devices.Split{Status: s.Status, Count: s.Count})
		}
		specs[i] = sp
	}
	return specs
}

// ApplyCamera sets the projection parameters and pose of the camera.
func (cfg *Config) ApplyCamera(cm *camera.Camera) {
	cm.FOV = cfg.Camera.FOV
	cm.Near = cfg.Camera.Near
	cm.Far = cfg.Camera.Far
	cm.SetPose(camera.Pose{Eye: vec3(cfg.Camera.Eye), LookAt: vec3(cfg.Camera.LookAt)})
}
