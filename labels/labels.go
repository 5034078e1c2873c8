// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package labels projects the area name labels to screen space
// through the live camera, once per frame.
package labels

import (
	"fmt"

	"cogentcore.org/fleetview/camera"
	"cogentcore.org/fleetview/floor"
	"cogentcore.org/fleetview/math32"
)

const (
	// AnchorHeight is the height of a label anchor above its area center.
	AnchorHeight float32 = 12

	// ScaleDistance is the distance at which a label has scale 1;
	// nearer labels are larger, up to [MaxScale].
	ScaleDistance float32 = 120

	// MinScale and MaxScale bound the label scale.
	MinScale float32 = 1
	MaxScale float32 = 2

	// FontSize is the base font size of a label in pixels, at scale 1.
	FontSize float32 = 16
)

// Label is the screen-space placement of the name label of one area.
type Label struct {

	// Area is the id of the area.
	Area string

	// Text is the label text: the area name.
	Text string

	// Center is the area center, from which the distance is measured.
	Center math32.Vector3

	// Anchor is the 3D point that the label is centered on.
	Anchor math32.Vector3

	// Visible is false when the anchor is behind the camera.
	Visible bool

	// Pos is the pixel position of the label center, when visible.
	Pos math32.Vector2

	// Scale is the distance-based scale factor, when visible.
	Scale float32
}

// FontSize returns the scaled font size of the label in pixels.
func (lb *Label) FontSize() float32 {
	return FontSize * lb.Scale
}

func (lb *Label) String() string {
	if !lb.Visible {
		return fmt.Sprintf("%s: hidden", lb.Area)
	}
	return fmt.Sprintf("%s: (%.0f, %.0f) x%.2f", lb.Area, lb.Pos.X, lb.Pos.Y, lb.Scale)
}

// Projector places the labels of all areas of a catalog.
type Projector struct {

	// Camera is the live camera, read only.
	Camera *camera.Camera

	// Labels are the labels, in catalog order.
	Labels []*Label
}

// NewProjector returns a new projector with one label per area.
func NewProjector(cm *camera.Camera, catalog *floor.Catalog) *Projector {
	pj := &Projector{Camera: cm}
	for _, ar := range catalog.Areas() {
		pj.Labels = append(pj.Labels, &Label{
			Area:   ar.ID,
			Text:   ar.Name,
			Center: ar.Center,
			Anchor: ar.Center.Add(math32.Vec3(0, AnchorHeight, 0)),
		})
	}
	return pj
}

// Update recomputes every label from the current camera pose and viewport.
func (pj *Projector) Update() {
	for _, lb := range pj.Labels {
		pj.Place(lb)
	}
}

// Place recomputes the given label.
func (pj *Projector) Place(lb *Label) {
	ndc := pj.Camera.Project(lb.Anchor)
	if ndc.Z >= 1 {
		lb.Visible = false
		return
	}
	lb.Visible = true
	lb.Pos = pj.Camera.NDCToPixels(ndc)
	lb.Scale = Scale(pj.Camera.Pose.Eye.DistanceTo(lb.Center))
}

// Scale returns the label scale for the given distance from the camera.
func Scale(distance float32) float32 {
	if distance <= 0 {
		return MaxScale
	}
	return math32.Clamp(ScaleDistance/distance, MinScale, MaxScale)
}

// Label returns the label of the given area, or nil.
func (pj *Projector) Label(area string) *Label {
	for _, lb := range pj.Labels {
		if lb.Area == area {
			return lb
		}
	}
	return nil
}
