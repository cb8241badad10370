// seehuhn.de/go/render3d - a software 3D rendering pipeline
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package render3d

import (
	"math"

	"seehuhn.de/go/render3d/math3d"
)

// Frame holds the per-frame inputs of the pipeline.  All fields are read
// only while a frame is rendered.
type Frame struct {
	World      math3d.Matrix // model space to world space
	View       math3d.Matrix // world space to camera space
	Projection math3d.Matrix // camera space to clip space

	// Camera is the viewer position in world space, used for back-face
	// culling.
	Camera math3d.Vec4

	// Width and Height give the viewport size in pixels.
	Width, Height float64
}

// Default parameters for [NewFrame].
const (
	DefaultFOV      = 90.0   // field of view in degrees
	DefaultNear     = 0.1    // near distance of the projection
	DefaultFar      = 1000.0 // far distance of the projection
	DefaultDistance = 8.0    // distance of the model from the origin, along +Z
)

// NewFrame returns a frame for the given camera and viewport, using the
// default projection and placing the model at [DefaultDistance].
func NewFrame(cam Camera, width, height float64) (*Frame, error) {
	if !validSize(width, height) {
		return nil, ErrViewport
	}
	view, err := cam.View(ScreenUp)
	if err != nil {
		return nil, err
	}
	proj, err := math3d.Project(DefaultFOV, height/width, DefaultNear, DefaultFar)
	if err != nil {
		return nil, err
	}
	return &Frame{
		World:      math3d.Translate(0, 0, DefaultDistance),
		View:       view,
		Projection: proj,
		Camera:     cam.Position,
		Width:      width,
		Height:     height,
	}, nil
}

func validSize(width, height float64) bool {
	return width > 0 && height > 0 && !math.IsInf(width, 0) && !math.IsInf(height, 0)
}
