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
	"image/color"

	"seehuhn.de/go/render3d/math3d"
)

// Option configures a [Pipeline] or [Renderer].
type Option func(*options)

type options struct {
	light   math3d.Vec4
	base    color.NRGBA
	nearZ   float64
	workers int
	strict  bool
}

func defaultOptions() options {
	return options{
		light:   DefaultLight,
		base:    DefaultBaseColor,
		nearZ:   DefaultNearZ,
		workers: 1,
	}
}

// Default values for the pipeline options.
var (
	// DefaultLight is the direction of the directional light.
	DefaultLight = math3d.Vec4{X: 0, Y: 0.5, Z: -1}

	// DefaultBaseColor is the surface colour before lighting.
	DefaultBaseColor = color.NRGBA{R: 150, G: 0, B: 150, A: 255}
)

// DefaultNearZ is the view space depth of the near clipping plane.
const DefaultNearZ = 0.1

// WithLight sets the direction of the directional light.
// The vector is normalised when the pipeline is created.
func WithLight(dir math3d.Vec4) Option {
	return func(o *options) {
		o.light = dir
	}
}

// WithBaseColor sets the surface colour before lighting.
// The alpha channel is ignored; output triangles keep the alpha value
// of the mesh triangle they came from.
func WithBaseColor(c color.NRGBA) Option {
	return func(o *options) {
		o.base = c
	}
}

// WithNearPlane sets the view space depth of the near clipping plane.
// The value must be positive.
func WithNearPlane(z float64) Option {
	return func(o *options) {
		o.nearZ = z
	}
}

// WithWorkers sets the number of goroutines a [Renderer] uses to transform
// the triangles of a mesh.  Values below 2 select sequential processing.
// The output does not depend on the number of workers.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithStrictGeometry makes a [Renderer] fail the whole frame when a
// triangle cannot be transformed, instead of skipping the triangle.
func WithStrictGeometry(strict bool) Option {
	return func(o *options) {
		o.strict = strict
	}
}
