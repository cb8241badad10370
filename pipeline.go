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
	"errors"
	"fmt"
	"image/color"
	"math"

	"seehuhn.de/go/render3d/clip"
	"seehuhn.de/go/render3d/math3d"
	"seehuhn.de/go/render3d/mesh"
)

// minIntensity is the ambient light level of faces turned away from the
// light.
const minIntensity = 0.1

// Pipeline transforms, lights and projects individual triangles.
//
// A Pipeline holds no per-frame state and is safe for concurrent use.
type Pipeline struct {
	light math3d.Vec4 // unit vector
	base  color.NRGBA
	near  clip.Plane
}

// NewPipeline returns a pipeline with the given options applied.
// Only [WithLight], [WithBaseColor] and [WithNearPlane] have an effect.
func NewPipeline(opts ...Option) (*Pipeline, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return newPipeline(&o)
}

func newPipeline(o *options) (*Pipeline, error) {
	light, err := o.light.Normalize()
	if err != nil {
		return nil, fmt.Errorf("light direction: %w", err)
	}
	if !(o.nearZ > 0) || math.IsInf(o.nearZ, 0) {
		return nil, fmt.Errorf("near plane at z=%g: must be positive", o.nearZ)
	}
	near := clip.MustNewPlane(math3d.Point(0, 0, o.nearZ), math3d.Point(0, 0, 1))
	return &Pipeline{light: light, base: o.base, near: near}, nil
}

// Transform takes one mesh triangle through the per-frame pipeline and
// appends the resulting screen space triangles to dst.
//
// The triangle is moved to world space, culled if it faces away from the
// camera, lit, moved to camera space, clipped against the near plane, and
// finally projected and mapped to pixel coordinates.  The returned flag
// reports whether the triangle survived back-face culling; a visible
// triangle can still produce no output if it lies behind the near plane.
//
// On error, dst is returned unchanged.  A triangle with zero area gives a
// [*math3d.DegenerateVectorError].
func (p *Pipeline) Transform(dst []mesh.Triangle, tri mesh.Triangle, f *Frame) ([]mesh.Triangle, bool, error) {
	var world mesh.Triangle
	for i, v := range tri.P {
		world.P[i] = v.Transform(f.World)
	}

	normal, err := world.Normal()
	if err != nil {
		return dst, false, err
	}
	cameraRay := world.P[0].Sub(f.Camera)
	if normal.Dot(cameraRay) >= 0 {
		return dst, false, nil
	}

	intensity := max(minIntensity, p.light.Dot(normal))

	viewed := mesh.Triangle{Color: shade(p.base, intensity, tri.Color.A)}
	for i, v := range world.P {
		viewed.P[i] = v.Transform(f.View)
	}

	var buf [2]mesh.Triangle
	clipped := p.near.Clip(buf[:0], viewed)

	n := len(dst)
	for _, c := range clipped {
		out := mesh.Triangle{Color: c.Color}
		for i, v := range c.P {
			s, err := toScreen(v, f)
			if err != nil {
				return dst[:n], true, err
			}
			out.P[i] = s
		}
		dst = append(dst, out)
	}
	return dst, true, nil
}

// toScreen projects a camera space vertex and maps it to pixel coordinates.
// The W component of the result keeps the projected weight.
func toScreen(v math3d.Vec4, f *Frame) (math3d.Vec4, error) {
	v = v.Transform(f.Projection)
	w := v.W
	if w == 0 {
		return math3d.Vec4{}, ErrZeroW
	}
	return math3d.Vec4{
		X: (v.X/w + 1) * 0.5 * f.Width,
		Y: (v.Y/w + 1) * 0.5 * f.Height,
		Z: v.Z / w,
		W: w,
	}, nil
}

// shade scales the colour channels of base by intensity, clamping each
// channel to [0, 255].
func shade(base color.NRGBA, intensity float64, alpha uint8) color.NRGBA {
	scale := func(c uint8) uint8 {
		v := float64(c) * intensity
		switch {
		case v >= 255:
			return 255
		case v <= 0 || math.IsNaN(v):
			return 0
		}
		return uint8(v)
	}
	return color.NRGBA{
		R: scale(base.R),
		G: scale(base.G),
		B: scale(base.B),
		A: alpha,
	}
}

// isSkippable reports whether err affects only a single triangle.
func isSkippable(err error) bool {
	var degenerate *math3d.DegenerateVectorError
	return errors.As(err, &degenerate) || errors.Is(err, ErrZeroW)
}
