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

// Package clip cuts triangles against half-spaces.
//
// The same routine serves for clipping against the near plane in view space
// and for clipping against the viewport edges in screen space.
package clip

import (
	"seehuhn.de/go/render3d/math3d"
	"seehuhn.de/go/render3d/mesh"
)

// Plane is the boundary of a half-space.  Points on the side the normal
// points to, and points on the plane itself, are inside.
//
// Planes must be constructed using [NewPlane], which normalises the normal.
type Plane struct {
	Point  math3d.Vec4
	Normal math3d.Vec4

	d float64 // Normal·Point
}

// NewPlane returns the plane through point with the given normal.
// A zero normal gives a [*math3d.DegenerateVectorError].
func NewPlane(point, normal math3d.Vec4) (Plane, error) {
	n, err := normal.Normalize()
	if err != nil {
		return Plane{}, err
	}
	return Plane{Point: point, Normal: n, d: n.Dot(point)}, nil
}

// MustNewPlane is like [NewPlane] but panics if the normal is zero.
// It is intended for planes with constant normals.
func MustNewPlane(point, normal math3d.Vec4) Plane {
	p, err := NewPlane(point, normal)
	if err != nil {
		panic(err)
	}
	return p
}

// SignedDistance returns the distance of v from the plane.
// The result is positive on the inside.
func (p Plane) SignedDistance(v math3d.Vec4) float64 {
	return p.Normal.Dot(v) - p.d
}

// Intersect returns the point where the line through start and end meets
// the plane.  The W component is taken from start.  The line must not be
// parallel to the plane.
func (p Plane) Intersect(start, end math3d.Vec4) math3d.Vec4 {
	ad := start.Dot(p.Normal)
	bd := end.Dot(p.Normal)
	t := (p.d - ad) / (bd - ad)
	return start.Add(end.Sub(start).Mul(t))
}

// Clip clips t against the half-space and appends the visible part, which
// consists of zero, one or two triangles, to dst.
//
// A triangle which is completely inside is appended unchanged.  If one vertex
// is inside, the result is the triangle spanned by that vertex and the two
// points where its edges cross the plane.  If two vertices are inside, the
// remaining quadrilateral is split into two triangles.  All results carry the
// colour of t.
func (p Plane) Clip(dst []mesh.Triangle, t mesh.Triangle) []mesh.Triangle {
	var inside, outside [3]math3d.Vec4
	nIn, nOut := 0, 0
	for _, v := range t.P {
		if p.SignedDistance(v) >= 0 {
			inside[nIn] = v
			nIn++
		} else {
			outside[nOut] = v
			nOut++
		}
	}

	switch nIn {
	case 0:
		return dst

	case 3:
		return append(dst, t)

	case 1:
		return append(dst, mesh.Triangle{
			P: [3]math3d.Vec4{
				inside[0],
				p.Intersect(inside[0], outside[0]),
				p.Intersect(inside[0], outside[1]),
			},
			Color: t.Color,
		})

	case 2:
		a := p.Intersect(inside[0], outside[0])
		return append(dst,
			mesh.Triangle{
				P:     [3]math3d.Vec4{inside[0], inside[1], a},
				Color: t.Color,
			},
			mesh.Triangle{
				P:     [3]math3d.Vec4{inside[1], a, p.Intersect(inside[1], outside[0])},
				Color: t.Color,
			})

	default:
		panic("unreachable")
	}
}
