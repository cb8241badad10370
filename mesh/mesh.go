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

// Package mesh holds triangle meshes and reads them from a minimal subset of
// the Wavefront OBJ text format.
package mesh

import (
	"image/color"
	"iter"
	"slices"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/render3d/math3d"
)

// Triangle is a flat-coloured triangle.
// The winding order of P determines the direction of the surface normal.
type Triangle struct {
	P     [3]math3d.Vec4
	Color color.NRGBA
}

// AverageZ returns the mean Z coordinate of the three vertices.
func (t Triangle) AverageZ() float64 {
	return (t.P[0].Z + t.P[1].Z + t.P[2].Z) / 3
}

// Normal returns the unit normal (P1-P0)×(P2-P0).
// Triangles with zero area give a [*math3d.DegenerateVectorError].
func (t Triangle) Normal() (math3d.Vec4, error) {
	edge1 := t.P[1].Sub(t.P[0])
	edge2 := t.P[2].Sub(t.P[0])
	return edge1.Cross(edge2).Normalize()
}

// Screen returns the X, Y coordinates of the vertices.
func (t Triangle) Screen() [3]vec.Vec2 {
	return [3]vec.Vec2{
		{X: t.P[0].X, Y: t.P[0].Y},
		{X: t.P[1].X, Y: t.P[1].Y},
		{X: t.P[2].X, Y: t.P[2].Y},
	}
}

// Mesh is an ordered, read-only collection of triangles.
type Mesh struct {
	tris []Triangle
}

// New returns a mesh holding a copy of tris.
func New(tris []Triangle) *Mesh {
	return &Mesh{tris: slices.Clone(tris)}
}

// Len returns the number of triangles in the mesh.
// A nil mesh is empty.
func (m *Mesh) Len() int {
	if m == nil {
		return 0
	}
	return len(m.tris)
}

// Triangle returns the i-th triangle of the mesh.
func (m *Mesh) Triangle(i int) Triangle {
	return m.tris[i]
}

// All iterates over the triangles of the mesh, in order.
func (m *Mesh) All() iter.Seq2[int, Triangle] {
	return func(yield func(int, Triangle) bool) {
		if m == nil {
			return
		}
		for i, t := range m.tris {
			if !yield(i, t) {
				return
			}
		}
	}
}
