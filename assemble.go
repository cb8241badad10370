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
	"cmp"
	"slices"

	"seehuhn.de/go/render3d/clip"
	"seehuhn.de/go/render3d/math3d"
	"seehuhn.de/go/render3d/mesh"
)

// SortByDepth orders tris back to front, by decreasing average Z.
// Triangles with equal depth keep their relative order.
//
// This is the painter's algorithm: it does not resolve triangles which
// overlap in depth.
func SortByDepth(tris []mesh.Triangle) {
	slices.SortStableFunc(tris, func(a, b mesh.Triangle) int {
		return cmp.Compare(b.AverageZ(), a.AverageZ())
	})
}

// ScreenEdges returns the half-planes bounding a viewport of the given size,
// in the order top, bottom, left, right.
func ScreenEdges(width, height float64) [4]clip.Plane {
	return [4]clip.Plane{
		clip.MustNewPlane(math3d.Point(0, 0, 0), math3d.Point(0, 1, 0)),
		clip.MustNewPlane(math3d.Point(0, height-1, 0), math3d.Point(0, -1, 0)),
		clip.MustNewPlane(math3d.Point(0, 0, 0), math3d.Point(1, 0, 0)),
		clip.MustNewPlane(math3d.Point(width-1, 0, 0), math3d.Point(-1, 0, 0)),
	}
}

// Assembler turns the candidate triangles of a frame into the final,
// drawable list.  Internal buffers are reused between calls.
//
// The zero value is ready to use.  An Assembler is not safe for concurrent
// use.
type Assembler struct {
	queue, next []mesh.Triangle
}

// Assemble sorts candidates in place by depth, clips each of them against
// the viewport edges and appends the results to dst, back to front.
func (a *Assembler) Assemble(dst, candidates []mesh.Triangle, width, height float64) []mesh.Triangle {
	SortByDepth(candidates)
	edges := ScreenEdges(width, height)
	for _, t := range candidates {
		dst = a.clipEdges(dst, t, &edges)
	}
	return dst
}

// ClipToScreen clips t against the four edges of the viewport and appends
// the visible parts to dst.
func (a *Assembler) ClipToScreen(dst []mesh.Triangle, t mesh.Triangle, width, height float64) []mesh.Triangle {
	edges := ScreenEdges(width, height)
	return a.clipEdges(dst, t, &edges)
}

// clipEdges runs a queue seeded with t through the edges in turn.  Every
// edge is applied to all triangles produced by the previous one, in order,
// since clipping can split a triangle into two.
func (a *Assembler) clipEdges(dst []mesh.Triangle, t mesh.Triangle, edges *[4]clip.Plane) []mesh.Triangle {
	a.queue = append(a.queue[:0], t)
	for _, edge := range edges {
		a.next = a.next[:0]
		for _, test := range a.queue {
			a.next = edge.Clip(a.next, test)
		}
		a.queue, a.next = a.next, a.queue
		if len(a.queue) == 0 {
			break
		}
	}
	return append(dst, a.queue...)
}
