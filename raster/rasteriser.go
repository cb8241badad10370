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

// Package raster draws the screen space triangles produced by the render3d
// pipeline into images, with anti-aliased edges.
//
// Triangles are converted to paths and filled with the nonzero winding rule
// by a scanline [Rasteriser], which computes exact area coverage per pixel.
package raster

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// edge is a line segment in device coordinates, with y0 < y1.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64
	dir    float32 // +1 if the original segment pointed down, -1 otherwise
}

// Rasteriser converts closed polygonal paths to pixel coverage values.
// Internal buffers grow as needed and are reused between calls.
type Rasteriser struct {
	// CTM maps path coordinates to device coordinates.
	CTM matrix.Matrix

	// Clip is the output region in device coordinates, with integer
	// coordinates.
	Clip rect.Rect

	edges     []edge
	active    []int
	cover     []float32
	area      []float32
	crossings []float64

	xMin, xMax, yMin, yMax float64
}

// NewRasteriser returns a rasteriser with the identity transformation.
func NewRasteriser(clip rect.Rect) *Rasteriser {
	return &Rasteriser{CTM: matrix.Identity, Clip: clip}
}

// Reset prepares the rasteriser for a new clip region and restores the
// identity transformation.  Buffer capacity is kept.
func (r *Rasteriser) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.edges = r.edges[:0]
	r.active = r.active[:0]
}

// FillNonZero fills p using the nonzero winding rule.  Curve segments are
// replaced by the chord to their end point.
//
// Coverage is passed to emit one row at a time; the coverage slice is only
// valid during the call.
func (r *Rasteriser) FillNonZero(p *path.Data, emit func(y, xMin int, coverage []float32)) {
	r.collect(p)
	if len(r.edges) == 0 {
		return
	}

	x0 := max(int(math.Floor(r.xMin)), int(r.Clip.LLx))
	x1 := min(int(math.Floor(r.xMax))+1, int(r.Clip.URx))
	y0 := max(int(math.Floor(r.yMin)), int(r.Clip.LLy))
	y1 := min(int(math.Floor(r.yMax))+1, int(r.Clip.URy))
	if x0 >= x1 || y0 >= y1 {
		return
	}
	r.scan(x0, x1, y0, y1, emit)
}

// collect transforms the segments of p to device space and stores them as
// edges.  Horizontal segments do not contribute to coverage and are dropped.
func (r *Rasteriser) collect(p *path.Data) {
	r.edges = r.edges[:0]

	var current, start vec.Vec2
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			current = p.Coords[k]
			start = current
			k++
		case path.CmdLineTo:
			r.addEdge(current, p.Coords[k])
			current = p.Coords[k]
			k++
		case path.CmdQuadTo:
			r.addEdge(current, p.Coords[k+1])
			current = p.Coords[k+1]
			k += 2
		case path.CmdCubeTo:
			r.addEdge(current, p.Coords[k+2])
			current = p.Coords[k+2]
			k += 3
		case path.CmdClose:
			r.addEdge(current, start)
			current = start
		}
	}
}

func (r *Rasteriser) apply(p vec.Vec2) (float64, float64) {
	m := r.CTM
	return m[0]*p.X + m[2]*p.Y + m[4], m[1]*p.X + m[3]*p.Y + m[5]
}

func (r *Rasteriser) addEdge(from, to vec.Vec2) {
	x0, y0 := r.apply(from)
	x1, y1 := r.apply(to)
	if math.Abs(y1-y0) < horizontalEdgeThreshold {
		return
	}

	dir := float32(1)
	if y1 < y0 {
		x0, y0, x1, y1 = x1, y1, x0, y0
		dir = -1
	}
	e := edge{x0: x0, y0: y0, x1: x1, y1: y1, dxdy: (x1 - x0) / (y1 - y0), dir: dir}

	if len(r.edges) == 0 {
		r.xMin, r.xMax = min(x0, x1), max(x0, x1)
		r.yMin, r.yMax = y0, y1
	} else {
		r.xMin = min(r.xMin, x0, x1)
		r.xMax = max(r.xMax, x0, x1)
		r.yMin = min(r.yMin, y0)
		r.yMax = max(r.yMax, y1)
	}
	r.edges = append(r.edges, e)
}

// scan runs an active edge list over the rows [y0, y1).
//
// For every pixel two values are accumulated: cover, the signed vertical
// extent of the edge pieces inside the pixel, and area, the part of cover
// left of the edge.  A running sum of cover along the row then gives the
// winding number left of each pixel, and adding area gives the coverage of
// the pixel itself.
func (r *Rasteriser) scan(x0, x1, y0, y1 int, emit func(y, xMin int, coverage []float32)) {
	width := x1 - x0
	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(a.y0, b.y0)
	})

	r.active = r.active[:0]
	next := 0
	for y := y0; y < y1; y++ {
		top, bottom := float64(y), float64(y+1)

		for next < len(r.edges) && r.edges[next].y0 < bottom {
			r.active = append(r.active, next)
			next++
		}
		if len(r.active) == 0 {
			continue
		}

		clear(r.cover)
		clear(r.area)
		for i := 0; i < len(r.active); {
			e := &r.edges[r.active[i]]
			if e.y1 <= top {
				r.active[i] = r.active[len(r.active)-1]
				r.active = r.active[:len(r.active)-1]
				continue
			}
			r.accumulate(e, top, bottom, x0, x1)
			i++
		}

		integrateNonZero(r.cover, r.area)
		if cov, offset := trimZeros(r.cover); cov != nil {
			emit(y, x0+offset, cov)
		}
	}
}

// accumulate adds the part of e inside the row [top, bottom) to the cover
// and area buffers.  The edge is split where it crosses pixel columns.
func (r *Rasteriser) accumulate(e *edge, top, bottom float64, x0, x1 int) {
	top = max(top, e.y0)
	bottom = min(bottom, e.y1)
	if bottom <= top {
		return
	}

	xTop := e.x0 + e.dxdy*(top-e.y0)
	xBottom := e.x0 + e.dxdy*(bottom-e.y0)
	left, right := min(xTop, xBottom), max(xTop, xBottom)
	colLeft, colRight := int(math.Floor(left)), int(math.Floor(right))

	r.crossings = append(r.crossings[:0], top, bottom)
	for x := colLeft + 1; x <= colRight; x++ {
		y := e.y0 + (float64(x)-e.x0)/e.dxdy
		if y > top && y < bottom {
			r.crossings = append(r.crossings, y)
		}
	}
	slices.Sort(r.crossings)

	for i := range len(r.crossings) - 1 {
		ya, yb := r.crossings[i], r.crossings[i+1]
		if yb <= ya {
			continue
		}
		c := e.dir * float32(yb-ya)
		xm := e.x0 + e.dxdy*((ya+yb)/2-e.y0)
		col := int(math.Floor(xm))
		switch {
		case col < x0:
			r.cover[0] += c
			r.area[0] += c
		case col < x1:
			idx := col - x0
			r.cover[idx] += c
			r.area[idx] += c * float32(1-(xm-float64(col)))
		}
	}
}

// integrateNonZero turns the accumulated buffers into coverage values in
// [0, 1], in place.
func integrateNonZero(cover, area []float32) {
	var winding float32
	for i := range cover {
		v := winding + area[i]
		winding += cover[i]
		if v < 0 {
			v = -v
		}
		cover[i] = min(v, 1)
	}
}

// trimZeros returns the part of coverage between the first and last
// non-zero value, and its offset.  A row without coverage gives nil.
func trimZeros(coverage []float32) ([]float32, int) {
	lo, hi := 0, len(coverage)
	for lo < hi && coverage[lo] == 0 {
		lo++
	}
	if lo == hi {
		return nil, 0
	}
	for coverage[hi-1] == 0 {
		hi--
	}
	return coverage[lo:hi], lo
}

// horizontalEdgeThreshold is the smallest vertical extent of an edge which
// contributes to coverage.
const horizontalEdgeThreshold = 1e-10
