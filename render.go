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

// Package render3d converts triangle meshes into depth-ordered lists of
// flat-shaded screen space triangles, ready for a 2D rasteriser.
//
// Each frame, every mesh triangle is moved to world space, culled if it faces
// away from the camera, lit by a single directional light, moved to camera
// space, clipped against the near plane and projected to pixel coordinates.
// The resulting triangles are sorted back to front and clipped against the
// viewport edges.
package render3d

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"seehuhn.de/go/render3d/mesh"
)

// Output is the result of rendering one frame.
type Output struct {
	// Triangles lists the drawable triangles in pixel coordinates, in
	// back-to-front order.
	Triangles []mesh.Triangle

	Candidates int // triangles after near clipping, before edge clipping
	Culled     int // mesh triangles removed by back-face culling
	Skipped    int // mesh triangles with degenerate geometry
}

// Renderer renders complete frames.
//
// A Renderer is not safe for concurrent use.
type Renderer struct {
	pipeline *Pipeline
	workers  int
	strict   bool

	asm        Assembler
	candidates []mesh.Triangle
}

// NewRenderer returns a renderer with the given options applied.
func NewRenderer(opts ...Option) (*Renderer, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	p, err := newPipeline(&o)
	if err != nil {
		return nil, err
	}
	return &Renderer{
		pipeline: p,
		workers:  max(o.workers, 1),
		strict:   o.strict,
	}, nil
}

// Pipeline returns the per-triangle pipeline used by the renderer.
func (r *Renderer) Pipeline() *Pipeline {
	return r.pipeline
}

// Render renders mesh m with the matrices and viewport of f.
//
// Triangles with degenerate geometry are skipped and counted, unless the
// renderer was created with [WithStrictGeometry].  An empty mesh gives an
// empty result.
func (r *Renderer) Render(m *mesh.Mesh, f *Frame) (*Output, error) {
	if !validSize(f.Width, f.Height) {
		return nil, ErrViewport
	}

	var res chunk
	var err error
	if r.workers > 1 && m.Len() > 1 {
		res, err = r.transformParallel(m, f)
	} else {
		res, err = r.transformRange(r.candidates[:0], m, f, 0, m.Len())
	}
	if err != nil {
		return nil, err
	}
	r.candidates = res.tris

	out := &Output{
		Candidates: len(res.tris),
		Culled:     res.culled,
		Skipped:    res.skipped,
	}
	out.Triangles = r.asm.Assemble(nil, res.tris, f.Width, f.Height)

	Logger().Debug("frame rendered",
		"triangles", m.Len(),
		"culled", out.Culled,
		"skipped", out.Skipped,
		"candidates", out.Candidates,
		"drawable", len(out.Triangles))
	return out, nil
}

// chunk collects the pipeline output for a range of mesh triangles.
type chunk struct {
	tris    []mesh.Triangle
	culled  int
	skipped int
}

func (r *Renderer) transformRange(dst []mesh.Triangle, m *mesh.Mesh, f *Frame, lo, hi int) (chunk, error) {
	res := chunk{tris: dst}
	for i := lo; i < hi; i++ {
		var visible bool
		var err error
		res.tris, visible, err = r.pipeline.Transform(res.tris, m.Triangle(i), f)
		switch {
		case err != nil && (r.strict || !isSkippable(err)):
			return chunk{}, fmt.Errorf("triangle %d: %w", i, err)
		case err != nil:
			res.skipped++
			Logger().Debug("triangle skipped", "index", i, "error", err)
		case !visible:
			res.culled++
		}
	}
	return res, nil
}

// transformParallel splits the mesh into contiguous ranges, one per worker,
// and joins the results in mesh order.
func (r *Renderer) transformParallel(m *mesh.Mesh, f *Frame) (chunk, error) {
	n := m.Len()
	workers := min(r.workers, n)
	parts := make([]chunk, workers)

	var g errgroup.Group
	for w := range workers {
		lo, hi := n*w/workers, n*(w+1)/workers
		g.Go(func() error {
			var err error
			parts[w], err = r.transformRange(nil, m, f, lo, hi)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return chunk{}, err
	}

	res := chunk{tris: r.candidates[:0]}
	for _, p := range parts {
		res.tris = append(res.tris, p.tris...)
		res.culled += p.culled
		res.skipped += p.skipped
	}
	return res, nil
}
