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

package raster

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/render3d/mesh"
)

// Canvas is an RGBA image which screen space triangles are painted onto.
type Canvas struct {
	Image *image.RGBA

	r    *Rasteriser
	path path.Data
}

// NewCanvas allocates a canvas of the given size in pixels.
func NewCanvas(width, height int) *Canvas {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	return &Canvas{
		Image: img,
		r:     NewRasteriser(bounds(img)),
	}
}

func bounds(img *image.RGBA) rect.Rect {
	b := img.Bounds()
	return rect.Rect{
		LLx: float64(b.Min.X),
		LLy: float64(b.Min.Y),
		URx: float64(b.Max.X),
		URy: float64(b.Max.Y),
	}
}

// Clear fills the whole canvas with bg.
func (c *Canvas) Clear(bg color.Color) {
	draw.Draw(c.Image, c.Image.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
}

// SetScale sets the factor from triangle coordinates to canvas pixels.
// This is used to render at a multiple of the viewport size, for
// supersampling.
func (c *Canvas) SetScale(s float64) {
	c.r.CTM = matrix.Matrix{s, 0, 0, s, 0, 0}
}

// DrawTriangles paints tris in order, so that later triangles cover earlier
// ones.  Colours are blended source-over using the triangle alpha.
func (c *Canvas) DrawTriangles(tris []mesh.Triangle) {
	for _, t := range tris {
		pts := t.Screen()
		c.path.Cmds = c.path.Cmds[:0]
		c.path.Coords = c.path.Coords[:0]
		c.path.MoveTo(pts[0]).LineTo(pts[1]).LineTo(pts[2]).Close()

		col := t.Color
		c.r.FillNonZero(&c.path, func(y, xMin int, coverage []float32) {
			c.blendRow(y, xMin, coverage, col)
		})
	}
}

// blendRow composites col over one row of pixels, scaled by coverage.
func (c *Canvas) blendRow(y, xMin int, coverage []float32, col color.NRGBA) {
	img := c.Image
	i := img.PixOffset(xMin, y)
	row := img.Pix[i : i+4*len(coverage)]
	for k, cov := range coverage {
		a := cov * float32(col.A) / 255
		if a <= 0 {
			continue
		}
		px := row[4*k : 4*k+4 : 4*k+4]
		px[0] = blend(px[0], col.R, a)
		px[1] = blend(px[1], col.G, a)
		px[2] = blend(px[2], col.B, a)
		px[3] = uint8(float32(px[3])*(1-a) + 255*a + 0.5)
	}
}

// blend computes dst*(1-a) + src*a for a premultiplied destination.
func blend(dst, src uint8, a float32) uint8 {
	return uint8(float32(dst)*(1-a) + float32(src)*a + 0.5)
}

// Image paints tris on a black background and returns the result.
// For supersample > 1 the triangles are drawn at that multiple of the
// requested size and scaled down with [Downsample].
func Image(tris []mesh.Triangle, width, height, supersample int) *image.RGBA {
	ss := max(supersample, 1)
	c := NewCanvas(width*ss, height*ss)
	c.Clear(color.Black)
	c.SetScale(float64(ss))
	c.DrawTriangles(tris)
	if ss == 1 {
		return c.Image
	}
	return Downsample(c.Image, width, height)
}

// Downsample scales img to the given size with a Catmull-Rom filter.
func Downsample(img *image.RGBA, width, height int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}
