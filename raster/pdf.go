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
	"image/color"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	pdfcolor "seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/render3d/mesh"
)

// WritePDF writes tris as vector fills on a black page of the given size,
// one PDF point per pixel.
func WritePDF(fname string, tris []mesh.Triangle, width, height int) error {
	paper := &pdf.Rectangle{
		URx: float64(width),
		URy: float64(height),
	}
	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(pdfcolor.DeviceGray(0))
	page.Rectangle(0, 0, float64(width), float64(height))
	page.Fill()

	// PDF origin is bottom-left, pixel rows grow downwards.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(height)})

	var p path.Data
	for _, t := range tris {
		pts := t.Screen()
		p.Cmds = p.Cmds[:0]
		p.Coords = p.Coords[:0]
		p.MoveTo(pts[0]).LineTo(pts[1]).LineTo(pts[2]).Close()

		r, g, b := premultiplied(t.Color)
		page.SetFillColor(pdfcolor.DeviceRGB(r, g, b))
		k := 0
		for _, cmd := range p.Cmds {
			switch cmd {
			case path.CmdMoveTo:
				page.MoveTo(p.Coords[k].X, p.Coords[k].Y)
				k++
			case path.CmdLineTo:
				page.LineTo(p.Coords[k].X, p.Coords[k].Y)
				k++
			case path.CmdClose:
				page.ClosePath()
			}
		}
		page.Fill()
	}

	return page.Close()
}

// premultiplied returns the colour components in [0, 1], composited
// against black.
func premultiplied(c color.NRGBA) (r, g, b float64) {
	a := float64(c.A) / 255
	return float64(c.R) / 255 * a, float64(c.G) / 255 * a, float64(c.B) / 255 * a
}
