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

// Command genpdf renders all test scenes to PDF and PNG files.
//
// The PDF files contain the drawable triangles as vector fills; the PNG
// files are produced by the raster package.  With -gs, the PDF files are
// also rendered to PNG by Ghostscript, for visual comparison of the two
// rasterisations.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/render3d"
	"seehuhn.de/go/render3d/mesh"
	"seehuhn.de/go/render3d/raster"
	"seehuhn.de/go/render3d/testcases"
)

const outDir = "testdata/scenes"

// supersample is the linear oversampling factor for the PNG output.
const supersample = 4

func main() {
	useGS := flag.Bool("gs", false, "also render the PDF files using Ghostscript")
	flag.Parse()

	if err := os.MkdirAll(outDir, 0755); err != nil {
		panic(err)
	}

	r, err := render3d.NewRenderer()
	if err != nil {
		panic(err)
	}
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, sc := range testcases.All[category] {
			name := category + "_" + sc.Name
			base := filepath.Join(outDir, name)

			tris, err := renderScene(r, &sc)
			if err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			if err := raster.WritePDF(base+".pdf", tris, sc.Width, sc.Height); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			if err := writePNG(base+".png", tris, sc.Width, sc.Height); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			if *useGS {
				if err := renderGS(base+".pdf", base+"_gs.png"); err != nil {
					panic(fmt.Errorf("%s: %w", name, err))
				}
			}
		}
	}
}

func renderScene(r *render3d.Renderer, sc *testcases.Scene) ([]mesh.Triangle, error) {
	m, err := sc.Mesh()
	if err != nil {
		return nil, err
	}
	cam := render3d.Camera{Position: sc.Position, Yaw: sc.Yaw, Pitch: sc.Pitch}
	f, err := render3d.NewFrame(cam, float64(sc.Width), float64(sc.Height))
	if err != nil {
		return nil, err
	}
	f.World = sc.World

	out, err := r.Render(m, f)
	if err != nil {
		return nil, err
	}
	return out.Triangles, nil
}

func writePNG(fname string, tris []mesh.Triangle, width, height int) error {
	img := raster.Image(tris, width, height, supersample)

	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	err = png.Encode(f, img)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

func renderGS(pdfPath, pngPath string) error {
	// -sDEVICE=png16m: 24-bit RGB
	// -r72: 72 DPI (1 point = 1 pixel)
	// -dGraphicsAlphaBits=4: 4x supersampling for anti-aliasing
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=png16m",
		"-r72",
		"-dGraphicsAlphaBits=4",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
