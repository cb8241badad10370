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

// Command render3d renders a Wavefront OBJ mesh to a PNG or PDF file.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"

	"seehuhn.de/go/render3d"
	"seehuhn.de/go/render3d/math3d"
	"seehuhn.de/go/render3d/mesh"
	"seehuhn.de/go/render3d/raster"
)

func main() {
	var (
		inPath  = flag.String("in", "", "input mesh (.obj)")
		outPath = flag.String("o", "out.png", "output file (.png or .pdf)")
		width   = flag.Int("w", 800, "image width in pixels")
		height  = flag.Int("h", 600, "image height in pixels")
		camX    = flag.Float64("x", 0, "camera position, X")
		camY    = flag.Float64("y", 0, "camera position, Y")
		camZ    = flag.Float64("z", 0, "camera position, Z")
		yaw     = flag.Float64("yaw", 0, "camera yaw in degrees")
		pitch   = flag.Float64("pitch", 0, "camera pitch in degrees")
		ss      = flag.Int("ss", 4, "supersampling factor for PNG output")
		workers = flag.Int("workers", 1, "number of transform goroutines")
		strict  = flag.Bool("strict", false, "fail on degenerate triangles")
		verbose = flag.Bool("v", false, "log debug messages")
	)
	flag.Parse()

	if *inPath == "" {
		fatalf("usage: render3d -in mesh.obj [-o out.png|out.pdf] [-w 800] [-h 600] [-x 0 -y 0 -z 0] [-yaw 0] [-pitch 0]")
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	render3d.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))

	m, err := mesh.Load(*inPath)
	if err != nil {
		fatalf("%v", err)
	}

	cam := render3d.Camera{
		Position: math3d.Point(*camX, *camY, *camZ),
		Yaw:      *yaw * math.Pi / 180,
		Pitch:    *pitch * math.Pi / 180,
	}
	f, err := render3d.NewFrame(cam, float64(*width), float64(*height))
	if err != nil {
		fatalf("%v", err)
	}

	r, err := render3d.NewRenderer(
		render3d.WithWorkers(*workers),
		render3d.WithStrictGeometry(*strict),
	)
	if err != nil {
		fatalf("%v", err)
	}
	out, err := r.Render(m, f)
	if err != nil {
		fatalf("%s: %v", *inPath, err)
	}

	switch strings.ToLower(filepath.Ext(*outPath)) {
	case ".pdf":
		err = raster.WritePDF(*outPath, out.Triangles, *width, *height)
	case ".png":
		err = writePNG(*outPath, out, *width, *height, *ss)
	default:
		fatalf("%s: unsupported output format", *outPath)
	}
	if err != nil {
		fatalf("%v", err)
	}

	render3d.Logger().Info("image written",
		"file", *outPath,
		"triangles", len(out.Triangles),
		"culled", out.Culled,
		"skipped", out.Skipped)
}

func writePNG(fname string, out *render3d.Output, width, height, ss int) error {
	img := raster.Image(out.Triangles, width, height, ss)

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

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}
