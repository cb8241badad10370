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

// Command viewer shows a Wavefront OBJ mesh in an interactive window.
//
// Arrow keys move the camera along the world X and Y axes, W, A, S and D
// move it relative to the viewing direction, and the mouse position
// controls where the camera looks.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"seehuhn.de/go/render3d"
	"seehuhn.de/go/render3d/internal/control"
	"seehuhn.de/go/render3d/math3d"
	"seehuhn.de/go/render3d/mesh"
	"seehuhn.de/go/render3d/raster"
)

func main() {
	var (
		inPath  = flag.String("in", "", "input mesh (.obj)")
		width   = flag.Int("w", 800, "initial window width")
		height  = flag.Int("h", 600, "initial window height")
		workers = flag.Int("workers", 4, "number of transform goroutines")
		verbose = flag.Bool("v", false, "log debug messages")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	render3d.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))

	// a missing mesh gives an empty scene, with a warning in the log
	m := mesh.LoadOrEmpty(*inPath)

	r, err := render3d.NewRenderer(render3d.WithWorkers(*workers))
	if err != nil {
		fatalf("%v", err)
	}

	g := &viewer{
		mesh:     m,
		renderer: r,
		cam:      render3d.Camera{Position: math3d.Point(0, 0, 0)},
		width:    *width,
		height:   *height,
	}
	ebiten.SetWindowTitle("render3d viewer")
	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)
	if err := ebiten.RunGame(g); err != nil {
		fatalf("%v", err)
	}
}

type viewer struct {
	mesh     *mesh.Mesh
	renderer *render3d.Renderer
	cam      render3d.Camera

	width, height int

	canvas *raster.Canvas
	img    *ebiten.Image
}

func (g *viewer) Update() error {
	x, y := ebiten.CursorPosition()
	in := control.Input{
		Up:      ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Down:    ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		Left:    ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right:   ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Forward: ebiten.IsKeyPressed(ebiten.KeyW),
		Back:    ebiten.IsKeyPressed(ebiten.KeyS),
		StrafeL: ebiten.IsKeyPressed(ebiten.KeyA),
		StrafeR: ebiten.IsKeyPressed(ebiten.KeyD),
		MouseX:  x,
		MouseY:  y,
	}
	control.Step(&g.cam, in, 1/float64(ebiten.TPS()), g.width, g.height)
	return nil
}

func (g *viewer) Draw(screen *ebiten.Image) {
	if g.canvas == nil || g.canvas.Image.Bounds().Dx() != g.width || g.canvas.Image.Bounds().Dy() != g.height {
		g.canvas = raster.NewCanvas(g.width, g.height)
		if g.img != nil {
			g.img.Deallocate()
		}
		g.img = ebiten.NewImage(g.width, g.height)
	}

	// the frame is rebuilt every time, so that the projection follows the
	// window size
	f, err := render3d.NewFrame(g.cam, float64(g.width), float64(g.height))
	if err != nil {
		render3d.Logger().Debug("no frame", "error", err)
		return
	}
	out, err := g.renderer.Render(g.mesh, f)
	if err != nil {
		render3d.Logger().Warn("frame failed", "error", err)
		return
	}

	g.canvas.Clear(color.Black)
	g.canvas.DrawTriangles(out.Triangles)
	g.img.WritePixels(g.canvas.Image.Pix)
	screen.DrawImage(g.img, nil)
}

func (g *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = max(outsideWidth, 1), max(outsideHeight, 1)
	return g.width, g.height
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}
