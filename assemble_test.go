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
	"image/color"
	"math"
	"testing"

	"seehuhn.de/go/render3d/math3d"
	"seehuhn.de/go/render3d/mesh"
)

func flatTriangle(z float64) mesh.Triangle {
	return mesh.Triangle{P: [3]math3d.Vec4{
		math3d.Point(0, 0, z),
		math3d.Point(1, 0, z),
		math3d.Point(0, 1, z),
	}}
}

func triangleArea(t mesh.Triangle) float64 {
	return t.P[1].Sub(t.P[0]).Cross(t.P[2].Sub(t.P[0])).Length() / 2
}

func TestSortByDepth(t *testing.T) {
	tris := []mesh.Triangle{flatTriangle(1), flatTriangle(5), flatTriangle(3)}
	SortByDepth(tris)
	for i, want := range []float64{5, 3, 1} {
		if got := tris[i].AverageZ(); got != want {
			t.Errorf("position %d: depth %g, want %g", i, got, want)
		}
	}
}

func TestSortByDepthAverage(t *testing.T) {
	// a triangle with a far vertex but a near average sorts in front
	a := mesh.Triangle{P: [3]math3d.Vec4{
		math3d.Point(0, 0, 0), math3d.Point(1, 0, 0), math3d.Point(0, 1, 9),
	}}
	b := flatTriangle(4)
	tris := []mesh.Triangle{a, b}
	SortByDepth(tris)
	if tris[0] != b {
		t.Errorf("expected the triangle with average depth 4 first")
	}
}

func TestSortByDepthStable(t *testing.T) {
	tris := make([]mesh.Triangle, 5)
	for i := range tris {
		tris[i] = flatTriangle(2)
		tris[i].Color = color.NRGBA{R: uint8(i)}
	}
	SortByDepth(tris)
	for i := range tris {
		if tris[i].Color.R != uint8(i) {
			t.Fatalf("equal depths were reordered")
		}
	}
}

func TestClipToScreenOutside(t *testing.T) {
	var a Assembler
	cases := []mesh.Triangle{
		{P: [3]math3d.Vec4{math3d.Point(-5, 10, 0), math3d.Point(-1, 20, 0), math3d.Point(-3, 40, 0)}},  // left
		{P: [3]math3d.Vec4{math3d.Point(10, -5, 0), math3d.Point(20, -1, 0), math3d.Point(40, -3, 0)}},  // top
		{P: [3]math3d.Vec4{math3d.Point(120, 10, 0), math3d.Point(130, 20, 0), math3d.Point(140, 5, 0)}}, // right
		{P: [3]math3d.Vec4{math3d.Point(10, 80, 0), math3d.Point(20, 90, 0), math3d.Point(30, 85, 0)}},  // bottom
	}
	for i, tri := range cases {
		if out := a.ClipToScreen(nil, tri, 100, 80); len(out) != 0 {
			t.Errorf("case %d: got %d triangles, want 0", i, len(out))
		}
	}
}

func TestClipToScreenInside(t *testing.T) {
	var a Assembler
	tri := mesh.Triangle{
		P:     [3]math3d.Vec4{math3d.Point(10, 10, 0.5), math3d.Point(50, 20, 0.5), math3d.Point(30, 60, 0.5)},
		Color: color.NRGBA{R: 1, G: 2, B: 3, A: 4},
	}
	out := a.ClipToScreen(nil, tri, 100, 80)
	if len(out) != 1 || out[0] != tri {
		t.Errorf("got %v, want the input triangle", out)
	}
}

func TestClipToScreenCovering(t *testing.T) {
	const width, height = 100, 80
	var a Assembler
	huge := mesh.Triangle{P: [3]math3d.Vec4{
		math3d.Point(-1000, -1000, 0),
		math3d.Point(-1000, 3000, 0),
		math3d.Point(3000, -1000, 0),
	}}
	out := a.ClipToScreen(nil, huge, width, height)
	if len(out) == 0 {
		t.Fatal("no triangles")
	}

	var total float64
	for _, tri := range out {
		total += triangleArea(tri)
		for _, v := range tri.P {
			if v.X < -1e-9 || v.X > width-1+1e-9 || v.Y < -1e-9 || v.Y > height-1+1e-9 {
				t.Errorf("vertex %v outside the viewport", v)
			}
		}
	}
	want := float64((width - 1) * (height - 1))
	if math.Abs(total-want) > 1e-6 {
		t.Errorf("covered area %g, want %g", total, want)
	}
}

func TestClipToScreenCorner(t *testing.T) {
	const width, height = 100, 80
	var a Assembler
	// right triangle with legs 40, its corner cut by the left and top edges
	tri := mesh.Triangle{P: [3]math3d.Vec4{
		math3d.Point(-10, -10, 0),
		math3d.Point(-10, 30, 0),
		math3d.Point(30, -10, 0),
	}}
	out := a.ClipToScreen(nil, tri, width, height)

	var total float64
	for _, tri := range out {
		total += triangleArea(tri)
	}
	// the part with x, y >= 0 is a right triangle with legs 20
	if math.Abs(total-200) > 1e-9 {
		t.Errorf("covered area %g, want 200", total)
	}
}

func TestAssemble(t *testing.T) {
	var a Assembler
	candidates := []mesh.Triangle{
		{P: [3]math3d.Vec4{math3d.Point(10, 10, 0.25), math3d.Point(20, 10, 0.25), math3d.Point(10, 20, 0.25)}},
		{P: [3]math3d.Vec4{math3d.Point(-30, 10, 0.9), math3d.Point(-20, 10, 0.9), math3d.Point(-30, 20, 0.9)}},
		{P: [3]math3d.Vec4{math3d.Point(-5, 10, 0.5), math3d.Point(20, 10, 0.5), math3d.Point(-5, 20, 0.5)}},
	}
	out := a.Assemble(nil, candidates, 100, 80)

	// the second candidate is off-screen, the third one is clipped at x=0
	if len(out) < 2 {
		t.Fatalf("got %d triangles", len(out))
	}
	if out[0].AverageZ() != 0.5 {
		t.Errorf("first triangle at depth %g, want 0.5", out[0].AverageZ())
	}
	if last := out[len(out)-1]; last.AverageZ() != 0.25 {
		t.Errorf("last triangle at depth %g, want 0.25", last.AverageZ())
	}
	for i := 1; i < len(out); i++ {
		if out[i].AverageZ() > out[i-1].AverageZ() {
			t.Errorf("output not back to front at %d", i)
		}
	}
}
