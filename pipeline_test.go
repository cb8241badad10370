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
	"errors"
	"image/color"
	"math"
	"testing"

	"seehuhn.de/go/render3d/math3d"
	"seehuhn.de/go/render3d/mesh"
)

// axisFrame returns a frame for a camera at the origin looking along +Z,
// with the model placed in world space as given.
func axisFrame(t *testing.T, width, height float64) *Frame {
	t.Helper()
	f, err := NewFrame(Camera{Position: math3d.Point(0, 0, 0)}, width, height)
	if err != nil {
		t.Fatal(err)
	}
	f.World = math3d.Identity()
	return f
}

func facingTriangle(z float64) mesh.Triangle {
	return mesh.Triangle{
		P: [3]math3d.Vec4{
			math3d.Point(-1, -1, z),
			math3d.Point(0, 1, z),
			math3d.Point(1, -1, z),
		},
		Color: color.NRGBA{A: 77},
	}
}

func TestTransformCentred(t *testing.T) {
	const width, height = 800, 600
	f := axisFrame(t, width, height)
	p, err := NewPipeline()
	if err != nil {
		t.Fatal(err)
	}

	out, visible, err := p.Transform(nil, facingTriangle(8), f)
	if err != nil {
		t.Fatal(err)
	}
	if !visible || len(out) != 1 {
		t.Fatalf("visible=%t, %d triangles; want one visible triangle", visible, len(out))
	}

	var cx, cy float64
	for _, v := range out[0].P {
		cx += v.X / 3
		cy += v.Y / 3
	}
	if math.Abs(cx-width/2) > 0.05*width || math.Abs(cy-height/2) > 0.05*height {
		t.Errorf("centroid at (%g, %g), want near (%d, %d)", cx, cy, width/2, height/2)
	}
	for _, v := range out[0].P {
		if v.W != 8 {
			t.Errorf("projected weight %g, want 8", v.W)
		}
	}
}

func TestTransformBackface(t *testing.T) {
	f := axisFrame(t, 800, 600)
	p, err := NewPipeline()
	if err != nil {
		t.Fatal(err)
	}

	tri := facingTriangle(8)
	tri.P[1], tri.P[2] = tri.P[2], tri.P[1]

	out, visible, err := p.Transform(nil, tri, f)
	if err != nil {
		t.Fatal(err)
	}
	if visible || len(out) != 0 {
		t.Errorf("reversed triangle was not culled: %v", out)
	}
}

func TestTransformLighting(t *testing.T) {
	f := axisFrame(t, 100, 100)

	cases := []struct {
		name  string
		light math3d.Vec4
		want  color.NRGBA
	}{
		{"default", DefaultLight, color.NRGBA{R: 134, G: 0, B: 134, A: 77}},
		{"head on", math3d.Vec4{Z: -1}, color.NRGBA{R: 150, G: 0, B: 150, A: 77}},
		{"behind", math3d.Vec4{Z: 1}, color.NRGBA{R: 15, G: 0, B: 15, A: 77}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p, err := NewPipeline(WithLight(c.light))
			if err != nil {
				t.Fatal(err)
			}
			out, _, err := p.Transform(nil, facingTriangle(5), f)
			if err != nil {
				t.Fatal(err)
			}
			if len(out) != 1 {
				t.Fatalf("got %d triangles, want 1", len(out))
			}
			if out[0].Color != c.want {
				t.Errorf("colour %v, want %v", out[0].Color, c.want)
			}
		})
	}
}

func TestShadeClamps(t *testing.T) {
	got := shade(color.NRGBA{R: 200, G: 100, B: 0, A: 1}, 2, 9)
	want := color.NRGBA{R: 255, G: 200, B: 0, A: 9}
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestTransformNearClip(t *testing.T) {
	proj, err := math3d.Project(90, 1, 0.1, 1000)
	if err != nil {
		t.Fatal(err)
	}
	f := &Frame{
		World:      math3d.Identity(),
		View:       math3d.Identity(),
		Projection: proj,
		Camera:     math3d.Point(0, 0, 0),
		Width:      100,
		Height:     100,
	}
	p, err := NewPipeline()
	if err != nil {
		t.Fatal(err)
	}

	// two vertices in front of the camera, one behind
	tri := mesh.Triangle{P: [3]math3d.Vec4{
		math3d.Point(-1, -1, 5),
		math3d.Point(0, 1, 5),
		math3d.Point(1, -1, -1),
	}}
	out, visible, err := p.Transform(nil, tri, f)
	if err != nil {
		t.Fatal(err)
	}
	if !visible || len(out) != 2 {
		t.Fatalf("visible=%t, %d triangles; want 2", visible, len(out))
	}
	for _, res := range out {
		for _, v := range res.P {
			if v.W < DefaultNearZ-1e-12 {
				t.Errorf("vertex %v lies in front of the near plane", v)
			}
			if v.Z < -1e-12 || v.Z > 1 {
				t.Errorf("depth %g outside [0, 1]", v.Z)
			}
		}
	}

	// entirely behind the camera
	for i := range tri.P {
		tri.P[i].Z = -tri.P[i].Z - 10
	}
	tri.P[1], tri.P[2] = tri.P[2], tri.P[1]
	out, _, err = p.Transform(nil, tri, f)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 0 {
		t.Errorf("got %d triangles behind the camera", len(out))
	}
}

func TestTransformDegenerate(t *testing.T) {
	f := axisFrame(t, 100, 100)
	p, err := NewPipeline()
	if err != nil {
		t.Fatal(err)
	}
	tri := mesh.Triangle{P: [3]math3d.Vec4{
		math3d.Point(0, 0, 5),
		math3d.Point(1, 1, 5),
		math3d.Point(2, 2, 5),
	}}
	dst := []mesh.Triangle{{}}
	out, _, err := p.Transform(dst, tri, f)
	var degenerate *math3d.DegenerateVectorError
	if !errors.As(err, &degenerate) {
		t.Errorf("expected DegenerateVectorError, got %v", err)
	}
	if len(out) != 1 {
		t.Errorf("dst modified on error")
	}
}

func TestTransformZeroW(t *testing.T) {
	f := &Frame{
		World:  math3d.Identity(),
		View:   math3d.Identity(),
		Camera: math3d.Point(0, 0, 0),
		Width:  100,
		Height: 100,
		// zero projection matrix
	}
	p, err := NewPipeline()
	if err != nil {
		t.Fatal(err)
	}
	out, _, err := p.Transform(nil, facingTriangle(5), f)
	if !errors.Is(err, ErrZeroW) {
		t.Errorf("expected ErrZeroW, got %v", err)
	}
	if len(out) != 0 {
		t.Errorf("got %d triangles on error", len(out))
	}
}

func TestNewPipelineErrors(t *testing.T) {
	if _, err := NewPipeline(WithLight(math3d.Vec4{})); err == nil {
		t.Error("zero light direction accepted")
	}
	if _, err := NewPipeline(WithNearPlane(0)); err == nil {
		t.Error("zero near plane accepted")
	}
	if _, err := NewPipeline(WithNearPlane(math.NaN())); err == nil {
		t.Error("NaN near plane accepted")
	}
}
