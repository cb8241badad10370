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

package control

import (
	"math"
	"testing"

	"seehuhn.de/go/render3d"
	"seehuhn.de/go/render3d/math3d"
)

func TestStepArrows(t *testing.T) {
	cases := []struct {
		in   Input
		want math3d.Vec4
	}{
		{Input{Up: true}, math3d.Point(0, 4, 0)},
		{Input{Down: true}, math3d.Point(0, -4, 0)},
		{Input{Left: true}, math3d.Point(4, 0, 0)},
		{Input{Right: true}, math3d.Point(-4, 0, 0)},
		{Input{Up: true, Down: true}, math3d.Point(0, 0, 0)},
	}
	for _, c := range cases {
		cam := render3d.Camera{Position: math3d.Point(0, 0, 0)}
		Step(&cam, c.in, 0.5, 100, 100)
		if cam.Position != c.want {
			t.Errorf("%+v: position %v, want %v", c.in, cam.Position, c.want)
		}
	}
}

func TestStepWASD(t *testing.T) {
	cam := render3d.Camera{Position: math3d.Point(1, 2, 3), Yaw: math.Pi / 2}
	Step(&cam, Input{Forward: true}, 0.25, 100, 100)
	want := math3d.Point(3, 2, 3)
	if d := cam.Position.Sub(want).Length(); d > 1e-12 {
		t.Errorf("forward: position %v, want %v", cam.Position, want)
	}

	Step(&cam, Input{StrafeL: true}, 0.25, 100, 100)
	want = math3d.Point(3, 2, 1)
	if d := cam.Position.Sub(want).Length(); d > 1e-12 {
		t.Errorf("sideways: position %v, want %v", cam.Position, want)
	}
	if cam.Position.W != 1 {
		t.Errorf("W = %g, want 1", cam.Position.W)
	}
}

func TestStepMouse(t *testing.T) {
	cam := render3d.Camera{Yaw: 1, Pitch: 1}
	Step(&cam, Input{MouseX: 50, MouseY: 40}, 0, 100, 80)
	if cam.Yaw != 0 || cam.Pitch != 0 {
		t.Errorf("centred mouse gives yaw %g, pitch %g", cam.Yaw, cam.Pitch)
	}

	// a quarter of the way from the centre to the right edge
	Step(&cam, Input{MouseX: 75, MouseY: 40}, 0, 100, 80)
	if want := -2 * math.Asin(0.5); math.Abs(cam.Yaw-want) > 1e-12 {
		t.Errorf("yaw %g, want %g", cam.Yaw, want)
	}

	// outside the window the orientation is kept
	Step(&cam, Input{MouseX: -5, MouseY: 40}, 0, 100, 80)
	if want := -2 * math.Asin(0.5); math.Abs(cam.Yaw-want) > 1e-12 {
		t.Errorf("yaw changed to %g outside the window", cam.Yaw)
	}
}
