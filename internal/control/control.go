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

// Package control turns keyboard and mouse state into camera movement.
package control

import (
	"math"

	"seehuhn.de/go/render3d"
	"seehuhn.de/go/render3d/math3d"
)

// Speed is the camera movement speed in world units per second.
const Speed = 8.0

// Input is the state of the keyboard and mouse for one update.
type Input struct {
	Up, Down, Left, Right bool // arrow keys
	Forward, Back         bool // W, S
	StrafeL, StrafeR      bool // A, D

	MouseX, MouseY int
}

// Step moves and turns the camera according to in, for a time step of dt
// seconds in a window of the given size.
//
// Arrow keys move along the world X and Y axes, W and S along the viewing
// direction, A and D sideways.  While the mouse is inside the window, its
// offset from the centre selects yaw and pitch.
func Step(cam *render3d.Camera, in Input, dt float64, width, height int) {
	d := Speed * dt

	var move math3d.Vec4
	if in.Up {
		move.Y += d
	}
	if in.Down {
		move.Y -= d
	}
	if in.Left {
		move.X += d
	}
	if in.Right {
		move.X -= d
	}

	look := cam.Look().Mul(d)
	side := cam.Right().Mul(d)
	if in.Forward {
		move = move.Add(look)
	}
	if in.Back {
		move = move.Sub(look)
	}
	if in.StrafeL {
		move = move.Add(side)
	}
	if in.StrafeR {
		move = move.Sub(side)
	}
	cam.Position = cam.Position.Add(move)

	if in.MouseX > 0 && in.MouseX < width && in.MouseY > 0 && in.MouseY < height {
		cam.Yaw = -mouseAngle(in.MouseX, width)
		cam.Pitch = mouseAngle(in.MouseY, height)
	}
}

// mouseAngle maps a position in [0, size] to an angle in [-π, π], with
// the window centre at zero.
func mouseAngle(pos, size int) float64 {
	half := float64(size) / 2
	return 2 * math.Asin((float64(pos)-half)/half)
}
