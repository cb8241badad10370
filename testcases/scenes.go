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

package testcases

import (
	"math"

	"seehuhn.de/go/render3d/math3d"
)

// Cube is the unit cube [0,1]³ with outward facing triangles.
const Cube = `# unit cube
v 0 0 0
v 0 1 0
v 1 1 0
v 1 0 0
v 1 1 1
v 1 0 1
v 0 1 1
v 0 0 1
f 1 2 3
f 1 3 4
f 4 3 5
f 4 5 6
f 6 5 7
f 6 7 8
f 8 7 2
f 8 2 1
f 2 7 5
f 2 5 3
f 6 8 1
f 6 1 4
`

// Tetrahedron is a regular tetrahedron centred at the origin.
const Tetrahedron = `v 1 1 1
v 1 -1 -1
v -1 1 -1
v -1 -1 1
f 1 2 3
f 1 4 2
f 1 3 4
f 2 4 3
`

// floor is a 10×12 rectangle at y = -1 facing up.
const floor = `v -5 -1 -2
v -5 -1 10
v 5 -1 10
v 5 -1 -2
f 1 2 3
f 1 3 4
`

// wall is a 40×40 square at z = 3 facing the origin.
const wall = `v -20 -20 3
v -20 20 3
v 20 20 3
v 20 -20 3
f 1 2 3
f 1 3 4
`

// centred moves the unit cube so that its centre is at the origin.
var centred = math3d.Translate(-0.5, -0.5, -0.5)

var basicScenes = []Scene{
	{
		Name:     "cube_front",
		Source:   Cube,
		World:    math3d.Translate(0, 0, 8),
		Width:    160,
		Height:   120,
		Position: math3d.Point(0, 0, 0),
		Culled:   10,
	},
	{
		Name:     "cube_rotated",
		Source:   Cube,
		World:    centred.Mul(math3d.RotateZ(0.4)).Mul(math3d.RotateX(0.7)).Mul(math3d.Translate(0, 0, 4)),
		Width:    160,
		Height:   120,
		Position: math3d.Point(0, 0, 0),
		Culled:   -1,
	},
	{
		Name:     "cube_yaw",
		Source:   Cube,
		World:    centred,
		Width:    128,
		Height:   128,
		Position: math3d.Point(-3, 0, -3),
		Yaw:      math.Pi / 4, // looking at the origin
		Culled:   -1,
	},
	{
		Name:     "tetrahedron",
		Source:   Tetrahedron,
		World:    math3d.RotateY(0.3).Mul(math3d.Translate(0, 0, 5)),
		Width:    128,
		Height:   96,
		Position: math3d.Point(0, 0, 0),
		Culled:   -1,
	},
}

var clipScenes = []Scene{
	{
		Name:     "near_floor",
		Source:   floor,
		World:    math3d.Identity(),
		Width:    160,
		Height:   120,
		Position: math3d.Point(0, 0, 0),
		Culled:   0,
	},
	{
		Name:     "edge_wall",
		Source:   wall,
		World:    math3d.Identity(),
		Width:    64,
		Height:   48,
		Position: math3d.Point(0, 0, 0),
		Culled:   0,
	},
	{
		Name:     "near_cube",
		Source:   Cube,
		World:    centred.Mul(math3d.RotateY(math.Pi / 4)).Mul(math3d.Translate(0, 0, 0.75)),
		Width:    96,
		Height:   96,
		Position: math3d.Point(0, 0, 0),
		Culled:   8,
	},
}
