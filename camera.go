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
	"seehuhn.de/go/render3d/math3d"
)

// ScreenUp is the up vector used to build the view matrix.
// Pixel rows grow downwards, so the camera basis is built against -Y to
// show the scene upright.
var ScreenUp = math3d.Vec4{Y: -1}

// Camera is the viewer position and orientation.
//
// The camera is owned and updated by the caller, typically from user input.
// The rendering code only reads it.
type Camera struct {
	Position math3d.Vec4

	// Yaw is the rotation about the Y axis, in radians.
	Yaw float64

	// Pitch is the rotation about the X axis, in radians.  Pitch is applied
	// before Yaw.
	Pitch float64
}

func (c Camera) rotation() math3d.Matrix {
	return math3d.RotateX(c.Pitch).Mul(math3d.RotateY(c.Yaw))
}

// Look returns the unit viewing direction.
func (c Camera) Look() math3d.Vec4 {
	return math3d.Point(0, 0, 1).Transform(c.rotation())
}

// Right returns the unit vector (1, 0, 0) rotated like the viewing
// direction.  With [ScreenUp] as the up vector, it points towards the left
// edge of the image.
func (c Camera) Right() math3d.Vec4 {
	return math3d.Point(1, 0, 0).Transform(c.rotation())
}

// View returns the view matrix, which maps world coordinates to camera
// coordinates with the camera looking along +Z.
func (c Camera) View(up math3d.Vec4) (math3d.Matrix, error) {
	target := c.Position.Add(c.Look())
	cam, err := math3d.PointAt(c.Position, target, up)
	if err != nil {
		return math3d.Matrix{}, err
	}
	return math3d.QuickInverse(cam).Matrix(), nil
}
