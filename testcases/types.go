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
	"strings"

	"seehuhn.de/go/render3d/math3d"
	"seehuhn.de/go/render3d/mesh"
)

// Scene defines a single rendering test.
type Scene struct {
	Name   string // lowercase a-z and _ only
	Source string // mesh in OBJ text form
	World  math3d.Matrix
	Width  int // viewport width in pixels
	Height int // viewport height in pixels

	// Camera placement
	Position   math3d.Vec4
	Yaw, Pitch float64

	// Culled is the expected number of back-facing mesh triangles,
	// or -1 if not checked.
	Culled int
}

// Mesh parses the scene's mesh source.
func (s *Scene) Mesh() (*mesh.Mesh, error) {
	return mesh.Read(strings.NewReader(s.Source))
}
