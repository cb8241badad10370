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

package math3d

import "errors"

// DegenerateVectorError is returned when an operation would divide by a zero
// length or a zero scalar, and would otherwise produce non-finite values.
type DegenerateVectorError struct {
	Op string // the operation which failed, e.g. "normalize"
}

func (err *DegenerateVectorError) Error() string {
	return "math3d: degenerate vector in " + err.Op
}

var (
	// ErrNotRigid is returned by [NewRigid] if the matrix contains scaling,
	// shearing or a projective part.
	ErrNotRigid = errors.New("math3d: matrix is not a rigid transform")

	// ErrDegenerateProjection is returned by [Project] for parameters which
	// do not describe a view volume.
	ErrDegenerateProjection = errors.New("math3d: degenerate projection")
)
