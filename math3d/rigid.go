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

import "math"

// Rigid is a transform made only of a rotation followed by a translation.
//
// The inverse of such a transform can be computed cheaply by
// [QuickInverse].  Values of this type can only be obtained from
// [NewRigid], [PointAt] and [QuickInverse], so that the cheap inverse is
// never applied to a general matrix.  The zero value is the identity.
type Rigid struct {
	m    Matrix
	init bool
}

// rigidTolerance bounds the deviation from orthonormality accepted by
// NewRigid.
const rigidTolerance = 1e-6

// NewRigid checks that m is a rigid transform and wraps it.
// If the upper-left 3×3 block is not orthonormal with determinant +1, or if
// the last column differs from (0, 0, 0, 1), [ErrNotRigid] is returned.
func NewRigid(m Matrix) (Rigid, error) {
	if math.Abs(m[0][3]) > rigidTolerance || math.Abs(m[1][3]) > rigidTolerance ||
		math.Abs(m[2][3]) > rigidTolerance || math.Abs(m[3][3]-1) > rigidTolerance {
		return Rigid{}, ErrNotRigid
	}
	for i := range 3 {
		for j := range 3 {
			want := 0.0
			if i == j {
				want = 1
			}
			if math.Abs(m.row(i).Dot(m.row(j))-want) > rigidTolerance {
				return Rigid{}, ErrNotRigid
			}
		}
	}
	if m.row(0).Cross(m.row(1)).Dot(m.row(2)) < 0 {
		return Rigid{}, ErrNotRigid // reflection
	}
	return Rigid{m: m, init: true}, nil
}

// Matrix returns the transform as a general matrix.
func (r Rigid) Matrix() Matrix {
	if !r.init {
		return Identity()
	}
	return r.m
}

// PointAt returns the transform which places an object at pos, facing
// target, with its Y axis as close to up as possible.
//
// The basis is built by Gram-Schmidt: forward is the unit vector from pos to
// target, the component along forward is removed from up, and right is
// up×forward.  The rows of the result are right, up, forward and pos.
// If pos equals target, or if up is parallel to the viewing direction, a
// [*DegenerateVectorError] is returned.
func PointAt(pos, target, up Vec4) (Rigid, error) {
	forward, err := target.Sub(pos).Normalize()
	if err != nil {
		return Rigid{}, &DegenerateVectorError{Op: "PointAt"}
	}

	newUp := up.Sub(forward.Mul(up.Dot(forward)))
	if newUp.Length() <= 1e-9*up.Length() {
		return Rigid{}, &DegenerateVectorError{Op: "PointAt"}
	}
	newUp, err = newUp.Normalize()
	if err != nil {
		return Rigid{}, &DegenerateVectorError{Op: "PointAt"}
	}

	right := newUp.Cross(forward)

	m := Matrix{
		{right.X, right.Y, right.Z, 0},
		{newUp.X, newUp.Y, newUp.Z, 0},
		{forward.X, forward.Y, forward.Z, 0},
		{pos.X, pos.Y, pos.Z, 1},
	}
	return Rigid{m: m, init: true}, nil
}

// QuickInverse returns the inverse of a rigid transform.  The rotation block
// is transposed and the translation becomes the negated dot product of the
// original translation with each row of the transposed block.
func QuickInverse(r Rigid) Rigid {
	m := r.Matrix()
	var inv Matrix
	for i := range 3 {
		for j := range 3 {
			inv[i][j] = m[j][i]
		}
	}
	t := m.row(3)
	for j := range 3 {
		inv[3][j] = -(t.X*inv[0][j] + t.Y*inv[1][j] + t.Z*inv[2][j])
	}
	inv[3][3] = 1
	return Rigid{m: inv, init: true}
}
