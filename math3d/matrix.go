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

// Matrix is a 4×4 transformation matrix, indexed as m[row][col].
//
// Translations live in row 3, so that a point v = (x, y, z, 1) is moved by
// v·m.  The zero value is the zero matrix, not the identity.
type Matrix [4][4]float64

// Identity returns the identity matrix.
func Identity() Matrix {
	return Matrix{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// RotateX returns a right-handed rotation by angle radians about the X axis.
func RotateX(angle float64) Matrix {
	s, c := math.Sincos(angle)
	return Matrix{
		{1, 0, 0, 0},
		{0, c, s, 0},
		{0, -s, c, 0},
		{0, 0, 0, 1},
	}
}

// RotateY returns a right-handed rotation by angle radians about the Y axis.
func RotateY(angle float64) Matrix {
	s, c := math.Sincos(angle)
	return Matrix{
		{c, 0, -s, 0},
		{0, 1, 0, 0},
		{s, 0, c, 0},
		{0, 0, 0, 1},
	}
}

// RotateZ returns a right-handed rotation by angle radians about the Z axis.
func RotateZ(angle float64) Matrix {
	s, c := math.Sincos(angle)
	return Matrix{
		{c, s, 0, 0},
		{-s, c, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Translate returns a translation by (x, y, z).
func Translate(x, y, z float64) Matrix {
	return Matrix{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{x, y, z, 1},
	}
}

// Project returns a perspective projection.
//
// fovDegrees is the full field of view and aspect is the ratio
// height/width of the viewport; it scales the X axis.  Depth is mapped from
// [near, far] into [0, 1] after the perspective divide, and the input Z is
// routed into W so that the divide can be performed downstream.
func Project(fovDegrees, aspect, near, far float64) (Matrix, error) {
	if far == near || !(fovDegrees > 0 && fovDegrees < 180) ||
		math.IsNaN(aspect) || math.IsInf(aspect, 0) {
		return Matrix{}, ErrDegenerateProjection
	}
	fovRad := 1 / math.Tan(fovDegrees*0.5/180*math.Pi)
	return Matrix{
		{aspect * fovRad, 0, 0, 0},
		{0, fovRad, 0, 0},
		{0, 0, far / (far - near), 1},
		{0, 0, -far * near / (far - near), 0},
	}, nil
}

// Mul returns the product m·b.  The result first applies m and then b.
func (m Matrix) Mul(b Matrix) Matrix {
	var res Matrix
	for r := range 4 {
		for c := range 4 {
			res[r][c] = m[r][0]*b[0][c] + m[r][1]*b[1][c] + m[r][2]*b[2][c] + m[r][3]*b[3][c]
		}
	}
	return res
}

// Transpose returns the transposed matrix.
func (m Matrix) Transpose() Matrix {
	var res Matrix
	for r := range 4 {
		for c := range 4 {
			res[c][r] = m[r][c]
		}
	}
	return res
}

// row returns row i as a vector, including the fourth column as W.
func (m Matrix) row(i int) Vec4 {
	return Vec4{X: m[i][0], Y: m[i][1], Z: m[i][2], W: m[i][3]}
}
