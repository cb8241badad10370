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

// Package math3d implements the homogeneous vector and 4×4 matrix arithmetic
// used by the rendering pipeline.
//
// Vectors are row vectors: a vector v is transformed by a matrix M as v·M,
// and the product A·B of two matrices applies A first and then B.
package math3d

import "math"

// Vec4 is a homogeneous vector.
//
// X, Y and Z are scene coordinates.  W is the homogeneous weight; it is 1 for
// ordinary points and only carries information after a projective transform.
// The arithmetic methods below act on X, Y and Z only and copy W from the
// receiver.
type Vec4 struct {
	X, Y, Z, W float64
}

// Point returns the scene point (x, y, z) with weight 1.
func Point(x, y, z float64) Vec4 {
	return Vec4{X: x, Y: y, Z: z, W: 1}
}

// Add returns v+u.
func (v Vec4) Add(u Vec4) Vec4 {
	return Vec4{X: v.X + u.X, Y: v.Y + u.Y, Z: v.Z + u.Z, W: v.W}
}

// Sub returns v-u.
func (v Vec4) Sub(u Vec4) Vec4 {
	return Vec4{X: v.X - u.X, Y: v.Y - u.Y, Z: v.Z - u.Z, W: v.W}
}

// Mul returns the vector scaled by k.
func (v Vec4) Mul(k float64) Vec4 {
	return Vec4{X: v.X * k, Y: v.Y * k, Z: v.Z * k, W: v.W}
}

// Div returns the vector divided by k.
// A zero divisor gives a [*DegenerateVectorError].
func (v Vec4) Div(k float64) (Vec4, error) {
	if k == 0 {
		return Vec4{}, &DegenerateVectorError{Op: "divide"}
	}
	return Vec4{X: v.X / k, Y: v.Y / k, Z: v.Z / k, W: v.W}, nil
}

// Dot returns the dot product of the X, Y, Z parts of v and u.
func (v Vec4) Dot(u Vec4) float64 {
	return v.X*u.X + v.Y*u.Y + v.Z*u.Z
}

// Cross returns the right-handed cross product v×u.
func (v Vec4) Cross(u Vec4) Vec4 {
	return Vec4{
		X: v.Y*u.Z - v.Z*u.Y,
		Y: v.Z*u.X - v.X*u.Z,
		Z: v.X*u.Y - v.Y*u.X,
		W: v.W,
	}
}

// Length returns the Euclidean length of the X, Y, Z part of v.
func (v Vec4) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

// Normalize returns v scaled to unit length.
// W is copied unchanged and takes no part in the computation.
// A zero vector gives a [*DegenerateVectorError].
func (v Vec4) Normalize() (Vec4, error) {
	l := v.Length()
	if l == 0 || math.IsInf(l, 0) || math.IsNaN(l) {
		return Vec4{}, &DegenerateVectorError{Op: "normalize"}
	}
	return Vec4{X: v.X / l, Y: v.Y / l, Z: v.Z / l, W: v.W}, nil
}

// Transform returns the row vector product v·m.
// Unlike the arithmetic methods, this uses and updates W.
func (v Vec4) Transform(m Matrix) Vec4 {
	return Vec4{
		X: v.X*m[0][0] + v.Y*m[1][0] + v.Z*m[2][0] + v.W*m[3][0],
		Y: v.X*m[0][1] + v.Y*m[1][1] + v.Z*m[2][1] + v.W*m[3][1],
		Z: v.X*m[0][2] + v.Y*m[1][2] + v.Z*m[2][2] + v.W*m[3][2],
		W: v.X*m[0][3] + v.Y*m[1][3] + v.Z*m[2][3] + v.W*m[3][3],
	}
}

// IsFinite reports whether all four components are finite.
func (v Vec4) IsFinite() bool {
	for _, c := range [4]float64{v.X, v.Y, v.Z, v.W} {
		if math.IsInf(c, 0) || math.IsNaN(c) {
			return false
		}
	}
	return true
}
