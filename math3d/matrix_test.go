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

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func randomMatrix(rng *rand.Rand) Matrix {
	var m Matrix
	for r := range 4 {
		for c := range 4 {
			m[r][c] = rng.Float64()*4 - 2
		}
	}
	return m
}

func matrixClose(a, b Matrix, tol float64) bool {
	for r := range 4 {
		for c := range 4 {
			if math.Abs(a[r][c]-b[r][c]) > tol {
				return false
			}
		}
	}
	return true
}

// fromGL converts a column-vector mathgl matrix into the equivalent
// row-vector matrix.
func fromGL(m mgl64.Mat4) Matrix {
	var res Matrix
	for r := range 4 {
		for c := range 4 {
			res[r][c] = m.At(c, r)
		}
	}
	return res
}

func TestIdentity(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	id := Identity()
	for range 50 {
		m := randomMatrix(rng)
		if got := id.Mul(m); got != m {
			t.Errorf("I·M = %v, want %v", got, m)
		}
		if got := m.Mul(id); got != m {
			t.Errorf("M·I = %v, want %v", got, m)
		}
	}
}

func TestMulAssociative(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 8))
	for range 50 {
		a := randomMatrix(rng)
		b := randomMatrix(rng)
		c := randomMatrix(rng)
		left := a.Mul(b).Mul(c)
		right := a.Mul(b.Mul(c))
		if !matrixClose(left, right, 1e-9) {
			t.Errorf("(AB)C != A(BC):\n%v\n%v", left, right)
		}
	}
}

func TestMulOrder(t *testing.T) {
	// Rotating first and translating second must leave the translation
	// untouched.
	m := RotateZ(math.Pi / 2).Mul(Translate(10, 0, 0))
	got := Point(1, 0, 0).Transform(m)
	want := Point(10, 1, 0)
	if math.Abs(got.X-want.X) > 1e-12 || math.Abs(got.Y-want.Y) > 1e-12 || got.Z != 0 || got.W != 1 {
		t.Errorf("got %v, want %v", got, want)
	}

	// ... while the opposite order rotates the translated point.
	m = Translate(10, 0, 0).Mul(RotateZ(math.Pi / 2))
	got = Point(1, 0, 0).Transform(m)
	want = Point(0, 11, 0)
	if math.Abs(got.X-want.X) > 1e-12 || math.Abs(got.Y-want.Y) > 1e-12 {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestMulMatchesMathGL(t *testing.T) {
	// Row-vector A·B corresponds to column-vector B'·A'.
	a := mgl64.HomogRotate3DX(0.3).Mul4(mgl64.Translate3D(1, 2, 3))
	b := mgl64.HomogRotate3DY(-1.1)
	got := fromGL(a).Mul(fromGL(b))
	want := fromGL(b.Mul4(a))
	if !matrixClose(got, want, 1e-12) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestRotationsMatchMathGL(t *testing.T) {
	for _, angle := range []float64{0, 0.1, 1, math.Pi / 2, 2.5, -0.7} {
		cases := []struct {
			name string
			got  Matrix
			gl   mgl64.Mat4
		}{
			{"X", RotateX(angle), mgl64.HomogRotate3DX(angle)},
			{"Y", RotateY(angle), mgl64.HomogRotate3DY(angle)},
			{"Z", RotateZ(angle), mgl64.HomogRotate3DZ(angle)},
		}
		for _, c := range cases {
			if want := fromGL(c.gl); !matrixClose(c.got, want, 1e-12) {
				t.Errorf("Rotate%s(%g) = %v, want %v", c.name, angle, c.got, want)
			}
		}
	}
}

func TestTranslate(t *testing.T) {
	m := Translate(1, -2, 3)
	if want := fromGL(mgl64.Translate3D(1, -2, 3)); m != want {
		t.Errorf("Translate = %v, want %v", m, want)
	}
	if got := Point(1, 1, 1).Transform(m); got != Point(2, -1, 4) {
		t.Errorf("got %v, want (2, -1, 4, 1)", got)
	}
}

func TestProject(t *testing.T) {
	const near, far = 0.1, 1000.0
	m, err := Project(90, 0.75, near, far)
	if err != nil {
		t.Fatal(err)
	}

	// At 90° the focal factor is 1.
	if math.Abs(m[0][0]-0.75) > 1e-12 || math.Abs(m[1][1]-1) > 1e-12 {
		t.Errorf("scale terms = %g, %g", m[0][0], m[1][1])
	}
	if m[2][3] != 1 || m[3][3] != 0 {
		t.Errorf("w column = %g, %g, want 1, 0", m[2][3], m[3][3])
	}

	// Depth maps near to 0 and far to 1 after the divide.
	for _, c := range []struct{ z, want float64 }{{near, 0}, {far, 1}} {
		v := Point(0, 0, c.z).Transform(m)
		if v.W != c.z {
			t.Errorf("w = %g, want %g", v.W, c.z)
		}
		if got := v.Z / v.W; math.Abs(got-c.want) > 1e-9 {
			t.Errorf("z=%g maps to %g, want %g", c.z, got, c.want)
		}
	}
}

func TestProjectDegenerate(t *testing.T) {
	cases := []struct {
		fov, aspect, near, far float64
	}{
		{90, 1, 1, 1},
		{0, 1, 0.1, 100},
		{180, 1, 0.1, 100},
		{90, math.NaN(), 0.1, 100},
	}
	for _, c := range cases {
		_, err := Project(c.fov, c.aspect, c.near, c.far)
		if !errors.Is(err, ErrDegenerateProjection) {
			t.Errorf("Project(%v) error = %v, want ErrDegenerateProjection", c, err)
		}
	}
}

func TestTranspose(t *testing.T) {
	m := Translate(1, 2, 3)
	mt := m.Transpose()
	if mt[0][3] != 1 || mt[1][3] != 2 || mt[2][3] != 3 {
		t.Errorf("transpose = %v", mt)
	}
	if mt.Transpose() != m {
		t.Error("transpose is not an involution")
	}
}
