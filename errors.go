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

import "errors"

var (
	// ErrZeroW is returned when the perspective divide meets a vertex with
	// homogeneous weight zero.
	ErrZeroW = errors.New("render3d: perspective divide by w = 0")

	// ErrViewport is returned for frames with a non-positive viewport size.
	ErrViewport = errors.New("render3d: invalid viewport size")
)
