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

package mesh

import (
	"bufio"
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"strconv"
	"strings"

	"seehuhn.de/go/render3d/internal/logging"
	"seehuhn.de/go/render3d/math3d"
)

// DefaultColor is the colour of triangles read from a mesh file.
var DefaultColor = color.NRGBA{A: 255}

// IndexError is returned when a face refers to a vertex which has not been
// defined.
type IndexError struct {
	Line  int // line number in the input, starting at 1
	Index int // the offending 1-based vertex index
	Count int // number of vertices defined before the face
}

func (err *IndexError) Error() string {
	if err.Count == 0 {
		return fmt.Sprintf("mesh: line %d: vertex index %d out of range (no vertices defined)",
			err.Line, err.Index)
	}
	return fmt.Sprintf("mesh: line %d: vertex index %d out of range [1, %d]",
		err.Line, err.Index, err.Count)
}

// ParseError is returned for vertex and face lines which cannot be parsed.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (err *ParseError) Error() string {
	return fmt.Sprintf("mesh: line %d: cannot parse %q: %v", err.Line, err.Text, err.Err)
}

func (err *ParseError) Unwrap() error {
	return err.Err
}

var errTooFewFields = errors.New("expected three values")

// Read reads a mesh from r.
//
// Two kinds of lines are recognised: "v x y z" defines a vertex and
// "f i j k" defines a triangle by 1-based indices into the vertices defined
// so far.  For face entries of the form "i/t/n" only the vertex index is
// used, and values beyond the third are ignored.  All other lines are
// skipped.  Vertices are copied into the triangles, so the returned mesh does
// not refer to vertex indices any more.
//
// Input without faces gives an empty mesh, not an error.
func Read(r io.Reader) (*Mesh, error) {
	var verts []math3d.Vec4
	var tris []Triangle

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		text := scanner.Text()
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				return nil, &ParseError{Line: lineNo, Text: text, Err: errTooFewFields}
			}
			var xyz [3]float64
			for i := range xyz {
				x, err := strconv.ParseFloat(fields[i+1], 64)
				if err != nil {
					return nil, &ParseError{Line: lineNo, Text: text, Err: err}
				}
				xyz[i] = x
			}
			verts = append(verts, math3d.Point(xyz[0], xyz[1], xyz[2]))

		case "f":
			if len(fields) < 4 {
				return nil, &ParseError{Line: lineNo, Text: text, Err: errTooFewFields}
			}
			tri := Triangle{Color: DefaultColor}
			for i := range 3 {
				idxText, _, _ := strings.Cut(fields[i+1], "/")
				idx, err := strconv.Atoi(idxText)
				if err != nil {
					return nil, &ParseError{Line: lineNo, Text: text, Err: err}
				}
				if idx < 1 || idx > len(verts) {
					return nil, &IndexError{Line: lineNo, Index: idx, Count: len(verts)}
				}
				tri.P[i] = verts[idx-1]
			}
			tris = append(tris, tri)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return &Mesh{tris: tris}, nil
}

// Load reads a mesh from the named file.
func Load(fname string) (*Mesh, error) {
	fd, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	m, err := Read(fd)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	logging.Logger().Info("mesh loaded",
		"file", fname,
		"triangles", m.Len())
	return m, nil
}

// LoadOrEmpty reads a mesh from the named file.  If the file cannot be
// read, a warning is logged and an empty mesh is returned instead.
func LoadOrEmpty(fname string) *Mesh {
	m, err := Load(fname)
	if err != nil {
		logging.Logger().Warn("using empty mesh", "error", err)
		return &Mesh{}
	}
	return m
}
