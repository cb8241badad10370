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

// Command export renders all test scenes and writes the resulting drawable
// triangle lists to JSON, for comparison with other renderers.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/render3d"
	"seehuhn.de/go/render3d/mesh"
	"seehuhn.de/go/render3d/testcases"
)

func main() {
	var out struct {
		Scenes []jsonScene `json:"scenes"`
	}

	r, err := render3d.NewRenderer()
	if err != nil {
		panic(err)
	}
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, sc := range testcases.All[category] {
			js, err := toJSON(r, category, &sc)
			if err != nil {
				panic(fmt.Errorf("%s_%s: %w", category, sc.Name, err))
			}
			out.Scenes = append(out.Scenes, js)
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/scenes.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonScene struct {
	Name       string         `json:"name"`
	Width      int            `json:"width"`
	Height     int            `json:"height"`
	Culled     int            `json:"culled"`
	Candidates int            `json:"candidates"`
	Triangles  []jsonTriangle `json:"triangles"`
}

type jsonTriangle struct {
	Pts   [][]float64 `json:"pts"` // x, y, depth
	Color [4]uint8    `json:"rgba"`
}

func toJSON(r *render3d.Renderer, category string, sc *testcases.Scene) (jsonScene, error) {
	m, err := sc.Mesh()
	if err != nil {
		return jsonScene{}, err
	}
	cam := render3d.Camera{Position: sc.Position, Yaw: sc.Yaw, Pitch: sc.Pitch}
	f, err := render3d.NewFrame(cam, float64(sc.Width), float64(sc.Height))
	if err != nil {
		return jsonScene{}, err
	}
	f.World = sc.World

	res, err := r.Render(m, f)
	if err != nil {
		return jsonScene{}, err
	}

	js := jsonScene{
		Name:       category + "_" + sc.Name,
		Width:      sc.Width,
		Height:     sc.Height,
		Culled:     res.Culled,
		Candidates: res.Candidates,
		Triangles:  make([]jsonTriangle, len(res.Triangles)),
	}
	for i, t := range res.Triangles {
		js.Triangles[i] = triangleToJSON(t)
	}
	return js, nil
}

func triangleToJSON(t mesh.Triangle) jsonTriangle {
	jt := jsonTriangle{
		Pts:   make([][]float64, 3),
		Color: [4]uint8{t.Color.R, t.Color.G, t.Color.B, t.Color.A},
	}
	for i, v := range t.P {
		jt.Pts[i] = []float64{v.X, v.Y, v.Z}
	}
	return jt
}
