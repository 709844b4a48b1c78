// Package state provides the scene description consumed by the tracer.
package state

import (
	"encoding/json"
	"fmt"
	"github.com/tvanier/glint/colour"
	"github.com/tvanier/glint/geom"
	"os"
)

// These types mirror the JSON scene description format.
// Vectors are stored as [x, y, z] and colours as [r, g, b] byte triples.
type storedMaterial struct {
	Kind string		`json:"kind"`
	Col [3]uint8	`json:"colour"`
	Index float64	`json:"index"`
}

type storedCamera struct {
	Pos [3]float64		`json:"pos"`
	Axis [3]float64		`json:"axis"`
	Angle float64		`json:"angle"`
	Fov float64			`json:"fov"`
	Samples int			`json:"samples"`
}

type storedLight struct {
	Pos [3]float64	`json:"pos"`
	Col [3]uint8	`json:"colour"`
}

type storedPlane struct {
	Center [3]float64		`json:"center"`
	Normal [3]float64		`json:"normal"`
	Mat storedMaterial		`json:"material"`
}

type storedSphere struct {
	Center [3]float64		`json:"center"`
	Radius float64			`json:"radius"`
	Mat storedMaterial		`json:"material"`
}

type storedTriangle struct {
	Points [3][3]float64	`json:"points"`
	Mat storedMaterial		`json:"material"`
}

type storedModel struct {
	Model string			`json:"model"`
	Pos [3]float64			`json:"pos"`
	Mat *storedMaterial		`json:"material"`
}

type storedScene struct {
	Cam storedCamera			`json:"camera"`
	MaxDepth int				`json:"maxDepth"`
	Lights []storedLight		`json:"lights"`
	Planes []storedPlane		`json:"planes"`
	Spheres []storedSphere		`json:"spheres"`
	Triangles []storedTriangle	`json:"triangles"`
	Models []storedModel		`json:"models"`
}

// EnvironmentFromFile returns a new environment based on a provided JSON scene file.
// Any mesh models the scene references are loaded relative to the current
// working directory. Degenerate geometry (zero-radius spheres, coincident
// triangle vertices, and the like) is accepted as-is; validating it is the
// scene author's responsibility.
func EnvironmentFromFile(path string) (*Environment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	stored := storedScene{}
	if err := json.Unmarshal(data, &stored); err != nil {
		return nil, fmt.Errorf("scene %s is malformed: %w", path, err)
	}

	env := NewEnvironment(NewCamera(vec(stored.Cam.Pos), vec(stored.Cam.Axis), stored.Cam.Angle, stored.Cam.Fov, stored.Cam.Samples))
	if stored.MaxDepth > 0 {
		env.MaxDepth = stored.MaxDepth
	}

	for _, l := range stored.Lights {
		env.AddLight(Light{Pos: vec(l.Pos), Col: colour.NewRGB(l.Col[0], l.Col[1], l.Col[2])})
	}
	for _, p := range stored.Planes {
		mat, err := p.Mat.material()
		if err != nil {
			return nil, err
		}
		env.Add(NewPlane(vec(p.Center), vec(p.Normal), mat))
	}
	for _, s := range stored.Spheres {
		mat, err := s.Mat.material()
		if err != nil {
			return nil, err
		}
		env.Add(Sphere{Center: vec(s.Center), Radius: s.Radius, Mat: mat})
	}
	for _, t := range stored.Triangles {
		mat, err := t.Mat.material()
		if err != nil {
			return nil, err
		}
		env.Add(Triangle{
			Tri: geom.Triangle{P1: vec(t.Points[0]), P2: vec(t.Points[1]), P3: vec(t.Points[2])},
			Mat: mat,
		})
	}
	for _, m := range stored.Models {
		mat := Material{Kind: Diffuse}
		if m.Mat != nil {
			if mat, err = m.Mat.material(); err != nil {
				return nil, err
			}
		}
		mesh, err := MeshFromFile(m.Model, vec(m.Pos), mat)
		if err != nil {
			return nil, fmt.Errorf("could not load model %s: %w", m.Model, err)
		}
		env.Add(mesh)
	}

	return env, nil
}

// material converts a stored material block into a Material.
func (sm storedMaterial) material() (Material, error) {
	mat := Material{Col: colour.NewRGB(sm.Col[0], sm.Col[1], sm.Col[2]), Index: sm.Index}
	switch sm.Kind {
	case "", "diffuse":
		mat.Kind = Diffuse
	case "reflective":
		mat.Kind = Reflective
	case "refractive":
		mat.Kind = Refractive
		if mat.Index <= 0.0 {
			return Material{}, fmt.Errorf("refractive material needs a positive index, got %v", sm.Index)
		}
	default:
		return Material{}, fmt.Errorf("unknown material kind %q", sm.Kind)
	}
	return mat, nil
}

// vec converts a stored [x, y, z] triple into a vector.
func vec(v [3]float64) geom.Vector {
	return geom.Vector{X: v[0], Y: v[1], Z: v[2]}
}
