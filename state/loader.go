// Package state provides the scene description consumed by the tracer.
package state

import (
	"github.com/tvanier/glint/colour"
	"github.com/tvanier/glint/geom"
	"github.com/udhos/gwob"
	"log"
	"math"
)

// MeshFromFile returns a new mesh based on a provided Wavefront OBJ file.
// The mesh's triangles are translated by pos, and its bounding box is
// computed over the translated vertices. When the provided material has a
// black albedo and the OBJ references a material library, the diffuse
// colour of the file's first material takes its place.
func MeshFromFile(path string, pos geom.Vector, mat Material) (*Mesh, error) {
	options := gwob.ObjParserOptions{LogStats: true, Logger: func(s string) {log.Println(s)}}

	// Read in the mesh from the file.
	inputMesh, err := gwob.NewObjFromFile(path, &options)
	if err != nil {
		return nil, err
	}

	// Read in the material library associated with the mesh.
	inputMatlib := gwob.NewMaterialLib()
	if len(inputMesh.Mtllib) > 0 {
		inputMatlib, err = gwob.ReadMaterialLibFromFile(relativePath(path, inputMesh.Mtllib), &options)
		if err != nil {
			// If the material can't be found at the relative path, try the absolute path.
			inputMatlib, err = gwob.ReadMaterialLibFromFile(inputMesh.Mtllib, &options)
			if err != nil {
				return nil, err
			}
		}
	}

	vertexStride := inputMesh.StrideSize / 4
	vertexOffset := inputMesh.StrideOffsetPosition / 4
	vertexNormalOffset := inputMesh.StrideOffsetNormal / 4

	// vertexAt reads the (translated) vertex behind an index buffer entry.
	vertexAt := func(index int) geom.Vector {
		return geom.Vector{
			X: inputMesh.Coord64(vertexStride * inputMesh.Indices[index] + vertexOffset),
			Y: inputMesh.Coord64(vertexStride * inputMesh.Indices[index] + vertexOffset + 1),
			Z: inputMesh.Coord64(vertexStride * inputMesh.Indices[index] + vertexOffset + 2),
		}.Add(pos)
	}

	// normalAt reads the vertex normal behind an index buffer entry.
	normalAt := func(index int) geom.Vector {
		return geom.Vector{
			X: inputMesh.Coord64(vertexStride * inputMesh.Indices[index] + vertexNormalOffset),
			Y: inputMesh.Coord64(vertexStride * inputMesh.Indices[index] + vertexNormalOffset + 1),
			Z: inputMesh.Coord64(vertexStride * inputMesh.Indices[index] + vertexNormalOffset + 2),
		}.Norm()
	}

	// Assemble the triangle list and its bounding box in one pass.
	faces := make([]geom.Triangle, 0, len(inputMesh.Indices) / 3)
	bounds := geom.Box{
		MinCorner: geom.Vector{X: math.Inf(1), Y: math.Inf(1), Z: math.Inf(1)},
		MaxCorner: geom.Vector{X: math.Inf(-1), Y: math.Inf(-1), Z: math.Inf(-1)},
	}
	for _, g := range inputMesh.Groups {
		// If the group's material has a diffuse colour and the caller didn't
		// choose one, use the group's.
		if mat.Col == (colour.RGB{}) {
			if gMat, exists := inputMatlib.Lib[g.Usemtl]; exists {
				mat.Col = colour.NewRGBFromFloats(gMat.Kd[0], gMat.Kd[1], gMat.Kd[2])
			}
		}

		for f := 0; f < g.IndexCount / 3; f++ {
			first := g.IndexBegin + 3 * f

			face := geom.Triangle{
				P1: vertexAt(first),
				P2: vertexAt(first + 1),
				P3: vertexAt(first + 2),
			}
			if inputMesh.NormCoordFound {
				face.N1 = normalAt(first)
				face.N2 = normalAt(first + 1)
				face.N3 = normalAt(first + 2)
			}
			faces = append(faces, face)

			for _, v := range [3]geom.Vector{face.P1, face.P2, face.P3} {
				bounds.MinCorner.X = math.Min(bounds.MinCorner.X, v.X)
				bounds.MinCorner.Y = math.Min(bounds.MinCorner.Y, v.Y)
				bounds.MinCorner.Z = math.Min(bounds.MinCorner.Z, v.Z)
				bounds.MaxCorner.X = math.Max(bounds.MaxCorner.X, v.X)
				bounds.MaxCorner.Y = math.Max(bounds.MaxCorner.Y, v.Y)
				bounds.MaxCorner.Z = math.Max(bounds.MaxCorner.Z, v.Z)
			}
		}
	}

	// A mesh with a black albedo would shade to nothing; default to white.
	if mat.Col == (colour.RGB{}) {
		mat.Col = colour.NewRGB(0xFF, 0xFF, 0xFF)
	}

	return NewMesh(faces, bounds, mat), nil
}
