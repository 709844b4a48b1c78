// Package state provides the scene description consumed by the tracer.
package state

import (
	"github.com/dhconnelly/rtreego"
	"github.com/tvanier/glint/geom"
	"math"
)

// Triangle represents a single free-standing triangle surface.
type Triangle struct {
	Tri geom.Triangle
	Mat Material
}

// Intersection returns the point at which a ray strikes the triangle t (and true) if one exists.
// If no intersection exists, false is returned instead.
// When the triangle carries vertex normals, the returned normal is the
// barycentric interpolation of them; otherwise it is the face normal.
func (t Triangle) Intersection(rOrigin, rDir geom.Vector) (Hit, bool) {
	intersect, bcoords, hit := t.Tri.Intersection(rOrigin, rDir, t.Mat.Kind != Refractive)
	if !hit {
		return Hit{}, false
	}

	var normal geom.Vector
	if t.Tri.HasVertexNormals() {
		normal = t.Tri.InterpNormal(bcoords)
	}else{
		normal = t.Tri.Normal()
	}

	return Hit{
		Pos: intersect,
		Normal: normal,
		Incident: rDir,
		Mat: t.Mat,
	}, true
}

// Bounds gets the rectangular bounding box containing the triangle t.
func (t Triangle) Bounds() *rtreego.Rect {
	box := geom.Box{
		MinCorner: geom.Vector{
			X: math.Min(t.Tri.P1.X, math.Min(t.Tri.P2.X, t.Tri.P3.X)),
			Y: math.Min(t.Tri.P1.Y, math.Min(t.Tri.P2.Y, t.Tri.P3.Y)),
			Z: math.Min(t.Tri.P1.Z, math.Min(t.Tri.P2.Z, t.Tri.P3.Z)),
		},
		MaxCorner: geom.Vector{
			X: math.Max(t.Tri.P1.X, math.Max(t.Tri.P2.X, t.Tri.P3.X)),
			Y: math.Max(t.Tri.P1.Y, math.Max(t.Tri.P2.Y, t.Tri.P3.Y)),
			Z: math.Max(t.Tri.P1.Z, math.Max(t.Tri.P2.Z, t.Tri.P3.Z)),
		},
	}
	return box.Rect()
}
