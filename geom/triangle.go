// Package geom provides the geometric primitives shared by every part of the ray tracer.
package geom

// Triangle represents a triangle in 3-dimensional space.
// The vertex normals N1 through N3 are optional; when present they allow
// the surface normal to be interpolated across the face for smooth shading.
type Triangle struct {
	P1 Vector
	P2 Vector
	P3 Vector

	N1 Vector
	N2 Vector
	N3 Vector
}

// HasVertexNormals returns whether the triangle t carries per-vertex normals.
func (t Triangle) HasVertexNormals() bool {
	return !t.N1.Zero() || !t.N2.Zero() || !t.N3.Zero()
}

// Normal returns the normalized face normal of the triangle t.
// Its orientation follows the winding order of the vertices.
func (t Triangle) Normal() Vector {
	return t.P2.Sub(t.P1).Cross(t.P3.Sub(t.P1)).Norm()
}

// Intersection returns the point of intersection between a ray and the triangle t,
// along with the barycentric weights of that point, if an intersection exists.
// If no intersection exists, the last return value is false.
// When cull is set, hits approaching the face from behind are discarded before
// the intersection parameter is ever computed, as are hits behind the ray's origin.
func (t Triangle) Intersection(rOrigin, rDir Vector, cull bool) (Vector, [3]float64, bool) {
	// Compute the triangle's (unnormalized) face normal.
	tNormal := t.P2.Sub(t.P1).Cross(t.P3.Sub(t.P1))

	// Make sure that the ray's direction and the triangle's plane are not parallel.
	// A degenerate triangle has a zero face normal and fails this check for every ray.
	denom := tNormal.Dot(rDir)
	if denom == 0.0 {
		return Vector{}, [3]float64{}, false
	}

	// An opaque face is invisible from its backside.
	if cull && denom > 0.0 {
		return Vector{}, [3]float64{}, false
	}

	// Compute the independent variable of the ray's parametric representation (x from rOrigin + x * rDir).
	intersectParameter := (tNormal.Dot(t.P1) - tNormal.Dot(rOrigin)) / denom

	// Make sure that the intersection point is ahead of the ray.
	// Back-facing hits on refractive surfaces skip this so that rays leaving a
	// transparent volume can still find their exit face.
	if cull && intersectParameter <= 0.0 {
		return Vector{}, [3]float64{}, false
	}

	// Compute the intersection point of the ray and the plane defined by x.
	intersect := rOrigin.Add(rDir.Scale(intersectParameter))

	// Run the half-plane containment test against each edge in winding order.
	// Each edge cross product doubles as twice the area of the sub-triangle
	// opposite one vertex, which yields the barycentric weights for free.
	d3 := t.P2.Sub(t.P1).Cross(intersect.Sub(t.P1)).Dot(tNormal)
	d1 := t.P3.Sub(t.P2).Cross(intersect.Sub(t.P2)).Dot(tNormal)
	d2 := t.P1.Sub(t.P3).Cross(intersect.Sub(t.P3)).Dot(tNormal)
	if d1 < 0.0 || d2 < 0.0 || d3 < 0.0 {
		return Vector{}, [3]float64{}, false
	}

	area2 := tNormal.Dot(tNormal)	// (Twice the face area) times the face normal's length.
	return intersect, [3]float64{d1 / area2, d2 / area2, d3 / area2}, true
}

// InterpNormal returns the normal of the triangle t at the barycentric weights bcoords.
// The interpolated normal is re-normalized, since blending unit vectors shortens them.
func (t Triangle) InterpNormal(bcoords [3]float64) Vector {
	return t.N1.Scale(bcoords[0]).Add(t.N2.Scale(bcoords[1])).Add(t.N3.Scale(bcoords[2])).Norm()
}
