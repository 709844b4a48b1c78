// Package state provides the scene description consumed by the tracer.
package state

import "github.com/tvanier/glint/geom"

// Plane represents an infinite plane in 3-dimensional space.
type Plane struct {
	Center geom.Vector	// Any point on the plane.
	Normal geom.Vector	// The plane's unit normal.
	Mat Material
}

// NewPlane creates a new plane, normalizing the provided normal vector.
func NewPlane(center, normal geom.Vector, mat Material) Plane {
	return Plane{Center: center, Normal: normal.Norm(), Mat: mat}
}

// Intersection returns the point at which a ray strikes the plane p (and true) if one exists.
// If no intersection exists, false is returned instead.
func (p Plane) Intersection(rOrigin, rDir geom.Vector) (Hit, bool) {
	// Make sure the ray is not parallel to the plane.
	denom := rDir.Dot(p.Normal)
	if denom == 0.0 {
		return Hit{}, false
	}

	// An opaque plane is invisible from the backside of its normal.
	// Refractive planes report those hits so interior rays can escape.
	if p.Mat.Kind != Refractive {
		if denom > 0.0 {
			return Hit{}, false
		}
	}

	// Compute the independent variable of the ray's parametric representation.
	t := p.Normal.Dot(p.Center.Sub(rOrigin)) / denom
	if p.Mat.Kind != Refractive && t <= 0.0 {
		return Hit{}, false
	}

	return Hit{
		Pos: rOrigin.Add(rDir.Scale(t)),
		Normal: p.Normal,
		Incident: rDir,
		Mat: p.Mat,
	}, true
}
