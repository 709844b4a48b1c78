// Package state provides the scene description consumed by the tracer.
package state

import (
	"github.com/dhconnelly/rtreego"
	"github.com/tvanier/glint/geom"
	"math"
)

// Sphere represents a sphere in 3-dimensional space.
type Sphere struct {
	Center geom.Vector
	Radius float64
	Mat Material
}

// Intersection returns the point at which a ray strikes the sphere s (and true) if one exists.
// If no intersection exists, false is returned instead.
// The ray's direction need not be unit length; it is normalized internally
// so the projection arithmetic stays consistent.
func (s Sphere) Intersection(rOrigin, rDir geom.Vector) (Hit, bool) {
	dir := rDir.Norm()

	// Project the origin-to-center vector onto the ray to find the closest approach.
	toCenter := s.Center.Sub(rOrigin)
	tca := toCenter.Dot(dir)
	dSquared := toCenter.Dot(toCenter) - tca * tca
	if dSquared > s.Radius * s.Radius {
		return Hit{}, false
	}

	// The ray pierces the sphere at tca -/+ thc.
	thc := math.Sqrt(s.Radius * s.Radius - dSquared)
	t1 := tca - thc
	t2 := tca + thc

	// From outside the sphere the near root is the visible surface.
	// From inside, the near root is behind the ray, so the exit point is used.
	var t float64
	if toCenter.Dot(toCenter) < s.Radius * s.Radius {
		t = t2
	}else{
		t = t1
	}
	if t <= 0.0 {
		return Hit{}, false
	}

	point := rOrigin.Add(dir.Scale(t))
	return Hit{
		Pos: point,
		Normal: point.Sub(s.Center).Norm(),
		Incident: rDir,
		Mat: s.Mat,
	}, true
}

// Bounds gets the rectangular bounding box containing the sphere s.
func (s Sphere) Bounds() *rtreego.Rect {
	offset := geom.Vector{X: s.Radius, Y: s.Radius, Z: s.Radius}
	return geom.Box{MinCorner: s.Center.Sub(offset), MaxCorner: s.Center.Add(offset)}.Rect()
}
