// Package geom provides the geometric primitives shared by every part of the ray tracer.
package geom

// Ray represents a half-line in 3-dimensional space.
// Whether Dir is unit length is up to the caller; every consumer in this
// module states its own convention.
type Ray struct {
	Origin Vector
	Dir Vector
}

// At returns the point along the ray r at parameter t.
func (r Ray) At(t float64) Vector {
	return r.Origin.Add(r.Dir.Scale(t))
}
