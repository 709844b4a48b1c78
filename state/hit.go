// Package state provides the scene description consumed by the tracer.
package state

import "github.com/tvanier/glint/geom"

// Hit represents a single ray/surface intersection.
// A hit is never mutated once constructed; consumers that need a nudged
// position make a biased copy instead.
type Hit struct {
	Pos geom.Vector			// The world-space point of intersection.
	Normal geom.Vector		// The surface normal at the point of intersection.
	Incident geom.Vector	// The direction of the ray which produced the hit.
	Mat Material			// The material of the surface that was struck.
}

// Surface represents any entity in a scene which a ray can strike.
// The intersection contract follows the primitive conventions: only hits
// ahead of the ray are reported, except that refractive surfaces also report
// back-facing hits so rays inside a transparent volume can find their exit.
type Surface interface {
	Intersection(rOrigin, rDir geom.Vector) (Hit, bool)
}
