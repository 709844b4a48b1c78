// Package state provides the scene description consumed by the tracer.
package state

import (
	"github.com/dhconnelly/rtreego"
	"github.com/tvanier/glint/geom"
	"math"
)

// DefaultMaxDepth bounds the recursive shading of mirrors and refractive volumes.
// It is the sole termination guarantee between two facing mirrors.
const DefaultMaxDepth int = 10

// Environment represents a 3-dimensional space full of surfaces and lights.
// It is built once before rendering and must not be mutated while a render
// is in flight; every query on it is read-only and safe to share.
type Environment struct {
	Cam Camera
	Lights []Light
	MaxDepth int

	bounded *rtreego.Rtree	// Surfaces with finite extents, indexed spatially.
	unbounded []Surface		// Surfaces with infinite extents (planes).
	bounds geom.Box			// The union of every bounded surface's box.
	hasBounds bool
	surfaces int
}

// NewEnvironment creates an empty environment seen through the camera cam.
func NewEnvironment(cam Camera) *Environment {
	return &Environment{
		Cam: cam,
		MaxDepth: DefaultMaxDepth,
		bounded: rtreego.NewTree(3, 2, 5),
	}
}

// Add inserts a surface into the environment.
// Surfaces which can report finite bounds go into the spatial index; the
// rest are scanned linearly by every query.
func (e *Environment) Add(s Surface) {
	if spatial, ok := s.(rtreego.Spatial); ok {
		e.bounded.Insert(spatial)

		box := geom.NewBox(spatial.Bounds())
		if e.hasBounds {
			e.bounds = e.bounds.Extend(box)
		}else{
			e.bounds = box
			e.hasBounds = true
		}
	}else{
		e.unbounded = append(e.unbounded, s)
	}
	e.surfaces++
}

// AddLight inserts a point light into the environment.
func (e *Environment) AddLight(l Light) {
	e.Lights = append(e.Lights, l)
}

// Surfaces returns the number of surfaces in the environment e.
func (e *Environment) Surfaces() int {
	return e.surfaces
}

// Candidates returns every surface a ray could possibly strike.
// Bounded surfaces are gathered by searching the spatial index over the
// ray's extent clipped to the scene bounds, then confirmed with an exact
// box test; unbounded surfaces are always candidates.
func (e *Environment) Candidates(rOrigin, rDir geom.Vector) []Surface {
	candidates := make([]Surface, 0, len(e.unbounded) + 4)
	candidates = append(candidates, e.unbounded...)

	if !e.hasBounds || rDir.Zero() {
		return candidates
	}
	tMin, tMax, hit := e.bounds.Clip(rOrigin, rDir)
	if !hit {
		return candidates
	}
	if tMin < 0.0 {
		tMin = 0.0
	}

	// Build a rectangle covering the clipped ray segment and search it.
	p0 := rOrigin.Add(rDir.Scale(tMin))
	p1 := rOrigin.Add(rDir.Scale(tMax))
	segment := geom.Box{
		MinCorner: geom.Vector{
			X: math.Min(p0.X, p1.X),
			Y: math.Min(p0.Y, p1.Y),
			Z: math.Min(p0.Z, p1.Z),
		},
		MaxCorner: geom.Vector{
			X: math.Max(p0.X, p1.X),
			Y: math.Max(p0.Y, p1.Y),
			Z: math.Max(p0.Z, p1.Z),
		},
	}
	for _, spatial := range e.bounded.SearchIntersect(segment.Rect()) {
		// The rectangle overlap is conservative; confirm with the exact slab test.
		if geom.NewBox(spatial.Bounds()).Intersect(rOrigin, rDir) {
			candidates = append(candidates, spatial.(Surface))
		}
	}
	return candidates
}
