// Package trace provides the closest-hit, visibility, and recursive shading
// queries at the heart of the ray tracer, along with the render driver.
package trace

import (
	"github.com/tvanier/glint/geom"
	"github.com/tvanier/glint/state"
)

// This constant is the offset applied when nudging a point off a surface,
// so that a secondary ray (or a distance comparison) cannot re-detect the
// surface the point already lies on due to floating-point rounding.
const hitBias float64 = 0.0001

// ClosestHit traces a single ray through an environment and returns the
// nearest surface intersection ahead of the ray (and true) if one exists.
// If no surface is struck, false is returned instead.
// Candidate hit points are nudged back along the ray before their distances
// are compared; the returned hit itself is never biased.
func ClosestHit(env *state.Environment, rOrigin, rDir geom.Vector) (state.Hit, bool) {
	nearestExists := false
	var nearestDistance float64
	var nearest state.Hit

	for _, s := range env.Candidates(rOrigin, rDir) {
		hit, ok := s.Intersection(rOrigin, rDir)
		if !ok {
			continue
		}

		// Keep the hit only if it lies ahead of the ray.
		offset := hit.Pos.Sub(rDir.Scale(hitBias)).Sub(rOrigin)
		if offset.Dot(rDir) <= 0.0 {
			continue
		}

		distance := offset.Dot(offset)
		if !nearestExists || distance < nearestDistance {
			nearestExists = true
			nearestDistance = distance
			nearest = hit
		}
	}

	return nearest, nearestExists
}

// LineOfSight reports whether the segment between a surface point and a
// destination (typically a light) is free of occluders.
// The shadow ray is cast from the destination back toward the point, which
// keeps precision error away from the destination, and the segment is
// shortened by a small offset so the surface under the point cannot occlude
// itself.
func LineOfSight(env *state.Environment, from, to geom.Vector) bool {
	segment := from.Sub(to)
	segmentLength := segment.Len() - hitBias
	dir := segment.Norm()

	for _, s := range env.Candidates(to, dir) {
		hit, ok := s.Intersection(to, dir)
		if !ok {
			continue
		}

		// The hit occludes only if it lies strictly between the destination
		// and the (offset) surface point.
		projected := hit.Pos.Sub(to).Dot(dir)
		if projected > 0.0 && projected < segmentLength {
			return false
		}
	}

	return true
}
