// Package geom provides the geometric primitives shared by every part of the ray tracer.
package geom

import (
	"github.com/dhconnelly/rtreego"
	"math"
)

// This constant is the lowest possible size of a bounding box in any dimension.
// R-Tree rectangles must have positive extents, so degenerate boxes are padded up to it.
const boundEpsilon float64 = 0.0001

// Box represents a rectangular 3-dimensional axis-aligned box.
type Box struct {
	MinCorner Vector	// The position of the corner with the smallest coordinate values.
	MaxCorner Vector	// The position of the corner with the largest coordinate values.
}

// NewBox creates a new box from an R-Tree's bounding rectangle.
func NewBox(bbox *rtreego.Rect) Box {
	return Box{
		MinCorner: Vector{bbox.PointCoord(0), bbox.PointCoord(1), bbox.PointCoord(2)},
		MaxCorner: Vector{bbox.PointCoord(0) + bbox.LengthsCoord(0), bbox.PointCoord(1) + bbox.LengthsCoord(1), bbox.PointCoord(2) + bbox.LengthsCoord(2)},
	}
}

// Rect converts the box b into an R-Tree bounding rectangle.
// Extents below boundEpsilon are padded so the rectangle stays valid.
func (b Box) Rect() *rtreego.Rect {
	lengths := []float64{
		b.MaxCorner.X - b.MinCorner.X,
		b.MaxCorner.Y - b.MinCorner.Y,
		b.MaxCorner.Z - b.MinCorner.Z,
	}
	for i := range lengths {
		if lengths[i] < boundEpsilon {
			lengths[i] = boundEpsilon
		}
	}
	rect, err := rtreego.NewRect(rtreego.Point{b.MinCorner.X, b.MinCorner.Y, b.MinCorner.Z}, lengths)
	if err != nil {
		panic(err)
	}
	return rect
}

// Extend returns the smallest box containing both b and other.
func (b Box) Extend(other Box) Box {
	return Box{
		MinCorner: Vector{
			X: math.Min(b.MinCorner.X, other.MinCorner.X),
			Y: math.Min(b.MinCorner.Y, other.MinCorner.Y),
			Z: math.Min(b.MinCorner.Z, other.MinCorner.Z),
		},
		MaxCorner: Vector{
			X: math.Max(b.MaxCorner.X, other.MaxCorner.X),
			Y: math.Max(b.MaxCorner.Y, other.MaxCorner.Y),
			Z: math.Max(b.MaxCorner.Z, other.MaxCorner.Z),
		},
	}
}

// Clip intersects a ray against the box b using the slab method.
// The per-axis near/far bounds are chosen by the sign of the ray's direction,
// and the surviving parameter interval [tMin, tMax] is returned.
// The last return value is false if the interval is empty or lies entirely behind the ray.
func (b Box) Clip(rOrigin, rDir Vector) (float64, float64, bool) {
	origins := [3]float64{rOrigin.X, rOrigin.Y, rOrigin.Z}
	dirs := [3]float64{rDir.X, rDir.Y, rDir.Z}
	mins := [3]float64{b.MinCorner.X, b.MinCorner.Y, b.MinCorner.Z}
	maxs := [3]float64{b.MaxCorner.X, b.MaxCorner.Y, b.MaxCorner.Z}

	tMin, tMax := math.Inf(-1), math.Inf(1)
	for axis := 0; axis < 3; axis++ {
		if dirs[axis] == 0.0 {
			// The ray runs parallel to this pair of slabs.
			// It intersects the box only if its origin lies between them.
			if origins[axis] < mins[axis] || maxs[axis] < origins[axis] {
				return 0.0, 0.0, false
			}
			continue
		}

		// Enter through the near slab, leave through the far one.
		tNear := (mins[axis] - origins[axis]) / dirs[axis]
		tFar := (maxs[axis] - origins[axis]) / dirs[axis]
		if dirs[axis] < 0.0 {
			tNear, tFar = tFar, tNear
		}

		// Shrink the surviving interval, rejecting early if it empties.
		if tNear > tMin {
			tMin = tNear
		}
		if tFar < tMax {
			tMax = tFar
		}
		if tMax < tMin {
			return 0.0, 0.0, false
		}
	}

	// The box may still be entirely behind the ray's origin.
	if tMax < 0.0 {
		return 0.0, 0.0, false
	}
	return tMin, tMax, true
}

// Intersect determines whether a ray intersects the box b.
func (b Box) Intersect(rOrigin, rDir Vector) bool {
	_, _, hit := b.Clip(rOrigin, rDir)
	return hit
}
