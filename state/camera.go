// Package state provides the scene description consumed by the tracer.
package state

import (
	"github.com/tvanier/glint/geom"
	"math"
)

// These constants are the camera defaults used when a scene leaves them unset.
const (
	DefaultFov float64 = 60.0	// Vertical-ish field of view in degrees (applied along the image width).
	DefaultSamples int = 1		// Anti-aliasing factor; 1 means one sample per pixel.
)

// Camera represents the viewpoint a scene is rendered from.
// Its orientation is a single rotation of the untransformed basis axes
// around Axis by Angle degrees.
type Camera struct {
	Pos geom.Vector
	Axis geom.Vector	// The rotation axis; kept normalized.
	Angle float64		// The rotation angle in degrees; kept within (-180, 180].
	Fov float64			// The field of view in degrees.
	Samples int			// The anti-aliasing factor N of N-by-N supersampling.

	axisX, axisY, axisZ geom.Vector	// The rotated basis axes; kept normalized.
}

// NewCamera initializes a new camera with appropriate orientation values.
// A zero rotation axis means no rotation at all, and non-positive fov or
// sample counts fall back to the defaults.
func NewCamera(pos, axis geom.Vector, angle, fov float64, samples int) Camera {
	if fov <= 0.0 {
		fov = DefaultFov
	}
	if samples < 1 {
		samples = DefaultSamples
	}
	c := Camera{Pos: pos, Axis: axis.Norm(), Angle: normalizeAngle(angle), Fov: fov, Samples: samples}
	c.orient()
	return c
}

// orient recomputes the camera's rotated basis axes.
func (c *Camera) orient() {
	theta := c.Angle * math.Pi / 180.0
	if c.Axis.Zero() {
		c.axisX = geom.Vector{X: 1}
		c.axisY = geom.Vector{Y: 1}
		c.axisZ = geom.Vector{Z: 1}
	}else{
		c.axisX = geom.Vector{X: 1}.Rotate(c.Axis, theta).Norm()
		c.axisY = geom.Vector{Y: 1}.Rotate(c.Axis, theta).Norm()
		c.axisZ = geom.Vector{Z: 1}.Rotate(c.Axis, theta).Norm()
	}
}

// Right returns the camera's rotated X axis.
func (c Camera) Right() geom.Vector {
	return c.axisX
}

// Up returns the camera's rotated Y axis.
func (c Camera) Up() geom.Vector {
	return c.axisY
}

// Forward returns the camera's rotated Z axis.
func (c Camera) Forward() geom.Vector {
	return c.axisZ
}

// RayThrough maps a normalized image coordinate to a world-space camera ray.
// The parameters x and y must be within [0, 1]; x runs left to right and y
// runs top to bottom, so increasing y moves down the image while world up
// increases along the rotated Y axis. The aspect parameter is the image's
// width over its height. The image plane sits one unit along the rotated
// Z axis, with its width spanned by the field of view.
func (c Camera) RayThrough(x, y, aspect float64) geom.Ray {
	planeWidth := 2.0 * math.Tan((c.Fov * math.Pi / 180.0) / 2.0)
	planeHeight := planeWidth / aspect

	// Re-map x into [-w/2, w/2] and y into [h/2, -h/2].
	offsetX := c.axisX.Scale((x - 0.5) * planeWidth)
	offsetY := c.axisY.Scale((0.5 - y) * planeHeight)

	point := c.Pos.Add(c.axisZ).Add(offsetX).Add(offsetY)
	return geom.Ray{Origin: c.Pos, Dir: point.Sub(c.Pos).Norm()}
}

// Move shifts the camera along its rotated basis axes by step units.
// Opposing directions cancel each other out.
func (c *Camera) Move(step float64, forward, backward, leftward, rightward, upward, downward bool) {
	move := geom.Vector{}
	if forward {
		move = move.Add(c.axisZ)
	}
	if backward {
		move = move.Sub(c.axisZ)
	}
	if leftward {
		move = move.Sub(c.axisX)
	}
	if rightward {
		move = move.Add(c.axisX)
	}
	if upward {
		move = move.Add(c.axisY)
	}
	if downward {
		move = move.Sub(c.axisY)
	}

	if !move.Zero() {
		c.Pos = c.Pos.Add(move.Norm().Scale(step))
	}
}

// Turn adjusts the camera's rotation angle by delta degrees and re-orients it.
func (c *Camera) Turn(delta float64) {
	c.Angle = normalizeAngle(c.Angle + delta)
	c.orient()
}

// normalizeAngle wraps an angle in degrees into the range (-180, 180].
// Equivalent rotations (540, -540, -180, ...) all map to the same stored
// angle; the half-turn is canonically 180, never -180.
func normalizeAngle(angle float64) float64 {
	angle = math.Mod(angle, 360.0)
	if angle > 180.0 {
		angle -= 360.0
	}else if angle <= -180.0 {
		angle += 360.0
	}
	return angle
}
