// Package state provides the scene description consumed by the tracer.
package state

import (
	"github.com/tvanier/glint/colour"
	"github.com/tvanier/glint/geom"
)

// Light represents a point of light in 3-dimensional space.
type Light struct {
	Pos geom.Vector
	Col colour.RGB
}
