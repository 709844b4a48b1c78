// Package state provides the scene description consumed by the tracer.
package state

import "github.com/tvanier/glint/colour"

// Kind enumerates the shading models a material can use.
type Kind int

// These constants are the supported material kinds.
const (
	Diffuse Kind = iota
	Reflective
	Refractive
)

// String returns the name of the material kind k.
func (k Kind) String() string {
	switch k {
	case Diffuse:
		return "diffuse"
	case Reflective:
		return "reflective"
	case Refractive:
		return "refractive"
	default:
		return "unknown"
	}
}

// Material represents the optical properties of a surface.
type Material struct {
	Kind Kind
	Col colour.RGB	// The albedo of the surface.
	Index float64	// The refractive index; meaningful only when Kind is Refractive.
}
