// Package trace provides the closest-hit, visibility, and recursive shading
// queries at the heart of the ray tracer, along with the render driver.
package trace

import (
	"github.com/tvanier/glint/colour"
	"github.com/tvanier/glint/state"
	"math"
)

// ResolveColor computes the colour carried back along the ray that produced
// the hit, dispatching on the hit surface's material kind.
// Recursion through mirrors and refractive volumes is cut off at the
// environment's maximum depth; a ray that exhausts its depth, like a ray
// that escapes the scene, contributes black.
func ResolveColor(env *state.Environment, hit state.Hit, depth int) colour.RGB {
	switch hit.Mat.Kind {
	case state.Reflective:
		return reflected(env, hit, depth)
	case state.Refractive:
		return refracted(env, hit, depth)
	default:
		return diffuse(env, hit)
	}
}

// diffuse accumulates the contribution of every visible point light.
func diffuse(env *state.Environment, hit state.Hit) colour.RGB {
	normal := hit.Normal.Norm()

	// Nudge the shaded point off its surface to avoid shadow acne.
	biased := hit.Pos.Add(normal.Scale(hitBias))

	shade := colour.RGB{}
	for _, l := range env.Lights {
		// A light below the surface's horizon contributes nothing.
		toLight := l.Pos.Sub(biased)
		lambert := normal.Dot(toLight.Norm())
		if lambert <= 0.0 {
			continue
		}

		if LineOfSight(env, biased, l.Pos) {
			shade = shade.Add(hit.Mat.Col.Multiply(l.Col).Scale(lambert))
		}
	}
	return shade
}

// reflected resolves the colour arriving along the mirror reflection of the
// hit's incident ray, recursing one level deeper.
func reflected(env *state.Environment, hit state.Hit, depth int) colour.RGB {
	if depth >= env.MaxDepth {
		return colour.RGB{}
	}

	normal := hit.Normal.Norm()
	incident := hit.Incident.Norm()

	// Mirror the incident direction about the surface normal.
	dir := incident.Sub(normal.Scale(2.0 * incident.Dot(normal)))
	origin := hit.Pos.Add(normal.Scale(hitBias))

	if next, ok := ClosestHit(env, origin, dir); ok {
		return ResolveColor(env, next, depth + 1)
	}
	return colour.RGB{}
}

// refracted resolves a refractive hit by blending the transmitted and
// reflected colours with the Fresnel reflectance of the interface.
func refracted(env *state.Environment, hit state.Hit, depth int) colour.RGB {
	if depth >= env.MaxDepth {
		return colour.RGB{}
	}

	normal := hit.Normal.Norm()
	incident := hit.Incident.Norm()

	// Decide whether the ray is entering or exiting the medium.
	// On exit the geometric normal points the wrong way, so it is flipped
	// and the refractive indices trade places.
	etaI, etaT := 1.0, hit.Mat.Index
	if normal.Dot(incident) > 0.0 {
		normal = normal.Scale(-1.0)
		etaI, etaT = etaT, etaI
	}
	cosI := math.Min(normal.Dot(incident.Scale(-1.0)), 1.0)

	// A negative discriminant means the transmitted ray does not exist:
	// the light is totally internally reflected.
	eta := etaI / etaT
	k := 1.0 - eta * eta * (1.0 - cosI * cosI)
	if k < 0.0 {
		return reflected(env, hit, depth)
	}

	// Construct the transmitted ray and resolve whatever it strikes.
	transmitted := incident.Scale(eta).Add(normal.Scale(eta * cosI - math.Sqrt(k))).Norm()
	origin := hit.Pos.Sub(normal.Scale(hitBias))

	refractedCol := colour.RGB{}
	if next, ok := ClosestHit(env, origin, transmitted); ok {
		refractedCol = ResolveColor(env, next, depth + 1)
	}
	reflectedCol := reflected(env, hit, depth)

	fr := fresnel(etaI, etaT, cosI)
	return refractedCol.Scale(1.0 - fr).Add(reflectedCol.Scale(fr))
}

// fresnel returns the unpolarized Fresnel reflectance of a dielectric
// interface: the average of the parallel and perpendicular polarization
// reflectances. When the transmitted sine reaches 1 the interface reflects
// everything.
func fresnel(etaI, etaT, cosI float64) float64 {
	sinT := etaI / etaT * math.Sqrt(math.Max(0.0, 1.0 - cosI * cosI))
	if sinT >= 1.0 {
		return 1.0
	}

	cosT := math.Sqrt(math.Max(0.0, 1.0 - sinT * sinT))
	rPerp := (etaT * cosI - etaI * cosT) / (etaT * cosI + etaI * cosT)
	rPara := (etaI * cosI - etaT * cosT) / (etaI * cosI + etaT * cosT)
	return (rPerp * rPerp + rPara * rPara) / 2.0
}
