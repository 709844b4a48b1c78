// Package state provides the scene description consumed by the tracer.
package state

import (
	"github.com/dhconnelly/rtreego"
	"github.com/tvanier/glint/geom"
	"runtime"
	"sync"
)

// This constant is the face count below which a mesh scan is not worth parallelizing.
const parallelFaceThreshold = 64

// faceHit carries one worker's best candidate out of the parallel face scan.
type faceHit struct {
	hit Hit
	distance float64	// Squared distance from the ray origin to the bias-corrected hit point.
	ok bool
}

// Mesh represents a triangulated polygonal mesh behind a single bounding volume.
// The triangle list and the bounding box are produced by a mesh loader; the
// mesh itself never reads any file format.
type Mesh struct {
	faces []geom.Triangle
	bounds geom.Box
	Mat Material
}

// NewMesh creates a new mesh from pre-built triangles and their precomputed bounding box.
func NewMesh(faces []geom.Triangle, bounds geom.Box, mat Material) *Mesh {
	return &Mesh{faces: faces, bounds: bounds, Mat: mat}
}

// Faces returns the number of triangles in the mesh m.
func (m *Mesh) Faces() int {
	return len(m.faces)
}

// Intersection returns the nearest point at which a ray strikes the mesh m (and true) if one exists.
// If no intersection exists, false is returned instead.
// The ray is first tested against the mesh's bounding box; only on a box hit
// are the member triangles scanned. The scan partitions the faces across
// workers which each track a local minimum, and the partial results are
// merged afterwards, so the outcome never depends on goroutine scheduling.
func (m *Mesh) Intersection(rOrigin, rDir geom.Vector) (Hit, bool) {
	if !m.bounds.Intersect(rOrigin, rDir) {
		return Hit{}, false
	}

	workers := runtime.NumCPU()
	if len(m.faces) < parallelFaceThreshold || workers <= 1 {
		best := m.scanFaces(rOrigin, rDir, 0, len(m.faces))
		return best.hit, best.ok
	}
	if workers > len(m.faces) {
		workers = len(m.faces)
	}

	// Scan disjoint chunks of the face list concurrently.
	locals := make([]faceHit, workers)
	chunk := (len(m.faces) + workers - 1) / workers
	wg := sync.WaitGroup{}
	for w := 0; w < workers; w++ {
		begin := w * chunk
		end := begin + chunk
		if end > len(m.faces) {
			end = len(m.faces)
		}

		wg.Add(1)
		go func(w, begin, end int) {
			defer wg.Done()
			locals[w] = m.scanFaces(rOrigin, rDir, begin, end)
		}(w, begin, end)
	}
	wg.Wait()

	// Merge the per-worker minima into a single global minimum.
	best := faceHit{}
	for _, l := range locals {
		if l.ok && (!best.ok || l.distance < best.distance) {
			best = l
		}
	}
	return best.hit, best.ok
}

// scanFaces finds the nearest valid hit among the faces in [begin, end).
// Candidate hit points are nudged back along the ray before comparing so a
// grazing face cannot win on floating-point noise alone.
func (m *Mesh) scanFaces(rOrigin, rDir geom.Vector, begin, end int) faceHit {
	best := faceHit{}
	cull := m.Mat.Kind != Refractive
	for i := begin; i < end; i++ {
		intersect, bcoords, hit := m.faces[i].Intersection(rOrigin, rDir, cull)
		if !hit {
			continue
		}

		// Re-bias the candidate against the ray origin and keep the smallest
		// positive squared distance along the ray's direction.
		offset := intersect.Sub(rDir.Scale(hitBias)).Sub(rOrigin)
		if offset.Dot(rDir) <= 0.0 {
			continue
		}
		distance := offset.Dot(offset)
		if best.ok && distance >= best.distance {
			continue
		}

		var normal geom.Vector
		if m.faces[i].HasVertexNormals() {
			normal = m.faces[i].InterpNormal(bcoords)
		}else{
			normal = m.faces[i].Normal()
		}
		best = faceHit{
			hit: Hit{Pos: intersect, Normal: normal, Incident: rDir, Mat: m.Mat},
			distance: distance,
			ok: true,
		}
	}
	return best
}

// Bounds gets the rectangular bounding box containing the mesh m.
func (m *Mesh) Bounds() *rtreego.Rect {
	return m.bounds.Rect()
}
