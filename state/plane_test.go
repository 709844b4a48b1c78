package state

import (
	"testing"

	"github.com/tvanier/glint/geom"
)

func TestPlaneIntersection(t *testing.T) {
	floor := NewPlane(geom.Vector{X: 0, Y: -1, Z: 0}, geom.Vector{X: 0, Y: 1, Z: 0}, Material{Kind: Diffuse})

	hit, ok := floor.Intersection(geom.Vector{X: 0, Y: 1, Z: 0}, geom.Vector{X: 0, Y: -1, Z: 0})
	if !ok {
		t.Fatal("expected an intersection")
	}
	if !vectorsClose(hit.Pos, geom.Vector{X: 0, Y: -1, Z: 0}) {
		t.Errorf("expected (0, -1, 0), got %v", hit.Pos)
	}
	if !vectorsClose(hit.Normal, geom.Vector{X: 0, Y: 1, Z: 0}) {
		t.Errorf("expected the plane's normal, got %v", hit.Normal)
	}
}

func TestPlaneIntersectionMisses(t *testing.T) {
	floor := NewPlane(geom.Vector{X: 0, Y: -1, Z: 0}, geom.Vector{X: 0, Y: 1, Z: 0}, Material{Kind: Diffuse})

	tests := []struct {
		name string
		origin geom.Vector
		dir geom.Vector
	}{
		{"parallel ray", geom.Vector{X: 0, Y: 1, Z: 0}, geom.Vector{X: 1, Y: 0, Z: 0}},
		{"approaching from behind", geom.Vector{X: 0, Y: -2, Z: 0}, geom.Vector{X: 0, Y: 1, Z: 0}},
		{"plane behind the ray", geom.Vector{X: 0, Y: 1, Z: 0}, geom.Vector{X: 0, Y: 1, Z: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := floor.Intersection(tt.origin, tt.dir); ok {
				t.Error("expected no intersection")
			}
		})
	}
}

func TestPlaneNormalizesNormal(t *testing.T) {
	floor := NewPlane(geom.Vector{X: 0, Y: -1, Z: 0}, geom.Vector{X: 0, Y: 7, Z: 0}, Material{Kind: Diffuse})

	if !vectorsClose(floor.Normal, geom.Vector{X: 0, Y: 1, Z: 0}) {
		t.Errorf("expected the stored normal to be unit length, got %v", floor.Normal)
	}
}

func TestRefractivePlaneReportsBackFaces(t *testing.T) {
	glass := NewPlane(geom.Vector{X: 0, Y: -1, Z: 0}, geom.Vector{X: 0, Y: 1, Z: 0}, Material{Kind: Refractive, Index: 1.5})

	// A ray inside the volume, travelling with the normal, must still find the face.
	hit, ok := glass.Intersection(geom.Vector{X: 0, Y: -2, Z: 0}, geom.Vector{X: 0, Y: 1, Z: 0})
	if !ok {
		t.Fatal("expected a back-facing intersection on a refractive plane")
	}
	if !vectorsClose(hit.Pos, geom.Vector{X: 0, Y: -1, Z: 0}) {
		t.Errorf("expected (0, -1, 0), got %v", hit.Pos)
	}
}
