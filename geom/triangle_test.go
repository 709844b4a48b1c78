package geom

import (
	"math"
	"testing"
)

func TestTriangleIntersection(t *testing.T) {
	unit := Triangle{P1: Vector{X: 0, Y: 0, Z: 0}, P2: Vector{X: 1, Y: 0, Z: 0}, P3: Vector{X: 0, Y: 1, Z: 0}}

	tests := []struct {
		name string
		tri Triangle
		origin Vector
		dir Vector
		cull bool
		hit bool
		point Vector
	}{
		{"interior hit", unit, Vector{X: 0.25, Y: 0.25, Z: -1}, Vector{X: 0, Y: 0, Z: 1}, false, true, Vector{X: 0.25, Y: 0.25, Z: 0}},
		{"outside the face", unit, Vector{X: 0.75, Y: 0.75, Z: -1}, Vector{X: 0, Y: 0, Z: 1}, false, false, Vector{}},
		{"parallel ray", unit, Vector{X: 0.25, Y: 0.25, Z: -1}, Vector{X: 1, Y: 0, Z: 0}, false, false, Vector{}},
		{"back face culled", unit, Vector{X: 0.25, Y: 0.25, Z: -1}, Vector{X: 0, Y: 0, Z: 1}, true, false, Vector{}},
		{"front face kept under culling", unit, Vector{X: 0.25, Y: 0.25, Z: 1}, Vector{X: 0, Y: 0, Z: -1}, true, true, Vector{X: 0.25, Y: 0.25, Z: 0}},
		{"behind the origin culled", unit, Vector{X: 0.25, Y: 0.25, Z: -1}, Vector{X: 0, Y: 0, Z: -1}, true, false, Vector{}},
		{"behind the origin kept without culling", unit, Vector{X: 0.25, Y: 0.25, Z: 1}, Vector{X: 0, Y: 0, Z: 1}, false, true, Vector{X: 0.25, Y: 0.25, Z: 0}},
		{"degenerate triangle", Triangle{P1: Vector{X: 0, Y: 0, Z: 0}, P2: Vector{X: 1, Y: 1, Z: 1}, P3: Vector{X: 2, Y: 2, Z: 2}}, Vector{X: 0, Y: 0, Z: -1}, Vector{X: 0, Y: 0, Z: 1}, false, false, Vector{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			point, _, hit := tt.tri.Intersection(tt.origin, tt.dir, tt.cull)
			if hit != tt.hit {
				t.Fatalf("expected hit = %v, got %v", tt.hit, hit)
			}
			if hit && !vectorsClose(point, tt.point) {
				t.Errorf("expected intersection at %v, got %v", tt.point, point)
			}
		})
	}
}

func TestTriangleBarycentricWeights(t *testing.T) {
	tri := Triangle{P1: Vector{X: 0, Y: 0, Z: 0}, P2: Vector{X: 1, Y: 0, Z: 0}, P3: Vector{X: 0, Y: 1, Z: 0}}

	tests := []struct {
		name string
		origin Vector
		weights [3]float64
	}{
		{"first vertex", Vector{X: 0, Y: 0, Z: -1}, [3]float64{1, 0, 0}},
		{"second vertex", Vector{X: 1, Y: 0, Z: -1}, [3]float64{0, 1, 0}},
		{"third vertex", Vector{X: 0, Y: 1, Z: -1}, [3]float64{0, 0, 1}},
		{"centroid", Vector{X: 1.0 / 3.0, Y: 1.0 / 3.0, Z: -1}, [3]float64{1.0 / 3.0, 1.0 / 3.0, 1.0 / 3.0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, weights, hit := tri.Intersection(tt.origin, Vector{X: 0, Y: 0, Z: 1}, false)
			if !hit {
				t.Fatal("expected an intersection")
			}
			sum := 0.0
			for i := range weights {
				if math.Abs(weights[i] - tt.weights[i]) > tolerance {
					t.Errorf("weight %d: expected %v, got %v", i, tt.weights[i], weights[i])
				}
				sum += weights[i]
			}
			if math.Abs(sum - 1.0) > tolerance {
				t.Errorf("expected the weights to sum to 1, got %v", sum)
			}
		})
	}
}

func TestTriangleNormal(t *testing.T) {
	tri := Triangle{P1: Vector{X: 0, Y: 0, Z: 0}, P2: Vector{X: 1, Y: 0, Z: 0}, P3: Vector{X: 0, Y: 1, Z: 0}}

	if got := tri.Normal(); !vectorsClose(got, Vector{X: 0, Y: 0, Z: 1}) {
		t.Errorf("expected (0, 0, 1), got %v", got)
	}

	flipped := Triangle{P1: Vector{X: 0, Y: 0, Z: 0}, P2: Vector{X: 0, Y: 1, Z: 0}, P3: Vector{X: 1, Y: 0, Z: 0}}
	if got := flipped.Normal(); !vectorsClose(got, Vector{X: 0, Y: 0, Z: -1}) {
		t.Errorf("expected the opposite winding to flip the normal, got %v", got)
	}
}

func TestTriangleInterpNormal(t *testing.T) {
	tri := Triangle{
		P1: Vector{X: 0, Y: 0, Z: 0},
		P2: Vector{X: 1, Y: 0, Z: 0},
		P3: Vector{X: 0, Y: 1, Z: 0},
		N1: Vector{X: 1, Y: 0, Z: 0},
		N2: Vector{X: 0, Y: 1, Z: 0},
		N3: Vector{X: 0, Y: 0, Z: 1},
	}

	if !tri.HasVertexNormals() {
		t.Fatal("expected the triangle to carry vertex normals")
	}

	// At a vertex the interpolated normal is that vertex's normal.
	if got := tri.InterpNormal([3]float64{1, 0, 0}); !vectorsClose(got, Vector{X: 1, Y: 0, Z: 0}) {
		t.Errorf("expected (1, 0, 0), got %v", got)
	}

	// Away from the vertices the blend is re-normalized to unit length.
	got := tri.InterpNormal([3]float64{1.0 / 3.0, 1.0 / 3.0, 1.0 / 3.0})
	if math.Abs(got.Len() - 1.0) > tolerance {
		t.Errorf("expected a unit normal, got length %v", got.Len())
	}
	inv := 1.0 / math.Sqrt(3.0)
	if !vectorsClose(got, Vector{X: inv, Y: inv, Z: inv}) {
		t.Errorf("expected (%v, %v, %v), got %v", inv, inv, inv, got)
	}
}
