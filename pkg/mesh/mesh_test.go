package mesh

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/ddm-converter/pkg/math"
)

func vecNear(a, b math.Vec3) bool {
	const eps = 1e-5
	return mgl32.FloatEqualThreshold(a.X, b.X, eps) &&
		mgl32.FloatEqualThreshold(a.Y, b.Y, eps) &&
		mgl32.FloatEqualThreshold(a.Z, b.Z, eps)
}

func TestComputeTangent_UnitTriangle(t *testing.T) {
	got := ComputeTangent(
		math.Vec3{X: 0, Y: 0, Z: 0},
		math.Vec3{X: 1, Y: 0, Z: 0},
		math.Vec3{X: 0, Y: 1, Z: 0},
		math.Vec2{X: 0, Y: 0},
		math.Vec2{X: 1, Y: 0},
		math.Vec2{X: 0, Y: 1},
	)

	if !vecNear(got, math.Vec3{X: 1}) {
		t.Errorf("expected tangent (1,0,0), got %v", got)
	}
}

func TestComputeTangent_IsUnitLength(t *testing.T) {
	tests := []struct {
		name       string
		p0, p1, p2 math.Vec3
		t0, t1, t2 math.Vec2
	}{
		{
			name: "scaled",
			p0:   math.Vec3{X: 0, Y: 0, Z: 0},
			p1:   math.Vec3{X: 10, Y: 0, Z: 0},
			p2:   math.Vec3{X: 0, Y: 0, Z: 10},
			t0:   math.Vec2{X: 0, Y: 0},
			t1:   math.Vec2{X: 1, Y: 0},
			t2:   math.Vec2{X: 0, Y: 1},
		},
		{
			name: "skewed",
			p0:   math.Vec3{X: 1, Y: 2, Z: 3},
			p1:   math.Vec3{X: 4, Y: -1, Z: 2},
			p2:   math.Vec3{X: 0, Y: 5, Z: 7},
			t0:   math.Vec2{X: 0.1, Y: 0.2},
			t1:   math.Vec2{X: 0.9, Y: 0.3},
			t2:   math.Vec2{X: 0.4, Y: 0.8},
		},
		{
			name: "mirrored uv",
			p0:   math.Vec3{X: 0, Y: 0, Z: 0},
			p1:   math.Vec3{X: 1, Y: 0, Z: 0},
			p2:   math.Vec3{X: 0, Y: 1, Z: 0},
			t0:   math.Vec2{X: 1, Y: 0},
			t1:   math.Vec2{X: 0, Y: 0},
			t2:   math.Vec2{X: 1, Y: 1},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ComputeTangent(tc.p0, tc.p1, tc.p2, tc.t0, tc.t1, tc.t2)
			if !got.IsFinite() {
				t.Fatalf("expected finite tangent, got %v", got)
			}
			if l := got.Length(); !mgl32.FloatEqualThreshold(l, 1, 1e-5) {
				t.Errorf("expected unit length, got %v", l)
			}
		})
	}
}

func TestComputeTangent_DegenerateUV(t *testing.T) {
	uv := math.Vec2{X: 0.5, Y: 0.5}
	got := ComputeTangent(
		math.Vec3{X: 0, Y: 0, Z: 0},
		math.Vec3{X: 1, Y: 0, Z: 0},
		math.Vec3{X: 0, Y: 1, Z: 0},
		uv, uv, uv,
	)
	if got.IsFinite() {
		t.Errorf("expected non-finite tangent for collapsed UVs, got %v", got)
	}
}

func TestApplyTangent_Overwrites(t *testing.T) {
	c := &Container{
		Vertices: []Vertex{
			{Position: math.Vec3{X: 0, Y: 0}, UV: math.Vec2{X: 0, Y: 0}},
			{Position: math.Vec3{X: 1, Y: 0}, UV: math.Vec2{X: 1, Y: 0}},
			{Position: math.Vec3{X: 0, Y: 1}, UV: math.Vec2{X: 0, Y: 1}},
			{Position: math.Vec3{X: 1, Y: 1}, UV: math.Vec2{X: 1, Y: 0}},
		},
	}

	first := c.ApplyTangent(Triangle{X: 0, Y: 1, Z: 2})
	for i := 0; i < 3; i++ {
		if c.Vertices[i].Tangent != first {
			t.Errorf("vertex %d: expected tangent %v, got %v", i, first, c.Vertices[i].Tangent)
		}
	}
	if c.Vertices[3].Tangent != (math.Vec3{}) {
		t.Errorf("untouched vertex should keep zero tangent, got %v", c.Vertices[3].Tangent)
	}

	// Second triangle shares vertices 0 and 2 and uses a rotated UV layout.
	second := c.ApplyTangent(Triangle{X: 0, Y: 2, Z: 3})
	if vecNear(first, second) {
		t.Fatalf("test setup: expected different tangents, both %v", first)
	}
	for _, i := range []int{0, 2, 3} {
		if c.Vertices[i].Tangent != second {
			t.Errorf("vertex %d: expected last tangent %v, got %v", i, second, c.Vertices[i].Tangent)
		}
	}
	if c.Vertices[1].Tangent != first {
		t.Errorf("vertex 1 should keep first tangent, got %v", c.Vertices[1].Tangent)
	}
}

func TestContainer_SubMeshTriangles(t *testing.T) {
	c := &Container{
		Triangles: []Triangle{{X: 0, Y: 1, Z: 2}, {X: 2, Y: 1, Z: 3}, {X: 3, Y: 4, Z: 5}},
		SubMeshes: []SubMesh{{Start: 0, End: 1}, {Start: 1, End: 3}},
	}

	if got := c.SubMeshTriangles(0); len(got) != 1 || got[0] != c.Triangles[0] {
		t.Errorf("sub-mesh 0: got %v", got)
	}
	got := c.SubMeshTriangles(1)
	if len(got) != 2 || got[0] != c.Triangles[1] || got[1] != c.Triangles[2] {
		t.Errorf("sub-mesh 1: got %v", got)
	}
	if c.SubMeshTriangles(2) != nil {
		t.Error("expected nil for out of range sub-mesh")
	}
	if c.IndexCount() != 9 {
		t.Errorf("expected 9 indices, got %d", c.IndexCount())
	}
}

func TestContainer_ComputeBounds(t *testing.T) {
	c := &Container{
		Vertices: []Vertex{
			{Position: math.Vec3{X: 1, Y: -2, Z: 0}},
			{Position: math.Vec3{X: -3, Y: 4, Z: 5}},
			{Position: math.Vec3{X: 0, Y: 0, Z: -1}},
		},
	}
	c.ComputeBounds()

	if c.Bounds.Min != (math.Vec3{X: -3, Y: -2, Z: -1}) {
		t.Errorf("unexpected min %v", c.Bounds.Min)
	}
	if c.Bounds.Max != (math.Vec3{X: 1, Y: 4, Z: 5}) {
		t.Errorf("unexpected max %v", c.Bounds.Max)
	}

	empty := &Container{}
	empty.ComputeBounds()
	if empty.Bounds != (Bounds{}) {
		t.Errorf("expected zero bounds, got %v", empty.Bounds)
	}
}
