package mesh

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/ddm-converter/pkg/math"
)

// ComputeTangent returns the normalized tangent of a triangle from its corner
// positions and texture coordinates.
//
// A degenerate UV triangle (zero determinant) or a zero-length result yields
// a non-finite vector. Callers decide how to treat it; see Vec3.IsFinite.
func ComputeTangent(p0, p1, p2 math.Vec3, t0, t1, t2 math.Vec2) math.Vec3 {
	e1 := p1.Sub(p0)
	e2 := p2.Sub(p0)
	du1 := t1.Sub(t0)
	du2 := t2.Sub(t0)

	// Column-major: columns are du1 and du2.
	uv := mgl32.Mat2{du1.X, du1.Y, du2.X, du2.Y}
	factor := 1 / uv.Det()

	tangent := e1.Scale(du2.Y).Sub(e2.Scale(du1.Y)).Scale(factor)

	mag := tangent.Length()
	return math.Vec3{X: tangent.X / mag, Y: tangent.Y / mag, Z: tangent.Z / mag}
}

// ApplyTangent computes the tangent of tri and writes it to all three of its
// vertices, replacing whatever tangent they held before. Shared vertices end
// up with the tangent of the last triangle applied.
func (c *Container) ApplyTangent(tri Triangle) math.Vec3 {
	v0 := &c.Vertices[tri.X]
	v1 := &c.Vertices[tri.Y]
	v2 := &c.Vertices[tri.Z]

	tangent := ComputeTangent(v0.Position, v1.Position, v2.Position, v0.UV, v1.UV, v2.UV)
	v0.Tangent = tangent
	v1.Tangent = tangent
	v2.Tangent = tangent
	return tangent
}
