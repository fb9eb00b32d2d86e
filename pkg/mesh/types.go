// Package mesh holds the engine-side mesh container produced by the OBJ
// converter and consumed by the DDM exporter.
package mesh

import (
	"github.com/Faultbox/ddm-converter/pkg/math"
)

// Vertex is a single entry of the vertex buffer.
type Vertex struct {
	Position math.Vec3
	Normal   math.Vec3
	UV       math.Vec2
	Tangent  math.Vec3 // Zero until a triangle using the vertex is processed.
}

// Triangle holds three indices into the vertex buffer.
type Triangle = math.Vec3u

// SubMesh is the half-open range [Start, End) over the triangle list.
type SubMesh struct {
	Start uint32
	End   uint32
}

// Len returns the number of triangles in the range.
func (s SubMesh) Len() uint32 {
	return s.End - s.Start
}

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	Min math.Vec3
	Max math.Vec3
}

// Container is a finished mesh ready for export.
type Container struct {
	Name      string
	Vertices  []Vertex
	Triangles []Triangle
	SubMeshes []SubMesh
	Bounds    Bounds
}

// IndexCount returns the number of triangle indices (3 per triangle).
func (c *Container) IndexCount() int {
	return len(c.Triangles) * 3
}

// SubMeshTriangles returns the triangles covered by sub-mesh i.
// Returns nil if i is out of range or the range does not fit the buffer.
func (c *Container) SubMeshTriangles(i int) []Triangle {
	if i < 0 || i >= len(c.SubMeshes) {
		return nil
	}
	sm := c.SubMeshes[i]
	if sm.Start > sm.End || int(sm.End) > len(c.Triangles) {
		return nil
	}
	return c.Triangles[sm.Start:sm.End]
}

// ComputeBounds recalculates Bounds from the vertex positions.
// An empty container gets zero bounds.
func (c *Container) ComputeBounds() {
	if len(c.Vertices) == 0 {
		c.Bounds = Bounds{}
		return
	}

	b := Bounds{Min: c.Vertices[0].Position, Max: c.Vertices[0].Position}
	for i := 1; i < len(c.Vertices); i++ {
		p := c.Vertices[i].Position
		b.Min = b.Min.Min(p)
		b.Max = b.Max.Max(p)
	}
	c.Bounds = b
}
