package converter

import (
	"github.com/Faultbox/ddm-converter/pkg/formats"
	"github.com/Faultbox/ddm-converter/pkg/mesh"
)

// DedupIndex maps face vertex references to vertex buffer slots. Keys are
// compared by their exact text, so "1/1/1" and "1/1/01" are different
// vertices even though they name the same attributes.
type DedupIndex struct {
	attrs *AttributeTables
	mesh  *mesh.Container
	slots map[string]uint32

	unique       int
	reReferenced int
}

// NewDedupIndex creates an empty index that appends new vertices to m.
func NewDedupIndex(attrs *AttributeTables, m *mesh.Container) *DedupIndex {
	return &DedupIndex{
		attrs: attrs,
		mesh:  m,
		slots: make(map[string]uint32),
	}
}

// Resolve returns the vertex slot for key, creating the vertex on first use.
// A key whose references cannot be looked up creates nothing.
func (x *DedupIndex) Resolve(key string) (uint32, error) {
	if slot, ok := x.slots[key]; ok {
		x.reReferenced++
		return slot, nil
	}

	v, err := x.buildVertex(key)
	if err != nil {
		return 0, err
	}

	slot := uint32(len(x.mesh.Vertices))
	x.mesh.Vertices = append(x.mesh.Vertices, v)
	x.slots[key] = slot
	x.unique++
	return slot, nil
}

// buildVertex looks up the position/uv/normal triple named by key.
func (x *DedupIndex) buildVertex(key string) (mesh.Vertex, error) {
	ref, err := formats.ParseOBJRef(key)
	if err != nil {
		return mesh.Vertex{}, err
	}

	pos, err := x.attrs.Position(ref.X)
	if err != nil {
		return mesh.Vertex{}, err
	}
	uv, err := x.attrs.UV(ref.Y)
	if err != nil {
		return mesh.Vertex{}, err
	}
	normal, err := x.attrs.Normal(ref.Z)
	if err != nil {
		return mesh.Vertex{}, err
	}

	return mesh.Vertex{Position: pos, Normal: normal, UV: uv}, nil
}

// Unique returns the number of vertices created.
func (x *DedupIndex) Unique() int {
	return x.unique
}

// ReReferenced returns the number of lookups served by an existing vertex.
func (x *DedupIndex) ReReferenced() int {
	return x.reReferenced
}
