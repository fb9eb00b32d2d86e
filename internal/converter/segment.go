package converter

import "github.com/Faultbox/ddm-converter/pkg/mesh"

// Segmenter records triangle-list offsets at group markers. The first
// offset is always 0 and Close appends the final triangle count, so k
// markers yield k+1 sub-meshes covering the whole list.
type Segmenter struct {
	offsets []uint32
	closed  bool
}

// NewSegmenter returns a segmenter seeded with offset 0.
func NewSegmenter() *Segmenter {
	return &Segmenter{offsets: []uint32{0}}
}

// Mark starts a new sub-mesh at triangleCount.
func (s *Segmenter) Mark(triangleCount int) {
	if s.closed {
		return
	}
	s.offsets = append(s.offsets, uint32(triangleCount))
}

// Close appends the closing boundary. Later calls are ignored.
func (s *Segmenter) Close(triangleCount int) {
	if s.closed {
		return
	}
	s.offsets = append(s.offsets, uint32(triangleCount))
	s.closed = true
}

// Offsets returns a copy of the recorded boundaries.
func (s *Segmenter) Offsets() []uint32 {
	return append([]uint32(nil), s.offsets...)
}

// SubMeshes returns the ranges between consecutive offsets.
// Returns nil before Close.
func (s *Segmenter) SubMeshes() []mesh.SubMesh {
	if !s.closed {
		return nil
	}
	subs := make([]mesh.SubMesh, 0, len(s.offsets)-1)
	for i := 0; i+1 < len(s.offsets); i++ {
		subs = append(subs, mesh.SubMesh{Start: s.offsets[i], End: s.offsets[i+1]})
	}
	return subs
}
