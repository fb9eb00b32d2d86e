package converter

import (
	"fmt"
	"io"
	"strings"

	"github.com/Faultbox/ddm-converter/pkg/mesh"
)

// Stats summarizes one import.
type Stats struct {
	Positions int
	Normals   int
	UVs       int

	UniqueVertices int
	ReReferenced   int

	Indices   int
	Triangles int
	Offsets   []uint32

	DegenerateTangents int // Triangles whose tangent came out NaN or Inf
	SkippedFaces       int // Face lines with fewer than three references
	IgnoredLines       int

	Bounds mesh.Bounds
}

// Print writes a human-readable report.
func (s *Stats) Print(w io.Writer) {
	offsets := make([]string, len(s.Offsets))
	for i, o := range s.Offsets {
		offsets[i] = fmt.Sprint(o)
	}

	fmt.Fprintln(w, "OBJ Stats")
	fmt.Fprintf(w, "\tPositions read:  %d\n", s.Positions)
	fmt.Fprintf(w, "\tNormals read:    %d\n", s.Normals)
	fmt.Fprintf(w, "\tUVs read:        %d\n", s.UVs)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "\tVertices")
	fmt.Fprintf(w, "\t  total:         %d\n", s.UniqueVertices)
	fmt.Fprintf(w, "\t  re-referenced: %d\n", s.ReReferenced)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "\tTriangles")
	fmt.Fprintf(w, "\t  indices:       %d\n", s.Indices)
	fmt.Fprintf(w, "\t  total:         %d\n", s.Triangles)
	if s.DegenerateTangents > 0 {
		fmt.Fprintf(w, "\t  bad tangents:  %d\n", s.DegenerateTangents)
	}
	if s.SkippedFaces > 0 {
		fmt.Fprintf(w, "\t  skipped faces: %d\n", s.SkippedFaces)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "\tSub-meshes")
	fmt.Fprintf(w, "\t  total:         %d\n", max(len(s.Offsets)-1, 0))
	fmt.Fprintf(w, "\t  offsets:       %s\n", strings.Join(offsets, " "))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "\tBounds:          (%.3f %.3f %.3f) - (%.3f %.3f %.3f)\n",
		s.Bounds.Min.X, s.Bounds.Min.Y, s.Bounds.Min.Z,
		s.Bounds.Max.X, s.Bounds.Max.Y, s.Bounds.Max.Z)
}
