package converter

import (
	"fmt"

	"github.com/Faultbox/ddm-converter/pkg/math"
)

// AttributeKind names one of the three OBJ attribute tables.
type AttributeKind int

// Attribute kinds.
const (
	AttributePosition AttributeKind = iota
	AttributeUV
	AttributeNormal
)

// String returns the OBJ-style name of the attribute kind.
func (k AttributeKind) String() string {
	switch k {
	case AttributePosition:
		return "position"
	case AttributeUV:
		return "uv"
	case AttributeNormal:
		return "normal"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

// AttributeTables holds the positions, normals and UVs read so far.
// Lookups take the one-based references used in OBJ face records.
type AttributeTables struct {
	positions []math.Vec3
	normals   []math.Vec3
	uvs       []math.Vec2
}

// AppendPosition records a "v" line.
func (t *AttributeTables) AppendPosition(p math.Vec3) {
	t.positions = append(t.positions, p)
}

// AppendNormal records a "vn" line.
func (t *AttributeTables) AppendNormal(n math.Vec3) {
	t.normals = append(t.normals, n)
}

// AppendUV records a "vt" line.
func (t *AttributeTables) AppendUV(uv math.Vec2) {
	t.uvs = append(t.uvs, uv)
}

// Position returns the position for a one-based reference.
func (t *AttributeTables) Position(ref uint32) (math.Vec3, error) {
	if err := checkRef(AttributePosition, ref, len(t.positions)); err != nil {
		return math.Vec3{}, err
	}
	return t.positions[ref-1], nil
}

// Normal returns the normal for a one-based reference.
func (t *AttributeTables) Normal(ref uint32) (math.Vec3, error) {
	if err := checkRef(AttributeNormal, ref, len(t.normals)); err != nil {
		return math.Vec3{}, err
	}
	return t.normals[ref-1], nil
}

// UV returns the texture coordinate for a one-based reference.
func (t *AttributeTables) UV(ref uint32) (math.Vec2, error) {
	if err := checkRef(AttributeUV, ref, len(t.uvs)); err != nil {
		return math.Vec2{}, err
	}
	return t.uvs[ref-1], nil
}

// Len returns the number of entries recorded for kind.
func (t *AttributeTables) Len(kind AttributeKind) int {
	switch kind {
	case AttributePosition:
		return len(t.positions)
	case AttributeUV:
		return len(t.uvs)
	case AttributeNormal:
		return len(t.normals)
	default:
		return 0
	}
}

// Ready reports whether at least one of each attribute has been recorded.
// Face records are rejected until it does.
func (t *AttributeTables) Ready() bool {
	return len(t.positions) > 0 && len(t.normals) > 0 && len(t.uvs) > 0
}

func checkRef(kind AttributeKind, ref uint32, count int) error {
	if ref == 0 || uint64(ref) > uint64(count) {
		return fmt.Errorf("%w: %s %d, %d recorded", ErrIndexOutOfRange, kind, ref, count)
	}
	return nil
}
