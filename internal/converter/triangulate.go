package converter

import "github.com/Faultbox/ddm-converter/pkg/mesh"

// Triangulate fans a face around its first vertex: an N-vertex face becomes
// N-2 triangles (v0, v_last, v_i). Each reference goes through resolve once,
// in order, and each triangle is handed to emit as soon as it is complete.
// Faces with fewer than three references emit nothing.
//
// Fans are only correct for convex planar polygons.
func Triangulate(refs []string, resolve func(string) (uint32, error), emit func(mesh.Triangle)) (int, error) {
	if len(refs) < 3 {
		return 0, nil
	}

	var first [3]uint32
	for i := range first {
		v, err := resolve(refs[i])
		if err != nil {
			return 0, err
		}
		first[i] = v
	}

	anchor, last := first[0], first[2]
	emit(mesh.Triangle{X: first[0], Y: first[1], Z: first[2]})
	count := 1

	for _, ref := range refs[3:] {
		v, err := resolve(ref)
		if err != nil {
			return count, err
		}
		emit(mesh.Triangle{X: anchor, Y: last, Z: v})
		last = v
		count++
	}
	return count, nil
}
