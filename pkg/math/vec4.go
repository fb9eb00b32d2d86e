package math

// Vec4 is a 4D vector, used for bone weights.
type Vec4 struct {
	X, Y, Z, W float32
}

// Vec3u is an unsigned integer triple. Face references parse into one
// (position, uv, normal), and triangles use it for vertex indices.
type Vec3u struct {
	X, Y, Z uint32
}

// Max returns the largest component.
func (v Vec3u) Max() uint32 {
	return max(v.X, v.Y, v.Z)
}
