package math

// Vec4 represents a 4D vector. Materials use it for RGBA colours.
type Vec4 struct {
	X, Y, Z, W float32
}

func NewVec4(x, y, z, w float32) Vec4 {
	return Vec4{X: x, Y: y, Z: z, W: w}
}

// NewVec4One returns a vector with every component set to one (opaque white).
func NewVec4One() Vec4 {
	return Vec4{X: 1, Y: 1, Z: 1, W: 1}
}

// Components returns the vector as an ordered array (x, y, z, w).
func (v Vec4) Components() [4]float32 {
	return [4]float32{v.X, v.Y, v.Z, v.W}
}
